package history

import "time"

// Run is one category translation.
type Run struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RunID      string    `gorm:"column:run_id;size:36;index" json:"run_id"`
	Category   string    `gorm:"column:category;size:32;index" json:"category"`
	InputFile  string    `gorm:"column:input_file;size:255" json:"input_file"`
	Source     string    `gorm:"column:source;size:16" json:"source"`
	Total      int       `gorm:"column:total" json:"total"`
	Translated int       `gorm:"column:translated" json:"translated"`
	Success    bool      `gorm:"column:success" json:"success"`
	Error      string    `gorm:"column:error;size:1024" json:"error,omitempty"`
	DurationMS int64     `gorm:"column:duration_ms" json:"duration_ms"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName implements gorm's Tabler.
func (Run) TableName() string {
	return "translation_runs"
}

// Columns lists the columns the current model expects.
func Columns() []string {
	return []string{
		"id", "run_id", "category", "input_file", "source", "total",
		"translated", "success", "error", "duration_ms", "created_at",
	}
}

const (
	SourceCLI = "cli"
	SourceAPI = "api"
)
