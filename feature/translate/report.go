package translate

import (
	"time"

	"cs2-localizer/core/match"
)

// FileReport is the outcome of one input file.
type FileReport struct {
	Input    string
	Output   string
	Glove    bool
	Stats    match.Stats
	Uploaded bool
	// Skipped marks an input that was not found.
	Skipped  bool
	Err      error
	Duration time.Duration
}

// CategoryReport is the outcome of one category.
type CategoryReport struct {
	Category string
	Label    string
	Files    []FileReport
	Err      error
	Duration time.Duration
}

// Success reports whether the category completed.
func (r CategoryReport) Success() bool {
	return r.Err == nil
}

// Total counts the records read across files.
func (r CategoryReport) Total() int {
	n := 0
	for _, f := range r.Files {
		n += f.Stats.Total
	}
	return n
}

// Translated counts the records translated across files.
func (r CategoryReport) Translated() int {
	n := 0
	for _, f := range r.Files {
		n += f.Stats.Translated
	}
	return n
}

// Summary is the outcome of a run.
type Summary struct {
	RunID     string
	Reports   []CategoryReport
	Succeeded int
	Total     int
	Elapsed   time.Duration
}

// Success reports whether every category completed.
func (s Summary) Success() bool {
	return s.Succeeded == s.Total
}
