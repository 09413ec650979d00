// Package database handles database connections and schema inspection.
//
// It wraps GORM and opens either a SQLite file (the default) or a MySQL server, based on
// the application's configuration. The database only stores run history, so every caller
// treats a failed connection as a warning.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns report the live columns of a table, which the history
// command uses to flag a schema that lags behind the current model.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("History disabled", zap.Error(err))
//	}
//
//	missing, err := database.MissingColumns(db, "translation_runs", []string{"run_id"})
package database
