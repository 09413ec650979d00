// Package history records translation runs in the database.
//
// Every category translated by the CLI or the HTTP API produces one Run row with the input
// file, record counts, outcome and duration. Runs started together share a RunID.
//
// # Usage
//
//	repo := history.NewRepository(db)
//	if err := repo.Migrate(); err != nil { ... }
//	_ = repo.Record(ctx, &history.Run{Category: "stickers", Total: 10, Translated: 9})
//	runs, _ := repo.Recent(ctx, 20)
package history
