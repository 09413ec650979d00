// Package agents matches agent records ("agent_name") against the localized agent dataset.
package agents

import (
	"strings"

	"cs2-localizer/core/match"
	"cs2-localizer/core/normalize"
)

const (
	// Category is the category name used in config, logs and history.
	Category = "agents"
	// Dataset is the reference file under the API base URL.
	Dataset = "agents.json"
	// NameField carries the display name in source records.
	NameField = "agent_name"
)

// Table returns the agent matching table.
func Table() *match.Table {
	return &match.Table{
		Category:  Category,
		NameField: NameField,
		Index:     index,
		Strategies: []match.Strategy{
			match.Lookup("model", match.ByModel, match.FieldKeys("model", normalize.NormalizePath)),
			match.Lookup("market_name", match.ByMarketName, match.NameKey),
			match.Lookup("codename", match.ByMarketName, codenameKeys),
			match.Lookup("name", match.ByName, match.NameKey),
		},
	}
}

func index(ix *match.IndexSet, ref match.Record) {
	if model := ref.String("model_player"); model != "" {
		ix.Put(match.ByModel, normalize.NormalizePath(model), ref)
	}
	ix.Put(match.ByMarketName, ref.String("market_hash_name"), ref)
	ix.Put(match.ByName, ref.String("name"), ref)
}

// codenameKeys turns "'Blueberries' Buckshot | NSWC SEAL" into "Buckshot".
func codenameKeys(in match.Input) []string {
	if !strings.Contains(in.Name, "'") {
		return nil
	}
	head, _, _ := strings.Cut(in.Name, "|")
	parts := strings.Split(head, "'")
	return []string{strings.TrimSpace(parts[len(parts)-1])}
}
