package keychains_test

import (
	"testing"

	"cs2-localizer/core/match"
	"cs2-localizer/feature/keychains"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *match.Engine {
	t.Helper()
	refs, err := match.ParseRecords([]byte(`[
		{"id": "keychain-1", "name": "挂件 | 小小艾娃"},
		{"id": "keychain-2", "name": "挂件 | 那只鸡"},
		{"id": "keychain-37", "name": "挂件 | Hot Howl"}
	]`))
	require.NoError(t, err)
	return match.NewEngine(keychains.Table(), refs)
}

func TestKeychains_Strategies(t *testing.T) {
	engine := newEngine(t)

	tests := []struct {
		name     string
		record   string
		want     string
		strategy string
	}{
		{"NumericID", `{"id": 1, "name": "Lil' Ava"}`, "小小艾娃", "id"},
		{"PrefixedID", `{"id": "keychain-2", "name": "That's Bananas"}`, "那只鸡", "id"},
		{"NameAgainstStrippedReference", `{"name": "hot howl"}`, "Hot Howl", ""},
		{"EnglishPrefixStripped", `{"name": "Keychain | Hot Howl"}`, "Hot Howl", "prefix_stripped"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := engine.Resolve(match.NewRecord([]byte(tt.record)), match.Options{})
			assert.Equal(t, tt.want, res.Record.String(keychains.NameField))
			if tt.strategy != "" {
				assert.Equal(t, match.OutcomeTranslated, res.Outcome)
				assert.Equal(t, tt.strategy, res.Strategy)
			}
		})
	}
}

func TestKeychains_CaseOnlyChangeCounts(t *testing.T) {
	engine := newEngine(t)

	// "hot howl" -> "Hot Howl" is a real change of value.
	res := engine.Resolve(match.NewRecord([]byte(`{"name": "hot howl"}`)), match.Options{})
	assert.Equal(t, match.OutcomeTranslated, res.Outcome)

	// The exact same text is a no-op.
	res = engine.Resolve(match.NewRecord([]byte(`{"name": "Hot Howl"}`)), match.Options{})
	assert.Equal(t, match.OutcomeUnmatched, res.Outcome)
}

func TestKeychains_Batch(t *testing.T) {
	engine := newEngine(t)
	recs, err := match.ParseRecords([]byte(`[{"id": 1, "name": "Lil' Ava"}, "junk", {"id": 999, "name": "Unknown"}]`))
	require.NoError(t, err)

	out, stats := engine.Apply(recs, match.Options{})
	require.Len(t, out, 3)
	assert.Equal(t, "小小艾娃", out[0].String("name"))
	assert.Equal(t, `"junk"`, string(out[1].Raw()))
	assert.Equal(t, "Unknown", out[2].String("name"))
	assert.Equal(t, 1, stats.Translated)
	assert.Equal(t, 1, stats.Skipped)
}
