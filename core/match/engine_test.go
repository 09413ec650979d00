package match_test

import (
	"testing"

	"cs2-localizer/core/match"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testTable indexes by id and name and renders without a prefix.
func testTable() *match.Table {
	return &match.Table{
		Category:        "test",
		NameField:       "name",
		LocalizedPrefix: "测试 | ",
		Index: func(ix *match.IndexSet, ref match.Record) {
			ix.Put(match.ByID, ref.String("id"), ref)
			ix.Put(match.ByName, ref.String("market_hash_name"), ref)
		},
		Strategies: []match.Strategy{
			match.Lookup("id", match.ByID, match.FieldKeys("id")),
			match.Lookup("name", match.ByName, match.NameKey),
		},
	}
}

func mustParse(t *testing.T, doc string) []match.Record {
	t.Helper()
	recs, err := match.ParseRecords([]byte(doc))
	require.NoError(t, err)
	return recs
}

func TestBuildIndex_LastWriteWins(t *testing.T) {
	refs := mustParse(t, `[
		{"id": "1", "market_hash_name": "Dup", "name": "测试 | 第一"},
		{"id": "2", "market_hash_name": "dup", "name": "测试 | 第二"}
	]`)

	ix := match.BuildIndex(testTable(), refs)
	rec, ok := ix.Lookup(match.ByName, "DUP")
	require.True(t, ok)
	assert.Equal(t, "测试 | 第二", rec.String("name"))
	assert.Equal(t, 1, ix.Len(match.ByName))
	assert.Equal(t, 2, ix.Len(match.ByID))
}

func TestBuildIndex_Empty(t *testing.T) {
	ix := match.BuildIndex(testTable(), nil)
	assert.True(t, ix.Empty())

	engine := match.NewEngine(testTable(), []match.Record{})
	recs := mustParse(t, `[{"name": "Anything"}]`)
	out, stats := engine.Apply(recs, match.Options{})
	assert.Equal(t, recs, out)
	assert.Equal(t, 0, stats.Translated)
}

func TestBuildIndex_SkipsNonObjects(t *testing.T) {
	refs := mustParse(t, `[1, "x", null, {"id": "5", "name": "测试 | 五"}]`)
	ix := match.BuildIndex(testTable(), refs)
	assert.Equal(t, 1, ix.Len(match.ByID))
}

func TestEngine_CaseInsensitive(t *testing.T) {
	refs := mustParse(t, `[{"market_hash_name": "ak-47 | redline", "name": "测试 | 红线"}]`)
	engine := match.NewEngine(testTable(), refs)

	rec := mustParse(t, `[{"name": "AK-47 | Redline"}]`)[0]
	out := engine.TranslateRecord(rec, match.Options{})
	assert.Equal(t, "红线", out.String("name"))
}

func TestEngine_StructuralBeforeName(t *testing.T) {
	refs := mustParse(t, `[
		{"id": "9", "market_hash_name": "x", "name": "测试 | 按编号"},
		{"id": "10", "market_hash_name": "Sticker A", "name": "测试 | 按名称"}
	]`)
	engine := match.NewEngine(testTable(), refs)

	res := engine.Resolve(mustParse(t, `[{"id": 9, "name": "Sticker A"}]`)[0], match.Options{})
	assert.Equal(t, match.OutcomeTranslated, res.Outcome)
	assert.Equal(t, "id", res.Strategy)
	assert.Equal(t, "按编号", res.Record.String("name"))
}

func TestEngine_AlreadyTranslatedIsUntouched(t *testing.T) {
	refs := mustParse(t, `[{"id": "1", "name": "测试 | 别的"}]`)
	engine := match.NewEngine(testTable(), refs)

	rec := mustParse(t, `[{"id":1,"name":"已经 翻译"}]`)[0]
	res := engine.Resolve(rec, match.Options{})
	assert.Equal(t, match.OutcomeAlreadyCJK, res.Outcome)
	assert.Equal(t, rec.Raw(), res.Record.Raw())
}

func TestEngine_UnmatchedPassthrough(t *testing.T) {
	engine := match.NewEngine(testTable(), mustParse(t, `[{"id": "1", "name": "测试 | 一"}]`))

	recs := mustParse(t, `[{"id": 2, "name": "Nobody"}, 42, {"id": "1", "name": "One"}]`)
	out, stats := engine.Apply(recs, match.Options{})

	require.Len(t, out, 3)
	assert.Equal(t, recs[0].Raw(), out[0].Raw())
	assert.Equal(t, "42", string(out[1].Raw()))
	assert.Equal(t, "一", out[2].String("name"))
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Translated)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 1, stats.Unmatched)
	assert.Equal(t, map[string]int{"id": 1}, stats.ByStrategy)
}

func TestEngine_NoOpTranslationIsNotCounted(t *testing.T) {
	engine := match.NewEngine(testTable(), mustParse(t, `[{"id": "1", "name": "测试 | AWP"}]`))

	res := engine.Resolve(mustParse(t, `[{"id": "1", "name": "AWP"}]`)[0], match.Options{})
	assert.Equal(t, match.OutcomeUnmatched, res.Outcome)
	assert.Equal(t, "id", res.Strategy)
}

func TestEngine_CopyAndReplace(t *testing.T) {
	engine := match.NewEngine(testTable(), mustParse(t, `[{"id": "1", "name": "测试 | 一"}]`))

	original := `{"zeta":1,"name":"One","id":"1","alpha":true}`
	rec := match.NewRecord([]byte(original))
	out := engine.TranslateRecord(rec, match.Options{})

	assert.Equal(t, original, string(rec.Raw()), "input must not be mutated")
	assert.Equal(t, `{"zeta":1,"name":"一","id":"1","alpha":true}`, string(out.Raw()))
}

func TestEngine_ProgressCallback(t *testing.T) {
	engine := match.NewEngine(testTable(), nil)
	recs := mustParse(t, `[{"name":"a"},{"name":"b"}]`)

	var calls []int
	engine.Apply(recs, match.Options{}, func(done, total, translated int) {
		assert.Equal(t, 2, total)
		calls = append(calls, done)
	})
	assert.Equal(t, []int{1, 2}, calls)
}

func TestParseRecords(t *testing.T) {
	t.Run("NotArray", func(t *testing.T) {
		_, err := match.ParseRecords([]byte(`{"a":1}`))
		assert.ErrorIs(t, err, match.ErrNotArray)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := match.ParseRecords([]byte(`[{`))
		assert.Error(t, err)
	})

	t.Run("EmptyArray", func(t *testing.T) {
		recs, err := match.ParseRecords([]byte(`[]`))
		assert.NoError(t, err)
		assert.NotNil(t, recs)
		assert.Empty(t, recs)
	})
}

func TestRecord_String(t *testing.T) {
	rec := match.NewRecord([]byte(`{"a": 7, "b": 7.0, "c": null, "d": "x", "e": {"f": 3}}`))
	assert.Equal(t, "7", rec.String("a"))
	assert.Equal(t, "7", rec.String("b"))
	assert.Equal(t, "", rec.String("c"))
	assert.False(t, rec.Has("c"))
	assert.Equal(t, "x", rec.String("d"))
	assert.Equal(t, "3", rec.String("e.f"))
	assert.Equal(t, "", rec.String("missing"))
}

func TestRecord_With(t *testing.T) {
	rec := match.NewRecord([]byte(`{"name":"a","x":1}`))
	out, err := rec.With("name", "刀 & <剑>")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"刀 & <剑>","x":1}`, string(out.Raw()))
	assert.Equal(t, `{"name":"a","x":1}`, string(rec.Raw()))
}
