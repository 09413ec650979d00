package dataset

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWarmAll(t *testing.T) {
	fetcher := &stubFetcher{data: map[string]string{
		"agents.json":   `[{"id":"a"}]`,
		"stickers.json": `[{"id":"s1"},{"id":"s2"}]`,
		"skins.json":    `"oops"`,
	}}
	cache := NewDiskCache(afero.NewMemMapFs(), "cache")
	loader := NewLoader(fetcher, cache, zap.NewNop())

	results := WarmAll(context.Background(), loader, []string{"agents.json", "skins.json", "stickers.json"}, 2)
	require.Len(t, results, 3)

	assert.Equal(t, "agents.json", results[0].Dataset)
	assert.Equal(t, 1, results[0].Records)
	assert.NoError(t, results[0].Err)

	assert.Equal(t, "skins.json", results[1].Dataset)
	assert.ErrorIs(t, results[1].Err, ErrUnavailable)

	assert.Equal(t, 2, results[2].Records)

	_, ok, err := cache.Load(context.Background(), "stickers.json")
	require.NoError(t, err)
	assert.True(t, ok)
}
