package dataset

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const payload = `[{"id":"sticker-1","name":"印花 | 测试"}]`

func encode(t *testing.T, encoding string) []byte {
	t.Helper()
	var buf bytes.Buffer
	switch encoding {
	case "gzip":
		w := gzip.NewWriter(&buf)
		_, err := w.Write([]byte(payload))
		require.NoError(t, err)
		require.NoError(t, w.Close())
	case "br":
		w := brotli.NewWriter(&buf)
		_, err := w.Write([]byte(payload))
		require.NoError(t, err)
		require.NoError(t, w.Close())
	case "zstd":
		w, err := zstd.NewWriter(&buf)
		require.NoError(t, err)
		_, err = w.Write([]byte(payload))
		require.NoError(t, err)
		require.NoError(t, w.Close())
	default:
		buf.WriteString(payload)
	}
	return buf.Bytes()
}

func TestHTTPFetcher_Encodings(t *testing.T) {
	for _, encoding := range []string{"", "gzip", "br", "zstd"} {
		t.Run("Encoding_"+encoding, func(t *testing.T) {
			body := encode(t, encoding)
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/stickers.json", r.URL.Path)
				assert.Contains(t, r.Header.Get("Accept-Encoding"), "br")
				if encoding != "" {
					w.Header().Set("Content-Encoding", encoding)
				}
				_, _ = w.Write(body)
			}))
			defer srv.Close()

			f := NewHTTPFetcher(srv.URL+"/api", time.Second)
			data, err := f.Fetch(context.Background(), "stickers.json")
			require.NoError(t, err)
			assert.JSONEq(t, payload, string(data))
		})
	}
}

func TestHTTPFetcher_Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.URL+"/", time.Second)
	_, err := f.Fetch(context.Background(), "agents.json")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPFetcher_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	f := NewHTTPFetcher(url, 500*time.Millisecond)
	_, err := f.Fetch(context.Background(), "agents.json")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPFetcher_DefaultBaseURL(t *testing.T) {
	f := NewHTTPFetcher("", 0)
	assert.Equal(t, DefaultBaseURL+"skins.json", f.URL("skins.json"))
}
