// Package dataset retrieves the localized reference datasets the matchers index.
//
// Each category reads one JSON array (agents.json, skins.json, ...) from the ByMykel
// CSGO-API zh-CN endpoint. Raw responses are cached, either on disk or in the object store,
// and reused on later runs unless a refresh is requested.
//
// # Components
//
//   - Fetcher: HTTP GET with gzip, deflate, brotli and zstd response decoding.
//   - Cache: DiskCache (afero) or ObjectCache (core/storage).
//   - Loader: cache-or-fetch, array validation and in-process memoization. Concurrent loads of
//     the same dataset share one request.
//
// A dataset that cannot be fetched, or that is not a JSON array, yields ErrUnavailable.
package dataset
