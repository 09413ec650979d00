// Package translate drives the category matchers over user files and over HTTP uploads.
//
// # Categories
//
// Each Category binds a matching table to its reference dataset and to the input files it
// translates:
//
//   - agents: agents.json
//   - keychains: keychains.json
//   - music_kits: music.json
//   - skins: skins.json, and gloves.json with the glove-only strategies enabled
//   - stickers: stickers.json
//
// The skins category shares one index between both of its files and fails only when both
// files are missing or one of the present files fails.
//
// # Service
//
// Service.Run translates the selected categories in order. One failing category never
// stops the others. Every file produces a translated copy in the output directory, an
// optional upload to the object store and a history row.
//
// # HTTP Endpoints
//
//   - POST /translate/:category : Translates the JSON array in the body (supports ?glove=true).
//   - GET /translate/categories : Lists categories, datasets and strategy chains.
//   - GET /translate/history : Lists recent runs (supports ?category= and ?limit=).
package translate
