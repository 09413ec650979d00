// Package server holds the HTTP server configuration.
//
// The serve command uses it to bind the translation API, and core/config embeds it under
// the "server" key.
package server
