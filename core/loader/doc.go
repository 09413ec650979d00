// Package loader registers the HTTP features mounted by the serve command.
//
// A feature is anything that can name itself, say whether it is enabled and attach routes
// to a fiber.Router. Manager.LoadAll skips disabled features and stops at the first Load
// error. Today the only feature is the translation API ("translate").
package loader
