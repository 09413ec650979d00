// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation for every route.
//   - rayid: a unique request id (RayID) stored in the context and echoed in the
//     X-Ray-ID response header, used by logger.WithRayID.
package middleware
