// Package utils provides small conversion helpers for loosely typed input such as query
// parameters and environment values.
package utils
