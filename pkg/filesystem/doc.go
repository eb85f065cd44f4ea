// Package filesystem provides filesystem implementations for modstack.
//
// This package contains implementations of the types.FS interface,
// including the standard OS filesystem used in production.
package filesystem
