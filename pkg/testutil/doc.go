// Package testutil provides test helpers for modstack: an in-memory
// implementation of types.FS with error injection, and environment
// builders that seed profiles for list-manager and export tests.
package testutil
