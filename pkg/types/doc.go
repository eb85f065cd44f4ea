// Package types defines the core types and interfaces used throughout
// modstack. This includes the FS and Pather interfaces, as well as data
// structures like Record, ModList, and Profile.
package types
