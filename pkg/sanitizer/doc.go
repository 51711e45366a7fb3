// Package sanitizer provides pure string transformation helpers for cleaning
// untrusted input before it touches the filesystem or a terminal: path
// traversal neutralization, safe filename generation with Unicode
// normalization, control sequence stripping, and length limiting.
//
// All functions are pure transformations with no I/O and no shared state, so
// the package is safe for concurrent use. Sanitizers never fail; invalid
// input is transformed into the nearest safe value rather than rejected.
// Use the validator package when rejection is the right behavior.
package sanitizer
