// Package core provides the command-level operations for skycast,
// separated from UI concerns.
//
// Functions here return data and errors instead of printing; rendering
// belongs to the render package and interaction to cmd. The favorites
// batch fetch deliberately collects per-item results rather than failing
// fast, because one unreachable favorite must not hide the others.
package core
