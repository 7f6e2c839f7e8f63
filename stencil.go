// Package stencil learns structural templates from example texts and
// extracts the variable parts of new texts that share the same shape.
// Substrings common to every learned sample become literal runs; the
// remaining regions become holes whose contents can later be pulled out
// of a matching text without writing a per-source parser.
//
// This package contains domain types, interfaces, and the pure learning
// and matching engine following Ben Johnson's Standard Package Layout.
// Implementations with external dependencies live in subdirectories
// named after their primary dependency (e.g., sqlite/, goquery/, html/).
package stencil
