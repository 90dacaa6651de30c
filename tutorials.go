// Package tutorials provides a local tutorial collection: Markdown posts are
// built into searchable entries, stored, and browsed with a client-side
// filter engine that decides which entries are visible for a query.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, goldmark/).
package tutorials
