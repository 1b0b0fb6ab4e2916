// Package studio provides the content layer of the studio marketing site.
// It loads solution records and blog posts, resolves slugs and cross
// references, extracts tables of contents from markdown, and describes the
// static output consumed by the presentation layer.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, goldmark/, etree/).
package studio
