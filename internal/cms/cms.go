// Package cms owns the site's editable state: per-language marketing copy,
// the blog post collection, and the global site settings.
//
// A single Store instance holds all three collections in memory and is the
// only mutator. Every mutation re-serializes all three collections back to
// the durable store; the in-memory copy stays authoritative even when a
// persistence write fails.
package cms
