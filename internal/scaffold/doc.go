// Package scaffold generates new plugin directories from embedded templates.
// It powers the "ccplugin scaffold" command, producing the standard layout
// (manifest, ignore file, README, component directories) plus optional
// example components with frontmatter that passes validation as written.
package scaffold
