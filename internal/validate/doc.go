// Package validate implements the plugin validation engine. It checks a
// plugin directory's layout, manifest, component frontmatter, and
// configuration files against the official plugin specification and
// aggregates every problem into a single ordered report.
//
// All entry points (the validate, compliance, and inspect commands) share
// the field tables and checks defined here, so there is exactly one source
// of truth for what each component kind requires.
package validate
