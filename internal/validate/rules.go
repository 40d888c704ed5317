package validate

import (
	"sort"

	"github.com/maxfahl/Claude-Code-Plugin-Plugin/internal/branding"
)

// fieldType is the YAML type a frontmatter field must carry.
type fieldType int

const (
	stringField fieldType = iota
	stringListField
	boolField
)

// fieldRule describes one frontmatter field of a component kind.
type fieldRule struct {
	name     string
	typ      fieldType
	required bool
	maxLen   int      // maximum rune length for strings, 0 means unlimited
	oneOf    []string // allowed values for strings, nil means any
	kebab    bool     // string must be kebab-case
}

// validModels are the model names a command or agent may request.
var validModels = []string{"sonnet", "opus", "haiku"}

var commandRules = []fieldRule{
	{name: "description", typ: stringField, required: true},
	{name: "allowed-tools", typ: stringListField, required: true},
	{name: "argument-hint", typ: stringField, required: true},
	{name: "model", typ: stringField, required: true, oneOf: validModels},
	{name: "disable-model-invocation", typ: boolField, required: true},
}

var agentRules = []fieldRule{
	{name: "description", typ: stringField, required: true, maxLen: 1024},
	{name: "tools", typ: stringListField},
	{name: "model", typ: stringField, oneOf: validModels},
}

var skillRules = []fieldRule{
	{name: "name", typ: stringField, required: true, kebab: true},
	{name: "description", typ: stringField, required: true, maxLen: 1024},
	{name: "allowed-tools", typ: stringListField},
	{name: "tags", typ: stringListField},
	{name: "version", typ: stringField},
	{name: "author", typ: stringField},
}

// manifestFields is the allow-list of top-level plugin.json keys. Anything
// outside it is reported as an unsupported field.
var manifestFields = map[string]bool{
	"name":        true,
	"version":     true,
	"description": true,
	"author":      true,
	"homepage":    true,
	"repository":  true,
	"license":     true,
	"keywords":    true,
	"commands":    true,
	"agents":      true,
	"hooks":       true,
	"mcpServers":  true,
	"skills":      true,
}

// docsURL points at the official plugin development documentation and is
// attached to schema findings as their reference.
var docsURL = branding.DocsURL()

// DocsURL returns the reference URL findings link to.
func DocsURL() string {
	return docsURL
}

// deprecatedDocsURL anchors deprecated-pattern warnings to the migration
// notes inside the documentation.
var deprecatedDocsURL = docsURL + "#deprecated-features"

func knownFields(rules []fieldRule) map[string]bool {
	known := make(map[string]bool, len(rules))
	for _, r := range rules {
		known[r.name] = true
	}
	return known
}

// sortedKeys returns the map keys in lexicographic order so findings come
// out in a stable order regardless of decode order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
