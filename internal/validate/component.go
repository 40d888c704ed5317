package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// componentSchema ties a component category to its field rules and the
// wording its findings use.
type componentSchema struct {
	category Category
	label    string // message prefix for missing-field findings
	rules    []fieldRule
}

var componentSchemas = map[Category]componentSchema{
	CategoryCommand: {category: CategoryCommand, label: "Command file", rules: commandRules},
	CategoryAgent:   {category: CategoryAgent, label: "Agent file", rules: agentRules},
	CategorySkill:   {category: CategorySkill, label: "SKILL.md", rules: skillRules},
}

// CheckCommand validates command frontmatter. component is the path used
// in findings, typically relative to the plugin root.
func CheckCommand(component string, fm map[string]any) []Finding {
	return CheckComponent(CategoryCommand, component, fm)
}

// CheckAgent validates agent frontmatter.
func CheckAgent(component string, fm map[string]any) []Finding {
	return CheckComponent(CategoryAgent, component, fm)
}

// CheckSkill validates SKILL.md frontmatter.
func CheckSkill(component string, fm map[string]any) []Finding {
	return CheckComponent(CategorySkill, component, fm)
}

// CheckComponent validates fm against the schema for the given category.
// Findings appear in rule-table order, with unsupported-field warnings last
// in lexicographic key order.
func CheckComponent(category Category, component string, fm map[string]any) []Finding {
	schema, ok := componentSchemas[category]
	if !ok {
		return nil
	}
	findings := checkFields(schema, component, fm)
	return append(findings, checkUnsupported(schema, component, fm)...)
}

func checkFields(schema componentSchema, component string, fm map[string]any) []Finding {
	var findings []Finding
	ref := func(f Finding) Finding {
		f.Reference = docsURL
		return f
	}

	for _, r := range schema.rules {
		v, present := fm[r.name]
		if !present {
			if r.required {
				findings = append(findings, ref(errorf(component, KindMissingField,
					"%s missing required field %q in frontmatter", schema.label, r.name)))
			}
			continue
		}

		switch r.typ {
		case stringField:
			s, ok := v.(string)
			if !ok {
				findings = append(findings, ref(errorf(component, KindInvalidType,
					"Field %q must be a string, got %s", r.name, typeName(v))))
				continue
			}
			if r.oneOf != nil && !containsString(r.oneOf, s) {
				findings = append(findings, ref(errorf(component, KindInvalidValue,
					"Field %q must be one of: %s, got %q", r.name, strings.Join(r.oneOf, ", "), s)))
			}
			if r.maxLen > 0 && utf8.RuneCountInString(s) > r.maxLen {
				findings = append(findings, ref(errorf(component, KindInvalidValue,
					"Field %q exceeds maximum length of %d characters", r.name, r.maxLen)))
			}
			if r.kebab && !IsKebabCase(s) {
				findings = append(findings, ref(errorf(component, KindInvalidValue,
					"Field %q must be kebab-case (lowercase with hyphens), got %q", r.name, s)))
			}

		case stringListField:
			items, ok := v.([]any)
			if !ok {
				findings = append(findings, ref(errorf(component, KindInvalidType,
					"Field %q must be an array, got %s", r.name, typeName(v))))
				continue
			}
			for i, item := range items {
				if _, ok := item.(string); !ok {
					findings = append(findings, ref(errorf(component, KindInvalidType,
						"Field %q contains a non-string item at index %d, got %s", r.name, i, typeName(item))))
				}
			}

		case boolField:
			if _, ok := v.(bool); !ok {
				findings = append(findings, ref(errorf(component, KindInvalidType,
					"Field %q must be a boolean, got %s", r.name, typeName(v))))
			}
		}
	}
	return findings
}

func checkUnsupported(schema componentSchema, component string, fm map[string]any) []Finding {
	known := knownFields(schema.rules)
	var findings []Finding
	for _, k := range sortedKeys(fm) {
		if known[k] {
			continue
		}
		f := warningf(component, KindUnsupportedField,
			"Unsupported field %q in %s frontmatter. This field is not in the official specification and will be ignored.",
			k, schema.category)
		f.Reference = docsURL
		findings = append(findings, f)
	}
	return findings
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

// typeName names the dynamic type of a decoded YAML or JSON value the way
// finding messages refer to it.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, uint64, float32, float64:
		return "number"
	case []any:
		return "array"
	case map[string]any, map[any]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
