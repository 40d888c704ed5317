package validate

import "encoding/json"

// manifestStringFields are the optional top-level keys that must decode as
// strings, in the order they are checked.
var manifestStringFields = []string{"version", "description", "homepage", "repository", "license"}

// authorFields are the recognized keys of the manifest author object.
var authorFields = []string{"name", "email", "url"}

// CheckManifest validates the raw bytes of a plugin.json manifest:
// required kebab-case name, typed optional fields, and the allow-list of
// recognized keys. Unrecognized keys produce warnings, not errors.
func CheckManifest(component string, data []byte) []Finding {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return []Finding{jsonError(component, "Manifest file", data, err)}
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return []Finding{errorf(component, KindInvalidType,
			"Manifest must be a JSON object, got %s", typeName(raw))}
	}

	var findings []Finding

	name, present := obj["name"]
	switch {
	case !present:
		findings = append(findings, errorf(component, KindMissingField,
			"Manifest missing required field %q", "name"))
	default:
		if s, ok := name.(string); !ok {
			findings = append(findings, errorf(component, KindInvalidType,
				"Manifest field %q must be a string, got %s", "name", typeName(name)))
		} else if !IsKebabCase(s) {
			findings = append(findings, errorf(component, KindInvalidValue,
				"Manifest field %q must be kebab-case, got %q. Use lowercase letters and hyphens only (e.g. \"my-plugin\").", "name", s))
		}
	}

	for _, field := range manifestStringFields {
		v, present := obj[field]
		if !present {
			continue
		}
		if _, ok := v.(string); !ok {
			findings = append(findings, errorf(component, KindInvalidType,
				"Manifest field %q must be a string, got %s", field, typeName(v)))
		}
	}

	if v, present := obj["author"]; present {
		author, ok := v.(map[string]any)
		if !ok {
			findings = append(findings, errorf(component, KindInvalidType,
				"Manifest field %q must be an object, got %s", "author", typeName(v)))
		} else {
			for _, sub := range authorFields {
				av, present := author[sub]
				if !present {
					continue
				}
				if _, ok := av.(string); !ok {
					findings = append(findings, errorf(component, KindInvalidType,
						"Manifest field %q must be a string, got %s", "author."+sub, typeName(av)))
				}
			}
		}
	}

	if v, present := obj["keywords"]; present {
		keywords, ok := v.([]any)
		if !ok {
			findings = append(findings, errorf(component, KindInvalidType,
				"Manifest field %q must be an array, got %s", "keywords", typeName(v)))
		} else {
			for i, kw := range keywords {
				if _, ok := kw.(string); !ok {
					findings = append(findings, errorf(component, KindInvalidType,
						"Manifest field \"keywords[%d]\" must be a string, got %s", i, typeName(kw)))
				}
			}
		}
	}

	for _, k := range sortedKeys(obj) {
		if manifestFields[k] {
			continue
		}
		f := warningf(component, KindUnsupportedField,
			"Manifest contains unsupported field %q. This field is not in the official specification and will be ignored.", k)
		f.Reference = docsURL
		findings = append(findings, f)
	}
	return findings
}
