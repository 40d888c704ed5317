// Package manifest handles the typed side of plugin.json: parsing it into
// a Manifest struct, encoding one for the scaffolder, and validating raw
// manifest bytes against the embedded JSON Schema. User-facing
// field-by-field checks live in the validate package; the schema check
// here is the scaffolder's self-check on generated output.
package manifest
