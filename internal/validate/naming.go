package validate

import "strings"

// IsKebabCase reports whether name is an acceptable kebab-case identifier:
// non-empty, free of spaces and underscores, and equal to its own
// lowercasing. Hyphens are allowed but not required, so single words such
// as "deploy" pass.
func IsKebabCase(name string) bool {
	if name == "" {
		return false
	}
	if strings.ContainsAny(name, " _") {
		return false
	}
	return name == strings.ToLower(name)
}
