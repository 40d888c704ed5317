package validate

import "regexp"

// deprecatedPattern is one retired markup construct that plugins must no
// longer use. Matching is case-insensitive.
type deprecatedPattern struct {
	re        *regexp.Regexp
	name      string
	tag       string
	migration string
}

var deprecatedPatterns = []deprecatedPattern{
	{
		re:        regexp.MustCompile(`(?i)<IF\s+`),
		name:      "HTML IF conditional",
		tag:       "<IF>",
		migration: "Remove HTML conditionals. Use environment checks or configuration in your command logic instead.",
	},
	{
		re:        regexp.MustCompile(`(?i)<ELSE\s*>`),
		name:      "HTML ELSE conditional",
		tag:       "<ELSE>",
		migration: "Remove HTML conditionals. Handle conditional logic in your implementation.",
	},
	{
		re:        regexp.MustCompile(`(?i)<MATCH\s+`),
		name:      "MATCH conditional",
		tag:       "<MATCH>",
		migration: "Replace MATCH with direct pattern matching in your component logic.",
	},
	{
		re:        regexp.MustCompile(`(?i)<VALIDATE\s+`),
		name:      "VALIDATE tag",
		tag:       "<VALIDATE>",
		migration: "Move validation logic into your component implementation or frontmatter schema.",
	},
}

// ScanDeprecated reports a warning for every deprecated pattern that occurs
// in body, at most once per pattern per document.
func ScanDeprecated(component, body string) []Finding {
	var findings []Finding
	for _, p := range deprecatedPatterns {
		if !p.re.MatchString(body) {
			continue
		}
		f := warningf(component, KindDeprecatedPattern,
			"Deprecated pattern detected: %s (%s). Migration: %s", p.name, p.tag, p.migration)
		f.Reference = deprecatedDocsURL
		findings = append(findings, f)
	}
	return findings
}
