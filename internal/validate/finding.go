package validate

import "fmt"

// Severity classifies a finding as blocking or advisory.
type Severity string

const (
	// SeverityError marks a violation of the plugin specification.
	SeverityError Severity = "error"

	// SeverityWarning marks an advisory problem that does not make the
	// plugin invalid.
	SeverityWarning Severity = "warning"
)

// Kind identifies the class of problem a finding reports.
type Kind string

const (
	KindMissingField      Kind = "missing_field"
	KindInvalidType       Kind = "invalid_type"
	KindInvalidValue      Kind = "invalid_value"
	KindUnsupportedField  Kind = "unsupported_field"
	KindDeprecatedPattern Kind = "deprecated_pattern"
	KindStructural        Kind = "structural"
)

// Finding is a single validation result tied to one component or file.
// Component is the path relative to the plugin root, except for findings
// about the root itself, which carry the root path as given.
type Finding struct {
	Severity  Severity `json:"severity"`
	Component string   `json:"component"`
	Kind      Kind     `json:"type"`
	Message   string   `json:"message"`
	Reference string   `json:"reference,omitempty"`
}

func errorf(component string, kind Kind, format string, args ...any) Finding {
	return Finding{
		Severity:  SeverityError,
		Component: component,
		Kind:      kind,
		Message:   fmt.Sprintf(format, args...),
	}
}

func warningf(component string, kind Kind, format string, args ...any) Finding {
	return Finding{
		Severity:  SeverityWarning,
		Component: component,
		Kind:      kind,
		Message:   fmt.Sprintf(format, args...),
	}
}
