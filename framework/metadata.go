package framework

// Severity is how important a test is considered to be in reports. It has no effect on how
// the test runs.
type Severity string

const (
	SeverityBlocker  Severity = "blocker"
	SeverityCritical Severity = "critical"
	SeverityNormal   Severity = "normal"
	SeverityMinor    Severity = "minor"
	SeverityTrivial  Severity = "trivial"
)

// Metadata contains descriptive annotations for a test, which are passed through to reporters.
type Metadata struct {
	Feature     string   `json:"feature,omitempty"`
	Severity    Severity `json:"severity,omitempty"`
	DisplayName string   `json:"displayName,omitempty"`
}

// Merge returns a copy of m with any non-empty fields of other replacing its own.
func (m Metadata) Merge(other Metadata) Metadata {
	if other.Feature != "" {
		m.Feature = other.Feature
	}
	if other.Severity != "" {
		m.Severity = other.Severity
	}
	if other.DisplayName != "" {
		m.DisplayName = other.DisplayName
	}
	return m
}
