package check

// Status represents the outcome of a check or of one of its lines.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// FailureKind classifies why a check failed.
type FailureKind string

const (
	KindMissingArtifact    FailureKind = "missing-artifact"
	KindUnreadableArtifact FailureKind = "unreadable-artifact"
	KindMarkerAbsent       FailureKind = "marker-absent"
	KindUnexpected         FailureKind = "unexpected"
)

// Line is one human-readable line of a result.
// Status is empty for informational lines.
type Line struct {
	Status Status
	Text   string
}

// Result holds the outcome of a single check.
type Result struct {
	Name    string      // e.g., "Backend generator capability"
	Status  Status      // OK or FAIL
	Kind    FailureKind // empty unless Status is FAIL
	Details []Line      // status lines in evaluation order
	Err     error       // underlying error for failures
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}
