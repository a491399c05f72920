package check

// Checker is implemented by all check types.
// Each check verifies one feature of the scanned application
// and returns a Result indicating success or failure.
//
// Implementations:
//   - featurecase.Check: verifies markers across one or more artifacts
type Checker interface {
	Run() Result
}

// CheckerFunc adapts a plain function to the Checker interface.
type CheckerFunc func() Result

// Run calls f.
func (f CheckerFunc) Run() Result {
	return f()
}
