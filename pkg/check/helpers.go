package check

import (
	"fmt"
	"strings"
)

// Fail sets the result to failed status with a detail message.
func (r *Result) Fail(kind FailureKind, detail string, err error) Result {
	r.Status = StatusFail
	r.Kind = kind
	r.Details = append(r.Details, Line{Status: StatusFail, Text: detail})
	r.Err = err
	return *r
}

// Failf sets the result to failed status with a formatted detail message.
// A %w verb wraps its operand in Err and renders like %v in the detail.
func (r *Result) Failf(kind FailureKind, format string, args ...interface{}) Result {
	detail := fmt.Sprintf(strings.ReplaceAll(format, "%w", "%v"), args...)
	return r.Fail(kind, detail, fmt.Errorf(format, args...))
}

// AddDetail appends an informational line to the result.
func (r *Result) AddDetail(detail string) *Result {
	r.Details = append(r.Details, Line{Text: detail})
	return r
}

// AddDetailf appends a formatted informational line to the result.
func (r *Result) AddDetailf(format string, args ...interface{}) *Result {
	return r.AddDetail(fmt.Sprintf(format, args...))
}

// AddStatus appends a line carrying its own pass/fail status.
func (r *Result) AddStatus(ok bool, detail string) *Result {
	status := StatusOK
	if !ok {
		status = StatusFail
	}
	r.Details = append(r.Details, Line{Status: status, Text: detail})
	return r
}
