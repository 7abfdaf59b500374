// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: OpError, the error value returned by every failing Map operation.

package core

import "errors"

// OpError couples a failed operation with its Diagnostic and sentinel.
//
// errors.Is(err, ErrNotFound) and friends work through Unwrap; the
// Diagnostic carries the subject for presentation.
type OpError struct {
	// Op is the method name, e.g. "AddRoad".
	Op string

	// Diagnostic is exactly what was sent to the Reporter.
	Diagnostic Diagnostic

	// Err is one of the package sentinels (or a sentinel of a collaborating
	// package such as astar.ErrNoPath).
	Err error
}

// Error renders "<op>: <sentinel>: <SubjectType> <subject>".
func (e *OpError) Error() string {
	return e.Op + ": " + e.Err.Error() + ": " + e.Diagnostic.SubjectType + " " + e.Diagnostic.Subject
}

// Unwrap returns the sentinel.
func (e *OpError) Unwrap() error { return e.Err }

// Fail reports d on r and returns the matching *OpError.
// Collaborating packages use it so that channel and error never disagree.
func Fail(r Reporter, op string, sentinel error, d Diagnostic) error {
	r.Error(d)

	return &OpError{Op: op, Diagnostic: d, Err: sentinel}
}

// fail is Fail bound to the map's reporter.
func (m *Map) fail(op string, sentinel error, d Diagnostic) error {
	return Fail(m.reporter, op, sentinel, d)
}

// cityMissing is the diagnostic of an unknown city.
func cityMissing(name string) Diagnostic {
	return Diagnostic{Reason: ReasonDoesntExist, SubjectType: SubjectCity, Subject: name}
}

// DiagnosticOf extracts the Diagnostic carried by err, if any.
func DiagnosticOf(err error) (Diagnostic, bool) {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Diagnostic, true
	}

	return Diagnostic{}, false
}
