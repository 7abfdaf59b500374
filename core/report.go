// SPDX-License-Identifier: MIT
//
// File: report.go
// Role: Outcome channels. Reporter, Diagnostic and the stock sinks
//       (StreamReporter, Recorder, Discard).

package core

import (
	"fmt"
	"io"
)

// Diagnostic reasons.
const (
	ReasonAlreadyExists = "already exists"
	ReasonDoesntExist   = "doesn't exist"
	ReasonMustDiffer    = "must be different"
	ReasonEmpty         = "must not be empty"
	ReasonNotFinite     = "must be finite"
)

// Diagnostic subject types.
const (
	SubjectCity = "City"
	SubjectRoad = "Road"
	SubjectPath = "Path"
)

// Diagnostic describes one failed operation.
type Diagnostic struct {
	Reason      string
	SubjectType string
	Subject     string
}

// String renders the two-line form without a trailing newline:
//
//	Error: <reason>
//	<SubjectType>: <subject>
func (d Diagnostic) String() string {
	return "Error: " + d.Reason + "\n" + d.SubjectType + ": " + d.Subject
}

// PairSubject formats a road or path subject as "a - b".
func PairSubject(a, b string) string { return a + " - " + b }

// Reporter receives the two outcome channels of a Map.
type Reporter interface {
	// Info receives a confirmation for a successful mutation.
	Info(msg string)

	// Error receives a diagnostic for a failed operation.
	Error(d Diagnostic)
}

// Discard drops everything.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Info(string)      {}
func (discard) Error(Diagnostic) {}

// StreamReporter writes informational lines to Out and diagnostics to Err,
// one message per line. Write errors are ignored; the map state never depends
// on the sink.
type StreamReporter struct {
	Out io.Writer
	Err io.Writer
}

// NewStreamReporter returns a StreamReporter over the given writers.
func NewStreamReporter(out, errw io.Writer) *StreamReporter {
	return &StreamReporter{Out: out, Err: errw}
}

// Info implements Reporter.
func (r *StreamReporter) Info(msg string) {
	fmt.Fprintln(r.Out, msg)
}

// Error implements Reporter.
func (r *StreamReporter) Error(d Diagnostic) {
	fmt.Fprintln(r.Err, d.String())
}

// Recorder keeps every reported outcome in memory, in order.
type Recorder struct {
	Infos       []string
	Diagnostics []Diagnostic
}

// Info implements Reporter.
func (r *Recorder) Info(msg string) { r.Infos = append(r.Infos, msg) }

// Error implements Reporter.
func (r *Recorder) Error(d Diagnostic) { r.Diagnostics = append(r.Diagnostics, d) }

// Last returns the most recent diagnostic and whether there was one.
func (r *Recorder) Last() (Diagnostic, bool) {
	if len(r.Diagnostics) == 0 {
		return Diagnostic{}, false
	}
	return r.Diagnostics[len(r.Diagnostics)-1], true
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	r.Infos = nil
	r.Diagnostics = nil
}
