// Package logging builds the logrus loggers used by the citymap commands and
// adapts them to core.Reporter.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/citymap/core"
)

// Formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// New creates an isolated logger writing to w. Unknown levels fall back to
// info; any format other than "json" selects the text formatter.
// The global logrus logger is never touched.
func New(level, format string, w io.Writer) *logrus.Entry {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}

	var formatter logrus.Formatter
	if format == FormatJSON {
		formatter = &logrus.JSONFormatter{}
	} else {
		formatter = &logrus.TextFormatter{DisableColors: true, FullTimestamp: true}
	}

	return logrus.NewEntry(&logrus.Logger{
		Out:       w,
		Formatter: formatter,
		Hooks:     make(logrus.LevelHooks),
		Level:     lvl,
		ExitFunc:  func(int) {},
	})
}

// Discard returns an entry whose output is thrown away.
func Discard() *logrus.Entry {
	return logrus.NewEntry(&logrus.Logger{Out: io.Discard})
}

// Reporter forwards core outcome messages to a logrus entry: informational
// messages at info level, diagnostics at warn level with their parts as fields.
type Reporter struct {
	Entry *logrus.Entry
}

// NewReporter returns a Reporter logging through e.
func NewReporter(e *logrus.Entry) *Reporter {
	return &Reporter{Entry: e}
}

// Info implements core.Reporter.
func (r *Reporter) Info(msg string) {
	r.Entry.Info(msg)
}

// Error implements core.Reporter.
func (r *Reporter) Error(d core.Diagnostic) {
	r.Entry.WithFields(logrus.Fields{
		"reason":       d.Reason,
		"subject_type": d.SubjectType,
		"subject":      d.Subject,
	}).Warn("Error: " + d.Reason)
}

// Tee fans every message out to several reporters in order.
type Tee []core.Reporter

// Info implements core.Reporter.
func (t Tee) Info(msg string) {
	for _, r := range t {
		r.Info(msg)
	}
}

// Error implements core.Reporter.
func (t Tee) Error(d core.Diagnostic) {
	for _, r := range t {
		r.Error(d)
	}
}
