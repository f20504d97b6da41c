package log

import (
	"io"

	logrus_stack "github.com/Gurpartap/logrus-stack"
	"github.com/sirupsen/logrus"
	"github.com/ztrue/tracerr"
)

// F is shorthand for log fields.
type F = map[string]interface{}

// New returns the shared logger.
func New() *logrus.Logger {
	return logrus.StandardLogger()
}

// NewEntry returns an entry carrying the error message and, when the error
// was wrapped by tracerr, its frames as a debug field.
func NewEntry(err error) *logrus.Entry {
	var frames []string
	for _, f := range tracerr.StackTrace(err) {
		frames = append(frames, f.String())
	}
	entry := logrus.WithField("error", err.Error())
	if len(frames) > 0 {
		entry = entry.WithField("debug", frames)
	}
	return entry
}

// SetJSONFormat switches the logger to JSON output, used with log files.
func SetJSONFormat() {
	logrus.SetFormatter(new(logrus.JSONFormatter))
}

// ShowStack attaches caller stacks to every entry. Cannot be undone.
func ShowStack() {
	logrus.AddHook(logrus_stack.StandardHook())
}

// SetOutput tees the logger to every given writer.
func SetOutput(out ...io.Writer) {
	if len(out) == 0 {
		return
	}
	logrus.SetOutput(io.MultiWriter(out...))
}
