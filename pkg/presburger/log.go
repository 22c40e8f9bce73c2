package presburger

import "github.com/sirupsen/logrus"

// discardLogger is the package-level default used whenever a caller builds
// a State without supplying its own logger, matching corset's convention
// (pkg/cmd) of never letting a nil logger panic a library call while still
// reserving non-Debug levels for an application's own command layer, not
// for a pure decision-procedure library.
var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(logrusDiscard{})
	return l
}()

type logrusDiscard struct{}

func (logrusDiscard) Write(p []byte) (int, error) { return len(p), nil }

// WithLogger attaches a *logrus.Logger to State for Debug-level solver
// tracing (kick-out, shadow generation, contradiction). A nil logger is
// accepted and replaced with a discard logger.
func (s State) WithLogger(l *logrus.Logger) State {
	if l == nil {
		l = discardLogger
	}
	s.log = l
	if s.store != nil {
		s.store.log = l
	}
	return s
}

func (s State) logger() *logrus.Logger {
	if s.log == nil {
		return discardLogger
	}
	return s.log
}
