// SPDX-License-Identifier: EPL-2.0

package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a text logger writing to w. Audio may be written to stdout, so
// callers pass stderr or a file here.
func New(w io.Writer, debug bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	if debug {
		l.SetLevel(logrus.DebugLevel)
	}

	return l
}
