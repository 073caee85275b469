package tracklog

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type logger struct {
	writer io.Writer
}

func (l *logger) Write(p []byte) (n int, err error) {
	n, err = l.writer.Write(p)
	return n, errors.WithStack(err)
}

func (l *logger) SuccessPrintf(msg string, a ...any) {
	l.colorPrintf(color.New(color.FgHiGreen), "✔ "+msg+"\n", a...)
}

func (l *logger) Println(a ...any) {
	l.print(fmt.Sprintln(a...))
}

func (l *logger) Printf(msg string, a ...any) {
	l.print(fmt.Sprintf(msg, a...))
}

func (l *logger) colorPrintf(c *color.Color, msg string, a ...any) {
	if _, err := c.Fprintf(l.writer, msg, a...); err != nil {
		logrus.WithError(err).Debug("failed to write output")
	}
}

func (l *logger) print(msg string) {
	if _, err := io.WriteString(l.writer, msg); err != nil {
		logrus.WithError(err).Debug("failed to write output")
	}
}
