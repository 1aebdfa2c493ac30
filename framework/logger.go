package framework

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

const timestampFormat = "2006-01-02 15:04:05.000"

// Logger is the logging interface shared by the harness and the checks. *log.Logger satisfies it.
type Logger interface {
	Printf(message string, args ...interface{})
}

type nullLogger struct{}

func (nullLogger) Printf(string, ...interface{}) {}

// NullLogger returns a Logger that discards everything.
func NullLogger() Logger { return nullLogger{} }

// CapturedMessage is one entry of debug output recorded during a check.
type CapturedMessage struct {
	Time    time.Time
	Message string
}

// CapturedOutput is the debug output of one check, in the order it was logged.
type CapturedOutput []CapturedMessage

// CapturingLogger holds a check's debug output until the check has finished, so that the test
// logger can decide whether to show it.
type CapturingLogger struct {
	output CapturedOutput
	lock   sync.Mutex
}

func (l *CapturingLogger) Printf(message string, args ...interface{}) {
	m := CapturedMessage{Time: time.Now(), Message: fmt.Sprintf(message, args...)}
	l.lock.Lock()
	l.output = append(l.output, m)
	l.lock.Unlock()
}

// Output returns a copy of everything logged so far.
func (l *CapturingLogger) Output() CapturedOutput {
	l.lock.Lock()
	defer l.lock.Unlock()
	return append(CapturedOutput(nil), l.output...)
}

// Dump writes one timestamped line per message. Messages that span several lines, such as
// response bodies or stack traces, have their continuation lines indented to match.
func (output CapturedOutput) Dump(dest io.Writer, prefix string) {
	for _, m := range output {
		stamp := "[" + m.Time.Format(timestampFormat) + "] "
		lines := strings.Split(strings.TrimRight(m.Message, "\n"), "\n")
		fmt.Fprintf(dest, "%s%s%s\n", prefix, stamp, lines[0])
		indent := prefix + strings.Repeat(" ", len(stamp))
		for _, line := range lines[1:] {
			fmt.Fprintf(dest, "%s%s\n", indent, line)
		}
	}
}
