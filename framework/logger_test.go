package framework

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapturingLoggerDump(t *testing.T) {
	var l CapturingLogger
	l.Printf("Sending %s %s", "GET", "http://localhost/products")
	l.Printf("Received HTTP %d", 200)

	output := l.Output()
	require.Len(t, output, 2)

	var buf bytes.Buffer
	output.Dump(&buf, "  DEBUG ")
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Regexp(t, `^  DEBUG \[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3}\] Sending GET http://localhost/products$`, lines[0])
	assert.Contains(t, lines[1], "Received HTTP 200")
}

func TestCapturingLoggerOutputIsACopy(t *testing.T) {
	var l CapturingLogger
	l.Printf("one")
	output := l.Output()
	l.Printf("two")
	assert.Len(t, output, 1)
	assert.Len(t, l.Output(), 2)
}

func TestDumpIndentsMultiLineMessages(t *testing.T) {
	output := CapturedOutput{
		{Time: time.Date(2024, 1, 2, 3, 4, 5, 6000000, time.UTC), Message: "goroutine 1 [running]:\nmain.main()\n"},
	}

	var buf bytes.Buffer
	output.Dump(&buf, "> ")
	assert.Equal(t,
		"> [2024-01-02 03:04:05.006] goroutine 1 [running]:\n"+
			">                           main.main()\n",
		buf.String())
}
