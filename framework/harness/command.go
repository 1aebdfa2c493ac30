package harness

import (
	"strings"

	"github.com/alessio/shellescape"
)

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// curlCommand returns a shell command that would send the same request, so that a failing check
// can be reproduced by hand.
func curlCommand(method, target string, body []byte) string {
	var b commandBuilder
	b.add("curl", "-sS", "-X", method)
	if body != nil {
		b.add("-H", "Content-Type: application/json", "--data", string(body))
	}
	b.add(target)
	return b.String()
}
