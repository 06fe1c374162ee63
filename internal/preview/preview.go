// Package preview reads the head of a file for display next to the listing.
// It is presentation glue: every failure collapses to a placeholder string.
package preview

import (
	"bufio"
	"os"
	"strings"
)

// Placeholder stands in for content that could not be read.
const Placeholder = "(preview unavailable)"

const maxLineBytes = 1 << 20

// Head returns up to maxLines lines from the start of path.
func Head(path string, maxLines int) string {
	f, err := os.Open(path)
	if err != nil {
		return Placeholder
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var lines []string
	for len(lines) < maxLines && sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if sc.Err() != nil && len(lines) == 0 {
		return Placeholder
	}
	return strings.Join(lines, "\n")
}
