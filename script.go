package invoice

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseScript reads one operation per line from r.
//
// Blank lines and lines starting with '#' are skipped.
func ParseScript(r io.Reader) ([]Operation, error) {
	var ops []Operation
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		op, err := ParseOperation(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		ops = append(ops, op)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read script: %w", err)
	}
	return ops, nil
}
