package commands

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// promptLine prints label and reads one trimmed line from r.
func promptLine(r *bufio.Scanner, w io.Writer, label string) string {
	fmt.Fprint(w, label)
	if !r.Scan() {
		return ""
	}
	return strings.TrimSpace(r.Text())
}

// promptYes asks a y/N question; only "y"/"Y" counts as consent.
func promptYes(r *bufio.Scanner, w io.Writer, label string) bool {
	ans := promptLine(r, w, label)
	return strings.EqualFold(ans, "y")
}

// parsePicks turns a comma/space separated list of 1-based row numbers into
// indexes within [0,n). Invalid tokens are reported and skipped.
func parsePicks(input string, n int, w io.Writer) []int {
	fields := strings.FieldsFunc(input, func(r rune) bool { return r == ',' || r == ' ' })
	var out []int
	for _, f := range fields {
		i, err := strconv.Atoi(f)
		if err != nil || i < 1 || i > n {
			fmt.Fprintf(w, "잘못된 번호: %s\n", f)
			continue
		}
		out = append(out, i-1)
	}
	return out
}
