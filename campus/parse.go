package campus

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Sentinel errors for line parsing.
var (
	// ErrNotConnection marks a line that carries no connection (graph header, braces, blanks).
	ErrNotConnection = errors.New("campus: not a connection line")

	// ErrMalformedLine marks a connection line that cannot be parsed.
	ErrMalformedLine = errors.New("campus: malformed connection line")
)

// connectionRe matches `"From" -- "To" [seconds=12.5];` with optional spaces and trailing semicolon.
var connectionRe = regexp.MustCompile(`^\s*"([^"]+)"\s*--\s*"([^"]+)"\s*\[\s*seconds\s*=\s*([^\]\s]+)\s*\]\s*;?\s*$`)

// Connection is one undirected walkway between two places.
type Connection struct {
	From    string
	To      string
	Seconds float64
}

// ParseLine extracts a Connection from one line of a DOT-like campus file.
//
// Lines without "--" return ErrNotConnection. Lines with "--" that do not match the
// expected shape, or whose duration is not a finite non-negative number, return ErrMalformedLine.
func ParseLine(line string) (Connection, error) {
	if !strings.Contains(line, "--") {
		return Connection{}, ErrNotConnection
	}
	m := connectionRe.FindStringSubmatch(line)
	if m == nil {
		return Connection{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	seconds, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return Connection{}, fmt.Errorf("%w: %q: %w", ErrMalformedLine, line, err)
	}
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return Connection{}, fmt.Errorf("%w: %q: seconds must be finite and non-negative", ErrMalformedLine, line)
	}

	from, to := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	if from == "" || to == "" {
		return Connection{}, fmt.Errorf("%w: %q: empty place name", ErrMalformedLine, line)
	}

	return Connection{From: from, To: to, Seconds: seconds}, nil
}
