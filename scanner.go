package objmesh

import "bytes"

// lineKind classifies a logical OBJ line by its leading directive.
type lineKind int

const (
	lineIgnored lineKind = iota
	linePosition
	lineTexture
	lineNormal
	lineFace
)

// classifyLine trims trailing CR/LF, strips any comment starting at '#',
// trims leading/trailing spaces and tabs, and returns the line's kind
// along with the directive's argument tail (everything after the leading
// directive token, already trimmed). A directive with no arguments at all
// (bare "v", "vt", "vn", or "f") classifies with an empty tail rather than
// being ignored.
func classifyLine(line []byte) (kind lineKind, tail []byte) {
	line = trimEOL(line)
	if h := bytes.IndexByte(line, '#'); h >= 0 {
		line = line[:h]
	}
	line = trimSpaceTab(line)
	if len(line) == 0 {
		return lineIgnored, nil
	}

	directive, rest := splitDirective(line)
	switch string(directive) {
	case "v":
		return linePosition, rest
	case "vt":
		return lineTexture, rest
	case "vn":
		return lineNormal, rest
	case "f":
		return lineFace, rest
	default:
		return lineIgnored, nil
	}
}

// classifyLineKindOnly is the producer's counting fast path: it determines
// only whether a line is v/vt/vn, without extracting a tail. It must agree
// with classifyLine on every line, since the producer's running totals and
// the consumer's appended entities are required to stay in lockstep — so it
// strips comments and recognizes bare directives the same way classifyLine
// does.
func classifyLineKindOnly(line []byte) lineKind {
	line = trimEOL(line)
	if h := bytes.IndexByte(line, '#'); h >= 0 {
		line = line[:h]
	}
	line = trimSpaceTab(line)
	if len(line) == 0 {
		return lineIgnored
	}

	directive, _ := splitDirective(line)
	switch string(directive) {
	case "v":
		return linePosition
	case "vt":
		return lineTexture
	case "vn":
		return lineNormal
	default:
		return lineIgnored
	}
}

// splitDirective splits a trimmed, comment-free line into its leading
// non-space directive token and the remaining argument tail, with the tail
// itself trimmed of surrounding space/tab.
func splitDirective(line []byte) (directive, rest []byte) {
	i := 0
	for i < len(line) && !isSpaceTab(line[i]) {
		i++
	}
	return line[:i], trimSpaceTab(line[i:])
}

// tokenScanner walks whitespace-delimited tokens within a line tail.
type tokenScanner struct {
	data []byte
	pos  int
}

func newTokenScanner(data []byte) tokenScanner {
	return tokenScanner{data: data}
}

// next returns the next token and true, or (nil, false) when exhausted.
func (s *tokenScanner) next() ([]byte, bool) {
	for s.pos < len(s.data) && isSpaceTab(s.data[s.pos]) {
		s.pos++
	}
	if s.pos >= len(s.data) {
		return nil, false
	}
	start := s.pos
	for s.pos < len(s.data) && !isSpaceTab(s.data[s.pos]) {
		s.pos++
	}
	return s.data[start:s.pos], true
}

func isSpaceTab(b byte) bool {
	return b == ' ' || b == '\t'
}

func trimEOL(line []byte) []byte {
	n := len(line)
	for n > 0 && (line[n-1] == '\n' || line[n-1] == '\r') {
		n--
	}
	return line[:n]
}

func trimSpaceTab(b []byte) []byte {
	i := 0
	for i < len(b) && isSpaceTab(b[i]) {
		i++
	}
	j := len(b)
	for j > i && isSpaceTab(b[j-1]) {
		j--
	}
	return b[i:j]
}
