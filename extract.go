package main

import (
	"errors"
	"fmt"
	"strings"
)

const (
	startToken = "@MANSTART"
	endToken   = "@MANEND"
)

var (
	ErrNoOpenDelimiter   = errors.New("no opened '{' for " + startToken)
	ErrUnclosedDelimiter = errors.New("unclosed '{' for " + startToken)
	ErrMalformedName     = errors.New("malformed manpage name")
	ErrMissingEnd        = errors.New("unclosed " + startToken + " (use " + endToken + ")")
)

// linePrefixes are tried in order; only the first match is removed.
var linePrefixes = []string{
	`\`,
	"// ",
	"//! ",
	"/// ",
	"->",
	"<!-",
}

// manBlock is one parsed @MANSTART occurrence.
type manBlock struct {
	name string
	body string
}

// BlockError reports a malformed block together with the file it came from.
type BlockError struct {
	Path  string
	Index int
	Err   error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *BlockError) Unwrap() error { return e.Err }

// parseBlocks returns every block in content in source order. Blocks preceding
// a malformed one are returned alongside the error.
func parseBlocks(path, content string) ([]manBlock, error) {
	segments := strings.Split(content, startToken)
	var blocks []manBlock
	for i, seg := range segments[1:] {
		block, err := parseSegment(seg)
		if err != nil {
			return blocks, &BlockError{Path: path, Index: i, Err: err}
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

func parseSegment(seg string) (manBlock, error) {
	open := strings.IndexByte(seg, '{')
	if open < 0 {
		return manBlock{}, ErrNoOpenDelimiter
	}
	closing := strings.IndexByte(seg, '}')
	if closing < 0 {
		return manBlock{}, ErrUnclosedDelimiter
	}
	if closing < open {
		return manBlock{}, ErrMalformedName
	}
	name := seg[open+1 : closing]
	if name == "" || strings.ContainsAny(name, "\r\n") {
		return manBlock{}, ErrMalformedName
	}
	rest := seg[closing+1:]
	end := strings.Index(rest, endToken)
	if end < 0 {
		return manBlock{}, ErrMissingEnd
	}
	return manBlock{
		name: name,
		body: strings.TrimSpace(rest[:end+len(endToken)]),
	}, nil
}

// cleanBody drops the first line and any line carrying the end token, strips
// one leading decoration from the rest and terminates each with a newline.
func cleanBody(body string) string {
	lines := splitLines(body)
	if len(lines) <= 1 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(body) + len(body)/3)
	for _, line := range lines[1:] {
		if strings.Contains(line, endToken) {
			continue
		}
		b.WriteString(stripPrefix(line))
		b.WriteByte('\n')
	}
	return b.String()
}

func stripPrefix(line string) string {
	for _, prefix := range linePrefixes {
		if strings.HasPrefix(line, prefix) {
			return line[len(prefix):]
		}
	}
	return line
}

// splitLines splits on '\n', dropping a trailing '\r' from each line and the
// empty element after a final newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
