// Package model defines the data structures for anchor-based block replacement.
package model

import "strings"

// Path represents a file system path.
type Path string

// DefaultEncoding is used when a recipe does not name one.
const DefaultEncoding = "utf-8"

// Document is a line-oriented text file held in memory.
//
// Every entry of Lines keeps its own terminator ("\n" or "\r\n") exactly as it
// was read, so joining the lines reproduces the decoded text. Only the final
// line may lack a terminator.
type Document struct {
	Path     Path
	Encoding string
	Hash     string // SHA-256 of the raw bytes the document was read from
	Lines    []string
}

// NewDocument splits text into terminated lines.
func NewDocument(path Path, text string) Document {
	return Document{
		Path:     path,
		Encoding: DefaultEncoding,
		Lines:    SplitLines(text),
	}
}

// SplitLines splits text after every "\n", keeping the terminators.
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}

	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// Len returns the number of lines.
func (d Document) Len() int {
	return len(d.Lines)
}

// Text joins the lines back into a single string.
func (d Document) Text() string {
	return strings.Join(d.Lines, "")
}

// LineEnding returns the terminator of the first terminated line, "\n" when
// the document has none.
func (d Document) LineEnding() string {
	for _, line := range d.Lines {
		if strings.HasSuffix(line, "\r\n") {
			return "\r\n"
		}

		if strings.HasSuffix(line, "\n") {
			return "\n"
		}
	}

	return "\n"
}

// Line returns line i without its terminator.
func (d Document) Line(i int) string {
	return TrimLineEnding(d.Lines[i])
}

// TrimLineEnding strips a trailing "\n" or "\r\n".
func TrimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")

	return strings.TrimSuffix(line, "\r")
}
