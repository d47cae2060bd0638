// Package wordlist reads a newline-delimited text file one line at a time,
// tracking an implicit read position that the agent keeps in step with the
// persisted cursor.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// List is a sequential reader over a line-delimited stream.
type List struct {
	src io.ReadSeeker
	r   *bufio.Reader
}

// Open opens the word-list file for sequential reading.
func Open(path string) (*List, *os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open word list: %w", err)
	}
	return New(f), f, nil
}

// New wraps an already-open stream. The stream must be seekable for Rewind
// to work.
func New(src io.ReadSeeker) *List {
	return &List{
		src: src,
		r:   bufio.NewReader(src),
	}
}

// Skip reads and discards up to n lines from the current position. A file
// shorter than n lines simply yields fewer discards; that is not an error.
func (l *List) Skip(n uint64) error {
	for i := uint64(0); i < n; i++ {
		_, err := l.r.ReadString('\n')
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to skip line %d: %w", i+1, err)
		}
	}
	return nil
}

// Next returns the next line with its terminator stripped. ok is false once
// the stream is exhausted; the caller is expected to Rewind and start over.
func (l *List) Next() (line string, ok bool, err error) {
	s, err := l.r.ReadString('\n')
	if err == io.EOF {
		if s == "" {
			return "", false, nil
		}
		// Final line without a trailing newline still counts.
		return s, true, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read line: %w", err)
	}

	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, true, nil
}

// Rewind repositions the stream to its very start. Fails if the underlying
// source is not seekable.
func (l *List) Rewind() error {
	if _, err := l.src.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind word list: %w", err)
	}
	l.r.Reset(l.src)
	return nil
}
