package mapsink

import (
	"bufio"
	"fmt"
	"os"

	"svmlight-indexer/internal/intern"
)

const filePerm = 0o644

// Sink streams mapping entries to a file as they arrive. It satisfies
// intern.MappingWriter. Close flushes and closes the underlying file
// and must run on every exit path of a conversion.
type Sink struct {
	f *os.File
	w *bufio.Writer
}

// Create opens (truncating) the mapping file at path.
func Create(path string) (*Sink, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return nil, fmt.Errorf("creating mapping file %s: %w", path, err)
	}

	return &Sink{f: f, w: bufio.NewWriter(f)}, nil
}

// Append writes one mapping entry.
func (s *Sink) Append(index int, name string) error {
	if _, err := fmt.Fprintf(s.w, "%d %s\n", index, name); err != nil {
		return fmt.Errorf("writing mapping entry: %w", err)
	}

	return nil
}

// Close flushes buffered entries and closes the file. Safe to call
// once; returns the first error encountered.
func (s *Sink) Close() error {
	flushErr := s.w.Flush()

	if err := s.f.Close(); err != nil {
		return fmt.Errorf("closing mapping file: %w", err)
	}

	if flushErr != nil {
		return fmt.Errorf("flushing mapping file: %w", flushErr)
	}

	return nil
}

// WriteFile writes a complete mapping snapshot to path in one pass,
// overwriting any existing file. Used by batch mode.
func WriteFile(path string, entries []intern.Entry) error {
	s, err := Create(path)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if err := s.Append(e.Index, e.Name); err != nil {
			s.Close()
			return err
		}
	}

	return s.Close()
}
