package convert

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"

	"svmlight-indexer/internal/mapsink"
	"svmlight-indexer/internal/svmlight"
)

// Load reads a whole input file into records plus a separate comment
// list. Relative interleaving of comments and data is lost; batch mode
// regroups comments ahead of the data on output.
func Load(path string) (records []svmlight.Record, comments []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "opening input file")
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if svmlight.IsComment(line) {
			comments = append(comments, line)
			continue
		}

		if rec, ok := svmlight.ParseLine(line); ok {
			records = append(records, rec)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "reading input")
	}

	return records, comments, nil
}

// ConvertAll converts a loaded record list in order.
func (c *Converter) ConvertAll(records []svmlight.Record) ([]svmlight.Record, error) {
	out := make([]svmlight.Record, 0, len(records))

	for _, rec := range records {
		converted, err := c.ConvertRecord(rec)
		if err != nil {
			return nil, err
		}

		out = append(out, converted)
	}

	return out, nil
}

// Write writes comments first, then records, to path.
func Write(path string, records []svmlight.Record, comments []string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output file")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "closing output file")
		}
	}()

	w := bufio.NewWriter(f)

	for _, comment := range comments {
		if _, err := w.WriteString(comment + "\n"); err != nil {
			return errors.Wrap(err, "writing comment line")
		}
	}

	for _, rec := range records {
		if _, err := w.WriteString(svmlight.FormatLine(rec)); err != nil {
			return errors.Wrap(err, "writing data line")
		}
	}

	return errors.Wrap(w.Flush(), "flushing output file")
}

// BatchFiles is the whole-file convenience entry point: load, convert,
// write, and optionally dump the mapping in one pass at the end.
func (c *Converter) BatchFiles(inPath, outPath, mappingPath string) error {
	c.log.Printf("Loading data from %s", inPath)

	records, comments, err := Load(inPath)
	if err != nil {
		return err
	}

	c.log.Printf("Converting data")

	converted, err := c.ConvertAll(records)
	if err != nil {
		return err
	}

	c.log.Printf("Writing data to %s", outPath)

	if err := Write(outPath, converted, comments); err != nil {
		return err
	}

	if mappingPath != "" {
		c.log.Printf("Writing mapping to %s", mappingPath)
		return mapsink.WriteFile(mappingPath, c.interner.Mapping())
	}

	return nil
}
