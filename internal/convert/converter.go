package convert

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"svmlight-indexer/internal/intern"
	"svmlight-indexer/internal/logger"
	"svmlight-indexer/internal/mapsink"
	"svmlight-indexer/internal/svmlight"
)

// maxLineBytes bounds a single input line. Sparse feature lines can be
// long but a megabyte is far beyond anything svmlight tooling accepts.
const maxLineBytes = 1 << 20

// Config controls a Converter.
type Config struct {
	// Logger receives progress output. Nil means no output.
	Logger logger.Logger
	// ProgressInterval is the number of processed records between
	// progress lines. Zero disables progress lines.
	ProgressInterval int
}

// DefaultConfig returns the standard converter configuration: no
// progress output.
func DefaultConfig() Config {
	return Config{Logger: logger.NopLogger}
}

// Converter converts one input stream per run. It owns the interning
// table exclusively; create a fresh Converter per file.
type Converter struct {
	interner *intern.Interner
	log      logger.Logger
	every    int
	records  int
}

// New returns a Converter with an empty interning table.
func New(cfg Config) *Converter {
	log := cfg.Logger
	if log == nil {
		log = logger.NopLogger
	}

	return &Converter{
		interner: intern.New(),
		log:      log,
		every:    cfg.ProgressInterval,
	}
}

// Interner exposes the table for mapping output and inspection. The
// converter remains the only writer.
func (c *Converter) Interner() *intern.Interner {
	return c.interner
}

// Records returns the number of data records converted so far.
func (c *Converter) Records() int {
	return c.records
}

// ConvertRecord converts the feature names of one record to indices
// and returns the record with its features sorted ascending.
func (c *Converter) ConvertRecord(rec svmlight.Record) (svmlight.Record, error) {
	features, err := c.interner.IndexFeatureList(rec.Features)
	if err != nil {
		return svmlight.Record{}, err
	}

	rec.Features = features
	c.records++

	if c.every > 0 && c.records%c.every == 0 {
		c.log.Printf("Processed %d records", c.records)
	}

	return rec, nil
}

// Stream converts r to w line by line. Comments are written verbatim
// in place, data lines are converted and written immediately, empty
// lines are skipped. Output interleaving mirrors the input exactly.
func (c *Converter) Stream(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if svmlight.IsComment(line) {
			if _, err := io.WriteString(w, line+"\n"); err != nil {
				return errors.Wrap(err, "writing comment line")
			}

			continue
		}

		rec, ok := svmlight.ParseLine(line)
		if !ok {
			continue
		}

		converted, err := c.ConvertRecord(rec)
		if err != nil {
			return err
		}

		if _, err := io.WriteString(w, svmlight.FormatLine(converted)); err != nil {
			return errors.Wrap(err, "writing data line")
		}
	}

	return errors.Wrap(scanner.Err(), "reading input")
}

// StreamFiles converts inPath to outPath in streaming mode. When
// mappingPath is non-empty the mapping file is written live: entries
// appear as features are discovered, and the sink is closed on every
// exit path, error exits included.
func (c *Converter) StreamFiles(inPath, outPath, mappingPath string) (err error) {
	in, err := os.Open(inPath)
	if err != nil {
		return errors.Wrap(err, "opening input file")
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return errors.Wrap(err, "creating output file")
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "closing output file")
		}
	}()

	if mappingPath != "" {
		sink, serr := mapsink.Create(mappingPath)
		if serr != nil {
			return serr
		}
		defer func() {
			c.interner.DeactivateLiveMapping()
			if cerr := sink.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()

		if err := c.interner.ActivateLiveMapping(sink); err != nil {
			return err
		}
	}

	w := bufio.NewWriter(out)
	if err := c.Stream(in, w); err != nil {
		return err
	}

	return errors.Wrap(w.Flush(), "flushing output file")
}
