package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Loader reads every registered source from a data directory and produces
// an immutable Snapshot. A load is all-or-nothing: one missing or
// malformed file fails the whole pass.
type Loader struct {
	dir     string
	sources []Source
}

// NewLoader creates a loader over the given directory and source set.
func NewLoader(dir string, sources []Source) *Loader {
	return &Loader{dir: dir, sources: sources}
}

// Load reads all sources and returns a snapshot.
//
// Missing files are detected eagerly for every declared input before any
// parsing happens, so the error names the first absent file even when
// later files would also fail.
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	// Eager existence check across the whole source set.
	for _, src := range l.sources {
		path := filepath.Join(l.dir, src.File)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, &MissingFileError{Key: src.Key, File: src.File, Dir: l.dir}
			}
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
	}

	snap := &Snapshot{
		ID:       uuid.New(),
		LoadedAt: time.Now().UTC(),
		tables:   make(map[string]Table, len(l.sources)),
	}

	for _, src := range l.sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		table, err := l.loadOne(src)
		if err != nil {
			return nil, err
		}
		snap.tables[src.Key] = table
		snap.keys = append(snap.keys, src.Key)
	}

	return snap, nil
}

// loadOne reads a single source file into a Table according to its shape.
func (l *Loader) loadOne(src Source) (Table, error) {
	path := filepath.Join(l.dir, src.File)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Table{}, &MissingFileError{Key: src.Key, File: src.File, Dir: l.dir}
		}
		return Table{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var rows []Row
	switch src.Shape {
	case ShapeWide:
		rows, err = readWide(f, src.File)
	default:
		rows, err = readFlat(f, src.File)
	}
	if err != nil {
		return Table{}, err
	}

	return Table{Key: src.Key, Label: src.Label, Rows: rows}, nil
}

// readFlat parses the common key/value layout. The header must contain
// "key" and "value" columns (case-insensitive); other columns are ignored.
func readFlat(r io.Reader, name string) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, &ParseError{File: name, Line: 1, Err: fmt.Errorf("read header: %w", err)}
	}

	keyIdx, valIdx := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "key":
			keyIdx = i
		case "value":
			valIdx = i
		}
	}
	if keyIdx < 0 || valIdx < 0 {
		return nil, &ParseError{File: name, Line: 1,
			Err: fmt.Errorf("header %v is missing key/value columns", header)}
	}

	var rows []Row
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &ParseError{File: name, Line: line, Err: err}
		}
		if keyIdx >= len(record) || valIdx >= len(record) {
			return nil, &ParseError{File: name, Line: line,
				Err: fmt.Errorf("row has %d fields, want at least %d", len(record), valIdx+1)}
		}

		value, err := parseCount(record[valIdx])
		if err != nil {
			return nil, &ParseError{File: name, Line: line, Err: err}
		}

		rows = append(rows, Row{
			Key:   strings.TrimSpace(record[keyIdx]),
			Value: value,
		})
	}

	return rows, nil
}

// readWide parses the wide layout of the sex tables: one column per
// category and a single data row of counts. Each column becomes one
// output row, preserving column order.
func readWide(r io.Reader, name string) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, &ParseError{File: name, Line: 1, Err: fmt.Errorf("read header: %w", err)}
	}

	record, err := cr.Read()
	if err == io.EOF {
		// Header-only file unpivots to an empty table.
		return nil, nil
	}
	if err != nil {
		return nil, &ParseError{File: name, Line: 2, Err: err}
	}

	rows := make([]Row, 0, len(header))
	for i, col := range header {
		if i >= len(record) {
			return nil, &ParseError{File: name, Line: 2,
				Err: fmt.Errorf("row has %d fields, header has %d", len(record), len(header))}
		}
		value, err := parseCount(record[i])
		if err != nil {
			return nil, &ParseError{File: name, Line: 2, Err: err}
		}
		rows = append(rows, Row{Key: strings.TrimSpace(col), Value: value})
	}

	return rows, nil
}

// parseCount parses a non-negative integer count. Thousands separators,
// as found in some published extracts, are tolerated.
func parseCount(s string) (int64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid count %q", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative count %d", v)
	}
	return v, nil
}
