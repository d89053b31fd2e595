// Package dataset provides loading and caching of the pre-aggregated
// crime-statistics tables backing the dashboard. This package has no UI
// dependencies and can be used by any frontend.
package dataset

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Shape describes the on-disk layout of a source CSV file.
type Shape int

const (
	// ShapeFlat is the common layout: a header row with "key" and "value"
	// columns, one category per data row. Extra columns are ignored.
	ShapeFlat Shape = iota

	// ShapeWide is the layout of the sex tables: one column per category
	// and a single data row of counts. The loader unpivots it into the
	// same key/value form as ShapeFlat.
	ShapeWide
)

// String returns the manifest spelling of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeFlat:
		return "flat"
	case ShapeWide:
		return "wide"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// ParseShape converts a manifest spelling into a Shape.
func ParseShape(s string) (Shape, error) {
	switch s {
	case "flat":
		return ShapeFlat, nil
	case "wide":
		return ShapeWide, nil
	default:
		return 0, fmt.Errorf("unknown dataset shape %q (want \"flat\" or \"wide\")", s)
	}
}

// Row is a single category/count pair.
type Row struct {
	Key   string `json:"key"`
	Value int64  `json:"value"`
}

// Table is an ordered collection of category/count rows loaded from one
// source file. Tables are never mutated after load.
type Table struct {
	Key   string // dataset key, e.g. "weapon_type"
	Label string // display name, e.g. "Type of Weapon Involved"
	Rows  []Row
}

// Total returns the sum of all row values.
func (t Table) Total() int64 {
	var total int64
	for _, r := range t.Rows {
		total += r.Value
	}
	return total
}

// Empty reports whether the table has no rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// Source declares one input file: where it lives, how it is shaped, and
// how it is presented. The full set of sources is fixed at startup.
type Source struct {
	Key   string // unique identifier: "victim_sex"
	Label string // display name: "Victim Sex"
	File  string // file name relative to the data directory
	Shape Shape  // flat or wide
}

// Snapshot is the immutable result of one full load pass. All registered
// sources are present, or the snapshot does not exist at all; there is no
// partial-success state.
type Snapshot struct {
	ID       uuid.UUID
	LoadedAt time.Time
	tables   map[string]Table
	keys     []string // registration order
}

// Table returns the table for a dataset key.
func (s *Snapshot) Table(key string) (Table, bool) {
	t, ok := s.tables[key]
	return t, ok
}

// Keys returns the dataset keys in registration order.
func (s *Snapshot) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Len returns the number of tables in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.tables)
}
