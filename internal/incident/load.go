// Copyright 2026 The GTDash Authors
// SPDX-License-Identifier: MIT

package incident

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"github.com/gtdash/gtdash/internal/testable"
)

// DefaultEncoding is the text encoding of the published GTD export.
const DefaultEncoding = "latin-1"

// FS is the file system Load reads from. Override in tests.
var FS testable.FileSystem = testable.DefaultFS

var (
	// ErrNotFound indicates the dataset path does not exist.
	ErrNotFound = errors.New("dataset not found")

	// ErrParse indicates the dataset could not be parsed under the declared
	// encoding: malformed CSV, a missing required column, an invalid field
	// value, or bytes that are not valid text.
	ErrParse = errors.New("dataset parse error")

	// ErrEncoding indicates the declared encoding name is not recognized.
	ErrEncoding = errors.New("unknown encoding")
)

// Load reads the CSV file at path, decoding it with the named encoding.
// An empty encoding name means DefaultEncoding.
func Load(path, encodingName string) (*Table, error) {
	f, err := FS.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	t, err := Parse(f, encodingName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse reads CSV incident data from r, decoding it with the named encoding.
func Parse(r io.Reader, encodingName string) (*Table, error) {
	enc, strict, err := resolveEncoding(encodingName)
	if err != nil {
		return nil, err
	}
	if enc != nil {
		r = transform.NewReader(r, enc.NewDecoder())
	}

	reader := csv.NewReader(bufio.NewReaderSize(r, 64*1024))
	reader.ReuseRecord = true
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file, no header row", ErrParse)
		}
		return nil, fmt.Errorf("%w: read header: %v", ErrParse, err)
	}
	header = append([]string(nil), header...) // ReuseRecord recycles the slice
	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var records []Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		if strict {
			for i, field := range row {
				if !utf8.ValidString(field) {
					line, _ := reader.FieldPos(i)
					return nil, fmt.Errorf("%w: line %d column %q: invalid UTF-8", ErrParse, line, header[i])
				}
			}
		}
		rec, err := cols.record(reader, row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return &Table{records: records}, nil
}

// columnIndex maps each known field to its position in the header, or -1.
type columnIndex struct {
	eventID, year, country, region, provState, city, lat, lon, success int
}

func mapColumns(header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		h = strings.TrimSpace(h)
		if _, dup := pos[h]; !dup {
			pos[h] = i
		}
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := pos[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return columnIndex{}, fmt.Errorf("%w: missing required columns: %s", ErrParse, strings.Join(missing, ", "))
	}

	lookup := func(name string) int {
		if i, ok := pos[name]; ok {
			return i
		}
		return -1
	}
	return columnIndex{
		eventID:   lookup(ColEventID),
		year:      lookup(ColYear),
		country:   lookup(ColCountry),
		region:    lookup(ColRegion),
		provState: lookup(ColProvState),
		city:      lookup(ColCity),
		lat:       lookup(ColLatitude),
		lon:       lookup(ColLongitude),
		success:   lookup(ColSuccess),
	}, nil
}

func (c columnIndex) record(reader *csv.Reader, row []string) (Record, error) {
	field := func(i int) string {
		if i < 0 {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	fail := func(i int, name string, err error) error {
		line, _ := reader.FieldPos(i)
		return fmt.Errorf("%w: line %d column %q: %v", ErrParse, line, name, err)
	}

	rec := Record{
		EventID:   field(c.eventID),
		Country:   field(c.country),
		Region:    field(c.region),
		ProvState: field(c.provState),
		City:      field(c.city),
	}

	year, err := strconv.Atoi(field(c.year))
	if err != nil {
		return Record{}, fail(c.year, ColYear, err)
	}
	rec.Year = year

	success, err := parseFlag(field(c.success))
	if err != nil {
		return Record{}, fail(c.success, ColSuccess, err)
	}
	rec.Success = success

	if rec.Latitude, err = parseOptionalFloat(field(c.lat)); err != nil {
		return Record{}, fail(c.lat, ColLatitude, err)
	}
	if rec.Longitude, err = parseOptionalFloat(field(c.lon)); err != nil {
		return Record{}, fail(c.lon, ColLongitude, err)
	}
	return rec, nil
}

// parseFlag accepts 0/1 in integer or float form.
func parseFlag(s string) (bool, error) {
	switch s {
	case "1", "1.0":
		return true, nil
	case "0", "0.0":
		return false, nil
	}
	return false, fmt.Errorf("invalid flag %q (want 0 or 1)", s)
}

func parseOptionalFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// resolveEncoding maps an encoding label to a decoder. A nil encoding means
// the input is read as-is; strict reports that fields must be valid UTF-8.
func resolveEncoding(name string) (enc encoding.Encoding, strict bool, err error) {
	label := strings.ToLower(strings.TrimSpace(name))
	switch label {
	case "":
		return charmap.ISO8859_1, false, nil
	case "latin-1", "latin1", "latin_1", "l1", "iso-8859-1", "iso8859-1", "iso_8859-1":
		// Strict ISO-8859-1, not the WHATWG windows-1252 alias.
		return charmap.ISO8859_1, false, nil
	case "utf-8", "utf8":
		return nil, true, nil
	}

	if e, err := htmlindex.Get(label); err == nil {
		if n, _ := htmlindex.Name(e); n == "utf-8" {
			return nil, true, nil
		}
		return e, false, nil
	}
	if e, err := ianaindex.IANA.Encoding(label); err == nil && e != nil {
		return e, false, nil
	}
	return nil, false, fmt.Errorf("%w: %q", ErrEncoding, name)
}

// CheckEncoding reports whether name is a recognized encoding label.
func CheckEncoding(name string) error {
	_, _, err := resolveEncoding(name)
	return err
}
