package csvio

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"
	// Timestamps are exported without a zone; import also accepts RFC3339.
	dateTimeLayout = "2006-01-02T15:04:05"
)

// Tokens accepted as true. Anything else non-empty parses to false; empty
// falls back to the caller's default. Unrecognized tokens are never rejected.
var truthyTokens = map[string]struct{}{
	"true": {}, "1": {}, "yes": {}, "ja": {}, "y": {},
}

func parseBool(s string, def bool) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return def
	}
	_, ok := truthyTokens[s]
	return ok
}

func parseInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, importErrorf("invalid integer %q", s)
	}
	return &n, nil
}

func parseFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, importErrorf("invalid number %q", s)
	}
	return &f, nil
}

func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, importErrorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return &t, nil
}

func parseDateTime(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, dateTimeLayout, dateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, importErrorf("invalid timestamp %q", s)
}

// optString maps empty input to nil for optional text columns.
func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// readRows parses a whole CSV file into header-keyed rows. A leading BOM on
// the header is stripped; short rows leave the missing columns empty.
func readRows(src io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, importErrorf("invalid csv header: %v", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var rows []map[string]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, importErrorf("invalid csv row: %v", err)
		}
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(rec) {
				row[name] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
