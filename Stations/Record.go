// Package Stations reads power-grid station records from semicolon-delimited
// text, filters them and feeds the accepted ones to an index keyed by station
// identifier.
package Stations

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// NumFields is the number of fields in a station line:
// identifier;parentFacilityId;capacity;consumption;stationClass
const NumFields = 5

// ErrMalformed is wrapped by every error describing a line that isn't a station record.
var ErrMalformed = errors.New("malformed station record")

// A Record is one station. It is never modified after parsing.
type Record struct {
	ID          int
	Parent      int // identifier of the parent facility
	Capacity    int64
	Consumption int64 // aggregate demand of the downstream consumers
	Class       string
}

// Balance is Capacity-Consumption; negative means the station is in deficit.
func (r Record) Balance() int64 {
	return r.Capacity - r.Consumption
}

// Imbalance is the magnitude of Balance, how loaded the station is either way.
func (r Record) Imbalance() int64 {
	if b := r.Balance(); b < 0 {
		return -b
	} else {
		return b
	}
}

// ParseFields builds a Record from the fields of one line.
func ParseFields(fields []string) (Record, error) {
	if len(fields) != NumFields {
		return Record{}, fmt.Errorf("%w: %d fields, want %d", ErrMalformed, len(fields), NumFields)
	}
	var r Record
	var err error
	if r.ID, err = strconv.Atoi(strings.TrimSpace(fields[0])); err != nil {
		return Record{}, fmt.Errorf("%w: identifier: %w", ErrMalformed, err)
	}
	if r.Parent, err = strconv.Atoi(strings.TrimSpace(fields[1])); err != nil {
		return Record{}, fmt.Errorf("%w: parent facility: %w", ErrMalformed, err)
	}
	if r.Capacity, err = strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64); err != nil {
		return Record{}, fmt.Errorf("%w: capacity: %w", ErrMalformed, err)
	}
	if r.Consumption, err = strconv.ParseInt(strings.TrimSpace(fields[3]), 10, 64); err != nil {
		return Record{}, fmt.Errorf("%w: consumption: %w", ErrMalformed, err)
	}
	if r.Class = strings.TrimSpace(fields[4]); r.Class == "" {
		return Record{}, fmt.Errorf("%w: empty station class", ErrMalformed)
	}
	return r, nil
}

// ParseLine splits a single line on ';' and parses it.
func ParseLine(line string) (Record, error) {
	return ParseFields(strings.Split(strings.TrimRight(line, "\r\n"), ";"))
}
