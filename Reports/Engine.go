// Package Reports turns an index of stations into the capacity report and the
// most/least loaded report.
package Reports

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"gopkg.in/op/go-logging.v1"

	"github.com/g-m-twostay/gridstat/Metrics"
	"github.com/g-m-twostay/gridstat/Stations"
)

var log = logging.MustGetLogger("Reports")

// ErrTooManyStations is returned when the index holds more stations than an Engine accepts.
var ErrTooManyStations = errors.New("too many stations")

// A Source yields its stations in ascending identifier order.
type Source interface {
	Size() uint
	Values() []Stations.Record
}

// An Engine materializes a Source and renders the reports from it.
type Engine struct {
	// MaxStations is the largest Source the engine materializes, 0 for no limit.
	MaxStations uint
}

// Collect returns every station of src in identifier order, or ErrTooManyStations.
func (e Engine) Collect(src Source) ([]Stations.Record, error) {
	if n := src.Size(); e.MaxStations > 0 && n > e.MaxStations {
		Metrics.Skipped.Inc()
		return nil, fmt.Errorf("%w: %d stations exceed the limit of %d", ErrTooManyStations, n, e.MaxStations)
	}
	return src.Values(), nil
}

// WriteCapacity writes the capacity report for src to w. The header is written even when
// src is too large, in which case the rows are left out and the error is returned.
func (e Engine) WriteCapacity(w io.Writer, src Source) error {
	recs, err := e.Collect(src)
	if err != nil {
		if _, werr := fmt.Fprintln(w, CapacityHeader); werr != nil {
			return werr
		}
		return err
	}
	log.Info("Writing capacity report for %d stations", len(recs))
	return WriteCapacityReport(w, recs)
}

// WriteExtremes writes the most/least loaded report for src to w. Nothing is written when
// src is too large.
func (e Engine) WriteExtremes(w io.Writer, src Source) error {
	recs, err := e.Collect(src)
	if err != nil {
		return err
	}
	log.Info("Ranking %d stations by load", len(recs))
	return WriteExtremesReport(w, recs)
}

func writeRow(w *bufio.Writer, r Stations.Record) {
	fmt.Fprintf(w, "%d:%d:%d", r.ID, r.Capacity, r.Consumption)
}
