package Stations

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/op/go-logging.v1"

	"github.com/g-m-twostay/gridstat/Metrics"
)

var log = logging.MustGetLogger("Stations")

// maxLineLength bounds a single input line; longer lines fail the read.
const maxLineLength = 1 << 20

// An Index receives accepted records. Insert returns false when id was already present.
type Index interface {
	Insert(id int, r Record) bool
}

// Stats describes one ingestion.
type Stats struct {
	Lines, Malformed, Filtered, Duplicates, Indexed int
	// Errors holds one error per malformed line.
	Errors *multierror.Error
}

// Ingest reads station lines from r, skipping malformed lines and the records f rejects,
// and inserts everything else into idx. Every line is parsed on its own, so a malformed
// line never affects the lines after it. Blank lines are ignored. Only a failure to read r
// is returned as an error; malformed lines are logged and collected in Stats.Errors.
func Ingest(r io.Reader, f Filter, idx Index) (Stats, error) {
	var s Stats
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		s.Lines++
		Metrics.Lines.Inc()
		rec, err := ParseLine(line)
		if err != nil {
			s.malformed(fmt.Errorf("line %d: %w", lineNo, err))
			continue
		}
		if !f.Accept(rec) {
			s.Filtered++
			Metrics.Filtered.Inc()
			continue
		}
		if !idx.Insert(rec.ID, rec) {
			log.Debug("Ignoring duplicate station %d", rec.ID)
			s.Duplicates++
			Metrics.Duplicates.Inc()
			continue
		}
		s.Indexed++
		Metrics.Indexed.Inc()
	}
	if err := scanner.Err(); err != nil {
		return s, fmt.Errorf("reading stations: %w", err)
	}
	return s, nil
}

func (s *Stats) malformed(err error) {
	log.Warning("Skipping %s", err)
	s.Malformed++
	s.Errors = multierror.Append(s.Errors, err)
	Metrics.Malformed.Inc()
}
