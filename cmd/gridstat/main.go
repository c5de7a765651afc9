// Package main implements gridstat, which indexes power-grid stations read from a
// semicolon-delimited file and reports which of them produce more than their
// consumers use.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/exp/mmap"
	"gopkg.in/op/go-logging.v1"

	"github.com/g-m-twostay/gridstat/Cli"
	"github.com/g-m-twostay/gridstat/Metrics"
	"github.com/g-m-twostay/gridstat/Reports"
	"github.com/g-m-twostay/gridstat/Stations"
	"github.com/g-m-twostay/gridstat/Trees"
)

var log = logging.MustGetLogger("gridstat")

const (
	ErrDefault = 1 + iota
	ErrUsage
	ErrFileOpen
)

type options struct {
	Usage          string
	Verbosity      Cli.Verbosity `short:"v" long:"verbosity" default:"notice" description:"Verbosity of output (error, warning, notice, info, debug)"`
	ExtremesOutput string        `short:"e" long:"extremes_output" default:"lv_all_minmax.csv" description:"File to write the most/least loaded stations to"`
	MaxStations    uint          `long:"max_stations" default:"100000" env:"GRIDSTAT_MAX_STATIONS" description:"Largest number of stations a report is produced for, 0 for no limit"`
	MMap           bool          `long:"mmap" description:"Map the input file into memory instead of reading it"`
	MetricsURL     string        `long:"metrics_url" env:"GRIDSTAT_METRICS_URL" description:"Prometheus push gateway to send the counters of this run to"`
	MetricsTimeout Cli.Duration  `long:"metrics_timeout" default:"5s" description:"Timeout for pushing metrics"`
	Args           struct {
		Input    string `positional-arg-name:"input" required:"true" description:"Station file, one id;parent;capacity;consumption;class per line"`
		Output   string `positional-arg-name:"output" required:"true" description:"File to write the capacity report to"`
		Class    string `positional-arg-name:"station_class" required:"true" description:"Only stations of this class are reported"`
		Consumer string `positional-arg-name:"consumer_type" required:"true" description:"all, comp or indiv"`
		Parent   string `positional-arg-name:"parent_id" description:"Only stations under this parent facility are reported, -1 for every facility"`
	} `positional-args:"true"`
}

var opts = options{
	Usage: `
gridstat indexes power-grid stations and reports their capacity against their consumption.

Every station of the requested class and consumer type is written to the output file in
ascending capacity order, marked as Surplus or Deficit. For low voltage stations ("lv")
of all consumers, the ten most and ten least loaded stations are written as well.
`,
}

func main() {
	Cli.ParseFlagsOrDie("gridstat", &opts)
	Cli.InitLogging(opts.Verbosity)
	code, err := run(&opts)
	exitOnErr(err, code)
}

func exitOnErr(err error, code int) {
	if err != nil {
		log.Error("%s", err)
		os.Exit(code)
	}
}

// run the whole pipeline. On failure it returns the exit code to use.
func run(o *options) (int, error) {
	filter, err := newFilter(o)
	if err != nil {
		return ErrUsage, err
	}

	input, size, err := openInput(o.Args.Input, o.MMap)
	if err != nil {
		return ErrFileOpen, err
	}
	defer input.Close()
	log.Notice("Reading %s of station data from %s...", humanize.Bytes(uint64(size)), o.Args.Input)
	index := Trees.NewAVL[int, Stations.Record, uint32](0)
	stats, err := Stations.Ingest(input, filter, index)
	if err != nil {
		return ErrDefault, err
	}
	log.Notice("Indexed %s stations from %s lines (%s filtered out, %s duplicates)",
		humanize.Comma(int64(stats.Indexed)), humanize.Comma(int64(stats.Lines)),
		humanize.Comma(int64(stats.Filtered)), humanize.Comma(int64(stats.Duplicates)))
	if err := stats.Errors.ErrorOrNil(); err != nil {
		log.Warning("Skipped %d malformed lines", stats.Malformed)
	}
	log.Debug("Index height is %d", index.Height())

	log.Notice("Writing capacity report to %s...", o.Args.Output)
	out, err := os.Create(o.Args.Output)
	if err != nil {
		return ErrFileOpen, err
	}
	engine := Reports.Engine{MaxStations: o.MaxStations}
	if err := engine.WriteCapacity(out, index); errors.Is(err, Reports.ErrTooManyStations) {
		log.Error("Capacity report skipped: %s", err)
	} else if err != nil {
		out.Close()
		return ErrDefault, fmt.Errorf("writing %s: %w", o.Args.Output, err)
	}
	if err := out.Close(); err != nil {
		return ErrDefault, err
	}

	if filter.WantsExtremes() {
		writeExtremes(engine, index, o.ExtremesOutput)
	}
	if o.MetricsURL != "" {
		if err := Metrics.Push(o.MetricsURL, time.Duration(o.MetricsTimeout)); err != nil {
			log.Warning("Error pushing metrics: %s", err)
		}
	}
	log.Notice("Analysis complete. Results in %s", o.Args.Output)
	return 0, nil
}

func newFilter(o *options) (Stations.Filter, error) {
	consumer, err := Stations.ParseConsumerType(o.Args.Consumer)
	if err != nil {
		return Stations.Filter{}, err
	}
	f := Stations.NewFilter(o.Args.Class, consumer)
	if o.Args.Parent != "" {
		if f.Parent, err = strconv.Atoi(o.Args.Parent); err != nil {
			return Stations.Filter{}, fmt.Errorf("invalid parent facility %q: %w", o.Args.Parent, err)
		}
	}
	return f, nil
}

type readCloser struct {
	io.Reader
	io.Closer
}

// openInput returns a reader over filename and its size in bytes.
func openInput(filename string, useMMap bool) (io.ReadCloser, int64, error) {
	if useMMap {
		mm, err := mmap.Open(filename)
		if err != nil {
			return nil, 0, err
		}
		return readCloser{io.NewSectionReader(mm, 0, int64(mm.Len())), mm}, int64(mm.Len()), nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, 0, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	return f, info.Size(), nil
}

// writeExtremes failing doesn't fail the run; the capacity report is already written.
func writeExtremes(e Reports.Engine, src Reports.Source, filename string) {
	log.Notice("Extracting the most and least loaded stations to %s...", filename)
	f, err := os.Create(filename)
	if err != nil {
		log.Error("Failed to create %s: %s", filename, err)
		return
	}
	defer f.Close()
	if err := e.WriteExtremes(f, src); errors.Is(err, Reports.ErrTooManyStations) {
		log.Error("Extremes report skipped: %s", err)
	} else if err != nil {
		log.Error("Failed to write %s: %s", filename, err)
	}
}
