package Reports

import (
	"bufio"
	"cmp"
	"io"
	"slices"

	"github.com/g-m-twostay/gridstat/Stations"
)

// CapacityHeader is the first line of the capacity report.
const CapacityHeader = "Station:Capacity:Consumption:Status"

// A Status says whether a station produces at least what its consumers use.
type Status string

const (
	Surplus Status = "Surplus"
	Deficit Status = "Deficit"
)

// StatusOf r; a station with exactly its consumption is in surplus.
func StatusOf(r Stations.Record) Status {
	if r.Balance() >= 0 {
		return Surplus
	}
	return Deficit
}

func compareCapacity(a, b Stations.Record) int {
	if c := cmp.Compare(a.Capacity, b.Capacity); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// ByCapacity returns a copy of recs in ascending capacity order, equal capacities in
// ascending identifier order.
func ByCapacity(recs []Stations.Record) []Stations.Record {
	sorted := slices.Clone(recs)
	slices.SortFunc(sorted, compareCapacity)
	return sorted
}

// WriteCapacityReport writes the header and one ID:Capacity:Consumption:Status line per
// record, in ascending capacity order.
func WriteCapacityReport(w io.Writer, recs []Stations.Record) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(CapacityHeader + "\n")
	for _, r := range ByCapacity(recs) {
		writeRow(bw, r)
		bw.WriteString(":" + string(StatusOf(r)) + "\n")
	}
	return bw.Flush()
}
