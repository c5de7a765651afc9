package Reports

import (
	"bufio"
	"io"

	"github.com/google/btree"

	"github.com/g-m-twostay/gridstat/Stations"
)

// ExtremesCount is the number of stations in each section of the extremes report.
const ExtremesCount = 10

const (
	MostLoadedHeader  = "Most loaded stations:"
	LeastLoadedHeader = "Least loaded stations:"
)

const rankDegree = 16

// moreLoaded orders by descending imbalance, then ascending identifier.
func moreLoaded(a, b Stations.Record) bool {
	if ia, ib := a.Imbalance(), b.Imbalance(); ia != ib {
		return ia > ib
	}
	return a.ID < b.ID
}

// Extremes are the ends of the load ranking.
type Extremes struct {
	Most  []Stations.Record // descending imbalance
	Least []Stations.Record // ascending imbalance
}

// RankExtremes returns the n most and the n least loaded of recs. With fewer than n
// records both sections hold all of them. Identifiers in recs must be unique, as they are
// in any Source; records with the same identifier and imbalance are ranked once.
func RankExtremes(recs []Stations.Record, n int) Extremes {
	if n <= 0 {
		return Extremes{}
	}
	ranking := btree.NewG[Stations.Record](rankDegree, moreLoaded)
	for _, r := range recs {
		ranking.ReplaceOrInsert(r)
	}
	e := Extremes{
		Most:  make([]Stations.Record, 0, min(n, len(recs))),
		Least: make([]Stations.Record, 0, min(n, len(recs))),
	}
	ranking.Ascend(func(r Stations.Record) bool {
		e.Most = append(e.Most, r)
		return len(e.Most) < n
	})
	ranking.Descend(func(r Stations.Record) bool {
		e.Least = append(e.Least, r)
		return len(e.Least) < n
	})
	return e
}

// WriteExtremesReport writes the ExtremesCount most loaded stations, a blank line, then
// the ExtremesCount least loaded ones.
func WriteExtremesReport(w io.Writer, recs []Stations.Record) error {
	e := RankExtremes(recs, ExtremesCount)
	bw := bufio.NewWriter(w)
	bw.WriteString(MostLoadedHeader + "\n")
	for _, r := range e.Most {
		writeRow(bw, r)
		bw.WriteByte('\n')
	}
	bw.WriteString("\n" + LeastLoadedHeader + "\n")
	for _, r := range e.Least {
		writeRow(bw, r)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
