package Stations

import "fmt"

// A ConsumerType selects stations by the kind of consumers they serve.
type ConsumerType string

const (
	AllConsumers ConsumerType = "all"
	Companies    ConsumerType = "comp"
	Individuals  ConsumerType = "indiv"
)

// ParseConsumerType accepts "all", "comp" or "indiv".
func ParseConsumerType(s string) (ConsumerType, error) {
	switch c := ConsumerType(s); c {
	case AllConsumers, Companies, Individuals:
		return c, nil
	}
	return "", fmt.Errorf("unknown consumer type %q, want one of %s, %s, %s", s, AllConsumers, Companies, Individuals)
}

// NoParent disables the parent facility filter.
const NoParent = -1

// LowVoltage is the station class the extremes report is produced for.
const LowVoltage = "lv"

// A Filter decides which records are indexed.
type Filter struct {
	Class    string // empty matches every class
	Consumer ConsumerType
	Parent   int // NoParent matches every parent facility
}

// NewFilter returns a Filter matching every record of the given class.
func NewFilter(class string, consumer ConsumerType) Filter {
	return Filter{Class: class, Consumer: consumer, Parent: NoParent}
}

// Accept reports whether r passes every configured criterion.
// Companies and individuals are told apart the same way: both need a non-zero consumption.
func (f Filter) Accept(r Record) bool {
	if f.Class != "" && r.Class != f.Class {
		return false
	}
	if f.Parent != NoParent && r.Parent != f.Parent {
		return false
	}
	switch f.Consumer {
	case Companies, Individuals:
		return r.Consumption != 0
	}
	return true
}

// WantsExtremes reports whether the most/least loaded report applies to the stations
// this filter selects.
func (f Filter) WantsExtremes() bool {
	return f.Class == LowVoltage && f.Consumer == AllConsumers
}
