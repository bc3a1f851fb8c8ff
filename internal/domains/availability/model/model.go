package model

import (
	"errors"
	"sort"
)

// ErrTransport covers every way a fetch can fail before a usable body arrives: network
// errors, timeouts and non-2xx replies from the gateway.
var ErrTransport = errors.New("availability transport failure")

// Outcome separates a usable answer from a business-empty or malformed one.
type Outcome int

const (
	OutcomeOK Outcome = iota + 1
	OutcomeEmpty
	OutcomeMalformed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeEmpty:
		return "empty"
	case OutcomeMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// DateSet is the set of bookable YYYY-MM-DD dates. It is replaced wholesale on reload.
type DateSet map[string]struct{}

func NewDateSet(dates ...string) DateSet {
	set := make(DateSet, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}

	return set
}

func (s DateSet) Contains(date string) bool {
	_, ok := s[date]

	return ok
}

func (s DateSet) Len() int {
	return len(s)
}

// Sorted returns the dates in calendar order.
func (s DateSet) Sorted() []string {
	dates := make([]string, 0, len(s))
	for d := range s {
		dates = append(dates, d)
	}

	sort.Strings(dates)

	return dates
}

type Dates struct {
	Set     DateSet
	Outcome Outcome
}

// Slots are the time slots loaded for one date.
type Slots struct {
	Date  string
	Times []string
}

// Contains reports whether t was offered for date.
func (s Slots) Contains(date, t string) bool {
	if s.Date != date {
		return false
	}

	for _, candidate := range s.Times {
		if candidate == t {
			return true
		}
	}

	return false
}

type Times struct {
	Slots   Slots
	Outcome Outcome
}
