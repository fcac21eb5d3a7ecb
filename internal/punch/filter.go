package punch

import (
	"fmt"
	"strings"

	"github.com/pnch-cli/pnch/internal/clock"
)

// Filter selects a subset of the store for listing. The date bounds act
// as a union: a punch passes when it matches ANY supplied bound. The tag
// filter then intersects the result by exact tag text. This two-stage
// union-then-intersection is deliberate; do not collapse it into a
// single conjunction.
type Filter struct {
	Since *clock.Date
	From  *clock.Date
	To    *clock.Date
	Last  *clock.Period
	Tag   string
}

// Filtered returns copies of the punches matching the filter, in store
// order. When no --last window was given, fallback (the configured
// default listing period) takes its place.
func (s *Store) Filtered(f Filter, fallback clock.Period) (List, error) {
	if (f.From == nil) != (f.To == nil) {
		return nil, ErrIncompleteRange
	}
	last := fallback
	if f.Last != nil {
		last = *f.Last
	}
	lastSince := last.SinceToday()

	var list List
	for _, p := range s.punches {
		if !matchesAnyDateBound(p, f, lastSince) {
			continue
		}
		if f.Tag != "" && (p.Tag == nil || p.Tag.Text != f.Tag) {
			continue
		}
		list = append(list, p)
	}
	return list, nil
}

func matchesAnyDateBound(p Punch, f Filter, lastSince clock.Date) bool {
	if f.Since != nil && p.Date.Compare(*f.Since) >= 0 {
		return true
	}
	if f.From != nil && f.To != nil &&
		p.Date.Compare(*f.From) >= 0 && p.Date.Compare(*f.To) <= 0 {
		return true
	}
	return p.Date.Compare(lastSince) >= 0
}

// Entry is a parsed "tag/description" argument.
type Entry struct {
	Tag         string
	Description string
}

// ParseEntry splits an argument at the first forward slash. Without a
// slash the whole string is the description and there is no tag.
func ParseEntry(value string) Entry {
	if tg, description, ok := strings.Cut(value, "/"); ok {
		return Entry{Tag: tg, Description: description}
	}
	return Entry{Description: value}
}

// Format selects how a listing is rendered.
type Format int

const (
	Pretty Format = iota
	CSV
)

// ParseFormat parses an output format name.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(value) {
	case "pretty":
		return Pretty, nil
	case "csv":
		return CSV, nil
	}
	return Pretty, fmt.Errorf("cannot parse the export format %q: the value should be one of `pretty` or `csv`", value)
}
