package punch

import (
	"fmt"
	"strings"

	"github.com/pnch-cli/pnch/internal/clock"
)

// List is a filtered view over the store, ready for rendering.
type List []Punch

const (
	ansiHeading = "\x1b[1;36m"
	ansiDim     = "\x1b[2m"
	ansiReset   = "\x1b[0m"
)

// Pretty renders the list grouped by date, with per-punch durations and
// the total across the listing. Dates are highlighted when color is on.
func (l List) Pretty(color bool) string {
	if len(l) == 0 {
		return "No punches found.\n"
	}
	heading, dim, reset := "", "", ""
	if color {
		heading, dim, reset = ansiHeading, ansiDim, ansiReset
	}

	var total clock.Duration
	for _, p := range l {
		if d, ok := p.Duration(); ok {
			total += d
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "The total duration of punches was %s\n", total)
	var day *clock.Date
	for _, p := range l {
		if day == nil || day.Compare(p.Date) != 0 {
			d := p.Date
			day = &d
			fmt.Fprintf(&b, "\n%s%s%s\n", heading, d, reset)
		}
		switch {
		case p.Out != nil:
			duration, _ := p.Duration()
			fmt.Fprintf(&b, "  #%d > From %s to %s (%s)\n", p.ID, p.In, p.Out, duration)
		default:
			fmt.Fprintf(&b, "  #%d > Since %s\n", p.ID, p.In)
		}
		label := "[---]"
		if p.Tag != nil {
			label = "[" + p.Tag.Text + "]"
		}
		description := p.Description
		if description == "" {
			description = "no description"
		}
		fmt.Fprintf(&b, "    %s%s %s%s\n", dim, label, description, reset)
	}
	return b.String()
}

// CSV renders the list as `tag,description,date,in,out` rows, one punch
// per line, with empty fields for absent values.
func (l List) CSV() string {
	var b strings.Builder
	for _, p := range l {
		tg := ""
		if p.Tag != nil {
			tg = p.Tag.Text
		}
		out := ""
		if p.Out != nil {
			out = p.Out.String()
		}
		fmt.Fprintf(&b, "%s,%s,%s,%s,%s\n", tg, p.Description, p.Date, p.In, out)
	}
	return b.String()
}
