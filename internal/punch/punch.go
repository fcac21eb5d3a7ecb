// Package punch implements the punch record store: the 92-byte binary
// record format, the open/close lifecycle of a punch, and the filtered
// views the ls command renders.
package punch

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/pnch-cli/pnch/internal/clock"
	"github.com/pnch-cli/pnch/internal/codec"
	"github.com/pnch-cli/pnch/internal/tag"
)

const (
	tagIDSize = 4
	descSize  = 80

	// Size is the fixed width of one encoded punch.
	Size = clock.DateSize + 2*clock.TimeSize + tagIDSize + descSize
)

// Lifecycle and filter violations. Callers match with errors.Is.
var (
	ErrAlreadyOpen     = errors.New("a punch is already open")
	ErrAlreadyClosed   = errors.New("the punch is already closed")
	ErrOutBeforeIn     = errors.New("the out time cannot be before the in time")
	ErrDescConflict    = errors.New("a description is already specified for the punch")
	ErrDescMissing     = errors.New("no description was specified")
	ErrNoPunch         = errors.New("no punch seems to be open")
	ErrIncompleteRange = errors.New("the date range is not complete: both --from and --to are needed")
)

// Punch is one tracked interval. A punch is open while Out is nil and
// closed, terminally, once it is set. Tag holds a copy of the interned
// tag, resolved at load time; there is no live reference back into the
// tag table.
type Punch struct {
	// ID is the punch's slot index at load time. It is stable within one
	// load/save cycle only, not a permanent key.
	ID          uint32
	Date        clock.Date
	In          clock.Time
	Out         *clock.Time
	Tag         *tag.Tag
	Description string
}

// New starts an open punch dated today.
func New(id uint32, in clock.Time, tg *tag.Tag, description string) Punch {
	return Punch{
		ID:          id,
		Date:        clock.Today(),
		In:          in,
		Tag:         tg,
		Description: description,
	}
}

// Close transitions the punch from open to closed at the given time.
// A tag/description supplied here fills in one missing at punch-in; a
// description can never be overwritten, and every closed punch must end
// up with one.
func (p *Punch) Close(out clock.Time, tg *tag.Tag, description string) error {
	if p.Out != nil {
		return ErrAlreadyClosed
	}
	if out.Compare(p.In) < 0 {
		return fmt.Errorf("%w (in: %s, out: %s)", ErrOutBeforeIn, p.In, out)
	}
	if description != "" {
		if p.Description != "" {
			return ErrDescConflict
		}
		p.Description = description
		p.Tag = tg
	}
	if p.Description == "" {
		return ErrDescMissing
	}
	p.Out = &out
	return nil
}

// Duration returns the punch's length, or false while it is still open.
func (p Punch) Duration() (clock.Duration, bool) {
	if p.Out == nil {
		return 0, false
	}
	return p.Out.Since(p.In), true
}

// Encode serializes the punch as date, in, out, tag id and zero-padded
// description. Absent fields write their sentinels.
func (p Punch) Encode() ([]byte, error) {
	description, err := codec.EncodeText("description", p.Description, descSize)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 0, Size)
	buf = append(buf, p.Date.Encode()...)
	buf = append(buf, p.In.Encode()...)
	buf = append(buf, clock.EncodeOptTime(p.Out)...)
	tagID := tag.NoneID
	if p.Tag != nil {
		tagID = p.Tag.ID
	}
	buf = binary.LittleEndian.AppendUint32(buf, tagID)
	return append(buf, description...), nil
}

// decode decodes one 92-byte punch chunk, resolving the stored tag id to
// a copy out of the table.
func decode(id uint32, chunk []byte, tags *tag.Table) (Punch, error) {
	if len(chunk) != Size {
		return Punch{}, codec.WrongByteLen("punch", len(chunk), Size)
	}
	date, err := clock.DecodeDate(chunk[:clock.DateSize])
	if err != nil {
		return Punch{}, err
	}
	rest := chunk[clock.DateSize:]
	in, err := clock.DecodeTime(rest[:clock.TimeSize])
	if err != nil {
		return Punch{}, err
	}
	rest = rest[clock.TimeSize:]
	out, err := clock.DecodeOptTime(rest[:clock.TimeSize])
	if err != nil {
		return Punch{}, err
	}
	rest = rest[clock.TimeSize:]

	var tg *tag.Tag
	if tagID := binary.LittleEndian.Uint32(rest[:tagIDSize]); tagID != tag.NoneID {
		if t, ok := tags.Get(tagID); ok {
			tg = &t
		}
	}
	description, err := codec.DecodeText("description", rest[tagIDSize:])
	if err != nil {
		return Punch{}, err
	}
	return Punch{
		ID:          id,
		Date:        date,
		In:          in,
		Out:         out,
		Tag:         tg,
		Description: description,
	}, nil
}

// compare orders punches chronologically by (date, in time).
func compare(a, b Punch) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	return a.In.Compare(b.In)
}
