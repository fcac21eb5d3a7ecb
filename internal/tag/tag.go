// Package tag implements the interning table for punch tags. Tags are
// short labels stored once and referenced from punches by id; the table
// only ever grows, and ids are the position a tag was created at.
package tag

import (
	"encoding/binary"
	"fmt"

	"github.com/pnch-cli/pnch/internal/codec"
	"github.com/pnch-cli/pnch/internal/storage"
)

const (
	idSize   = 4
	textSize = 24

	// Size is the fixed width of one encoded tag.
	Size = idSize + textSize

	// NoneID is the reserved id meaning "no tag". It is never allocated
	// to a real tag.
	NoneID uint32 = 0xFFFFFFFF

	fileName = "tags.db"
)

// Tag is one interned label. Instances are copies; the table keeps the
// canonical record.
type Tag struct {
	// ID is the tag's index in the table at creation time. Immutable.
	ID   uint32
	Text string
}

// Encode serializes the tag as its id (little-endian) followed by the
// zero-padded text.
func (t Tag) Encode() ([]byte, error) {
	text, err := codec.EncodeText("tag", t.Text, textSize)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 0, Size)
	buf = binary.LittleEndian.AppendUint32(buf, t.ID)
	return append(buf, text...), nil
}

// Decode decodes one 28-byte tag chunk.
func Decode(chunk []byte) (Tag, error) {
	if len(chunk) != Size {
		return Tag{}, codec.WrongByteLen("tag", len(chunk), Size)
	}
	text, err := codec.DecodeText("tag", chunk[idSize:])
	if err != nil {
		return Tag{}, err
	}
	return Tag{ID: binary.LittleEndian.Uint32(chunk), Text: text}, nil
}

// Table is the append-only collection of all known tags.
type Table struct {
	dir  storage.Dir
	tags []Tag
}

// Load reads the whole tag database from dir.
func Load(dir storage.Dir) (*Table, error) {
	blob, err := dir.Load(fileName)
	if err != nil {
		return nil, err
	}
	if len(blob)%Size != 0 {
		return nil, fmt.Errorf("cannot decode the tag table: %d bytes is not a multiple of %d: %w",
			len(blob), Size, codec.ErrWrongByteLen)
	}
	table := &Table{dir: dir}
	for off := 0; off < len(blob); off += Size {
		t, err := Decode(blob[off : off+Size])
		if err != nil {
			return nil, err
		}
		table.tags = append(table.tags, t)
	}
	return table, nil
}

// GetOrInsert returns a copy of the tag with the given text, creating it
// with the next positional id when it does not exist yet.
func (tb *Table) GetOrInsert(text string) Tag {
	for _, t := range tb.tags {
		if t.Text == text {
			return t
		}
	}
	t := Tag{ID: uint32(len(tb.tags)), Text: text}
	tb.tags = append(tb.tags, t)
	return t
}

// Get returns a copy of the tag with the given id, or false when the id
// is out of bounds.
func (tb *Table) Get(id uint32) (Tag, bool) {
	if id >= uint32(len(tb.tags)) {
		return Tag{}, false
	}
	return tb.tags[id], true
}

// Len reports the number of interned tags.
func (tb *Table) Len() int { return len(tb.tags) }

// Save rewrites the whole tag database in table order.
func (tb *Table) Save() error {
	blob := make([]byte, 0, len(tb.tags)*Size)
	for _, t := range tb.tags {
		chunk, err := t.Encode()
		if err != nil {
			return err
		}
		blob = append(blob, chunk...)
	}
	return tb.dir.Save(fileName, blob)
}
