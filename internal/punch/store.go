package punch

import (
	"fmt"
	"slices"

	"github.com/pnch-cli/pnch/internal/codec"
	"github.com/pnch-cli/pnch/internal/storage"
	"github.com/pnch-cli/pnch/internal/tag"
)

const fileName = "pnchs.db"

// Store is the ordered collection of all recorded punches for one
// load-mutate-save cycle.
type Store struct {
	dir     storage.Dir
	punches []Punch
}

// Load reads the whole punch database from dir, resolving tag references
// through the table. Ids are assigned from file position; the collection
// is then re-sorted chronologically, since edits can leave the file out
// of order.
func Load(dir storage.Dir, tags *tag.Table) (*Store, error) {
	blob, err := dir.Load(fileName)
	if err != nil {
		return nil, err
	}
	if len(blob)%Size != 0 {
		return nil, fmt.Errorf("cannot decode the punch store: %d bytes is not a multiple of %d: %w",
			len(blob), Size, codec.ErrWrongByteLen)
	}
	store := &Store{dir: dir}
	for off := 0; off < len(blob); off += Size {
		p, err := decode(uint32(off/Size), blob[off:off+Size], tags)
		if err != nil {
			return nil, err
		}
		store.punches = append(store.punches, p)
	}
	slices.SortFunc(store.punches, compare)
	return store, nil
}

// PunchIn appends a new open punch. It fails while the chronologically
// last punch is still open.
func (s *Store) PunchIn(p Punch) error {
	if last := s.GetLast(); last != nil && last.Out == nil {
		return ErrAlreadyOpen
	}
	s.punches = append(s.punches, p)
	return nil
}

// Get returns a mutable handle on the punch with the given id, or nil.
func (s *Store) Get(id uint32) *Punch {
	for i := range s.punches {
		if s.punches[i].ID == id {
			return &s.punches[i]
		}
	}
	return nil
}

// GetLast returns a mutable handle on the most recent punch, or nil when
// the store is empty.
func (s *Store) GetLast() *Punch {
	if len(s.punches) == 0 {
		return nil
	}
	return &s.punches[len(s.punches)-1]
}

// Len reports the number of punches in the store.
func (s *Store) Len() int { return len(s.punches) }

// NextID returns the id for a punch created now.
func (s *Store) NextID() uint32 { return uint32(len(s.punches)) }

// Save rewrites the whole punch database in current in-memory order.
func (s *Store) Save() error {
	blob := make([]byte, 0, len(s.punches)*Size)
	for _, p := range s.punches {
		chunk, err := p.Encode()
		if err != nil {
			return err
		}
		blob = append(blob, chunk...)
	}
	return s.dir.Save(fileName, blob)
}
