package store

import (
	"encoding/binary"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/deadpad/wininp/pkg/conin"
)

// Entry is an event in the journal.
type Entry struct {
	Seq   int
	Event conin.Event
}

// NextEventSeq returns the sequence number the next added event will get.
func (s *Store) NextEventSeq() (int, error) {
	var seq uint64
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketEvent))
		seq = b.Sequence() + 1
		return nil
	})
	return int(seq), err
}

// AddEvent appends an event to the journal and returns its sequence number.
func (s *Store) AddEvent(e conin.Event) (int, error) {
	data, err := marshalEvent(e)
	if err != nil {
		return 0, err
	}
	var seq uint64
	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketEvent))
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), data)
	})
	return int(seq), err
}

// Event returns the event with the given sequence number.
func (s *Store) Event(seq int) (conin.Event, error) {
	if seq < 1 {
		return nil, ErrNoMatchingEvent
	}
	var e conin.Event
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketEvent))
		v := b.Get(marshalSeq(uint64(seq)))
		if v == nil {
			return ErrNoMatchingEvent
		}
		var err error
		e, err = unmarshalEvent(v)
		return err
	})
	return e, err
}

// IterateEvents calls f with each event whose sequence number is in
// [from, upto), in order.
func (s *Store) IterateEvents(from, upto int, f func(Entry)) error {
	if from < 0 {
		from = 0
	}
	if upto <= from {
		return nil
	}
	return s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketEvent))
		c := b.Cursor()
		for k, v := c.Seek(marshalSeq(uint64(from))); k != nil && unmarshalSeq(k) < uint64(upto); k, v = c.Next() {
			e, err := unmarshalEvent(v)
			if err != nil {
				return fmt.Errorf("event %d: %w", unmarshalSeq(k), err)
			}
			f(Entry{Seq: int(unmarshalSeq(k)), Event: e})
		}
		return nil
	})
}

// Events returns all events whose sequence number is in [from, upto).
func (s *Store) Events(from, upto int) ([]Entry, error) {
	var entries []Entry
	err := s.IterateEvents(from, upto, func(e Entry) {
		entries = append(entries, e)
	})
	return entries, err
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}

// Tags of stored events.
const (
	tagNone byte = iota
	tagKey
	tagInterrupt
	tagMouse
	tagOther
)

// Events are stored in 20 bytes: tag, a byte of data (Char or Kind), a flag
// byte (Down), a reserved byte, then four big-endian 32-bit words.
const eventSize = 20

func marshalEvent(e conin.Event) ([]byte, error) {
	b := make([]byte, eventSize)
	words := b[4:]
	switch e := e.(type) {
	case conin.NoEvent:
		b[0] = tagNone
	case conin.KeyEvent:
		b[0], b[1] = tagKey, e.Char
		if e.Down {
			b[2] = 1
		}
		binary.BigEndian.PutUint32(words[0:], uint32(e.Rune))
	case conin.InterruptEvent:
		b[0] = tagInterrupt
	case conin.MouseEvent:
		b[0], b[1] = tagMouse, byte(e.Kind)
		binary.BigEndian.PutUint32(words[0:], uint32(e.Col))
		binary.BigEndian.PutUint32(words[4:], uint32(e.Row))
		binary.BigEndian.PutUint32(words[8:], e.Buttons)
		binary.BigEndian.PutUint32(words[12:], e.Flags)
	case conin.OtherEvent:
		b[0] = tagOther
		binary.BigEndian.PutUint32(words[0:], uint32(e.Type))
	default:
		return nil, fmt.Errorf("cannot store event of type %T", e)
	}
	return b, nil
}

func unmarshalEvent(b []byte) (conin.Event, error) {
	if len(b) != eventSize {
		return nil, fmt.Errorf("bad event size %d", len(b))
	}
	words := b[4:]
	word := func(i int) uint32 { return binary.BigEndian.Uint32(words[4*i:]) }
	switch b[0] {
	case tagNone:
		return conin.NoEvent{}, nil
	case tagKey:
		return conin.KeyEvent{Char: b[1], Rune: rune(word(0)), Down: b[2] != 0}, nil
	case tagInterrupt:
		return conin.InterruptEvent{}, nil
	case tagMouse:
		return conin.MouseEvent{
			Kind:    conin.MouseKind(b[1]),
			Col:     int(int32(word(0))),
			Row:     int(int32(word(1))),
			Buttons: word(2),
			Flags:   word(3),
		}, nil
	case tagOther:
		return conin.OtherEvent{Type: uint16(word(0))}, nil
	}
	return nil, fmt.Errorf("bad event tag %d", b[0])
}
