package store

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/deadpad/wininp/pkg/conin"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

var journal = []conin.Event{
	conin.KeyEvent{Char: 'a', Rune: 'a', Down: true},
	conin.MouseEvent{Kind: conin.LeftDown, Col: 12, Row: 5, Buttons: 1},
	conin.MouseEvent{Kind: conin.Scroll, Col: 3, Row: 9, Buttons: 0xff880000, Flags: 4},
	conin.InterruptEvent{},
	conin.OtherEvent{Type: 4},
	conin.NoEvent{},
}

func TestStore_Events(t *testing.T) {
	s := newTestStore(t)

	seq, err := s.NextEventSeq()
	if seq != 1 || err != nil {
		t.Errorf("NextEventSeq on empty store -> (%v, %v), want (1, nil)", seq, err)
	}
	for i, e := range journal {
		seq, err := s.AddEvent(e)
		if seq != i+1 || err != nil {
			t.Errorf("AddEvent(%v) -> (%v, %v), want (%v, nil)", e, seq, err, i+1)
		}
	}
	seq, err = s.NextEventSeq()
	if seq != len(journal)+1 || err != nil {
		t.Errorf("NextEventSeq -> (%v, %v), want (%v, nil)", seq, err, len(journal)+1)
	}

	entries, err := s.Events(2, 4)
	if err != nil {
		t.Fatal(err)
	}
	want := []Entry{{2, journal[1]}, {3, journal[2]}}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("Events(2, 4) (-want +got):\n%s", diff)
	}

	e, err := s.Event(4)
	if err != nil || e != (conin.InterruptEvent{}) {
		t.Errorf("Event(4) -> (%v, %v), want (InterruptEvent, nil)", e, err)
	}
	_, err = s.Event(100)
	if err != ErrNoMatchingEvent {
		t.Errorf("Event(100) -> error %v, want ErrNoMatchingEvent", err)
	}
}

func TestStore_Reopen(t *testing.T) {
	dbname := filepath.Join(t.TempDir(), "db")
	s, err := NewStore(dbname)
	if err != nil {
		t.Fatal(err)
	}
	s.AddEvent(journal[0])
	s.Close()

	s, err = NewStore(dbname)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	entries, err := s.Events(0, 100)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]Entry{{1, journal[0]}}, entries); diff != "" {
		t.Errorf("Events after reopen (-want +got):\n%s", diff)
	}
}

func TestMarshalEvent_Errors(t *testing.T) {
	if _, err := marshalEvent(nil); err == nil {
		t.Errorf("marshalEvent(nil) returned nil error")
	}
	if _, err := unmarshalEvent([]byte{1, 2}); err == nil {
		t.Errorf("unmarshalEvent of short data returned nil error")
	}
	bad := make([]byte, eventSize)
	bad[0] = 0xff
	if _, err := unmarshalEvent(bad); err == nil {
		t.Errorf("unmarshalEvent of bad tag returned nil error")
	}
}

func TestStore_OutOfRangeSeq(t *testing.T) {
	s := newTestStore(t)
	for _, e := range journal[:3] {
		if _, err := s.AddEvent(e); err != nil {
			t.Fatal(err)
		}
	}

	for _, seq := range []int{0, -1, -1 << 62} {
		if _, err := s.Event(seq); err != ErrNoMatchingEvent {
			t.Errorf("Event(%d) -> error %v, want ErrNoMatchingEvent", seq, err)
		}
	}

	entries, err := s.Events(-5, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []Entry{{1, journal[0]}, {2, journal[1]}}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("Events(-5, 3) (-want +got):\n%s", diff)
	}

	entries, err = s.Events(3, -1)
	if err != nil || len(entries) != 0 {
		t.Errorf("Events(3, -1) -> (%v, %v), want (empty, nil)", entries, err)
	}
}
