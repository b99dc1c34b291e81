package history

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jask/quire/internal/command"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	invs := []command.Invocation{
		{Name: "open", Args: []string{"notes.txt"}},
		{Name: "tabnext"},
		{Count: 3, HasCount: true, Name: "scroll", Args: []string{"0", "1"}},
	}
	for _, inv := range invs {
		if err := s.Record(inv); err != nil {
			t.Fatalf("Record(%+v): %v", inv, err)
		}
	}

	got, err := s.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len(Recent) = %d, want 3", len(got))
	}
	// newest first
	if got[0].Name != "scroll" || got[2].Name != "open" {
		t.Fatalf("Recent order = [%s %s %s], want newest first", got[0].Name, got[1].Name, got[2].Name)
	}
	if !got[0].HasCount || got[0].Count != 3 {
		t.Fatalf("Recent[0] count = %+v, want 3", got[0])
	}
	if got[1].HasCount {
		t.Fatalf("Recent[1] = %+v, want no count", got[1])
	}
	if !reflect.DeepEqual(got[0].Args, []string{"0", "1"}) {
		t.Fatalf("Recent[0].Args = %v, want [0 1]", got[0].Args)
	}
	if got[2].Args[0] != "notes.txt" {
		t.Fatalf("Recent[2].Args = %v, want [notes.txt]", got[2].Args)
	}
	if got[0].ID == "" || got[0].ID == got[1].ID {
		t.Fatalf("entry IDs not unique: %q vs %q", got[0].ID, got[1].ID)
	}
	if got[0].At.IsZero() {
		t.Fatal("entry timestamp is zero")
	}
}

func TestStoreLimitAndPrune(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	for i := 0; i < 5; i++ {
		if err := s.Record(command.Invocation{Name: "reload"}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	got, err := s.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(Recent(2)) = %d, want 2", len(got))
	}

	if err := s.Prune(1); err != nil {
		t.Fatalf("Prune: %v", err)
	}
	got, err = s.Recent(10)
	if err != nil {
		t.Fatalf("Recent after Prune: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(Recent) after Prune(1) = %d, want 1", len(got))
	}
}

func TestStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Record(command.Invocation{Name: "quit"}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// reopening runs migrations again as a no-op and sees the data
	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	got, err := s.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 1 || got[0].Name != "quit" {
		t.Fatalf("Recent after reopen = %+v, want the quit entry", got)
	}
}
