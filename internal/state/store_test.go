package state

import (
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/five82/swatch/internal/prefs"
)

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	p := prefs.Prefs{Theme: "Slate", Colors: map[string]string{"color-1": "#CC0000", "color-2": "#4E9A06"}}

	before := time.Now()
	s.Update(p, nil)

	snap := s.Snapshot()
	if !snap.Loaded || snap.Theme != "Slate" {
		t.Fatalf("snapshot = %#v, want Loaded with theme Slate", snap)
	}
	if got, _ := snap.Color("color-1"); got != "#CC0000" {
		t.Fatalf("color-1 = %q, want %q", got, "#CC0000")
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}
	if snap.Revision != 1 {
		t.Fatalf("Revision = %d, want 1", snap.Revision)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Colors["color-1"] = "#FFFFFF"
	p.Colors["color-2"] = "#FFFFFF"
	snap2 := s.Snapshot()
	if got, _ := snap2.Color("color-1"); got != "#CC0000" {
		t.Fatalf("Snapshot should clone colors; got %q", got)
	}
	if got, _ := snap2.Color("color-2"); got != "#4E9A06" {
		t.Fatalf("Update should clone colors; got %q", got)
	}
}

func TestStore_UpdateSameDataKeepsRevision(t *testing.T) {
	var s Store
	p := prefs.Defaults()

	s.Update(p, nil)
	s.Update(p, nil)
	if rev := s.Snapshot().Revision; rev != 1 {
		t.Fatalf("Revision = %d, want 1", rev)
	}

	s.Update(p.WithColor("color-0", "#111111"), nil)
	if rev := s.Snapshot().Revision; rev != 2 {
		t.Fatalf("Revision = %d, want 2", rev)
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store

	s.Update(prefs.Prefs{Theme: "Slate", Colors: map[string]string{"color-0": "#000000"}}, nil)
	prev := s.Snapshot()

	before := time.Now()
	origErr := errors.New("boom")
	s.Update(prefs.Prefs{}, origErr)

	snap := s.Snapshot()
	if snap.Theme != prev.Theme || snap.Revision != prev.Revision {
		t.Fatalf("snapshot changed on error: got %#v want %#v", snap, prev)
	}
	if got, _ := snap.Color("color-0"); got != "#000000" {
		t.Fatalf("colors changed on error: got %q", got)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_SetReturnsPrefsToPersist(t *testing.T) {
	var s Store
	s.Update(prefs.Prefs{Theme: "Slate", Colors: map[string]string{"color-0": "#000000"}}, nil)

	p := s.Set("color-0", "#222222")
	if p.Theme != "Slate" || p.Colors["color-0"] != "#222222" {
		t.Fatalf("Set returned %#v", p)
	}
	if rev := s.Snapshot().Revision; rev != 2 {
		t.Fatalf("Revision = %d, want 2", rev)
	}

	// Same value again does not bump the revision.
	s.Set("color-0", "#222222")
	if rev := s.Snapshot().Revision; rev != 2 {
		t.Fatalf("Revision = %d, want 2", rev)
	}

	p = s.SetTheme("Kanagawa")
	if p.Theme != "Kanagawa" || p.Colors["color-0"] != "#222222" {
		t.Fatalf("SetTheme returned %#v", p)
	}
}

func TestStore_SetOnZeroStore(t *testing.T) {
	var s Store
	p := s.Set("cursor-color", "red")
	if p.Colors["cursor-color"] != "red" {
		t.Fatalf("Set on zero store returned %#v", p)
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	snap := s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.IsFailing() {
		t.Fatalf("fresh store: failures = %d, failing = %v", snap.ConsecutiveFailures, snap.IsFailing())
	}

	s.RecordSave(errors.New("fail 1"))
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 1 {
		t.Fatalf("ConsecutiveFailures = %d, want 1", snap.ConsecutiveFailures)
	}
	if snap.IsFailing() {
		t.Fatal("IsFailing() = true, want false with 1 failure")
	}

	s.Update(prefs.Prefs{}, errors.New("fail 2"))
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 2 {
		t.Fatalf("ConsecutiveFailures = %d, want 2", snap.ConsecutiveFailures)
	}
	if !snap.IsFailing() {
		t.Fatal("IsFailing() = false, want true with 2 failures")
	}

	s.RecordSave(nil)
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.LastError != nil {
		t.Fatalf("after success: failures = %d, err = %v", snap.ConsecutiveFailures, snap.LastError)
	}
}

func TestStore_ConcurrentSet(t *testing.T) {
	var s Store
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Set("color-0", string(rune('a'+i)))
			_ = s.Snapshot()
		}()
	}
	wg.Wait()
	if rev := s.Snapshot().Revision; rev == 0 {
		t.Fatalf("Revision = 0 after concurrent sets")
	}
}
