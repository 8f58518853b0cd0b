package registry

import (
	"sync"
	"testing"

	"github.com/lixenwraith/quad-snap/core"
	"github.com/lixenwraith/quad-snap/identity"
)

func TestRegisterRoleIdempotent(t *testing.T) {
	r := New(6)
	anchor := core.Entity(1)

	r.RegisterRole(anchor, identity.RoleTop)
	r.RegisterRole(anchor, identity.RoleTop)
	r.RegisterRole(anchor, identity.RoleMiddle)

	roles := r.Roles(anchor)
	if len(roles) != 2 || roles[0] != identity.RoleTop || roles[1] != identity.RoleMiddle {
		t.Errorf("Expected [top middle], got %v", roles)
	}
}

func TestHasRoleUnknownAnchor(t *testing.T) {
	r := New(6)
	if !r.HasRole(7, identity.RoleMiddle) {
		t.Error("Expected middle to be implied for any anchor")
	}
	if r.HasRole(7, identity.RoleTop) {
		t.Error("Expected no top on untouched anchor")
	}
}

func TestCountAndJoined(t *testing.T) {
	r := New(6)
	anchor := core.Entity(3)

	for i := 1; i <= 3; i++ {
		if got := r.IncrementCount(anchor); got != i {
			t.Errorf("Increment %d: expected %d, got %d", i, i, got)
		}
	}

	r.ResetCount(anchor)
	if r.Count(anchor) != 0 {
		t.Errorf("Expected count 0 after reset, got %d", r.Count(anchor))
	}
	if r.Joined(anchor) != 3 {
		t.Errorf("Expected joined 3 after reset, got %d", r.Joined(anchor))
	}

	if got := r.IncrementCount(anchor); got != 1 {
		t.Errorf("Expected new cycle to start at 1, got %d", got)
	}
}

func TestOccupyMonotonic(t *testing.T) {
	r := New(6)
	slot := core.Entity(10)

	if r.Occupied(slot) {
		t.Fatal("Expected fresh slot to be free")
	}
	if !r.Occupy(slot) {
		t.Fatal("Expected first occupy to succeed")
	}
	if r.Occupy(slot) {
		t.Error("Expected second occupy to fail")
	}
	if !r.Occupied(slot) {
		t.Error("Expected slot to stay occupied")
	}
}

func TestRecordLockFiresOnce(t *testing.T) {
	r := New(3)
	fires := 0

	for i := 1; i <= 5; i++ {
		count, fire := r.RecordLock()
		if count != i {
			t.Errorf("Expected count %d, got %d", i, count)
		}
		if fire {
			fires++
			if count != 3 {
				t.Errorf("Expected fire at count 3, fired at %d", count)
			}
		}
	}

	if fires != 1 {
		t.Errorf("Expected exactly one fire, got %d", fires)
	}
	if !r.Fired() {
		t.Error("Expected Fired to report true")
	}
}

func TestReset(t *testing.T) {
	r := New(1)
	r.RegisterRole(1, identity.RoleTop)
	r.IncrementCount(1)
	r.Occupy(2)
	r.RecordLock()

	r.Reset()

	if r.Joined(1) != 0 || r.Occupied(2) || r.Completed() != 0 || r.Fired() {
		t.Error("Expected all session state cleared")
	}
	if r.Total() != 1 {
		t.Errorf("Expected total kept, got %d", r.Total())
	}
	if _, fire := r.RecordLock(); !fire {
		t.Error("Expected completion to fire again after reset")
	}
}

func TestConcurrentIncrement(t *testing.T) {
	r := New(1000)
	anchor := core.Entity(1)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				r.IncrementCount(anchor)
				r.RecordLock()
			}
		}()
	}
	wg.Wait()

	if r.Joined(anchor) != 1000 {
		t.Errorf("Expected 1000 joins, got %d", r.Joined(anchor))
	}
	if !r.Fired() {
		t.Error("Expected completion to fire at 1000 locks")
	}
}
