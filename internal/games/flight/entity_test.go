package flight

import (
	"testing"

	"github.com/vovakirdan/paper-flight/internal/core"
)

func TestTrailEviction(t *testing.T) {
	tr := NewTrail(3)
	for i := 1; i <= 5; i++ {
		tr.Push(core.Vec(float64(i), 0))
	}

	if tr.Len() != 3 || tr.Cap() != 3 {
		t.Fatalf("len/cap = %d/%d, want 3/3", tr.Len(), tr.Cap())
	}
	got := tr.Points()
	for i, want := range []float64{3, 4, 5} {
		if got[i].X != want {
			t.Errorf("point %d = %v, want x=%v", i, got[i], want)
		}
	}
}

func TestTrailPartial(t *testing.T) {
	tr := NewTrail(0)
	if tr.Cap() != 1 {
		t.Errorf("capacity clamps to 1, got %d", tr.Cap())
	}
	if len(tr.Points()) != 0 {
		t.Error("new trail should be empty")
	}
	tr.Push(core.Vec(1, 1))
	tr.Push(core.Vec(2, 2))
	if p := tr.Points(); len(p) != 1 || p[0] != core.Vec(2, 2) {
		t.Errorf("points = %v, want only the newest", p)
	}
}

func TestBoostHas(t *testing.T) {
	b := BoostShield | BoostSpeed
	if !b.Has(BoostShield) || !b.Has(BoostSpeed) || b.Has(BoostMagnet) {
		t.Errorf("boost set %b reports wrong membership", b)
	}
}

func TestOverlap(t *testing.T) {
	if !Overlap(core.Vec(0, 0), core.Vec(9, 0), 5, 5) {
		t.Error("circles 9 apart with radii 5+5 overlap")
	}
	if Overlap(core.Vec(0, 0), core.Vec(10, 0), 5, 5) {
		t.Error("touching circles do not overlap")
	}
}
