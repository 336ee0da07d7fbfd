package world

import (
	"testing"
)

func TestDungeonDescendGeneratesLazily(t *testing.T) {
	d := NewDungeon()
	if d.Current() != nil || d.Depth() != -1 {
		t.Fatalf("new dungeon should have no current floor")
	}

	built := 0
	build := func(level int) *Floor {
		built++
		return NewFloor(10, 10, level)
	}

	f0 := d.Descend(build)
	f1 := d.Descend(build)
	if built != 2 {
		t.Fatalf("expected 2 floors built, got %d", built)
	}
	if f0.Level != 0 || f1.Level != 1 {
		t.Errorf("floor levels = %d,%d; want 0,1", f0.Level, f1.Level)
	}

	up, ok := d.Ascend()
	if !ok || up != f0 {
		t.Fatalf("ascend should return the first floor")
	}

	again := d.Descend(build)
	if again != f1 {
		t.Errorf("descending again should reuse the generated floor")
	}
	if built != 2 {
		t.Errorf("floor regenerated: built=%d", built)
	}
	if d.Len() != 2 || d.Depth() != 1 {
		t.Errorf("Len=%d Depth=%d; want 2,1", d.Len(), d.Depth())
	}
}

func TestDungeonAscendAtTop(t *testing.T) {
	d := NewDungeon()
	if _, ok := d.Ascend(); ok {
		t.Error("ascend on empty dungeon should fail")
	}

	d.Descend(func(level int) *Floor { return NewFloor(5, 5, level) })
	if f, ok := d.Ascend(); ok || f != d.Floor(0) {
		t.Error("ascend on the top floor should fail and stay put")
	}
	if d.Floor(5) != nil || d.Floor(-1) != nil {
		t.Error("Floor out of range should be nil")
	}
}
