package world

// Dungeon is the ordered stack of floors plus a cursor on the current one.
// Floors are appended as the player first reaches them and are never
// removed.
type Dungeon struct {
	floors  []*Floor
	current int
}

// NewDungeon creates an empty dungeon.
func NewDungeon() *Dungeon {
	return &Dungeon{current: -1}
}

// Len returns the number of floors generated so far.
func (d *Dungeon) Len() int {
	return len(d.floors)
}

// Depth returns the index of the current floor, or -1 before the first
// descent.
func (d *Dungeon) Depth() int {
	return d.current
}

// Current returns the current floor, or nil before the first descent.
func (d *Dungeon) Current() *Floor {
	if d.current < 0 {
		return nil
	}
	return d.floors[d.current]
}

// Floor returns the floor at level, or nil if it has not been generated.
func (d *Dungeon) Floor(level int) *Floor {
	if level < 0 || level >= len(d.floors) {
		return nil
	}
	return d.floors[level]
}

// Append adds f below the deepest floor and returns its level.
func (d *Dungeon) Append(f *Floor) int {
	d.floors = append(d.floors, f)
	return len(d.floors) - 1
}

// Descend moves the cursor one floor down, calling build to create the
// floor the first time that level is reached.
func (d *Dungeon) Descend(build func(level int) *Floor) *Floor {
	next := d.current + 1
	if next == len(d.floors) {
		d.Append(build(next))
	}
	d.current = next
	return d.floors[next]
}

// Ascend moves the cursor one floor up. It returns false on the top floor.
func (d *Dungeon) Ascend() (*Floor, bool) {
	if d.current <= 0 {
		return d.Current(), false
	}
	d.current--
	return d.floors[d.current], true
}
