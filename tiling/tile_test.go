package tiling

import "testing"

func TestTileCardinal(t *testing.T) {
	north, east, south, west := Pip(0), Pip(1), Pip(2), Pip(3)
	tile := NewTile(north, east, south, west)

	if got := tile.Cardinal(North); got != north {
		t.Errorf("North = %v, want %v", got, north)
	}
	if got := tile.Cardinal(East); got != east {
		t.Errorf("East = %v, want %v", got, east)
	}
	if got := tile.Cardinal(South); got != south {
		t.Errorf("South = %v, want %v", got, south)
	}
	if got := tile.Cardinal(West); got != west {
		t.Errorf("West = %v, want %v", got, west)
	}
}

func TestDirectionNegate(t *testing.T) {
	cases := []struct {
		dir, want Direction
	}{
		{North, South},
		{South, North},
		{East, West},
		{West, East},
	}
	for _, c := range cases {
		if got := c.dir.Negate(); got != c.want {
			t.Errorf("%v.Negate() = %v, want %v", c.dir, got, c.want)
		}
	}
}

func TestTileEquality(t *testing.T) {
	a := NewTile(0, 1, 2, 3)
	b := NewTile(0, 1, 2, 3)
	c := NewTile(0, 1, 2, 4)

	if a != b {
		t.Errorf("structurally equal tiles compared unequal")
	}
	if a == c {
		t.Errorf("structurally distinct tiles compared equal")
	}

	m := map[Tile]int{a: 1}
	if _, ok := m[b]; !ok {
		t.Errorf("equal tile did not hash to the same map bucket")
	}
}

func TestPipOf(t *testing.T) {
	if got := PipOf(1, 0); got != 2 {
		t.Errorf("PipOf(1, 0) = %v, want 2", got)
	}
	if got := PipOf(1, 1); got != 3 {
		t.Errorf("PipOf(1, 1) = %v, want 3", got)
	}
	if PipOf(1, 0) == PipOf(2, 0) {
		t.Errorf("distinct instruction positions produced the same pip")
	}
}
