package position

import "testing"

func TestCalculateCorners(t *testing.T) {
	cases := []struct {
		name   string
		anchor Anchor
		want   Point
	}{
		{"top left", TopLeft, Point{X: 0, Y: 0}},
		{"top center", TopCenter, Point{X: 860, Y: 0}},
		{"top right", TopRight, Point{X: 1720, Y: 0}},
		{"bottom left", BottomLeft, Point{X: 0, Y: 980}},
		{"bottom center", BottomCenter, Point{X: 860, Y: 980}},
		{"bottom right", BottomRight, Point{X: 1720, Y: 980}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Calculate(tc.anchor, 1920, 1080, 200, 100)
			if got != tc.want {
				t.Fatalf("Calculate(%v) = %+v, want %+v", tc.anchor, got, tc.want)
			}
		})
	}
}

func TestNextCyclesThroughAllAnchors(t *testing.T) {
	current := TopLeft
	seen := make(map[Anchor]bool)

	for range Anchors {
		if seen[current] {
			t.Fatalf("anchor %v visited twice before cycle completed", current)
		}
		seen[current] = true
		current = Next(current)
	}

	if len(seen) != len(Anchors) {
		t.Fatalf("cycle visited %d anchors, want %d", len(seen), len(Anchors))
	}
	if current != TopLeft {
		t.Fatalf("cycle did not wrap to start: got %v", current)
	}
}

func TestNextClosureFromEveryAnchor(t *testing.T) {
	for _, start := range Anchors {
		current := start
		for range Anchors {
			current = Next(current)
		}
		if current != start {
			t.Fatalf("six steps from %v landed on %v", start, current)
		}
	}
}

func TestCalculateStaysWithinAvailableScreen(t *testing.T) {
	// Available height below full screen height models a taskbar.
	screenWidth, availableHeight := 1920, 1040
	for _, anchor := range Anchors {
		point := Calculate(anchor, screenWidth, availableHeight, 180, 60)
		if point.X < 0 || point.X > screenWidth {
			t.Fatalf("%v x = %d out of range", anchor, point.X)
		}
		if point.Y < 0 || point.Y > availableHeight {
			t.Fatalf("%v y = %d out of range", anchor, point.Y)
		}
	}
}
