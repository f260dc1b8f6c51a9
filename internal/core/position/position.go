package position

// Anchor is one of six fixed screen-relative spots for the floating
// timer widget.
type Anchor int

const (
	TopLeft Anchor = iota
	TopCenter
	TopRight
	BottomLeft
	BottomRight
	BottomCenter
)

// Anchors lists all anchors in cycling order.
var Anchors = []Anchor{TopLeft, TopCenter, TopRight, BottomLeft, BottomRight, BottomCenter}

// String returns a readable anchor name.
func (anchor Anchor) String() string {
	switch anchor {
	case TopLeft:
		return "top_left"
	case TopCenter:
		return "top_center"
	case TopRight:
		return "top_right"
	case BottomLeft:
		return "bottom_left"
	case BottomRight:
		return "bottom_right"
	case BottomCenter:
		return "bottom_center"
	default:
		return "unknown"
	}
}

// Next returns the next anchor in cyclic order, wrapping from the last
// back to the first.
func Next(current Anchor) Anchor {
	for index, anchor := range Anchors {
		if anchor == current {
			return Anchors[(index+1)%len(Anchors)]
		}
	}
	return Anchors[0]
}

// Point is a pixel coordinate on the screen.
type Point struct {
	X int
	Y int
}

// Calculate maps an anchor to pixel coordinates for a widget of the
// given size on a screen of the given size.
func Calculate(anchor Anchor, screenWidth, screenHeight, widgetWidth, widgetHeight int) Point {
	var y int
	switch anchor {
	case TopLeft, TopCenter, TopRight:
		y = 0
	default:
		y = screenHeight - widgetHeight
	}

	var x int
	switch anchor {
	case TopLeft, BottomLeft:
		x = 0
	case TopRight, BottomRight:
		x = screenWidth - widgetWidth
	default:
		x = (screenWidth - widgetWidth) / 2
	}

	return Point{X: x, Y: y}
}
