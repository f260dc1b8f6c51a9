package resources

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"sync"

	"fyne.io/fyne/v2"
)

const iconSize = 256

var accentColor = color.NRGBA{R: 0, G: 120, B: 215, A: 255}

var (
	iconOnce     sync.Once
	iconResource fyne.Resource
)

// AppIcon returns the tray/application icon: a clock face with the
// hands at a quarter past, drawn at startup instead of shipping an
// asset file.
func AppIcon() fyne.Resource {
	iconOnce.Do(func() {
		iconResource = fyne.NewStaticResource("takebreak-icon.png", renderIcon())
	})
	return iconResource
}

func renderIcon() []byte {
	img := image.NewNRGBA(image.Rect(0, 0, iconSize, iconSize))

	const (
		margin    = 20
		lineWidth = 10
	)
	center := iconSize / 2
	radius := center - margin

	drawRing(img, center, center, radius, lineWidth)
	// Hour hand at 45 degrees, minute hand straight up.
	drawLine(img, center, center, center+60, center-60, lineWidth)
	drawLine(img, center, center, center, center-90, lineWidth)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		// Encoding an in-memory NRGBA cannot fail; treat it as a
		// programming error.
		panic(err)
	}
	return buf.Bytes()
}

func drawRing(img *image.NRGBA, cx, cy, radius, width int) {
	inner := radius - width
	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			dx, dy := x-cx, y-cy
			distSq := dx*dx + dy*dy
			if distSq <= radius*radius && distSq >= inner*inner {
				img.SetNRGBA(x, y, accentColor)
			}
		}
	}
}

func drawLine(img *image.NRGBA, x0, y0, x1, y1, width int) {
	steps := abs(x1-x0) + abs(y1-y0)
	if steps == 0 {
		steps = 1
	}
	half := width / 2
	for step := 0; step <= steps; step++ {
		x := x0 + (x1-x0)*step/steps
		y := y0 + (y1-y0)*step/steps
		for dy := -half; dy <= half; dy++ {
			for dx := -half; dx <= half; dx++ {
				px, py := x+dx, y+dy
				if px >= 0 && px < iconSize && py >= 0 && py < iconSize {
					img.SetNRGBA(px, py, accentColor)
				}
			}
		}
	}
}

func abs(value int) int {
	if value < 0 {
		return -value
	}
	return value
}
