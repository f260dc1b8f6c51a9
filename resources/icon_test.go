package resources

import (
	"bytes"
	"image/png"
	"testing"
)

func TestAppIconIsValidPNG(t *testing.T) {
	resource := AppIcon()
	if resource.Name() == "" {
		t.Fatalf("icon resource has no name")
	}

	img, err := png.Decode(bytes.NewReader(resource.Content()))
	if err != nil {
		t.Fatalf("icon is not a decodable png: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != iconSize || bounds.Dy() != iconSize {
		t.Fatalf("icon size = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), iconSize, iconSize)
	}
}

func TestAppIconIsCached(t *testing.T) {
	if AppIcon() != AppIcon() {
		t.Fatalf("icon resource not cached between calls")
	}
}
