package stanza

import (
	"bytes"
	"image"
	"image/jpeg"
	"testing"
)

func encodeJPEG(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return &buf
}

func TestProcessImageDownscales(t *testing.T) {
	src := encodeJPEG(t, 1200, 300)
	data, w, h, err := processImage(src)
	if err != nil {
		t.Fatalf("processImage failed: %v", err)
	}
	if w != maxImageWidth {
		t.Errorf("width = %d, want %d", w, maxImageWidth)
	}
	if h != 200 {
		t.Errorf("height = %d, want 200", h)
	}
	decoded, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if got := decoded.Bounds().Dx(); got != maxImageWidth {
		t.Errorf("output width = %d, want %d", got, maxImageWidth)
	}
}

func TestProcessImageKeepsSmall(t *testing.T) {
	src := encodeJPEG(t, 400, 300)
	_, w, h, err := processImage(src)
	if err != nil {
		t.Fatalf("processImage failed: %v", err)
	}
	if w != 400 || h != 300 {
		t.Errorf("dimensions = %dx%d, want 400x300", w, h)
	}
}

func TestProcessImageRejectsGarbage(t *testing.T) {
	if _, _, _, err := processImage(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("expected error for non-image input")
	}
}

func TestIsJPEG(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"photo.jpg", true},
		{"photo.JPEG", true},
		{"diagram.png", false},
		{"style.css", false},
	}
	for _, tt := range tests {
		if got := isJPEG(tt.path); got != tt.want {
			t.Errorf("isJPEG(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
