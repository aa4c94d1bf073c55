package images

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// createTestPNGDataURI creates a small 2x2 red PNG as a data URI.
func createTestPNGDataURI() string {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	red := color.RGBA{255, 0, 0, 255}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.Set(x, y, red)
		}
	}
	var buf bytes.Buffer
	png.Encode(&buf, img)
	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	return "data:image/png;base64," + encoded
}

func TestDecode_ValidPNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	var buf bytes.Buffer
	png.Encode(&buf, img)

	decoded, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded.Bounds().Dx() != 3 || decoded.Bounds().Dy() != 2 {
		t.Errorf("expected 3x2 buffer, got %v", decoded.Bounds())
	}
}

func TestDecode_CorruptBytesReturnsErrDecode(t *testing.T) {
	_, err := Decode([]byte("definitely not an image"))
	if err == nil {
		t.Fatal("expected error for corrupt bytes")
	}
	if !errors.Is(err, ErrDecode) {
		t.Errorf("expected ErrDecode, got %v", err)
	}
}

func TestIsDataURI(t *testing.T) {
	if !IsDataURI("data:image/png;base64,abc") {
		t.Error("expected true for data URI")
	}
	if IsDataURI("/path/to/file.png") {
		t.Error("expected false for file path")
	}
	if IsDataURI("") {
		t.Error("expected false for empty string")
	}
}

func TestLoadImageFromDataURI(t *testing.T) {
	uri := createTestPNGDataURI()
	img, err := LoadImageFromDataURI(uri)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 2 || bounds.Dy() != 2 {
		t.Errorf("expected 2x2 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestLoadImageFromDataURI_Invalid(t *testing.T) {
	tests := []string{
		"not-a-data-uri",
		"data:image/png;base64", // no comma
		"data:image/png;base64,!!!invalid-base64!!!",
		"data:image/png;base64,aGVsbG8=", // valid base64 but not an image
	}
	for _, uri := range tests {
		_, err := LoadImageFromDataURI(uri)
		if err == nil {
			t.Errorf("expected error for %q", uri)
		}
	}
}

func TestLoadImage_DataURI(t *testing.T) {
	uri := createTestPNGDataURI()
	img, err := LoadImage(uri)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 2 || bounds.Dy() != 2 {
		t.Errorf("expected 2x2 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	// Second call should hit cache
	img2, err := LoadImage(uri)
	if err != nil {
		t.Fatalf("unexpected error on cached load: %v", err)
	}
	if img != img2 {
		t.Error("expected cached image to be the same pointer")
	}
}

func TestDownscale_LargeImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1000, 400))
	scaled, scale := Downscale(img, 500)

	if scale != 0.5 {
		t.Errorf("expected scale 0.5, got %f", scale)
	}
	if scaled.Bounds().Dx() != 500 || scaled.Bounds().Dy() != 200 {
		t.Errorf("expected 500x200, got %v", scaled.Bounds())
	}
}

func TestDownscale_SmallImageUnchanged(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 100, 80))
	scaled, scale := Downscale(img, 500)

	if scale != 1 {
		t.Errorf("expected scale 1, got %f", scale)
	}
	if scaled != img {
		t.Error("expected the same buffer back for an in-limit image")
	}
}
