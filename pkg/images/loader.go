// Package images is the decode boundary between captured asset bytes and the
// pixel-level extractors. Everything downstream works on *image.NRGBA so the
// extractors can index Pix directly instead of going through color.Color.
package images

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"
	"sync"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrDecode marks input that cannot be rasterized at all. This is the one
// failure callers must be able to distinguish from an empty image, so it is
// never substituted with defaults.
var ErrDecode = errors.New("image decode failed")

// ImageCache caches loaded images
type ImageCache struct {
	cache map[string]image.Image
	mu    sync.RWMutex
}

// Global image cache
var globalCache = &ImageCache{
	cache: make(map[string]image.Image),
}

// Decode rasterizes raw image bytes into an NRGBA pixel buffer. The buffer is
// owned by the caller and never shared, so extraction calls need no locks.
func Decode(data []byte) (*image.NRGBA, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return ToNRGBA(img), nil
}

// IsDataURI reports whether the string is a data: URI.
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, "data:")
}

// LoadImageFromDataURI decodes an image from a base64 data URI, the form
// capture payloads usually carry screenshots in.
func LoadImageFromDataURI(uri string) (image.Image, error) {
	comma := strings.Index(uri, ",")
	if !IsDataURI(uri) || comma < 0 {
		return nil, fmt.Errorf("malformed data URI")
	}

	data, err := base64.StdEncoding.DecodeString(uri[comma+1:])
	if err != nil {
		return nil, fmt.Errorf("decode base64 payload: %w", err)
	}

	return Decode(data)
}

// LoadImage loads an image from a data URI or the filesystem
func LoadImage(path string) (image.Image, error) {
	// Check cache first
	globalCache.mu.RLock()
	if img, ok := globalCache.cache[path]; ok {
		globalCache.mu.RUnlock()
		return img, nil
	}
	globalCache.mu.RUnlock()

	var img image.Image
	var err error
	if IsDataURI(path) {
		img, err = LoadImageFromDataURI(path)
	} else {
		var data []byte
		data, err = os.ReadFile(path)
		if err == nil {
			img, err = Decode(data)
		}
	}
	if err != nil {
		return nil, err
	}

	// Cache the image
	globalCache.mu.Lock()
	globalCache.cache[path] = img
	globalCache.mu.Unlock()

	return img, nil
}

// GetImageDimensions returns the width and height of an image
func GetImageDimensions(path string) (width, height int, err error) {
	img, err := LoadImage(path)
	if err != nil {
		return 0, 0, err
	}

	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy(), nil
}

// ToNRGBA copies an image into an NRGBA buffer anchored at (0,0).
func ToNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Bounds().Min == (image.Point{}) {
		return nrgba
	}
	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}

// Downscale resizes img so its longer dimension is at most maxDimension and
// returns the result plus the applied scale factor (<= 1). Images already
// within the limit come back unchanged with scale 1.
func Downscale(img *image.NRGBA, maxDimension int) (*image.NRGBA, float64) {
	width := img.Bounds().Dx()
	height := img.Bounds().Dy()
	if width <= 0 || height <= 0 {
		return img, 1
	}

	longer := width
	if height > longer {
		longer = height
	}
	if maxDimension <= 0 || longer <= maxDimension {
		return img, 1
	}

	scale := float64(maxDimension) / float64(longer)
	newWidth := uint(float64(width) * scale)
	newHeight := uint(float64(height) * scale)
	if newWidth == 0 {
		newWidth = 1
	}
	if newHeight == 0 {
		newHeight = 1
	}

	scaled := resize.Resize(newWidth, newHeight, img, resize.Bilinear)
	return ToNRGBA(scaled), scale
}
