package compare

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestImages_IdenticalMatch(t *testing.T) {
	a := solid(10, 10, color.NRGBA{59, 130, 246, 255})
	result, err := Images(a, a, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Match {
		t.Errorf("identical images should match: %+v", result)
	}
	if result.DifferentPixels != 0 || result.TotalPixels != 100 {
		t.Errorf("unexpected pixel accounting: %+v", result)
	}
}

func TestImages_ImperceptibleDifferenceMatches(t *testing.T) {
	// One red channel step apart, far below a deltaE of 1.
	a := solid(10, 10, color.NRGBA{255, 0, 0, 255})
	e := solid(10, 10, color.NRGBA{254, 0, 0, 255})

	result, err := Images(a, e, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Match {
		t.Errorf("one channel step should be imperceptible: %+v", result)
	}
	if result.MaxDeltaE <= 0 {
		t.Error("expected a nonzero max deltaE for distinct colors")
	}
}

func TestImages_VisibleDifferenceFails(t *testing.T) {
	a := solid(10, 10, color.NRGBA{255, 0, 0, 255})
	e := solid(10, 10, color.NRGBA{255, 0, 0, 255})
	// Repaint a 3x3 patch blue.
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			e.SetNRGBA(x, y, color.NRGBA{0, 0, 255, 255})
		}
	}

	result, err := Images(a, e, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Match {
		t.Error("expected a visible patch to fail the comparison")
	}
	if result.DifferentPixels != 9 {
		t.Errorf("expected 9 differing pixels, got %d", result.DifferentPixels)
	}
}

func TestImages_MaxDifferentPercentAbsorbsSmallPatch(t *testing.T) {
	a := solid(30, 30, color.NRGBA{255, 255, 255, 255})
	e := solid(30, 30, color.NRGBA{255, 255, 255, 255})
	e.SetNRGBA(0, 0, color.NRGBA{0, 0, 0, 255})

	opts := DefaultOptions()
	opts.MaxDifferentPercent = 0.5 // one pixel of 900 is ~0.11%
	result, err := Images(a, e, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Match {
		t.Errorf("expected the percent budget to absorb one pixel: %+v", result)
	}
	if result.DifferentPixels != 1 {
		t.Errorf("expected the differing pixel still counted, got %d", result.DifferentPixels)
	}
}

func TestImages_FuzzyRadiusAbsorbsShift(t *testing.T) {
	// A black pixel shifted right by one.
	a := solid(10, 10, color.NRGBA{255, 255, 255, 255})
	a.SetNRGBA(4, 4, color.NRGBA{0, 0, 0, 255})
	e := solid(10, 10, color.NRGBA{255, 255, 255, 255})
	e.SetNRGBA(5, 4, color.NRGBA{0, 0, 0, 255})

	strict, err := Images(a, e, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strict.Match {
		t.Error("expected a strict comparison to fail on the shift")
	}

	opts := DefaultOptions()
	opts.FuzzyRadius = 1
	fuzzy, err := Images(a, e, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fuzzy.Match {
		t.Errorf("expected radius 1 to absorb a 1px shift: %+v", fuzzy)
	}
}

func TestImages_DimensionMismatch(t *testing.T) {
	a := solid(10, 10, color.NRGBA{0, 0, 0, 255})
	e := solid(10, 12, color.NRGBA{0, 0, 0, 255})
	if _, err := Images(a, e, DefaultOptions()); err == nil {
		t.Error("expected an error for mismatched dimensions")
	}
}

func TestImages_WritesDiffImage(t *testing.T) {
	a := solid(6, 6, color.NRGBA{255, 255, 255, 255})
	e := solid(6, 6, color.NRGBA{255, 255, 255, 255})
	e.SetNRGBA(2, 2, color.NRGBA{0, 128, 0, 255})

	path := filepath.Join(t.TempDir(), "diff.png")
	opts := DefaultOptions()
	opts.DiffPath = path

	result, err := Images(a, e, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Match {
		t.Fatal("expected mismatch")
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("diff image not written: %v", err)
	}
	defer f.Close()
	diff, err := png.Decode(f)
	if err != nil {
		t.Fatalf("diff image not decodable: %v", err)
	}
	r, g, b, _ := diff.At(2, 2).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("expected the differing pixel marked red, got %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	writePNG := func(name string, img image.Image) string {
		path := filepath.Join(dir, name)
		f, err := os.Create(path)
		if err != nil {
			t.Fatalf("create fixture: %v", err)
		}
		defer f.Close()
		if err := png.Encode(f, img); err != nil {
			t.Fatalf("encode fixture: %v", err)
		}
		return path
	}

	a := writePNG("a.png", solid(4, 4, color.NRGBA{10, 20, 30, 255}))
	b := writePNG("b.png", solid(4, 4, color.NRGBA{10, 20, 30, 255}))

	result, err := Files(a, b, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Match {
		t.Errorf("identical files should match: %+v", result)
	}

	if _, err := Files(a, filepath.Join(dir, "absent.png"), DefaultOptions()); err == nil {
		t.Error("expected error for a missing file")
	}
}
