package css

import "testing"

func TestParseColor_RGBFunction(t *testing.T) {
	c, ok := ParseColor("rgb(59, 130, 246)")
	if !ok {
		t.Fatal("expected rgb() to parse")
	}
	if c.R != 59 || c.G != 130 || c.B != 246 || c.A != 1 {
		t.Errorf("unexpected color: %+v", c)
	}
	if c.Hex() != "#3b82f6" {
		t.Errorf("unexpected hex: %s", c.Hex())
	}
}

func TestParseColor_RGBAFunction(t *testing.T) {
	c, ok := ParseColor("rgba(255, 0, 0, 0.5)")
	if !ok {
		t.Fatal("expected rgba() to parse")
	}
	if c.R != 255 || c.A != 0.5 {
		t.Errorf("unexpected color: %+v", c)
	}

	c, ok = ParseColor("rgba(0, 0, 0, 0)")
	if !ok {
		t.Fatal("expected fully transparent rgba() to parse")
	}
	if !c.Transparent() {
		t.Errorf("expected transparent, got %+v", c)
	}
}

func TestParseColor_Hex(t *testing.T) {
	c, ok := ParseColor("#3B82F6")
	if !ok || c.RGB().R != 59 {
		t.Errorf("expected 6-digit hex to parse, got %+v ok=%v", c, ok)
	}

	c, ok = ParseColor("#fff")
	if !ok || c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("expected 3-digit hex to parse, got %+v ok=%v", c, ok)
	}

	if _, ok := ParseColor("#12345"); ok {
		t.Error("expected 5-digit hex to fail")
	}
	if _, ok := ParseColor("#gggggg"); ok {
		t.Error("expected non-hex digits to fail")
	}
}

func TestParseColor_Named(t *testing.T) {
	tests := map[string]Color{
		"red":         {255, 0, 0, 1},
		"blue":        {0, 0, 255, 1},
		"green":       {0, 128, 0, 1},
		"transparent": {0, 0, 0, 0},
	}
	for name, expected := range tests {
		c, ok := ParseColor(name)
		if !ok || c != expected {
			t.Errorf("color %s: expected %+v, got %+v", name, expected, c)
		}
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, value := range []string{"", "hsl(0, 50%, 50%)", "rgb(a, b, c)", "rgb(1,2)", "chartreuse-ish"} {
		if _, ok := ParseColor(value); ok {
			t.Errorf("expected %q to fail", value)
		}
	}
}

func TestParseColor_ClampsOutOfRangeChannels(t *testing.T) {
	c, ok := ParseColor("rgb(300, -5, 128)")
	if !ok {
		t.Fatal("expected out-of-range rgb() to parse with clamping")
	}
	if c.R != 255 || c.G != 0 || c.B != 128 {
		t.Errorf("unexpected clamped color: %+v", c)
	}
}

func TestPrimaryFontFamily(t *testing.T) {
	tests := []struct{ in, want string }{
		{`"Inter", sans-serif`, "Inter"},
		{`'Helvetica Neue', Arial, sans-serif`, "Helvetica Neue"},
		{"Georgia", "Georgia"},
		{"", "sans-serif"},
		{`""`, "sans-serif"},
	}
	for _, tt := range tests {
		if got := PrimaryFontFamily(tt.in); got != tt.want {
			t.Errorf("PrimaryFontFamily(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeFontWeight(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", "400"},
		{"normal", "400"},
		{"bold", "700"},
		{"600", "600"},
	}
	for _, tt := range tests {
		if got := NormalizeFontWeight(tt.in); got != tt.want {
			t.Errorf("NormalizeFontWeight(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeFontSize(t *testing.T) {
	if got := NormalizeFontSize(""); got != "16px" {
		t.Errorf("expected 16px default, got %q", got)
	}
	if got := NormalizeFontSize("14px"); got != "14px" {
		t.Errorf("expected value kept, got %q", got)
	}
}
