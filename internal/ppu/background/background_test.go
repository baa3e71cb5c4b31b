package background

import "testing"

func TestKindFor(t *testing.T) {
	t.Run("total", func(t *testing.T) {
		for mode := uint8(0); mode < 8; mode++ {
			for bg := 0; bg < 4; bg++ {
				k := KindFor(mode, bg)
				if k != Text && k != Affine && k != Extended {
					t.Errorf("mode %d bg %d: expected one of the three kinds, got %d", mode, bg, k)
				}
				if KindFor(mode, bg) != k {
					t.Errorf("mode %d bg %d: expected lookup to be deterministic", mode, bg)
				}
			}
		}
	})
	t.Run("table", func(t *testing.T) {
		tests := []struct {
			mode     uint8
			bg       int
			expected Kind
		}{
			{0, 3, Text},
			{1, 3, Affine},
			{2, 2, Affine},
			{3, 3, Extended},
			{4, 2, Affine},
			{4, 3, Extended},
			{5, 2, Extended},
			{6, 2, Text},
			{7, 3, Text},
		}
		for _, tt := range tests {
			if got := KindFor(tt.mode, tt.bg); got != tt.expected {
				t.Errorf("mode %d bg %d: expected %s, got %s", tt.mode, tt.bg, tt.expected, got)
			}
		}
	})
	t.Run("BG0 and BG1 are always text", func(t *testing.T) {
		for mode := uint8(0); mode < 8; mode++ {
			if KindFor(mode, 0) != Text || KindFor(mode, 1) != Text {
				t.Errorf("mode %d: expected BG0 and BG1 to be text", mode)
			}
		}
	})
}

func TestSizeFor(t *testing.T) {
	tests := []struct {
		class    Class
		code     uint8
		expected Size
	}{
		{ClassText, 0, Size{256, 256}},
		{ClassText, 1, Size{512, 256}},
		{ClassText, 2, Size{256, 512}},
		{ClassText, 3, Size{512, 512}},
		{ClassAffine, 0, Size{128, 128}},
		{ClassAffine, 3, Size{1024, 1024}},
		{ClassBitmap, 2, Size{512, 256}},
		{ClassFor(Extended, true), 3, Size{512, 512}},
		{ClassFor(Extended, false), 2, Size{512, 512}},
	}
	for _, tt := range tests {
		if got := SizeFor(tt.class, tt.code); got != tt.expected {
			t.Errorf("class %d code %d: expected %v, got %v", tt.class, tt.code, tt.expected, got)
		}
	}
}
