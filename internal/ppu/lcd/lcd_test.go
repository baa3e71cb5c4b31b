package lcd

import "testing"

func TestDisplayControl(t *testing.T) {
	d := DisplayControl(0)
	d |= 5            // BG mode 5
	d |= 1 << 3       // BG0 3D
	d |= 1 << 4       // 1D tiles
	d |= 0b1011 << 8  // BG0, BG1, BG3
	d |= 1 << 12      // OBJ
	d |= 1 << 14      // window 1
	d |= 2 << 16      // VRAM display
	d |= 3 << 18      // block D
	d |= 2 << 20      // 128 byte boundary
	d |= 1 << 22      // 256 byte bitmap boundary
	d |= 6 << 24      // char base
	d |= 3 << 27      // screen base
	d |= 1 << 31      // OBJ extended palettes

	tests := []struct {
		name     string
		got      any
		expected any
	}{
		{"BGMode", d.BGMode(), uint8(5)},
		{"BG0Is3D", d.BG0Is3D(), true},
		{"OBJTile1D", d.OBJTile1D(), true},
		{"OBJBitmap1D", d.OBJBitmap1D(), false},
		{"BG0", d.LayerEnabled(BG0), true},
		{"BG2", d.LayerEnabled(BG2), false},
		{"BG3", d.LayerEnabled(BG3), true},
		{"OBJ", d.LayerEnabled(OBJ), true},
		{"Backdrop", d.LayerEnabled(Backdrop), false},
		{"Window0", d.Window0Enabled(), false},
		{"Window1", d.Window1Enabled(), true},
		{"AnyWindow", d.AnyWindowEnabled(), true},
		{"DisplayMode", d.DisplayMode(), DisplayVRAM},
		{"VRAMBlock", d.VRAMBlock(), uint8(3)},
		{"OBJTileBoundary", d.OBJTileBoundary(), uint8(2)},
		{"OBJBitmapBoundary", d.OBJBitmapBoundary(), true},
		{"CharBase", d.CharBase(), uint32(6 << 16)},
		{"ScreenBase", d.ScreenBase(), uint32(3 << 16)},
		{"BGExtPalettes", d.BGExtPalettes(), false},
		{"OBJExtPalettes", d.OBJExtPalettes(), true},
	}
	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.expected, tt.got)
		}
	}
}

func TestBackgroundControl(t *testing.T) {
	b := BackgroundControl(2 | 0xF<<2 | 1<<6 | 1<<7 | 0x1F<<8 | 1<<13 | 3<<14)

	if b.Priority() != 2 {
		t.Errorf("expected priority 2, got %d", b.Priority())
	}
	if b.CharBase() != 15*0x4000 {
		t.Errorf("expected char base 0x%X, got 0x%X", 15*0x4000, b.CharBase())
	}
	if !b.Mosaic() || !b.Colour256() || !b.Wrap() {
		t.Errorf("expected mosaic, 256 colours and wrap to be set")
	}
	if b.ScreenBase() != 31*0x800 {
		t.Errorf("expected screen base 0x%X, got 0x%X", 31*0x800, b.ScreenBase())
	}
	if b.BitmapBase() != 31*0x4000 {
		t.Errorf("expected bitmap base 0x%X, got 0x%X", 31*0x4000, b.BitmapBase())
	}
	if b.ScreenSize() != 3 {
		t.Errorf("expected screen size 3, got %d", b.ScreenSize())
	}
}

func TestMapEntry(t *testing.T) {
	m := MapEntry(0x2405)
	if m.Tile() != 5 || !m.HFlip() || m.VFlip() || m.Palette() != 2 {
		t.Errorf("expected tile 5, hflip, palette 2; got tile %d hflip %t vflip %t palette %d",
			m.Tile(), m.HFlip(), m.VFlip(), m.Palette())
	}
}

func TestObject(t *testing.T) {
	t.Run("X sign extension", func(t *testing.T) {
		for _, tt := range []struct {
			attr1    uint16
			expected int
		}{
			{0x0000, 0},
			{0x00FF, 255},
			{0x0100, -256},
			{0x01FF, -1},
			{0xFE10, 16},
		} {
			o := Object{Attr1: tt.attr1}
			if o.X() != tt.expected {
				t.Errorf("expected X of 0x%04X to be %d, got %d", tt.attr1, tt.expected, o.X())
			}
		}
	})
	t.Run("disabled", func(t *testing.T) {
		o := Object{Attr0: 2 << 8}
		if !o.Disabled() || o.Affine() {
			t.Errorf("expected rotation field 2 to disable the object")
		}
		o = Object{Attr0: 3 << 8}
		if o.Disabled() || !o.Affine() || !o.DoubleSize() {
			t.Errorf("expected rotation field 3 to be an affine double size object")
		}
	})
	t.Run("dimensions", func(t *testing.T) {
		for _, tt := range []struct {
			size, shape uint16
			w, h        int
		}{
			{0, 0, 8, 8},
			{3, 0, 64, 64},
			{1, 1, 32, 8},
			{2, 2, 16, 32},
			{3, 3, 8, 8},
		} {
			o := Object{Attr0: tt.shape << 14, Attr1: tt.size << 14}
			w, h := o.Dimensions()
			if w != tt.w || h != tt.h {
				t.Errorf("expected size %d shape %d to be %dx%d, got %dx%d", tt.size, tt.shape, tt.w, tt.h, w, h)
			}
		}
	})
	t.Run("attribute 2", func(t *testing.T) {
		o := Object{Attr2: 0xB3FF}
		if o.Tile() != 0x3FF || o.Priority() != 0 || o.Palette() != 0xB {
			t.Errorf("expected tile 0x3FF priority 0 palette 11, got 0x%X %d %d", o.Tile(), o.Priority(), o.Palette())
		}
	})
}

func TestEffects(t *testing.T) {
	w := WindowControl(0x3F11)
	if !w.Low().Draws(BG0) || w.Low().Draws(BG1) || !w.Low().Draws(OBJ) || w.Low().Effects() {
		t.Errorf("unexpected low mask 0x%02X", uint8(w.Low()))
	}
	if !w.High().Draws(BG3) || !w.High().Effects() {
		t.Errorf("unexpected high mask 0x%02X", uint8(w.High()))
	}

	b := BlendControl(1<<2 | 1<<6 | 1<<13)
	if !b.Source(BG2) || b.Source(BG0) || !b.Target(Backdrop) || b.Effect() != EffectAlpha {
		t.Errorf("unexpected blend control decode 0x%04X", uint16(b))
	}

	if MasterBrightness(0x801F).Factor() != 16 || MasterBrightness(0x801F).Mode() != 2 {
		t.Errorf("expected master brightness factor to clamp to 16 with mode 2")
	}
	m := Mosaic(0x3210)
	if m.BGWidth() != 1 || m.BGHeight() != 2 || m.OBJWidth() != 3 || m.OBJHeight() != 4 {
		t.Errorf("unexpected mosaic decode %d %d %d %d", m.BGWidth(), m.BGHeight(), m.OBJWidth(), m.OBJHeight())
	}
}
