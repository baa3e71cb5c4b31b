package ppu

import (
	"reflect"
	"testing"

	"github.com/thelolagemann/ndsppu/internal/ppu/lcd"
	"github.com/thelolagemann/ndsppu/internal/ppu/palette"
)

func TestResort(t *testing.T) {
	t.Run("visibility", func(t *testing.T) {
		tests := []struct {
			name     string
			hardware bool
			visible  bool
			expected bool
		}{
			{"shown", true, true, true},
			{"hidden by toggle", true, false, false},
			{"disabled", false, true, false},
			{"disabled and toggled", false, false, true},
		}
		for _, tt := range tests {
			e, _ := newTestEngine(t, Main)
			var v uint32 = dispNormal
			if tt.hardware {
				v |= dispBG2
			}
			e.SetDisplayControl(v)
			e.SetLayerVisible(lcd.BG2, tt.visible)
			if e.LayerEnabled(lcd.BG2) != tt.expected {
				t.Errorf("%s: expected enabled %t, got %t", tt.name, tt.expected, e.LayerEnabled(lcd.BG2))
			}
		}
	})
	t.Run("BG0 3D", func(t *testing.T) {
		e, _ := newTestEngine(t, Main)
		e.SetDisplayControl(dispNormal | dispBG0 | 1<<3)
		if e.LayerEnabled(lcd.BG0) {
			t.Errorf("expected BG0 to be hidden when used for 3D on the main engine")
		}
		s, _ := newTestEngine(t, Sub)
		s.SetDisplayControl(dispNormal | dispBG0 | 1<<3)
		if !s.LayerEnabled(lcd.BG0) {
			t.Errorf("expected the sub engine to ignore the 3D bit")
		}
	})
	t.Run("buckets", func(t *testing.T) {
		e, _ := newTestEngine(t, Main)
		e.SetDisplayControl(dispNormal | dispBG0 | dispBG1 | dispBG2 | dispBG3)
		e.SetBackgroundControl(0, 3)
		e.SetBackgroundControl(1, 1)
		e.SetBackgroundControl(2, 3)
		e.SetBackgroundControl(3, 1)

		expected := [4][]int{nil, {1, 3}, nil, {0, 2}}
		for p := 0; p < 4; p++ {
			got := e.Layers(p)
			if len(got) == 0 && len(expected[p]) == 0 {
				continue
			}
			if !reflect.DeepEqual(got, expected[p]) {
				t.Errorf("priority %d: expected %v, got %v", p, expected[p], got)
			}
		}

		e.ToggleLayer(lcd.BG3)
		if got := e.Layers(1); !reflect.DeepEqual(got, []int{1}) {
			t.Errorf("expected toggled BG3 to leave the bucket, got %v", got)
		}
	})
	t.Run("clears object window", func(t *testing.T) {
		e, _ := newTestEngine(t, Main)
		e.setObjWindow(10, 20)
		e.SetBackgroundControl(0, 0)
		if e.inObjWindow(10, 20) {
			t.Errorf("expected object window to be cleared")
		}
	})
}

func TestPriorityTieBreak(t *testing.T) {
	e, mem := newTestEngine(t, Main)
	vram := mem.bank(RegionABG)

	// BG0 and BG1 share priority 0 and tile data, with their own maps
	e.SetDisplayControl(dispNormal | dispBG0 | dispBG1)
	e.SetBackgroundControl(0, 1<<2|0<<8)
	e.SetBackgroundControl(1, 1<<2|1<<8)
	vram.fill(0x4000+1*32, 32, 0x11)
	vram.fill(0x4000+2*32, 32, 0x22)
	for i := uint32(0); i < 32*32; i++ {
		vram.write16(i*2, 1)
		vram.write16(0x800+i*2, 2)
	}
	mem.setColour(0, 1, palette.New(31, 0, 0))
	mem.setColour(0, 2, palette.New(0, 31, 0))

	line := e.RenderScanline(0)
	for _, x := range []int{0, 100, 255} {
		expectPixel(t, line, x, palette.New(0, 31, 0))
	}

	// with BG1 hidden, BG0 shows through
	e.SetLayerVisible(lcd.BG1, false)
	line = e.RenderScanline(0)
	expectPixel(t, line, 0, palette.New(31, 0, 0))
}
