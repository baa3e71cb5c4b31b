// Package scene loads dumps of the 2D engines' registers and memory.
//
// A scene is described by a JSON manifest naming the files holding
// each memory region, relative to the manifest, and the register
// writes to replay:
//
//	{
//	  "name": "title screen",
//	  "frames": 1,
//	  "swap": false,
//	  "banks": {"ABG": "abg.bin.gz", "Palette": "pal.bin", "OAM": "oam.bin"},
//	  "writes": [
//	    {"address": "0x04000000", "size": 32, "value": "0x00011F00"},
//	    {"address": "0x04000008", "size": 16, "value": 4}
//	  ]
//	}
//
// Bank files and the manifest itself may be compressed (.gz, .zip or
// .7z).
package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/thelolagemann/ndsppu/internal/memory"
	"github.com/thelolagemann/ndsppu/internal/ppu"
	"github.com/thelolagemann/ndsppu/pkg/utils"
)

var (
	// ErrUnknownRegion is returned for a bank naming an unknown
	// memory region.
	ErrUnknownRegion = errors.New("scene: unknown region")
	// ErrInvalidWrite is returned for a register write that is not
	// 8, 16 or 32 bits wide.
	ErrInvalidWrite = errors.New("scene: invalid write size")
)

// Hex is a number that may be written in JSON as a number or as a
// string in any base accepted by strconv, such as "0x04000000".
type Hex uint32

// UnmarshalJSON implements json.Unmarshaler.
func (h *Hex) UnmarshalJSON(b []byte) error {
	s := string(b)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return fmt.Errorf("scene: parsing %s: %w", b, err)
	}
	*h = Hex(v)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (h Hex) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`"0x%08X"`, uint32(h))), nil
}

// Write is a register write.
type Write struct {
	Address Hex `json:"address"`
	Size    int `json:"size"`
	Value   Hex `json:"value"`
}

// Scene is a loaded scene manifest.
type Scene struct {
	Name   string            `json:"name"`
	Frames int               `json:"frames"`
	Swap   bool              `json:"swap"`
	Banks  map[string]string `json:"banks"`
	Writes []Write           `json:"writes"`
	FIFO   []Hex             `json:"fifo"`

	dir string
}

// Bus is the interface that wraps the register writes of a scene.
type Bus interface {
	Write8(address uint32, value uint8)
	Write16(address uint32, value uint16)
	Write32(address uint32, value uint32)
	SetSwap(swap bool)
}

// Load loads the manifest at path.
func Load(path string) (*Scene, error) {
	data, err := utils.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: loading %s: %w", path, err)
	}
	return Parse(data, filepath.Dir(path))
}

// Parse parses a manifest whose bank files are relative to dir.
func Parse(data []byte, dir string) (*Scene, error) {
	s := &Scene{Frames: 1, dir: dir}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("scene: parsing manifest: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the regions and write sizes of the scene.
func (s *Scene) Validate() error {
	for name := range s.Banks {
		if _, err := ParseRegion(name); err != nil {
			return err
		}
	}
	for i, w := range s.Writes {
		switch w.Size {
		case 8, 16, 32:
		default:
			return fmt.Errorf("%w: write %d is %d bits", ErrInvalidWrite, i, w.Size)
		}
	}
	if s.Frames < 1 {
		s.Frames = 1
	}
	return nil
}

// ParseRegion returns the memory region with the given name, as
// printed by ppu.Region.
func ParseRegion(name string) (ppu.Region, error) {
	for r := ppu.Region(0); r < ppu.RegionCount; r++ {
		if strings.EqualFold(r.String(), name) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRegion, name)
}

// Memory loads the banks of the scene over the default memory map.
// A bank smaller than its region's default block is copied to the
// start of the block, any other bank replaces it.
func (s *Scene) Memory() (*memory.Map, error) {
	m := memory.Default()
	for name, file := range s.Banks {
		r, err := ParseRegion(name)
		if err != nil {
			return nil, err
		}
		path := file
		if !filepath.IsAbs(path) {
			path = filepath.Join(s.dir, file)
		}
		data, err := utils.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("scene: loading %s bank: %w", r, err)
		}

		if b := m.Block(r); b != nil && len(data) <= b.Len() {
			copy(b.Bytes(), data)
			continue
		}
		m.Set(r, memory.NewBlockFrom(data))
	}

	for _, v := range s.FIFO {
		m.PushFIFO(uint32(v))
	}
	return m, nil
}

// Apply replays the register writes of the scene on b.
func (s *Scene) Apply(b Bus) {
	b.SetSwap(s.Swap)
	for _, w := range s.Writes {
		switch w.Size {
		case 8:
			b.Write8(uint32(w.Address), uint8(w.Value))
		case 16:
			b.Write16(uint32(w.Address), uint16(w.Value))
		case 32:
			b.Write32(uint32(w.Address), uint32(w.Value))
		}
	}
}
