package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"strings"
	"time"

	"github.com/thelolagemann/ndsppu/internal/display"
	"github.com/thelolagemann/ndsppu/internal/gpu"
	"github.com/thelolagemann/ndsppu/internal/memory"
	"github.com/thelolagemann/ndsppu/internal/ppu"
	"github.com/thelolagemann/ndsppu/internal/ppu/lcd"
	"github.com/thelolagemann/ndsppu/internal/ppu/palette"
	"github.com/thelolagemann/ndsppu/internal/profile"
	"github.com/thelolagemann/ndsppu/internal/scene"
	"github.com/thelolagemann/ndsppu/pkg/log"
)

var layerNames = map[string]lcd.Layer{
	"bg0": lcd.BG0, "bg1": lcd.BG1, "bg2": lcd.BG2, "bg3": lcd.BG3, "obj": lcd.OBJ,
}

func main() {
	scenePath := flag.String("scene", "", "The scene manifest to render")
	frames := flag.Int("frames", 0, "The number of frames to render, overriding the scene")
	debug := flag.Bool("debug", false, "Enable debug logging")
	affine := flag.Bool("affine-sprites", false, "Render rotation/scaling objects through their matrix")
	swap := flag.Bool("swap", false, "Show the main engine on the bottom screen")
	hide := flag.String("hide", "", "Comma separated layers to toggle off on both engines (bg0-bg3, obj)")
	profilePath := flag.String("profile", "", "Write a plot of scanline render times to this PNG file")
	palettePath := flag.String("palette", "", "Write a swatch of palette memory to this PNG file")

	out := display.DefaultConfig()
	display.RegisterFlags(flag.CommandLine, "out", out.Options())
	flag.Parse()

	logger := log.NewWithOutput(os.Stderr, *debug)
	if err := run(logger, options{
		scene:   *scenePath,
		frames:  *frames,
		affine:  *affine,
		swap:    *swap,
		hide:    *hide,
		profile: *profilePath,
		palette: *palettePath,
		output:  out,
	}); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

type options struct {
	scene, hide      string
	profile, palette string
	frames           int
	affine, swap     bool
	output           display.Config
}

func run(logger log.Logger, o options) error {
	if o.scene == "" {
		return fmt.Errorf("no scene given, use -scene")
	}
	s, err := scene.Load(o.scene)
	if err != nil {
		return err
	}
	mem, err := s.Memory()
	if err != nil {
		return err
	}

	gpuOpts := []gpu.Opt{gpu.WithLogger(logger)}
	if o.affine {
		gpuOpts = append(gpuOpts, gpu.WithAffineSprites())
	}
	var rec *profile.Recorder
	if o.profile != "" {
		rec = profile.NewRecorder()
		gpuOpts = append(gpuOpts, gpu.WithProfiler(rec))
	}
	g, err := gpu.New(mem, gpuOpts...)
	if err != nil {
		return err
	}
	s.Apply(g)
	if o.swap {
		g.SetSwap(true)
	}
	if err := hideLayers(g, o.hide); err != nil {
		return err
	}

	output, err := display.New(o.output, os.Stdout)
	if err != nil {
		return err
	}
	defer output.Close()

	n := s.Frames
	if o.frames > 0 {
		n = o.frames
	}
	logger.Infof("rendering %d frame(s) of %q", n, s.Name)

	start := time.Now()
	for i := 0; i < n; i++ {
		f := g.RenderFrame()
		if err := output.Present(f); err != nil {
			return fmt.Errorf("presenting frame %d: %w", i, err)
		}
		logger.Debugf("frame %d: %016x", i, f.Hash())
	}
	logger.Infof("rendered %d frame(s) in %s", n, time.Since(start))

	if rec != nil {
		if err := writePlot(rec, o.profile); err != nil {
			return err
		}
		logger.Infof("main %s, sub %s", rec.Total(ppu.Main), rec.Total(ppu.Sub))
	}
	if o.palette != "" {
		if err := writeSwatch(mem, o.palette); err != nil {
			return err
		}
	}

	return output.Close()
}

func hideLayers(g *gpu.GPU, hide string) error {
	if hide == "" {
		return nil
	}
	for _, name := range strings.Split(hide, ",") {
		l, ok := layerNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return fmt.Errorf("unknown layer %q", name)
		}
		g.Engine(ppu.Main).ToggleLayer(l)
		g.Engine(ppu.Sub).ToggleLayer(l)
	}
	return nil
}

func writePlot(rec *profile.Recorder, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := rec.WritePlot(f, 800, 480); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// writeSwatch writes the BG and OBJ palettes of both engines, one
// engine per 32 rows.
func writeSwatch(mem *memory.Map, path string) error {
	img := palette.Swatch(mem.Bank(ppu.RegionPalette), 0, 2*palette.EngineSize/palette.EntrySize, 8)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, display.Scale(img, 2)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
