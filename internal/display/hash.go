package display

import (
	"errors"
	"fmt"
	"io"

	"github.com/thelolagemann/ndsppu/internal/gpu"
)

// Hasher is a headless Output recording the hash of each frame, and
// writing it as a line of hex when created with a writer.
type Hasher struct {
	w      io.Writer
	hashes []uint64
}

// NewHasher returns a new Hasher writing to w, which may be nil.
func NewHasher(w io.Writer) *Hasher {
	return &Hasher{w: w}
}

// Present records the hash of f.
func (h *Hasher) Present(f *gpu.Frame) error {
	sum := f.Hash()
	h.hashes = append(h.hashes, sum)
	if h.w == nil {
		return nil
	}
	_, err := fmt.Fprintf(h.w, "%04d %016x\n", len(h.hashes)-1, sum)
	return err
}

// Hashes returns the hashes of the presented frames in order.
func (h *Hasher) Hashes() []uint64 { return h.hashes }

// Close implements Output.
func (h *Hasher) Close() error { return nil }

type discard struct{}

func (discard) Present(*gpu.Frame) error { return nil }
func (discard) Close() error             { return nil }

// Discard is an Output that ignores every frame.
var Discard Output = discard{}

type multi []Output

// Multi returns an Output presenting each frame to every output.
func Multi(outputs ...Output) Output {
	return multi(outputs)
}

func (m multi) Present(f *gpu.Frame) error {
	var errs []error
	for _, o := range m {
		if err := o.Present(f); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m multi) Close() error {
	var errs []error
	for _, o := range m {
		if err := o.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
