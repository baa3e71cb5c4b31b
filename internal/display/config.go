package display

import (
	"flag"
	"fmt"
)

// Config describes an output.
type Config struct {
	Format  string // png, bmp, hash or none
	Dir     string // directory image files are written to
	Prefix  string // prefix of image file names
	Scale   int    // integer scale factor of images
	Screens string // both, top or bottom
}

// DefaultConfig returns the default output configuration.
func DefaultConfig() Config {
	return Config{
		Format:  "png",
		Dir:     ".",
		Prefix:  "frame",
		Scale:   1,
		Screens: "both",
	}
}

// Option is a configurable option of an output.
type Option struct {
	Name        string // name of the option
	Default     any    // default value of the option
	Value       any    // pointer to the value of the option
	Description string // description of the option
}

// Options returns the options of c, each pointing at its field.
func (c *Config) Options() []Option {
	d := DefaultConfig()
	return []Option{
		{"format", d.Format, &c.Format, "output format (png, bmp, hash, none)"},
		{"dir", d.Dir, &c.Dir, "directory to write images to"},
		{"prefix", d.Prefix, &c.Prefix, "prefix of image file names"},
		{"scale", d.Scale, &c.Scale, "integer scale factor of images"},
		{"screens", d.Screens, &c.Screens, "screens to output (both, top, bottom)"},
	}
}

// RegisterFlags registers options with fs, each named prefix-name.
func RegisterFlags(fs *flag.FlagSet, prefix string, options []Option) {
	for _, opt := range options {
		name := fmt.Sprintf("%s-%s", prefix, opt.Name)
		switch v := opt.Value.(type) {
		case *string:
			fs.StringVar(v, name, opt.Default.(string), opt.Description)
		case *int:
			fs.IntVar(v, name, opt.Default.(int), opt.Description)
		case *bool:
			fs.BoolVar(v, name, opt.Default.(bool), opt.Description)
		case *float64:
			fs.Float64Var(v, name, opt.Default.(float64), opt.Description)
		}
	}
}
