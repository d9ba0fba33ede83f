package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"
)

const (
	TileSize = 25
	GridCols = 24
	GridRows = 24

	DefaultInterval = 200 * time.Millisecond
	DefaultLength   = 3

	// Redraw rate of the terminal UI.
	TermFrame = time.Second / 30

	// Keep tiny grids playable without letting the window grow past a screen.
	MinTileSize = 4
	MaxTileSize = 64
	MaxGridSide = 256

	// Effect gain on beep's base-2 scale: -1 halves, 1 doubles.
	MinVolume = -8
	MaxVolume = 2

	UIWindow = "window"
	UITerm   = "term"
)

var ErrInvalid = errors.New("invalid option")

// Options are the run settings, filled from command-line flags.
type Options struct {
	Width    int
	Height   int
	Tile     int
	Interval time.Duration
	Length   int
	StartX   int
	StartY   int
	Seed     uint64
	UI       string

	Mute       bool
	Volume     float64
	EatSound   string
	OverSound  string
	PickSounds bool
}

func Defaults() Options {
	return Options{
		Width:    GridCols,
		Height:   GridRows,
		Tile:     TileSize,
		Interval: DefaultInterval,
		Length:   DefaultLength,
		UI:       UIWindow,
	}
}

// Parse reads flags from args (without the program name). A zero seed
// means the caller should pick one.
func Parse(args []string, output io.Writer) (Options, error) {
	opts := Defaults()
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}

	fs.IntVar(&opts.Width, "width", opts.Width, "grid width in cells")
	fs.IntVar(&opts.Height, "height", opts.Height, "grid height in cells")
	fs.IntVar(&opts.Tile, "tile", opts.Tile, "cell size in pixels (window UI)")
	fs.DurationVar(&opts.Interval, "interval", opts.Interval, "time between moves")
	fs.IntVar(&opts.Length, "length", opts.Length, "initial snake length")
	fs.IntVar(&opts.StartX, "start-x", opts.StartX, "start column")
	fs.IntVar(&opts.StartY, "start-y", opts.StartY, "start row")
	fs.Uint64Var(&opts.Seed, "seed", 0, "food placement seed (0 = time based)")
	fs.StringVar(&opts.UI, "ui", opts.UI, "frontend: window or term")
	fs.BoolVar(&opts.Mute, "mute", false, "disable sound effects")
	fs.Float64Var(&opts.Volume, "volume", 0, "effect volume, base 2 (-1 = half, 0 = unchanged)")
	fs.StringVar(&opts.EatSound, "eat-sound", "", "wav/mp3/flac file played when food is eaten")
	fs.StringVar(&opts.OverSound, "over-sound", "", "wav/mp3/flac file played on game over")
	fs.BoolVar(&opts.PickSounds, "pick-sounds", false, "choose sound files with a file dialog")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if err := opts.Validate(); err != nil {
		// The flag set has already reported its own parse errors.
		fmt.Fprintln(fs.Output(), err)
		return Options{}, err
	}
	return opts, nil
}

func (o Options) Validate() error {
	switch {
	case o.Width <= 0 || o.Width > MaxGridSide:
		return fmt.Errorf("%w: width %d", ErrInvalid, o.Width)
	case o.Height <= 0 || o.Height > MaxGridSide:
		return fmt.Errorf("%w: height %d", ErrInvalid, o.Height)
	case o.Tile < MinTileSize || o.Tile > MaxTileSize:
		return fmt.Errorf("%w: tile %d", ErrInvalid, o.Tile)
	case o.Interval <= 0:
		return fmt.Errorf("%w: interval %v", ErrInvalid, o.Interval)
	case o.Length < 1 || o.Length > o.Width*o.Height:
		return fmt.Errorf("%w: length %d", ErrInvalid, o.Length)
	case o.StartX < 0 || o.StartX >= o.Width || o.StartY < 0 || o.StartY >= o.Height:
		return fmt.Errorf("%w: start (%d, %d) outside grid", ErrInvalid, o.StartX, o.StartY)
	case o.Volume < MinVolume || o.Volume > MaxVolume:
		return fmt.Errorf("%w: volume %v", ErrInvalid, o.Volume)
	case o.UI != UIWindow && o.UI != UITerm:
		return fmt.Errorf("%w: ui %q", ErrInvalid, o.UI)
	}
	return nil
}

// WindowSize is the playfield size in pixels.
func (o Options) WindowSize() (int, int) {
	return o.Width * o.Tile, o.Height * o.Tile
}
