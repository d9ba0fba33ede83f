package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/ncruces/zenity"
	"golang.org/x/exp/rand"

	"github.com/iburimskiy/snake/internal/config"
	"github.com/iburimskiy/snake/internal/game"
	"github.com/iburimskiy/snake/internal/sound"
	"github.com/iburimskiy/snake/internal/term"
	"github.com/iburimskiy/snake/internal/ui"
)

const windowTitle = "Snake Game"

func main() {
	opts, err := config.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		// Parse has already reported the error.
		os.Exit(2)
	}

	// The terminal UI owns the screen; hold log lines until it exits.
	var held bytes.Buffer
	if opts.UI == config.UITerm {
		log.SetOutput(&held)
	}
	id := uuid.New().String()
	log.SetPrefix(fmt.Sprintf("snake %s ", id[:8]))
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	if err := run(opts); err != nil {
		log.Printf("exit: %v", err)
		if opts.UI == config.UIWindow {
			_ = zenity.Error(err.Error(), zenity.Title(windowTitle), zenity.ErrorIcon)
		}
		os.Stderr.Write(held.Bytes())
		os.Exit(1)
	}
	os.Stderr.Write(held.Bytes())
}

func run(opts config.Options) error {
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("start: %dx%d grid, interval %v, length %d, seed %d, ui %s, volume %v",
		opts.Width, opts.Height, opts.Interval, opts.Length, seed, opts.UI, opts.Volume)

	session, err := game.NewSession(game.Setup{
		Grid:      game.Grid{Width: opts.Width, Height: opts.Height},
		Start:     game.Point{X: opts.StartX, Y: opts.StartY},
		Length:    opts.Length,
		Direction: game.Right,
		Rand:      rand.New(rand.NewSource(seed)),
	}, opts.Interval)
	if err != nil {
		return err
	}

	session.Bus.Subscribe(game.EventFoodEaten, func(e game.Event) {
		log.Printf("food eaten at %v: score %d, length %d", e.Head, e.Score, e.Length)
	})
	session.Bus.Subscribe(game.EventGameOver, func(e game.Event) {
		log.Printf("game over (%s) at %v: score %d after %d ticks", e.Collision, e.Head, e.Score, session.State.Ticks())
	})

	if opts.PickSounds {
		if err := pickSounds(&opts); err != nil {
			log.Printf("sound dialog: %v", err)
		}
	}
	if !opts.Mute {
		sound.Setup(opts.EatSound, opts.OverSound, opts.Volume).Attach(session.Bus)
	}

	switch opts.UI {
	case config.UITerm:
		err = term.Run(session, config.TermFrame)
	default:
		err = ui.Run(session, opts, windowTitle)
	}
	if err != nil {
		return err
	}
	log.Printf("quit: final score %d", session.State.Score())
	return nil
}

// pickSounds asks for effect files that were not given on the command line.
func pickSounds(opts *config.Options) error {
	pick := func(title string) (string, error) {
		filename, err := zenity.SelectFile(
			zenity.Title(title),
			zenity.FileFilters{{
				Name:     "Audio",
				Patterns: []string{"*.wav", "*.mp3", "*.flac"},
			}},
		)
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return filename, err
	}

	var err error
	if opts.EatSound == "" {
		if opts.EatSound, err = pick("Sound for eating food"); err != nil {
			return err
		}
	}
	if opts.OverSound == "" {
		if opts.OverSound, err = pick("Sound for game over"); err != nil {
			return err
		}
	}
	return nil
}
