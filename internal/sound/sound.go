package sound

import (
	"log"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/snake/internal/config"
	"github.com/iburimskiy/snake/internal/game"
)

const (
	SampleRate beep.SampleRate = 44100

	MinVolume = config.MinVolume
)

type Kind int

const (
	Eat Kind = iota
	GameOver
)

func (k Kind) String() string {
	if k == GameOver {
		return "game over"
	}
	return "eat"
}

// Player holds decoded effects and plays them through the speaker.
// Until Init succeeds, Play is a no-op.
type Player struct {
	rate   beep.SampleRate
	sounds map[Kind]*beep.Buffer
	volume float64
	ready  bool

	// out receives every effect that is played.
	out func(beep.Streamer)
}

func NewPlayer(rate beep.SampleRate) *Player {
	p := &Player{
		rate:   rate,
		sounds: make(map[Kind]*beep.Buffer),
		out:    func(s beep.Streamer) { speaker.Play(s) },
	}
	p.sounds[Eat] = render(eatTone, rate)
	p.sounds[GameOver] = render(gameOverTone, rate)
	return p
}

func render(t Tone, rate beep.SampleRate) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(t.Streamer(rate))
	return buf
}

// Override replaces an effect with the contents of a sound file.
func (p *Player) Override(k Kind, path string) error {
	buf, err := Load(path, p.rate)
	if err != nil {
		return err
	}
	p.sounds[k] = buf
	return nil
}

// SetVolume sets the gain in beep's base-2 scale: 0 is unchanged, -1 is half.
// At MinVolume or below the effects are silent.
func (p *Player) SetVolume(v float64) {
	p.volume = v
}

func (p *Player) Init() error {
	if p.ready {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(time.Second/20)); err != nil {
		return err
	}
	p.ready = true
	return nil
}

func (p *Player) Ready() bool { return p.ready }

// Len returns the length of an effect in samples.
func (p *Player) Len(k Kind) int {
	if buf, ok := p.sounds[k]; ok {
		return buf.Len()
	}
	return 0
}

func (p *Player) Play(k Kind) {
	if !p.ready {
		return
	}
	if s := p.effect(k); s != nil {
		p.out(s)
	}
}

// effect returns a fresh streamer over effect k at the player's volume.
func (p *Player) effect(k Kind) beep.Streamer {
	buf, ok := p.sounds[k]
	if !ok || buf.Len() == 0 {
		return nil
	}
	return &effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   p.volume,
		Silent:   p.volume <= MinVolume,
	}
}

// Attach plays effects for game events.
func (p *Player) Attach(bus *game.EventBus) {
	bus.Subscribe(game.EventFoodEaten, func(game.Event) { p.Play(Eat) })
	bus.Subscribe(game.EventGameOver, func(game.Event) { p.Play(GameOver) })
}

// Setup builds a player at the given volume, applies override files and
// opens the speaker. Failures are logged; the returned player is always usable.
func Setup(eatFile, overFile string, volume float64) *Player {
	p := NewPlayer(SampleRate)
	p.SetVolume(volume)
	for k, path := range map[Kind]string{Eat: eatFile, GameOver: overFile} {
		if path == "" {
			continue
		}
		if err := p.Override(k, path); err != nil {
			log.Printf("sound: keeping built-in %s effect: %v", k, err)
		} else {
			log.Printf("sound: %s effect from %s", k, path)
		}
	}
	if err := p.Init(); err != nil {
		log.Printf("sound: speaker init failed (continuing without sound): %v", err)
	}
	return p
}
