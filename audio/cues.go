package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/pthm-cable/snake/components"
)

// Options configures cue playback.
type Options struct {
	SampleRate int
	Volume     float64 // Linear master volume in [0, 1]
	Steps      bool    // Click on every move
}

// Player accepts streamers for playback.
type Player interface {
	Play(s beep.Streamer)
}

// Cues plays tones for gameplay events. It satisfies the game's presenter
// contract.
type Cues struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	opts   Options
	player Player
}

// NewCues creates cues that play through player.
func NewCues(player Player, opts Options) *Cues {
	if opts.SampleRate <= 0 {
		opts.SampleRate = 44100
	}
	return &Cues{
		rate:   beep.SampleRate(opts.SampleRate),
		opts:   opts,
		player: player,
	}
}

// Moved plays the step click when enabled.
func (c *Cues) Moved(components.Cell) {
	if c.opts.Steps {
		c.play(StepSound(c.rate, c.opts.Volume))
	}
}

// Scored plays the score chirp.
func (c *Cues) Scored(int) {
	c.play(ScoreSound(c.rate, c.opts.Volume))
}

// PlayerDied plays the death phrase.
func (c *Cues) PlayerDied() {
	c.play(DeathSound(c.rate, c.opts.Volume))
}

func (c *Cues) play(s beep.Streamer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.player != nil {
		c.player.Play(s)
	}
}

// Speaker plays streamers on the system audio device through a mixer.
type Speaker struct {
	mu    sync.Mutex
	mixer *beep.Mixer
}

// OpenSpeaker initialises the audio device.
func OpenSpeaker(sampleRate int) (*Speaker, error) {
	rate := beep.SampleRate(sampleRate)
	if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	s := &Speaker{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

// Play mixes in a streamer.
func (s *Speaker) Play(st beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
