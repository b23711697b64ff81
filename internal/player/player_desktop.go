//go:build !android && !ios

package player

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

// ErrNoTrack is returned when nothing is loaded.
var ErrNoTrack = errors.New("no track loaded")

var (
	speakerOnce sync.Once
	speakerErr  error
	// Inputs are resampled to one fixed rate so the device is initialized once.
	speakerRate = beep.SampleRate(44100)
)

func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(speakerRate, speakerRate.N(time.Second/10))
	})
	return speakerErr
}

type decodeFunc func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)

var decoders = map[string]decodeFunc{
	".mp3":  func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return mp3.Decode(f) },
	".wav":  func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(f) },
	".flac": func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return flac.Decode(f) },
	".ogg":  func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return vorbis.Decode(f) },
}

// Supported reports whether path has a decoder.
func Supported(path string) bool {
	_, ok := decoders[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Player plays one audio file at a time through the shared speaker.
type Player struct {
	mu      sync.Mutex
	stream  beep.StreamSeekCloser
	rate    beep.SampleRate
	ctrl    *beep.Ctrl
	vol     *effects.Volume
	level   float64
	started bool
	current string
}

func New() *Player { return &Player{level: 1} }

func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	dec, ok := decoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, beep.Format{}, fmt.Errorf("unsupported format: %s", filepath.Ext(path))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}
	st, format, err := dec(f)
	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return st, format, nil
}

// volumeDB maps [0,1] onto -40dB..0dB.
func volumeDB(level float64) float64 {
	level = min(max(level, 0), 1)
	return -4 + 4*level
}

// chain builds the playback chain from the current stream position.
func (p *Player) chain() beep.Streamer {
	p.vol = &effects.Volume{
		Streamer: beep.Resample(4, p.rate, speakerRate, p.stream),
		Base:     10,
		Volume:   volumeDB(p.level),
	}
	return p.vol
}

// Load stops whatever is playing and opens path, paused.
func (p *Player) Load(path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closeLocked()
	st, format, err := decode(path)
	if err != nil {
		return err
	}
	if err := initSpeaker(); err != nil {
		_ = st.Close()
		return fmt.Errorf("init speaker: %w", err)
	}
	p.stream = st
	p.rate = format.SampleRate
	p.ctrl = &beep.Ctrl{Streamer: p.chain(), Paused: true}
	speaker.Clear()
	p.started = false
	p.current = path
	return nil
}

func (p *Player) closeLocked() {
	if p.stream == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	_ = p.stream.Close()
	p.stream, p.ctrl, p.vol = nil, nil, nil
	p.current = ""
}

func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stream == nil {
		return ErrNoTrack
	}
	if !p.started {
		p.started = true
		speaker.Play(p.ctrl)
	}
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	return nil
}

func (p *Player) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctrl == nil {
		return nil
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	return nil
}

// Stop pauses and rewinds to the start.
func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stream == nil {
		return nil
	}
	speaker.Lock()
	defer speaker.Unlock()
	p.ctrl.Paused = true
	if err := p.stream.Seek(0); err != nil {
		return err
	}
	p.ctrl.Streamer = p.chain()
	return nil
}

func (p *Player) Current() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.started && p.ctrl != nil && !p.ctrl.Paused
}

// SetVolume sets the level in [0,1].
func (p *Player) SetVolume(level float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = level
	if p.vol != nil {
		speaker.Lock()
		p.vol.Volume = volumeDB(level)
		speaker.Unlock()
	}
}
