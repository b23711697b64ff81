// Package engine drives the native media player. The libVLC backend is built
// with -tags vlc; without it a stub keeps the same bookkeeping but plays nothing.
package engine

import (
	"errors"
	"fmt"
	"sync"
)

// ErrQueuedLoad marks an Init that started the backend but could not load the
// file queued before it. The player is usable afterwards.
var ErrQueuedLoad = errors.New("queued load failed")

// backend is what a native player implements.
type backend interface {
	start(configDir string) error
	load(path string) error
	play() error
	pause() error
	stop() error
	playing() bool
	setVolume(percent int) error
	release()
}

// Player serializes calls into a backend. A file loaded before Init is
// remembered and loaded once the backend is up.
type Player struct {
	mu        sync.Mutex
	be        backend
	ready     bool
	configDir string
	pending   string
	current   string
	volume    int
}

func newPlayer(be backend) *Player { return &Player{be: be, volume: 100} }

func (p *Player) SetConfigDir(dir string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.configDir = dir
}

// Init starts the backend. Calling it again is a no-op. A failure to load
// the queued file returns ErrQueuedLoad with the backend left running.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		return nil
	}
	if err := p.be.start(p.configDir); err != nil {
		return err
	}
	p.ready = true
	// libVLC rejects volume changes until an audio output exists.
	_ = p.be.setVolume(p.volume)
	if p.pending != "" {
		path := p.pending
		p.pending = ""
		if err := p.be.load(path); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrQueuedLoad, path, err)
		}
		p.current = path
	}
	return nil
}

// LoadFile loads and starts path, or queues it until Init.
func (p *Player) LoadFile(path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		p.pending = path
		return nil
	}
	if err := p.be.load(path); err != nil {
		return err
	}
	p.current = path
	return nil
}

// Play, Pause and Stop do nothing before Init.
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return nil
	}
	return p.be.play()
}

func (p *Player) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return nil
	}
	return p.be.pause()
}

func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return nil
	}
	return p.be.stop()
}

func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready && p.be.playing()
}

// SetVolume sets the level in [0,1]. Before Init it is kept for later.
func (p *Player) SetVolume(level float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = int(min(max(level, 0), 1) * 100)
	if p.ready {
		_ = p.be.setVolume(p.volume)
	}
}

// Current returns the loaded path, or the queued one before Init.
func (p *Player) Current() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return p.pending
	}
	return p.current
}

func (p *Player) Release() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	p.be.release()
	p.ready = false
	p.current = ""
}
