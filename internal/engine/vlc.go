//go:build vlc && !android && !ios

package engine

import (
	"fmt"
	"path/filepath"

	vlc "github.com/adrg/libvlc-go/v3"
)

// New returns a player backed by libVLC.
func New() *Player { return newPlayer(&vlcBackend{}) }

type vlcBackend struct {
	p *vlc.Player
}

func (b *vlcBackend) start(configDir string) error {
	args := []string{"--quiet"}
	if configDir != "" {
		args = append(args, "--config="+filepath.Join(configDir, "vlcrc"))
	}
	if err := vlc.Init(args...); err != nil {
		return fmt.Errorf("init libvlc: %w", err)
	}
	p, err := vlc.NewPlayer()
	if err != nil {
		_ = vlc.Release()
		return fmt.Errorf("create vlc player: %w", err)
	}
	b.p = p
	return nil
}

func (b *vlcBackend) load(path string) error {
	m, err := vlc.NewMediaFromPath(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if err := b.p.SetMedia(m); err != nil {
		m.Release()
		return fmt.Errorf("set media %s: %w", path, err)
	}
	m.Release()
	return b.p.Play()
}

func (b *vlcBackend) play() error  { return b.p.Play() }
func (b *vlcBackend) pause() error { return b.p.SetPause(true) }
func (b *vlcBackend) stop() error  { return b.p.Stop() }

func (b *vlcBackend) playing() bool { return b.p.IsPlaying() }

func (b *vlcBackend) setVolume(percent int) error { return b.p.SetVolume(percent) }

func (b *vlcBackend) release() {
	_ = b.p.Stop()
	_ = b.p.Release()
	_ = vlc.Release()
	b.p = nil
}
