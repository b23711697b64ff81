//go:build android || ios

package player

import "errors"

var ErrNoTrack = errors.New("no track loaded")

// Player is a placeholder until mobile audio output exists.
type Player struct{ current string }

func New() *Player { return &Player{} }

func Supported(string) bool { return false }

func (p *Player) Load(path string) error {
	p.current = path
	return nil
}

func (p *Player) Play() error       { return nil }
func (p *Player) Pause() error      { return nil }
func (p *Player) Stop() error       { return nil }
func (p *Player) Current() string   { return p.current }
func (p *Player) IsPlaying() bool   { return false }
func (p *Player) SetVolume(float64) {}
