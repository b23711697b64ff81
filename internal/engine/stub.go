//go:build !vlc || android || ios

package engine

// New returns a player that tracks state without playing anything. Build with
// -tags vlc for real playback.
func New() *Player { return newPlayer(&stubBackend{}) }

type stubBackend struct {
	loaded  string
	running bool
	volume  int
}

func (b *stubBackend) start(string) error { return nil }

func (b *stubBackend) load(path string) error {
	b.loaded = path
	b.running = true
	return nil
}

func (b *stubBackend) play() error {
	b.running = b.loaded != ""
	return nil
}

func (b *stubBackend) pause() error {
	b.running = false
	return nil
}

func (b *stubBackend) stop() error {
	b.running = false
	return nil
}

func (b *stubBackend) playing() bool { return b.running }

func (b *stubBackend) setVolume(percent int) error {
	b.volume = percent
	return nil
}

func (b *stubBackend) release() { *b = stubBackend{} }
