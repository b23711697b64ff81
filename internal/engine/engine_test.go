package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	calls     []string
	configDir string
	startErr  error
	loadErr   error
	running   bool
	volumes   []int
}

func (f *fakeBackend) start(dir string) error {
	f.calls = append(f.calls, "start")
	f.configDir = dir
	return f.startErr
}

func (f *fakeBackend) load(path string) error {
	f.calls = append(f.calls, "load "+path)
	if f.loadErr != nil {
		return f.loadErr
	}
	f.running = true
	return nil
}

func (f *fakeBackend) play() error {
	f.calls = append(f.calls, "play")
	f.running = true
	return nil
}

func (f *fakeBackend) pause() error {
	f.calls = append(f.calls, "pause")
	f.running = false
	return nil
}

func (f *fakeBackend) stop() error {
	f.calls = append(f.calls, "stop")
	f.running = false
	return nil
}

func (f *fakeBackend) playing() bool { return f.running }

func (f *fakeBackend) setVolume(percent int) error {
	f.volumes = append(f.volumes, percent)
	return nil
}

func (f *fakeBackend) release() { f.calls = append(f.calls, "release") }

func TestPlayer_DelayedLoad(t *testing.T) {
	be := &fakeBackend{}
	p := newPlayer(be)

	require.NoError(t, p.LoadFile("/videos/first.mkv"))
	require.NoError(t, p.LoadFile("/videos/second.mkv"))
	assert.Empty(t, be.calls, "nothing reaches the backend before Init")
	assert.Equal(t, "/videos/second.mkv", p.Current())

	p.SetConfigDir("/home/u/.config/pickplay")
	require.NoError(t, p.Init())
	assert.Equal(t, []string{"start", "load /videos/second.mkv"}, be.calls)
	assert.Equal(t, "/home/u/.config/pickplay", be.configDir)
	assert.Equal(t, "/videos/second.mkv", p.Current())
	assert.True(t, p.IsPlaying())
}

func TestPlayer_NoOpBeforeInit(t *testing.T) {
	be := &fakeBackend{}
	p := newPlayer(be)

	assert.NoError(t, p.Play())
	assert.NoError(t, p.Pause())
	assert.NoError(t, p.Stop())
	assert.False(t, p.IsPlaying())
	p.Release()
	assert.Empty(t, be.calls)
}

func TestPlayer_InitOnce(t *testing.T) {
	be := &fakeBackend{}
	p := newPlayer(be)

	require.NoError(t, p.Init())
	require.NoError(t, p.Init())
	assert.Equal(t, []string{"start"}, be.calls)
}

func TestPlayer_InitFailure(t *testing.T) {
	be := &fakeBackend{startErr: errors.New("no libvlc")}
	p := newPlayer(be)
	require.NoError(t, p.LoadFile("/a.mp4"))

	require.ErrorIs(t, p.Init(), be.startErr)
	assert.Equal(t, "/a.mp4", p.Current(), "queued file survives a failed Init")

	be.startErr = nil
	require.NoError(t, p.Init())
	assert.Equal(t, []string{"start", "start", "load /a.mp4"}, be.calls)
}

func TestPlayer_Controls(t *testing.T) {
	be := &fakeBackend{}
	p := newPlayer(be)
	require.NoError(t, p.Init())

	require.NoError(t, p.LoadFile("/a.mp4"))
	assert.True(t, p.IsPlaying())
	require.NoError(t, p.Pause())
	assert.False(t, p.IsPlaying())
	require.NoError(t, p.Play())
	assert.True(t, p.IsPlaying())
	require.NoError(t, p.Stop())
	assert.False(t, p.IsPlaying())

	p.Release()
	assert.Equal(t, "", p.Current())
	assert.Equal(t, []string{"start", "load /a.mp4", "pause", "play", "stop", "release"}, be.calls)
}

func TestPlayer_LoadError(t *testing.T) {
	be := &fakeBackend{loadErr: errors.New("bad file")}
	p := newPlayer(be)
	require.NoError(t, p.Init())

	require.Error(t, p.LoadFile("/broken.mp4"))
	assert.Equal(t, "", p.Current())
}

func TestPlayer_InitQueuedLoadError(t *testing.T) {
	be := &fakeBackend{loadErr: errors.New("bad file")}
	p := newPlayer(be)
	require.NoError(t, p.LoadFile("/broken.mp4"))

	err := p.Init()
	require.ErrorIs(t, err, ErrQueuedLoad)
	require.ErrorIs(t, err, be.loadErr)
	assert.Empty(t, p.Current())

	be.loadErr = nil
	require.NoError(t, p.Init(), "already started")
	require.NoError(t, p.LoadFile("/good.mp4"))
	assert.Equal(t, "/good.mp4", p.Current())
	assert.Equal(t, []string{"start", "load /broken.mp4", "load /good.mp4"}, be.calls)
}

func TestNew(t *testing.T) {
	p := New()
	require.NotNil(t, p)
	require.NoError(t, p.LoadFile("/a.mp4"))
	assert.Equal(t, "/a.mp4", p.Current())
}

func TestPlayer_SetVolume(t *testing.T) {
	be := &fakeBackend{}
	p := newPlayer(be)

	p.SetVolume(0.4)
	assert.Empty(t, be.volumes)

	require.NoError(t, p.Init())
	assert.Equal(t, []int{40}, be.volumes, "level set before Init is applied on start")

	p.SetVolume(2)
	p.SetVolume(-1)
	assert.Equal(t, []int{40, 100, 0}, be.volumes)
}
