// Package app builds the picker window and connects it to playback.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"charm.land/log/v2"
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"pickplay/internal/config"
	"pickplay/internal/files"
	"pickplay/internal/logging"
	"pickplay/internal/picker"
	"pickplay/internal/prefs"
)

// Backend plays one kind of media.
type Backend interface {
	Load(path string) error
	Play() error
	Pause() error
	Stop() error
}

// Volumer is implemented by backends with a volume control.
type Volumer interface {
	SetVolume(level float64)
}

// Presence is told what is playing.
type Presence interface {
	Update(path string, paused bool) error
	Clear() error
}

type Options struct {
	Settings     *config.Settings
	SettingsPath string
	Logger       *log.Logger
	// Audio plays files it Supports; everything else goes to Video.
	Audio    Backend
	Supports func(path string) bool
	Video    Backend
	Presence Presence
}

type App struct {
	fyne     fyne.App
	opts     Options
	log      *log.Logger
	adapter  *picker.Adapter[files.Entry]
	list     *widget.List
	browser  *files.Browser
	dirLabel *widget.Label
	nowLabel *widget.Label
	toggle   *widget.Button
	hidden   *widget.Check
	volume   *widget.Slider
	win      fyne.Window

	active  Backend
	current string
	paused  bool
}

func New(fa fyne.App, opts Options) *App {
	if opts.Settings == nil {
		opts.Settings = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	applyTheme(fa, opts.Settings.Theme)

	a := &App{fyne: fa, opts: opts, log: opts.Logger}
	a.adapter = picker.NewAdapter[files.Entry](files.Logic{}, picker.ConfigFromApp(fa))
	a.list = picker.NewList(a.adapter)
	a.browser = files.NewBrowser(a.adapter, a.listOptions(), opts.Logger)

	a.dirLabel = widget.NewLabel("")
	a.dirLabel.Truncation = fyne.TextTruncateEllipsis
	a.nowLabel = widget.NewLabel("")
	a.nowLabel.Truncation = fyne.TextTruncateEllipsis
	a.browser.OnOpen = func(dir string) {
		a.dirLabel.SetText(dir)
		prefs.SetLastDir(fa.Preferences(), dir)
	}

	a.list.OnSelected = func(id widget.ListItemID) {
		defer a.list.UnselectAll()
		if err := a.Activate(id); err != nil {
			a.showError(err)
		}
	}
	a.toggle = widget.NewButtonWithIcon("", theme.MediaPauseIcon(), func() {
		if err := a.TogglePause(); err != nil {
			a.showError(err)
		}
	})
	a.hidden = widget.NewCheck("Hidden files", func(on bool) {
		if err := a.SetShowHidden(on); err != nil {
			a.showError(err)
		}
	})
	a.hidden.Checked = opts.Settings.ShowHidden
	a.volume = widget.NewSlider(0, 1)
	a.volume.Step = 0.01
	a.volume.Value = 1
	a.volume.OnChanged = a.SetVolume
	return a
}

func applyTheme(fa fyne.App, name string) {
	if strings.ToLower(name) == config.ThemeDark {
		fa.Settings().SetTheme(theme.DarkTheme())
	} else {
		fa.Settings().SetTheme(theme.LightTheme())
	}
}

func (a *App) listOptions() files.ListOptions {
	return files.ListOptions{ShowHidden: a.opts.Settings.ShowHidden, AllFiles: a.opts.Settings.AllFiles}
}

// Open shows dir in the picker.
func (a *App) Open(dir string) error { return a.browser.Open(dir) }

// Activate handles a tap on row: the header goes up, a directory is entered
// and a file is played.
func (a *App) Activate(row int) error {
	e, ok := a.adapter.Item(row)
	if !ok {
		return a.browser.Up()
	}
	if e.IsDir {
		return a.browser.Enter(e)
	}
	return a.Play(e.Path)
}

func (a *App) backendFor(path string) Backend {
	if a.opts.Audio != nil && a.opts.Supports != nil && a.opts.Supports(path) {
		return a.opts.Audio
	}
	return a.opts.Video
}

// Play starts path and marks it selected so the picker highlights it and the
// directories above it.
func (a *App) Play(path string) error {
	be := a.backendFor(path)
	if be == nil {
		return fmt.Errorf("no player for %s", filepath.Base(path))
	}
	if a.active != nil && a.active != be {
		if err := a.active.Stop(); err != nil {
			a.log.Warn("stop failed", "err", err)
		}
	}
	// From here the previous track is gone, so a failure leaves nothing playing.
	if err := be.Load(path); err != nil {
		a.reset()
		return fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	if err := be.Play(); err != nil {
		if serr := be.Stop(); serr != nil {
			a.log.Warn("stop failed", "err", serr)
		}
		a.reset()
		return fmt.Errorf("play %s: %w", filepath.Base(path), err)
	}
	a.active, a.current, a.paused = be, path, false
	a.log.Info("playing", "path", path)

	prefs.SetSelectedPath(a.fyne.Preferences(), path)
	a.list.Refresh()
	a.nowLabel.SetText(filepath.Base(path))
	a.toggle.SetIcon(theme.MediaPauseIcon())
	a.updatePresence()
	return nil
}

func (a *App) TogglePause() error {
	if a.active == nil {
		return nil
	}
	var err error
	if a.paused {
		err = a.active.Play()
	} else {
		err = a.active.Pause()
	}
	if err != nil {
		return err
	}
	a.paused = !a.paused
	if a.paused {
		a.toggle.SetIcon(theme.MediaPlayIcon())
	} else {
		a.toggle.SetIcon(theme.MediaPauseIcon())
	}
	a.updatePresence()
	return nil
}

// Stop ends playback and drops the selection marker.
func (a *App) Stop() error {
	if a.active == nil {
		return nil
	}
	err := a.active.Stop()
	a.reset()
	return err
}

// reset forgets the current track and drops the selection marker.
func (a *App) reset() {
	had := a.current != ""
	a.active, a.current, a.paused = nil, "", false
	prefs.ClearSelectedPath(a.fyne.Preferences())
	a.list.Refresh()
	a.nowLabel.SetText("")
	a.toggle.SetIcon(theme.MediaPauseIcon())
	if had && a.opts.Presence != nil {
		if err := a.opts.Presence.Clear(); err != nil {
			a.log.Warn("presence clear failed", "err", err)
		}
	}
}

// SetVolume applies level in [0,1] to every backend that supports it.
func (a *App) SetVolume(level float64) {
	for _, be := range []Backend{a.opts.Audio, a.opts.Video} {
		if v, ok := be.(Volumer); ok {
			v.SetVolume(level)
		}
	}
}

// SetShowHidden changes the listing filter and persists it.
func (a *App) SetShowHidden(on bool) error {
	a.opts.Settings.ShowHidden = on
	if a.opts.SettingsPath != "" {
		if err := config.Save(a.opts.SettingsPath, a.opts.Settings); err != nil {
			a.log.Warn("saving settings failed", "path", a.opts.SettingsPath, "err", err)
		}
	}
	return a.browser.SetOptions(a.listOptions())
}

func (a *App) updatePresence() {
	if a.opts.Presence == nil || a.current == "" {
		return
	}
	if err := a.opts.Presence.Update(a.current, a.paused); err != nil {
		a.log.Warn("presence update failed", "err", err)
	}
}

func (a *App) showError(err error) {
	a.log.Error("action failed", "err", err)
	if a.win != nil {
		dialog.ShowError(err, a.win)
	}
}

// Content lays out the window body.
func (a *App) Content() fyne.CanvasObject {
	up := widget.NewButtonWithIcon("", theme.MoveUpIcon(), func() {
		if err := a.browser.Up(); err != nil {
			a.showError(err)
		}
	})
	refresh := widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), func() {
		if err := a.browser.Refresh(); err != nil {
			a.showError(err)
		}
	})
	stop := widget.NewButtonWithIcon("", theme.MediaStopIcon(), func() {
		if err := a.Stop(); err != nil {
			a.showError(err)
		}
	})
	top := container.NewBorder(nil, nil, up, container.NewHBox(a.hidden, refresh), a.dirLabel)
	vol := container.NewGridWrap(fyne.NewSize(140, a.volume.MinSize().Height), a.volume)
	controls := container.NewBorder(nil, nil, container.NewHBox(a.toggle, stop), vol, a.nowLabel)
	return container.NewBorder(top, controls, nil, nil, a.list)
}

// Run shows the window at startDir and blocks until it is closed.
func (a *App) Run(startDir string) {
	a.win = a.fyne.NewWindow("pickplay")
	a.win.Resize(fyne.NewSize(720, 560))
	a.win.SetContent(a.Content())
	if err := a.Open(startDir); err != nil {
		a.showError(err)
	}
	a.win.ShowAndRun()
}

// StartDir picks the first usable directory from the flag, the settings,
// the last visited directory and the home directory.
func StartDir(flagDir string, s *config.Settings, p prefs.Reader) string {
	candidates := []string{flagDir}
	if s != nil {
		candidates = append(candidates, s.StartDir)
	}
	candidates = append(candidates, prefs.LastDir(p))
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, home)
	}
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if fi, err := os.Stat(c); err == nil && fi.IsDir() {
			return c
		}
	}
	return "."
}
