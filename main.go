package main

import (
	"errors"
	"os"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"pickplay/internal/app"
	"pickplay/internal/config"
	"pickplay/internal/engine"
	"pickplay/internal/logging"
	"pickplay/internal/player"
	"pickplay/internal/presence"
)

const appID = "io.github.pickplay"

// videoBackend adapts the engine to app.Backend; loading a file also starts it.
type videoBackend struct{ *engine.Player }

func (v videoBackend) Load(path string) error { return v.LoadFile(path) }

type flags struct {
	configPath string
	dir        string
	logLevel   string
	hidden     bool
	all        bool
	theme      string
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "pickplay [dir]",
		Short:         "Browse a directory and play media files",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				f.dir = args[0]
			}
			return run(cmd, f)
		},
	}
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "settings file (default: user config dir)")
	cmd.Flags().StringVarP(&f.dir, "dir", "d", "", "directory to open")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	cmd.Flags().BoolVar(&f.hidden, "hidden", false, "show hidden files")
	cmd.Flags().BoolVar(&f.all, "all", false, "list all files, not only media")
	cmd.Flags().StringVar(&f.theme, "theme", "", "light or dark")
	return cmd
}

// applyFlags copies the flags set on the command line over s.
func applyFlags(cmd *cobra.Command, s *config.Settings) {
	fl := cmd.Flags()
	if fl.Changed("log-level") {
		s.LogLevel, _ = fl.GetString("log-level")
	}
	if fl.Changed("hidden") {
		s.ShowHidden, _ = fl.GetBool("hidden")
	}
	if fl.Changed("all") {
		s.AllFiles, _ = fl.GetBool("all")
	}
	if fl.Changed("theme") {
		s.Theme, _ = fl.GetString("theme")
	}
}

func run(cmd *cobra.Command, f flags) error {
	path := f.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	settings, err := config.Load(path)
	if err != nil {
		return err
	}
	applyFlags(cmd, settings)

	logger := logging.New(cmd.ErrOrStderr(), settings.LogLevel)
	logger.Debug("settings loaded", "path", path)

	video := engine.New()
	video.SetConfigDir(settings.EngineConfigDir)
	if err := video.Init(); errors.Is(err, engine.ErrQueuedLoad) {
		logger.Warn("video engine started without its queued file", "err", err)
	} else if err != nil {
		logger.Warn("video engine unavailable", "err", err)
	}
	defer video.Release()

	pres := presence.New(settings.DiscordAppID)
	if err := pres.Connect(); err != nil {
		logger.Debug("presence not connected", "err", err)
	}
	defer pres.Disconnect()

	fa := fyneapp.NewWithID(appID)
	ui := app.New(fa, app.Options{
		Settings:     settings,
		SettingsPath: path,
		Logger:       logger,
		Audio:        player.New(),
		Supports:     player.Supported,
		Video:        videoBackend{video},
		Presence:     pres,
	})
	ui.Run(app.StartDir(f.dir, settings, fa.Preferences()))
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.New(os.Stderr, "error").Error("pickplay failed", "err", err)
		os.Exit(1)
	}
}
