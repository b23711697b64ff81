package files

import (
	"fmt"
	"path/filepath"

	"charm.land/log/v2"

	"pickplay/internal/picker"
)

// Browser tracks the directory shown by an adapter and swaps its list on
// navigation.
type Browser struct {
	adapter *picker.Adapter[Entry]
	opts    ListOptions
	logger  *log.Logger
	dir     string

	// OnOpen is called with the new directory after each successful listing.
	OnOpen func(dir string)
}

func NewBrowser(a *picker.Adapter[Entry], opts ListOptions, logger *log.Logger) *Browser {
	return &Browser{adapter: a, opts: opts, logger: logger}
}

func (b *Browser) Dir() string { return b.dir }

// Open lists dir and hands the listing to the adapter. On error the previous
// listing stays in place.
func (b *Browser) Open(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", dir, err)
	}
	entries, err := ReadDir(abs, b.opts)
	if err != nil {
		b.logger.Warn("listing failed", "dir", abs, "err", err)
		return err
	}
	b.dir = abs
	b.logger.Debug("listed", "dir", abs, "entries", len(entries))
	b.adapter.SetList(entries)
	if b.OnOpen != nil {
		b.OnOpen(abs)
	}
	return nil
}

// Up opens the parent directory. At the filesystem root it does nothing.
func (b *Browser) Up() error {
	if b.dir == "" {
		return nil
	}
	parent := filepath.Dir(b.dir)
	if parent == b.dir {
		return nil
	}
	return b.Open(parent)
}

func (b *Browser) Enter(e Entry) error {
	if !e.IsDir {
		return fmt.Errorf("enter %s: %w", e.Path, ErrNotDir)
	}
	return b.Open(e.Path)
}

// Refresh lists the current directory again.
func (b *Browser) Refresh() error {
	if b.dir == "" {
		return nil
	}
	return b.Open(b.dir)
}

// SetOptions changes the listing options and refreshes.
func (b *Browser) SetOptions(opts ListOptions) error {
	b.opts = opts
	return b.Refresh()
}
