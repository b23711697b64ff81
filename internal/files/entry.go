// Package files lists directories for the picker.
package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotDir is returned when a file entry is entered like a directory.
var ErrNotDir = errors.New("not a directory")

// Entry is one file or directory in a listing.
type Entry struct {
	Path  string
	Name  string
	IsDir bool
}

var audioExts = map[string]bool{
	".mp3": true, ".wav": true, ".flac": true, ".ogg": true, ".m4a": true,
}

var videoExts = map[string]bool{
	".mp4": true, ".mkv": true, ".webm": true, ".avi": true, ".mov": true,
}

func IsAudio(path string) bool { return audioExts[strings.ToLower(filepath.Ext(path))] }

func IsVideo(path string) bool { return videoExts[strings.ToLower(filepath.Ext(path))] }

func IsMedia(path string) bool { return IsAudio(path) || IsVideo(path) }

// ListOptions controls what ReadDir returns.
type ListOptions struct {
	ShowHidden bool
	// AllFiles disables the media filter for files.
	AllFiles bool
}

// ReadDir lists dir with directories first, each group sorted by name
// ignoring case. Entries that cannot be stat'ed are skipped.
func ReadDir(dir string, opts ListOptions) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	out := make([]Entry, 0, len(des))
	for _, de := range des {
		name := de.Name()
		if !opts.ShowHidden && strings.HasPrefix(name, ".") {
			continue
		}
		p := filepath.Join(dir, name)
		isDir := de.IsDir()
		if de.Type()&os.ModeSymlink != 0 {
			fi, err := os.Stat(p)
			if err != nil {
				continue
			}
			isDir = fi.IsDir()
		}
		if !isDir && !opts.AllFiles && !IsMedia(name) {
			continue
		}
		out = append(out, Entry{Path: p, Name: name, IsDir: isDir})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsDir != out[j].IsDir {
			return out[i].IsDir
		}
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}
