package files

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"pickplay/internal/picker"
)

const (
	KindDir  = picker.KindItem
	KindFile = picker.KindItem + 1
)

// Logic binds Entry values into picker rows.
type Logic struct{}

var _ picker.Logic[Entry] = Logic{}

func (Logic) CreateView(kind picker.Kind) fyne.CanvasObject {
	if kind == picker.KindHeader {
		return picker.NewHeaderView()
	}
	return picker.NewItemView()
}

func (Logic) BindHeader(v *picker.HeaderView) { v.SetText("..") }

func (Logic) BindItem(v *picker.ItemView, _ int, e Entry) {
	v.SetIcon(iconFor(e))
	v.SetText(e.Name)
}

func (Logic) ItemKind(_ int, e Entry) picker.Kind {
	if e.IsDir {
		return KindDir
	}
	return KindFile
}

func (Logic) FullPath(e Entry) string { return e.Path }

func iconFor(e Entry) fyne.Resource {
	switch {
	case e.IsDir:
		return theme.FolderIcon()
	case IsVideo(e.Name):
		return theme.FileVideoIcon()
	case IsAudio(e.Name):
		return theme.FileAudioIcon()
	default:
		return theme.FileIcon()
	}
}
