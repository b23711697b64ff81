// Package picker adapts a directory listing into list rows with a leading ".."
// row for going up to the parent folder.
package picker

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"pickplay/internal/prefs"
)

// Kind classifies a row so that views are only recycled between rows of the same kind.
type Kind int

const (
	// KindHeader is reserved for the ".." row.
	KindHeader Kind = iota
	// KindItem is the first kind available to Logic implementations.
	KindItem
)

// Logic creates and binds the views for a concrete entry type.
type Logic[T any] interface {
	// CreateView returns a *HeaderView for KindHeader and an *ItemView otherwise.
	CreateView(kind Kind) fyne.CanvasObject
	BindHeader(view *HeaderView)
	BindItem(view *ItemView, index int, item T)
	ItemKind(index int, item T) Kind
	FullPath(item T) string
}

// Config holds what the adapter needs from its host: the two row colors and
// the preferences holding the selected-path marker.
type Config struct {
	Highlight color.Color
	Default   color.Color
	Prefs     prefs.Reader
}

// ConfigFromApp resolves the colors from the app's current theme and uses the
// app preferences.
func ConfigFromApp(app fyne.App) Config {
	s := app.Settings()
	th, v := s.Theme(), s.ThemeVariant()
	return Config{
		Highlight: th.Color(theme.ColorNamePrimary, v),
		Default:   th.Color(theme.ColorNameForeground, v),
		Prefs:     app.Preferences(),
	}
}

// Adapter maps row 0 to the header and row i to list[i-1].
type Adapter[T any] struct {
	logic     Logic[T]
	list      []T
	prefs     prefs.Reader
	highlight color.Color
	normal    color.Color

	// OnChanged is called after every SetList.
	OnChanged func()
}

func NewAdapter[T any](logic Logic[T], cfg Config) *Adapter[T] {
	return &Adapter[T]{
		logic:     logic,
		prefs:     cfg.Prefs,
		highlight: cfg.Highlight,
		normal:    cfg.Default,
	}
}

// SetList replaces the backing list. A nil list clears the adapter, header included.
func (a *Adapter[T]) SetList(list []T) {
	a.list = list
	if a.OnChanged != nil {
		a.OnChanged()
	}
}

// Len returns 0 without a list, otherwise the header plus one row per entry.
func (a *Adapter[T]) Len() int {
	if a.list == nil {
		return 0
	}
	return 1 + len(a.list)
}

func (a *Adapter[T]) Kind(row int) Kind {
	if row == 0 {
		return KindHeader
	}
	pos := row - 1
	return a.logic.ItemKind(pos, a.list[pos])
}

func (a *Adapter[T]) CreateView(kind Kind) fyne.CanvasObject {
	return a.logic.CreateView(kind)
}

// Bind fills view for row. Rows beyond Len panic; hosts must ask Len again after SetList.
func (a *Adapter[T]) Bind(view fyne.CanvasObject, row int) {
	if row == 0 {
		a.logic.BindHeader(view.(*HeaderView))
		return
	}
	pos := row - 1
	item := a.list[pos]
	v := view.(*ItemView)
	marker, _ := prefs.SelectedPath(a.prefs)
	if Highlighted(marker, a.logic.FullPath(item)) {
		v.SetTextColor(a.highlight)
	} else {
		v.SetTextColor(a.normal)
	}
	a.logic.BindItem(v, pos, item)
}

// Item returns the entry shown at row, or false for the header.
func (a *Adapter[T]) Item(row int) (T, bool) {
	if row == 0 {
		var zero T
		return zero, false
	}
	return a.list[row-1], true
}

// Highlighted reports whether a row for path is highlighted under marker. This
// is a containment test, so a directory stays highlighted while a file below it
// is selected.
func Highlighted(marker, path string) bool {
	return marker != "" && strings.Contains(marker, path)
}
