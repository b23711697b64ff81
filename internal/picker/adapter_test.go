package picker

import (
	"image/color"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pickplay/internal/prefs"
)

var (
	red   = color.NRGBA{R: 0xff, A: 0xff}
	black = color.NRGBA{A: 0xff}
)

const kindVideo = KindItem + 1

type mapPrefs map[string]string

func (m mapPrefs) String(key string) string { return m[key] }

type pathLogic struct {
	headerBinds int
	bound       []int
	kinds       []int
}

func (l *pathLogic) CreateView(kind Kind) fyne.CanvasObject {
	if kind == KindHeader {
		return NewHeaderView()
	}
	return NewItemView()
}

func (l *pathLogic) BindHeader(v *HeaderView) {
	l.headerBinds++
	v.SetText("..")
}

func (l *pathLogic) BindItem(v *ItemView, index int, p string) {
	l.bound = append(l.bound, index)
	v.SetText(p)
}

func (l *pathLogic) ItemKind(index int, p string) Kind {
	l.kinds = append(l.kinds, index)
	if strings.HasSuffix(p, ".mp4") {
		return kindVideo
	}
	return KindItem
}

func (l *pathLogic) FullPath(p string) string { return p }

func newTestAdapter(t *testing.T, p mapPrefs) (*Adapter[string], *pathLogic) {
	t.Helper()
	test.NewTempApp(t)
	logic := &pathLogic{}
	return NewAdapter[string](logic, Config{Highlight: red, Default: black, Prefs: p}), logic
}

func TestAdapter_Len(t *testing.T) {
	a, _ := newTestAdapter(t, mapPrefs{})

	assert.Equal(t, 0, a.Len(), "no list means no rows, not even the header")

	a.SetList([]string{})
	assert.Equal(t, 1, a.Len())

	a.SetList([]string{"/sdcard/a", "/sdcard/b"})
	assert.Equal(t, 3, a.Len())

	a.SetList(nil)
	assert.Equal(t, 0, a.Len())
}

func TestAdapter_Item(t *testing.T) {
	a, _ := newTestAdapter(t, mapPrefs{})
	list := []string{"/sdcard/a", "/sdcard/b", "/sdcard/c"}
	a.SetList(list)

	_, ok := a.Item(0)
	assert.False(t, ok)

	for i := 1; i < a.Len(); i++ {
		got, ok := a.Item(i)
		require.True(t, ok)
		assert.Equal(t, list[i-1], got)
	}
}

func TestAdapter_ItemAfterReplace(t *testing.T) {
	a, _ := newTestAdapter(t, mapPrefs{})
	a.SetList([]string{"/old/a", "/old/b", "/old/c"})
	a.SetList([]string{"/new/a"})

	require.Equal(t, 2, a.Len())
	got, ok := a.Item(1)
	require.True(t, ok)
	assert.Equal(t, "/new/a", got)
}

func TestAdapter_EmptyList(t *testing.T) {
	a, _ := newTestAdapter(t, mapPrefs{})
	a.SetList([]string{})

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, KindHeader, a.Kind(0))
	_, ok := a.Item(0)
	assert.False(t, ok)
}

func TestAdapter_Kind(t *testing.T) {
	a, logic := newTestAdapter(t, mapPrefs{})
	a.SetList([]string{"/sdcard/a", "/sdcard/movie.mp4"})

	assert.Equal(t, KindHeader, a.Kind(0))
	assert.Equal(t, KindItem, a.Kind(1))
	assert.Equal(t, kindVideo, a.Kind(2))
	assert.Equal(t, []int{0, 1}, logic.kinds, "strategy sees zero-based entry indexes")
}

func TestAdapter_KindHeaderIgnoresContents(t *testing.T) {
	a, logic := newTestAdapter(t, mapPrefs{})
	a.SetList([]string{"/sdcard/movie.mp4"})

	assert.Equal(t, KindHeader, a.Kind(0))
	assert.Empty(t, logic.kinds)
}

func TestAdapter_OnChanged(t *testing.T) {
	a, _ := newTestAdapter(t, mapPrefs{})
	calls := 0
	a.OnChanged = func() { calls++ }

	a.SetList([]string{"/a"})
	a.SetList(nil)
	assert.Equal(t, 2, calls)
}

func TestAdapter_BindHeader(t *testing.T) {
	a, logic := newTestAdapter(t, mapPrefs{prefs.SelectedPathKey: "/sdcard/a"})
	a.SetList([]string{"/sdcard/a"})

	v := a.CreateView(a.Kind(0))
	a.Bind(v, 0)

	assert.Equal(t, 1, logic.headerBinds)
	assert.Empty(t, logic.bound)
	assert.Equal(t, "..", v.(*HeaderView).Text())
}

func TestAdapter_BindHighlight(t *testing.T) {
	list := []string{"/sdcard/a", "/sdcard/b"}

	tests := []struct {
		name   string
		marker string
		want   []color.Color
	}{
		{
			name: "no marker",
			want: []color.Color{black, black},
		},
		{
			name:   "file below a directory",
			marker: "/sdcard/a/movie.mp4",
			want:   []color.Color{red, black},
		},
		{
			name:   "exact match",
			marker: "/sdcard/b",
			want:   []color.Color{black, red},
		},
		{
			name:   "unrelated",
			marker: "/storage/c",
			want:   []color.Color{black, black},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mapPrefs{}
			if tt.marker != "" {
				p[prefs.SelectedPathKey] = tt.marker
			}
			a, logic := newTestAdapter(t, p)
			a.SetList(list)

			for row := 1; row < a.Len(); row++ {
				v := a.CreateView(a.Kind(row))
				a.Bind(v, row)
				iv := v.(*ItemView)
				assert.Equal(t, tt.want[row-1], iv.TextColor(), "row %d", row)
				assert.Equal(t, list[row-1], iv.Text())
			}
			assert.Equal(t, []int{0, 1}, logic.bound)
		})
	}
}

func TestAdapter_BindReadsMarkerEachTime(t *testing.T) {
	p := mapPrefs{}
	a, _ := newTestAdapter(t, p)
	a.SetList([]string{"/sdcard/a"})
	v := a.CreateView(KindItem)

	a.Bind(v, 1)
	assert.Equal(t, color.Color(black), v.(*ItemView).TextColor())

	p[prefs.SelectedPathKey] = "/sdcard/a/song.mp3"
	a.Bind(v, 1)
	assert.Equal(t, color.Color(red), v.(*ItemView).TextColor())

	delete(p, prefs.SelectedPathKey)
	a.Bind(v, 1)
	assert.Equal(t, color.Color(black), v.(*ItemView).TextColor())
}

func TestAdapter_BindOutOfRange(t *testing.T) {
	a, _ := newTestAdapter(t, mapPrefs{})
	a.SetList([]string{"/sdcard/a", "/sdcard/b"})
	v := a.CreateView(KindItem)
	a.SetList([]string{"/sdcard/a"})

	assert.Panics(t, func() { a.Bind(v, 2) })
}

func TestAdapter_BindWrongView(t *testing.T) {
	a, _ := newTestAdapter(t, mapPrefs{})
	a.SetList([]string{"/sdcard/a"})

	assert.Panics(t, func() { a.Bind(NewHeaderView(), 1) })
}

func TestHighlighted(t *testing.T) {
	tests := []struct {
		marker, path string
		want         bool
	}{
		{"", "/sdcard/a", false},
		{"/sdcard/a", "/sdcard/a", true},
		{"/sdcard/a/movie.mp4", "/sdcard/a", true},
		{"/sdcard/ab", "/sdcard/a", true},
		{"/sdcard/a", "/sdcard/a/movie.mp4", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Highlighted(tt.marker, tt.path), "marker %q path %q", tt.marker, tt.path)
	}
}

func TestConfigFromApp(t *testing.T) {
	app := test.NewTempApp(t)
	app.Preferences().SetString(prefs.SelectedPathKey, "/music/x.mp3")

	cfg := ConfigFromApp(app)
	v := app.Settings().ThemeVariant()
	assert.Equal(t, app.Settings().Theme().Color(theme.ColorNamePrimary, v), cfg.Highlight)
	assert.Equal(t, app.Settings().Theme().Color(theme.ColorNameForeground, v), cfg.Default)

	marker, ok := prefs.SelectedPath(cfg.Prefs)
	require.True(t, ok)
	assert.Equal(t, "/music/x.mp3", marker)
}
