// Package prefs names the preference keys shared between the picker and the
// playback side of the app.
package prefs

// SelectedPathKey holds the path of the file currently considered selected,
// usually the one that is playing. The picker highlights every row whose path
// is contained in it.
const SelectedPathKey = "selected_path"

// LastDirKey holds the directory the picker showed last.
const LastDirKey = "last_dir"

// Reader is the read side of fyne.Preferences.
type Reader interface {
	String(key string) string
}

// Writer is the write side of fyne.Preferences.
type Writer interface {
	SetString(key string, value string)
	RemoveValue(key string)
}

// SelectedPath returns the selected-path marker. An empty value counts as absent.
func SelectedPath(r Reader) (string, bool) {
	if r == nil {
		return "", false
	}
	p := r.String(SelectedPathKey)
	return p, p != ""
}

func SetSelectedPath(w Writer, path string) {
	if path == "" {
		w.RemoveValue(SelectedPathKey)
		return
	}
	w.SetString(SelectedPathKey, path)
}

func ClearSelectedPath(w Writer) { w.RemoveValue(SelectedPathKey) }

func LastDir(r Reader) string {
	if r == nil {
		return ""
	}
	return r.String(LastDirKey)
}

func SetLastDir(w Writer, dir string) { w.SetString(LastDirKey, dir) }
