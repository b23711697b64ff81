package picker

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// NewList returns a fyne list backed by a. Replacing the adapter's list
// refreshes the whole widget.
func NewList[T any](a *Adapter[T]) *widget.List {
	l := widget.NewList(
		a.Len,
		func() fyne.CanvasObject { return newRow(KindHeader, a.CreateView(KindHeader)) },
		func(id widget.ListItemID, o fyne.CanvasObject) {
			r := o.(*row)
			a.Bind(r.viewFor(a.Kind(id), a.CreateView), id)
		},
	)
	a.OnChanged = l.Refresh
	return l
}

// row is the recycled list cell. fyne recycles cells regardless of content,
// so the cell keeps one view and swaps it only when the row kind changes.
type row struct {
	widget.BaseWidget
	kind  Kind
	view  fyne.CanvasObject
	stack *fyne.Container
}

func newRow(kind Kind, view fyne.CanvasObject) *row {
	r := &row{kind: kind, view: view, stack: container.NewStack(view)}
	r.ExtendBaseWidget(r)
	return r
}

func (r *row) viewFor(kind Kind, create func(Kind) fyne.CanvasObject) fyne.CanvasObject {
	if r.kind == kind && r.view != nil {
		return r.view
	}
	r.kind = kind
	r.view = create(kind)
	r.stack.Objects = []fyne.CanvasObject{r.view}
	r.stack.Refresh()
	return r.view
}

func (r *row) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(r.stack)
}
