package picker

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// HeaderView is the view of the ".." row.
type HeaderView struct {
	widget.BaseWidget
	icon *widget.Icon
	text *canvas.Text
}

func NewHeaderView() *HeaderView {
	v := &HeaderView{
		icon: widget.NewIcon(theme.MoveUpIcon()),
		text: canvas.NewText("..", theme.Color(theme.ColorNameForeground)),
	}
	v.ExtendBaseWidget(v)
	return v
}

func (v *HeaderView) SetText(s string) {
	v.text.Text = s
	v.text.Refresh()
}

func (v *HeaderView) Text() string { return v.text.Text }

func (v *HeaderView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, v.icon, nil, v.text))
}

// ItemView is the view of a data row. Its text color is owned by the adapter.
type ItemView struct {
	widget.BaseWidget
	icon *widget.Icon
	text *canvas.Text
}

func NewItemView() *ItemView {
	v := &ItemView{
		icon: widget.NewIcon(theme.FileIcon()),
		text: canvas.NewText("", theme.Color(theme.ColorNameForeground)),
	}
	v.ExtendBaseWidget(v)
	return v
}

func (v *ItemView) SetText(s string) {
	v.text.Text = s
	v.text.Refresh()
}

func (v *ItemView) Text() string { return v.text.Text }

func (v *ItemView) SetIcon(res fyne.Resource) { v.icon.SetResource(res) }

func (v *ItemView) Icon() fyne.Resource { return v.icon.Resource }

func (v *ItemView) SetTextColor(c color.Color) {
	v.text.Color = c
	v.text.Refresh()
}

func (v *ItemView) TextColor() color.Color { return v.text.Color }

func (v *ItemView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, v.icon, nil, v.text))
}
