package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// Growth applied to a HoverButton while the pointer is over it
const (
	hoverGrowWidth  = 6
	hoverGrowHeight = 4
)

// HoverButton is a button with a fixed resting size that grows slightly
// while hovered
type HoverButton struct {
	widget.Button

	baseSize fyne.Size
	hovered  bool
	onResize func()
}

// NewHoverButton creates a button at least base in size
func NewHoverButton(label string, icon fyne.Resource, base fyne.Size, tapped func()) *HoverButton {
	b := &HoverButton{baseSize: base}
	b.Text = label
	b.Icon = icon
	b.OnTapped = tapped
	b.ExtendBaseWidget(b)
	return b
}

// MinSize is the resting size, grown while the pointer is over the button
func (b *HoverButton) MinSize() fyne.Size {
	size := b.Button.MinSize().Max(b.baseSize)
	if b.hovered {
		size = size.Add(fyne.NewSize(hoverGrowWidth, hoverGrowHeight))
	}
	return size
}

// MouseIn grows the button
func (b *HoverButton) MouseIn(e *desktop.MouseEvent) {
	b.Button.MouseIn(e)
	b.setHovered(true)
}

// MouseOut restores the resting size
func (b *HoverButton) MouseOut() {
	b.Button.MouseOut()
	b.setHovered(false)
}

// IsHovered reports whether the pointer is over the button
func (b *HoverButton) IsHovered() bool {
	return b.hovered
}

// SetResizeHandler is called after the size changes so the parent can
// lay the button out again
func (b *HoverButton) SetResizeHandler(handler func()) {
	b.onResize = handler
}

func (b *HoverButton) setHovered(hovered bool) {
	if b.hovered == hovered {
		return
	}
	b.hovered = hovered
	b.Refresh()
	if b.onResize != nil {
		b.onResize()
	}
}
