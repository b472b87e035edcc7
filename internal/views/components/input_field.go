package components

import (
	"image/color"

	"liquido-calc/internal/apptheme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const frameStrokeWidth = 2

// InputField is the labelled amount entry with a coloured frame that turns
// to the error colour while the input is rejected
type InputField struct {
	container *fyne.Container
	label     *widget.Label
	entry     *NumericEntry
	frame     *canvas.Rectangle

	palette apptheme.Palette
	invalid bool
}

// NewInputField creates the field painted with palette
func NewInputField(palette apptheme.Palette) *InputField {
	f := &InputField{palette: palette}
	f.createComponents()
	f.buildLayout()
	return f
}

func (f *InputField) createComponents() {
	f.label = widget.NewLabelWithStyle("Valor de X", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	f.entry = NewNumericEntry()

	f.frame = canvas.NewRectangle(color.Transparent)
	f.frame.StrokeWidth = frameStrokeWidth
	f.frame.CornerRadius = 8
	f.frame.StrokeColor = f.palette.Primary
}

func (f *InputField) buildLayout() {
	f.container = container.NewVBox(
		f.label,
		container.NewStack(f.frame, container.NewPadded(f.entry)),
	)
}

// GetContainer returns the field's canvas object
func (f *InputField) GetContainer() *fyne.Container {
	return f.container
}

// Entry exposes the underlying entry for focus and key wiring
func (f *InputField) Entry() *NumericEntry {
	return f.entry
}

// Text returns the current input
func (f *InputField) Text() string {
	return f.entry.Text
}

// SetText replaces the input
func (f *InputField) SetText(text string) {
	f.entry.SetText(text)
}

// Clear empties the input
func (f *InputField) Clear() {
	f.entry.SetText("")
}

// SetInvalid switches the frame between the error and primary colours
func (f *InputField) SetInvalid(invalid bool) {
	f.invalid = invalid
	f.paintFrame()
}

// IsInvalid reports whether the frame shows the error colour
func (f *InputField) IsInvalid() bool {
	return f.invalid
}

// BorderColor returns the colour currently used for the frame
func (f *InputField) BorderColor() color.Color {
	return f.frame.StrokeColor
}

// ApplyPalette repaints the frame for a new theme
func (f *InputField) ApplyPalette(palette apptheme.Palette) {
	f.palette = palette
	f.paintFrame()
}

func (f *InputField) paintFrame() {
	if f.invalid {
		f.frame.StrokeColor = f.palette.Error
	} else {
		f.frame.StrokeColor = f.palette.Primary
	}
	f.frame.Refresh()
}
