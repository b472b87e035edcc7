package components

import (
	"image/color"
	"math"
	"time"

	"liquido-calc/internal/apptheme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
)

const (
	captionTextSize = 13
	valueTextSize   = 26
	pulseGrowth     = 6
	pulseDuration   = 280 * time.Millisecond
)

// ResultPanel shows the base and final amounts on a card
type ResultPanel struct {
	container  *fyne.Container
	background *canvas.Rectangle

	baseCaption  *canvas.Text
	baseValue    *canvas.Text
	finalCaption *canvas.Text
	finalValue   *canvas.Text

	palette    apptheme.Palette
	errorState bool
	pulse      *fyne.Animation
}

// NewResultPanel creates an empty card; callers reset it to zero
func NewResultPanel(palette apptheme.Palette) *ResultPanel {
	rp := &ResultPanel{palette: palette}
	rp.createComponents()
	rp.buildLayout()
	rp.paint()
	return rp
}

func (rp *ResultPanel) createComponents() {
	rp.background = canvas.NewRectangle(color.Transparent)
	rp.background.CornerRadius = 12

	rp.baseCaption = newCaption("Base (X × 22)")
	rp.baseValue = newValue()
	rp.finalCaption = newCaption("Líquido (70%)")
	rp.finalValue = newValue()
}

func newCaption(text string) *canvas.Text {
	t := canvas.NewText(text, color.Black)
	t.TextSize = captionTextSize
	t.Alignment = fyne.TextAlignCenter
	return t
}

func newValue() *canvas.Text {
	t := canvas.NewText("", color.Black)
	t.TextSize = valueTextSize
	t.TextStyle = fyne.TextStyle{Bold: true}
	t.Alignment = fyne.TextAlignCenter
	return t
}

func (rp *ResultPanel) buildLayout() {
	content := container.NewVBox(
		rp.baseCaption,
		rp.baseValue,
		layout.NewSpacer(),
		rp.finalCaption,
		rp.finalValue,
	)
	rp.container = container.NewStack(rp.background, container.NewPadded(content))
}

// GetContainer returns the card's canvas object
func (rp *ResultPanel) GetContainer() *fyne.Container {
	return rp.container
}

// SetValues shows a calculated result and leaves the error state
func (rp *ResultPanel) SetValues(baseText, finalText string) {
	rp.errorState = false
	rp.baseValue.Text = baseText
	rp.finalValue.Text = finalText
	rp.paint()
}

// ShowError replaces the final amount with message in the error colour.
// The base amount keeps its last value.
func (rp *ResultPanel) ShowError(message string) {
	rp.stopPulse()
	rp.errorState = true
	rp.finalValue.Text = message
	rp.paint()
}

// Reset shows zeroText for both amounts
func (rp *ResultPanel) Reset(zeroText string) {
	rp.stopPulse()
	rp.SetValues(zeroText, zeroText)
}

// BaseText returns the displayed base amount
func (rp *ResultPanel) BaseText() string {
	return rp.baseValue.Text
}

// FinalText returns the displayed final amount or error message
func (rp *ResultPanel) FinalText() string {
	return rp.finalValue.Text
}

// FinalColor returns the colour of the final amount
func (rp *ResultPanel) FinalColor() color.Color {
	return rp.finalValue.Color
}

// FinalTextSize returns the current size of the final amount
func (rp *ResultPanel) FinalTextSize() float32 {
	return rp.finalValue.TextSize
}

// IsError reports whether the panel shows the error state
func (rp *ResultPanel) IsError() bool {
	return rp.errorState
}

// ApplyPalette repaints the card for a new theme
func (rp *ResultPanel) ApplyPalette(palette apptheme.Palette) {
	rp.palette = palette
	rp.paint()
}

// Pulse briefly grows the final amount to draw attention to a new value
func (rp *ResultPanel) Pulse() {
	rp.stopPulse()

	rp.pulse = fyne.NewAnimation(pulseDuration, func(progress float32) {
		size := float32(valueTextSize)
		if progress < 1 {
			size += pulseGrowth * float32(math.Sin(math.Pi*float64(progress)))
		}
		rp.finalValue.TextSize = size
		rp.finalValue.Refresh()
	})
	rp.pulse.Curve = fyne.AnimationEaseOut
	rp.pulse.Start()
}

// Stop halts a running pulse
func (rp *ResultPanel) Stop() {
	rp.stopPulse()
}

func (rp *ResultPanel) stopPulse() {
	if rp.pulse == nil {
		return
	}
	rp.pulse.Stop()
	rp.pulse = nil
	rp.finalValue.TextSize = valueTextSize
	rp.finalValue.Refresh()
}

func (rp *ResultPanel) paint() {
	rp.background.FillColor = rp.palette.Surface
	rp.background.StrokeColor = rp.palette.Border
	rp.background.StrokeWidth = 1
	rp.background.Refresh()

	rp.baseCaption.Color = rp.palette.Muted
	rp.finalCaption.Color = rp.palette.Muted
	rp.baseValue.Color = rp.palette.Text

	if rp.errorState {
		rp.finalValue.Color = rp.palette.Error
	} else {
		rp.finalValue.Color = rp.palette.Success
	}

	for _, t := range []*canvas.Text{rp.baseCaption, rp.baseValue, rp.finalCaption, rp.finalValue} {
		t.Refresh()
	}
}
