package components

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
)

func TestHoverButtonGrowsWhileHovered(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	resized := 0
	b := NewHoverButton("Calcular", theme.ConfirmIcon(), fyne.NewSize(160, 45), nil)
	b.SetResizeHandler(func() { resized++ })

	resting := b.MinSize()
	assert.GreaterOrEqual(t, resting.Width, float32(160))
	assert.GreaterOrEqual(t, resting.Height, float32(45))

	b.MouseIn(&desktop.MouseEvent{})
	assert.True(t, b.IsHovered())
	assert.Equal(t, resting.Add(fyne.NewSize(6, 4)), b.MinSize())

	// moving inside the button does not grow it again
	b.MouseIn(&desktop.MouseEvent{})
	assert.Equal(t, 1, resized)

	b.MouseOut()
	assert.False(t, b.IsHovered())
	assert.Equal(t, resting, b.MinSize())
	assert.Equal(t, 2, resized)
}

func TestHoverButtonTapped(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	taps := 0
	b := NewHoverButton("Limpar", nil, fyne.NewSize(120, 45), func() { taps++ })
	test.Tap(b)

	assert.Equal(t, 1, taps)
}

func TestControlsGrowWithHoveredButton(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	c := NewControls()
	before := c.GetContainer().MinSize()

	c.CalculateButton().MouseIn(&desktop.MouseEvent{})
	assert.True(t, c.CalculateButton().IsHovered())
	assert.False(t, c.ClearButton().IsHovered())
	assert.Equal(t, before.Width+6, c.GetContainer().MinSize().Width)

	c.CalculateButton().MouseOut()
	assert.Equal(t, before, c.GetContainer().MinSize())
}
