package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

var (
	calculateButtonSize = fyne.NewSize(160, 45)
	clearButtonSize     = fyne.NewSize(120, 45)
)

// Controls holds the action buttons and the theme switch
type Controls struct {
	container       *fyne.Container
	calculateButton *HoverButton
	clearButton     *HoverButton
	darkCheck       *widget.Check

	calculateHandler func()
	clearHandler     func()
	darkHandler      func(dark bool)

	// set while the check is updated programmatically
	syncing bool
}

// NewControls creates the buttons and the theme switch
func NewControls() *Controls {
	c := &Controls{}
	c.createComponents()
	c.buildLayout()
	return c
}

func (c *Controls) createComponents() {
	c.calculateButton = NewHoverButton("Calcular", theme.ConfirmIcon(), calculateButtonSize, func() {
		if c.calculateHandler != nil {
			c.calculateHandler()
		}
	})
	c.calculateButton.Importance = widget.HighImportance

	c.clearButton = NewHoverButton("Limpar", theme.ContentClearIcon(), clearButtonSize, func() {
		if c.clearHandler != nil {
			c.clearHandler()
		}
	})

	c.darkCheck = widget.NewCheck("Tema escuro", func(dark bool) {
		if c.syncing || c.darkHandler == nil {
			return
		}
		c.darkHandler(dark)
	})
}

func (c *Controls) buildLayout() {
	relayout := func() { c.container.Refresh() }
	c.calculateButton.SetResizeHandler(relayout)
	c.clearButton.SetResizeHandler(relayout)

	c.container = container.NewVBox(
		container.NewCenter(container.NewHBox(c.calculateButton, c.clearButton)),
		container.NewCenter(c.darkCheck),
	)
}

// GetContainer returns the controls' canvas object
func (c *Controls) GetContainer() *fyne.Container {
	return c.container
}

func (c *Controls) SetCalculateHandler(handler func()) {
	c.calculateHandler = handler
}

func (c *Controls) SetClearHandler(handler func()) {
	c.clearHandler = handler
}

func (c *Controls) SetDarkHandler(handler func(dark bool)) {
	c.darkHandler = handler
}

// SetDark updates the switch without notifying the handler
func (c *Controls) SetDark(dark bool) {
	c.syncing = true
	defer func() { c.syncing = false }()
	c.darkCheck.SetChecked(dark)
}

// IsDark reports the switch position
func (c *Controls) IsDark() bool {
	return c.darkCheck.Checked
}

// CalculateButton is exposed for keyboard focus and tests
func (c *Controls) CalculateButton() *HoverButton {
	return c.calculateButton
}

func (c *Controls) ClearButton() *HoverButton {
	return c.clearButton
}

func (c *Controls) DarkCheck() *widget.Check {
	return c.darkCheck
}
