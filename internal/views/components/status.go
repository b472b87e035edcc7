package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays the outcome of the last action and the app version
type StatusBar struct {
	container    *fyne.Container
	statusLabel  *widget.Label
	versionLabel *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar(version string) *StatusBar {
	sb := &StatusBar{}
	sb.createComponents(version)
	sb.buildLayout()
	return sb
}

// createComponents initializes status bar components
func (sb *StatusBar) createComponents(version string) {
	sb.statusLabel = widget.NewLabel("Pronto")
	sb.versionLabel = widget.NewLabel(version)
	sb.versionLabel.Importance = widget.LowImportance
}

// buildLayout constructs the status bar layout
func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		layout.NewSpacer(),
		sb.versionLabel,
	)
}

// GetContainer returns the status bar's canvas object
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}
