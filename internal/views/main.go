package views

import (
	"fmt"
	"image/color"

	"liquido-calc/internal/apptheme"
	"liquido-calc/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// LogoSize is the edge of the header logo
const LogoSize = 100

// fallbackGlyph stands in for the logo when no image could be loaded
const fallbackGlyph = "R$"

// Info describes the app in the header and the about dialog
type Info struct {
	Name    string
	Version string

	// Logo is drawn above the title; nil shows the fallback glyph
	Logo fyne.Resource
}

// MainView is the calculator window
type MainView struct {
	// UI Components
	app           fyne.App
	window        fyne.Window
	info          Info
	mainContainer *fyne.Container
	background    *canvas.Rectangle
	logo          *canvas.Image
	glyph         *canvas.Text
	header        *canvas.Text
	subtitle      *canvas.Text
	input         *components.InputField
	controls      *components.Controls
	results       *components.ResultPanel
	statusBar     *components.StatusBar

	mode apptheme.Mode

	// Event handlers - connected to controller
	calculateHandler func(text string)
	clearHandler     func()
	themeHandler     func(mode apptheme.Mode)
}

// NewMainView builds the window content
func NewMainView(app fyne.App, window fyne.Window, info Info) *MainView {
	view := &MainView{
		app:    app,
		window: window,
		info:   info,
		mode:   apptheme.ModeLight,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()
	view.setupMenu()

	return view
}

// initializeComponents creates all UI components
func (mv *MainView) initializeComponents() {
	palette := apptheme.PaletteFor(mv.mode)

	mv.background = canvas.NewRectangle(palette.Background)

	if mv.info.Logo != nil {
		mv.logo = canvas.NewImageFromResource(mv.info.Logo)
		mv.logo.FillMode = canvas.ImageFillContain
		mv.logo.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
	} else {
		mv.glyph = canvas.NewText(fallbackGlyph, palette.Accent)
		mv.glyph.TextSize = 45
		mv.glyph.TextStyle = fyne.TextStyle{Bold: true}
		mv.glyph.Alignment = fyne.TextAlignCenter
	}

	mv.header = canvas.NewText(mv.info.Name, palette.Primary)
	mv.header.TextSize = 22
	mv.header.TextStyle = fyne.TextStyle{Bold: true}
	mv.header.Alignment = fyne.TextAlignCenter

	mv.subtitle = canvas.NewText("Base = X × 22   •   Líquido = 70% da base", palette.Muted)
	mv.subtitle.TextSize = 12
	mv.subtitle.Alignment = fyne.TextAlignCenter

	mv.input = components.NewInputField(palette)
	mv.controls = components.NewControls()
	mv.results = components.NewResultPanel(palette)
	mv.statusBar = components.NewStatusBar(mv.info.Version)
}

// buildLayout constructs the main layout
func (mv *MainView) buildLayout() {
	headerArea := container.NewVBox(container.NewCenter(mv.headerMark()), mv.header, mv.subtitle)

	contentArea := container.NewVBox(
		mv.input.GetContainer(),
		mv.controls.GetContainer(),
		widget.NewSeparator(),
		mv.results.GetContainer(),
	)

	mv.mainContainer = container.NewStack(
		mv.background,
		container.NewBorder(
			headerArea,                  // top
			mv.statusBar.GetContainer(), // bottom
			nil,                         // left
			nil,                         // right
			container.NewPadded(container.NewVBox(contentArea, layout.NewSpacer())),
		),
	)

	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) headerMark() fyne.CanvasObject {
	if mv.logo != nil {
		return mv.logo
	}
	return mv.glyph
}

// setupEventHandlers connects internal component events
func (mv *MainView) setupEventHandlers() {
	entry := mv.input.Entry()
	entry.OnSubmitted = func(string) { mv.requestCalculate() }
	entry.OnEscape = mv.requestClear

	mv.controls.SetCalculateHandler(mv.requestCalculate)
	mv.controls.SetClearHandler(mv.requestClear)
	mv.controls.SetDarkHandler(func(dark bool) {
		mode := apptheme.ModeLight
		if dark {
			mode = apptheme.ModeDark
		}
		if mv.themeHandler != nil {
			mv.themeHandler(mode)
		}
	})

	// keys that arrive while the entry is not focused
	mv.window.Canvas().SetOnTypedKey(func(key *fyne.KeyEvent) {
		switch key.Name {
		case fyne.KeyReturn, fyne.KeyEnter:
			mv.requestCalculate()
		case fyne.KeyEscape:
			mv.requestClear()
		}
	})
}

// setupMenu installs the main menu
func (mv *MainView) setupMenu() {
	fileMenu := fyne.NewMenu("Arquivo",
		fyne.NewMenuItem("Calcular", mv.requestCalculate),
		fyne.NewMenuItem("Limpar", mv.requestClear),
	)

	viewMenu := fyne.NewMenu("Exibir",
		fyne.NewMenuItem("Alternar tema", func() {
			if mv.themeHandler != nil {
				mv.themeHandler(mv.mode.Toggle())
			}
		}),
	)

	helpMenu := fyne.NewMenu("Ajuda",
		fyne.NewMenuItem("Sobre", mv.ShowAboutDialog),
	)

	mv.window.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, helpMenu))
}

func (mv *MainView) requestCalculate() {
	if mv.calculateHandler != nil {
		mv.calculateHandler(mv.input.Text())
	}
}

func (mv *MainView) requestClear() {
	if mv.clearHandler != nil {
		mv.clearHandler()
	}
}

// Event handler setters - called by controller

// SetCalculateHandler sets the handler for calculation requests
func (mv *MainView) SetCalculateHandler(handler func(text string)) {
	mv.calculateHandler = handler
}

// SetClearHandler sets the handler for clear requests
func (mv *MainView) SetClearHandler(handler func()) {
	mv.clearHandler = handler
}

// SetThemeHandler sets the handler for theme switches
func (mv *MainView) SetThemeHandler(handler func(mode apptheme.Mode)) {
	mv.themeHandler = handler
}

// UI update methods - called by controller

// ShowResult displays both amounts and pulses the final one
func (mv *MainView) ShowResult(baseText, finalText string) {
	mv.results.SetValues(baseText, finalText)
	mv.results.Pulse()
}

// ShowInputError puts the field and the final amount into the error state
func (mv *MainView) ShowInputError(message string) {
	mv.input.SetInvalid(true)
	mv.results.ShowError(message)
}

// ClearInputError restores the default border colour
func (mv *MainView) ClearInputError() {
	mv.input.SetInvalid(false)
}

// ClearInput empties the amount field
func (mv *MainView) ClearInput() {
	mv.input.Clear()
}

// ResetResults shows zeroText for both amounts
func (mv *MainView) ResetResults(zeroText string) {
	mv.results.Reset(zeroText)
}

// UpdateStatus updates the status bar message
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// ApplyTheme installs the app theme for mode and repaints the custom canvas
// objects that do not follow the theme on their own
func (mv *MainView) ApplyTheme(mode apptheme.Mode) {
	mv.mode = mode
	palette := apptheme.PaletteFor(mode)

	if mv.app != nil {
		mv.app.Settings().SetTheme(apptheme.New(mode))
	}

	mv.background.FillColor = palette.Background
	mv.background.Refresh()
	mv.header.Color = palette.Primary
	mv.header.Refresh()
	if mv.glyph != nil {
		mv.glyph.Color = palette.Accent
		mv.glyph.Refresh()
	}
	mv.subtitle.Color = palette.Muted
	mv.subtitle.Refresh()

	mv.input.ApplyPalette(palette)
	mv.results.ApplyPalette(palette)
	mv.controls.SetDark(mode == apptheme.ModeDark)
}

// ShowAboutDialog displays application information
func (mv *MainView) ShowAboutDialog() {
	content := container.NewVBox(
		widget.NewLabelWithStyle(mv.info.Name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel(fmt.Sprintf("Versão: %s", mv.info.Version)),
		widget.NewLabel("Calcula a base (X × 22) e o líquido (70% da base)."),
	)
	dialog.ShowCustom("Sobre", "Fechar", content, mv.window)
}

// Show focuses the amount field and shows the window
func (mv *MainView) Show() {
	mv.window.Show()
	mv.window.Canvas().Focus(mv.input.Entry())
}

// Shutdown stops running animations. It must run on the UI goroutine.
func (mv *MainView) Shutdown() {
	mv.results.Stop()
}

// Accessors used by the window tests

func (mv *MainView) Input() *components.InputField {
	return mv.input
}

func (mv *MainView) Results() *components.ResultPanel {
	return mv.results
}

func (mv *MainView) Controls() *components.Controls {
	return mv.controls
}

func (mv *MainView) Status() string {
	return mv.statusBar.GetStatus()
}

// HasLogo reports whether the header shows the logo image
func (mv *MainView) HasLogo() bool {
	return mv.logo != nil
}

func (mv *MainView) Mode() apptheme.Mode {
	return mv.mode
}

// BackgroundColor returns the window background fill
func (mv *MainView) BackgroundColor() color.Color {
	return mv.background.FillColor
}
