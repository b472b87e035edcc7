package views

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"liquido-calc/internal/apptheme"
	"liquido-calc/internal/controllers"
	"liquido-calc/internal/logger"
	"liquido-calc/internal/models"
	"liquido-calc/internal/services"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryClipboard struct {
	content string
}

func (c *memoryClipboard) Content() string           { return c.content }
func (c *memoryClipboard) SetContent(content string) { c.content = content }

func newTestView(t *testing.T) *MainView {
	t.Helper()
	return newTestViewWithInfo(t, Info{Name: "Calculadora", Version: "test"})
}

func newTestViewWithInfo(t *testing.T, info Info) *MainView {
	t.Helper()

	app := test.NewApp()
	t.Cleanup(app.Quit)

	window := app.NewWindow("test")
	t.Cleanup(window.Close)

	view := NewMainView(app, window, info)

	calc := services.NewCalculatorService(models.NewResultRepository(), logger.NewNop())
	mc := controllers.NewMainController(calc, logger.NewNop(), apptheme.ModeDark)
	mc.SetMainView(view)

	return view
}

func submit(view *MainView) {
	view.Input().Entry().TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
}

func TestInitialState(t *testing.T) {
	view := newTestView(t)

	assert.Equal(t, "R$ 0,00", view.Results().BaseText())
	assert.Equal(t, "R$ 0,00", view.Results().FinalText())
	assert.Equal(t, controllers.StatusReady, view.Status())
	assert.True(t, view.Controls().IsDark())
	assert.Equal(t, apptheme.PaletteFor(apptheme.ModeDark).Primary, view.Input().BorderColor())
}

func TestCalculateButton(t *testing.T) {
	view := newTestView(t)

	test.Type(view.Input().Entry(), "100")
	test.Tap(view.Controls().CalculateButton())

	assert.Equal(t, "R$ 2.200,00", view.Results().BaseText())
	assert.Equal(t, "R$ 1.540,00", view.Results().FinalText())
	assert.Equal(t, apptheme.PaletteFor(apptheme.ModeDark).Success, view.Results().FinalColor())
	assert.Equal(t, controllers.StatusCalculated, view.Status())
}

func TestEnterKeyCalculates(t *testing.T) {
	view := newTestView(t)

	test.Type(view.Input().Entry(), "0")
	submit(view)

	assert.Equal(t, "R$ 0,00", view.Results().BaseText())
	assert.Equal(t, "R$ 0,00", view.Results().FinalText())
	assert.Equal(t, controllers.StatusCalculated, view.Status())
}

func TestTypingFiltersCharacters(t *testing.T) {
	view := newTestView(t)

	test.Type(view.Input().Entry(), "1a0-0 ,5x")
	assert.Equal(t, "100,5", view.Input().Text())
}

func TestPasteFiltersCharacters(t *testing.T) {
	view := newTestView(t)

	clipboard := &memoryClipboard{content: "R$ 1.234,56"}
	view.Input().Entry().TypedShortcut(&fyne.ShortcutPaste{Clipboard: clipboard})

	assert.Equal(t, "1.234,56", view.Input().Text())
}

func TestEmptyInputKeepsValues(t *testing.T) {
	view := newTestView(t)

	view.Input().SetText("100")
	submit(view)
	view.Input().SetText("")
	submit(view)

	assert.Equal(t, "R$ 2.200,00", view.Results().BaseText())
	assert.Equal(t, "R$ 1.540,00", view.Results().FinalText())
	assert.False(t, view.Input().IsInvalid())
	assert.Equal(t, controllers.StatusEmpty, view.Status())
}

func TestInvalidInputShowsErrorState(t *testing.T) {
	view := newTestView(t)
	palette := apptheme.PaletteFor(apptheme.ModeDark)

	// bypasses the typing filter the way a programmatic change would
	view.Input().SetText("abc")
	test.Tap(view.Controls().CalculateButton())

	assert.True(t, view.Input().IsInvalid())
	assert.Equal(t, palette.Error, view.Input().BorderColor())
	assert.True(t, view.Results().IsError())
	assert.Equal(t, palette.Error, view.Results().FinalColor())
	assert.Equal(t, controllers.InvalidInputMessage, view.Results().FinalText())
	assert.Equal(t, controllers.StatusInvalid, view.Status())
}

func TestClearRestoresDefaults(t *testing.T) {
	view := newTestView(t)
	palette := apptheme.PaletteFor(apptheme.ModeDark)

	view.Input().SetText("1,2,3")
	submit(view)
	require.True(t, view.Input().IsInvalid())

	test.Tap(view.Controls().ClearButton())

	assert.Empty(t, view.Input().Text())
	assert.Equal(t, "R$ 0,00", view.Results().BaseText())
	assert.Equal(t, "R$ 0,00", view.Results().FinalText())
	assert.False(t, view.Results().IsError())
	assert.Equal(t, palette.Primary, view.Input().BorderColor())
	assert.Equal(t, controllers.StatusCleared, view.Status())
}

func TestEscapeClears(t *testing.T) {
	view := newTestView(t)

	view.Input().SetText("100")
	submit(view)
	view.Input().Entry().TypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})

	assert.Empty(t, view.Input().Text())
	assert.Equal(t, "R$ 0,00", view.Results().FinalText())
}

func TestThemeSwitch(t *testing.T) {
	view := newTestView(t)
	light := apptheme.PaletteFor(apptheme.ModeLight)

	test.Tap(view.Controls().DarkCheck())

	assert.Equal(t, apptheme.ModeLight, view.Mode())
	assert.False(t, view.Controls().IsDark())
	assert.Equal(t, light.Background, view.BackgroundColor())
	assert.Equal(t, light.Primary, view.Input().BorderColor())

	// an error drawn after the switch uses the light palette
	view.Input().SetText("abc")
	submit(view)
	assert.Equal(t, light.Error, view.Input().BorderColor())

	test.Tap(view.Controls().DarkCheck())
	assert.Equal(t, apptheme.ModeDark, view.Mode())
	assert.Equal(t, apptheme.PaletteFor(apptheme.ModeDark).Error, view.Input().BorderColor())
}

func TestPulseSettlesAtBaseSize(t *testing.T) {
	view := newTestView(t)
	before := view.Results().FinalTextSize()

	view.Input().SetText("5")
	submit(view)
	view.Shutdown()

	assert.Equal(t, before, view.Results().FinalTextSize())
}

func TestHeaderFallsBackWithoutLogo(t *testing.T) {
	view := newTestView(t)

	assert.False(t, view.HasLogo())
	glyph, ok := view.headerMark().(*canvas.Text)
	require.True(t, ok)
	assert.Equal(t, fallbackGlyph, glyph.Text)
	assert.Equal(t, apptheme.PaletteFor(apptheme.ModeDark).Accent, glyph.Color)
}

func TestHeaderShowsLogo(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	img.SetNRGBA(0, 0, color.NRGBA{R: 0xff, G: 0x66, A: 0xff})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	view := newTestViewWithInfo(t, Info{
		Name:    "Calculadora",
		Version: "test",
		Logo:    fyne.NewStaticResource("logo.png", buf.Bytes()),
	})

	assert.True(t, view.HasLogo())
	logo, ok := view.headerMark().(*canvas.Image)
	require.True(t, ok)
	assert.Equal(t, fyne.NewSize(LogoSize, LogoSize), logo.MinSize())
}
