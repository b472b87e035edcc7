package controllers

import (
	"errors"
	"sync"

	"liquido-calc/internal/apptheme"
	"liquido-calc/internal/currency"
	"liquido-calc/internal/logger"
	"liquido-calc/internal/models"
	"liquido-calc/internal/services"
)

// Status texts shown under the results
const (
	StatusReady      = "Pronto"
	StatusCalculated = "Calculado"
	StatusEmpty      = "Informe um valor para X"
	StatusInvalid    = "Entrada inválida"
	StatusCleared    = "Limpo"
)

// InvalidInputMessage replaces the final amount while the input is rejected
const InvalidInputMessage = "Valor inválido"

// View is what the controller needs from the window
type View interface {
	SetCalculateHandler(handler func(text string))
	SetClearHandler(handler func())
	SetThemeHandler(handler func(mode apptheme.Mode))

	ShowResult(baseText, finalText string)
	ShowInputError(message string)
	ClearInputError()
	ClearInput()
	ResetResults(zeroText string)
	ApplyTheme(mode apptheme.Mode)
	UpdateStatus(status string)
}

// MainController reacts to the window's events. Every call arrives on the
// UI goroutine; the mutex only guards state read by Shutdown.
type MainController struct {
	calculator *services.CalculatorService
	logger     logger.Logger

	mu       sync.RWMutex
	mainView View
	mode     apptheme.Mode
}

// NewMainController creates a controller starting in the given theme mode
func NewMainController(calculator *services.CalculatorService, log logger.Logger, mode apptheme.Mode) *MainController {
	return &MainController{
		calculator: calculator,
		logger:     log,
		mode:       mode,
	}
}

// SetMainView associates the view, wires its events and paints the
// initial state
func (mc *MainController) SetMainView(view View) {
	mc.mu.Lock()
	mc.mainView = view
	mode := mc.mode
	mc.mu.Unlock()

	view.SetCalculateHandler(mc.Calculate)
	view.SetClearHandler(mc.Clear)
	view.SetThemeHandler(mc.SetTheme)

	view.ApplyTheme(mode)
	view.ResetResults(currency.Zero())
	view.UpdateStatus(StatusReady)
}

// Calculate handles a button press or Enter in the amount field
func (mc *MainController) Calculate(text string) {
	view := mc.view()
	if view == nil {
		return
	}

	result, err := mc.calculator.Calculate(text)
	switch {
	case errors.Is(err, models.ErrEmptyInput):
		// the values on screen stay as they are
		view.UpdateStatus(StatusEmpty)
		return
	case err != nil:
		mc.calculator.RecordRejected()
		mc.logger.Debug("MainController", "input rejected", map[string]interface{}{
			"input": text,
			"error": err.Error(),
		})
		view.ShowInputError(InvalidInputMessage)
		view.UpdateStatus(StatusInvalid)
		return
	}

	view.ClearInputError()
	view.ShowResult(result.BaseText, result.FinalText)
	view.UpdateStatus(StatusCalculated)
}

// Clear empties the field and resets both amounts
func (mc *MainController) Clear() {
	view := mc.view()
	if view == nil {
		return
	}

	mc.calculator.Reset()
	view.ClearInput()
	view.ClearInputError()
	view.ResetResults(currency.Zero())
	view.UpdateStatus(StatusCleared)
}

// SetTheme switches the colour scheme
func (mc *MainController) SetTheme(mode apptheme.Mode) {
	mc.mu.Lock()
	changed := mc.mode != mode
	mc.mode = mode
	view := mc.mainView
	mc.mu.Unlock()

	if !changed || view == nil {
		return
	}

	view.ApplyTheme(mode)
	mc.logger.Info("MainController", "theme changed", map[string]interface{}{
		"mode": string(mode),
	})
}

// ToggleTheme flips between dark and light
func (mc *MainController) ToggleTheme() {
	mc.SetTheme(mc.ThemeMode().Toggle())
}

// ThemeMode returns the active colour scheme
func (mc *MainController) ThemeMode() apptheme.Mode {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.mode
}

// Shutdown logs the session summary
func (mc *MainController) Shutdown() {
	stats := mc.calculator.Stats()
	fields := map[string]interface{}{
		"calculations": stats.Calculations,
		"rejected":     stats.Rejected,
		"theme":        string(mc.ThemeMode()),
	}
	if stats.LastResult != nil {
		fields["last_final"] = stats.LastResult.FinalText
	}
	mc.logger.Info("MainController", "session finished", fields)
}

func (mc *MainController) view() View {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.mainView
}
