// Package app wires the calculator window together.
package app

import (
	"fmt"
	"os"
	"runtime"

	"liquido-calc/internal/apptheme"
	"liquido-calc/internal/assets"
	"liquido-calc/internal/config"
	"liquido-calc/internal/controllers"
	"liquido-calc/internal/logger"
	"liquido-calc/internal/models"
	"liquido-calc/internal/services"
	"liquido-calc/internal/shutdown"
	"liquido-calc/internal/views"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

const (
	AppName    = "Calculadora Líquido"
	AppID      = "com.liquidocalc.desktop"
	AppVersion = "1.0.0"
)

// Application holds the window and the MVC components behind it
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	config  *config.Config

	controller *controllers.MainController
	view       *views.MainView
	calculator *services.CalculatorService
	shutdown   *shutdown.Manager
}

// NewApplication creates and wires the application
func NewApplication(cfg *config.Config) *Application {
	appLogger := newLogger(cfg)

	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})

	return newApplication(fyneapp.NewWithID(AppID), cfg, appLogger)
}

func newApplication(fyneApp fyne.App, cfg *config.Config, appLogger logger.Logger) *Application {
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.SetFixedSize(true)
	window.CenterOnScreen()
	window.SetMaster()

	appLogger.Info("Application", "starting application", map[string]interface{}{
		"version":     AppVersion,
		"window_size": fmt.Sprintf("%.0fx%.0f", cfg.WindowWidth, cfg.WindowHeight),
		"go_version":  runtime.Version(),
		"theme":       cfg.Theme,
	})

	loadWindowIcon(fyneApp, window, cfg.IconPath, appLogger)

	calculator := services.NewCalculatorService(models.NewResultRepository(), appLogger)
	mainController := controllers.NewMainController(calculator, appLogger, apptheme.ParseMode(cfg.Theme))
	mainView := views.NewMainView(fyneApp, window, views.Info{
		Name:    AppName,
		Version: AppVersion,
		Logo:    loadHeaderLogo(cfg.LogoPath, appLogger),
	})
	mainController.SetMainView(mainView)

	// the view is torn down on the UI goroutine by closeWindow and quit;
	// the manager only runs components that are safe off it
	shutdownManager := shutdown.NewManager(appLogger)
	shutdownManager.Register(mainController)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		config:     cfg,
		controller: mainController,
		view:       mainView,
		calculator: calculator,
		shutdown:   shutdownManager,
	}
	application.setupWindowEvents()

	appLogger.Info("Application", "initialization complete", nil)
	return application
}

// Run shows the window and blocks in the GUI event loop
func (a *Application) Run() {
	a.shutdown.Listen(func() {
		fyne.Do(a.quit)
	})

	a.view.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.shutdown.Shutdown()
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(a.closeWindow)
}

// closeWindow runs on the UI goroutine when the user closes the window
func (a *Application) closeWindow() {
	a.logger.Info("Application", "window close requested", nil)
	a.view.Shutdown()
	a.shutdown.Shutdown()
	a.window.Close()
}

// quit runs on the UI goroutine after a shutdown signal
func (a *Application) quit() {
	a.view.Shutdown()
	a.fyneApp.Quit()
}

// loadHeaderLogo returns the header picture, or nil so the view draws its
// fallback glyph
func loadHeaderLogo(path string, log logger.Logger) fyne.Resource {
	logo, err := assets.LoadImage(path)
	if err != nil {
		log.Warning("Application", "header logo not loaded, using fallback", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return nil
	}
	return logo
}

// loadWindowIcon brands the window; without the icon the app still runs
func loadWindowIcon(fyneApp fyne.App, window fyne.Window, path string, log logger.Logger) {
	icon, err := assets.LoadIcon(path)
	if err != nil {
		log.Warning("Application", "window icon not loaded, continuing without it", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return
	}

	fyneApp.SetIcon(icon)
	window.SetIcon(icon)
	log.Debug("Application", "window icon loaded", map[string]interface{}{
		"path": path,
	})
}

func newLogger(cfg *config.Config) logger.Logger {
	level := logger.ParseLevel(cfg.LogLevel)
	if cfg.JSONLogs {
		return logger.NewZerolog(os.Stderr, level)
	}
	return logger.NewConsoleLogger(level)
}
