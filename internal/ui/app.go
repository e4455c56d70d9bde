// Package ui  Setup for the Fadeshow application
package ui

import (
	"flag"
	"image"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"
	"github.com/rs/zerolog"

	"fadeshow/internal/controller"
	"fadeshow/internal/history"
	"fadeshow/internal/service"
	"fadeshow/internal/slideshow"
	"fadeshow/internal/transition"
	"fadeshow/internal/viewlog"
)

const (
	// DefaultRecentCount is how many recently shown images the strip keeps.
	DefaultRecentCount = 8
)

// App represents the whole application with all its windows, widgets and functions
type App struct {
	app fyne.App
	UI  UI

	controller *controller.Controller
	engine     *transition.Engine
	stage      *imageStage

	slideshowManager *slideshow.Manager
	recent           *history.RecentList
	viewLog          *viewlog.Log // nil when the database could not be opened
	imageService     *service.ImageService
	thumbnailManager *ThumbnailManager

	logUIManager *LogUIManager
	log          zerolog.Logger

	// lastInfo holds the metadata gathered while decoding the image that is
	// currently being installed, so the info panel avoids a second decode.
	lastInfo *service.ImageInfo
}

// display adapts the transition engine to the controller and keeps the window
// chrome in sync when the stage is cleared.
type display struct {
	a *App
}

func (d display) Show(kind transition.Kind, img image.Image) {
	d.a.engine.Switch(kind, img)
}

func (d display) Clear() {
	d.a.engine.Clear()
	d.a.lastInfo = nil
	d.a.UI.MainWin.SetTitle("Fadeshow")
	d.a.updateInfoText(nil)
	d.a.updateStatusBar()
}

// loader decodes images for the controller and stashes their metadata for the
// info panel.
type loader struct {
	a *App
}

func (l loader) Load(path string) (image.Image, error) {
	info, img, err := l.a.imageService.GetImageInfo(path)
	if err != nil {
		return nil, err
	}
	l.a.lastInfo = info
	return img, nil
}

// addLogMessage adds a message to the UI log display.
func (a *App) addLogMessage(message string) {
	a.log.Info().Msg(message)
	if a.logUIManager != nil {
		a.logUIManager.AddLogMessage(message)
	}
}

// onImageShown runs after each successful install: it records the view,
// updates the recent strip, and refreshes the window chrome.
func (a *App) onImageShown(path string) {
	if a.viewLog != nil {
		if err := a.viewLog.Record(path); err != nil {
			a.log.Error().Err(err).Str("path", path).Msg("recording view")
		}
	}
	a.recent.Record(path)
	a.refreshRecentStrip()
	a.UI.MainWin.SetTitle("Fadeshow - " + filepath.Base(path))
	a.updateInfoText(a.lastInfo)
	a.updateStatusBar()
}

// advance is the user-facing "next image" trigger.
func (a *App) advance() {
	a.controller.AdvanceManually()
}

// togglePlay handles toggling the rotation state and updating the UI icon.
func (a *App) togglePlay() {
	a.slideshowManager.TogglePlayPause()
	if a.slideshowManager.IsPaused() {
		if a.UI.pauseAction != nil {
			a.UI.pauseAction.SetIcon(theme.MediaPlayIcon())
		}
	} else {
		if a.UI.pauseAction != nil {
			a.UI.pauseAction.SetIcon(theme.MediaPauseIcon())
		}
	}
	if a.UI.toolBar != nil {
		a.UI.toolBar.Refresh()
	}
	a.updateStatusBar()
}

// rotate fires the periodic image switch. Ticks are ignored while paused so
// the rotation resumes on its own cadence.
func (a *App) rotate(ticker *time.Ticker) {
	for range ticker.C {
		if a.UI.MainWin == nil {
			ticker.Stop()
			return
		}
		if !a.slideshowManager.IsPaused() {
			fyne.Do(func() {
				a.controller.ShowRandomImage()
			})
		}
	}
}

func (a *App) updateTimer() {
	for range time.Tick(time.Second) {
		if a.UI.MainWin == nil || a.UI.clockLabel == nil {
			return
		}
		fyne.Do(func() {
			formatted := time.Now().Format("Time: 03:04:05")
			a.UI.clockLabel.SetText(formatted)
		})
	}
}

// Command-line flags
var intervalFlag = flag.Float64("interval", 3.0, "Rotation interval in seconds. Min: 0.1.")
var recentCountFlag = flag.Int("recent-count", DefaultRecentCount, "Number of recently shown images in the strip (0 to disable).")
var transitionFlag = flag.String("transition", transition.Fade.String(), "Initial transition style.")

// CreateApplication is the GUI entrypoint
func CreateApplication() {
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	dir, err := os.Getwd()
	if err != nil {
		logger.Error().Err(err).Msg("cannot determine working directory")
		return
	}
	if args := flag.Args(); len(args) > 0 {
		dir = args[0]
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	fyneApp := app.NewWithID("com.github.fadeshow")
	fyneApp.Settings().SetTheme(NewCompactTheme(fyneApp.Settings().Theme()))

	a := &App{app: fyneApp, log: logger}

	// Single logger funnel: console always, the status bar line once the UI
	// is built.
	uiLogger := func(message string) {
		a.addLogMessage(message)
	}

	views, err := viewlog.Open("", uiLogger)
	if err != nil {
		a.log.Warn().Err(err).Msg("view log unavailable; continuing without statistics")
	} else {
		a.viewLog = views
	}

	a.imageService = service.NewImageService()
	a.recent = history.NewRecentList(*recentCountFlag)
	a.slideshowManager = slideshow.NewManager(
		time.Duration(*intervalFlag*float64(time.Second)),
		func(message string) {
			fyne.Do(func() { a.addLogMessage("Rotation: " + message) })
		},
	)
	a.thumbnailManager = NewThumbnailManager(a)

	a.stage = newImageStage()
	a.engine = transition.NewEngine(a.stage, fyneAnimator{})
	a.controller = controller.New(display{a}, loader{a}, uiLogger)
	a.controller.SetOnShown(a.onImageShown)
	if kind, err := transition.Parse(*transitionFlag); err == nil {
		a.controller.SetTransitionKind(kind)
	} else {
		a.log.Warn().Str("transition", *transitionFlag).Msg("unknown transition flag, keeping Fade")
	}

	a.UI.MainWin = fyneApp.NewWindow("Fadeshow")
	a.UI.MainWin.SetCloseIntercept(func() {
		if a.viewLog != nil {
			if err := a.viewLog.Close(); err != nil {
				a.log.Error().Err(err).Msg("closing view log")
			}
		}
		a.UI.MainWin.Close()
	})

	a.UI.MainWin.SetContent(a.buildMainUI())

	a.controller.Initialize(dir)

	ticker := time.NewTicker(a.slideshowManager.Interval())
	go a.rotate(ticker)
	go a.updateTimer()

	a.UI.MainWin.Resize(fyne.NewSize(1000, 700))
	a.UI.MainWin.CenterOnScreen()
	a.UI.MainWin.ShowAndRun()
}
