package ui

import (
	"fmt"
	"image/color"
	"net/url"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"fadeshow/internal/service"
	"fadeshow/internal/transition"
)

// UI holds the widgets of the main window.
type UI struct {
	MainWin fyne.Window

	toolBar          *widget.Toolbar
	pauseAction      *widget.ToolbarAction
	transitionSelect *widget.Select
	infoText         *widget.RichText
	clockLabel       *widget.Label
	statusPathLabel  *widget.Label
	recentStrip      *fyne.Container
	split            *container.Split

	mainModKey fyne.KeyModifier
}

func ternaryString(condition bool, trueVal, falseVal string) string {
	if condition {
		return trueVal
	}
	return falseVal
}

func parseURL(urlStr string) *url.URL {
	link, err := url.Parse(urlStr)
	if err != nil {
		fyne.LogError("Could not parse URL", err)
	}
	return link
}

func (a *App) buildToolbar() *widget.Toolbar {
	a.UI.pauseAction = widget.NewToolbarAction(theme.MediaPauseIcon(), a.togglePlay)
	a.UI.toolBar = widget.NewToolbar(
		widget.NewToolbarAction(theme.NavigateNextIcon(), a.advance),
		a.UI.pauseAction,
		widget.NewToolbarAction(theme.FolderOpenIcon(), a.chooseFolder),
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.HelpIcon(), a.showShortcuts),
	)
	return a.UI.toolBar
}

// buildTransitionSelect creates the drop-down that picks the transition style
// for subsequent image switches.
func (a *App) buildTransitionSelect() *widget.Select {
	a.UI.transitionSelect = widget.NewSelect(transition.Names(), func(name string) {
		kind, err := transition.Parse(name)
		if err != nil {
			a.addLogMessage("Unknown transition: " + name)
			return
		}
		a.controller.SetTransitionKind(kind)
	})
	a.UI.transitionSelect.SetSelected(a.controller.TransitionKind().String())
	return a.UI.transitionSelect
}

func (a *App) buildStatusBar() *fyne.Container {
	a.UI.statusPathLabel = widget.NewLabel("Ready")

	logLabel := widget.NewLabel("")
	logUp := widget.NewButtonWithIcon("", theme.MoveUpIcon(), func() {
		a.logUIManager.ShowPreviousLogMessage()
	})
	logDown := widget.NewButtonWithIcon("", theme.MoveDownIcon(), func() {
		a.logUIManager.ShowNextLogMessage()
	})
	a.logUIManager = NewLogUIManager(logLabel, logUp, logDown, DefaultMaxLogMessages)
	a.logUIManager.UpdateLogDisplay()

	return container.NewVBox(
		widget.NewSeparator(),
		container.NewHBox(
			a.UI.statusPathLabel,
			layout.NewSpacer(),
			logUp,
			logLabel,
			logDown,
			a.UI.clockLabel,
		),
	)
}

func (a *App) buildInformationTab() *container.TabItem {
	a.UI.infoText = widget.NewRichTextFromMarkdown("# Info\n---\nNo image loaded.")
	a.UI.infoText.Wrapping = fyne.TextWrapWord
	return container.NewTabItem("Information", container.NewScroll(a.UI.infoText))
}

func (a *App) buildMainUI() fyne.CanvasObject {
	a.UI.MainWin.SetMaster()
	// set main mod key to super on darwin hosts, else set it to ctrl
	if runtime.GOOS == "darwin" {
		a.UI.mainModKey = fyne.KeyModifierSuper
	} else {
		a.UI.mainModKey = fyne.KeyModifierControl
	}

	toolbar := a.buildToolbar()
	transitionRow := container.NewHBox(widget.NewLabel("Transition:"), a.buildTransitionSelect())
	top := container.NewBorder(nil, nil, nil, transitionRow, toolbar)

	a.UI.clockLabel = widget.NewLabel("Time: ")
	status := a.buildStatusBar()

	a.UI.recentStrip = container.NewHBox()
	recentScroll := container.NewHScroll(a.UI.recentStrip)
	recentScroll.SetMinSize(fyne.NewSize(0, ThumbnailHeight+10))

	// main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu("File",
			fyne.NewMenuItem("Choose Folder...", a.chooseFolder),
		),
		fyne.NewMenu("View",
			fyne.NewMenuItem("Next Image", a.advance),
			fyne.NewMenuItem("Play/Pause", a.togglePlay),
		),
		fyne.NewMenu("Help",
			fyne.NewMenuItem("Keyboard Shortcuts", a.showShortcuts),
			fyne.NewMenuItem("About", a.showAbout),
		),
	)
	a.UI.MainWin.SetMainMenu(mainMenu)
	a.buildKeyboardShortcuts()

	a.UI.split = container.NewHSplit(
		a.stage,
		container.NewAppTabs(
			a.buildInformationTab(),
		),
	)
	a.UI.split.SetOffset(0.75)

	bottom := container.NewVBox(recentScroll, status)
	return container.NewBorder(
		top,    // Top
		bottom, // Bottom
		nil,    // Left
		nil,    // Right
		a.UI.split,
	)
}

func (a *App) showAbout() {
	dialog.ShowCustom("About", "Ok", container.NewVBox(
		widget.NewLabel("A folder slideshow with animated transitions."),
		widget.NewHyperlink("Help and more information on Github", parseURL("https://github.com/fadeshow/fadeshow")),
		widget.NewLabel("v0.3 | License: MIT"),
	), a.UI.MainWin)
}

// chooseFolder opens the folder picker. The rotation pauses for the dialog
// and resumes afterwards if it was playing.
func (a *App) chooseFolder() {
	a.slideshowManager.Pause(true)
	fd := dialog.NewFolderOpen(func(list fyne.ListableURI, err error) {
		defer a.slideshowManager.ResumeAfterOperation()
		if err != nil {
			dialog.ShowError(err, a.UI.MainWin)
			return
		}
		if list == nil { // cancelled
			return
		}
		a.controller.SetFolder(list.Path())
		a.updateStatusBar()
	}, a.UI.MainWin)

	if cur := a.controller.Folder(); cur != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(cur)); err == nil {
			fd.SetLocation(lister)
		}
	}
	fd.Resize(fyne.NewSize(700, 500))
	fd.Show()
}

// updateStatusBar updates the text of the status bar.
func (a *App) updateStatusBar() {
	if a.UI.statusPathLabel == nil {
		return
	}
	statusText := "Ready"
	if cur := a.controller.CurrentPath(); cur != "" {
		statusText = fmt.Sprintf("%s  |  %d images", cur, a.controller.Count())
	} else if a.controller.Folder() != "" {
		statusText = fmt.Sprintf("%s  |  no images", a.controller.Folder())
	}
	if a.slideshowManager.IsPaused() {
		statusText += " | Paused"
	} else {
		statusText += " | Playing"
	}
	a.UI.statusPathLabel.SetText(statusText)
}

// updateInfoText generates and displays the markdown-formatted metadata for
// the current image in the info panel, including stats and EXIF data.
func (a *App) updateInfoText(info *service.ImageInfo) {
	if a.UI.infoText == nil {
		return
	}
	cur := a.controller.CurrentPath()
	if cur == "" {
		a.UI.infoText.ParseMarkdown("# Info\n---\nNo image loaded.")
		return
	}
	if info == nil { // Called when image info isn't available (e.g. load error)
		a.UI.infoText.ParseMarkdown("# Info\n---\nImage metadata not available.")
		return
	}

	viewsString := "(unavailable)"
	if a.viewLog != nil {
		if n, err := a.viewLog.Count(cur); err == nil {
			viewsString = fmt.Sprintf("%d", n)
		}
	}

	exifString := "(not available)"
	if len(info.EXIFData) > 0 {
		keys := make([]string, 0, len(info.EXIFData))
		for k := range info.EXIFData {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var builder strings.Builder
		for _, k := range keys {
			builder.WriteString(fmt.Sprintf("- **%s**: %s\n\n", k, info.EXIFData[k]))
		}
		exifString = builder.String()
	}

	md := fmt.Sprintf(`## Stats
**File:** %s

**Folder images:** %d

**Size:**   %d bytes

**Width:**   %d px

**Height:**  %d px

**Last modified:** %s

**Times shown:** %s

---
## EXIF Data
%s
`,
		filepath.Base(cur),
		a.controller.Count(),
		info.Size,
		info.Width,
		info.Height,
		info.ModTime.Format("2006-01-02 15:04:05"),
		viewsString,
		exifString,
	)

	a.UI.infoText.ParseMarkdown(md)
}

// refreshRecentStrip rebuilds the horizontal strip of recently shown images.
// The newest entry is leftmost and the one currently on stage gets a border.
func (a *App) refreshRecentStrip() {
	if a.UI.recentStrip == nil {
		return
	}
	a.UI.recentStrip.RemoveAll()

	paths := a.recent.Paths()
	if len(paths) == 0 {
		a.UI.recentStrip.Refresh()
		return
	}

	for _, p := range paths {
		path := p
		tappableThumb := newTappableImage(theme.FileImageIcon(), func() {
			if path == a.controller.CurrentPath() {
				return
			}
			// Pause rotation on manual interaction.
			if !a.slideshowManager.IsPaused() {
				a.togglePlay()
			}
			a.controller.ShowPath(path)
		})
		tappableThumb.SetMinSize(fyne.NewSize(ThumbnailWidth, ThumbnailHeight))

		thumbWidget := container.NewStack(tappableThumb)

		// Use a closure to update the thumbnail when it's loaded asynchronously.
		updateThumb := func(resource fyne.Resource) {
			tappableThumb.SetResource(resource)
			thumbWidget.Refresh()
		}
		initialResource := a.thumbnailManager.GetThumbnail(path, updateThumb)
		tappableThumb.SetResource(initialResource)

		if path == a.controller.CurrentPath() {
			border := canvas.NewRectangle(color.Transparent)
			border.StrokeColor = theme.Color(theme.ColorNamePrimary)
			border.StrokeWidth = 3
			thumbWidget.Add(border)
		}
		a.UI.recentStrip.Add(thumbWidget)
	}
	a.UI.recentStrip.Refresh()
}
