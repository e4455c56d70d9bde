// Package ui  Shortcuts for keyboard actions
package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

func (a *App) buildKeyboardShortcuts() {
	// ctrl+q to quit application
	a.UI.MainWin.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyQ,
		Modifier: a.UI.mainModKey,
	}, func(_ fyne.Shortcut) { a.app.Quit() })

	// ctrl+o opens the folder picker
	a.UI.MainWin.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyO,
		Modifier: a.UI.mainModKey,
	}, func(_ fyne.Shortcut) { a.chooseFolder() })

	a.UI.MainWin.Canvas().SetOnTypedKey(func(key *fyne.KeyEvent) {
		switch key.Name {
		case fyne.KeyRight, fyne.KeyN:
			a.advance()
		case fyne.KeyP, fyne.KeySpace:
			a.togglePlay()
		case fyne.KeyO:
			a.chooseFolder()
		case fyne.KeyQ:
			a.app.Quit()
		// close dialogs with esc key
		case fyne.KeyEscape:
			if len(a.UI.MainWin.Canvas().Overlays().List()) > 0 {
				a.UI.MainWin.Canvas().Overlays().Top().Hide()
			}
		}
	})
}

func (a *App) showShortcuts() {
	shortcuts := []string{
		"Ctrl+Q or Q",
		"Arrow Right or N",
		"P or Space",
		"Ctrl+O or O",
		"Esc",
	}
	descriptions := []string{
		"Quit Application",
		"Next Image",
		"Play / Pause Rotation",
		"Choose Folder",
		"Close Dialog",
	}

	win := a.app.NewWindow("Keyboard Shortcuts")
	table := widget.NewTable(
		func() (int, int) { return len(descriptions) + 1, 2 }, // +1 for header row
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			isHeader := id.Row == 0
			dataRowIndex := id.Row - 1

			if id.Col == 0 {
				label.SetText(ternaryString(isHeader, "Description", descriptions[dataRowIndex]))
			} else {
				label.SetText(ternaryString(isHeader, "Shortcut", shortcuts[dataRowIndex]))
			}
			label.TextStyle.Bold = isHeader
		},
	)
	table.SetColumnWidth(0, 250)
	table.SetColumnWidth(1, 250)
	win.SetContent(table)
	win.Resize(fyne.NewSize(520, 300))
	win.Show()
}
