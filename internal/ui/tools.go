package ui

import (
	"InkOverlay/internal/state"
	"InkOverlay/internal/view"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// NewToolbar builds the tool, zoom and export controls for overlay.
func NewToolbar(win fyne.Window, overlay *Overlay, zoom *view.Zoom) fyne.CanvasObject {
	tools := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			overlay.SetToolMode(state.ToolPencil)
		}), // Pencil
		widget.NewToolbarAction(theme.ContentRemoveIcon(), func() {
			overlay.SetToolMode(state.ToolEraser)
		}), // Eraser
		widget.NewToolbarAction(theme.CancelIcon(), func() {
			overlay.SetToolMode(state.ToolNone)
		}), // Off
	)

	viewBar := widget.NewToolbar(
		widget.NewToolbarAction(theme.ZoomInIcon(), zoom.ZoomIn),
		widget.NewToolbarAction(theme.ZoomOutIcon(), zoom.ZoomOut),
		widget.NewToolbarAction(theme.ZoomFitIcon(), zoom.Reset),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DeleteIcon(), overlay.ClearPaths),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			exportDialog(win, overlay)
		}),
	)

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tools,
		widget.NewSeparator(),
		viewBar,
		layout.NewSpacer(),
	)
}

func exportDialog(win fyne.Window, overlay *Overlay) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()
		if err := overlay.ExportPDF(writer); err != nil {
			dialog.ShowError(err, win)
		}
	}, win)
	d.SetFileName("annotations.pdf")
	d.Show()
}
