package ui

import (
	"InkOverlay/internal/config"
	"InkOverlay/internal/state"
	"InkOverlay/internal/view"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// RunApp opens the demo window: a ruled page with the annotation overlay
// on top. Annotations live only as long as the window.
func RunApp(cfg config.Config) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Ink Overlay")
	myWindow.Resize(fyne.NewSize(1024, 768))

	zoom := view.NewZoom(cfg.Zoom.Min, cfg.Zoom.Max, cfg.Zoom.Step)
	overlay := NewOverlay(state.NewPathStore(), zoom, cfg)
	page := newDocumentView(zoom)
	zoom.OnChange(func(float64) {
		page.Refresh()
		overlay.ZoomChanged()
	})

	statusBar := widget.NewLabel("Ready")
	overlay.OnStatus = statusBar.SetText

	toolbar := NewToolbar(myWindow, overlay, zoom)
	content := container.NewBorder(toolbar, statusBar, nil, nil, container.NewStack(page, overlay))

	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
