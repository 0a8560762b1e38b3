package tui

// renderFooter renders the key binding help at full terminal width.
// With showHelp off only the short bindings are listed.
func renderFooter(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}
	h := app.help
	h.Width = width
	h.ShowAll = app.showHelp
	return StyleDim.Width(width).Render(h.View(keys))
}
