package ui

import "github.com/maxence-charriere/go-app/v9/pkg/app"

// Loader is a three-ring spinner with an optional caption. The zero value
// renders a medium spinner with no caption, inline in its parent.
type Loader struct {
	app.Compo
	Size       string // "small", "medium" or "large"; empty means medium
	Text       string // caption under the spinner, omitted when empty
	Fullscreen bool   // wrap the spinner in a full-viewport overlay
}

func spinnerSizeClass(size string) string {
	switch size {
	case "small":
		return "spinner-small"
	case "large":
		return "spinner-large"
	default:
		return "spinner-medium"
	}
}

func (l *Loader) Render() app.UI {
	indicator := app.Div().Class("loader-container").Body(
		app.Div().Class("spinner "+spinnerSizeClass(l.Size)).Body(
			app.Div().Class("spinner-ring ring-1"),
			app.Div().Class("spinner-ring ring-2"),
			app.Div().Class("spinner-ring ring-3"),
		),
		app.If(l.Text != "",
			app.Div().Class("loader-text").Text(l.Text),
		),
	)

	if l.Fullscreen {
		return app.Div().Class("loader-overlay").Body(indicator)
	}
	return indicator
}
