package ui

import "github.com/maxence-charriere/go-app/v9/pkg/app"

// dotDelays staggers the bounce animation so the dots never pulse in unison.
// The offsets are fixed regardless of size.
var dotDelays = [...]string{"0ms", "150ms", "300ms"}

// Dots is a three-dot bounce indicator, a lighter alternative to Loader for
// inline pending states. The zero value renders at medium size.
type Dots struct {
	app.Compo
	Size string // "sm", "md" or "lg"; empty means md
}

func dotsSizeClass(size string) string {
	switch size {
	case "sm":
		return "dots-sm"
	case "lg":
		return "dots-lg"
	default:
		return "dots-md"
	}
}

func (d *Dots) Render() app.UI {
	dots := make([]app.UI, len(dotDelays))
	for i, delay := range dotDelays {
		dots[i] = app.Div().Class("dot").Style("animation-delay", delay)
	}
	return app.Div().Class("dots " + dotsSizeClass(d.Size)).Body(dots...)
}
