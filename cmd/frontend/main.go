package main

import (
	"lumen/ui"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

func main() {
	app.Route("/", &ui.Gallery{})

	app.RunWhenOnBrowser()
}
