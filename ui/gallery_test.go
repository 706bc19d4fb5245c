package ui

import (
	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

// app.Route only accepts app.Composer; a field that shadows one of
// app.Compo's promoted methods silently breaks that contract.
var (
	_ app.Composer = (*Gallery)(nil)
	_ app.Composer = (*StatusBar)(nil)
	_ app.Composer = (*Loader)(nil)
	_ app.Composer = (*Dots)(nil)
	_ app.Composer = (*SkeletonList)(nil)
)
