package ui

import (
	"encoding/json"
	"net/http"

	"lumen/sysinfo"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

// StatusBar shows the serving host's name, platform and uptime in the page
// footer. It renders a small dot indicator until the status arrives and a
// fallback label when the fetch fails.
type StatusBar struct {
	app.Compo
	Status  sysinfo.Status
	Loading bool
	Err     string
}

func (s *StatusBar) OnMount(ctx app.Context) {
	s.Loading = true
	go func() {
		resp, err := http.Get("/api/status")
		if err != nil {
			s.fail(ctx, "Failed to fetch status: "+err.Error())
			return
		}
		defer resp.Body.Close()

		var status sysinfo.Status
		if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
			s.fail(ctx, "Failed to decode status: "+err.Error())
			return
		}

		ctx.Dispatch(func(ctx app.Context) {
			s.Status = status
			s.Loading = false
			s.Err = ""
			s.Update()
		})
	}()
}

func (s *StatusBar) fail(ctx app.Context, msg string) {
	app.Log(msg)
	ctx.Dispatch(func(ctx app.Context) {
		s.Err = msg
		s.Loading = false
		s.Update()
	})
}

func (s *StatusBar) Render() app.UI {
	return app.Footer().Class("status-bar").Body(
		app.If(s.Loading,
			&Dots{Size: "sm"},
		).ElseIf(s.Err != "",
			app.Span().Class("status-error").Text("Status unavailable"),
		).Else(
			app.Span().Class("status-host").Text(s.Status.Hostname),
			app.Span().Class("status-platform").Text(s.Status.Platform),
			app.Span().Class("status-uptime").Text("up "+s.Status.UptimeString),
		),
	)
}
