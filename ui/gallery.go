package ui

import (
	"encoding/json"
	"net/http"

	"lumen/imgsrc"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

// Photo is one entry of the /api/photos response.
type Photo struct {
	Title  string `json:"title"`
	Source string `json:"src"`
	Width  int    `json:"width"`
}

// Gallery is the root page: a photo grid fed by the backend, with a skeleton
// placeholder on refresh and a fullscreen loader on first mount.
type Gallery struct {
	app.Compo
	Photos  []Photo
	Loading bool
	Loaded  bool
	Err     string
}

func (g *Gallery) OnMount(ctx app.Context) {
	g.Loading = true
	g.fetchPhotos(ctx)
}

func (g *Gallery) fetchPhotos(ctx app.Context) {
	go func() {
		resp, err := http.Get("/api/photos")
		if err != nil {
			g.fail(ctx, "Failed to fetch photos: "+err.Error())
			return
		}
		defer resp.Body.Close()

		var photos []Photo
		if err := json.NewDecoder(resp.Body).Decode(&photos); err != nil {
			g.fail(ctx, "Failed to decode photos: "+err.Error())
			return
		}

		ctx.Dispatch(func(ctx app.Context) {
			g.Photos = photos
			g.Loading = false
			g.Loaded = true
			g.Err = ""
			g.Update()
		})
	}()
}

func (g *Gallery) fail(ctx app.Context, msg string) {
	app.Log(msg)
	ctx.Dispatch(func(ctx app.Context) {
		g.Err = msg
		g.Loading = false
		g.Loaded = true
		g.Update()
	})
}

func (g *Gallery) onRefresh(ctx app.Context, e app.Event) {
	g.Loading = true
	g.Update()
	g.fetchPhotos(ctx)
}

func (g *Gallery) Render() app.UI {
	if g.Loading && !g.Loaded {
		// First paint, nothing to show behind the overlay yet.
		return &Loader{Size: "large", Text: "Loading gallery...", Fullscreen: true}
	}

	return app.Main().Class("gallery").Body(
		app.Header().Class("gallery-header").Body(
			app.H1().Class("gallery-title").Text("Lumen"),
			app.Button().Class("btn-icon").Title("Refresh").OnClick(g.onRefresh).Body(
				app.Span().Class("material-symbols-rounded").Text("refresh"),
			),
		),
		app.If(g.Loading,
			&SkeletonList{Count: 6, Height: 160},
		).ElseIf(g.Err != "",
			app.Div().Class("gallery-error").Text(g.Err),
		).ElseIf(len(g.Photos) == 0,
			app.Div().Class("gallery-empty").Text("No photos yet"),
		).Else(
			app.Div().Class("photo-grid").Body(
				app.Range(g.Photos).Slice(func(i int) app.UI {
					p := g.Photos[i]
					src := imgsrc.Resolve(imgsrc.ImageRequest{Source: p.Source, Width: p.Width})
					return app.Div().Class("photo-card").Body(
						app.Img().Class("photo-img").Alt(p.Title).Src(src),
						app.Div().Class("photo-title").Text(p.Title),
					)
				}),
			),
		),
		&StatusBar{},
	)
}
