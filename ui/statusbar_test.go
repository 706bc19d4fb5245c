package ui

import (
	"testing"
	"time"

	"lumen/sysinfo"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// settleStatusBar consumes dispatches until the background fetch started by
// OnMount has failed and cleared Loading, so it cannot override state driven
// by the test afterwards.
func settleStatusBar(t *testing.T, disp app.ClientDispatcher, bar *StatusBar) {
	t.Helper()
	disp.Consume()
	for i := 0; i < 100 && bar.Loading; i++ {
		time.Sleep(time.Millisecond)
		disp.Consume()
	}
	require.False(t, bar.Loading, "status bar never left the loading state")
}

func TestStatusBarLoaded(t *testing.T) {
	bar := &StatusBar{}
	disp := app.NewClientTester(bar)
	defer disp.Close()
	settleStatusBar(t, disp, bar)

	disp.Dispatch(app.Dispatch{
		Mode:   app.Update,
		Source: bar,
		Function: func(ctx app.Context) {
			bar.Status = sysinfo.Status{
				Hostname:     "web1",
				Platform:     "ubuntu 24.04",
				UptimeString: "3d 4h",
			}
			bar.Loading = false
			bar.Err = ""
		},
	})
	disp.Consume()

	require.NoError(t, app.TestMatch(bar, app.TestUIDescriptor{
		Path:     app.TestPath(0, 0),
		Expected: app.Span().Class("status-host"),
	}))
	require.NoError(t, app.TestMatch(bar, app.TestUIDescriptor{
		Path:     app.TestPath(0, 0, 0),
		Expected: app.Text("web1"),
	}))
	require.NoError(t, app.TestMatch(bar, app.TestUIDescriptor{
		Path:     app.TestPath(0, 2),
		Expected: app.Span().Class("status-uptime"),
	}))
	require.NoError(t, app.TestMatch(bar, app.TestUIDescriptor{
		Path:     app.TestPath(0, 2, 0),
		Expected: app.Text("up 3d 4h"),
	}))
}

func TestStatusBarFetchFailureFallback(t *testing.T) {
	// A failed fetch must leave the loading state, not spin forever.
	bar := &StatusBar{}
	disp := app.NewClientTester(bar)
	defer disp.Close()
	settleStatusBar(t, disp, bar)

	disp.Dispatch(app.Dispatch{
		Mode:   app.Update,
		Source: bar,
		Function: func(ctx app.Context) {
			bar.Err = "Failed to fetch status: connection refused"
			bar.Loading = false
		},
	})
	disp.Consume()

	require.NoError(t, app.TestMatch(bar, app.TestUIDescriptor{
		Path:     app.TestPath(0, 0),
		Expected: app.Span().Class("status-error"),
	}))
	require.NoError(t, app.TestMatch(bar, app.TestUIDescriptor{
		Path:     app.TestPath(0, 0, 0),
		Expected: app.Text("Status unavailable"),
	}))
	assert.Error(t, app.TestMatch(bar, app.TestUIDescriptor{
		Path:     app.TestPath(0, 1),
		Expected: app.Span(),
	}))
}
