package main

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"lumen/config"
	"lumen/logger"
	"lumen/sysinfo"
	"lumen/ui"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

func statusHandler(w http.ResponseWriter, r *http.Request) {
	status, err := sysinfo.Collect()
	if err != nil {
		logger.Error("Failed to collect host status: %v", err)
		http.Error(w, "Failed to get host status: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status)
}

var photoExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// photosHandler lists the image files under dir as gallery entries. The
// served URL is always site-relative; imgsrc on the client passes it through.
func photosHandler(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := os.ReadDir(dir)
		if err != nil && !os.IsNotExist(err) {
			logger.Error("Failed to read photo dir %s: %v", dir, err)
			http.Error(w, "Failed to list photos", http.StatusInternalServerError)
			return
		}

		photos := []ui.Photo{}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			name := e.Name()
			ext := strings.ToLower(filepath.Ext(name))
			if !photoExts[ext] {
				continue
			}
			photos = append(photos, ui.Photo{
				Title:  strings.TrimSuffix(name, filepath.Ext(name)),
				Source: "/web/photos/" + name,
			})
		}
		sort.Slice(photos, func(i, j int) bool { return photos[i].Title < photos[j].Title })

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(photos)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)

	// Configure the go-app handler
	handler := &app.Handler{
		Name:        "Lumen",
		Description: "Photo gallery",
		RawHeaders: []string{
			`<link href="https://fonts.googleapis.com/css2?family=Roboto:wght@400;500;700&display=swap" rel="stylesheet">`,
			`<link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Material+Symbols+Rounded:opsz,wght,FILL,GRAD@24,400,0,0" />`,
		},
		LoadingLabel: "",
		Styles: []string{
			"/web/app.css",
		},
	}

	// Register the component on the server side too for correct routing generation
	app.Route("/", &ui.Gallery{})

	http.Handle("/", handler)

	http.HandleFunc("/api/status", statusHandler)
	http.HandleFunc("/api/photos", photosHandler(cfg.PhotoDir))

	logger.Info("Starting Lumen on %s...", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, nil); err != nil {
		logger.Fatal("Server stopped: %v", err)
	}
}
