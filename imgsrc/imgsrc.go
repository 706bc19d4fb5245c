// Package imgsrc resolves image source strings for the gallery's <img> tags.
//
// Resolution is currently a passthrough for every kind of source. The branches
// are kept separate so remote URLs, site-relative paths and bare names stay
// independently addressable once width/quality-driven rewriting lands.
package imgsrc

import "strings"

// ImageRequest carries an image source plus the display parameters supplied by
// the rendering host. Width and Quality are accepted for compatibility with the
// host's loader convention; they do not affect resolution yet. A Quality of 0
// means unset.
type ImageRequest struct {
	Source  string `json:"src"`
	Width   int    `json:"width"`
	Quality int    `json:"quality,omitempty"`
}

// Resolve returns the URL to render for the given request. It is total over
// all inputs, including the empty source, and has no side effects.
func Resolve(req ImageRequest) string {
	if strings.HasPrefix(req.Source, "http://") || strings.HasPrefix(req.Source, "https://") {
		// Absolute remote URL, serve as-is.
		return req.Source
	}

	if strings.HasPrefix(req.Source, "/") {
		// Site-relative path, the web server handles it.
		return req.Source
	}

	// Bare name, leave it to the browser to resolve against the page URL.
	return req.Source
}
