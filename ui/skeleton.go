package ui

import (
	"strconv"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

const (
	defaultSkeletonCount  = 1
	defaultSkeletonHeight = 80
)

// SkeletonList renders Count placeholder blocks of Height pixels each, used
// while real content is loading. A negative or zero Count renders an empty
// list; a non-positive Height falls back to 80px. NewSkeletonList gives the
// usual single 80px block.
type SkeletonList struct {
	app.Compo
	Count  int
	Height int
}

func NewSkeletonList() *SkeletonList {
	return &SkeletonList{Count: defaultSkeletonCount, Height: defaultSkeletonHeight}
}

func skeletonHeight(height int) int {
	if height <= 0 {
		return defaultSkeletonHeight
	}
	return height
}

func (s *SkeletonList) Render() app.UI {
	height := strconv.Itoa(skeletonHeight(s.Height)) + "px"

	blocks := []app.UI{}
	for i := 0; i < s.Count; i++ {
		blocks = append(blocks, app.Div().Class("skeleton-block").Style("height", height))
	}

	return app.Div().Class("skeleton-list").Body(blocks...)
}
