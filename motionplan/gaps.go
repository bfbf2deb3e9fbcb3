package motionplan

import (
	"sort"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"github.com/samber/lo"

	"go.viam.com/asvplan/referenceframe"
)

// gapRegions finds the vertical bands of free space left between obstacles that share an x coordinate. Each group of
// such obstacles is closed off by zero-height borders at the bottom and top of the workspace; every strictly positive
// interval between consecutive rectangles becomes a gap with the x and width of the rectangle below it.
// Groups are visited in the order their first obstacle appears. The obstacle slice is not modified.
func gapRegions(obstacles []*referenceframe.Obstacle, workspace r2.Rect) []r2.Rect {
	xs := lo.Uniq(lo.Map(obstacles, func(o *referenceframe.Obstacle, _ int) float64 {
		return o.Rect.X.Lo
	}))
	groups := lo.GroupBy(obstacles, func(o *referenceframe.Obstacle) float64 {
		return o.Rect.X.Lo
	})

	gaps := []r2.Rect{}
	for _, x := range xs {
		group := groups[x]
		width := group[0].Rect.X.Length()
		rects := []r2.Rect{
			{X: r1.Interval{Lo: x, Hi: x + width}, Y: r1.Interval{Lo: workspace.Y.Lo, Hi: workspace.Y.Lo}},
			{X: r1.Interval{Lo: x, Hi: x + width}, Y: r1.Interval{Lo: workspace.Y.Hi, Hi: workspace.Y.Hi}},
		}
		for _, o := range group {
			rects = append(rects, o.Rect)
		}
		sort.SliceStable(rects, func(i, j int) bool {
			return rects[i].Y.Lo < rects[j].Y.Lo
		})
		for i := 1; i < len(rects); i++ {
			below := rects[i-1]
			height := rects[i].Y.Lo - below.Y.Hi
			if height > 0 {
				gaps = append(gaps, r2.Rect{X: below.X, Y: r1.Interval{Lo: below.Y.Hi, Hi: below.Y.Hi + height}})
			}
		}
	}
	return gaps
}

// tallestGap returns the first gap of greatest height.
func tallestGap(gaps []r2.Rect) (r2.Rect, bool) {
	if len(gaps) == 0 {
		return r2.EmptyRect(), false
	}
	return lo.MaxBy(gaps, func(a, b r2.Rect) bool {
		return a.Y.Length() > b.Y.Length()
	}), true
}
