package render

import (
	"fmt"
	"math/rand"
)

// Palette is the curated list of visually distinct route colors, in the
// order they are assigned.
var Palette = []string{
	"#FF0000", "#00FF00", "#0000FF", "#FFFF00", "#FF00FF", "#00FFFF",
	"#FFA500", "#800080", "#008000", "#FFC0CB", "#A52A2A", "#808080",
	"#000080", "#008080", "#800000", "#808000", "#FF6347", "#4682B4",
	"#9ACD32", "#FF1493", "#DC143C", "#00CED1", "#FF8C00", "#9932CC",
}

// Colors returns n hex RGB colors, one per route. The first min(n, 24)
// come from Palette in fixed order; any remainder is a uniformly random
// 24-bit color with no distinctness guarantee.
func Colors(n int) []string {
	colors := make([]string, 0, n)
	for i := 0; i < n && i < len(Palette); i++ {
		colors = append(colors, Palette[i])
	}
	for i := len(Palette); i < n; i++ {
		colors = append(colors, fmt.Sprintf("#%06x", rand.Intn(1<<24)))
	}
	return colors
}
