package render

import "image/color"

// Colours of the classic board: black dead cells, lime green live cells and
// dark slate gray grid lines.
var (
	DeadColor = color.RGBA{A: 255}
	LiveColor = color.RGBA{R: 50, G: 205, B: 50, A: 255}
	LineColor = color.RGBA{R: 47, G: 79, B: 79, A: 255}
)
