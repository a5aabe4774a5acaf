package assets

import (
	"image"

	"github.com/automoto/mobspawn/config"
)

// AtlasLayout is a uniform grid of cells over a sprite sheet, indexed
// row-major from the top-left cell.
type AtlasLayout struct {
	CellWidth  int
	CellHeight int
	Columns    int
	Rows       int
}

// NewGridLayout builds the layout described by the atlas configuration.
func NewGridLayout(c config.AtlasConfig) AtlasLayout {
	return AtlasLayout{
		CellWidth:  c.CellWidth,
		CellHeight: c.CellHeight,
		Columns:    c.Columns,
		Rows:       c.Rows,
	}
}

func (l AtlasLayout) Len() int {
	return l.Columns * l.Rows
}

// Frame returns the source rectangle of cell index.
func (l AtlasLayout) Frame(index int) (image.Rectangle, bool) {
	if index < 0 || index >= l.Len() {
		return image.Rectangle{}, false
	}
	x := (index % l.Columns) * l.CellWidth
	y := (index / l.Columns) * l.CellHeight
	return image.Rect(x, y, x+l.CellWidth, y+l.CellHeight), true
}
