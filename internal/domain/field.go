package domain

// Field is the playing area in pixels. Width and Height are multiples of
// CellSize; every legal coordinate is a cell origin inside it.
type Field struct {
	Width    int
	Height   int
	CellSize int
}

func NewField(width, height, cellSize int) Field {
	return Field{
		Width:    width,
		Height:   height,
		CellSize: cellSize,
	}
}

func (f Field) Cols() int {
	if f.CellSize <= 0 {
		return 0
	}
	return f.Width / f.CellSize
}

func (f Field) Rows() int {
	if f.CellSize <= 0 {
		return 0
	}
	return f.Height / f.CellSize
}

func (f Field) Contains(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < f.Width && c.Y < f.Height
}

// Cell converts a pixel coordinate into column/row indices.
func (f Field) Cell(c Coord) (col, row int) {
	if f.CellSize <= 0 {
		return 0, 0
	}
	return c.X / f.CellSize, c.Y / f.CellSize
}

// Origin is the pixel coordinate of the given column/row.
func (f Field) Origin(col, row int) Coord {
	return Coord{X: col * f.CellSize, Y: row * f.CellSize}
}

func (f Field) Move(c Coord, d Direction) Coord {
	return c.Add(d.Delta().Scale(f.CellSize))
}
