package piece

// Shape is a row-major occupancy mask with its dimensions.
type Shape struct {
	Mask          []bool
	Width, Height int
}

// Cells calls fn with the box-relative column and row of every occupied cell. Iteration
// stops early when fn returns false.
func (s Shape) Cells(fn func(col, row int) bool) {
	for i, filled := range s.Mask {
		if !filled {
			continue
		}
		if !fn(i%s.Width, i/s.Width) {
			return
		}
	}
}

// TrimSpace removes empty rows and columns from the shape
func (s Shape) TrimSpace() Shape {
	minX, minY, maxX, maxY := s.Width, s.Height, -1, -1
	s.Cells(func(x, y int) bool {
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
		return true
	})
	if maxX < 0 {
		return Shape{}
	}
	newWidth := maxX - minX + 1
	newHeight := maxY - minY + 1
	newMask := make([]bool, newWidth*newHeight)
	for i := range newMask {
		x := i % newWidth
		y := i / newWidth
		newMask[i] = s.Mask[(y+minY)*s.Width+x+minX]
	}
	return Shape{Mask: newMask, Width: newWidth, Height: newHeight}
}
