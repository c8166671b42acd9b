package qrcode

// Matrix is a two-dimensional grid of QR modules. Get reports true for a dark module.
// Width and Height are authoritative: they may exceed the requested size when the
// code does not fit.
type Matrix interface {
	Width() int
	Height() int
	Get(x, y int) bool
}

// moduleMatrix is a row-major bit grid produced by scaling raw modules.
type moduleMatrix struct {
	width  int
	height int
	bits   []bool
}

func (m *moduleMatrix) Width() int  { return m.width }
func (m *moduleMatrix) Height() int { return m.height }

func (m *moduleMatrix) Get(x, y int) bool {
	return m.bits[y*m.width+x]
}

// renderModules scales a [y][x] module grid to width x height the way zxing renders
// its own matrices: a whole number of pixels per module, the code centred, the
// remainder left light. quietZone modules of light border are added on every side.
// The result grows to the code's natural size when the request is smaller.
func renderModules(modules [][]bool, quietZone, width, height int) Matrix {
	rows := len(modules)
	cols := 0
	if rows > 0 {
		cols = len(modules[0])
	}

	inputWidth := cols + 2*quietZone
	inputHeight := rows + 2*quietZone
	outputWidth := max(width, inputWidth)
	outputHeight := max(height, inputHeight)

	multiple := min(outputWidth/inputWidth, outputHeight/inputHeight)
	leftPadding := (outputWidth - cols*multiple) / 2
	topPadding := (outputHeight - rows*multiple) / 2

	m := &moduleMatrix{
		width:  outputWidth,
		height: outputHeight,
		bits:   make([]bool, outputWidth*outputHeight),
	}

	for my, row := range modules {
		oy := topPadding + my*multiple
		for mx, dark := range row {
			if !dark {
				continue
			}
			ox := leftPadding + mx*multiple
			for y := oy; y < oy+multiple; y++ {
				for x := ox; x < ox+multiple; x++ {
					m.bits[y*outputWidth+x] = true
				}
			}
		}
	}

	return m
}
