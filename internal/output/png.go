package output

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
)

// DefaultCellSize is the edge length of one cell in pixels.
const DefaultCellSize = 20

var pngColors = map[Paint]color.RGBA{
	PaintExplored: {0, 120, 255, 255},
	PaintWall:     {0, 0, 0, 255},
	PaintPath:     {160, 32, 240, 255},
	PaintStart:    {0, 255, 0, 255},
	PaintTarget:   {255, 0, 0, 255},
}

var (
	pngBackground = color.RGBA{255, 255, 255, 255}
	pngGridLine   = color.RGBA{200, 200, 200, 255}
)

// PNGRenderer writes every frame to dir as frame_00001.png, frame_00002.png, ...
type PNGRenderer struct {
	dir      string
	cellSize int
	written  []string
}

// NewPNGRenderer creates dir if needed.
func NewPNGRenderer(dir string, cellSize int) (*PNGRenderer, error) {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create frame directory: %w", err)
	}
	return &PNGRenderer{dir: dir, cellSize: cellSize}, nil
}

// Render implements Renderer.
func (p *PNGRenderer) Render(frame Frame) error {
	dc := p.draw(frame)
	path := filepath.Join(p.dir, fmt.Sprintf("frame_%05d.png", frame.Step))
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	p.written = append(p.written, path)
	return nil
}

// Written lists the files produced so far.
func (p *PNGRenderer) Written() []string {
	return p.written
}

func (p *PNGRenderer) draw(frame Frame) *gg.Context {
	size := float64(p.cellSize)
	rows, cols := frame.Grid.Rows(), frame.Grid.Cols()
	dc := gg.NewContext(cols*p.cellSize, rows*p.cellSize)

	dc.SetColor(pngBackground)
	dc.Clear()

	dc.SetColor(pngGridLine)
	dc.SetLineWidth(1)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			dc.DrawRectangle(float64(c)*size, float64(r)*size, size, size)
		}
	}
	dc.Stroke()

	for r, row := range frame.Paints() {
		for c, paint := range row {
			fill, ok := pngColors[paint]
			if !ok {
				continue
			}
			dc.SetColor(fill)
			dc.DrawRectangle(float64(c)*size, float64(r)*size, size, size)
			dc.Fill()
		}
	}
	return dc
}
