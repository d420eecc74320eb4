// Package preview draws pixel buffers in a terminal using half-block glyphs,
// two source rows per character cell.
package preview

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/crtavatar/pixel"
)

// halfBlock paints the upper half of a cell in the foreground color; the
// lower half shows the background color.
const halfBlock = '▀'

// Surface is the part of tcell.Screen the renderer draws on.
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// Step returns the integer downsampling factor that fits a w x h buffer on
// a cols x rows surface, counting two pixel rows per cell.
func Step(w, h, cols, rows int) int {
	if cols <= 0 || rows <= 0 {
		return 0
	}
	k := max(1, (w+cols-1)/cols)
	return max(k, (h+2*rows-1)/(2*rows))
}

// Draw renders buf at cell (x0, y0), shrinking it by nearest sampling until
// it fits the surface. It returns the number of columns and rows used.
func Draw(s Surface, buf *pixel.Buffer, x0, y0 int) (cols, rows int) {
	sw, sh := s.Size()
	k := Step(buf.Width(), buf.Height(), sw-x0, sh-y0)
	if k == 0 {
		return 0, 0
	}
	cols = (buf.Width() + k - 1) / k
	rows = ((buf.Height()+k-1)/k + 1) / 2

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := sample(buf, cx*k, 2*cy*k)
			bottom := sample(buf, cx*k, (2*cy+1)*k)
			s.SetContent(x0+cx, y0+cy, halfBlock, nil, cellStyle(top, bottom))
		}
	}
	return cols, rows
}

// sample returns the pixel at (x, y), or black outside the buffer.
func sample(buf *pixel.Buffer, x, y int) pixel.Color {
	if x >= buf.Width() || y >= buf.Height() {
		return pixel.Black
	}
	return buf.GetPixel(x, y)
}

func cellStyle(top, bottom pixel.Color) tcell.Style {
	return tcell.StyleDefault.
		Foreground(rgb(top)).
		Background(rgb(bottom))
}

func rgb(c pixel.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// DrawText writes a single line of text starting at (x, y).
func DrawText(s Surface, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

// Show draws buf with a caption on screen and blocks until a key is
// pressed. The caller owns screen initialization and teardown.
func Show(screen tcell.Screen, buf *pixel.Buffer, caption string) {
	redraw := func() {
		screen.Clear()
		_, rows := Draw(screen, buf, 0, 0)
		DrawText(screen, 0, rows, caption, tcell.StyleDefault.Foreground(tcell.ColorGreen))
		screen.Show()
	}
	redraw()

	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			redraw()
		case *tcell.EventKey:
			return
		case nil:
			return
		}
	}
}

// Run opens the terminal, shows buf until a key is pressed and restores
// the terminal.
func Run(buf *pixel.Buffer, caption string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("preview: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("preview: init screen: %w", err)
	}
	defer screen.Fini()

	Show(screen, buf, caption)
	return nil
}
