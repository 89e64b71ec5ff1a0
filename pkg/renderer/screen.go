package renderer

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/patrickzbhe/go-path-tracer/pkg/core"
)

// Screen is a pixel buffer addressed by (row, col), with row 0 at the
// bottom of the image
type Screen struct {
	Width  int
	Height int
	pixels []core.Vec3
}

// NewScreen creates a black screen of the given dimensions
func NewScreen(width, height int) *Screen {
	return &Screen{
		Width:  width,
		Height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Update stores a color at the given pixel
func (s *Screen) Update(row, col int, color core.Vec3) {
	s.pixels[row*s.Width+col] = color
}

// Get returns the color stored at the given pixel
func (s *Screen) Get(row, col int) core.Vec3 {
	return s.pixels[row*s.Width+col]
}

// WritePPM writes the screen as plain-text PPM (P3), top row first.
// Colors are expected to already be gamma-corrected and in [0, 1).
func (s *Screen) WritePPM(w io.Writer) error {
	buf := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(buf, "P3\n%d %d\n255\n", s.Width, s.Height); err != nil {
		return err
	}

	for row := s.Height - 1; row >= 0; row-- {
		for col := 0; col < s.Width; col++ {
			c := s.Get(row, col)
			ir := int(256 * c.X)
			ig := int(256 * c.Y)
			ib := int(256 * c.Z)
			if _, err := fmt.Fprintf(buf, "%d %d %d\n", ir, ig, ib); err != nil {
				return err
			}
		}
	}

	return buf.Flush()
}

// WritePPMFile writes the screen to a PPM file at the given path
func (s *Screen) WritePPMFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := s.WritePPM(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReadPPM parses a plain-text PPM (P3) image into a screen, normalizing
// channel values to [0, 1]. Comments and arbitrary whitespace between
// tokens are accepted.
func ReadPPM(r io.Reader) (*Screen, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(scanPPMTokens)

	next := func() (string, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		return scanner.Text(), nil
	}

	magic, err := next()
	if err != nil {
		return nil, err
	}
	if magic != "P3" {
		return nil, fmt.Errorf("unsupported PPM magic %q", magic)
	}

	var width, height, maxVal int
	for _, dst := range []*int{&width, &height, &maxVal} {
		tok, err := next()
		if err != nil {
			return nil, err
		}
		if _, err := fmt.Sscanf(tok, "%d", dst); err != nil {
			return nil, fmt.Errorf("parsing PPM header token %q: %w", tok, err)
		}
	}
	if width <= 0 || height <= 0 || maxVal <= 0 {
		return nil, fmt.Errorf("invalid PPM header %dx%d max %d", width, height, maxVal)
	}

	screen := NewScreen(width, height)
	scale := 1.0 / float64(maxVal)

	for row := height - 1; row >= 0; row-- {
		for col := 0; col < width; col++ {
			var rgb [3]int
			for i := range rgb {
				tok, err := next()
				if err != nil {
					return nil, err
				}
				if _, err := fmt.Sscanf(tok, "%d", &rgb[i]); err != nil {
					return nil, fmt.Errorf("parsing PPM sample %q: %w", tok, err)
				}
			}
			screen.Update(row, col, core.NewVec3(
				float64(rgb[0])*scale,
				float64(rgb[1])*scale,
				float64(rgb[2])*scale,
			))
		}
	}

	return screen, nil
}

// ReadPPMFile reads a PPM file into a screen
func ReadPPMFile(path string) (*Screen, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	screen, err := ReadPPM(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return screen, nil
}

// scanPPMTokens splits on whitespace and drops '#' comments through
// end of line
func scanPPMTokens(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) {
		switch data[start] {
		case ' ', '\t', '\r', '\n':
			start++
		case '#':
			for start < len(data) && data[start] != '\n' {
				start++
			}
		default:
			goto scan
		}
	}
	if atEOF {
		return len(data), nil, nil
	}
	return start, nil, nil

scan:
	for i := start; i < len(data); i++ {
		switch data[i] {
		case ' ', '\t', '\r', '\n', '#':
			return i, data[start:i], nil
		}
	}
	if atEOF {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}
