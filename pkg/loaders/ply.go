// Package loaders reads external assets into world geometry.
package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/patrickzbhe/go-path-tracer/pkg/core"
	"github.com/patrickzbhe/go-path-tracer/pkg/geometry"
)

// LoadPLY reads an ASCII PLY mesh and returns its faces as triangles with
// the given material. Vertex positions are multiplied by scale. Only the
// leading x, y, z vertex properties are used; faces must be triangles.
func LoadPLY(path string, scale float64, material core.Material) (*geometry.HittableList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	nextLine := func() (string, error) {
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" {
				return line, nil
			}
		}
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%s: unexpected end of file", path)
	}

	vertexCount, faceCount := 0, 0
	for {
		line, err := nextLine()
		if err != nil {
			return nil, err
		}
		if line == "end_header" {
			break
		}
		fields := strings.Fields(line)
		if len(fields) == 3 && fields[0] == "element" {
			n, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("%s: bad element count %q", path, fields[2])
			}
			switch fields[1] {
			case "vertex":
				vertexCount = n
			case "face":
				faceCount = n
			}
		}
	}

	vertices := make([]core.Vec3, 0, vertexCount)
	for i := 0; i < vertexCount; i++ {
		line, err := nextLine()
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("%s: vertex %d has %d coordinates", path, i, len(fields))
		}
		var coords [3]float64
		for j := range coords {
			coords[j], err = strconv.ParseFloat(fields[j], 64)
			if err != nil {
				return nil, fmt.Errorf("%s: vertex %d: %w", path, i, err)
			}
		}
		vertices = append(vertices, core.NewVec3(coords[0]*scale, coords[1]*scale, coords[2]*scale))
	}

	triangles := geometry.NewHittableList()
	for i := 0; i < faceCount; i++ {
		line, err := nextLine()
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, fmt.Errorf("%s: face %d is not a triangle", path, i)
		}
		if fields[0] != "3" {
			return nil, fmt.Errorf("%s: face %d has %s vertices, only triangles are supported", path, i, fields[0])
		}

		var idx [3]int
		for j := range idx {
			idx[j], err = strconv.Atoi(fields[j+1])
			if err != nil {
				return nil, fmt.Errorf("%s: face %d: %w", path, i, err)
			}
			if idx[j] < 0 || idx[j] >= len(vertices) {
				return nil, fmt.Errorf("%s: face %d references vertex %d of %d", path, i, idx[j], len(vertices))
			}
		}

		triangles.Add(geometry.NewTriangle(vertices[idx[0]], vertices[idx[1]], vertices[idx[2]], material))
	}

	return triangles, nil
}
