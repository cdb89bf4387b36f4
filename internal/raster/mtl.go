package raster

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// parseMTL parses the MTL subset: "newmtl name" opens a material,
// "map_Kd relative/path.bmp" sets its diffuse texture path, stored as
// written (the loader resolves it relative to the OBJ file's folder).
// Every other directive is ignored.
// The returned map is keyed by material name.
func parseMTL(data []byte) (map[string]string, error) {
	materials := make(map[string]string)
	var current string
	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		switch {
		case strings.HasPrefix(line, "newmtl"):
			current = strings.TrimSpace(line[len("newmtl"):])
			materials[current] = ""
		case strings.HasPrefix(line, "map_Kd"):
			if current == "" {
				return nil, fmt.Errorf("raster: mtl line %d: map_Kd before any newmtl", lineNo)
			}
			materials[current] = strings.TrimSpace(line[len("map_Kd"):])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("raster: reading mtl: %w", err)
	}
	return materials, nil
}
