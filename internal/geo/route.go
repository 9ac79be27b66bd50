package geo

import (
	"encoding/json"
	"fmt"

	"github.com/OCAP2/missionbuilder/pkg/core"
	geom "github.com/peterstace/simplefeatures/geom"
)

// ParseRoute parses a JSON array of coordinates into route points and returns
// the total route length.
// Input format: "[[x1,y1],[x2,y2],...]"
func ParseRoute(input string) ([]core.Point, float64, error) {
	var coords [][]float64
	if err := json.Unmarshal([]byte(input), &coords); err != nil {
		return nil, 0, fmt.Errorf("failed to parse route JSON: %w", err)
	}

	if len(coords) < 2 {
		return nil, 0, fmt.Errorf("route must have at least 2 points, got %d", len(coords))
	}

	points := make([]core.Point, len(coords))
	flatCoords := make([]float64, 0, len(coords)*2)
	for i, coord := range coords {
		if len(coord) < 2 {
			return nil, 0, fmt.Errorf("coordinate %d has insufficient values", i)
		}
		points[i] = core.Point{X: coord[0], Y: coord[1]}
		flatCoords = append(flatCoords, coord[0], coord[1])
	}

	ls, err := geom.NewLineString(geom.NewSequence(flatCoords, geom.DimXY))
	if err != nil {
		return nil, 0, fmt.Errorf("invalid route: %w", err)
	}
	return points, ls.Length(), nil
}
