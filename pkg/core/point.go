// pkg/core/point.go
package core

import (
	"math"

	geom "github.com/peterstace/simplefeatures/geom"
)

// Point is a position on the theatre map, in meters.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Geometry returns the point as a simplefeatures geometry. It fails for
// non-finite coordinates.
func (p Point) Geometry() (geom.Geometry, error) {
	pt, err := geom.NewPoint(geom.Coordinates{
		XY:   geom.XY{X: p.X, Y: p.Y},
		Type: geom.DimXY,
	})
	if err != nil {
		return geom.Geometry{}, err
	}
	return pt.AsGeometry(), nil
}

// DistanceTo returns the planar distance between p and q, or +Inf when either
// point has non-finite coordinates.
func (p Point) DistanceTo(q Point) float64 {
	g1, err := p.Geometry()
	if err != nil {
		return math.Inf(1)
	}
	g2, err := q.Geometry()
	if err != nil {
		return math.Inf(1)
	}
	d, ok := geom.Distance(g1, g2)
	if !ok {
		return math.Inf(1)
	}
	return d
}
