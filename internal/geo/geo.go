// Package geo parses positions given to the builder into map points.
package geo

import (
	"errors"
	"strconv"
	"strings"

	"github.com/OCAP2/missionbuilder/pkg/core"
	"github.com/wroge/wgs84"
)

// ErrInvalidCoordinates is returned when the coordinates are invalid
var ErrInvalidCoordinates = errors.New("invalid coordinates provided")

// ParsePoint parses a string in the format "x,y" or "x,y,elev" into a map point.
// Elevation and any further components are ignored.
func ParsePoint(coords string) (core.Point, error) {
	coordsSplit := strings.Split(coords, ",")
	if len(coordsSplit) < 2 {
		return core.Point{}, ErrInvalidCoordinates
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(coordsSplit[0]), 64)
	if err != nil {
		return core.Point{}, ErrInvalidCoordinates
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(coordsSplit[1]), 64)
	if err != nil {
		return core.Point{}, ErrInvalidCoordinates
	}
	if len(coordsSplit) > 2 {
		if _, err := strconv.ParseFloat(strings.TrimSpace(coordsSplit[2]), 64); err != nil {
			return core.Point{}, ErrInvalidCoordinates
		}
	}
	return core.Point{X: x, Y: y}, nil
}

// PointFromLatLong projects a WGS84 longitude/latitude to web mercator (EPSG:3857) meters.
func PointFromLatLong(latitude, longitude float64) core.Point {
	epsg := wgs84.EPSG()
	f := epsg.Transform(4326, 3857)
	x, y, _ := f(longitude, latitude, 0)
	return core.Point{X: x, Y: y}
}
