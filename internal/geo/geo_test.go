package geo

import (
	"errors"
	"math"
	"testing"
)

func TestParsePoint_Valid(t *testing.T) {
	p, err := ParsePoint("100.5,200.25")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.X != 100.5 {
		t.Errorf("expected X=100.5, got %f", p.X)
	}
	if p.Y != 200.25 {
		t.Errorf("expected Y=200.25, got %f", p.Y)
	}
}

func TestParsePoint_WithElevationAndSpaces(t *testing.T) {
	p, err := ParsePoint(" -100.5, -200.25 , 50")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.X != -100.5 || p.Y != -200.25 {
		t.Errorf("unexpected point %+v", p)
	}
}

func TestParsePoint_ScientificNotation(t *testing.T) {
	p, err := ParsePoint("1e2,2e3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.X != 100 || p.Y != 2000 {
		t.Errorf("unexpected point %+v", p)
	}
}

func TestParsePoint_Invalid(t *testing.T) {
	for _, in := range []string{"", "100.5", "abc,200", "100,xyz", "100,200,invalid"} {
		_, err := ParsePoint(in)
		if !errors.Is(err, ErrInvalidCoordinates) {
			t.Errorf("%q: expected ErrInvalidCoordinates, got %v", in, err)
		}
	}
}

func TestPointFromLatLong(t *testing.T) {
	origin := PointFromLatLong(0, 0)
	if math.Abs(origin.X) > 1e-6 || math.Abs(origin.Y) > 1e-6 {
		t.Errorf("expected origin, got %+v", origin)
	}

	// 1 degree of longitude at the equator is ~111.32 km in web mercator
	p := PointFromLatLong(0, 1)
	if math.Abs(p.X-111319.49) > 1 {
		t.Errorf("expected X~111319, got %f", p.X)
	}
	if p.Y != 0 && math.Abs(p.Y) > 1e-6 {
		t.Errorf("expected Y~0, got %f", p.Y)
	}

	north := PointFromLatLong(45, 0)
	if north.Y <= 0 {
		t.Errorf("expected positive northing, got %f", north.Y)
	}
}

func TestParseRoute(t *testing.T) {
	points, length, err := ParseRoute("[[0,0],[3,4],[3,10]]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	if points[1].X != 3 || points[1].Y != 4 {
		t.Errorf("unexpected second point %+v", points[1])
	}
	if math.Abs(length-11) > 1e-9 {
		t.Errorf("expected length 11, got %f", length)
	}
}

func TestParseRoute_Invalid(t *testing.T) {
	for _, in := range []string{"not json", "[[1,2]]", "[[1,2],[3]]", "[[5,5],[5,5]]"} {
		if _, _, err := ParseRoute(in); err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}
