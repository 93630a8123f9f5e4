package geometry

import (
	"testing"

	"github.com/spaghettifunk/geom3/scalar"
)

func TestNewPoint3(t *testing.T) {
	p := NewPoint3(1.0, 2.0, 3.0)
	if p.X != 1.0 || p.Y != 2.0 || p.Z != 3.0 {
		t.Fatalf("unexpected coordinates: %+v", p)
	}
	if NewPoint3Zero[float64]() != (Point3d{}) {
		t.Fatal("origin not zero")
	}
}

func TestPoint3IndexedAccess(t *testing.T) {
	p := NewPoint3(1.0, 2.0, 3.0)
	for i, want := range []float64{1.0, 2.0, 3.0} {
		if got := p.At(i); got != want {
			t.Errorf("At(%d) = %v, want %v", i, got, want)
		}
	}
	p.Set(2, -4.0)
	if p.Z != -4.0 {
		t.Fatalf("Set(2) produced %+v", p)
	}

	defer func() {
		if recover() == nil {
			t.Error("At(3) did not panic")
		}
	}()
	p.At(3)
}

func TestPoint3SubYieldsDisplacement(t *testing.T) {
	a := NewPoint3(5.0, 7.0, 9.0)
	b := NewPoint3(1.0, 2.0, 3.0)

	d := a.Sub(b)
	if d != NewVec3(4.0, 5.0, 6.0) {
		t.Fatalf("Sub = %+v", d)
	}
	// Adding the displacement back lands on the original point.
	if got := b.Add(d); got != a {
		t.Fatalf("Add(Sub) = %+v, want %+v", got, a)
	}
}

func TestPoint3DistanceFromOrigin(t *testing.T) {
	if got := NewPoint3(2.0, 3.0, 6.0).DistanceFromOrigin(); got != 7.0 {
		t.Errorf("DistanceFromOrigin = %v, want 7", got)
	}
	if got := NewPoint3Zero[float64]().DistanceFromOrigin(); got != 0 {
		t.Errorf("origin distance = %v", got)
	}
}

func TestPoint3Distance(t *testing.T) {
	a := NewPoint3(1.0, 1.0, 1.0)
	b := NewPoint3(1.0, 1.0, 4.0)
	if got := a.Distance(b); got != 3.0 {
		t.Errorf("Distance = %v, want 3", got)
	}
}

func TestPoint3Normalize(t *testing.T) {
	p := NewPoint3(1.0, 2.0, 3.0)
	p.Normalize()
	if !scalar.Compare(p.DistanceFromOrigin(), 1.0, tol) {
		t.Fatalf("normalized distance = %v", p.DistanceFromOrigin())
	}

	origin := NewPoint3Zero[float64]()
	origin.Normalize()
	if origin != (Point3d{}) {
		t.Fatalf("normalizing the origin changed it: %+v", origin)
	}
}

func TestPoint3VectorConversions(t *testing.T) {
	p := NewPoint3(1.0, -2.0, 3.0)
	if p.AsVec3() != NewVec3(1.0, -2.0, 3.0) {
		t.Fatal("AsVec3 mismatch")
	}
	if NewVec3(1.0, -2.0, 3.0).AsPoint3() != p {
		t.Fatal("AsPoint3 mismatch")
	}
}
