package math

import (
	"math"
	"testing"
)

func TestVec3Add(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{3, 4, 5}
	got := a.Add(b)
	want := Vec3{4, 6, 8}
	if got != want {
		t.Errorf("Vec3.Add() = %v, want %v", got, want)
	}
}

func TestVec3Mul(t *testing.T) {
	got := Vec3{1, 2, 3}.Mul(Vec3{0.5, 0, 2})
	want := Vec3{0.5, 0, 6}
	if got != want {
		t.Errorf("Vec3.Mul() = %v, want %v", got, want)
	}
}

func TestVec3Length(t *testing.T) {
	v := Vec3{2, 3, 6}
	if got := v.Length(); got != 7 {
		t.Errorf("Vec3.Length() = %v, want 7", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	vectors := []Vec3{
		{3, 4, 0},
		{-1, 2, -3},
		{1e-8, 0, 0},
		{1e8, -1e8, 5},
	}
	for _, v := range vectors {
		l := v.Normalize().Length()
		if math.Abs(l-1) > 1e-12 {
			t.Errorf("Vec3%v.Normalize().Length() = %v, want 1", v, l)
		}
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	got := Vec3{}.Normalize()
	if !got.IsZero() {
		t.Errorf("Vec3{}.Normalize() = %v, want zero vector", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Reflect(t *testing.T) {
	normals := []Vec3{
		{0, 1, 0},
		Vec3{1, 1, 0}.Normalize(),
		Vec3{-2, 3, 7}.Normalize(),
	}
	incident := []Vec3{
		{1, -1, 0},
		{0.3, 0.2, -5},
		{-4, -4, 1},
	}
	for _, n := range normals {
		for _, i := range incident {
			r := i.Reflect(n)
			if math.Abs(r.Dot(n)+i.Dot(n)) > 1e-12 {
				t.Errorf("reflect(%v, %v)·N = %v, want %v", i, n, r.Dot(n), -i.Dot(n))
			}
			if math.Abs(r.Length()-i.Length()) > 1e-12 {
				t.Errorf("reflect(%v, %v) changed length: %v vs %v", i, n, r.Length(), i.Length())
			}
		}
	}
}

func TestVec3Clamp01(t *testing.T) {
	got := Vec3{-0.5, 0.25, 7}.Clamp01()
	want := Vec3{0, 0.25, 1}
	if got != want {
		t.Errorf("Vec3.Clamp01() = %v, want %v", got, want)
	}
}

func TestVec3Distance(t *testing.T) {
	if got := (Vec3{1, 1, 1}).Distance(Vec3{1, 1, 4}); got != 3 {
		t.Errorf("Vec3.Distance() = %v, want 3", got)
	}
}
