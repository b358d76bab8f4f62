// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equil

// RHS computes dy/dx = f(x, y)
type RHS func(x, y float64) float64

// RK4IVP solves the scalar initial value problem dy/dx = f(x, y), y(x0) = y0, with the
// classical fixed-step Runge-Kutta method on both sides of x0 across a span. Values
// between steps are computed by cubic Hermite interpolation of the stored (y, f) pairs,
// so the solution is exact at x0
type RK4IVP struct {
	X0   float64    // anchor
	Y0   float64    // value at anchor
	Span [2]float64 // [xmin, xmax] with xmin ≤ x0 ≤ xmax
	lo   branch     // from x0 towards xmin
	hi   branch     // from x0 towards xmax
}

// branch holds the samples of one side
type branch struct {
	h float64   // step size (negative towards xmin)
	y []float64 // [n+1] solution
	f []float64 // [n+1] derivative
}

// NewRK4IVP integrates f from (x0, y0) with n steps on each side. The span is extended
// to include x0
func NewRK4IVP(f RHS, span [2]float64, x0, y0 float64, n int) *RK4IVP {
	if n < 1 {
		n = 1
	}
	span[0] = min(span[0], x0)
	span[1] = max(span[1], x0)
	o := &RK4IVP{X0: x0, Y0: y0, Span: span}
	o.lo = integrate(f, x0, y0, span[0], n)
	o.hi = integrate(f, x0, y0, span[1], n)
	return o
}

// integrate runs n RK4 steps from (x0, y0) to x1
func integrate(f RHS, x0, y0, x1 float64, n int) (b branch) {
	if x1 == x0 {
		return
	}
	b.h = (x1 - x0) / float64(n)
	b.y = make([]float64, n+1)
	b.f = make([]float64, n+1)
	h, h2, h6 := b.h, b.h/2, b.h/6
	b.y[0] = y0
	b.f[0] = f(x0, y0)
	for i := 0; i < n; i++ {
		x := x0 + float64(i)*h
		y := b.y[i]
		k1 := b.f[i]
		k2 := f(x+h2, y+h2*k1)
		k3 := f(x+h2, y+h2*k2)
		k4 := f(x+h, y+h*k3)
		b.y[i+1] = y + h6*(k1+2*(k2+k3)+k4)
		b.f[i+1] = f(x+h, b.y[i+1])
	}
	return
}

// Eval computes y(x). Points outside the span take the value at the nearest end
func (o *RK4IVP) Eval(x float64) float64 {
	b := o.hi
	if x < o.X0 {
		b = o.lo
	}
	if b.h == 0 {
		return o.Y0
	}
	n := len(b.y) - 1
	t := (x - o.X0) / b.h
	if t >= float64(n) {
		return b.y[n]
	}
	i := int(t)
	s := t - float64(i)
	s2, s3 := s*s, s*s*s
	h00 := 2*s3 - 3*s2 + 1
	h10 := s3 - 2*s2 + s
	h01 := -2*s3 + 3*s2
	h11 := s3 - s2
	return h00*b.y[i] + h10*b.h*b.f[i] + h01*b.y[i+1] + h11*b.h*b.f[i+1]
}
