// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geo implements the compression-site axis frame and the
// classification of mesh nodes into axial bands
package geo

import "math"

// Dot computes the dot product of two 3D vectors
func Dot(u, v []float64) float64 {
	return u[0]*v[0] + u[1]*v[1] + u[2]*v[2]
}

// Norm computes the Euclidean norm of a 3D vector
func Norm(v []float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Sub returns the difference u - v of two 3D vectors
func Sub(u, v []float64) []float64 {
	return []float64{u[0] - v[0], u[1] - v[1], u[2] - v[2]}
}

// Unit returns the unit vector parallel to v; a zero-length v maps to the zero vector
func Unit(v []float64) []float64 {
	mag := Norm(v)
	if mag == 0 {
		return []float64{0, 0, 0}
	}
	return []float64{v[0] / mag, v[1] / mag, v[2] / mag}
}

// Dist computes the distance between two 3D points
func Dist(u, v []float64) float64 {
	dx := u[0] - v[0]
	dy := u[1] - v[1]
	dz := u[2] - v[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
