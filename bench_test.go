// SPDX-License-Identifier: MIT
// Package matrix_test: benchmarks for the hot kernels. Shapes are kept small
// and fixed so runs are comparable; Det sizes stay tiny because cofactor
// expansion is factorial-time.
package matrix_test

import (
	"testing"

	"github.com/lvlmath/matrix"
)

// benchMatrix builds an n×n matrix with a deterministic non-zero fill.
func benchMatrix(n int) *matrix.Matrix[int] {
	m, _ := matrix.NewZeros[int](n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = m.Set(i, j, (i+1)*(j+2)%7+1) // small values, no zeros
		}
	}
	return m
}

func BenchmarkAdd64(b *testing.B) {
	x := benchMatrix(64)
	y := benchMatrix(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Add(x, y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMul64(b *testing.B) {
	x := benchMatrix(64)
	y := benchMatrix(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Mul(x, y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTransposed64(b *testing.B) {
	x := benchMatrix(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Transposed(x); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkChoose(b *testing.B) {
	x := benchMatrix(64)
	rows := []int{0, 7, 13, 21, 40, 63}
	cols := []int{1, 2, 3, 5, 8, 13, 21, 34, 55}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.Choose(rows, cols); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDet8(b *testing.B) {
	x := benchMatrix(8) // 8! minor evaluations per iteration
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.Det(); err != nil {
			b.Fatal(err)
		}
	}
}
