package hanoi_test

import (
	"testing"

	"github.com/katalvlaran/lvlstack/hanoi"
)

// BenchmarkSolve_16 measures a 16-disk transfer (65,535 moves) without
// recording the move log. Towers are rebuilt outside the timer.
func BenchmarkSolve_16(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		src, dst, aux := hanoi.NewDiskStack("A"), hanoi.NewDiskStack("C"), hanoi.NewDiskStack("B")
		_ = src.Fill(16)
		b.StartTimer()

		_, _ = hanoi.Solve(16, src, dst, aux, hanoi.WithRecordMoves(false))
	}
}
