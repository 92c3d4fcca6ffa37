package model_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sheikhrachel/gameoflife/model"
)

// gridFrom builds a grid from rows of '@' and ' '
func gridFrom(rows ...string) *model.Grid {
	g := model.NewGrid(len(rows[0]), len(rows))
	for i, row := range rows {
		for j, c := range row {
			g.Set(i, j, c == '@')
		}
	}
	return g
}

func rowsOf(g *model.Grid) []string {
	return strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
}

var _ = Describe("CountNeighbors", func() {
	It("counts all eight neighbors in the interior", func() {
		g := gridFrom(
			"@@@",
			"@@@",
			"@@@",
		)
		Expect(g.CountNeighbors(1, 1)).To(Equal(8))
	})

	It("leaves positions beyond the edge out of the count", func() {
		g := gridFrom(
			"@@@",
			"@@@",
			"@@@",
		)
		Expect(g.CountNeighbors(0, 0)).To(Equal(3))
		Expect(g.CountNeighbors(0, 1)).To(Equal(5))
		Expect(g.CountNeighbors(2, 2)).To(Equal(3))
	})

	It("does not wrap around the edges", func() {
		g := gridFrom(
			"@  ",
			"   ",
			"  @",
		)
		Expect(g.CountNeighbors(0, 2)).To(BeZero())
		Expect(g.CountNeighbors(2, 0)).To(BeZero())
	})

	It("handles a single cell grid", func() {
		g := gridFrom("@")
		Expect(g.CountNeighbors(0, 0)).To(BeZero())
	})
})

var _ = Describe("Step", func() {
	It("keeps the grid dimensions", func() {
		g := model.NewRandomGrid(7, 5, model.NewSeededRand(3))
		next := model.Step(g)
		Expect(next.Width()).To(Equal(7))
		Expect(next.Height()).To(Equal(5))
	})

	It("kills an isolated cell", func() {
		next := model.Step(gridFrom(
			"   ",
			" @ ",
			"   ",
		))
		Expect(next.CountLivingCells()).To(BeZero())
	})

	It("brings a dead cell with three neighbors to life", func() {
		next := model.Step(gridFrom(
			"@ @",
			"   ",
			" @ ",
		))
		Expect(next.Get(1, 1)).To(BeTrue())
	})

	It("keeps a living cell with three neighbors alive", func() {
		next := model.Step(gridFrom(
			"@ @",
			" @ ",
			" @ ",
		))
		Expect(next.Get(1, 1)).To(BeTrue())
	})

	It("kills a living cell with four or more neighbors", func() {
		next := model.Step(gridFrom(
			"@ @",
			" @ ",
			"@ @",
		))
		Expect(next.Get(1, 1)).To(BeFalse())
	})

	It("leaves a block unchanged", func() {
		block := gridFrom(
			"    ",
			" @@ ",
			" @@ ",
			"    ",
		)
		Expect(model.Step(block).Equal(block)).To(BeTrue())
	})

	It("leaves a block in a corner unchanged", func() {
		block := gridFrom(
			"@@ ",
			"@@ ",
			"   ",
		)
		Expect(model.Step(block).Equal(block)).To(BeTrue())
	})

	It("flips a blinker with period two", func() {
		horizontal := gridFrom(
			"     ",
			"     ",
			" @@@ ",
			"     ",
			"     ",
		)
		vertical := model.Step(horizontal)
		Expect(rowsOf(vertical)).To(Equal([]string{
			"     ",
			"  @  ",
			"  @  ",
			"  @  ",
			"     ",
		}))
		Expect(model.Step(vertical).Equal(horizontal)).To(BeTrue())
	})

	It("settles a glider into a block at the fixed boundary", func() {
		g := gridFrom(
			" @    ",
			"  @   ",
			"@@@   ",
			"      ",
			"      ",
			"      ",
		)
		for range 20 {
			g = model.Step(g)
		}
		Expect(rowsOf(g)).To(Equal([]string{
			"      ",
			"      ",
			"      ",
			"      ",
			"    @@",
			"    @@",
		}))
	})

	It("never mutates its input", func() {
		g := model.NewRandomGrid(16, 9, model.NewSeededRand(42))
		snapshot := g.Clone()

		model.Step(g)
		Expect(g.Equal(snapshot)).To(BeTrue())

		model.StepParallel(g, 4)
		Expect(g.Equal(snapshot)).To(BeTrue())
	})
})

var _ = DescribeTable("StepParallel matches Step",
	func(width, height, workers int, seed int64) {
		g := model.NewRandomGrid(width, height, model.NewSeededRand(seed))
		for range 5 {
			expected := model.Step(g)
			actual := model.StepParallel(g, workers)
			Expect(actual.Equal(expected)).To(BeTrue())
			g = expected
		}
	},
	Entry("single worker", 20, 10, 1, int64(1)),
	Entry("zero workers", 20, 10, 0, int64(2)),
	Entry("even split", 20, 12, 4, int64(3)),
	Entry("uneven split", 13, 17, 5, int64(4)),
	Entry("more workers than rows", 9, 3, 8, int64(5)),
	Entry("single row", 9, 1, 4, int64(6)),
)
