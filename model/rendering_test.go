package model_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sheikhrachel/gameoflife/model"
)

var _ = Describe("Renderers", func() {
	var (
		out  *bytes.Buffer
		grid *model.Grid
	)

	BeforeEach(func() {
		out = &bytes.Buffer{}
		grid = gridFrom(
			"@ ",
			" @",
		)
	})

	It("frames the grid with dashes and bars", func() {
		Expect(model.FrameGrid(grid)).To(Equal(" --\n|@ |\n| @|\n --\n"))
	})

	It("clears then displays with the plain renderer", func() {
		r, err := model.NewRenderer(model.StylePlain, out)
		Expect(err).NotTo(HaveOccurred())

		r.Clear()
		r.Display(grid, "Gen: 0")
		Expect(out.String()).To(Equal("\033[1;1H\033[2J --\n|@ |\n| @|\n --\nGen: 0\n"))
	})

	It("draws every living cell with the box renderer", func() {
		r, err := model.NewRenderer(model.StyleBox, out)
		Expect(err).NotTo(HaveOccurred())

		r.Display(grid, "")
		Expect(out.String()).To(ContainSubstring("@"))
		Expect(bytes.Count(out.Bytes(), []byte("@"))).To(Equal(2))
	})

	It("rejects unknown styles", func() {
		_, err := model.NewRenderer("sparkles", out)
		Expect(err).To(MatchError(ContainSubstring("sparkles")))
	})
})
