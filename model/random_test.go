package model_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sheikhrachel/gameoflife/model"
)

var _ = Describe("NewRandomGrid", func() {
	It("reproduces the same grid from the same seed", func() {
		a := model.NewRandomGrid(33, 21, model.NewSeededRand(7))
		b := model.NewRandomGrid(33, 21, model.NewSeededRand(7))
		Expect(a.Equal(b)).To(BeTrue())
	})

	It("differs across seeds", func() {
		a := model.NewRandomGrid(33, 21, model.NewSeededRand(7))
		b := model.NewRandomGrid(33, 21, model.NewSeededRand(8))
		Expect(a.Equal(b)).To(BeFalse())
	})

	It("keeps the requested dimensions", func() {
		g := model.NewRandomGrid(5, 2, model.NewSeededRand(1))
		Expect(g.Width()).To(Equal(5))
		Expect(g.Height()).To(Equal(2))
	})

	It("makes roughly half of the cells alive", func() {
		g := model.NewRandomGrid(200, 100, model.NewSeededRand(2024))
		ratio := float64(g.CountLivingCells()) / float64(200*100)
		Expect(ratio).To(BeNumerically("~", 0.5, 0.03))
	})
})
