package viewer_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/stringviz/internal/viewer"
)

var _ = Describe("AutoBounds", func() {
	DescribeTable("fits the data with a margin",
		func(y []float64, wantLo, wantHi float64) {
			lo, hi := viewer.AutoBounds(y)
			Expect(lo).To(BeNumerically("~", wantLo, 1e-12))
			Expect(hi).To(BeNumerically("~", wantHi, 1e-12))
		},
		Entry("empty", []float64{}, -0.5, 0.5),
		Entry("flat", []float64{3, 3, 3}, 2.5, 3.5),
		Entry("spread", []float64{-1, 0, 1}, -1.1, 1.1),
		Entry("unordered", []float64{4, -6, 0}, -6.5, 4.5),
	)

	It("stays finite for spans beyond MaxFloat64", func() {
		lo, hi := viewer.AutoBounds([]float64{-math.MaxFloat64, math.MaxFloat64})
		Expect(math.IsInf(lo, 0) || math.IsNaN(lo)).To(BeFalse())
		Expect(math.IsInf(hi, 0) || math.IsNaN(hi)).To(BeFalse())
		Expect(lo).To(BeNumerically("<", 0))
		Expect(hi).To(BeNumerically(">", 0))
	})
})
