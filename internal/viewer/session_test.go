package viewer_test

import (
	"math"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/stringviz/internal/series"
	"github.com/san-kum/stringviz/internal/viewer"
)

// recorder is a Surface that remembers every call made on it.
type recorder struct {
	x       map[viewer.PlotID][]float64
	y       map[viewer.PlotID][]float64
	plots   []viewer.PlotID
	rescale []viewer.PlotID
	redraws int
}

func newRecorder() *recorder {
	return &recorder{x: map[viewer.PlotID][]float64{}, y: map[viewer.PlotID][]float64{}}
}

func (r *recorder) Plot(id viewer.PlotID, x, y []float64) {
	r.plots = append(r.plots, id)
	r.x[id] = x
	r.y[id] = y
}

func (r *recorder) SetYData(id viewer.PlotID, y []float64) { r.y[id] = y }

func (r *recorder) Rescale(id viewer.PlotID) { r.rescale = append(r.rescale, id) }

func (r *recorder) Redraw() { r.redraws++ }

func mustParse(input string, paired bool) *series.Data {
	d, err := series.Parse(strings.NewReader(input), paired)
	Expect(err).NotTo(HaveOccurred())
	return d
}

var _ = Describe("Session", func() {
	var surf *recorder

	BeforeEach(func() {
		surf = newRecorder()
	})

	Context("with a single series", func() {
		var sess *viewer.Session

		BeforeEach(func() {
			var err error
			sess, err = viewer.NewSession(mustParse("0,0,0,0\n1,1,1,1\n2,2,2,2\n", false), surf)
			Expect(err).NotTo(HaveOccurred())
		})

		It("starts idle at index zero with the first snapshot plotted", func() {
			Expect(sess.Index()).To(Equal(0))
			Expect(sess.Paired()).To(BeFalse())
			Expect(surf.plots).To(Equal([]viewer.PlotID{viewer.Primary}))
			Expect(surf.x[viewer.Primary]).To(Equal([]float64{0, 1.0 / 3, 2.0 / 3, 1}))
			Expect(surf.y[viewer.Primary]).To(Equal([]float64{0, 0, 0, 0}))
			Expect(surf.redraws).To(Equal(0))
		})

		It("exposes the control range", func() {
			Expect(sess.Min()).To(Equal(0.0))
			Expect(sess.Max()).To(Equal(2.0))
			Expect(sess.Steps()).To(Equal(3))
		})

		It("floors fractional control values", func() {
			Expect(sess.SetValue(1.5)).To(Equal(1))
			Expect(surf.y[viewer.Primary]).To(Equal([]float64{1, 1, 1, 1}))
		})

		DescribeTable("maps control values to snapshots",
			func(v float64, want int) {
				Expect(sess.SetValue(v)).To(Equal(want))
				Expect(sess.Index()).To(Equal(want))
				primary, companion := sess.Current()
				Expect([]float64(primary)).To(Equal(surf.y[viewer.Primary]))
				Expect(companion).To(BeNil())
			},
			Entry("minimum", 0.0, 0),
			Entry("just below one", 0.999, 0),
			Entry("exact step", 1.0, 1),
			Entry("maximum", 2.0, 2),
			Entry("below range", -4.0, 0),
			Entry("above range", 17.0, 2),
			Entry("infinity", math.Inf(1), 2),
		)

		It("redraws on every change, without rescaling the primary axis", func() {
			sess.SetValue(1)
			sess.SetValue(2)
			sess.SetValue(2)
			Expect(surf.redraws).To(Equal(3))
			Expect(surf.rescale).To(BeEmpty())
		})

		It("is idempotent for repeated values", func() {
			sess.SetValue(2.9)
			once := append([]float64(nil), surf.y[viewer.Primary]...)
			sess.SetValue(2.9)
			Expect(surf.y[viewer.Primary]).To(Equal(once))
			Expect(sess.Index()).To(Equal(2))
		})

		It("ignores NaN", func() {
			sess.SetValue(1)
			Expect(sess.SetValue(math.NaN())).To(Equal(1))
			Expect(surf.redraws).To(Equal(1))
		})

		It("stops drawing after Close", func() {
			sess.Close()
			sess.SetValue(2)
			Expect(sess.Index()).To(Equal(0))
			Expect(surf.redraws).To(Equal(0))
		})
	})

	Context("with a paired series", func() {
		var sess *viewer.Session

		BeforeEach(func() {
			var err error
			sess, err = viewer.NewSession(mustParse("0,0\n0.1,0.1\n1,1\n1.1,1.1\n", true), surf)
			Expect(err).NotTo(HaveOccurred())
		})

		It("plots both profiles", func() {
			Expect(sess.Paired()).To(BeTrue())
			Expect(surf.plots).To(Equal([]viewer.PlotID{viewer.Primary, viewer.Companion}))
			Expect(surf.y[viewer.Companion]).To(Equal([]float64{0.1, 0.1}))
		})

		It("updates both lines and rescales only the companion axis", func() {
			sess.SetValue(1)
			Expect(surf.y[viewer.Primary]).To(Equal([]float64{1, 1}))
			Expect(surf.y[viewer.Companion]).To(Equal([]float64{1.1, 1.1}))
			Expect(surf.rescale).To(Equal([]viewer.PlotID{viewer.Companion}))
			Expect(surf.redraws).To(Equal(1))

			primary, companion := sess.Current()
			Expect(primary).To(Equal(series.Snapshot{1, 1}))
			Expect(companion).To(Equal(series.Snapshot{1.1, 1.1}))
		})
	})

	Context("with invalid data", func() {
		It("rejects empty input", func() {
			_, err := viewer.NewSession(&series.Data{Primary: series.TimeSeries{}}, surf)
			Expect(err).To(MatchError(series.ErrEmptyInput))
			Expect(surf.plots).To(BeEmpty())

			_, err = viewer.NewSession(nil, surf)
			Expect(err).To(MatchError(series.ErrEmptyInput))
		})

		It("rejects a companion with a different step count", func() {
			d := &series.Data{
				Primary:   series.TimeSeries{{0, 0}, {1, 1}},
				Companion: series.TimeSeries{{0, 0}},
			}
			_, err := viewer.NewSession(d, surf)
			Expect(err).To(MatchError(viewer.ErrCompanionShape))
		})

		It("rejects a companion with a different point count", func() {
			d := &series.Data{
				Primary:   series.TimeSeries{{0, 0}},
				Companion: series.TimeSeries{{0, 0, 0}},
			}
			_, err := viewer.NewSession(d, surf)
			Expect(err).To(MatchError(viewer.ErrCompanionShape))
		})
	})
})

var _ = Describe("PlotID", func() {
	It("names the plots", func() {
		Expect(viewer.Primary.String()).To(Equal("primary"))
		Expect(viewer.Companion.String()).To(Equal("companion"))
		Expect(viewer.PlotID(7).String()).To(Equal("unknown"))
	})
})
