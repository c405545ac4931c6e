package reef_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/reefhydro/internal/coral"
	"github.com/san-kum/reefhydro/internal/hydro"
	"github.com/san-kum/reefhydro/internal/reef"
)

var _ = Describe("Reef1D lifecycle", func() {
	var (
		model *reef.Reef1D
		c     *coral.Coral
	)

	BeforeEach(func() {
		model = reef.New(reef.Config{
			Bathymetry: []float64{5, 5, 5, 5, 5},
			Dx:         10,
			Hs:         1.5,
			Tp:         8,
		})
		c = coral.New()
	})

	Context("before initiation", func() {
		It("rejects updates", func() {
			_, err := model.Update(c, 0)
			Expect(err).To(MatchError(hydro.ErrInvalidState))
		})

		It("rejects finalisation", func() {
			Expect(model.Finalise()).To(MatchError(hydro.ErrInvalidState))
		})
	})

	Context("once initiated", func() {
		BeforeEach(func() {
			Expect(model.Initiate()).To(Succeed())
		})

		It("rejects a second initiation", func() {
			Expect(model.Initiate()).To(MatchError(hydro.ErrInvalidState))
		})

		It("updates repeatedly and deterministically", func() {
			f1, err := model.Update(c, 0)
			Expect(err).NotTo(HaveOccurred())
			f2, err := model.Update(c, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(f2).To(Equal(f1))
		})

		It("finalises exactly once", func() {
			Expect(model.Finalise()).To(Succeed())
			Expect(model.Finalise()).To(MatchError(hydro.ErrInvalidState))
		})
	})

	Context("after finalisation", func() {
		BeforeEach(func() {
			Expect(model.Initiate()).To(Succeed())
			_, err := model.Update(c, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(model.Finalise()).To(Succeed())
		})

		It("rejects further updates", func() {
			_, err := model.Update(c, 0)
			Expect(err).To(MatchError(hydro.ErrInvalidState))
		})

		It("rejects re-initiation", func() {
			Expect(model.Initiate()).To(MatchError(hydro.ErrInvalidState))
		})
	})

	Context("when not fully configured", func() {
		It("fails initiation with a configuration error", func() {
			empty := reef.New(reef.Config{})
			Expect(empty.Initiate()).To(MatchError(hydro.ErrNotConfigured))
		})
	})
})
