package errors_test

import (
	"errors"
	"fmt"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	errs "github.com/tidepool-org/librelinkup/errors"
	"github.com/tidepool-org/librelinkup/pointer"
	"github.com/tidepool-org/librelinkup/region"
)

var _ = Describe("RateLimitError", func() {
	DescribeTable("retry after",
		func(header string, expected *int) {
			err := errs.NewRateLimitError(header)
			Expect(err.ResponseCode).To(Equal(http.StatusTooManyRequests))
			Expect(err.Message).To(Equal("Too many requests. Please try again later."))
			if expected == nil {
				Expect(err.RetryAfter).To(BeNil())
			} else {
				Expect(err.RetryAfter).To(HaveValue(Equal(*expected)))
			}
		},
		Entry("seconds", "30", pointer.FromAny(30)),
		Entry("zero", "0", pointer.FromAny(0)),
		Entry("absent", "", nil),
		Entry("not a number", "soon", nil),
		Entry("negative", "-5", nil),
		Entry("http date", "Wed, 21 Oct 2015 07:28:00 GMT", nil),
	)

	It("mentions the delay", func() {
		Expect(errs.NewRateLimitError("30").Error()).To(ContainSubstring("retry after 30s"))
	})
})

var _ = Describe("HttpError", func() {
	It("keeps the status and body", func() {
		err := errs.NewHttpError(http.StatusUnauthorized, []byte(`{"error":"Unauthorized"}`))
		Expect(err.Code).To(Equal(http.StatusUnauthorized))
		Expect(string(err.Body)).To(Equal(`{"error":"Unauthorized"}`))
		Expect(err.Error()).To(Equal("unexpected response status 401 Unauthorized"))
	})

	It("matches the sentinel with the same status", func() {
		var err error = fmt.Errorf("unable to login: %w", errs.NewHttpError(http.StatusUnauthorized, nil))
		Expect(errors.Is(err, errs.Unauthorized)).To(BeTrue())
		Expect(errors.Is(err, errs.NotFound)).To(BeFalse())

		var httpErr *errs.HttpError
		Expect(errors.As(err, &httpErr)).To(BeTrue())
		Expect(httpErr.Code).To(Equal(http.StatusUnauthorized))
	})
})

var _ = DescribeTable("HttpError sentinels",
	func(sentinel *errs.HttpError, code int) {
		err := fmt.Errorf("unable to get connections: %w", errs.NewHttpError(code, nil))
		Expect(sentinel.Code).To(Equal(code))
		Expect(errors.Is(err, sentinel)).To(BeTrue())
		Expect(errors.Is(errs.NewHttpError(http.StatusTeapot, nil), sentinel)).To(BeFalse())
	},
	Entry("bad request", errs.BadRequest, http.StatusBadRequest),
	Entry("unauthorized", errs.Unauthorized, http.StatusUnauthorized),
	Entry("forbidden", errs.Forbidden, http.StatusForbidden),
	Entry("not found", errs.NotFound, http.StatusNotFound),
	Entry("internal server error", errs.InternalServerError, http.StatusInternalServerError),
)

var _ = Describe("RedirectError", func() {
	It("names the region", func() {
		var err error = &errs.RedirectError{Region: region.EU}
		Expect(err.Error()).To(ContainSubstring("EU"))

		var redirectErr *errs.RedirectError
		Expect(errors.As(err, &redirectErr)).To(BeTrue())
		Expect(redirectErr.Region).To(Equal(region.EU))
	})
})

var _ = Describe("Sentinels", func() {
	It("are distinct", func() {
		sentinels := []error{
			errs.ErrAuthentication,
			errs.ErrTermsOfUse,
			errs.ErrPrivacyPolicy,
			errs.ErrEmailVerification,
			errs.ErrPatientNotFound,
			errs.ErrInvalidPatientIdentifier,
			errs.ErrUnknownRegion,
		}
		for i, a := range sentinels {
			for j, b := range sentinels {
				Expect(errors.Is(a, b)).To(Equal(i == j))
			}
		}
	})

	It("shares the unknown region error with the region package", func() {
		_, err := region.Parse("XX")
		Expect(err).To(MatchError(errs.ErrUnknownRegion))
	})
})
