package client_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/tidepool-org/librelinkup/client"
	clientTest "github.com/tidepool-org/librelinkup/client/test"
	errs "github.com/tidepool-org/librelinkup/errors"
	"github.com/tidepool-org/librelinkup/models"
	"github.com/tidepool-org/librelinkup/region"
	"github.com/tidepool-org/librelinkup/test"
)

var _ = Describe("Authenticate", func() {
	var stub *clientTest.LibreLinkUpServer
	var c *client.Client

	BeforeEach(func() {
		stub = clientTest.ServerStub()
		DeferCleanup(stub.Close)
		c = newStubClient(stub)
	})

	It("is not authenticated before login", func() {
		Expect(c.IsAuthenticated()).To(BeFalse())
		Expect(c.Token()).To(BeEmpty())
		Expect(c.AccountIDHash()).To(BeEmpty())
		Expect(c.TokenExpiry().IsZero()).To(BeTrue())
	})

	When("the credentials are accepted", func() {
		var login models.LoginResponse

		BeforeEach(func() {
			login = clientTest.RandomLoginResponse()
			login.Data.AuthTicket.Token = "parp"
			stub.RespondJSON(http.MethodPost, clientTest.LoginPath, http.StatusOK, marshalLogin(login))
		})

		It("stores the token verbatim", func() {
			Expect(c.Authenticate(ctx())).To(Succeed())
			Expect(c.IsAuthenticated()).To(BeTrue())
			Expect(c.Token()).To(Equal("parp"))
		})

		It("stores the hashed account id", func() {
			Expect(c.Authenticate(ctx())).To(Succeed())
			Expect(c.AccountIDHash()).To(Equal(client.HashAccountID(login.Data.User.ID)))
			Expect(c.AccountIDHash()).To(HaveLen(64))
		})

		It("exposes the ticket expiry", func() {
			Expect(c.Authenticate(ctx())).To(Succeed())
			Expect(c.TokenExpiry()).To(BeTemporally("==", time.Unix(login.Data.AuthTicket.Expires, 0)))
		})

		It("posts the credentials with the application headers", func() {
			Expect(c.Authenticate(ctx())).To(Succeed())

			request, ok := stub.LastRequest()
			Expect(ok).To(BeTrue())
			Expect(request.Method).To(Equal(http.MethodPost))
			Expect(request.Path).To(Equal(clientTest.LoginPath))
			Expect(request.Body).To(MatchJSON(`{"email": "parp", "password": "parp"}`))
			Expect(request.Header.Get("product")).To(Equal("llu.android"))
			Expect(request.Header.Get("version")).To(Equal("4.12.0"))
			Expect(request.Header.Get("cache-control")).To(Equal("no-cache"))
			Expect(request.Header.Get("content-type")).To(Equal("application/json"))
			Expect(request.Header.Get("accept-encoding")).To(Equal("gzip"))
			Expect(request.Header.Get("authorization")).To(BeEmpty())
			Expect(request.Header.Get("account-id")).To(BeEmpty())
		})

		It("announces the configured version", func() {
			c = newStubClient(stub, client.WithVersion("4.7.0"))
			Expect(c.Authenticate(ctx())).To(Succeed())

			request, _ := stub.LastRequest()
			Expect(request.Header.Get("version")).To(Equal("4.7.0"))
		})

		It("sends the session with later requests", func() {
			Expect(c.Authenticate(ctx())).To(Succeed())
			stub.RespondJSON(http.MethodGet, clientTest.ConnectionsPath, http.StatusOK, test.MustLoadFixture("connections_response.json"))

			_, err := c.GetPatients(ctx())
			Expect(err).ToNot(HaveOccurred())

			request, _ := stub.LastRequest()
			Expect(request.Header.Get("authorization")).To(Equal("Bearer parp"))
			Expect(request.Header.Get("account-id")).To(Equal(client.HashAccountID(login.Data.User.ID)))
		})

		It("decompresses gzip encoded responses", func() {
			stub.Respond(http.MethodPost, clientTest.LoginPath, clientTest.StubResponse{
				Status: http.StatusOK,
				Body:   marshalLogin(login),
				Gzip:   true,
			})

			Expect(c.Authenticate(ctx())).To(Succeed())
			Expect(c.Token()).To(Equal("parp"))
		})

		It("replaces the session on a new login", func() {
			Expect(c.Authenticate(ctx())).To(Succeed())

			login.Data.AuthTicket.Token = "narp"
			stub.RespondJSON(http.MethodPost, clientTest.LoginPath, http.StatusOK, marshalLogin(login))
			Expect(c.Authenticate(ctx())).To(Succeed())
			Expect(c.Token()).To(Equal("narp"))
		})

		It("keeps the session when a new login fails", func() {
			Expect(c.Authenticate(ctx())).To(Succeed())
			hash := c.AccountIDHash()

			stub.RespondJSON(http.MethodPost, clientTest.LoginPath, http.StatusOK, []byte(`{"not": "important"}`))
			Expect(c.Authenticate(ctx())).To(MatchError(errs.ErrAuthentication))
			Expect(c.Token()).To(Equal("parp"))
			Expect(c.AccountIDHash()).To(Equal(hash))
		})
	})

	DescribeTable("rejects payloads that are not a login",
		func(body string) {
			stub.RespondJSON(http.MethodPost, clientTest.LoginPath, http.StatusOK, []byte(body))

			err := c.Authenticate(ctx())
			Expect(err).To(MatchError(errs.ErrAuthentication))
			Expect(err.Error()).To(ContainSubstring("invalid login credentials"))
			Expect(c.IsAuthenticated()).To(BeFalse())
		},
		Entry("unrelated object", `{"not": "important"}`),
		Entry("invalid response", `{"invalid": "response"}`),
		Entry("missing token", `{"status": 0, "data": {"user": {"id": "abc"}, "authTicket": {}}}`),
		Entry("array", `[]`),
	)

	It("includes the vendor message of a rejected login", func() {
		stub.RespondJSON(http.MethodPost, clientTest.LoginPath, http.StatusOK, test.MustLoadFixture("login_error_response.json"))

		err := c.Authenticate(ctx())
		Expect(err).To(MatchError(errs.ErrAuthentication))
		Expect(err.Error()).To(ContainSubstring("notAuthenticated"))
	})

	DescribeTable("returns http errors untranslated",
		func(status int) {
			stub.RespondJSON(http.MethodPost, clientTest.LoginPath, status, []byte(`{"error": "Unauthorized"}`))

			err := c.Authenticate(ctx())

			var httpErr *errs.HttpError
			Expect(errors.As(err, &httpErr)).To(BeTrue())
			Expect(httpErr.Code).To(Equal(status))
			Expect(httpErr.Body).To(MatchJSON(`{"error": "Unauthorized"}`))
			Expect(errors.Is(err, errs.ErrAuthentication)).To(BeFalse())
		},
		Entry("unauthorized", http.StatusUnauthorized),
		Entry("too many requests", http.StatusTooManyRequests),
		Entry("server error", http.StatusInternalServerError),
	)

	It("reports the redirected region", func() {
		stub.RespondJSON(http.MethodPost, clientTest.LoginPath, http.StatusOK, test.MustLoadFixture("redirect_response.json"))

		err := c.Authenticate(ctx())

		var redirectErr *errs.RedirectError
		Expect(errors.As(err, &redirectErr)).To(BeTrue())
		Expect(redirectErr.Region).To(Equal(region.EU))
		Expect(c.IsAuthenticated()).To(BeFalse())
	})

	It("reports a redirect to an unknown region", func() {
		stub.RespondJSON(http.MethodPost, clientTest.LoginPath, http.StatusOK, []byte(`{"status": 0, "data": {"redirect": true, "region": "mars"}}`))

		err := c.Authenticate(ctx())
		Expect(err).To(MatchError(region.ErrUnknownRegion))
		Expect(err.Error()).To(ContainSubstring("mars"))
	})

	DescribeTable("reports the redirect whatever else the payload holds",
		func(body string) {
			stub.RespondJSON(http.MethodPost, clientTest.LoginPath, http.StatusOK, []byte(body))

			err := c.Authenticate(ctx())

			var redirectErr *errs.RedirectError
			Expect(errors.As(err, &redirectErr)).To(BeTrue())
			Expect(redirectErr.Region).To(Equal(region.EU))
			Expect(err).ToNot(MatchError(errs.ErrAuthentication))
		},
		Entry("string error", `{"status": 0, "error": "x", "data": {"redirect": true, "region": "eu"}}`),
		Entry("step that is not an object", `{"status": 0, "data": {"redirect": true, "region": "eu", "step": "tou"}}`),
		Entry("string status", `{"status": "ok", "data": {"redirect": true, "region": "eu"}}`),
	)

	It("reports the required step when the error is not an object", func() {
		stub.RespondJSON(http.MethodPost, clientTest.LoginPath, http.StatusOK, []byte(`{"status": "four", "error": "x", "data": {"step": {"type": "pp"}}}`))

		Expect(c.Authenticate(ctx())).To(MatchError(errs.ErrPrivacyPolicy))
	})

	DescribeTable("reports the action required in the app",
		func(fixture string, expected error) {
			stub.RespondJSON(http.MethodPost, clientTest.LoginPath, http.StatusOK, test.MustLoadFixture(fixture))

			err := c.Authenticate(ctx())
			Expect(err).To(MatchError(expected))
			Expect(errors.Is(err, errs.ErrAuthentication)).To(BeFalse())
			Expect(c.IsAuthenticated()).To(BeFalse())
		},
		Entry("terms of use", "terms_of_use_response.json", errs.ErrTermsOfUse),
		Entry("privacy policy", "privacy_policy_response.json", errs.ErrPrivacyPolicy),
		Entry("email verification", "email_verification_response.json", errs.ErrEmailVerification),
	)

	It("reports the required step even when the payload is otherwise a valid login", func() {
		payload := map[string]interface{}{}
		Expect(json.Unmarshal(test.MustLoadFixture("login_response.json"), &payload)).To(Succeed())
		payload["data"].(map[string]interface{})["step"] = map[string]interface{}{"type": "pp"}
		body, err := json.Marshal(payload)
		Expect(err).ToNot(HaveOccurred())
		stub.RespondJSON(http.MethodPost, clientTest.LoginPath, http.StatusOK, body)

		Expect(c.Authenticate(ctx())).To(MatchError(errs.ErrPrivacyPolicy))
		Expect(c.IsAuthenticated()).To(BeFalse())
	})

	It("wraps transport failures", func() {
		stub.Close()

		err := c.Authenticate(ctx())
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring(clientTest.LoginPath))
	})
})

var _ = Describe("Regions", func() {
	for _, r := range region.All() {
		r := r

		It("logs in against the "+r.String()+" host", func() {
			ctrl := gomock.NewController(GinkgoT())
			doer := clientTest.NewMockDoer(ctrl)

			login := clientTest.RandomLoginResponse()
			doer.EXPECT().
				Do(test.Match(func(req *http.Request) bool {
					return req.Method == http.MethodPost && req.URL.String() == r.BaseURL()+"/llu/auth/login"
				})).
				Return(jsonResponse(http.StatusOK, marshalLogin(login)), nil)

			c, err := client.New("parp", "parp", r, client.WithHTTPClient(doer), client.WithLogger(zap.NewNop().Sugar()))
			Expect(err).ToNot(HaveOccurred())
			Expect(c.Region()).To(Equal(r))
			Expect(c.BaseURL()).To(Equal(r.BaseURL()))

			Expect(c.Authenticate(ctx())).To(Succeed())
			Expect(c.Token()).To(Equal(login.Data.AuthTicket.Token))
		})
	}

	It("rejects an unknown region", func() {
		_, err := client.New("parp", "parp", region.Region("XX"))
		Expect(err).To(MatchError(region.ErrUnknownRegion))
	})

	It("accepts an unknown region with an explicit host", func() {
		c, err := client.New("parp", "parp", region.Region("XX"), client.WithBaseURL("http://localhost:8080/"))
		Expect(err).ToNot(HaveOccurred())
		Expect(c.BaseURL()).To(Equal("http://localhost:8080"))
	})

	It("defaults to the US host", func() {
		c, err := client.New("parp", "parp", region.Default)
		Expect(err).ToNot(HaveOccurred())
		Expect(c.BaseURL()).To(Equal("https://api.libreview.io"))
	})
})
