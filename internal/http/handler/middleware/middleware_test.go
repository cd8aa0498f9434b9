package middleware_test

import (
	"crowdsync/internal/http/handler/middleware"
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("Middleware", func() {
	var (
		seen    string
		next    http.Handler
		w       *httptest.ResponseRecorder
		req     *http.Request
		logs    *observer.ObservedLogs
		handler http.Handler
	)

	BeforeEach(func() {
		seen = ""
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(middleware.RequestIDKey).(string)
			w.WriteHeader(http.StatusTeapot)
		})
		core, observed := observer.New(zap.InfoLevel)
		logs = observed
		handler = middleware.NewLoggingMiddleware(zap.New(core).Sugar()).Logging(next)
		handler = middleware.NewRequestIDMiddleware().RequestID(handler)

		w = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "/crowdfund/session", nil)
	})

	JustBeforeEach(func() {
		handler.ServeHTTP(w, req)
	})

	When("the caller sends no request id", func() {
		It("generates one and logs the request", func() {
			_, err := uuid.Parse(seen)
			Expect(err).NotTo(HaveOccurred())
			Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(seen))

			entries := logs.FilterMessage("request handled").All()
			Expect(entries).To(HaveLen(1))
			fields := entries[0].ContextMap()
			Expect(fields["status"]).To(BeEquivalentTo(http.StatusTeapot))
			Expect(fields["path"]).To(Equal("/crowdfund/session"))
			Expect(fields["request_id"]).To(Equal(seen))
		})
	})

	When("the caller sends a request id", func() {
		var id string

		BeforeEach(func() {
			id = uuid.New().String()
			req.Header.Set(middleware.RequestIDHeader, id)
		})

		It("keeps it", func() {
			Expect(seen).To(Equal(id))
		})
	})

	When("the caller sends a malformed request id", func() {
		BeforeEach(func() {
			req.Header.Set(middleware.RequestIDHeader, "<script>")
		})

		It("replaces it", func() {
			Expect(seen).NotTo(Equal("<script>"))
			_, err := uuid.Parse(seen)
			Expect(err).NotTo(HaveOccurred())
		})
	})
})
