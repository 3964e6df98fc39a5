package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name             string
		allow            bool
		expectedStatus   int
		expectNextCalled bool
	}{
		{"within quota", true, http.StatusOK, true},
		{"over quota", false, http.StatusTooManyRequests, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter := NewMockLimiter(ctrl)
			limiter.EXPECT().Allow(gomock.Any(), "login:192.0.2.10").Return(tt.allow)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
			req.RemoteAddr = "192.0.2.10:51234"
			rr := httptest.NewRecorder()

			RateLimitMiddleware(limiter, "login")(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
		})
	}
}
