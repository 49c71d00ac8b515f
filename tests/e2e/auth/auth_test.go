//go:build e2e

package auth_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	resdto "slotswapper/internal/handler/dto/response"
	"slotswapper/tests/common/httptest"
	"slotswapper/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	signupURL = "/api/auth/signup"
	loginURL  = "/api/auth/login"
	meURL     = "/api/auth/me"
	feedURL   = "/api/events/feed.ics"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) signup(name, email, password string) *resdto.AuthResponse {
	body := map[string]any{
		"name":     name,
		"email":    email,
		"password": password,
	}
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, signupURL, body, "")

	var response resdto.AuthResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
	return &response
}

func (s *authSuite) TestSignup() {
	s.Run("正常な登録でトークンとユーザー情報が返る", func() {
		response := s.signup("Alice", "alice@example.com", "password123")
		s.NotEmpty(response.Token)
		s.Require().NotNil(response.User)
		s.Equal("Alice", response.User.Name)
		s.Equal("alice@example.com", response.User.Email)
	})

	s.Run("同じメールアドレスでの再登録は409", func() {
		s.signup("Alice", "alice@example.com", "password123")

		body := map[string]any{
			"name":     "Impostor",
			"email":    "alice@example.com",
			"password": "password456",
		}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, signupURL, body, "")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("短すぎるパスワードは400", func() {
		body := map[string]any{
			"name":     "Alice",
			"email":    "alice@example.com",
			"password": "short",
		}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, signupURL, body, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "正常なログイン",
			email:          "alice@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "存在しないユーザー",
			email:          "nobody@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "間違ったパスワード",
			email:          "alice@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.signup("Alice", "alice@example.com", "password123")

			body := map[string]any{
				"email":    tt.email,
				"password": tt.password,
			}
			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, body, "")
			s.Equal(tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var response resdto.AuthResponse
				httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
				s.NotEmpty(response.Token)
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("トークンで本人情報を取得できる", func() {
		signedUp := s.signup("Alice", "alice@example.com", "password123")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, signedUp.Token)

		var response resdto.MeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.User)
		s.Equal(signedUp.User.ID, response.User.ID)
	})

	s.Run("トークンなしは401", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("壊れたトークンは401", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "not-a-token")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *authSuite) TestCalendarFeed() {
	s.Run("自分のスロットがiCalendar形式で取得できる", func() {
		signedUp := s.signup("Alice", "alice@example.com", "password123")

		start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
		body := map[string]any{
			"title":     "Morning run",
			"startTime": start.Format(time.RFC3339),
			"endTime":   start.Add(time.Hour).Format(time.RFC3339),
			"status":    "SWAPPABLE",
		}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/events", body, signedUp.Token)
		s.Require().Equal(http.StatusCreated, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, feedURL, nil, signedUp.Token)
		s.Require().Equal(http.StatusOK, rec.Code)
		s.True(strings.HasPrefix(rec.Header().Get("Content-Type"), "text/calendar"))

		feed := rec.Body.String()
		s.Contains(feed, "BEGIN:VCALENDAR")
		s.Contains(feed, "SUMMARY:Morning run")
		s.Contains(feed, "TRANSP:TRANSPARENT")
	})
}
