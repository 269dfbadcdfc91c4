package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tgberrios/CRM-sub000/internal/application"
)

type stubSessionValidator struct {
	validateFn func(ctx context.Context, token string) (application.Principal, error)
}

func (s *stubSessionValidator) ValidateSession(ctx context.Context, token string) (application.Principal, error) {
	if s.validateFn != nil {
		return s.validateFn(ctx, token)
	}
	return application.Principal{}, application.ErrUnauthorized
}

func TestRequireSession(t *testing.T) {
	t.Parallel()

	t.Run("rejects missing token", func(t *testing.T) {
		t.Parallel()

		handler := RequireSession(&stubSessionValidator{}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next handler must not run")
		}))

		req := httptest.NewRequest(http.MethodGet, "/personnel", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		var resp errorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if resp.Message != errMissingSessionToken.Error() {
			t.Fatalf("unexpected message %q", resp.Message)
		}
	})

	t.Run("rejects expired and revoked sessions", func(t *testing.T) {
		t.Parallel()

		for name, sentinel := range map[string]error{
			"expired": application.ErrSessionExpired,
			"revoked": application.ErrSessionRevoked,
			"unknown": application.ErrUnauthorized,
		} {
			validator := &stubSessionValidator{validateFn: func(ctx context.Context, token string) (application.Principal, error) {
				return application.Principal{}, sentinel
			}}
			handler := RequireSession(validator, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatalf("%s: next handler must not run", name)
			}))

			req := httptest.NewRequest(http.MethodGet, "/personnel", nil)
			req.Header.Set("Authorization", "Bearer tok-1")
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("%s: expected 401, got %d", name, rec.Code)
			}
		}
	})

	t.Run("injects the principal", func(t *testing.T) {
		t.Parallel()

		validator := &stubSessionValidator{validateFn: func(ctx context.Context, token string) (application.Principal, error) {
			if token != "tok-1" {
				t.Fatalf("unexpected token %q", token)
			}
			return application.Principal{AccountID: "acct-1", IsAdmin: true}, nil
		}}

		var seen application.Principal
		handler := RequireSession(validator, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				t.Fatal("expected principal in context")
			}
			seen = principal
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/personnel", nil)
		req.AddCookie(&http.Cookie{Name: "session_token", Value: "tok-1"})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if seen.AccountID != "acct-1" || !seen.IsAdmin {
			t.Fatalf("unexpected principal: %+v", seen)
		}
	})

	t.Run("prefers the bearer header over the cookie", func(t *testing.T) {
		t.Parallel()

		var seenToken string
		validator := &stubSessionValidator{validateFn: func(ctx context.Context, token string) (application.Principal, error) {
			seenToken = token
			return application.Principal{AccountID: "acct-1"}, nil
		}}
		handler := RequireSession(validator, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/personnel", nil)
		req.Header.Set("Authorization", "Bearer header-token")
		req.AddCookie(&http.Cookie{Name: "session_token", Value: "cookie-token"})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if seenToken != "header-token" {
			t.Fatalf("expected header token, got %q", seenToken)
		}
	})
}

func TestRequestLogger(t *testing.T) {
	t.Parallel()

	var sawLogger bool
	handler := RequestLogger(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if LoggerFromContext(r.Context()) != nil {
			sawLogger = true
		}
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected handler status to pass through, got %d", rec.Code)
	}
	if !sawLogger {
		t.Fatal("expected request logger in context")
	}
}

func TestRouterAppliesMiddlewareInOrder(t *testing.T) {
	t.Parallel()

	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	router := NewRouter(RouterConfig{
		Roster:     NewRosterHandler(&stubRosterService{}, nil),
		Middleware: []func(http.Handler) http.Handler{tag("outer"), tag("inner")},
	})

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Fatalf("unexpected middleware order: %v", order)
	}
}
