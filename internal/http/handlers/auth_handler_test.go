package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestHandler() *Handler {
	// no store behind it; only paths that reject before reaching the
	// repositories are exercised here
	return &Handler{}
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func putJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/register", newTestHandler().Register)

	tests := []struct {
		name       string
		body       string
		wantFields []string
	}{
		{"all missing", `{}`, []string{"name", "email", "password"}},
		{"bad email", `{"name":"A","email":"not-an-email","password":"longenough"}`, []string{"email"}},
		{"short password", `{"name":"A","email":"a@example.com","password":"abc"}`, []string{"password"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(r, "/register", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}

			var resp struct {
				Error map[string]string `json:"error"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal response: %v", err)
			}
			for _, f := range tc.wantFields {
				if resp.Error[f] == "" {
					t.Fatalf("expected message for field %q, got %v", f, resp.Error)
				}
			}
		})
	}
}

func TestRegisterMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/register", newTestHandler().Register)

	w := postJSON(r, "/register", `{not json`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestLoginValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", newTestHandler().Login)

	w := postJSON(r, "/login", `{"email":"nope","password":"x"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp struct {
		Error map[string]string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Error["email"] == "" || resp.Error["password"] == "" {
		t.Fatalf("expected email and password messages, got %v", resp.Error)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.DELETE("/logout", newTestHandler().Logout)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/logout", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a cookie header")
	}
	c := cookies[0]
	if c.Name != "token" || c.Value != "" || c.MaxAge >= 0 {
		t.Fatalf("expected expired empty token cookie, got %+v", c)
	}
}
