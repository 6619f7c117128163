package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"

	"github.com/Igbinosa-Christian/scissorapp/internal/config"
	secretary "github.com/Igbinosa-Christian/scissorapp/internal/service/secretary/v1"
)

func newSessionHandler(t *testing.T) *SessionHandler {
	cfg := &config.SecretConfig{UserKey: "jds__63h3_7ds", SessionID: "scissor_session"}
	secretaryService, err := secretary.NewSecretaryService(cfg)
	if err != nil {
		t.Fatalf(err.Error())
	}
	sessionHandler, err := NewSessionHandler(secretaryService, cfg)
	if err != nil {
		t.Fatalf(err.Error())
	}
	return sessionHandler
}

func noRedirectClient() *resty.Client {
	client := resty.New()
	client.SetRedirectPolicy(resty.RedirectPolicyFunc(func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}))
	return client
}

func TestSessionHandleGoodCookie(t *testing.T) {
	router := chi.NewRouter()
	ts := httptest.NewServer(router)
	defer ts.Close()
	cfg := &config.SecretConfig{UserKey: "jds__63h3_7ds", SessionID: "scissor_session"}
	secretaryService, _ := secretary.NewSecretaryService(cfg)
	sessionHandler, _ := NewSessionHandler(secretaryService, cfg)
	router.Use(sessionHandler.SessionHandle)
	router.Get("/whoami", func(w http.ResponseWriter, r *http.Request) {
		username, _ := GetUsername(r)
		w.Write([]byte(username))
	})

	requestCookie := &http.Cookie{
		Name:  cfg.SessionID,
		Value: secretaryService.Encode("alice"),
		Path:  "/",
	}
	client := resty.New()
	res, err := client.R().SetCookie(requestCookie).Get(ts.URL + "/whoami")
	if err != nil {
		t.Fatalf(err.Error())
	}

	assert.Equal(t, 200, res.StatusCode())
	assert.Equal(t, "alice", string(res.Body()))
}

func TestSessionHandleAbsentCookie(t *testing.T) {
	router := chi.NewRouter()
	ts := httptest.NewServer(router)
	defer ts.Close()
	sessionHandler := newSessionHandler(t)
	router.Use(sessionHandler.SessionHandle)
	router.Get("/whoami", func(w http.ResponseWriter, r *http.Request) {
		username, _ := GetUsername(r)
		w.Write([]byte(username))
	})

	client := resty.New()
	res, err := client.R().Get(ts.URL + "/whoami")
	if err != nil {
		t.Fatalf(err.Error())
	}

	assert.Equal(t, 200, res.StatusCode())
	assert.Equal(t, "", string(res.Body()))
}

func TestSessionHandleBadCookie(t *testing.T) {
	router := chi.NewRouter()
	ts := httptest.NewServer(router)
	defer ts.Close()
	sessionHandler := newSessionHandler(t)
	router.Use(sessionHandler.SessionHandle)
	router.With(sessionHandler.RequireAuth).Get("/dashboard", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("authorized"))
	})

	requestCookie := &http.Cookie{
		Name:  "scissor_session",
		Value: "some-erroneous-token",
		Path:  "/",
	}
	res, err := noRedirectClient().R().SetCookie(requestCookie).Get(ts.URL + "/dashboard")
	if err != nil {
		t.Fatalf(err.Error())
	}

	// a tampered cookie falls through to an anonymous redirect, not a 500
	assert.Equal(t, 303, res.StatusCode())
	assert.Equal(t, "/login", res.Header().Get("Location"))
}

func TestRequireAuthAnonymous(t *testing.T) {
	router := chi.NewRouter()
	ts := httptest.NewServer(router)
	defer ts.Close()
	sessionHandler := newSessionHandler(t)
	router.Use(sessionHandler.SessionHandle)
	router.With(sessionHandler.RequireAuth).Get("/dashboard", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("authorized"))
	})

	res, err := noRedirectClient().R().Get(ts.URL + "/dashboard")
	if err != nil {
		t.Fatalf(err.Error())
	}

	assert.Equal(t, 303, res.StatusCode())
	assert.Equal(t, "/login", res.Header().Get("Location"))
}

func TestSetAndClearSession(t *testing.T) {
	sessionHandler := newSessionHandler(t)

	rec := httptest.NewRecorder()
	sessionHandler.SetSession(rec, "alice")
	cookies := rec.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, "scissor_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	rec = httptest.NewRecorder()
	sessionHandler.ClearSession(rec)
	cookies = rec.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
