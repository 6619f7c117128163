package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingHandle(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	router := chi.NewRouter()
	ts := httptest.NewServer(router)
	defer ts.Close()
	router.Use(LoggingHandle(zap.New(core)))
	router.Get("/get", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	res, err := resty.New().R().Get(ts.URL + "/get")
	if err != nil {
		t.Fatalf(err.Error())
	}
	assert.Equal(t, 418, res.StatusCode())

	entries := logs.All()
	assert.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, int64(418), fields["status"])
	assert.Equal(t, int64(len("short and stout")), fields["size"])
}
