package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"ClinicRecords/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useMemoryStore(t *testing.T) {
	t.Helper()
	isTest = true
	t.Cleanup(func() { isTest = false })
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("REDIS_URL", "")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("ENV", "development")
}

func TestServe_WiresRoutes(t *testing.T) {
	useMemoryStore(t)
	gin.SetMode(gin.TestMode)

	var captured server.Options
	prev := startServer
	startServer = func(opts server.Options) error {
		captured = opts
		return nil
	}
	defer func() { startServer = prev }()

	cmd := newRootCmd()
	cmd.SetArgs([]string{"serve"})
	require.NoError(t, cmd.Execute())

	assert.False(t, captured.JobsEnabled)
	require.NotNil(t, captured.WebServerPreHandler)
	r := server.NewEngine(captured)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/signupPatient",
		bytes.NewBufferString(`{"email":"jane@x.com","password":"pw1","name":"Jane Doe"}`)))
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/patients", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	for _, fn := range captured.OnShutdown {
		fn()
	}
}

func TestServe_BadConfig(t *testing.T) {
	useMemoryStore(t)
	t.Setenv("KEY_STRATEGY", "serial")

	called := false
	prev := startServer
	startServer = func(server.Options) error { called = true; return nil }
	defer func() { startServer = prev }()

	cmd := newRootCmd()
	cmd.SetArgs([]string{"serve"})
	assert.Error(t, cmd.Execute())
	assert.False(t, called)
}

func TestMigrate_MemoryStoreIsNoop(t *testing.T) {
	useMemoryStore(t)
	cmd := newRootCmd()
	cmd.SetArgs([]string{"migrate"})
	assert.NoError(t, cmd.Execute())
}
