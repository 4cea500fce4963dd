package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mesh-intelligence/scratchbook/internal/logger"
)

func TestLog(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	h := Log(logger.FromZap(zap.New(core)))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/boom" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("hello"))
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	entries := logs.All()
	require.Len(t, entries, 2)

	ok := entries[0]
	assert.Equal(t, zapcore.DebugLevel, ok.Level)
	assert.Equal(t, int64(http.StatusOK), ok.ContextMap()["status"])
	assert.Equal(t, int64(5), ok.ContextMap()["bytes"])

	boom := entries[1]
	assert.Equal(t, zapcore.WarnLevel, boom.Level)
	assert.Equal(t, "/boom", boom.ContextMap()["path"])
}
