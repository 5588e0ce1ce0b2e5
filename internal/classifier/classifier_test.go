package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/profileshield/backend/internal/features"
	"github.com/profileshield/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "classifier.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func testRecord() features.Record {
	rec, _ := features.Extract("https://instagram.com/someuser", "instagram")
	return rec
}

func TestClassifyExec(t *testing.T) {
	script := writeScript(t, `echo '{"prediction":"Fake","confidence":0.91}'`)
	g := NewGateway(script, "", "", 5*time.Second)

	result := g.Classify(context.Background(), testRecord())
	assert.Equal(t, models.PredictionFake, result.Prediction)
	assert.InDelta(t, 0.91, result.Confidence, 1e-9)
	assert.False(t, result.Degraded)
}

func TestClassifyExecFailureFallsBack(t *testing.T) {
	script := writeScript(t, `exit 1`)
	g := NewGateway(script, "", "", 5*time.Second)

	for i := 0; i < 20; i++ {
		result := g.Classify(context.Background(), testRecord())
		assert.True(t, result.Degraded)
		assert.GreaterOrEqual(t, result.Confidence, 0.5)
		assert.Less(t, result.Confidence, 1.0)
		if result.Confidence > 0.6 {
			assert.Equal(t, models.PredictionFake, result.Prediction)
		} else {
			assert.Equal(t, models.PredictionReal, result.Prediction)
		}
	}
}

func TestClassifyExecTimeoutFallsBack(t *testing.T) {
	script := writeScript(t, `sleep 5`)
	g := NewGateway(script, "", "", 100*time.Millisecond)

	result := g.Classify(context.Background(), testRecord())
	assert.True(t, result.Degraded)
	assert.Contains(t, []string{models.PredictionReal, models.PredictionFake}, result.Prediction)
}

func TestClassifyExecBadOutputIsUnknown(t *testing.T) {
	for _, body := range []string{
		`echo 'not json'`,
		`echo '{"confidence":0.7}'`,
	} {
		script := writeScript(t, body)
		g := NewGateway(script, "", "", 5*time.Second)

		result := g.Classify(context.Background(), testRecord())
		assert.Equal(t, models.PredictionUnknown, result.Prediction)
		assert.Equal(t, 0.5, result.Confidence)
	}
}

func TestClassifyHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var rec features.Record
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rec))
		assert.Equal(t, 1, rec.Platform)

		_ = json.NewEncoder(w).Encode(map[string]any{"prediction": "Real", "confidence": 0.42})
	}))
	defer srv.Close()

	g := NewGateway("", srv.URL, "secret", 5*time.Second)
	result := g.Classify(context.Background(), testRecord())
	assert.Equal(t, models.PredictionReal, result.Prediction)
	assert.InDelta(t, 0.42, result.Confidence, 1e-9)
	assert.False(t, result.Degraded)
}

func TestClassifyHTTPErrorStatusFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := NewGateway("", srv.URL, "", 5*time.Second)
	result := g.Classify(context.Background(), testRecord())
	assert.True(t, result.Degraded)
	assert.GreaterOrEqual(t, result.Confidence, 0.5)
	assert.Less(t, result.Confidence, 1.0)
}

func TestClassifyHTTPBadBodyIsUnknown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>oops</html>"))
	}))
	defer srv.Close()

	g := NewGateway("", srv.URL, "", 5*time.Second)
	result := g.Classify(context.Background(), testRecord())
	assert.Equal(t, models.PredictionUnknown, result.Prediction)
	assert.Equal(t, 0.5, result.Confidence)
}
