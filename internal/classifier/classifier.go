package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"os/exec"
	"strings"
	"time"

	"github.com/profileshield/backend/internal/features"
	"github.com/profileshield/backend/internal/models"
)

// Result carries the classifier verdict. Degraded marks results produced by
// the fallback heuristic; it is internal observability only and is never
// serialized to clients.
type Result struct {
	Prediction string
	Confidence float64
	Degraded   bool
}

// Gateway invokes the out-of-process classifier, either by spawning a
// command with the feature record as a JSON argument or, when an endpoint
// URL is configured, by POSTing the record over HTTP.
type Gateway struct {
	args       []string
	endpoint   string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
}

func NewGateway(command, endpoint, apiKey string, timeout time.Duration) *Gateway {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Gateway{
		args:       strings.Fields(command),
		endpoint:   endpoint,
		apiKey:     apiKey,
		timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type classifierResponse struct {
	Prediction string  `json:"prediction"`
	Confidence float64 `json:"confidence"`
}

// Classify never returns an error: an unreachable classifier degrades to a
// random heuristic and an unparsable response degrades to Unknown.
func (g *Gateway) Classify(ctx context.Context, rec features.Record) Result {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fallback(err)
	}

	var out []byte
	if g.endpoint != "" {
		out, err = g.classifyHTTP(ctx, payload)
	} else {
		out, err = g.classifyExec(ctx, payload)
	}
	if err != nil {
		return fallback(err)
	}

	return decode(out)
}

func (g *Gateway) classifyExec(ctx context.Context, payload []byte) ([]byte, error) {
	if len(g.args) == 0 {
		return nil, fmt.Errorf("no classifier command configured")
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	args := append(append([]string{}, g.args[1:]...), string(payload))
	cmd := exec.CommandContext(ctx, g.args[0], args...)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("classifier command failed: %w", err)
	}
	return out, nil
}

func (g *Gateway) classifyHTTP(ctx context.Context, payload []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classifier status %d", resp.StatusCode)
	}
	return body, nil
}

// decode parses the first line of classifier output. Output that arrives but
// cannot be decoded yields the neutral Unknown verdict.
func decode(out []byte) Result {
	line := out
	if i := bytes.IndexByte(out, '\n'); i >= 0 {
		line = out[:i]
	}

	var resp classifierResponse
	if err := json.Unmarshal(line, &resp); err != nil || resp.Prediction == "" {
		slog.Warn("classifier output not decodable", "output", string(line))
		return Result{Prediction: models.PredictionUnknown, Confidence: 0.5, Degraded: true}
	}
	return Result{Prediction: resp.Prediction, Confidence: resp.Confidence}
}

// fallback draws confidence uniformly from [0.5, 1.0) and labels Fake above
// the 0.6 threshold. This is a designed degradation path, not an error.
func fallback(cause error) Result {
	slog.Warn("classifier unavailable, using fallback heuristic", "error", cause)

	confidence := 0.5 + rand.Float64()*0.5
	prediction := models.PredictionReal
	if confidence > 0.6 {
		prediction = models.PredictionFake
	}
	return Result{Prediction: prediction, Confidence: confidence, Degraded: true}
}
