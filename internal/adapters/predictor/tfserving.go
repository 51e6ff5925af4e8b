// Package predictor implements ports.Predictor against a TensorFlow Serving
// REST endpoint hosting the next-character model.
package predictor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"crackbench/internal/core/ports"
	"crackbench/internal/platform/errors"
	"crackbench/internal/platform/httpclient"
	"crackbench/internal/platform/logx"
)

// DefaultModel is the served model name.
const DefaultModel = "password_model"

// Options configura el cliente del modelo.
type Options struct {
	Endpoint string // e.g. http://localhost:8501
	Model    string
	Timeout  time.Duration
	Logger   logx.Logger
}

// TFServing calls POST <endpoint>/v1/models/<model>:predict with a single
// instance and returns its distribution.
type TFServing struct {
	client *httpclient.Client
	url    string
	logger logx.Logger
}

var _ ports.Predictor = (*TFServing)(nil)

type predictRequest struct {
	Instances [][]int `json:"instances"`
}

type predictResponse struct {
	Predictions [][]float32 `json:"predictions"`
	Error       string      `json:"error,omitempty"`
}

// NewTFServing crea el cliente. Endpoint is required.
func NewTFServing(opts Options) (*TFServing, error) {
	endpoint := strings.TrimRight(strings.TrimSpace(opts.Endpoint), "/")
	if endpoint == "" {
		return nil, errors.Wrap(errors.ErrInvalidInput, "predictor endpoint is required")
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.Logger == nil {
		opts.Logger = logx.NewNop()
	}
	logger := opts.Logger.With("component", "predictor", "model", opts.Model)

	return &TFServing{
		client: httpclient.New(httpclient.Config{Timeout: opts.Timeout}, logger),
		url:    fmt.Sprintf("%s/v1/models/%s:predict", endpoint, opts.Model),
		logger: logger,
	}, nil
}

// URL returns the predict endpoint.
func (p *TFServing) URL() string {
	return p.url
}

// Predict implementa ports.Predictor.
func (p *TFServing) Predict(ctx context.Context, window []int) ([]float32, error) {
	var resp predictResponse
	if err := p.client.PostJSON(ctx, p.url, predictRequest{Instances: [][]int{window}}, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, errors.Wrap(errors.ErrInvalidResponse, resp.Error)
	}
	if len(resp.Predictions) == 0 || len(resp.Predictions[0]) == 0 {
		return nil, errors.Wrap(errors.ErrInvalidResponse, "empty predictions")
	}
	return resp.Predictions[0], nil
}
