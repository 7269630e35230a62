package client

import (
	"net/http"
	"strings"
	"time"
)

const (
	DefaultStepDelay = time.Second
	DefaultDoneDelay = 500 * time.Millisecond
)

type implClient struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Transcriber for the server at baseURL. A nil httpClient uses http.DefaultClient.
func New(baseURL string, httpClient *http.Client) Transcriber {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &implClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type Option func(*Progress)

func WithStepDelay(d time.Duration) Option {
	return func(p *Progress) { p.stepDelay = d }
}

func WithDoneDelay(d time.Duration) Option {
	return func(p *Progress) { p.doneDelay = d }
}

func NewProgress(t Transcriber, render RenderFunc, opts ...Option) *Progress {
	p := &Progress{
		transcriber: t,
		render:      render,
		stepDelay:   DefaultStepDelay,
		doneDelay:   DefaultDoneDelay,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.render == nil {
		p.render = func(View) {}
	}
	return p
}
