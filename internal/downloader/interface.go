package downloader

import "context"

// Request describes one media download.
type Request struct {
	URL          string
	OutputPath   string
	ExtractAudio bool
	AudioFormat  string
}

// Downloader fetches remote media into a local file
type Downloader interface {
	Download(ctx context.Context, req Request) error
}
