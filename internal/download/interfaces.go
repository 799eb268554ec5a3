package download

import (
	"context"
)

// Downloader defines the interface for the download service.
type Downloader interface {
	Fetch(ctx context.Context, job Job) (*Outcome, error)
}
