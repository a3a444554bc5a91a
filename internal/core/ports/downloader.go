package ports

import (
	"context"

	"github.com/mupmc/mup/internal/core/domain"
)

// Downloader streams remote files to local storage.
//
//go:generate go run go.uber.org/mock/mockgen -source=downloader.go -destination=mocks/mock_downloader.go -package=mocks
type Downloader interface {
	// Fetch streams the file at url to dest, creating parent directories
	// as needed.
	Fetch(ctx context.Context, url, dest string) error

	// FetchWithChecksum streams the file at url to dest while feeding the
	// bytes through the digest named by sum.Method, and fails with
	// domain.ErrChecksumMismatch when the final digest differs from
	// sum.Hash. The file is fully written even on mismatch.
	FetchWithChecksum(ctx context.Context, url, dest string, sum domain.Checksum) error
}
