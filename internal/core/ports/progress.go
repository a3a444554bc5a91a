package ports

import "io"

// Progress renders long-running work, one vertex per unit.
//
//go:generate go run go.uber.org/mock/mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks
type Progress interface {
	// Begin starts a new vertex for the named unit of work.
	Begin(name string) Vertex

	// Close flushes and ends the recording session.
	Close() error
}

// Vertex is one tracked unit of work. Writes land in the vertex output.
type Vertex interface {
	io.Writer

	// Done completes the vertex, successfully or with an error.
	Done(err error)
}
