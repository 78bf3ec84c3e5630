// Package storage saves uploaded files and hands back their public URL.
package storage

import (
	"context"
	"io"
)

// Storage abstracts where uploaded images live. LocalStorage is the only
// implementation; an object store can be swapped in behind the same interface.
type Storage interface {
	// Save stores data under key (e.g. "projects/<id>/<uuid>.jpg") and returns its public URL.
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// KeyFromURL reverses Save's URL, reporting false for URLs this storage did not issue.
	KeyFromURL(url string) (string, bool)
}
