package store

import (
	"context"
	"fmt"
	logger "log"
)

var log = logger.New(logger.Writer(), "[DRIVE] ", logger.LstdFlags|logger.Lmsgprefix)

// Resolver maps a file name within a Drive folder scope to a durable public link,
// granting public read access as a side effect. Resolution is uncached - resolving
// the same name twice issues two lookups and two (idempotent) permission grants.
type Resolver struct {
	store Store
}

func NewResolver(store Store) *Resolver {
	return &Resolver{
		store: store,
	}
}

// Resolve looks up a file by base name within a folder and returns its public link.
// A missing file returns ErrNotFound. A failed permission grant is reported and
// treated as ErrNotFound - the link would not be readable anyway. Lookup errors
// are returned as-is.
func (r *Resolver) Resolve(ctx context.Context, fileName, folderID string) (string, error) {
	files, err := r.store.FindFiles(ctx, folderID, fileName)
	if err != nil {
		return "", fmt.Errorf("unable to search folder '%s' for '%s' (%w)", folderID, fileName, err)
	}

	if len(files) == 0 {
		return "", ErrNotFound
	}

	if len(files) > 1 {
		log.Printf("Warn: '%s' matches %d files in folder '%s' - using the first match", fileName, len(files), folderID)
	}

	file := files[0]

	if err := r.store.GrantPublicRead(ctx, file.ID); err != nil {
		log.Printf("Error setting permissions for file '%s': %v", fileName, err)
		return "", ErrNotFound
	}

	return Link(file.ID), nil
}

// Link returns the public URL for a Drive file ID.
func Link(fileID string) string {
	return fmt.Sprintf("https://drive.google.com/uc?id=%s", fileID)
}
