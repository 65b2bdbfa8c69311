package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/drive/v3"
)

const folderMimeType = "application/vnd.google-apps.folder"

// ErrNotFound is returned by Resolve when no file in the folder scope matches the
// requested name (or when the public-read grant failed and the file is unusable).
var ErrNotFound = errors.New("file not found in drive")

// File is a Google Drive file reference. IDs are opaque and unique; names are not.
type File struct {
	ID   string
	Name string
}

// Store is the file-store capability consumed by the resolver and the CLI.
type Store interface {
	ListFiles(ctx context.Context, folderID string) ([]File, error)
	ListSubfolders(ctx context.Context, folderID string) (map[string]string, error)
	FindFiles(ctx context.Context, folderID, name string) ([]File, error)
	GrantPublicRead(ctx context.Context, fileID string) error
}

// DriveStore implements Store on the Google Drive v3 API.
type DriveStore struct {
	service *drive.Service
}

func NewDriveStore(service *drive.Service) *DriveStore {
	return &DriveStore{
		service: service,
	}
}

// ListFiles returns the files in a folder, in the order the Drive API returns them.
func (s *DriveStore) ListFiles(ctx context.Context, folderID string) ([]File, error) {
	query := fmt.Sprintf("'%s' in parents", escape(folderID))

	return s.list(ctx, query)
}

// ListSubfolders returns the child folders of a folder as a name-to-ID map.
func (s *DriveStore) ListSubfolders(ctx context.Context, folderID string) (map[string]string, error) {
	query := fmt.Sprintf("'%s' in parents and mimeType = '%s'", escape(folderID), folderMimeType)

	files, err := s.list(ctx, query)
	if err != nil {
		return nil, err
	}

	folders := map[string]string{}
	for _, f := range files {
		folders[f.Name] = f.ID
	}

	return folders, nil
}

// FindFiles returns the files in a folder whose name matches exactly, in the order
// the Drive API returns them.
func (s *DriveStore) FindFiles(ctx context.Context, folderID, name string) ([]File, error) {
	query := fmt.Sprintf("name = '%s' and '%s' in parents", escape(name), escape(folderID))

	return s.list(ctx, query)
}

// GrantPublicRead widens the file permissions to 'anyone with the link can read'.
// Re-granting an existing permission is a no-op at the Drive API.
func (s *DriveStore) GrantPublicRead(ctx context.Context, fileID string) error {
	permission := drive.Permission{
		Type: "anyone",
		Role: "reader",
	}

	if _, err := s.service.Permissions.Create(fileID, &permission).Context(ctx).Do(); err != nil {
		return err
	}

	return nil
}

func (s *DriveStore) list(ctx context.Context, query string) ([]File, error) {
	files := []File{}
	page := ""

	for {
		call := s.service.Files.List().
			Q(query).
			Fields("nextPageToken", "files(id, name)").
			Context(ctx)

		if page != "" {
			call = call.PageToken(page)
		}

		list, err := call.Do()
		if err != nil {
			return nil, err
		}

		for _, f := range list.Files {
			files = append(files, File{ID: f.Id, Name: f.Name})
		}

		if page = list.NextPageToken; page == "" {
			break
		}
	}

	return files, nil
}

// escape quotes the characters that are significant in a Drive query string literal.
func escape(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)

	return v
}
