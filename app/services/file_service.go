package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/launchbase/launchbase/app/models"
	"github.com/launchbase/launchbase/app/repositories"
	"github.com/launchbase/launchbase/pkg/database"
	"github.com/launchbase/launchbase/pkg/event"
	"github.com/launchbase/launchbase/pkg/fault"
	"github.com/launchbase/launchbase/pkg/logger"
	"github.com/launchbase/launchbase/pkg/query"
	"github.com/launchbase/launchbase/pkg/storage"
)

type FileService struct {
	files *repositories.FileRepository
	disk  storage.Disk
}

func NewFileService(files *repositories.FileRepository, disk storage.Disk) *FileService {
	return &FileService{files: files, disk: disk}
}

type UploadInput struct {
	OriginalName string
	MimeType     string
	Size         int64
	Category     string
	Description  string
	Content      io.Reader
}

// Upload stores the content on disk under a generated name, then records the
// metadata row. The stored name is the file id plus the original extension,
// so collisions between same-named uploads are impossible.
func (s *FileService) Upload(ctx context.Context, in UploadInput, uploadedBy uint) (models.File, error) {
	if in.Size > models.MaxFileSize {
		return models.File{}, fault.Invalid("file", fmt.Sprintf("file exceeds the %d MB limit", models.MaxFileSize>>20))
	}
	if !models.AllowedMime(in.MimeType) {
		return models.File{}, fault.Invalid("file", "unsupported file type: "+in.MimeType)
	}

	category := in.Category
	if category == "" {
		category = "general"
	}

	id := uuid.New().String()
	filename := id + filepath.Ext(in.OriginalName)
	path := filepath.Join("uploads", filename)

	if err := s.disk.PutStream(path, in.Content); err != nil {
		return models.File{}, fmt.Errorf("store upload: %w", err)
	}

	file := models.File{
		ID:           id,
		OriginalName: in.OriginalName,
		Filename:     filename,
		MimeType:     in.MimeType,
		Size:         in.Size,
		Category:     category,
		Description:  in.Description,
		UploadedBy:   uploadedBy,
		FilePath:     path,
	}

	created, err := s.files.Create(ctx, file)
	if err != nil {
		// Keep disk and table consistent when the insert fails.
		if rmErr := s.disk.Delete(path); rmErr != nil {
			logger.WithCtx(ctx).Warn("orphaned upload left on disk", "path", path, "error", rmErr)
		}
		return models.File{}, err
	}

	event.FireAsync("files.changed", created.ID)
	return created, nil
}

func (s *FileService) List(ctx context.Context, p repositories.FileListParams) ([]models.FileDetail, query.Pagination, error) {
	return s.files.List(ctx, p)
}

func (s *FileService) Get(ctx context.Context, id string) (models.FileDetail, error) {
	file, err := s.files.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return models.FileDetail{}, fault.ErrNotFound
		}
		return models.FileDetail{}, err
	}
	return file, nil
}

// Download returns the metadata row and an open stream of the content.
// The caller owns closing the stream.
func (s *FileService) Download(ctx context.Context, id string) (models.FileDetail, io.ReadCloser, error) {
	file, err := s.Get(ctx, id)
	if err != nil {
		return models.FileDetail{}, nil, err
	}

	rc, err := s.disk.GetStream(file.FilePath)
	if err != nil {
		return models.FileDetail{}, nil, fmt.Errorf("open stored file: %w", err)
	}
	return file, rc, nil
}

// Delete removes a file. Only the uploader or an admin may delete; the disk
// copy goes first so a failed removal never leaves a dangling metadata row.
func (s *FileService) Delete(ctx context.Context, id string, callerID uint, callerRole string) error {
	file, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if file.UploadedBy != callerID && callerRole != models.RoleAdmin {
		return fault.ErrForbidden
	}

	if err := s.disk.Delete(file.FilePath); err != nil {
		logger.WithCtx(ctx).Warn("could not remove stored file", "path", file.FilePath, "error", err)
	}

	if err := s.files.Delete(ctx, id); err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return fault.ErrNotFound
		}
		return err
	}

	event.FireAsync("files.changed", id)
	return nil
}

func (s *FileService) Statistics(ctx context.Context) (models.FileStats, error) {
	return s.files.Statistics(ctx)
}
