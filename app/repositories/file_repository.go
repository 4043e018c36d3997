package repositories

import (
	"context"
	"fmt"

	"github.com/launchbase/launchbase/app/models"
	"github.com/launchbase/launchbase/pkg/database"
	"github.com/launchbase/launchbase/pkg/query"
)

// FileRepository handles database operations for File.
type FileRepository struct {
	store database.Store
}

func NewFileRepository(store database.Store) *FileRepository {
	return &FileRepository{store: store}
}

// FileListParams are the recognised list filters.
type FileListParams struct {
	Page       int
	Limit      int
	Category   string
	UploadedBy *uint
	Search     string
}

// List returns a page of files joined with uploader columns, newest first.
func (r *FileRepository) List(ctx context.Context, p FileListParams) ([]models.FileDetail, query.Pagination, error) {
	seq := query.NewSequencer()
	f := query.NewFilterBuilder(seq)
	f.Equal("f.category", p.Category)
	f.Equal("f.uploaded_by", p.UploadedBy)
	f.Search(p.Search, "f.original_name", "f.description")

	total, err := r.store.Count(ctx,
		"SELECT COUNT(*) FROM files f WHERE "+f.Clause(), f.Args()...)
	if err != nil {
		return nil, query.Pagination{}, err
	}

	page := query.NewPage(p.Page, p.Limit)
	limitOffset, pageArgs := page.LimitOffset(seq)

	stmt := fmt.Sprintf(`SELECT f.*, u.first_name, u.last_name, u.email AS uploader_email
		FROM files f
		LEFT JOIN users u ON f.uploaded_by = u.id
		WHERE %s ORDER BY f.created_at DESC %s`, f.Clause(), limitOffset)

	var files []models.FileDetail
	args := append(f.Args(), pageArgs...)
	if err := r.store.Select(ctx, &files, stmt, args...); err != nil {
		return nil, query.Pagination{}, err
	}

	return files, page.Meta(total), nil
}

// FindByID returns one file joined with uploader details.
func (r *FileRepository) FindByID(ctx context.Context, id string) (models.FileDetail, error) {
	var file models.FileDetail
	err := r.store.Get(ctx, &file,
		`SELECT f.*, u.first_name, u.last_name, u.email AS uploader_email
		 FROM files f
		 LEFT JOIN users u ON f.uploaded_by = u.id
		 WHERE f.id = $1`, id)
	return file, err
}

// Create inserts a new file record and returns the stored row.
func (r *FileRepository) Create(ctx context.Context, f models.File) (models.File, error) {
	var created models.File
	err := r.store.Get(ctx, &created,
		`INSERT INTO files (id, original_name, filename, mime_type, size, category, description, uploaded_by, file_path, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		 RETURNING *`,
		f.ID, f.OriginalName, f.Filename, f.MimeType, f.Size, f.Category, f.Description, f.UploadedBy, f.FilePath)
	return created, err
}

// Delete removes a file record permanently.
func (r *FileRepository) Delete(ctx context.Context, id string) error {
	affected, err := r.store.Exec(ctx, "DELETE FROM files WHERE id = $1", id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return database.ErrNoRows
	}
	return nil
}

// Statistics returns aggregate upload counts by category.
func (r *FileRepository) Statistics(ctx context.Context) (models.FileStats, error) {
	var stats models.FileStats
	err := r.store.Get(ctx, &stats, `SELECT
		COUNT(*) AS total_files,
		COALESCE(SUM(size), 0) AS total_size,
		COUNT(DISTINCT uploaded_by) AS unique_uploaders,
		COUNT(CASE WHEN category = 'image' THEN 1 END) AS image_count,
		COUNT(CASE WHEN category = 'document' THEN 1 END) AS document_count,
		COUNT(CASE WHEN category = 'video' THEN 1 END) AS video_count,
		COUNT(CASE WHEN category = 'audio' THEN 1 END) AS audio_count
	FROM files`)
	return stats, err
}
