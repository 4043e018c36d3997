package controllers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/launchbase/launchbase/app/models"
	"github.com/launchbase/launchbase/app/repositories"
	"github.com/launchbase/launchbase/app/services"
	"github.com/launchbase/launchbase/pkg/middleware"
	"github.com/launchbase/launchbase/pkg/response"
)

type FileController struct {
	service *services.FileService
}

func NewFileController(service *services.FileService) *FileController {
	return &FileController{service: service}
}

// Upload accepts a multipart form with a "file" part plus optional
// "category" and "description" fields.
func (c *FileController) Upload(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.UserIDFromCtx(r)
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	// Parse with a small memory ceiling; bigger parts spill to temp files.
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	part, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing file field")
		return
	}
	defer part.Close()

	if header.Size > models.MaxFileSize {
		response.BadRequest(w, fmt.Sprintf("File exceeds the %d MB limit", models.MaxFileSize>>20))
		return
	}

	file, err := c.service.Upload(r.Context(), services.UploadInput{
		OriginalName: header.Filename,
		MimeType:     header.Header.Get("Content-Type"),
		Size:         header.Size,
		Category:     r.FormValue("category"),
		Description:  r.FormValue("description"),
		Content:      part,
	}, callerID)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Created(w, "File uploaded successfully", file)
}

func (c *FileController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	files, pagination, err := c.service.List(r.Context(), repositories.FileListParams{
		Page:       queryInt(r, "page", 0),
		Limit:      queryInt(r, "limit", 0),
		Category:   q.Get("category"),
		UploadedBy: queryUintPtr(r, "uploadedBy"),
		Search:     q.Get("search"),
	})
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Paginated(w, "Files retrieved successfully", files, pagination)
}

func (c *FileController) Get(w http.ResponseWriter, r *http.Request) {
	file, err := c.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, "File retrieved successfully", file)
}

// Download streams the stored content with the original filename.
func (c *FileController) Download(w http.ResponseWriter, r *http.Request) {
	file, rc, err := c.service.Download(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, r, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", file.MimeType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.OriginalName))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", file.Size))
	io.Copy(w, rc) //nolint:errcheck
}

func (c *FileController) Delete(w http.ResponseWriter, r *http.Request) {
	callerID, _ := middleware.UserIDFromCtx(r)
	callerRole, _ := middleware.RoleFromCtx(r)

	if err := c.service.Delete(r.Context(), chi.URLParam(r, "id"), callerID, callerRole); err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, "File deleted successfully", nil)
}

func (c *FileController) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := c.service.Statistics(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, "File statistics retrieved", stats)
}
