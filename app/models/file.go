package models

import "time"

// File categories map to the MIME whitelist enforced at upload time.
var AllowedFileTypes = map[string][]string{
	"image":    {"image/jpeg", "image/png", "image/gif", "image/webp"},
	"document": {"application/pdf", "application/msword", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	"video":    {"video/mp4", "video/avi", "video/mov"},
	"audio":    {"audio/mpeg", "audio/wav", "audio/ogg"},
}

// MaxFileSize caps a single upload at 10 MB.
const MaxFileSize = 10 << 20

// AllowedMime reports whether mime appears in any category's whitelist.
func AllowedMime(mime string) bool {
	for _, types := range AllowedFileTypes {
		for _, t := range types {
			if t == mime {
				return true
			}
		}
	}
	return false
}

// File is an uploaded object. The row id is a generated UUID token; the
// stored filename is that token plus the original extension.
type File struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	OriginalName string    `gorm:"size:512;not null" json:"original_name"`
	Filename     string    `gorm:"size:512;not null" json:"filename"`
	MimeType     string    `gorm:"size:128;not null" json:"mime_type"`
	Size         int64     `gorm:"not null" json:"size"`
	Category     string    `gorm:"size:100;not null;default:general;index" json:"category"`
	Description  string    `gorm:"type:text" json:"description"`
	UploadedBy   uint      `gorm:"not null;index" json:"uploaded_by"`
	FilePath     string    `gorm:"size:1024;not null" json:"file_path"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FileDetail is a file row joined with uploader columns.
type FileDetail struct {
	File
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
	UploaderEmail string `json:"uploader_email,omitempty"`
}

// FileStats is the aggregate row produced by the file statistics query.
type FileStats struct {
	TotalFiles      int64 `json:"total_files"`
	TotalSize       int64 `json:"total_size"`
	UniqueUploaders int64 `json:"unique_uploaders"`
	ImageCount      int64 `json:"image_count"`
	DocumentCount   int64 `json:"document_count"`
	VideoCount      int64 `json:"video_count"`
	AudioCount      int64 `json:"audio_count"`
}
