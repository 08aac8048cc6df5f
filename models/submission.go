package models

import "time"

// Submission statuses
const (
	StatusPending   = "pending"
	StatusSubmitted = "submitted"
	StatusValidated = "validated"
	StatusRejected  = "rejected"
)

// Submission file types
const (
	FileTypeImage    = "image"
	FileTypeAudio    = "audio"
	FileTypeVideo    = "video"
	FileTypeDocument = "document"
)

// Submission represents the submissions table. The primary key is
// assigned by the client that uploads the file; the database unique
// constraint is the only duplicate guard.
type Submission struct {
	SubmissionID      string     `gorm:"primaryKey;column:submission_id" json:"submission_id"`
	UserEmail         string     `gorm:"column:user_email;index" json:"user_email"`
	FileName          string     `gorm:"column:file_name" json:"file_name"`
	FileType          string     `gorm:"column:file_type" json:"file_type"` // image|audio|video|document
	FileSize          int64      `gorm:"column:file_size" json:"file_size"`
	Status            string     `gorm:"column:status;index" json:"status"` // pending|submitted|validated|rejected
	Preview           *string    `gorm:"column:preview;type:text" json:"preview,omitempty"`
	RejectionReason   *string    `gorm:"column:rejection_reason" json:"rejection_reason,omitempty"`
	RejectionFeedback *string    `gorm:"column:rejection_feedback" json:"rejection_feedback,omitempty"`
	CreateAt          time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt          *time.Time `gorm:"column:update_at" json:"update_at,omitempty"`
}

// ImageMetadata holds the inline preview and dimensions for an
// image-type submission.
type ImageMetadata struct {
	ImageID      uint      `gorm:"primaryKey;column:image_id" json:"image_id"`
	SubmissionID string    `gorm:"column:submission_id;uniqueIndex" json:"submission_id"`
	Preview      *string   `gorm:"column:preview;type:text" json:"preview,omitempty"`
	Width        *int      `gorm:"column:width" json:"width,omitempty"`
	Height       *int      `gorm:"column:height" json:"height,omitempty"`
	MimeType     *string   `gorm:"column:mime_type" json:"mime_type,omitempty"`
	Extension    *string   `gorm:"column:extension" json:"extension,omitempty"`
	CreateAt     time.Time `gorm:"column:create_at" json:"create_at"`

	Submission Submission `gorm:"foreignKey:SubmissionID;references:SubmissionID;constraint:OnDelete:CASCADE" json:"-"`
}

type VideoMetadata struct {
	VideoID      uint      `gorm:"primaryKey;column:video_id" json:"video_id"`
	SubmissionID string    `gorm:"column:submission_id;uniqueIndex" json:"submission_id"`
	Preview      *string   `gorm:"column:preview;type:text" json:"preview,omitempty"`
	Duration     *float64  `gorm:"column:duration" json:"duration,omitempty"`
	Width        *int      `gorm:"column:width" json:"width,omitempty"`
	Height       *int      `gorm:"column:height" json:"height,omitempty"`
	MimeType     *string   `gorm:"column:mime_type" json:"mime_type,omitempty"`
	Extension    *string   `gorm:"column:extension" json:"extension,omitempty"`
	CreateAt     time.Time `gorm:"column:create_at" json:"create_at"`

	Submission Submission `gorm:"foreignKey:SubmissionID;references:SubmissionID;constraint:OnDelete:CASCADE" json:"-"`
}

type AudioMetadata struct {
	AudioID      uint      `gorm:"primaryKey;column:audio_id" json:"audio_id"`
	SubmissionID string    `gorm:"column:submission_id;uniqueIndex" json:"submission_id"`
	Preview      *string   `gorm:"column:preview;type:text" json:"preview,omitempty"`
	Duration     *float64  `gorm:"column:duration" json:"duration,omitempty"`
	MimeType     *string   `gorm:"column:mime_type" json:"mime_type,omitempty"`
	Extension    *string   `gorm:"column:extension" json:"extension,omitempty"`
	CreateAt     time.Time `gorm:"column:create_at" json:"create_at"`

	Submission Submission `gorm:"foreignKey:SubmissionID;references:SubmissionID;constraint:OnDelete:CASCADE" json:"-"`
}

// WebData holds the extracted preview for document-type submissions.
type WebData struct {
	WebDataID    uint      `gorm:"primaryKey;column:web_data_id" json:"web_data_id"`
	SubmissionID string    `gorm:"column:submission_id;uniqueIndex" json:"submission_id"`
	Preview      *string   `gorm:"column:preview;type:text" json:"preview,omitempty"`
	MimeType     *string   `gorm:"column:mime_type" json:"mime_type,omitempty"`
	CreateAt     time.Time `gorm:"column:create_at" json:"create_at"`

	Submission Submission `gorm:"foreignKey:SubmissionID;references:SubmissionID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides
func (Submission) TableName() string {
	return "submissions"
}

func (ImageMetadata) TableName() string {
	return "images"
}

func (VideoMetadata) TableName() string {
	return "videos"
}

func (AudioMetadata) TableName() string {
	return "audio"
}

func (WebData) TableName() string {
	return "web_data"
}

// IsValidFileType reports whether t is a known submission file type.
func IsValidFileType(t string) bool {
	switch t {
	case FileTypeImage, FileTypeAudio, FileTypeVideo, FileTypeDocument:
		return true
	}
	return false
}

// IsValidStatus reports whether s is a known submission status.
func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusSubmitted, StatusValidated, StatusRejected:
		return true
	}
	return false
}
