package services

import (
	"context"
	"strings"
	"time"

	"community-hub-api/models"

	"gorm.io/gorm"
)

// previewQueryTimeout bounds every preview lookup; preview blobs are
// inline text columns and a slow row must not stall the dashboard.
const previewQueryTimeout = 5 * time.Second

// Default MIME types used when the stored payload does not declare one.
const (
	defaultImageMime    = "image/jpeg"
	defaultVideoMime    = "video/mp4"
	defaultAudioMime    = "audio/mpeg"
	defaultDocumentMime = "application/pdf"
)

// PreviewResult is the outcome of a preview lookup. When Found is
// false, Message explains what was missing and Preview stays nil.
type PreviewResult struct {
	Preview  *string
	MimeType string
	Found    bool
	Message  string
}

type PreviewService struct {
	db *gorm.DB
}

func NewPreviewService(db *gorm.DB) *PreviewService {
	return &PreviewService{db: db}
}

// Resolve locates the inline preview for a submission, routing by the
// submission's file type and normalizing the stored payload into a
// self-describing data URL.
func (s *PreviewService) Resolve(submissionID string) (PreviewResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), previewQueryTimeout)
	defer cancel()
	db := s.db.WithContext(ctx)

	var sub models.Submission
	if err := db.Select("submission_id, file_type, preview").
		Where("submission_id = ?", submissionID).
		First(&sub).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return PreviewResult{Message: "Submission not found"}, nil
		}
		return PreviewResult{}, err
	}

	var raw *string
	var storedMime *string
	defaultMime := defaultDocumentMime

	switch sub.FileType {
	case models.FileTypeImage:
		defaultMime = defaultImageMime
		var row models.ImageMetadata
		if err := db.Where("submission_id = ?", submissionID).First(&row).Error; err == nil {
			raw, storedMime = row.Preview, row.MimeType
		} else if err != gorm.ErrRecordNotFound {
			return PreviewResult{}, err
		}
	case models.FileTypeVideo:
		defaultMime = defaultVideoMime
		var row models.VideoMetadata
		if err := db.Where("submission_id = ?", submissionID).First(&row).Error; err == nil {
			raw, storedMime = row.Preview, row.MimeType
		} else if err != gorm.ErrRecordNotFound {
			return PreviewResult{}, err
		}
	case models.FileTypeAudio:
		defaultMime = defaultAudioMime
		var row models.AudioMetadata
		if err := db.Where("submission_id = ?", submissionID).First(&row).Error; err == nil {
			raw, storedMime = row.Preview, row.MimeType
		} else if err != gorm.ErrRecordNotFound {
			return PreviewResult{}, err
		}
	default:
		res, err := s.lookupWebData(db, submissionID)
		if err != nil {
			return PreviewResult{}, err
		}
		raw, storedMime = res.Preview, nil
		if res.MimeType != "" {
			storedMime = &res.MimeType
		}
	}

	// Documents may also carry the preview on the submission row itself.
	if (raw == nil || *raw == "") && sub.Preview != nil && *sub.Preview != "" {
		raw = sub.Preview
	}

	if raw == nil || *raw == "" {
		return PreviewResult{Message: "No preview available for this submission"}, nil
	}

	normalized, mime := normalizePreview(*raw, storedMime, defaultMime)
	return PreviewResult{Preview: &normalized, MimeType: mime, Found: true}, nil
}

// ResolveWebData looks up the extracted web-data preview only, with
// fallback to the submission's own preview column.
func (s *PreviewService) ResolveWebData(submissionID string) (PreviewResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), previewQueryTimeout)
	defer cancel()
	db := s.db.WithContext(ctx)

	res, err := s.lookupWebData(db, submissionID)
	if err != nil {
		return PreviewResult{}, err
	}

	raw := res.Preview
	var storedMime *string
	if res.MimeType != "" {
		storedMime = &res.MimeType
	}

	if raw == nil || *raw == "" {
		var sub models.Submission
		if err := db.Select("submission_id, preview").
			Where("submission_id = ?", submissionID).
			First(&sub).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return PreviewResult{Message: "Submission not found"}, nil
			}
			return PreviewResult{}, err
		}
		raw = sub.Preview
	}

	if raw == nil || *raw == "" {
		return PreviewResult{Message: "No web data preview available for this submission"}, nil
	}

	normalized, mime := normalizePreview(*raw, storedMime, defaultDocumentMime)
	return PreviewResult{Preview: &normalized, MimeType: mime, Found: true}, nil
}

type webDataLookup struct {
	Preview  *string
	MimeType string
}

func (s *PreviewService) lookupWebData(db *gorm.DB, submissionID string) (webDataLookup, error) {
	var row models.WebData
	err := db.Where("submission_id = ?", submissionID).First(&row).Error
	if err == gorm.ErrRecordNotFound {
		return webDataLookup{}, nil
	}
	if err != nil {
		return webDataLookup{}, err
	}

	out := webDataLookup{Preview: row.Preview}
	if row.MimeType != nil {
		out.MimeType = *row.MimeType
	}
	return out, nil
}

// normalizePreview turns a stored preview value into a self-describing
// data URL. Values that are already data URLs or remote references pass
// through unchanged; bare base64 payloads are wrapped with the stored
// MIME type or the type-appropriate default.
func normalizePreview(raw string, storedMime *string, defaultMime string) (string, string) {
	trimmed := strings.TrimSpace(raw)

	if strings.HasPrefix(trimmed, "data:") {
		return trimmed, dataURLMime(trimmed, defaultMime)
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") || strings.HasPrefix(trimmed, "//") {
		mime := defaultMime
		if storedMime != nil && *storedMime != "" {
			mime = *storedMime
		}
		return trimmed, mime
	}

	mime := defaultMime
	if storedMime != nil && *storedMime != "" {
		mime = *storedMime
	}
	return "data:" + mime + ";base64," + trimmed, mime
}

func dataURLMime(dataURL, fallback string) string {
	rest := strings.TrimPrefix(dataURL, "data:")
	if idx := strings.IndexAny(rest, ";,"); idx > 0 {
		return rest[:idx]
	}
	return fallback
}
