package controllers_test

import (
	"strings"
	"testing"

	"community-hub-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewWrapsRawBase64Image(t *testing.T) {
	// A bare base64 payload with no declared MIME type resolves to a
	// jpeg data URL.
	createTestSubmission(t, "sub-preview-img", "pimg@hub.example", models.FileTypeImage, map[string]interface{}{
		"preview": "c29tZS1pbWFnZS1ieXRlcw==",
	})

	w := performRequest(t, "GET", "/api/v1/submissions/sub-preview-img/preview", nil, nil)
	require.Equal(t, 200, w.Code, w.Body.String())

	body := decodeBody(t, w)
	preview := body["preview"].(string)
	assert.True(t, strings.HasPrefix(preview, "data:image/jpeg;base64,"), preview)
	assert.Equal(t, "image/jpeg", body["mime_type"])
}

func TestPreviewUsesStoredMimeType(t *testing.T) {
	createTestSubmission(t, "sub-preview-png", "ppng@hub.example", models.FileTypeImage, map[string]interface{}{
		"preview":  "cG5nLWJ5dGVz",
		"mimeType": "image/png",
	})

	w := performRequest(t, "GET", "/api/v1/submissions/sub-preview-png/preview", nil, nil)
	require.Equal(t, 200, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.True(t, strings.HasPrefix(body["preview"].(string), "data:image/png;base64,"))
	assert.Equal(t, "image/png", body["mime_type"])
}

func TestPreviewPassesThroughDataURL(t *testing.T) {
	dataURL := "data:image/gif;base64,R0lGODlh"
	createTestSubmission(t, "sub-preview-data", "pdata@hub.example", models.FileTypeImage, map[string]interface{}{
		"preview": dataURL,
	})

	w := performRequest(t, "GET", "/api/v1/submissions/sub-preview-data/preview", nil, nil)
	require.Equal(t, 200, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, dataURL, body["preview"])
	assert.Equal(t, "image/gif", body["mime_type"])
}

func TestPreviewMissingDocument(t *testing.T) {
	// Document submission with no preview anywhere: structured 404 with
	// a null preview field.
	createTestSubmission(t, "sub-preview-doc", "pdoc@hub.example", models.FileTypeDocument, nil)

	w := performRequest(t, "GET", "/api/v1/submissions/sub-preview-doc/preview", nil, nil)
	require.Equal(t, 404, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Nil(t, body["preview"])
	assert.NotEmpty(t, body["error"])
}

func TestPreviewUnknownSubmission(t *testing.T) {
	w := performRequest(t, "GET", "/api/v1/submissions/no-such-sub/preview", nil, nil)
	require.Equal(t, 404, w.Code)
	assert.Nil(t, decodeBody(t, w)["preview"])
}

func TestWebDataPreviewFallsBackToSubmissionColumn(t *testing.T) {
	// Document preview stored on the submission row itself, with no
	// web_data row; the web-data endpoint falls back to it.
	createTestSubmission(t, "sub-webdata-fb", "pwd@hub.example", models.FileTypeDocument, nil)

	w := performRequest(t, "POST", "/api/v1/submissions/sub-webdata-fb/submit", map[string]interface{}{
		"userEmail": "pwd@hub.example",
		"fileName":  "doc.pdf",
		"fileType":  models.FileTypeDocument,
	}, nil)
	require.Equal(t, 200, w.Code)

	// Store the preview directly on the submission column.
	seedSubmissionPreview(t, "sub-webdata-fb", "cGRmLWJ5dGVz")

	w = performRequest(t, "GET", "/api/v1/web-data/sub-webdata-fb/preview", nil, nil)
	require.Equal(t, 200, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.True(t, strings.HasPrefix(body["preview"].(string), "data:application/pdf;base64,"))
	assert.Equal(t, "application/pdf", body["mime_type"])
}
