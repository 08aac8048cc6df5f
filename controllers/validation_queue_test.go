package controllers_test

import (
	"encoding/json"
	"testing"

	"community-hub-api/config"
	"community-hub-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueDuplicatePairIsBenign(t *testing.T) {
	adminEmail, token := newActiveAdmin(t)
	createTestSubmission(t, "sub-queue-dup", "qdup@hub.example", models.FileTypeImage, nil)

	body := map[string]interface{}{
		"adminEmail":   adminEmail,
		"submissionId": "sub-queue-dup",
	}

	w := performRequest(t, "POST", "/api/v1/validation-queue", body, authHeader(token))
	require.Equal(t, 200, w.Code, w.Body.String())

	// Second add of the same pair is reported as already queued, not an
	// error, and leaves exactly one row.
	w = performRequest(t, "POST", "/api/v1/validation-queue", body, authHeader(token))
	require.Equal(t, 200, w.Code, w.Body.String())
	out := decodeBody(t, w)
	results := out["results"].([]interface{})
	require.Len(t, results, 1)
	assert.Equal(t, "already_queued", results[0].(map[string]interface{})["status"])

	var count int64
	config.DB.Model(&models.ValidationQueueEntry{}).
		Where("submission_id = ? AND admin_email = ?", "sub-queue-dup", adminEmail).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestQueueBulkAddAndPartialRemove(t *testing.T) {
	adminEmail, token := newActiveAdmin(t)
	createTestSubmission(t, "sub-bulk-1", "bulk@hub.example", models.FileTypeImage, nil)
	createTestSubmission(t, "sub-bulk-2", "bulk@hub.example", models.FileTypeVideo, nil)

	w := performRequest(t, "POST", "/api/v1/validation-queue", map[string]interface{}{
		"adminEmail":    adminEmail,
		"submissionIds": []string{"sub-bulk-1", "sub-bulk-2"},
	}, authHeader(token))
	require.Equal(t, 200, w.Code, w.Body.String())

	// Removing a mix of queued and never-queued ids succeeds item by
	// item: the present rows go away, the absent one reports not_found.
	w = performRequest(t, "DELETE", "/api/v1/validation-queue", map[string]interface{}{
		"adminEmail":    adminEmail,
		"submissionIds": []string{"sub-bulk-1", "sub-never-queued", "sub-bulk-2"},
	}, authHeader(token))
	require.Equal(t, 200, w.Code, w.Body.String())

	out := decodeBody(t, w)
	results := out["results"].([]interface{})
	require.Len(t, results, 3)
	statuses := make([]string, 0, 3)
	for _, r := range results {
		statuses = append(statuses, r.(map[string]interface{})["status"].(string))
	}
	assert.Equal(t, []string{"removed", "not_found", "removed"}, statuses)

	var count int64
	config.DB.Model(&models.ValidationQueueEntry{}).
		Where("admin_email = ?", adminEmail).
		Count(&count)
	assert.Zero(t, count)
}

func TestQueueListingIncludesSubmissions(t *testing.T) {
	adminEmail, token := newActiveAdmin(t)
	createTestSubmission(t, "sub-queue-list", "qlist@hub.example", models.FileTypeDocument, nil)

	w := performRequest(t, "POST", "/api/v1/validation-queue", map[string]interface{}{
		"adminEmail":   adminEmail,
		"submissionId": "sub-queue-list",
	}, authHeader(token))
	require.Equal(t, 200, w.Code)

	w = performRequest(t, "GET", "/api/v1/validation-queue?adminEmail="+adminEmail, nil, authHeader(token))
	require.Equal(t, 200, w.Code, w.Body.String())

	var entries []models.ValidationQueueEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, models.QueueStatusPending, entries[0].Status)
	assert.Equal(t, "sub-queue-list", entries[0].Submission.SubmissionID)
	assert.Equal(t, "qlist@hub.example", entries[0].Submission.UserEmail)
}
