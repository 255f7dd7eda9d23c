package controllers

import (
	"net/http"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smartwayz/api-go/config"
	"github.com/smartwayz/api-go/utils"
)

func newTestUploadController() *UploadController {
	return &UploadController{R2Config: &config.R2Config{
		BucketName: "evidence-test",
		PublicURL:  "https://cdn.example.com",
	}}
}

func TestIsValidPhotoType(t *testing.T) {
	uc := newTestUploadController()

	for _, ct := range []string{"image/jpeg", "image/jpg", "image/png", "image/webp", "image/heic"} {
		assert.True(t, uc.isValidPhotoType(ct), ct)
	}
	for _, ct := range []string{"image/gif", "video/mp4", "application/pdf", ""} {
		assert.False(t, uc.isValidPhotoType(ct), ct)
	}
}

func TestIsValidPhotoSize(t *testing.T) {
	uc := newTestUploadController()

	assert.True(t, uc.isValidPhotoSize(1))
	assert.True(t, uc.isValidPhotoSize(10*1024*1024))
	assert.False(t, uc.isValidPhotoSize(10*1024*1024+1))
	assert.False(t, uc.isValidPhotoSize(0))
	assert.False(t, uc.isValidPhotoSize(-1))
}

func TestGenerateEvidenceKey(t *testing.T) {
	uc := newTestUploadController()

	key := uc.generateEvidenceKey(42, "photo.JPG")
	assert.Regexp(t, regexp.MustCompile(`^evidence/42/\d+_[0-9a-f-]{36}\.JPG$`), key)

	// Keys are unique even for the same input.
	assert.NotEqual(t, key, uc.generateEvidenceKey(42, "photo.JPG"))
}

func TestGetEvidenceUploadURL_RejectsBadRequests(t *testing.T) {
	uc := newTestUploadController()
	user := &utils.UserClaims{UserID: 42, UserType: utils.UserTypeCitizen}

	w := performJSON(t, uc.GetEvidenceUploadURL, user, http.MethodPost, "/uploads/report-evidence",
		EvidenceUploadRequest{FileName: "clip.mp4", ContentType: "video/mp4", FileSize: 1024})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid file type")

	w = performJSON(t, uc.GetEvidenceUploadURL, user, http.MethodPost, "/uploads/report-evidence",
		EvidenceUploadRequest{FileName: "big.png", ContentType: "image/png", FileSize: 11 * 1024 * 1024})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "File size exceeds limit")

	w = performJSON(t, uc.GetEvidenceUploadURL, nil, http.MethodPost, "/uploads/report-evidence",
		EvidenceUploadRequest{FileName: "a.png", ContentType: "image/png", FileSize: 1})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
