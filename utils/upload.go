package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MaxPhotoSize caps profile photo uploads at 5MB.
const MaxPhotoSize = 5 * 1024 * 1024

var allowedPhotoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// ValidatePhotoUpload checks extension and size limits for a profile photo.
// Returns the lowercased extension on success.
func ValidatePhotoUpload(header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedPhotoExtensions[ext] {
		return "", fmt.Errorf("only image files (JPG, JPEG, PNG, GIF) are allowed")
	}
	if header.Size > MaxPhotoSize {
		return "", fmt.Errorf("file size must be less than 5MB")
	}
	return ext, nil
}

// SaveProfilePhoto stores the uploaded file under uploads/profiles with a
// random filename and returns the public path ("/uploads/profiles/<name>").
func SaveProfilePhoto(c *gin.Context, header *multipart.FileHeader, ext string) (string, error) {
	dir := filepath.Join("uploads", "profiles")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir failed: %w", err)
	}

	name := uuid.New().String() + ext
	if err := c.SaveUploadedFile(header, filepath.Join(dir, name)); err != nil {
		return "", fmt.Errorf("save upload failed: %w", err)
	}
	return "/uploads/profiles/" + name, nil
}

// RemoveProfilePhoto deletes a previously stored photo. Default/stock photos
// are never touched. Best-effort: a missing file is not an error.
func RemoveProfilePhoto(publicPath string) {
	p := strings.TrimSpace(publicPath)
	if p == "" || !strings.HasPrefix(p, "/uploads/") {
		return
	}
	_ = os.Remove(strings.TrimPrefix(p, "/"))
}
