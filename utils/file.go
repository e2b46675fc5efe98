package utils

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	ErrFileTooLarge    = errors.New("file size exceeds maximum allowed size")
	ErrInvalidFileType = errors.New("invalid file type. Only jpg, jpeg, png, gif, webp allowed")
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

func ValidateImage(fileHeader *multipart.FileHeader, maxSize int64) error {
	if fileHeader.Size > maxSize {
		return ErrFileTooLarge
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		return ErrInvalidFileType
	}
	return nil
}

// UploadFile saves an image under uploadDir/subDir and returns its path
// relative to uploadDir, using forward slashes.
func UploadFile(c *gin.Context, fileHeader *multipart.FileHeader, uploadDir, subDir string) (string, error) {
	uploadPath := filepath.Join(uploadDir, subDir)
	if err := os.MkdirAll(uploadPath, os.ModePerm); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)

	if err := c.SaveUploadedFile(fileHeader, filepath.Join(uploadPath, filename)); err != nil {
		return "", err
	}

	return filepath.ToSlash(filepath.Join(subDir, filename)), nil
}
