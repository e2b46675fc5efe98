package libs

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"

	"bar-bike/config"
	"bar-bike/logx"
	"bar-bike/utils"
)

const productImageFolder = "barbike/products"

// ImageUploader stores an uploaded product image and returns the URL the
// catalog should reference.
type ImageUploader interface {
	Upload(c *gin.Context, fileHeader *multipart.FileHeader) (string, error)
}

// NewImageUploader uses Cloudinary when CLOUDINARY_URL is set and falls back
// to the local upload directory otherwise.
func NewImageUploader(cfg *config.Config) ImageUploader {
	if cfg.CloudinaryURL != "" {
		up, err := NewCloudinaryUploader(cfg.CloudinaryURL)
		if err == nil {
			return up
		}
		logx.Warn().Err(err).Msg("cloudinary unavailable, storing images locally")
	}
	return &LocalUploader{Dir: cfg.UploadDir, PublicPrefix: "/uploads"}
}

type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cloudinaryURL string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init from URL fail: %w", err)
	}
	return &CloudinaryUploader{cld: cld}, nil
}

func (u *CloudinaryUploader) Upload(c *gin.Context, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	name := strings.TrimSuffix(fileHeader.Filename, filepath.Ext(fileHeader.Filename))
	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:     fmt.Sprintf("%d_%s", time.Now().Unix(), strings.ReplaceAll(name, " ", "_")),
		Folder:       productImageFolder,
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to cloudinary: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("cloudinary response is nil")
	}

	if resp.SecureURL != "" {
		return resp.SecureURL, nil
	}
	if resp.URL != "" {
		return resp.URL, nil
	}
	return "", fmt.Errorf("both SecureURL and URL are empty")
}

// LocalUploader writes images under Dir/products and serves them from
// PublicPrefix.
type LocalUploader struct {
	Dir          string
	PublicPrefix string
}

func (u *LocalUploader) Upload(c *gin.Context, fileHeader *multipart.FileHeader) (string, error) {
	rel, err := utils.UploadFile(c, fileHeader, u.Dir, "products")
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(u.PublicPrefix, "/") + "/" + rel, nil
}
