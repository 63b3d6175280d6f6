package productcontroller

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

const maxImageSize = 5 << 20 // 5 MB

var errBadImage = errors.New("only images (jpg, jpeg, png) up to 5MB are allowed")

func uploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "uploads"
}

// saveProductImage validates and stores an uploaded image, returning its
// public URL.
func saveProductImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if file.Size > maxImageSize {
		return "", errBadImage
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png":
	default:
		return "", errBadImage
	}

	dir := uploadDir()
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}

	base := strings.TrimSuffix(filepath.Base(file.Filename), filepath.Ext(file.Filename))
	base = strings.ReplaceAll(base, " ", "_")
	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", err
	}
	return "/uploads/" + filename, nil
}

// removeImageFile deletes a previously stored image given its public URL.
func removeImageFile(imageURL string) {
	name := strings.TrimPrefix(imageURL, "/uploads/")
	if name == "" || name == imageURL {
		return
	}
	_ = os.Remove(filepath.Join(uploadDir(), filepath.Base(name)))
}
