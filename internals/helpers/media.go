// file: internals/helpers/media.go
package helper

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

var filenameRe = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return filenameRe.ReplaceAllString(filename, "_")
}

// GenerateUniqueFilename prefixes a timestamp + short uuid so uploads never collide.
func GenerateUniqueFilename(filename string) string {
	base := sanitizeFilename(filepath.Base(filename))
	return fmt.Sprintf("%s_%s_%s", time.Now().Format("20060102150405"), uuid.NewString()[:8], base)
}

func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// SaveProfilePicture decodes the uploaded image, scales it down to a 256px
// thumbnail and writes it as JPEG under dir. Returns the stored path.
func SaveProfilePicture(dir string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded image: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode uploaded image: %w", err)
	}

	thumb := imaging.Fit(img, 256, 256, imaging.Lanczos)

	if err := EnsureDir(dir); err != nil {
		return "", err
	}

	name := GenerateUniqueFilename(fileHeader.Filename)
	if ext := strings.ToLower(filepath.Ext(name)); ext != ".jpg" && ext != ".jpeg" {
		name += ".jpg"
	}
	path := filepath.Join(dir, name)

	if err := imaging.Save(thumb, path, imaging.JPEGQuality(85)); err != nil {
		return "", fmt.Errorf("save thumbnail: %w", err)
	}
	return path, nil
}

// RemoveFileIfExists deletes the file, treating a missing file as success.
func RemoveFileIfExists(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
