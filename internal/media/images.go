package media

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidImage is returned when submitted image data is not a decodable
// base64 data URI of a supported image type.
var ErrInvalidImage = errors.New("invalid image data")

var allowedTypes = map[string]string{
	"png":  ".png",
	"jpeg": ".jpg",
	"jpg":  ".jpg",
	"gif":  ".gif",
	"webp": ".webp",
}

// Storage writes uploaded images below a base directory and hands back the
// relative reference stored on the model.
type Storage struct {
	baseDir string
}

func NewStorage(baseDir string) *Storage {
	return &Storage{baseDir: baseDir}
}

// SaveBase64 decodes a "data:image/<type>;base64,..." payload and writes it
// under subdir with a generated name. Returns the reference relative to the
// media root.
func (s *Storage) SaveBase64(subdir, data string) (string, error) {
	const prefix = "data:image/"
	if !strings.HasPrefix(data, prefix) {
		return "", ErrInvalidImage
	}
	rest := strings.TrimPrefix(data, prefix)
	imageType, encoded, found := strings.Cut(rest, ";base64,")
	if !found {
		return "", ErrInvalidImage
	}
	ext, ok := allowedTypes[imageType]
	if !ok {
		return "", ErrInvalidImage
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(raw) == 0 {
		return "", ErrInvalidImage
	}

	dir := filepath.Join(s.baseDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}

	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(dir, name), raw, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return filepath.ToSlash(filepath.Join(subdir, name)), nil
}

// Remove deletes a previously stored image. A missing file is not an error;
// the reference is simply gone.
func (s *Storage) Remove(ref string) error {
	if ref == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(ref)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
