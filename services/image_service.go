package services

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

const (
	uploadRoot   = "uploads"
	roomImageDir = "rooms"

	// MaxImageSize is the per-file upload limit (2 MiB).
	MaxImageSize = 2 << 20
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// ValidateImage checks size and declared content type of one upload.
func ValidateImage(fh *multipart.FileHeader) error {
	if fh.Size > MaxImageSize {
		return fmt.Errorf("%s exceeds the %d KB limit", fh.Filename, MaxImageSize/1024)
	}
	if ct := fh.Header.Get("Content-Type"); !allowedImageTypes[ct] {
		return fmt.Errorf("%s must be a jpeg, png or webp image", fh.Filename)
	}
	return nil
}

// SaveRoomImage writes an uploaded file under uploads/rooms/ and returns the
// path recorded on the RoomImage row, relative to the uploads directory. The
// destination name is derived from the original filename.
func SaveRoomImage(fh *multipart.FileHeader) (string, error) {
	name := sanitizeFilename(fh.Filename)
	if name == "" {
		return "", fmt.Errorf("invalid image filename %q", fh.Filename)
	}

	dir := filepath.Join(uploadRoot, roomImageDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return filepath.ToSlash(filepath.Join(roomImageDir, name)), nil
}

// RemoveRoomImage deletes a stored file, ignoring missing ones.
func RemoveRoomImage(path string) {
	full := filepath.Join(uploadRoot, filepath.FromSlash(path))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: failed to remove image %s: %v", full, err)
	}
}

// sanitizeFilename keeps the base name only and maps anything outside
// [a-zA-Z0-9._-] to a dash.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		}
		return '-'
	}, name)
	return strings.Trim(name, "-.")
}
