package services

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func imageHeader(name, contentType string, size int64) *multipart.FileHeader {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Type", contentType)
	return &multipart.FileHeader{Filename: name, Header: h, Size: size}
}

func TestValidateImage(t *testing.T) {
	t.Run("accepts jpeg within limit", func(t *testing.T) {
		assert.NoError(t, ValidateImage(imageHeader("room.jpg", "image/jpeg", 1024)))
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		err := ValidateImage(imageHeader("room.jpg", "image/jpeg", MaxImageSize+1))
		assert.ErrorContains(t, err, "exceeds")
	})

	t.Run("rejects unsupported type", func(t *testing.T) {
		err := ValidateImage(imageHeader("room.gif", "image/gif", 1024))
		assert.ErrorContains(t, err, "must be a jpeg, png or webp image")
	})
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"room 101.jpg", "room-101.jpg"},
		{"Deluxe Room.PNG", "Deluxe-Room.PNG"},
		{"../../etc/passwd", "passwd"},
		{"..", ""},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, sanitizeFilename(tc.in), "input %q", tc.in)
	}
}
