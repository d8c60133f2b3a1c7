package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectImageType(t *testing.T) {
	t.Run("nhận diện PNG theo magic bytes", func(t *testing.T) {
		data := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
		contentType, err := detectImageType(data)
		require.NoError(t, err)
		require.Equal(t, "image/png", contentType)
	})

	t.Run("nhận diện JPEG theo magic bytes", func(t *testing.T) {
		data := []byte("\xff\xd8\xff\xe0\x00\x10JFIF")
		contentType, err := detectImageType(data)
		require.NoError(t, err)
		require.Equal(t, "image/jpeg", contentType)
	})

	t.Run("file text bị từ chối dù tên hay header nói là ảnh", func(t *testing.T) {
		data := []byte("đây không phải là ảnh")
		_, err := detectImageType(data)
		require.ErrorIs(t, err, ErrNotImage)
	})

	t.Run("nội dung HTML bị từ chối", func(t *testing.T) {
		data := []byte("<html><script>alert(1)</script></html>")
		_, err := detectImageType(data)
		require.ErrorIs(t, err, ErrNotImage)
	})
}
