package utils

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	storage "github.com/supabase-community/storage-go"
)

var ErrNotImage = errors.New("chỉ chấp nhận file ảnh")

// detectImageType xác định content-type từ nội dung file thay vì tin
// header Content-Type do client gửi. http.DetectContentType chỉ xét
// tối đa 512 byte đầu.
func detectImageType(data []byte) (string, error) {
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotImage
	}
	return contentType, nil
}

// UploadAvatarToSupabase upload ảnh đại diện lên Supabase Storage.
// Chỉ nhận file có nội dung image/*. Path: uploads/avatars/<userID>.<ext>
func UploadAvatarToSupabase(fileHeader *multipart.FileHeader, userID string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		return "", err
	}

	contentType, err := detectImageType(buf.Bytes())
	if err != nil {
		return "", err
	}

	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseKey := os.Getenv("SUPABASE_KEY")

	storageClient := storage.NewClient(supabaseURL+"/storage/v1", supabaseKey, nil)

	ext := filepath.Ext(fileHeader.Filename)
	objectPath := fmt.Sprintf("avatars/%s%s", userID, ext)

	upsert := true
	options := storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert, // đổi avatar thì ghi đè file cũ
	}

	_, err = storageClient.UploadFile("uploads", objectPath, &buf, options)
	if err != nil {
		return "", err
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/uploads/%s", supabaseURL, objectPath)
	return publicURL, nil
}
