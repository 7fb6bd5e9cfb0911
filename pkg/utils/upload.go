package utils

import (
	"errors"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrFileTypeNotAllowed dikembalikan bila ekstensi file tidak ada di allow-list.
var ErrFileTypeNotAllowed = errors.New("format file tidak didukung")

// SaveUploadedImage menyimpan file multipart ke uploadDir dengan nama acak
// (uuid) dan ekstensi asli dipertahankan. allowedExt nil berarti semua
// ekstensi diterima. Mengembalikan nama file yang tersimpan (tanpa path).
func SaveUploadedImage(file *multipart.FileHeader, uploadDir string, allowedExt []string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if allowedExt != nil {
		found := false
		for _, allowed := range allowedExt {
			if ext == allowed {
				found = true
				break
			}
		}
		if !found {
			return "", ErrFileTypeNotAllowed
		}
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
		return "", err
	}

	fileName := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(uploadDir, fileName))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return fileName, nil
}

// DeleteUploadedImage menghapus file lama secara best-effort.
// Kegagalan hanya dicatat di log dan tidak menggagalkan operasi pemanggil.
func DeleteUploadedImage(uploadDir, fileName string) {
	if fileName == "" {
		return
	}
	path := filepath.Join(uploadDir, strings.TrimPrefix(fileName, "/"))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("Gagal menghapus file %s: %v", path, err)
	}
}

// BuildFileURL menyusun URL gambar relatif terhadap scheme dan host request
// yang sedang berjalan. URL tidak pernah disimpan, selalu dibangun ulang.
func BuildFileURL(c echo.Context, fileName string) string {
	if fileName == "" {
		return ""
	}
	return c.Scheme() + "://" + c.Request().Host + "/uploads/" + strings.TrimPrefix(fileName, "/")
}
