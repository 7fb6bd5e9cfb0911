package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"

	"github.com/faspark/faspark-backend/internal/laporan/services"
)

// multipartRequest membangun context echo dari form multipart.
// files memetakan nama field ke "namafile:isi"; isi kosong berarti file 0 byte.
func multipartRequest(t *testing.T, fields map[string]string, files map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("WriteField: %v", err)
		}
	}
	for field, entry := range files {
		name, content, _ := strings.Cut(entry, ":")
		fw, err := w.CreateFormFile(field, name)
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "http://kampus.example/api/report", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var payload map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	msg, _ := payload["message"].(string)
	return msg
}

func TestCreateReportMissingField(t *testing.T) {
	t.Parallel()

	rc := NewReportController(services.NewReportService(nil), t.TempDir())

	c, rec := multipartRequest(t, map[string]string{
		"nama_motor": "Vario",
		"spot":       "B2",
	}, nil)

	if err := rc.CreateReport(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "plat_motor wajib diisi." {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestCreateReportDisallowedExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rc := NewReportController(services.NewReportService(nil), dir)

	c, rec := multipartRequest(t, map[string]string{
		"plat_motor": "L 1234 AB",
		"nama_motor": "Vario",
		"spot":       "B2",
	}, map[string]string{
		"gambar": "motor.gif:datagambar",
	})

	if err := rc.CreateReport(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "Format file tidak didukung. Gunakan .jpg, .jpeg, atau .png." {
		t.Errorf("unexpected message: %q", msg)
	}

	entries, err := os.ReadDir(dir)
	if err == nil && len(entries) != 0 {
		t.Error("file dengan ekstensi terlarang tidak boleh tersimpan")
	}
}

func TestCreateReportEmptyImage(t *testing.T) {
	t.Parallel()

	rc := NewReportController(services.NewReportService(nil), t.TempDir())

	c, rec := multipartRequest(t, map[string]string{
		"plat_motor": "L 1234 AB",
		"nama_motor": "Vario",
		"spot":       "B2",
	}, map[string]string{
		"gambar": "motor.png:",
	})

	if err := rc.CreateReport(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "Gambar tidak boleh kosong." {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestCreateReportWithImage(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	dir := t.TempDir()
	rc := NewReportController(services.NewReportService(db), dir)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reports")).
		WithArgs("L 1234 AB", "Vario", "B2", "ditemukan sore", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(9, 1))

	c, rec := multipartRequest(t, map[string]string{
		"plat_motor": "L 1234 AB",
		"nama_motor": "Vario",
		"spot":       "B2",
		"deskripsi":  "ditemukan sore",
	}, map[string]string{
		"gambar": "motor.png:datagambar",
	})

	if err := rc.CreateReport(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected 1 file tersimpan, got %d (%v)", len(entries), err)
	}
	if filepath.Ext(entries[0].Name()) != ".png" {
		t.Errorf("ekstensi asli harus dipertahankan, got %q", entries[0].Name())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// Gambar opsional untuk resource report: tanpa file tetap 200.
func TestCreateReportWithoutImage(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	rc := NewReportController(services.NewReportService(db), t.TempDir())

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reports")).
		WithArgs("L 1234 AB", "Vario", "B2", "", "", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(10, 1))

	c, rec := multipartRequest(t, map[string]string{
		"plat_motor": "L 1234 AB",
		"nama_motor": "Vario",
		"spot":       "B2",
	}, nil)

	if err := rc.CreateReport(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
}
