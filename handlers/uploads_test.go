package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quotemanager/testhelpers"
)

// newLogoUploadRequest builds a multipart request carrying one file part with
// the given content type.
func newLogoUploadRequest(t *testing.T, filename, contentType, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("failed to create form part: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("failed to write form part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close form writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/company/logo", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestHandleLogoUpload_StoresFileAndPath(t *testing.T) {
	t.Chdir(t.TempDir())
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestCompany(t, app, "شركة")

	handler := HandleLogoUpload(app)
	req := newLogoUploadRequest(t, "logo.png", "image/png", "fake png bytes")
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]string
	decodeJSON(t, rec, &resp)
	logoPath := resp["logo_path"]
	if !strings.HasPrefix(logoPath, "/api/uploads/") || !strings.HasSuffix(logoPath, ".png") {
		t.Errorf("unexpected logo path %q", logoPath)
	}

	// The file landed on disk.
	name := strings.TrimPrefix(logoPath, "/api/uploads/")
	data, err := os.ReadFile(filepath.Join("uploads", name))
	if err != nil {
		t.Fatalf("uploaded file missing: %v", err)
	}
	if string(data) != "fake png bytes" {
		t.Errorf("stored file content = %q", data)
	}

	// The company profile records the new path.
	record, err := loadCompanyRecord(app)
	if err != nil {
		t.Fatalf("failed to load company: %v", err)
	}
	if record.GetString("logo_path") != logoPath {
		t.Errorf("company logo_path = %q, want %q", record.GetString("logo_path"), logoPath)
	}
}

func TestHandleLogoUpload_RejectsNonImage(t *testing.T) {
	t.Chdir(t.TempDir())
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestCompany(t, app, "شركة")

	handler := HandleLogoUpload(app)
	req := newLogoUploadRequest(t, "notes.txt", "text/plain", "plain text")
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}

func TestHandleLogoUpload_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	app := testhelpers.NewTestApp(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	writer.WriteField("note", "no file here")
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/company/logo", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()

	handler := HandleLogoUpload(app)
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}

func TestHandleUploadServe_ReturnsFile(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := os.MkdirAll("uploads", 0o755); err != nil {
		t.Fatalf("failed to create uploads dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join("uploads", "logo.png"), []byte("png data"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	app := testhelpers.NewTestApp(t)

	handler := HandleUploadServe()
	req := httptest.NewRequest(http.MethodGet, "/api/uploads/logo.png", nil)
	req.SetPathValue("filename", "logo.png")
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.String() != "png data" {
		t.Errorf("served body = %q", rec.Body.String())
	}
}

func TestHandleUploadServe_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	app := testhelpers.NewTestApp(t)

	handler := HandleUploadServe()
	req := httptest.NewRequest(http.MethodGet, "/api/uploads/nope.png", nil)
	req.SetPathValue("filename", "nope.png")
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}

func TestHandleUploadServe_StripsTraversal(t *testing.T) {
	t.Chdir(t.TempDir())
	app := testhelpers.NewTestApp(t)

	handler := HandleUploadServe()
	req := httptest.NewRequest(http.MethodGet, "/api/uploads/secret", nil)
	req.SetPathValue("filename", "../secret")
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404 for traversal attempt, got %d", rec.Code)
	}
}
