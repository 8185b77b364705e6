package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/security"
)

const uploadsDir = "uploads"

// HandleLogoUpload stores an uploaded company logo on disk and records its
// serving path on the company profile.
// Route: POST /api/company/logo
func HandleLogoUpload(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		// Parse multipart form (max 10MB)
		if err := e.Request.ParseMultipartForm(10 << 20); err != nil {
			return e.String(http.StatusBadRequest, "File too large or invalid form data")
		}

		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return e.String(http.StatusBadRequest, "Please select a file to upload")
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			return e.String(http.StatusBadRequest, "File must be an image")
		}

		if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
			log.Printf("upload_logo: create uploads dir: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to store file")
		}

		ext := filepath.Ext(header.Filename)
		name := security.RandomString(16) + ext
		dst, err := os.Create(filepath.Join(uploadsDir, name))
		if err != nil {
			log.Printf("upload_logo: create file: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to store file")
		}
		defer dst.Close()
		if _, err := io.Copy(dst, file); err != nil {
			log.Printf("upload_logo: write file: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to store file")
		}

		logoPath := "/api/uploads/" + name

		record, err := loadCompanyRecord(app)
		if err != nil {
			log.Printf("upload_logo: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load company info")
		}
		record.Set("logo_path", logoPath)
		if err := app.Save(record); err != nil {
			log.Printf("upload_logo: save company: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to update company info")
		}

		return e.JSON(http.StatusOK, map[string]string{"logo_path": logoPath})
	}
}

// HandleUploadServe serves a previously uploaded file by name.
// Route: GET /api/uploads/{filename}
func HandleUploadServe() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		// filepath.Base strips any traversal components from the request
		name := filepath.Base(e.Request.PathValue("filename"))
		if name == "." || name == string(filepath.Separator) {
			return e.String(http.StatusBadRequest, "Invalid file name")
		}

		path := filepath.Join(uploadsDir, name)
		if _, err := os.Stat(path); err != nil {
			return e.String(http.StatusNotFound, fmt.Sprintf("File %q not found", name))
		}

		http.ServeFile(e.Response, e.Request, path)
		return nil
	}
}
