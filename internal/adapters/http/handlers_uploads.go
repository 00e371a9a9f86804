package web

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
)

// uploadExtensions maps accepted content types to the stored file extension.
// Photos and document scans only.
var uploadExtensions = map[string]string{
	"image/png":       ".png",
	"image/jpeg":      ".jpg",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

// handleUpload handles POST /api/uploads.
// Accepts multipart form data with a "file" field and stores it under the
// uploads directory. Returns the public URL for the stored file.
// PRE: file is an image or PDF under the configured size cap
// POST: file persisted with a generated name; original name is discarded
func handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method == "DELETE" {
		handleUploadDelete(w, r)
		return
	}
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	// Allow some form overhead on top of the file cap
	if err := r.ParseMultipartForm(uploadsMaxBytes + (1 << 20)); err != nil {
		http.Error(w, "request too large or malformed", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > uploadsMaxBytes {
		http.Error(w, "file exceeds the size limit", http.StatusBadRequest)
		return
	}
	ext, ok := uploadExtensions[header.Header.Get("Content-Type")]
	if !ok {
		http.Error(w, "file must be an image (png, jpeg, webp) or a PDF", http.StatusBadRequest)
		return
	}

	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		internalError(w, err)
		return
	}

	name := generateID() + ext
	dst, err := os.Create(filepath.Join(uploadsDir, name))
	if err != nil {
		internalError(w, err)
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(file, uploadsMaxBytes)); err != nil {
		internalError(w, err)
		return
	}

	slog.Info("upload_event", "action", "stored", "name", name, "size", header.Size)
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, map[string]string{"url": "/uploads/" + name})
}

// handleUploadDelete handles DELETE /api/uploads?name=X.
// The name is reduced to its base so the request cannot escape the uploads dir.
func handleUploadDelete(w http.ResponseWriter, r *http.Request) {
	name := filepath.Base(r.URL.Query().Get("name"))
	if name == "" || name == "." || name == "/" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	if err := os.Remove(filepath.Join(uploadsDir, name)); err != nil {
		if os.IsNotExist(err) {
			http.Error(w, "file not found", http.StatusNotFound)
			return
		}
		internalError(w, err)
		return
	}
	slog.Info("upload_event", "action", "deleted", "name", name)
	w.WriteHeader(http.StatusNoContent)
}
