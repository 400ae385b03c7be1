// server/api/uploads.go
package api

import (
	"errors"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/streamkit/stream-manager/server/upload"
	sharedapi "github.com/streamkit/stream-manager/shared/api"
)

// UploadHandler accepts logo uploads and serves the stored files back to
// the overlays.
type UploadHandler struct {
	store    *upload.Store
	maxBytes int64
}

func NewUploadHandler(store *upload.Store, maxBytes int64) *UploadHandler {
	return &UploadHandler{store: store, maxBytes: maxBytes}
}

func (h *UploadHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/upload", h.Upload).Methods(http.MethodPost)
	router.HandleFunc("/uploads/{filename}", h.Serve).Methods(http.MethodGet)
}

// Upload takes a multipart form with a "file" field and returns the URL
// path the dashboard should store on the team.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// Slack for the multipart framing around the file itself.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+(64<<10))

	file, header, err := r.FormFile("file")
	if err != nil {
		sharedapi.WriteBadRequest(w, "missing file field")
		return
	}
	defer file.Close()

	name, err := h.store.Save(header.Filename, file)
	if err != nil {
		if errors.Is(err, upload.ErrUnsupportedType) || errors.Is(err, upload.ErrTooLarge) {
			sharedapi.WriteBadRequest(w, err.Error())
			return
		}
		writeServiceError(w, err)
		return
	}

	sharedapi.WriteJSON(w, http.StatusCreated, map[string]string{
		"filename": name,
		"url":      "/uploads/" + name,
	})
}

// Serve hands a stored upload back with its image content type.
func (h *UploadHandler) Serve(w http.ResponseWriter, r *http.Request) {
	filename := mux.Vars(r)["filename"]
	path, err := h.store.Path(filename)
	if err != nil {
		sharedapi.WriteBadRequest(w, "invalid filename")
		return
	}
	if _, err := os.Stat(path); err != nil {
		sharedapi.WriteNotFound(w, "upload not found")
		return
	}

	w.Header().Set("Content-Type", upload.ContentTypeFor(filename))
	// Uploads are immutable; the uuid prefix makes every name unique.
	w.Header().Set("Cache-Control", "public, max-age=86400")
	http.ServeFile(w, r, path)
}
