package post

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"Ripple/internal/assets"
)

// maxUploadBytes caps a create/update request body; large enough for a
// handful of images
const maxUploadBytes = 20 * 1024 * 1024

// parseMultipart reads a multipart create/update form. Image files arrive
// under the "images" field.
func parseMultipart(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	return r.ParseMultipartForm(maxUploadBytes)
}

// readUploads drains the "images" file parts into upload payloads
func readUploads(form *multipart.Form) ([]assets.Upload, error) {
	if form == nil {
		return nil, nil
	}

	var uploads []assets.Upload
	for _, header := range form.File["images"] {
		file, err := header.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, assets.Upload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return uploads, nil
}

// readImagesToDelete accepts either repeated "imagesToDelete" fields or a
// single field holding a JSON array of storage ids
func readImagesToDelete(form *multipart.Form) []string {
	if form == nil {
		return nil
	}

	values := form.Value["imagesToDelete"]
	if len(values) == 1 && strings.HasPrefix(strings.TrimSpace(values[0]), "[") {
		var ids []string
		if err := json.Unmarshal([]byte(values[0]), &ids); err == nil {
			return ids
		}
	}

	var ids []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			ids = append(ids, v)
		}
	}
	return ids
}

// formContent returns the "content" field, distinguishing absent from empty
func formContent(form *multipart.Form) *string {
	if form == nil {
		return nil
	}
	values, ok := form.Value["content"]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}
