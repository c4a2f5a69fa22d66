package assets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds every call against the storage service so a slow
// upload or delete fails the request instead of hanging it.
const DefaultTimeout = 15 * time.Second

// HTTPStore talks to an external asset storage service over HTTP.
// Uploads are multipart POSTs to {baseURL}/assets; deletes are
// DELETE {baseURL}/assets/{storageID}.
type HTTPStore struct {
	client  *http.Client
	baseURL string
}

// NewHTTPStore creates a store client for the given service base URL.
// A timeout of 0 uses DefaultTimeout.
func NewHTTPStore(baseURL string, timeout time.Duration) *HTTPStore {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPStore{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Upload sends the image to the storage service and returns its public URL
// and the opaque storage id used for later deletion.
func (s *HTTPStore) Upload(ctx context.Context, up Upload) (*Asset, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", up.Filename)
	if err != nil {
		return nil, &UploadError{Err: err}
	}
	if _, err := part.Write(up.Data); err != nil {
		return nil, &UploadError{Err: err}
	}
	if up.ContentType != "" {
		if err := mw.WriteField("contentType", up.ContentType); err != nil {
			return nil, &UploadError{Err: err}
		}
	}
	if err := mw.Close(); err != nil {
		return nil, &UploadError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/assets", &body)
	if err != nil {
		return nil, &UploadError{Err: err}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &UploadError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, &UploadError{Err: fmt.Errorf("storage service returned %d", resp.StatusCode)}
	}

	var asset Asset
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64*1024)).Decode(&asset); err != nil {
		return nil, &UploadError{Err: fmt.Errorf("invalid storage service response: %w", err)}
	}
	if asset.URL == "" || asset.StorageID == "" {
		return nil, &UploadError{Err: fmt.Errorf("storage service response missing url or storageId")}
	}

	return &asset, nil
}

// Delete removes the asset with the given storage id.
// A 404 from the service maps to ErrAssetNotFound so cleanup stays idempotent.
func (s *HTTPStore) Delete(ctx context.Context, storageID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.baseURL+"/assets/"+storageID, nil)
	if err != nil {
		return &DeletionError{StorageID: storageID, Err: err}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return &DeletionError{StorageID: storageID, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrAssetNotFound
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	default:
		return &DeletionError{StorageID: storageID, Err: fmt.Errorf("storage service returned %d", resp.StatusCode)}
	}
}
