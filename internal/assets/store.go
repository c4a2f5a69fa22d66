package assets

import "context"

// Asset is a stored image as the external storage service reports it.
// StorageID is the opaque key used for deletion; URL is the public access URL.
type Asset struct {
	URL       string `json:"url"`
	StorageID string `json:"storageId"`
}

// Upload is the raw image payload received from a client.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Store is the narrow contract against the external asset storage service.
// Delete reports ErrAssetNotFound for assets that are already gone so
// callers can keep cleanup idempotent.
type Store interface {
	Upload(ctx context.Context, up Upload) (*Asset, error)
	Delete(ctx context.Context, storageID string) error
}
