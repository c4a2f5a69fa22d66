package assets

import (
	"errors"
	"fmt"
)

// ErrAssetNotFound is returned by Delete when the storage service has no
// asset under the given id. Callers treat this as success.
var ErrAssetNotFound = errors.New("asset not found")

// UploadError wraps a transport or quota failure while uploading an asset.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("asset upload failed: %v", e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// IsUploadError checks if error is an upload failure
func IsUploadError(err error) bool {
	var upErr *UploadError
	return errors.As(err, &upErr)
}

// DeletionError wraps a storage-service failure while deleting an asset.
type DeletionError struct {
	StorageID string
	Err       error
}

func (e *DeletionError) Error() string {
	return fmt.Sprintf("asset deletion failed (%s): %v", e.StorageID, e.Err)
}

func (e *DeletionError) Unwrap() error { return e.Err }

// IsDeletionError checks if error is a deletion failure
func IsDeletionError(err error) bool {
	var delErr *DeletionError
	return errors.As(err, &delErr)
}
