package assets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStore_Upload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/assets", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "cat.jpg", header.Filename)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Asset{URL: srvURL(r) + "/cdn/cat.jpg", StorageID: "asset-1"})
	}))
	defer srv.Close()

	store := NewHTTPStore(srv.URL, 0)
	asset, err := store.Upload(context.Background(), Upload{
		Filename:    "cat.jpg",
		ContentType: "image/jpeg",
		Data:        []byte("jpeg-bytes"),
	})

	require.NoError(t, err)
	assert.Equal(t, "asset-1", asset.StorageID)
	assert.Contains(t, asset.URL, "/cdn/cat.jpg")
}

func TestHTTPStore_UploadServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInsufficientStorage)
	}))
	defer srv.Close()

	_, err := NewHTTPStore(srv.URL, 0).Upload(context.Background(), Upload{Filename: "cat.jpg"})

	require.Error(t, err)
	assert.True(t, IsUploadError(err))
}

func TestHTTPStore_Delete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/assets/asset-1", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := NewHTTPStore(srv.URL, 0).Delete(context.Background(), "asset-1")
	assert.NoError(t, err)
}

func TestHTTPStore_DeleteAbsentAsset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	err := NewHTTPStore(srv.URL, 0).Delete(context.Background(), "gone")
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestHTTPStore_DeleteServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewHTTPStore(srv.URL, 0).Delete(context.Background(), "asset-1")
	require.Error(t, err)
	assert.True(t, IsDeletionError(err))
}

func srvURL(r *http.Request) string {
	return "http://" + r.Host
}
