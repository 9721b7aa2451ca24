package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakochan/the-kokoa-engine/domain"
	"github.com/nakochan/the-kokoa-engine/internal/mocks"
)

func multipartUpload(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestCloudHandlers_Upload_Success(t *testing.T) {
	store := &mocks.MockImageStore{
		SaveFunc: func(r io.Reader) (*domain.StoredImage, error) {
			return &domain.StoredImage{Filename: "abc.jpg", Width: 320, Height: 240}, nil
		},
	}
	r := gin.New()
	r.POST("/api/cloud", NewCloudHandlers(store).Upload)

	body, contentType := multipartUpload(t, "file", "photo.png", []byte("fake-image-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/cloud", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "abc.jpg", resp["filename"])
}

func TestCloudHandlers_Upload_UnsupportedImage(t *testing.T) {
	store := &mocks.MockImageStore{
		SaveFunc: func(r io.Reader) (*domain.StoredImage, error) {
			return nil, domain.ErrUnsupportedImage
		},
	}
	r := gin.New()
	r.POST("/api/cloud", NewCloudHandlers(store).Upload)

	body, contentType := multipartUpload(t, "file", "notes.txt", []byte("plain text"))
	req := httptest.NewRequest(http.MethodPost, "/api/cloud", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "fail", resp["status"])
	assert.Equal(t, "지원하지 않는 이미지 형식입니다.", resp["message"])
}

func TestCloudHandlers_Upload_MissingFile(t *testing.T) {
	r := gin.New()
	r.POST("/api/cloud", NewCloudHandlers(&mocks.MockImageStore{}).Upload)

	req := httptest.NewRequest(http.MethodPost, "/api/cloud", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "fail", resp["status"])
	assert.Equal(t, "잘못된 요청입니다.", resp["message"])
}
