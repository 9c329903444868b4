package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartImage(t *testing.T, filename string, payload []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/cashier/orders/upload-image", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func TestUploadImage(t *testing.T) {
	t.Run("StoresFileAndReturnsURL", func(t *testing.T) {
		dir := t.TempDir()
		h := NewCashierHandler(new(MockOrderService), dir)

		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(multipartImage(t, "cake.png", []byte("fake-png-bytes")), rec)

		require.NoError(t, h.UploadImage(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		url, ok := body["image_url"].(string)
		require.True(t, ok)
		assert.True(t, strings.HasPrefix(url, "/storage/orders/"))
		assert.True(t, strings.HasSuffix(url, ".png"))

		stored, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/storage/orders/")))
		require.NoError(t, err)
		assert.Equal(t, []byte("fake-png-bytes"), stored)
	})

	t.Run("RejectsUnknownExtension", func(t *testing.T) {
		h := NewCashierHandler(new(MockOrderService), t.TempDir())

		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(multipartImage(t, "cake.exe", []byte("nope")), rec)

		require.NoError(t, h.UploadImage(c))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("RejectsMissingFile", func(t *testing.T) {
		h := NewCashierHandler(new(MockOrderService), t.TempDir())

		e := echo.New()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/cashier/orders/upload-image", nil)
		c := e.NewContext(req, rec)

		require.NoError(t, h.UploadImage(c))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}
