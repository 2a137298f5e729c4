package uploads

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"workshop-api/internal/apperr"
	"workshop-api/internal/logging"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	calls    int
	filename string
	body     string
	url      string
	err      error
}

func (f *fakeUploader) Upload(_ context.Context, file io.Reader, filename string) (string, error) {
	f.calls++
	f.filename = filename
	b, _ := io.ReadAll(file)
	f.body = string(b)
	return f.url, f.err
}

func newUploadCtx(t *testing.T, e *echo.Echo, field, filename, content string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if field != "" {
		part, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	} else {
		require.NoError(t, w.WriteField("note", "no file"))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/uploads/images", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUploadImageHandler(t *testing.T) {
	e := echo.New()
	log := logging.Discard()

	t.Run("success", func(t *testing.T) {
		up := &fakeUploader{url: "https://res.cloudinary.com/demo/image/upload/x.png"}
		ctx, rec := newUploadCtx(t, e, "image", "x.png", "PNGDATA")
		require.NoError(t, UploadImageHandler(up, log)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.JSONEq(t, `{"url":"https://res.cloudinary.com/demo/image/upload/x.png"}`, rec.Body.String())
		require.Equal(t, "x.png", up.filename)
		require.Equal(t, "PNGDATA", up.body)
	})

	t.Run("file field fallback", func(t *testing.T) {
		up := &fakeUploader{url: "u"}
		ctx, rec := newUploadCtx(t, e, "file", "y.jpg", "JPG")
		require.NoError(t, UploadImageHandler(up, log)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, 1, up.calls)
	})

	t.Run("missing file", func(t *testing.T) {
		up := &fakeUploader{}
		ctx, rec := newUploadCtx(t, e, "", "", "")
		require.NoError(t, UploadImageHandler(up, log)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, 0, up.calls)
	})

	t.Run("configuration failure", func(t *testing.T) {
		up := &fakeUploader{err: apperr.New(apperr.ConfigurationFailure, "Cloudinary credentials are not configured.")}
		ctx, rec := newUploadCtx(t, e, "image", "x.png", "PNG")
		require.NoError(t, UploadImageHandler(up, log)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.JSONEq(t, `{"err":"internal server error"}`, rec.Body.String())
	})

	t.Run("remote failure", func(t *testing.T) {
		up := &fakeUploader{err: errors.New("502 bad gateway")}
		ctx, rec := newUploadCtx(t, e, "image", "x.png", "PNG")
		require.NoError(t, UploadImageHandler(up, log)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
