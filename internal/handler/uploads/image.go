package uploads

import (
	"mime/multipart"
	"net/http"

	"workshop-api/internal/api"
	"workshop-api/internal/apperr"
	"workshop-api/internal/media"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// formFields 依序嘗試的上傳欄位名稱
var formFields = []string{"image", "file"}

// UploadImageHandler 上傳工作坊圖片（僅限講師）
// @Summary     Upload an image
// @Description 將圖片轉送至圖片託管服務並回傳公開網址
// @Tags        uploads
// @Accept      multipart/form-data
// @Produce     json
// @Param       image formData file true "圖片檔案"
// @Success     201 {object} api.UploadResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.InternalErrorResponse
// @Security    ApiKeyAuth
// @Router      /uploads/images [post]
func UploadImageHandler(uploader media.Uploader, log logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		header, err := formFile(c)
		if err != nil {
			return apperr.Respond(c, log, apperr.New(apperr.BadRequest, "no image file in request"))
		}

		file, err := header.Open()
		if err != nil {
			return apperr.Respond(c, log, apperr.Wrap(apperr.BadRequest, "unreadable image file", err))
		}
		defer file.Close()

		url, err := uploader.Upload(c.Request().Context(), file, header.Filename)
		if err != nil {
			return apperr.Respond(c, log.WithField("filename", header.Filename), err)
		}
		return c.JSON(http.StatusCreated, api.UploadResponse{URL: url})
	}
}

func formFile(c echo.Context) (*multipart.FileHeader, error) {
	var lastErr error
	for _, name := range formFields {
		fh, err := c.FormFile(name)
		if err == nil {
			return fh, nil
		}
		lastErr = err
	}
	return nil, lastErr
}
