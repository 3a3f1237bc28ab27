package handlers

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"homebuddy/models"
)

// maxUploadImages matches the property image cap: one upload batch can never
// produce more URLs than a single property may hold.
const maxUploadImages = 5

// ImageUploader is the media-host contract. Uploads are blocking,
// single-shot calls; a failure aborts the enclosing request with no retry.
type ImageUploader interface {
	Upload(ctx context.Context, file io.Reader) (*models.UploadedImage, error)
	Destroy(ctx context.Context, publicID string) error
}

type UploadController struct {
	uploader ImageUploader
}

func NewUploadController(uploader ImageUploader) *UploadController {
	return &UploadController{uploader: uploader}
}

type deleteImageRequest struct {
	PublicID string `json:"public_id"`
}

func (uc *UploadController) UploadSingle(c echo.Context) error {
	if uc.uploader == nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Image service unavailable"})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "No file uploaded"})
	}

	image, err := uc.uploadFile(fileHeader)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Image upload failed"})
	}
	return c.JSON(http.StatusOK, image)
}

func (uc *UploadController) UploadMultiple(c echo.Context) error {
	if uc.uploader == nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Image service unavailable"})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "No files uploaded"})
	}
	files := form.File["images"]
	if len(files) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "No files uploaded"})
	}
	if len(files) > maxUploadImages {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "A maximum of 5 images can be uploaded"})
	}

	images := make([]*models.UploadedImage, 0, len(files))
	for _, fileHeader := range files {
		image, err := uc.uploadFile(fileHeader)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Images upload failed"})
		}
		images = append(images, image)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"images": images})
}

func (uc *UploadController) DeleteImage(c echo.Context) error {
	if uc.uploader == nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Image service unavailable"})
	}

	var req deleteImageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if req.PublicID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Public ID is required"})
	}

	if err := uc.uploader.Destroy(context.Background(), req.PublicID); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Image deletion failed"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Image deleted successfully"})
}

func (uc *UploadController) uploadFile(fileHeader *multipart.FileHeader) (*models.UploadedImage, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return uc.uploader.Upload(context.Background(), file)
}
