package api

// swagger:model api.UploadResponse
type UploadResponse struct {
	URL string `json:"url" example:"https://res.cloudinary.com/demo/image/upload/v1/sample.jpg"`
}
