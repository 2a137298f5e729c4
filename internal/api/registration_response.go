// File: internal/api/registration_response.go
package api

// RegistrationResponse 一筆報名資料（含工作坊資訊）
// 時間欄位皆為字串；值為 null 時保持 null
// swagger:model api.RegistrationResponse
type RegistrationResponse struct {
	RegistrationID int      `json:"registration_id" example:"12"`
	Status         *string  `json:"status" example:"registered"`
	RegisteredAt   *string  `json:"registered_at" example:"2024-04-20T09:15:00Z"`
	CancelledAt    *string  `json:"cancelled_at"`
	WorkshopID     int      `json:"workshop_id" example:"3"`
	Title          *string  `json:"title" example:"Intro to Pottery"`
	WorkshopDate   *string  `json:"workshop_date" example:"2024-05-01"`
	StartTime      *string  `json:"start_time" example:"14:30"`
	DurationHours  *float64 `json:"duration_hours" example:"2.5"`
	ImageURL       *string  `json:"image_url"`
	Address        *string  `json:"address"`
	City           *string  `json:"city"`
	State          *string  `json:"state"`
}

// swagger:model api.RegistrationListResponse
type RegistrationListResponse struct {
	Registrations []RegistrationResponse `json:"registrations"`
}
