// File: internal/handler/users/format.go
package users

import (
	"fmt"
	"time"

	"workshop-api/internal/api"
	"workshop-api/internal/model"

	"github.com/jackc/pgx/v5/pgtype"
)

const (
	dateLayout    = "2006-01-02"
	secondsLayout = "2006-01-02T15:04:05"
	offsetLayout  = "-07:00"
)

func toRegistrationResponses(list []model.RegistrationDetail) []api.RegistrationResponse {
	out := make([]api.RegistrationResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toRegistrationResponse(d))
	}
	return out
}

func toRegistrationResponse(d model.RegistrationDetail) api.RegistrationResponse {
	w := d.Workshop
	return api.RegistrationResponse{
		RegistrationID: d.ID,
		Status:         d.Status,
		RegisteredAt:   formatTimestamp(d.RegisteredAt),
		CancelledAt:    formatTimestamp(d.CancelledAt),
		WorkshopID:     w.ID,
		Title:          w.Title,
		WorkshopDate:   formatTime(w.WorkshopDate, dateLayout),
		StartTime:      formatClock(w.StartTime),
		DurationHours:  w.DurationHours,
		ImageURL:       w.ImageURL,
		Address:        w.Address,
		City:           w.City,
		State:          w.State,
	}
}

// formatTime 空值回傳 nil，JSON 中保持 null
func formatTime(t *time.Time, layout string) *string {
	if t == nil {
		return nil
	}
	s := t.Format(layout)
	return &s
}

// formatTimestamp 輸出 ISO-8601；微秒不為零時固定六位數，並一律附上時區位移
func formatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(secondsLayout)
	if us := t.Nanosecond() / int(time.Microsecond); us != 0 {
		s += fmt.Sprintf(".%06d", us)
	}
	s += t.Format(offsetLayout)
	return &s
}

// formatClock renders a time-of-day as HH:MM, dropping seconds.
func formatClock(t pgtype.Time) *string {
	if !t.Valid {
		return nil
	}
	minutes := t.Microseconds / int64(time.Minute/time.Microsecond)
	s := fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
	return &s
}
