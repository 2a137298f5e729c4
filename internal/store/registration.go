// File: internal/store/registration.go
package store

import (
	"context"

	"workshop-api/internal/apperr"
	"workshop-api/internal/database"
	"workshop-api/internal/model"
)

const listRegistrationsSQL = `
SELECT registrations.id AS registration_id,
       registrations.status,
       registrations.registered_at,
       registrations.cancelled_at,
       workshops.id AS workshop_id,
       workshops.title,
       workshops.workshop_date,
       workshops.start_time,
       workshops.duration_hours,
       workshops.image_url,
       workshops.address,
       workshops.city,
       workshops.state
FROM registrations
JOIN workshops ON workshops.id = registrations.workshop_id
WHERE registrations.user_id = $1
ORDER BY workshops.workshop_date ASC, workshops.start_time ASC`

// ListRegistrationsByUser returns the user's registrations joined with their
// workshops, earliest workshop first. Never nil.
func ListRegistrationsByUser(ctx context.Context, conn database.Conn, userID int) ([]model.RegistrationDetail, error) {
	rows, err := conn.Query(ctx, listRegistrationsSQL, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.QueryFailure, "ListRegistrationsByUser", err)
	}
	defer rows.Close()

	list := []model.RegistrationDetail{}
	for rows.Next() {
		var d model.RegistrationDetail
		if err := rows.Scan(
			&d.ID,
			&d.Status,
			&d.RegisteredAt,
			&d.CancelledAt,
			&d.Workshop.ID,
			&d.Workshop.Title,
			&d.Workshop.WorkshopDate,
			&d.Workshop.StartTime,
			&d.Workshop.DurationHours,
			&d.Workshop.ImageURL,
			&d.Workshop.Address,
			&d.Workshop.City,
			&d.Workshop.State,
		); err != nil {
			return nil, apperr.Wrap(apperr.QueryFailure, "ListRegistrationsByUser scan", err)
		}
		d.UserID = userID
		d.WorkshopID = d.Workshop.ID
		list = append(list, d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(apperr.QueryFailure, "ListRegistrationsByUser", err)
	}
	return list, nil
}
