// File: internal/model/registration.go
package model

import "time"

type Registration struct {
	ID           int        `db:"id" json:"id"`
	UserID       int        `db:"user_id" json:"user_id"`
	WorkshopID   int        `db:"workshop_id" json:"workshop_id"`
	Status       *string    `db:"status" json:"status"`
	RegisteredAt *time.Time `db:"registered_at" json:"registered_at"`
	CancelledAt  *time.Time `db:"cancelled_at" json:"cancelled_at"`
}

// RegistrationDetail 報名資料與其工作坊的 join 結果
type RegistrationDetail struct {
	Registration
	Workshop Workshop
}
