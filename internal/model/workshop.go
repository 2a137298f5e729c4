package model

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

type Workshop struct {
	ID            int         `db:"id" json:"id"`
	Title         *string     `db:"title" json:"title"`
	WorkshopDate  *time.Time  `db:"workshop_date" json:"workshop_date"`
	StartTime     pgtype.Time `db:"start_time" json:"start_time"`
	DurationHours *float64    `db:"duration_hours" json:"duration_hours"`
	ImageURL      *string     `db:"image_url" json:"image_url"`
	Address       *string     `db:"address" json:"address"`
	City          *string     `db:"city" json:"city"`
	State         *string     `db:"state" json:"state"`
}
