package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"workshop-api/internal/apperr"
	"workshop-api/internal/database"
	"workshop-api/internal/model"
)

const msgUserNotFound = "User not found"

// GetUserRole 查詢使用者角色；查無此人回傳 NotFound
func GetUserRole(ctx context.Context, conn database.Conn, userID int) (string, error) {
	var role string
	err := conn.QueryRow(ctx, `SELECT role FROM users WHERE id = $1`, userID).Scan(&role)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", apperr.New(apperr.NotFound, msgUserNotFound)
	}
	if err != nil {
		return "", apperr.Wrap(apperr.QueryFailure, "GetUserRole", err)
	}
	return role, nil
}

func GetUserByUsername(ctx context.Context, conn database.Conn, username string) (*model.User, error) {
	row := conn.QueryRow(ctx,
		`SELECT id, username, password_hash, role
		 FROM users WHERE username = $1`,
		username,
	)
	u := &model.User{}
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.Role,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.New(apperr.NotFound, msgUserNotFound)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.QueryFailure, "GetUserByUsername", err)
	}
	return u, nil
}
