// File: internal/model/user.go
package model

// RoleInstructor 可管理工作坊的角色
const RoleInstructor = "instructor"

type User struct {
	ID           int    `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password_hash" json:"-"`
	Role         string `db:"role" json:"role"`
}
