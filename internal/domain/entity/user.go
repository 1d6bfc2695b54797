package entity

import "time"

// User representa un usuario de la API (solo autenticación).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
