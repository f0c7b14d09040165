package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Avatar       string    `json:"avatar,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Branch       string    `json:"branch,omitempty"`
	Year         string    `json:"year,omitempty"`
	Points       int       `json:"points"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UploaderSummary — проекция автора, которую отдаёт модерация.
type UploaderSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	Role      string    `json:"role"`
	Branch    string    `json:"branch,omitempty"`
	Year      string    `json:"year,omitempty"`
	Points    int       `json:"points"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) Summary() *UploaderSummary {
	return &UploaderSummary{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Avatar:    u.Avatar,
		Role:      u.Role,
		Branch:    u.Branch,
		Year:      u.Year,
		Points:    u.Points,
		CreatedAt: u.CreatedAt,
	}
}

type RegisterRequest struct {
	Name     string `json:"name"     example:"Asha Verma"`
	Email    string `json:"email"    example:"asha@example.com"`
	Password string `json:"password" example:"s3cret-pass"`
	Branch   string `json:"branch"   example:"CSE"`
	Year     string `json:"year"     example:"2"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	User        *User  `json:"user"`
}

type LeaderboardEntry struct {
	Rank   int       `json:"rank"`
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar,omitempty"`
	Branch string    `json:"branch,omitempty"`
	Year   string    `json:"year,omitempty"`
	Points int       `json:"points"`
}
