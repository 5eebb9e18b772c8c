package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	Request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Role     string `json:"role,omitempty"`
	}
	User struct {
		UUID       uuid.UUID `json:"uuid"`
		Email      string    `json:"email"`
		Role       string    `json:"role"`
		Name       string    `json:"name"`
		AvatarPath string    `json:"avatar_path,omitempty"`
		CreatedAt  time.Time `json:"created_at"`
	}
	ResponseData struct {
		Data User `json:"data"`
	}
)
