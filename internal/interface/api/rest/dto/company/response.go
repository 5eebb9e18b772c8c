package company

import (
	"time"

	"github.com/google/uuid"
)

type (
	Request struct {
		Name    string `json:"name"`
		Website string `json:"website,omitempty"`
	}
	Company struct {
		UUID      uuid.UUID `json:"uuid"`
		Name      string    `json:"name"`
		Slug      string    `json:"slug"`
		Website   string    `json:"website,omitempty"`
		LogoPath  string    `json:"logo_path,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}
	ResponseData struct {
		Data Company `json:"data"`
	}
)
