package validator

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"jobboard-api/internal/interface/api/rest/dto/auth"
	"jobboard-api/internal/interface/api/rest/dto/company"
	"jobboard-api/internal/interface/api/rest/dto/user"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe
	maxNameLen     = 128
)

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

func ValidateSignup(r user.Request) map[string]string {
	errs := make(map[string]string)

	email := strings.ToLower(strings.TrimSpace(r.Email))
	name := strings.TrimSpace(r.Name)

	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	if name == "" {
		errs["name"] = "name is required"
	} else if utf8.RuneCountInString(name) > maxNameLen {
		errs["name"] = "name is too long"
	}

	if l := utf8.RuneCountInString(r.Password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8-72 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	email := strings.ToLower(strings.TrimSpace(r.Email))

	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	if strings.TrimSpace(r.Password) == "" {
		errs["password"] = "password is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateCompany(r company.Request) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = "name is required"
	} else if utf8.RuneCountInString(r.Name) > maxNameLen {
		errs["name"] = "name is too long"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
