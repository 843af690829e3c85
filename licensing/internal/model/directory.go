package model

import (
	"time"
)

const DefaultUserType = "default_user"

type User struct {
	ID        int       `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	UserType  string    `json:"user_type" db:"user_type"`
	Status    bool      `json:"status" db:"status"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	UserType string `json:"user_type"`
}

type UpdateUserRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
	UserType string `json:"user_type"`
	Status   *bool  `json:"status"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Address struct {
	ID           int    `json:"id" db:"id"`
	Street       string `json:"street" db:"street" validate:"required"`
	Number       string `json:"number" db:"number"`
	Neighborhood string `json:"neighborhood" db:"neighborhood"`
	City         string `json:"city" db:"city" validate:"required"`
	State        string `json:"state" db:"state" validate:"required"`
	Cep          string `json:"cep" db:"cep"`
}

type Secretary struct {
	ID           int       `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	IsStateLevel bool      `json:"is_state_level" db:"is_state_level"`
	Municipality string    `json:"municipality" db:"municipality"`
	State        string    `json:"state" db:"state"`
	AddressID    *int      `json:"address_id" db:"address_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type SecretaryDetail struct {
	Secretary
	Address      *Address      `json:"address"`
	Responsibles []Responsible `json:"responsibles"`
}

type SecretaryRequest struct {
	Name         string   `json:"name" validate:"required"`
	IsStateLevel bool     `json:"is_state_level"`
	Municipality string   `json:"municipality"`
	State        string   `json:"state"`
	Address      *Address `json:"address"`
}

type School struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	IsPrivate   bool      `json:"is_private" db:"is_private"`
	SecretaryID *int      `json:"secretary_id" db:"secretary_id"`
	AddressID   *int      `json:"address_id" db:"address_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type SchoolDetail struct {
	School
	Address      *Address      `json:"address"`
	Secretary    *Ref          `json:"secretary"`
	Responsibles []Responsible `json:"responsibles"`
}

type SchoolRequest struct {
	Name        string   `json:"name" validate:"required"`
	IsPrivate   bool     `json:"is_private"`
	SecretaryID *int     `json:"secretary_id"`
	Address     *Address `json:"address"`
}

type CreateSchoolRequest struct {
	SchoolRequest
	User        *CreateUserRequest  `json:"user"`
	Responsible *ResponsibleRequest `json:"responsible"`
}

// NewSchool is a school created together with its address, login and responsible.
type NewSchool struct {
	School      School
	Address     Address
	User        User
	Responsible Responsible
}

type Responsible struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Role        string    `json:"role" db:"role"`
	Whatsapp    string    `json:"whatsapp" db:"whatsapp"`
	Phone       string    `json:"phone" db:"phone"`
	UserID      int       `json:"user_id" db:"user_id"`
	SecretaryID *int      `json:"secretary_id" db:"secretary_id"`
	SchoolID    *int      `json:"school_id" db:"school_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type ResponsibleRequest struct {
	Name        string `json:"name" validate:"required"`
	Role        string `json:"role"`
	Whatsapp    string `json:"whatsapp"`
	Phone       string `json:"phone"`
	UserID      int    `json:"user_id"`
	SecretaryID *int   `json:"secretary_id"`
}

// FullSecretaryUpdate replaces a secretariat together with its address, main responsible and that responsible's login.
type FullSecretaryUpdate struct {
	Secretary   SecretaryRequest   `json:"secretary"`
	Address     Address            `json:"address"`
	Responsible ResponsibleRequest `json:"responsible"`
	User        UpdateUserRequest  `json:"user"`
}

type FullSchoolUpdate struct {
	School      SchoolRequest      `json:"school"`
	Address     Address            `json:"address"`
	Responsible ResponsibleRequest `json:"responsible"`
	User        UpdateUserRequest  `json:"user"`
}
