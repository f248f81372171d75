package auth

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		ID           uuid.UUID `json:"id"`
		Name         string    `json:"name"`
		Email        string    `json:"email"`
		Role         string    `json:"role"`
		BranchID     string    `json:"branch_id"`
		PasswordHash string    `json:"-"` // Never serialize password hash
	}

	// ResetCode is a stored password reset code. Only the bcrypt hash of
	// the 6-digit code is persisted.
	ResetCode struct {
		ID        uuid.UUID
		UserID    uuid.UUID
		CodeHash  string
		ExpiresAt time.Time
		Used      bool
	}

	LoginIn struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	// UserOut mirrors the wire shape consumed by the mobile clients: all
	// fields are strings, including the id.
	UserOut struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		Role     string `json:"role"`
		BranchID string `json:"branch_id"`
	}

	LoginOut struct {
		Token string  `json:"token"`
		User  UserOut `json:"user"`
	}

	ResetPasswordIn struct {
		Email string `json:"email" validate:"required,email"`
	}

	VerifyOTPIn struct {
		Email string `json:"email" validate:"required,email"`
		OTP   string `json:"otp" validate:"required,len=6,numeric"`
	}

	MessageOut struct {
		Message string `json:"message"`
	}
)
