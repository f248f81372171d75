package apiclient

type (
	// User describes the authenticated staff member as returned by the
	// login endpoint. BranchID identifies the branch the account belongs to.
	User struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		Role     string `json:"role"`
		BranchID string `json:"branch_id"`
	}

	// LoginPayload is produced only on successful login. Ownership passes
	// to the caller, which is responsible for persisting the token; the
	// client keeps no copy.
	LoginPayload struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}

	// MessagePayload is the body of reset-password and verify-otp
	// responses.
	MessagePayload struct {
		Message string `json:"message"`
	}
)
