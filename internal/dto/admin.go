package dto

// AdminSignupRequest registers a new administrator.
type AdminSignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginRequest authenticates an administrator.
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginResponse carries the signed access token.
type AdminLoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// AdminChangePasswordRequest rotates a password after verifying the old one.
type AdminChangePasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// AdminRecoverPasswordRequest replaces a password without the old one.
// The route carrying it is gated by the recovery-key middleware.
type AdminRecoverPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// CheckEmailRequest asks whether an admin email is registered.
type CheckEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// CheckEmailResponse reports whether the email exists.
type CheckEmailResponse struct {
	Exists bool `json:"exists"`
}
