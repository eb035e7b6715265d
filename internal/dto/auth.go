package dto

// LoginRequest carries the login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginUser is the sanitized user block returned after login. It never
// carries the password hash.
type LoginUser struct {
	UserID    string `json:"user_id"`
	CompanyID int64  `json:"company_id"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	FullName  string `json:"full_name"`
}

// LoginResponse is the login success envelope.
type LoginResponse struct {
	Success bool      `json:"success"`
	Token   string    `json:"token"`
	User    LoginUser `json:"user"`
}

// RegisterRequest is the signup payload: a new company plus its first user.
type RegisterRequest struct {
	Company CreateCompanyRequest `json:"company" binding:"required"`
	User    CreateUserRequest    `json:"user" binding:"required"`
}

// RegisterResponse reports the ids created by signup.
type RegisterResponse struct {
	Ok        bool   `json:"ok"`
	CompanyID int64  `json:"company_id"`
	UserID    string `json:"user_id"`
}

// ExistsResponse answers the signup existence probes.
type ExistsResponse struct {
	Exists    bool   `json:"exists"`
	CompanyID *int64 `json:"company_id,omitempty"`
}
