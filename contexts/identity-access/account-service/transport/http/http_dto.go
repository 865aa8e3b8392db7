package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	SellerID string `json:"seller_id,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserDTO struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	SellerID  string `json:"seller_id,omitempty"`
	CreatedAt string `json:"created_at"`
}

type AuthResponse struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}

type MeResponse struct {
	User UserDTO `json:"user"`
}

type DemoAccountsResponse struct {
	Note     string   `json:"note"`
	Password string   `json:"password"`
	Emails   []string `json:"emails"`
}
