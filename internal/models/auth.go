package models

// RegisterRequest holds the data for creating a new user.
// Bodies may be JSON or form-encoded; Fiber's BodyParser handles both.
type RegisterRequest struct {
	Username    string `json:"username" form:"username"`
	Password    string `json:"password" form:"password"`
	FullName    string `json:"fullName" form:"fullName"`
	Gender      string `json:"gender" form:"gender"`
	DateOfBirth string `json:"dateOfBirth" form:"dateOfBirth"`
	Country     string `json:"country" form:"country"`
}

// LoginRequest represents credentials provided by the client.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// RegisterResponse is returned when an account is created.
type RegisterResponse struct {
	Msg      string      `json:"msg"`
	UserInfo *PublicUser `json:"UserInfo,omitempty"`
}

// ErrorResponse is a simple error shape for internal failures.
type ErrorResponse struct {
	Error string `json:"error"`
}
