// Package accountsdk provides the request/response types for the accounts
// service HTTP API plus a small typed client. The server's handlers and the
// e2e tests share these definitions so the wire contract lives in one place.
package accountsdk

// TokenHeader is the request header carrying the identity token. This is a
// custom header rather than a standard bearer scheme; it is part of the
// service's published contract and clients depend on it.
const TokenHeader = "x-access-token"

// RegisterRequest is the body for POST /register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the body for POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful login. Auth is always true on the
// success path; failures use ErrorResponse instead.
type LoginResponse struct {
	Auth  bool   `json:"auth"`
	Token string `json:"token"`
}

// UserResponse is returned by GET /getuser.
type UserResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

// UpdateRequest is the body for PUT /update. Both fields are optional;
// whichever is present gets applied.
type UpdateRequest struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

// MessageResponse is the generic confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the generic failure body.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by the health probe endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
}
