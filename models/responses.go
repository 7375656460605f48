package models

// LoginResponse is the REST login response body. User is serialized
// without its password hash (see [User.PasswordHash]).
type LoginResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// ErrorResponse is the uniform REST error body. Message never carries
// raw store error text; internal detail stays in the server log.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AuthPayload pairs an issued session token with the authenticated user.
// It mirrors the GraphQL AuthPayload type.
type AuthPayload struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
