package model

// Identity is the caller resolved from a bearer token. Authentication
// itself happens upstream; this service only reads the signed claims.
type Identity struct {
	Subject string `json:"sub"`
	Name    string `json:"name"`
	Role    string `json:"role"`
}
