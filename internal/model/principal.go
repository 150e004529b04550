package model

// Principal is the authenticated admin identity attached to every request.
type Principal struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AdminUser struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
}
