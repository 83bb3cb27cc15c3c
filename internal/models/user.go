package models

// Store is the retail store a session operates on. Every other record
// belongs to exactly one store; the backend scopes queries by the store
// context attached to the session.
type Store struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func (s Store) EntityID() int64 { return s.ID }

// User is the authenticated operator.
type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	FullName    string `json:"fullname"`
	IsSuperuser bool   `json:"is_superuser"`
	IsActive    bool   `json:"is_active"`
	IsStaff     bool   `json:"is_staff"`
	LastLogin   string `json:"last_login"`
	Store       Store  `json:"store"`
}

func (u User) EntityID() int64 { return u.ID }
