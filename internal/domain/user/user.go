package user

import (
	"context"

	"internmatch/internal/common"
)

type Role string

const (
	RoleStudent   Role = "student"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

// Resume is the simulated résumé attached to a student account. The
// text fields feed the matching engine; nothing is parsed from a real
// document.
type Resume struct {
	Text       string   `json:"text,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Education  string   `json:"education,omitempty"`
	Experience string   `json:"experience,omitempty"`
	FileName   string   `json:"fileName,omitempty"`
}

type User struct {
	ID       common.ID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Password string    `json:"password,omitempty"`
	Role     Role      `json:"role"`
	Company  string    `json:"company,omitempty"`
	Resume   *Resume   `json:"resume,omitempty"`
}

// Public strips the password for anything that leaves the store.
func (u User) Public() User {
	u.Password = ""
	return u
}

type Repository interface {
	GetByID(ctx context.Context, id common.ID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, u User) (*User, error)
	Update(ctx context.Context, u User) (*User, error)
}
