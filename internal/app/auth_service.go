package app

import (
	"context"
	"strings"

	"internmatch/internal/common"
	"internmatch/internal/domain/analytics"
	"internmatch/internal/domain/user"
)

// AuthService covers account registration, login, and profile updates.
// Passwords are stored and compared in plaintext; this platform has no
// real security model and does not pretend to.
type AuthService struct {
	users     user.Repository
	analytics analytics.Repository
}

func NewAuthService(users user.Repository, analyticsRepo analytics.Repository) *AuthService {
	return &AuthService{users: users, analytics: analyticsRepo}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     user.Role
	Company  string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*user.User, error) {
	fields := map[string]string{}
	if strings.TrimSpace(input.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(input.Email) == "" {
		fields["email"] = "email is required"
	}
	if input.Password == "" {
		fields["password"] = "password is required"
	}
	role := user.Role(strings.ToLower(strings.TrimSpace(string(input.Role))))
	if role != user.RoleStudent && role != user.RoleRecruiter {
		fields["role"] = "role must be student or recruiter"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("invalid registration", fields)
	}
	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, common.NewError(common.CodeConflict, "email already registered", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	created, err := s.users.Create(ctx, user.User{
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.TrimSpace(input.Email),
		Password: input.Password,
		Role:     role,
		Company:  strings.TrimSpace(input.Company),
	})
	if err != nil {
		return nil, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "user.registered", UserID: &created.ID, Payload: map[string]string{"role": string(role)}})
	public := created.Public()
	return &public, nil
}

// Login matches email, password, and role against the stored account.
// The account's public snapshot is returned; the session token itself is
// minted at the HTTP boundary.
func (s *AuthService) Login(ctx context.Context, email, password string, role user.Role) (*user.User, error) {
	account, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewError(common.CodeUnauthorized, "invalid credentials", nil)
		}
		return nil, err
	}
	if account.Password != password || account.Role != role {
		return nil, common.NewError(common.CodeUnauthorized, "invalid credentials", nil)
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "user.logged_in", UserID: &account.ID, Payload: map[string]string{"role": string(account.Role)}})
	public := account.Public()
	return &public, nil
}

type ProfileUpdate struct {
	Name    *string      `json:"name,omitempty"`
	Company *string      `json:"company,omitempty"`
	Resume  *user.Resume `json:"resume,omitempty"`
}

// UpdateProfile merges the given fields into the caller's own account.
// Résumé content is taken as-is; parsing an uploaded document is
// simulated upstream.
func (s *AuthService) UpdateProfile(ctx context.Context, userID common.ID, update ProfileUpdate) (*user.User, error) {
	account, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if update.Name != nil && strings.TrimSpace(*update.Name) != "" {
		account.Name = strings.TrimSpace(*update.Name)
	}
	if update.Company != nil {
		account.Company = strings.TrimSpace(*update.Company)
	}
	if update.Resume != nil {
		account.Resume = update.Resume
	}
	updated, err := s.users.Update(ctx, *account)
	if err != nil {
		return nil, err
	}
	_ = s.analytics.Create(ctx, analytics.Event{Name: "user.profile_updated", UserID: &userID, Payload: nil})
	public := updated.Public()
	return &public, nil
}

func (s *AuthService) Get(ctx context.Context, userID common.ID) (*user.User, error) {
	account, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	public := account.Public()
	return &public, nil
}
