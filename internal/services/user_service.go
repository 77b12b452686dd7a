package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"nursery_manager/internal/auth"
	"nursery_manager/internal/models"
	"nursery_manager/internal/repository"
)

type RegisterInput struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginResult struct {
	AccessToken  string            `json:"access_token"`
	TokenType    string            `json:"token_type"`
	ExpiresAt    time.Time         `json:"expires_at"`
	User         *models.User      `json:"user"`
	Capabilities []auth.Capability `json:"capabilities"`
}

// Profile is the current user plus what the UI may show them.
type Profile struct {
	models.User
	Capabilities []auth.Capability `json:"capabilities"`
}

type UserService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Logout(ctx context.Context, session *auth.Session) error
	Profile(session *auth.Session) (*Profile, error)
	Register(session *auth.Session, input RegisterInput) (*models.User, error)
	InitAdmin(password string) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	sessions auth.SessionStore
	issuer   *auth.TokenIssuer
	tokenTTL time.Duration
	now      Clock
}

func NewUserService(userRepo repository.UserRepository, sessions auth.SessionStore, issuer *auth.TokenIssuer, tokenTTL time.Duration, now Clock) UserService {
	return &userService{userRepo: userRepo, sessions: sessions, issuer: issuer, tokenTTL: tokenTTL, now: now}
}

func (s *userService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	session := auth.NewSession(user.ID, user.Username, user.Role, s.tokenTTL, s.now())
	if err := s.sessions.SaveSession(ctx, session, s.tokenTTL); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	token, err := s.issuer.Issue(session)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken:  token,
		TokenType:    "bearer",
		ExpiresAt:    session.ExpiresAt,
		User:         user,
		Capabilities: auth.CapabilitiesOf(user.Role),
	}, nil
}

func (s *userService) Logout(ctx context.Context, session *auth.Session) error {
	return s.sessions.DeleteSession(ctx, session.ID)
}

func (s *userService) Profile(session *auth.Session) (*Profile, error) {
	user, err := s.userRepo.GetByID(session.UserID)
	if err != nil {
		return nil, err
	}
	return &Profile{User: *user, Capabilities: auth.CapabilitiesOf(user.Role)}, nil
}

func (s *userService) Register(session *auth.Session, input RegisterInput) (*models.User, error) {
	if !session.Can(auth.ManageUsers) {
		return nil, ErrForbidden
	}
	role, err := auth.ParseRole(input.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.createUser(input.Username, input.Email, input.FullName, role, input.Password)
}

// InitAdmin creates the first admin account. It refuses once any admin exists.
func (s *userService) InitAdmin(password string) (*models.User, error) {
	count, err := s.userRepo.CountByRole(auth.Admin)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAdminExists
	}
	user, err := s.createUser("admin", "admin@nursery.local", "Administrator", auth.Admin, password)
	if err != nil {
		return nil, err
	}
	log.Printf("Admin user %q created", user.Username)
	return user, nil
}

func (s *userService) createUser(username, email, fullName string, role auth.Role, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Username:     username,
		Email:        email,
		FullName:     fullName,
		Role:         role,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}
