package service

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"warga-portal-svc/internal/auth"
	"warga-portal-svc/internal/models"
	"warga-portal-svc/internal/models/response"
	"warga-portal-svc/internal/repository"
	"warga-portal-svc/pkg/logger"
)

// Sentinel errors for authentication and account management
var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrAccountInactive     = errors.New("account is inactive")
	ErrSubscriptionExpired = errors.New("subscription is not active")
	ErrInvalidRole         = errors.New("role is not recognized")
	ErrMissingAkses        = errors.New("missing RT/RW access codes for role")
	ErrEmailTaken          = errors.New("email is already registered")
)

// rolesExemptFromSubscription never need an active subscription to log in
var rolesExemptFromSubscription = map[string]bool{
	auth.RoleSuperAdmin: true,
	auth.RoleAdmin:      true,
	auth.RoleDeveloper:  true,
}

// AuthService interface defines authentication and account methods
type AuthService interface {
	Login(email, password string) (*response.LoginResponse, string, error)
	CreateUser(user *models.User, plainPassword string) (*models.User, error)
	GetUsers() ([]models.User, error)
}

// authService implements AuthService interface
type authService struct {
	userRepo repository.UserRepository
	codec    *auth.SessionCodec
	logger   *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, codec *auth.SessionCodec, logger *logger.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		codec:    codec,
		logger:   logger,
	}
}

// Login verifies credentials and returns the sanitized user plus a signed
// session token. Credential failures are indistinguishable from unknown
// emails by design.
func (s *authService) Login(email, password string) (*response.LoginResponse, string, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.WithField("email", email).Info("Login attempt for unknown email")
			return nil, "", ErrInvalidCredentials
		}
		s.logger.WithError(err).Error("Failed to look up account at login")
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.logger.WithField("email", email).Info("Login attempt with wrong password")
		return nil, "", ErrInvalidCredentials
	}

	if !user.StatusAktif {
		s.logger.WithField("email", email).Warn("Login attempt on inactive account")
		return nil, "", ErrAccountInactive
	}

	if !rolesExemptFromSubscription[user.Role] {
		if user.StatusLangganan != "active" {
			s.logger.WithFields(map[string]interface{}{
				"email":            email,
				"status_langganan": user.StatusLangganan,
			}).Warn("Login attempt without active subscription")
			return nil, "", ErrSubscriptionExpired
		}
		if user.AkhirLangganan != nil && user.AkhirLangganan.Before(time.Now()) {
			s.logger.WithField("email", email).Warn("Login attempt with expired subscription")
			return nil, "", ErrSubscriptionExpired
		}
	}

	sessionUser := auth.SessionUser{
		ID:              user.ID,
		Email:           user.Email,
		Nama:            user.Nama,
		Role:            user.Role,
		RtAkses:         user.RtAkses,
		RwAkses:         user.RwAkses,
		StatusLangganan: user.StatusLangganan,
		LoginTime:       time.Now(),
	}
	if user.AkhirLangganan != nil {
		sessionUser.AkhirLangganan = user.AkhirLangganan.Format(time.RFC3339)
	}

	token, err := s.codec.Encode(sessionUser)
	if err != nil {
		s.logger.WithError(err).Error("Failed to sign session token")
		return nil, "", err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
	}).Info("Login successful")

	return &response.LoginResponse{
		ID:              user.ID,
		Email:           user.Email,
		Nama:            user.Nama,
		Role:            user.Role,
		RtAkses:         user.RtAkses,
		RwAkses:         user.RwAkses,
		StatusLangganan: user.StatusLangganan,
		AkhirLangganan:  user.AkhirLangganan,
		DashboardPath:   auth.DashboardPathFor(user.Role),
	}, token, nil
}

// CreateUser validates and persists a new account with a hashed password
func (s *authService) CreateUser(user *models.User, plainPassword string) (*models.User, error) {
	if !auth.KnownRole(user.Role) {
		return nil, ErrInvalidRole
	}

	switch user.Role {
	case auth.RoleAdminRT, auth.RoleKetuaRT:
		if user.RtAkses == "" || user.RwAkses == "" {
			return nil, ErrMissingAkses
		}
	case auth.RoleAdminRW, auth.RoleKetuaRW:
		if user.RwAkses == "" {
			return nil, ErrMissingAkses
		}
	}

	if _, err := s.userRepo.FindByEmail(user.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hash)

	if err := s.userRepo.Create(user); err != nil {
		s.logger.WithError(err).WithField("email", user.Email).Error("Failed to create account")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
	}).Info("Account created")

	return user, nil
}

// GetUsers returns all accounts; password hashes are excluded by the model's
// JSON tags, not here.
func (s *authService) GetUsers() ([]models.User, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		s.logger.WithError(err).Error("Failed to list accounts")
		return nil, err
	}
	return users, nil
}
