package service

import (
	"context"
	"fmt"

	"marketplace-api/internal/auth"
	"marketplace-api/internal/models"
	"marketplace-api/internal/store"
	"marketplace-api/internal/util"

	"go.uber.org/zap"
)

// AccountService handles registration, login and profiles
type AccountService struct {
	store  *store.Store
	tokens *auth.TokenManager
	logger *zap.Logger
}

// NewAccountService creates a new account service
func NewAccountService(store *store.Store, tokens *auth.TokenManager) *AccountService {
	return &AccountService{
		store:  store,
		tokens: tokens,
		logger: util.GetLogger(),
	}
}

// RegisterRequest is the registration payload
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"user_type"`
}

// RegisterResponse is the created-user representation; the password is
// never echoed back.
type RegisterResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
}

// LoginResponse carries the token pair plus identity for the client
type LoginResponse struct {
	Access   string `json:"access"`
	Refresh  string `json:"refresh"`
	Username string `json:"username"`
	UserType string `json:"user_type"`
}

// Register creates an account with a profile. user_type defaults to
// customer and must be customer or seller.
func (s *AccountService) Register(ctx context.Context, req *RegisterRequest) (*RegisterResponse, error) {
	ctx, span := util.StartSpan(ctx, "AccountService.Register")
	defer span.End()

	userType := req.UserType
	if userType == "" {
		userType = models.UserTypeCustomer
	}
	if userType != models.UserTypeCustomer && userType != models.UserTypeSeller {
		verr := newValidationError()
		verr.add("user_type", "must be either 'customer' or 'seller'")
		return nil, verr
	}

	existing, err := s.store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		verr := newValidationError()
		verr.add("username", "a user with that username already exists")
		return nil, verr
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	profile := &models.Profile{UserID: user.ID, UserType: userType}
	if err := s.store.CreateProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	s.logger.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("user_type", userType))

	return &RegisterResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		UserType: profile.UserType,
	}, nil
}

// Login verifies credentials and issues a token pair. The profile is
// created on first login when registration predates profiles.
func (s *AccountService) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	ctx, span := util.StartSpan(ctx, "AccountService.Login")
	defer span.End()

	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		util.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, ErrInvalidCredentials
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		util.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, ErrInvalidCredentials
	}

	profile, err := s.ensureProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	pair, err := s.tokens.IssuePair(user.ID, user.Username, profile.UserType)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	util.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info("User logged in", zap.Int64("user_id", user.ID))

	return &LoginResponse{
		Access:   pair.Access,
		Refresh:  pair.Refresh,
		Username: user.Username,
		UserType: profile.UserType,
	}, nil
}

// ensureProfile fetches the profile, creating a customer one when absent
func (s *AccountService) ensureProfile(ctx context.Context, userID int64) (*models.Profile, error) {
	profile, err := s.store.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	if profile != nil {
		return profile, nil
	}

	profile = &models.Profile{UserID: userID, UserType: models.UserTypeCustomer}
	if err := s.store.CreateProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return profile, nil
}
