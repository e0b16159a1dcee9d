package services

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobsync-app/jobsync-backend/internal/apperr"
	"github.com/jobsync-app/jobsync-backend/internal/dto"
	"github.com/jobsync-app/jobsync-backend/internal/models"
	"github.com/jobsync-app/jobsync-backend/internal/repository"
)

// Claims is the token payload: subject is the user id, plus the username.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type AuthService struct {
	users  *repository.UserRepository
	secret []byte
	expiry time.Duration
}

func NewAuthService(users *repository.UserRepository, secret string, expiry time.Duration) *AuthService {
	return &AuthService{users: users, secret: []byte(secret), expiry: expiry}
}

// Signup registers a new user and returns an access token with a redacted
// user view. Conflicts on username, or on email when one is supplied.
func (s *AuthService) Signup(req *dto.SignupRequest) (*dto.AuthResponse, error) {
	if _, err := s.users.FindByUsername(req.Username); err == nil {
		return nil, apperr.Conflictf("user with username %q already exists", req.Username)
	} else if !apperr.IsKind(err, apperr.KindNotFound) {
		return nil, err
	}

	if req.Email != "" {
		if _, err := s.users.FindByEmail(req.Email); err == nil {
			return nil, apperr.Conflictf("user with email %q already exists", req.Email)
		} else if !apperr.IsKind(err, apperr.KindNotFound) {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := models.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         models.RoleViewer,
	}
	if req.Email != "" {
		email := req.Email
		user.Email = &email
	}
	if req.PhoneNumber != "" {
		phone := req.PhoneNumber
		user.PhoneNumber = &phone
	}

	if err := s.users.Create(&user); err != nil {
		return nil, err
	}

	return s.tokenResponse(&user)
}

// Login resolves the identifier as an email when it contains "@", otherwise
// as a username, falling back to the other lookup on a miss. Every failure
// collapses to the same generic error so callers cannot enumerate users.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.lookup(req.EmailOrUsername)
	if err != nil {
		return nil, apperr.Unauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperr.Unauthorized("invalid credentials")
	}

	return s.tokenResponse(user)
}

func (s *AuthService) lookup(identifier string) (*models.User, error) {
	if strings.Contains(identifier, "@") {
		if user, err := s.users.FindByEmail(identifier); err == nil {
			return user, nil
		}
		return s.users.FindByUsername(identifier)
	}
	if user, err := s.users.FindByUsername(identifier); err == nil {
		return user, nil
	}
	return s.users.FindByEmail(identifier)
}

// UserByID resolves a token subject back to a stored user.
func (s *AuthService) UserByID(id uuid.UUID) (*models.User, error) {
	return s.users.FindByID(id)
}

// EnsureAdmin seeds the configured admin account when it does not exist yet.
func (s *AuthService) EnsureAdmin(username, password string) error {
	if username == "" || password == "" {
		return nil
	}
	if _, err := s.users.FindByUsername(username); err == nil {
		return nil
	} else if !apperr.IsKind(err, apperr.KindNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Internal(err)
	}
	return s.users.Create(&models.User{
		ID:           uuid.New(),
		Name:         username,
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	})
}

func (s *AuthService) tokenResponse(user *models.User) (*dto.AuthResponse, error) {
	now := time.Now()
	claims := Claims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &dto.AuthResponse{
		AccessToken: token,
		User:        dto.NewUserResponse(user),
	}, nil
}
