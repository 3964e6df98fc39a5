package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-property-booking/internal/booking"
	"github.com/sbilibin2017/gw-property-booking/internal/logger"
	"github.com/sbilibin2017/gw-property-booking/internal/models"
	"github.com/sbilibin2017/gw-property-booking/internal/repositories"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

const (
	minPasswordLen = 6
	minNameLen     = 2
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	ListByRole(ctx context.Context, role string) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
	Update(ctx context.Context, userID uuid.UUID, name, passwordHash string) (*models.UserDB, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, email, role string) (string, error)
}

// AuthService handles registration, login and profiles.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateName(name string) error {
	if utf8.RuneCountInString(strings.TrimSpace(name)) < minNameLen {
		return ErrInvalidName
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLen {
		return ErrInvalidPassword
	}
	return nil
}

// Register creates a user and returns it with an access token.
// An empty role registers a guest.
func (svc *AuthService) Register(ctx context.Context, name, email, password, role string) (*models.UserDB, string, error) {
	log := logger.FromContext(ctx)

	email = NormalizeEmail(email)
	name = strings.TrimSpace(name)
	if role == "" {
		role = booking.RoleGuest
	}

	if err := validateName(name); err != nil {
		return nil, "", err
	}
	if !emailPattern.MatchString(email) {
		return nil, "", ErrInvalidEmail
	}
	if err := validatePassword(password); err != nil {
		return nil, "", err
	}
	if role != booking.RoleGuest && role != booking.RoleOwner {
		return nil, "", ErrInvalidRole
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		log.Errorw("failed to check user exists", "err", err)
		return nil, "", err
	}
	if existing != nil {
		log.Infow("user already exists", "email", email)
		return nil, "", ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	user := &models.UserDB{
		Email:        email,
		PasswordHash: string(hashedPassword),
		Name:         name,
		Role:         role,
	}
	if err := svc.writer.Save(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, "", ErrUserAlreadyExists
		}
		log.Errorw("failed to save user", "err", err)
		return nil, "", err
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Email, user.Role)
	if err != nil {
		log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// Login authenticates a user and returns it with an access token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.UserDB, string, error) {
	log := logger.FromContext(ctx)
	email = NormalizeEmail(email)

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		log.Infow("login for unknown email", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Infow("invalid credentials", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Email, user.Role)
	if err != nil {
		log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// GetProfile returns the caller's own user record.
func (svc *AuthService) GetProfile(ctx context.Context, id booking.Identity) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, id.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if err := booking.Authorize(id, booking.ActionViewProfile, booking.Resource{OwnerID: user.UserID}); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile changes the caller's name and/or password. Nil fields are kept.
func (svc *AuthService) UpdateProfile(ctx context.Context, id booking.Identity, name, password *string) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, id.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if err := booking.Authorize(id, booking.ActionUpdateProfile, booking.Resource{OwnerID: user.UserID}); err != nil {
		return nil, err
	}

	newName, newHash := user.Name, user.PasswordHash
	if name != nil {
		if err := validateName(*name); err != nil {
			return nil, err
		}
		newName = strings.TrimSpace(*name)
	}
	if password != nil {
		if err := validatePassword(*password); err != nil {
			return nil, err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			logger.FromContext(ctx).Errorw("failed to hash password", "err", err)
			return nil, err
		}
		newHash = string(hashed)
	}

	updated, err := svc.writer.Update(ctx, user.UserID, newName, newHash)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to update user", "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}
	return updated, nil
}

// ListOwners returns every user registered as an owner.
func (svc *AuthService) ListOwners(ctx context.Context) ([]models.UserDB, error) {
	return svc.reader.ListByRole(ctx, booking.RoleOwner)
}
