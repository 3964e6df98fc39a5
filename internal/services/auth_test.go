package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-property-booking/internal/booking"
	"github.com/sbilibin2017/gw-property-booking/internal/models"
	"github.com/sbilibin2017/gw-property-booking/internal/repositories"
	"github.com/sbilibin2017/gw-property-booking/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	tests := []struct {
		name      string
		userName  string
		email     string
		password  string
		role      string
		setup     func()
		wantErr   error
		wantRole  string
		wantEmail string
	}{
		{
			name:     "successful registration defaults to guest",
			userName: "Alice",
			email:    "  Alice@Example.com ",
			password: "pass123",
			setup: func() {
				mockReader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, nil)
				mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *models.UserDB) error {
					u.UserID = uuid.New()
					return nil
				})
				mockJWT.EXPECT().Generate(gomock.Any(), gomock.Any(), "alice@example.com", booking.RoleGuest).Return("token", nil)
			},
			wantRole:  booking.RoleGuest,
			wantEmail: "alice@example.com",
		},
		{
			name:     "owner registration",
			userName: "Olga",
			email:    "olga@example.com",
			password: "pass123",
			role:     booking.RoleOwner,
			setup: func() {
				mockReader.EXPECT().GetByEmail(gomock.Any(), "olga@example.com").Return(nil, nil)
				mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				mockJWT.EXPECT().Generate(gomock.Any(), gomock.Any(), "olga@example.com", booking.RoleOwner).Return("token", nil)
			},
			wantRole:  booking.RoleOwner,
			wantEmail: "olga@example.com",
		},
		{
			name:     "user already exists",
			userName: "Bob",
			email:    "bob@example.com",
			password: "pass123",
			setup: func() {
				mockReader.EXPECT().GetByEmail(gomock.Any(), "bob@example.com").Return(&models.UserDB{UserID: uuid.New()}, nil)
			},
			wantErr: services.ErrUserAlreadyExists,
		},
		{
			name:     "concurrent duplicate caught by unique constraint",
			userName: "Dan",
			email:    "dan@example.com",
			password: "pass123",
			setup: func() {
				mockReader.EXPECT().GetByEmail(gomock.Any(), "dan@example.com").Return(nil, nil)
				mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(repositories.ErrUniqueViolation)
			},
			wantErr: services.ErrUserAlreadyExists,
		},
		{name: "invalid email", userName: "Eve", email: "not-an-email", password: "pass123", setup: func() {}, wantErr: services.ErrInvalidEmail},
		{name: "short password", userName: "Eve", email: "eve@example.com", password: "12345", setup: func() {}, wantErr: services.ErrInvalidPassword},
		{name: "short name", userName: "E", email: "eve@example.com", password: "pass123", setup: func() {}, wantErr: services.ErrInvalidName},
		{name: "unknown role", userName: "Eve", email: "eve@example.com", password: "pass123", role: "admin", setup: func() {}, wantErr: services.ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			user, token, err := svc.Register(context.Background(), tt.userName, tt.email, tt.password, tt.role)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "token", token)
			assert.Equal(t, tt.wantRole, user.Role)
			assert.Equal(t, tt.wantEmail, user.Email)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.password)))
		})
	}
}

func TestAuthService_Register_ValidationIsClassified(t *testing.T) {
	svc := services.NewAuthService(nil, nil, nil)
	_, _, err := svc.Register(context.Background(), "Al", "bad", "pass123", "")
	assert.ErrorIs(t, err, booking.ErrValidation)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	hashed, err := bcrypt.GenerateFromPassword([]byte("pass123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &models.UserDB{UserID: uuid.New(), Email: "alice@example.com", PasswordHash: string(hashed), Role: booking.RoleGuest}

	tests := []struct {
		name      string
		password  string
		found     *models.UserDB
		readerErr error
		jwtCalled bool
		wantToken string
		wantErr   error
	}{
		{name: "successful login", password: "pass123", found: user, jwtCalled: true, wantToken: "jwt-token"},
		{name: "unknown email", password: "pass123", wantErr: services.ErrInvalidCredentials},
		{name: "wrong password", password: "wrong", found: user, wantErr: services.ErrInvalidCredentials},
		{name: "reader error", password: "pass123", readerErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(tt.found, tt.readerErr)
			if tt.jwtCalled {
				mockJWT.EXPECT().Generate(gomock.Any(), user.UserID, user.Email, user.Role).Return(tt.wantToken, nil)
			}

			got, token, err := svc.Login(context.Background(), "ALICE@example.com", tt.password)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
			assert.Equal(t, user.UserID, got.UserID)
		})
	}
}

func TestAuthService_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	svc := services.NewAuthService(mockReader, mockWriter, services.NewMockJWTGenerator(ctrl))

	user := &models.UserDB{UserID: uuid.New(), Email: "alice@example.com", Name: "Alice", PasswordHash: "old", Role: booking.RoleGuest}
	id := booking.Identity{UserID: user.UserID, Email: user.Email, Role: user.Role}

	t.Run("get", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), user.UserID).Return(user, nil)
		got, err := svc.GetProfile(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "Alice", got.Name)
	})

	t.Run("get deleted user", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), user.UserID).Return(nil, nil)
		_, err := svc.GetProfile(context.Background(), id)
		assert.ErrorIs(t, err, booking.ErrNotFound)
	})

	t.Run("anonymous is forbidden", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), uuid.Nil).Return(&models.UserDB{}, nil)
		_, err := svc.GetProfile(context.Background(), booking.Identity{})
		assert.ErrorIs(t, err, booking.ErrForbidden)
	})

	t.Run("update name keeps password", func(t *testing.T) {
		name := "  Alicia "
		mockReader.EXPECT().GetByID(gomock.Any(), user.UserID).Return(user, nil)
		mockWriter.EXPECT().Update(gomock.Any(), user.UserID, "Alicia", "old").
			Return(&models.UserDB{UserID: user.UserID, Name: "Alicia"}, nil)

		got, err := svc.UpdateProfile(context.Background(), id, &name, nil)
		require.NoError(t, err)
		assert.Equal(t, "Alicia", got.Name)
	})

	t.Run("update password rehashes", func(t *testing.T) {
		password := "newpass"
		mockReader.EXPECT().GetByID(gomock.Any(), user.UserID).Return(user, nil)
		mockWriter.EXPECT().Update(gomock.Any(), user.UserID, "Alice", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, name, hash string) (*models.UserDB, error) {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpass")))
				return &models.UserDB{UserID: user.UserID, Name: name, PasswordHash: hash}, nil
			})

		_, err := svc.UpdateProfile(context.Background(), id, nil, &password)
		require.NoError(t, err)
	})

	t.Run("update rejects short password", func(t *testing.T) {
		password := "123"
		mockReader.EXPECT().GetByID(gomock.Any(), user.UserID).Return(user, nil)
		_, err := svc.UpdateProfile(context.Background(), id, nil, &password)
		assert.ErrorIs(t, err, services.ErrInvalidPassword)
	})
}

func TestAuthService_ListOwners(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewAuthService(mockReader, nil, nil)

	owners := []models.UserDB{{UserID: uuid.New(), Role: booking.RoleOwner}}
	mockReader.EXPECT().ListByRole(gomock.Any(), booking.RoleOwner).Return(owners, nil)

	got, err := svc.ListOwners(context.Background())
	require.NoError(t, err)
	assert.Equal(t, owners, got)
}
