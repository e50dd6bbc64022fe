package service

import (
	"context"
	"testing"
	"time"

	"caseflow-be/internal/dto"
	"caseflow-be/internal/entity"
	"caseflow-be/internal/repository/specification"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users = append(r.users, user)
	return nil
}
func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }
func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }
func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.users {
		match := true
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.ByEmail:
				if u.Email != s.Email {
					match = false
				}
			case specification.ByID:
				if u.Id != s.ID {
					match = false
				}
			}
		}
		if match {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	return r.users, nil
}
func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.users)), nil
}

type fakeEmailService struct {
	welcomes chan string
}

func newFakeEmailService() *fakeEmailService {
	return &fakeEmailService{welcomes: make(chan string, 4)}
}

func (s *fakeEmailService) SendWelcome(toEmail, fullName string) error {
	s.welcomes <- toEmail
	return nil
}

func (s *fakeEmailService) SendCaseCreated(toEmail, caseName, caseID string) error {
	return nil
}

func newTestAuthService() (IAuthService, *fakeUserRepo, *fakeEmailService) {
	uow := newFakeUnitOfWork()
	users := &fakeUserRepo{}
	uow.users = users
	emails := newFakeEmailService()
	svc := NewAuthService(&fakeUowFactory{uow: uow}, emails, nil, 72)
	return svc, users, emails
}

func TestRegisterCreatesUserAndSendsWelcome(t *testing.T) {
	svc, users, emails := newTestAuthService()

	res, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "jane@example.com",
		Password: "correct-horse",
		FullName: "Jane Doe",
		UserType: "legal_professional",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, res.Id)
	require.Len(t, users.users, 1)
	assert.Equal(t, entity.UserType("legal_professional"), users.users[0].UserType)
	require.NotNil(t, users.users[0].PasswordHash)
	assert.NotEqual(t, "correct-horse", *users.users[0].PasswordHash, "password must be hashed")

	select {
	case to := <-emails.welcomes:
		assert.Equal(t, "jane@example.com", to)
	case <-time.After(time.Second):
		t.Fatal("welcome email never sent")
	}
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	svc, users, _ := newTestAuthService()
	users.users = append(users.users, &entity.User{Id: uuid.New(), Email: "jane@example.com"})

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "jane@example.com",
		Password: "whatever-else",
		FullName: "Jane Doe",
		UserType: "pro_se",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, users.users, 1)
}

func TestLoginIssuesTokenWithRoleClaim(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	svc, _, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "jane@example.com",
		Password: "correct-horse",
		FullName: "Jane Doe",
		UserType: "legal_professional",
	})
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "correct-horse",
	})

	require.NoError(t, err)
	assert.Equal(t, "legal_professional", res.UserType)

	token, err := jwt.Parse(res.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test_secret"), nil
	})
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "legal_professional", claims["user_type"])
	assert.NotEmpty(t, claims["user_id"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "jane@example.com",
		Password: "correct-horse",
		FullName: "Jane Doe",
		UserType: "pro_se",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestProfile(t *testing.T) {
	svc, users, _ := newTestAuthService()
	userID := uuid.New()
	users.users = append(users.users, &entity.User{
		Id:       userID,
		Email:    "jane@example.com",
		FullName: "Jane Doe",
		UserType: "pro_se",
	})

	profile, err := svc.Profile(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", profile.FullName)
	assert.Equal(t, "pro_se", profile.UserType)

	_, err = svc.Profile(context.Background(), uuid.New())
	assert.Error(t, err)
}
