package service

import (
	"context"
	"testing"
	"time"

	"github.com/haierkeys/env-share-service/internal/domain"
	"github.com/haierkeys/env-share-service/internal/dto"
	pkgapp "github.com/haierkeys/env-share-service/pkg/app"
	"github.com/haierkeys/env-share-service/pkg/code"
	"github.com/haierkeys/env-share-service/pkg/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type memUserRepo struct {
	nextUID int64
	users   []*domain.User
}

func (m *memUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	m.nextUID++
	user.UID = m.nextUID
	cp := *user
	m.users = append(m.users, &cp)
	return user, nil
}

func (m *memUserRepo) GetByUID(_ context.Context, uid int64) (*domain.User, error) {
	for _, u := range m.users {
		if u.UID == uid {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memUserRepo) UpdatePassword(_ context.Context, password string, uid int64) error {
	for _, u := range m.users {
		if u.UID == uid {
			u.Password = password
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

var _ domain.UserRepository = (*memUserRepo)(nil)

func newUserService(repo *memUserRepo, registerEnabled bool) UserService {
	tm := pkgapp.NewTokenManager(pkgapp.TokenConfig{
		SecretKey: "test-secret",
		Issuer:    "env-share-service",
		Expiry:    time.Hour,
	})
	return NewUserService(repo, tm, zap.NewNop(), &ServiceConfig{
		User: UserServiceConfig{RegisterIsEnable: registerEnabled},
	})
}

func TestUserRegisterAndLogin(t *testing.T) {
	repo := &memUserRepo{}
	svc := newUserService(repo, true)
	ctx := context.Background()

	d, err := svc.Register(ctx, &dto.UserCreateRequest{
		Email: "dev@example.com", Username: "dev",
		Password: "secret-pass-1", ConfirmPassword: "secret-pass-1",
	}, "127.0.0.1")
	require.NoError(t, err)
	assert.NotEmpty(t, d.Token)
	assert.NotZero(t, d.UID)

	// 密码只存哈希
	stored, err := repo.GetByUID(ctx, d.UID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret-pass-1", stored.Password)
	assert.True(t, util.CheckPasswordHash(stored.Password, "secret-pass-1"))

	// 邮箱或用户名皆可登录
	byEmail, err := svc.Login(ctx, &dto.UserLoginRequest{Credentials: "dev@example.com", Password: "secret-pass-1"}, "")
	require.NoError(t, err)
	assert.Equal(t, d.UID, byEmail.UID)

	byName, err := svc.Login(ctx, &dto.UserLoginRequest{Credentials: "dev", Password: "secret-pass-1"}, "")
	require.NoError(t, err)
	assert.Equal(t, d.UID, byName.UID)
}

func TestUserRegisterDisabled(t *testing.T) {
	svc := newUserService(&memUserRepo{}, false)

	_, err := svc.Register(context.Background(), &dto.UserCreateRequest{
		Email: "dev@example.com", Username: "dev",
		Password: "secret-pass-1", ConfirmPassword: "secret-pass-1",
	}, "")
	assertCode(t, code.ErrorUserRegisterIsDisable, err)
}

func TestUserRegisterConflicts(t *testing.T) {
	svc := newUserService(&memUserRepo{}, true)
	ctx := context.Background()

	req := &dto.UserCreateRequest{
		Email: "dev@example.com", Username: "dev",
		Password: "secret-pass-1", ConfirmPassword: "secret-pass-1",
	}
	_, err := svc.Register(ctx, req, "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, req, "")
	assertCode(t, code.ErrorUserEmailAlreadyExists, err)

	other := *req
	other.Email = "other@example.com"
	_, err = svc.Register(ctx, &other, "")
	assertCode(t, code.ErrorUserAlreadyExists, err)
}

func TestUserRegisterPasswordMismatch(t *testing.T) {
	svc := newUserService(&memUserRepo{}, true)

	_, err := svc.Register(context.Background(), &dto.UserCreateRequest{
		Email: "dev@example.com", Username: "dev",
		Password: "secret-pass-1", ConfirmPassword: "different",
	}, "")
	assertCode(t, code.ErrorUserPasswordNotMatch, err)
}

func TestUserLoginWrongPassword(t *testing.T) {
	svc := newUserService(&memUserRepo{}, true)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.UserCreateRequest{
		Email: "dev@example.com", Username: "dev",
		Password: "secret-pass-1", ConfirmPassword: "secret-pass-1",
	}, "")
	require.NoError(t, err)

	// 账号不存在与密码错误返回同一错误
	_, err = svc.Login(ctx, &dto.UserLoginRequest{Credentials: "dev", Password: "wrong"}, "")
	assertCode(t, code.ErrorUserLoginPasswordFailed, err)
	_, err = svc.Login(ctx, &dto.UserLoginRequest{Credentials: "nobody", Password: "wrong"}, "")
	assertCode(t, code.ErrorUserLoginPasswordFailed, err)
}

func TestUserChangePassword(t *testing.T) {
	repo := &memUserRepo{}
	svc := newUserService(repo, true)
	ctx := context.Background()

	d, err := svc.Register(ctx, &dto.UserCreateRequest{
		Email: "dev@example.com", Username: "dev",
		Password: "secret-pass-1", ConfirmPassword: "secret-pass-1",
	}, "")
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, d.UID, &dto.UserChangePasswordRequest{
		OldPassword: "wrong", Password: "new-pass-1234", ConfirmPassword: "new-pass-1234",
	})
	assertCode(t, code.ErrorUserOldPasswordFailed, err)

	err = svc.ChangePassword(ctx, d.UID, &dto.UserChangePasswordRequest{
		OldPassword: "secret-pass-1", Password: "new-pass-1234", ConfirmPassword: "new-pass-1234",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.UserLoginRequest{Credentials: "dev", Password: "new-pass-1234"}, "")
	require.NoError(t, err)
}
