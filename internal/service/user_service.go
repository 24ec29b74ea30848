package service

import (
	"context"
	"errors"

	"github.com/haierkeys/env-share-service/internal/domain"
	"github.com/haierkeys/env-share-service/internal/dto"
	pkgapp "github.com/haierkeys/env-share-service/pkg/app"
	"github.com/haierkeys/env-share-service/pkg/code"
	"github.com/haierkeys/env-share-service/pkg/timex"
	"github.com/haierkeys/env-share-service/pkg/util"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserService 定义用户业务服务接口
type UserService interface {
	// Register 注册用户并返回带认证 Token 的用户信息
	Register(ctx context.Context, params *dto.UserCreateRequest, ip string) (*dto.UserDTO, error)

	// Login 用用户名或邮箱登录
	Login(ctx context.Context, params *dto.UserLoginRequest, ip string) (*dto.UserDTO, error)

	// ChangePassword 校验旧密码后更新密码
	ChangePassword(ctx context.Context, uid int64, params *dto.UserChangePasswordRequest) error

	// Get 获取用户信息
	Get(ctx context.Context, uid int64) (*dto.UserDTO, error)
}

// userService 实现 UserService 接口
type userService struct {
	repo         domain.UserRepository
	tokenManager pkgapp.TokenManager
	logger       *zap.Logger
	config       *ServiceConfig
}

// NewUserService 创建 UserService 实例
func NewUserService(repo domain.UserRepository, tokenManager pkgapp.TokenManager, logger *zap.Logger, config *ServiceConfig) UserService {
	return &userService{
		repo:         repo,
		tokenManager: tokenManager,
		logger:       logger,
		config:       config,
	}
}

// toDTO 领域模型转 DTO，并签发认证 Token
func (s *userService) toDTO(user *domain.User, ip string, withToken bool) (*dto.UserDTO, error) {
	d := &dto.UserDTO{
		UID:       user.UID,
		Email:     user.Email,
		Username:  user.Username,
		Avatar:    user.Avatar,
		CreatedAt: timex.Time(user.CreatedAt),
		UpdatedAt: timex.Time(user.UpdatedAt),
	}
	if withToken {
		token, err := s.tokenManager.Generate(user.UID, user.Username, ip)
		if err != nil {
			return nil, code.ErrorTokenGenerate.WithDetails(err.Error())
		}
		d.Token = token
	}
	return d, nil
}

// Register 注册用户
func (s *userService) Register(ctx context.Context, params *dto.UserCreateRequest, ip string) (*dto.UserDTO, error) {
	if s.config != nil && !s.config.User.RegisterIsEnable {
		return nil, code.ErrorUserRegisterIsDisable
	}
	if !util.IsValidUsername(params.Username) {
		return nil, code.ErrorUserUsernameNotValid
	}
	if params.Password != params.ConfirmPassword {
		return nil, code.ErrorUserPasswordNotMatch
	}

	if _, err := s.repo.GetByEmail(ctx, params.Email); err == nil {
		return nil, code.ErrorUserEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	if _, err := s.repo.GetByUsername(ctx, params.Username); err == nil {
		return nil, code.ErrorUserAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	hash, err := util.GeneratePasswordHash(params.Password)
	if err != nil {
		return nil, code.ErrorUserRegister.WithDetails(err.Error())
	}

	user, err := s.repo.Create(ctx, &domain.User{
		Email:    params.Email,
		Username: params.Username,
		Password: hash,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, code.ErrorUserEmailAlreadyExists
		}
		return nil, code.ErrorUserRegister.WithDetails(err.Error())
	}

	s.logger.Info("user registered", zap.Int64("uid", user.UID))
	return s.toDTO(user, ip, true)
}

// Login 用用户名或邮箱登录
// 找不到用户与密码错误返回同一错误，避免账号探测
func (s *userService) Login(ctx context.Context, params *dto.UserLoginRequest, ip string) (*dto.UserDTO, error) {
	var user *domain.User
	var err error

	if util.IsValidEmail(params.Credentials) {
		user, err = s.repo.GetByEmail(ctx, params.Credentials)
	} else {
		user, err = s.repo.GetByUsername(ctx, params.Credentials)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorUserLoginPasswordFailed
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	if !util.CheckPasswordHash(user.Password, params.Password) {
		return nil, code.ErrorUserLoginPasswordFailed
	}

	return s.toDTO(user, ip, true)
}

// ChangePassword 校验旧密码后更新密码
func (s *userService) ChangePassword(ctx context.Context, uid int64, params *dto.UserChangePasswordRequest) error {
	if params.Password != params.ConfirmPassword {
		return code.ErrorUserPasswordNotMatch
	}

	user, err := s.repo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code.ErrorUserNotFound
		}
		return code.ErrorDBQuery.WithDetails(err.Error())
	}

	if !util.CheckPasswordHash(user.Password, params.OldPassword) {
		return code.ErrorUserOldPasswordFailed
	}

	hash, err := util.GeneratePasswordHash(params.Password)
	if err != nil {
		return code.ErrorServerInternal.WithDetails(err.Error())
	}
	if err := s.repo.UpdatePassword(ctx, hash, uid); err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}

	s.logger.Info("user password changed", zap.Int64("uid", uid))
	return nil
}

// Get 获取用户信息
func (s *userService) Get(ctx context.Context, uid int64) (*dto.UserDTO, error) {
	user, err := s.repo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorUserNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return s.toDTO(user, "", false)
}

// 确保 userService 实现了 UserService 接口
var _ UserService = (*userService)(nil)
