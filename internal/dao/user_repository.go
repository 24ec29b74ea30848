package dao

import (
	"context"
	"time"

	"github.com/haierkeys/env-share-service/internal/domain"
	"github.com/haierkeys/env-share-service/internal/model"
	"github.com/haierkeys/env-share-service/pkg/timex"
)

// userRepository 实现 domain.UserRepository 接口
type userRepository struct {
	dao *Dao
}

// NewUserRepository 创建 UserRepository 实例
func NewUserRepository(dao *Dao) domain.UserRepository {
	return &userRepository{dao: dao}
}

// toDomain 将数据库模型转换为领域模型
func (r *userRepository) toDomain(m *model.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		UID:       m.UID,
		Username:  m.Username,
		Email:     m.Email,
		Password:  m.Password,
		Avatar:    m.Avatar,
		CreatedAt: time.Time(m.CreatedAt),
		UpdatedAt: time.Time(m.UpdatedAt),
	}
}

// toModel 将领域模型转换为数据库模型
func (r *userRepository) toModel(user *domain.User) *model.User {
	if user == nil {
		return nil
	}
	return &model.User{
		UID:       user.UID,
		Username:  user.Username,
		Email:     user.Email,
		Password:  user.Password,
		Avatar:    user.Avatar,
		CreatedAt: timex.Time(user.CreatedAt),
		UpdatedAt: timex.Time(user.UpdatedAt),
	}
}

// Create 创建用户
func (r *userRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	m := r.toModel(user)
	m.CreatedAt = timex.Now()
	m.UpdatedAt = timex.Now()

	if err := r.dao.use("User").WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// GetByUID 根据 UID 获取用户
func (r *userRepository) GetByUID(ctx context.Context, uid int64) (*domain.User, error) {
	var m model.User
	err := r.dao.use("User").WithContext(ctx).
		Where("uid = ?", uid).First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// GetByEmail 根据邮箱获取用户
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m model.User
	err := r.dao.use("User").WithContext(ctx).
		Where("email = ?", email).First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// GetByUsername 根据用户名获取用户
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m model.User
	err := r.dao.use("User").WithContext(ctx).
		Where("username = ?", username).First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// UpdatePassword 更新用户密码
func (r *userRepository) UpdatePassword(ctx context.Context, password string, uid int64) error {
	return r.dao.use("User").WithContext(ctx).
		Model(&model.User{}).
		Where("uid = ?", uid).
		Updates(map[string]interface{}{
			"password":   password,
			"updated_at": timex.Now(),
		}).Error
}

// 确保 userRepository 实现了 domain.UserRepository 接口
var _ domain.UserRepository = (*userRepository)(nil)
