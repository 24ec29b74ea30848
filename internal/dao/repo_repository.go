package dao

import (
	"context"
	"time"

	"github.com/haierkeys/env-share-service/internal/domain"
	"github.com/haierkeys/env-share-service/internal/model"
	"github.com/haierkeys/env-share-service/pkg/timex"
)

// repoRepository 实现 domain.RepoRepository 接口
type repoRepository struct {
	dao *Dao
}

// NewRepoRepository 创建 RepoRepository 实例
func NewRepoRepository(dao *Dao) domain.RepoRepository {
	return &repoRepository{dao: dao}
}

func (r *repoRepository) toDomain(m *model.Repo) *domain.Repo {
	if m == nil {
		return nil
	}
	return &domain.Repo{
		ID:        m.ID,
		UID:       m.UID,
		FullName:  m.FullName,
		Name:      m.Name,
		CreatedAt: time.Time(m.CreatedAt),
		UpdatedAt: time.Time(m.UpdatedAt),
	}
}

func (r *repoRepository) toModel(repo *domain.Repo) *model.Repo {
	if repo == nil {
		return nil
	}
	return &model.Repo{
		ID:        repo.ID,
		UID:       repo.UID,
		FullName:  repo.FullName,
		Name:      repo.Name,
		CreatedAt: timex.Time(repo.CreatedAt),
		UpdatedAt: timex.Time(repo.UpdatedAt),
	}
}

// Create 创建仓库记录
// 全名唯一冲突时透出 gorm.ErrDuplicatedKey
func (r *repoRepository) Create(ctx context.Context, repo *domain.Repo) (*domain.Repo, error) {
	m := r.toModel(repo)
	m.CreatedAt = timex.Now()
	m.UpdatedAt = timex.Now()

	if err := r.dao.use("Repo").WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// GetByID 根据 ID 获取仓库
func (r *repoRepository) GetByID(ctx context.Context, id int64) (*domain.Repo, error) {
	var m model.Repo
	err := r.dao.use("Repo").WithContext(ctx).
		Where("id = ?", id).First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// GetByFullName 全局按全名获取仓库
func (r *repoRepository) GetByFullName(ctx context.Context, fullName string) (*domain.Repo, error) {
	var m model.Repo
	err := r.dao.use("Repo").WithContext(ctx).
		Where("full_name = ?", fullName).First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// ListByUID 列出用户的仓库，支持全名子串过滤
func (r *repoRepository) ListByUID(ctx context.Context, uid int64, query string) ([]*domain.Repo, error) {
	var ms []*model.Repo
	tx := r.dao.use("Repo").WithContext(ctx).Where("uid = ?", uid)
	if query != "" {
		tx = tx.Where("full_name LIKE ?", "%"+query+"%")
	}
	if err := tx.Order("updated_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}

	list := make([]*domain.Repo, 0, len(ms))
	for _, m := range ms {
		list = append(list, r.toDomain(m))
	}
	return list, nil
}

// Touch 刷新仓库更新时间
func (r *repoRepository) Touch(ctx context.Context, id int64) error {
	return r.dao.use("Repo").WithContext(ctx).
		Model(&model.Repo{}).
		Where("id = ?", id).
		Update("updated_at", timex.Now()).Error
}

// 确保 repoRepository 实现了 domain.RepoRepository 接口
var _ domain.RepoRepository = (*repoRepository)(nil)
