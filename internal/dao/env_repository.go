package dao

import (
	"context"
	"time"

	"github.com/haierkeys/env-share-service/internal/domain"
	"github.com/haierkeys/env-share-service/internal/model"
	"github.com/haierkeys/env-share-service/pkg/timex"

	"gorm.io/gorm/clause"
)

// envRepository 实现 domain.EnvRepository 接口
type envRepository struct {
	dao *Dao
}

// NewEnvRepository 创建 EnvRepository 实例
func NewEnvRepository(dao *Dao) domain.EnvRepository {
	return &envRepository{dao: dao}
}

func (r *envRepository) toDomain(m *model.Env) *domain.Env {
	if m == nil {
		return nil
	}
	return &domain.Env{
		ID:        m.ID,
		UID:       m.UID,
		RepoID:    m.RepoID,
		Key:       m.Key,
		Value:     m.Value,
		Link:      m.Link,
		CreatedAt: time.Time(m.CreatedAt),
		UpdatedAt: time.Time(m.UpdatedAt),
	}
}

func (r *envRepository) toModel(env *domain.Env) *model.Env {
	if env == nil {
		return nil
	}
	return &model.Env{
		ID:        env.ID,
		UID:       env.UID,
		RepoID:    env.RepoID,
		Key:       env.Key,
		Value:     env.Value,
		Link:      env.Link,
		CreatedAt: timex.Time(env.CreatedAt),
		UpdatedAt: timex.Time(env.UpdatedAt),
	}
}

// Upsert 以 (uid, repo_id, key) 为键写入，存在则覆盖值与链接
func (r *envRepository) Upsert(ctx context.Context, env *domain.Env) (*domain.Env, error) {
	m := r.toModel(env)
	m.CreatedAt = timex.Now()
	m.UpdatedAt = timex.Now()

	err := r.dao.use("Env").WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "uid"}, {Name: "repo_id"}, {Name: "key"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"value", "link", "updated_at"}),
		}).Create(m).Error
	if err != nil {
		return nil, err
	}

	// 冲突更新时回读行，拿到原 ID 与创建时间
	var saved model.Env
	err = r.dao.use("Env").WithContext(ctx).
		Where("uid = ? AND repo_id = ? AND key = ?", m.UID, m.RepoID, m.Key).
		First(&saved).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&saved), nil
}

// GetByID 根据 ID 获取变量，校验所有者
func (r *envRepository) GetByID(ctx context.Context, id int64, uid int64) (*domain.Env, error) {
	var m model.Env
	err := r.dao.use("Env").WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// ListByScope 列出单一范围内的变量，按键名升序
// repoID 为 domain.GlobalRepoID 时仅返回全局变量，范围之间互不可见
func (r *envRepository) ListByScope(ctx context.Context, uid int64, repoID int64) ([]*domain.Env, error) {
	var ms []*model.Env
	err := r.dao.use("Env").WithContext(ctx).
		Where("uid = ? AND repo_id = ?", uid, repoID).
		Order("key ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Env, 0, len(ms))
	for _, m := range ms {
		list = append(list, r.toDomain(m))
	}
	return list, nil
}

// Search 匹配键名或所属仓库全名，按更新时间倒序
func (r *envRepository) Search(ctx context.Context, uid int64, query string) ([]*domain.Env, error) {
	tx := r.dao.use("Env").WithContext(ctx).Where("uid = ?", uid)

	if query != "" {
		// 先找全名匹配的仓库，避免跨表前缀问题
		var repoIDs []int64
		err := r.dao.use("Repo").WithContext(ctx).
			Model(&model.Repo{}).
			Where("uid = ? AND full_name LIKE ?", uid, "%"+query+"%").
			Pluck("id", &repoIDs).Error
		if err != nil {
			return nil, err
		}

		if len(repoIDs) > 0 {
			tx = tx.Where("key LIKE ? OR repo_id IN ?", "%"+query+"%", repoIDs)
		} else {
			tx = tx.Where("key LIKE ?", "%"+query+"%")
		}
	}

	var ms []*model.Env
	if err := tx.Order("updated_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}

	list := make([]*domain.Env, 0, len(ms))
	for _, m := range ms {
		list = append(list, r.toDomain(m))
	}
	return list, nil
}

// Delete 删除变量，校验所有者
func (r *envRepository) Delete(ctx context.Context, id int64, uid int64) error {
	return r.dao.use("Env").WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		Delete(&model.Env{}).Error
}

// 确保 envRepository 实现了 domain.EnvRepository 接口
var _ domain.EnvRepository = (*envRepository)(nil)
