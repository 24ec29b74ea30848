package dao

import (
	"context"
	"time"

	"github.com/haierkeys/env-share-service/internal/domain"
	"github.com/haierkeys/env-share-service/internal/model"
	"github.com/haierkeys/env-share-service/pkg/timex"
)

// shareLinkRepository 实现 domain.ShareLinkRepository 接口
type shareLinkRepository struct {
	dao *Dao
}

// NewShareLinkRepository 创建 ShareLinkRepository 实例
func NewShareLinkRepository(dao *Dao) domain.ShareLinkRepository {
	return &shareLinkRepository{dao: dao}
}

func (r *shareLinkRepository) toDomain(m *model.ShareLink) *domain.ShareLink {
	if m == nil {
		return nil
	}
	return &domain.ShareLink{
		ID:        m.ID,
		Token:     m.Token,
		UID:       m.UID,
		RepoID:    m.RepoID,
		Name:      m.Name,
		Status:    m.Status,
		ExpiresAt: time.Time(m.ExpiresAt),
		CreatedAt: time.Time(m.CreatedAt),
	}
}

func (r *shareLinkRepository) toModel(link *domain.ShareLink) *model.ShareLink {
	if link == nil {
		return nil
	}
	return &model.ShareLink{
		ID:        link.ID,
		Token:     link.Token,
		UID:       link.UID,
		RepoID:    link.RepoID,
		Name:      link.Name,
		Status:    link.Status,
		ExpiresAt: timex.Time(link.ExpiresAt),
		CreatedAt: timex.Time(link.CreatedAt),
	}
}

// Create 创建分享链接
// Token 撞上唯一索引时透出 gorm.ErrDuplicatedKey，调用方重新生成
func (r *shareLinkRepository) Create(ctx context.Context, link *domain.ShareLink) error {
	m := r.toModel(link)
	m.CreatedAt = timex.Now()

	if err := r.dao.use("ShareLink").WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	link.ID = m.ID // 回填生成的 ID
	link.CreatedAt = time.Time(m.CreatedAt)
	return nil
}

// GetByToken 根据 Token 获取分享链接，不区分状态
func (r *shareLinkRepository) GetByToken(ctx context.Context, token string) (*domain.ShareLink, error) {
	var m model.ShareLink
	err := r.dao.use("ShareLink").WithContext(ctx).
		Where("token = ?", token).First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// ListByUID 列出用户的分享链接，按创建时间倒序
func (r *shareLinkRepository) ListByUID(ctx context.Context, uid int64) ([]*domain.ShareLink, error) {
	var ms []*model.ShareLink
	err := r.dao.use("ShareLink").WithContext(ctx).
		Where("uid = ?", uid).
		Order("created_at DESC, id DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	list := make([]*domain.ShareLink, 0, len(ms))
	for _, m := range ms {
		list = append(list, r.toDomain(m))
	}
	return list, nil
}

// UpdateStatus 更新分享链接状态，校验所有者
func (r *shareLinkRepository) UpdateStatus(ctx context.Context, uid int64, id int64, status int64) error {
	tx := r.dao.use("ShareLink").WithContext(ctx).
		Model(&model.ShareLink{}).
		Where("id = ? AND uid = ?", id, uid).
		Update("status", status)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrShareNotOwned
	}
	return nil
}

// DeleteInert 清理已撤销或过期早于 before 的行
func (r *shareLinkRepository) DeleteInert(ctx context.Context, before time.Time) (int64, error) {
	tx := r.dao.use("ShareLink").WithContext(ctx).
		Where("status = ? OR expires_at < ?", domain.ShareStatusRevoked, timex.Time(before)).
		Delete(&model.ShareLink{})
	return tx.RowsAffected, tx.Error
}

// 确保 shareLinkRepository 实现了 domain.ShareLinkRepository 接口
var _ domain.ShareLinkRepository = (*shareLinkRepository)(nil)
