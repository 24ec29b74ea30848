package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/haierkeys/env-share-service/internal/domain"
	"github.com/haierkeys/env-share-service/internal/dto"
	"github.com/haierkeys/env-share-service/pkg/code"
	"github.com/haierkeys/env-share-service/pkg/github"
	"github.com/haierkeys/env-share-service/pkg/timex"
	"github.com/haierkeys/env-share-service/pkg/util"

	"github.com/jinzhu/copier"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// RepoService 定义仓库注册表业务服务接口
// 仓库按全局唯一全名惰性注册，先到先得
type RepoService interface {
	// GetOrCreate 获取或注册仓库，使用 Singleflight 合并并发请求
	GetOrCreate(ctx context.Context, uid int64, fullName string) (*domain.Repo, error)

	// MustGetOwnedID 解析全名到调用者自己的仓库 ID，不存在或他人占用时报错
	MustGetOwnedID(ctx context.Context, uid int64, fullName string) (int64, error)

	// List 列出用户的仓库，支持全名子串过滤
	List(ctx context.Context, uid int64, query string) ([]*dto.RepoDTO, error)

	// RemoteList 通过访问令牌代理列出托管平台上的仓库
	RemoteList(ctx context.Context, accessToken string, query string) ([]*dto.RemoteRepoDTO, error)
}

// repoService 实现 RepoService 接口
type repoService struct {
	repo   domain.RepoRepository
	remote *github.Client
	logger *zap.Logger
	sf     *singleflight.Group
}

// NewRepoService 创建 RepoService 实例
func NewRepoService(repo domain.RepoRepository, remote *github.Client, logger *zap.Logger) RepoService {
	return &repoService{
		repo:   repo,
		remote: remote,
		logger: logger,
		sf:     &singleflight.Group{},
	}
}

// displayName 取全名最后一段作为展示名
func displayName(fullName string) string {
	if i := strings.LastIndex(fullName, "/"); i >= 0 {
		return fullName[i+1:]
	}
	return fullName
}

// GetOrCreate 获取或注册仓库
// 使用 Singleflight 合并并发请求，唯一索引兜底并发创建
func (s *repoService) GetOrCreate(ctx context.Context, uid int64, fullName string) (*domain.Repo, error) {
	if !util.IsValidRepoFullName(fullName) {
		return nil, code.ErrorRepoNameNotValid
	}

	key := fmt.Sprintf("repo_get_or_create_%s", fullName)

	result, err, _ := s.sf.Do(key, func() (interface{}, error) {
		// 先尝试获取，全名全局唯一
		repo, err := s.repo.GetByFullName(ctx, fullName)
		if err == nil {
			return repo, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorDBQuery.WithDetails(err.Error())
		}

		created, err := s.repo.Create(ctx, &domain.Repo{
			UID:      uid,
			FullName: fullName,
			Name:     displayName(fullName),
		})
		if err != nil {
			// 并发注册撞上唯一索引时回读既有行
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return s.repo.GetByFullName(ctx, fullName)
			}
			return nil, code.ErrorDBQuery.WithDetails(err.Error())
		}
		s.logger.Info("repo registered",
			zap.Int64("uid", uid), zap.String("full_name", fullName))
		return created, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.Repo), nil
}

// MustGetOwnedID 解析全名到调用者自己的仓库 ID
func (s *repoService) MustGetOwnedID(ctx context.Context, uid int64, fullName string) (int64, error) {
	repo, err := s.repo.GetByFullName(ctx, fullName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, code.ErrorRepoNotFound
		}
		return 0, code.ErrorDBQuery.WithDetails(err.Error())
	}
	if repo.UID != uid {
		return 0, code.ErrorRepoNotFound
	}
	return repo.ID, nil
}

// List 列出用户的仓库
func (s *repoService) List(ctx context.Context, uid int64, query string) ([]*dto.RepoDTO, error) {
	repos, err := s.repo.ListByUID(ctx, uid, query)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	out := make([]*dto.RepoDTO, 0, len(repos))
	for _, r := range repos {
		d := &dto.RepoDTO{}
		if err := copier.Copy(d, r); err != nil {
			return nil, code.ErrorServerInternal.WithDetails(err.Error())
		}
		d.CreatedAt = timex.Time(r.CreatedAt)
		d.UpdatedAt = timex.Time(r.UpdatedAt)
		out = append(out, d)
	}
	return out, nil
}

// RemoteList 通过访问令牌代理列出托管平台上的仓库
func (s *repoService) RemoteList(ctx context.Context, accessToken string, query string) ([]*dto.RemoteRepoDTO, error) {
	if accessToken == "" {
		return nil, code.ErrorRemoteAuthToken
	}

	repos, err := s.remote.ListUserRepos(ctx, accessToken, query)
	if err != nil {
		s.logger.Warn("remote repo listing failed", zap.Error(err))
		return nil, code.ErrorRemoteRepoList.WithDetails(err.Error())
	}

	out := make([]*dto.RemoteRepoDTO, 0, len(repos))
	for _, r := range repos {
		out = append(out, &dto.RemoteRepoDTO{
			FullName: r.FullName,
			Name:     r.Name,
			Private:  r.Private,
		})
	}
	return out, nil
}

// 确保 repoService 实现了 RepoService 接口
var _ RepoService = (*repoService)(nil)
