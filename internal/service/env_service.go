package service

import (
	"context"
	"errors"
	"strings"

	"github.com/haierkeys/env-share-service/internal/domain"
	"github.com/haierkeys/env-share-service/internal/dto"
	"github.com/haierkeys/env-share-service/pkg/code"
	"github.com/haierkeys/env-share-service/pkg/dotenv"
	"github.com/haierkeys/env-share-service/pkg/timex"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EnvService 定义环境变量业务服务接口
type EnvService interface {
	// Set 写入单个变量，同键覆盖；空全名写入全局范围
	Set(ctx context.Context, uid int64, params *dto.EnvSetRequest) (*dto.EnvDTO, error)

	// Import 批量导入 dotenv 文本到单一范围
	Import(ctx context.Context, uid int64, params *dto.EnvImportRequest) (*dto.EnvImportResultDTO, error)

	// List 列出单一范围内的变量，按键名升序
	List(ctx context.Context, uid int64, repoFullName string) ([]*dto.EnvDTO, error)

	// Search 匹配键名或仓库全名，按更新时间倒序
	Search(ctx context.Context, uid int64, query string) ([]*dto.EnvDTO, error)

	// Download 将单一范围渲染为 dotenv 文本
	Download(ctx context.Context, uid int64, repoFullName string) (string, error)

	// Delete 删除变量，仅限所有者
	Delete(ctx context.Context, uid int64, id int64) error
}

// envService 实现 EnvService 接口
type envService struct {
	repo        domain.EnvRepository
	repoService RepoService
	logger      *zap.Logger
}

// NewEnvService 创建 EnvService 实例
func NewEnvService(repo domain.EnvRepository, repoService RepoService, logger *zap.Logger) EnvService {
	return &envService{
		repo:        repo,
		repoService: repoService,
		logger:      logger,
	}
}

// resolveScope 将可选全名解析为 repo_id，空全名为全局范围
// 仓库按需惰性注册
func (s *envService) resolveScope(ctx context.Context, uid int64, repoFullName string) (int64, error) {
	if repoFullName == "" {
		return domain.GlobalRepoID, nil
	}
	repo, err := s.repoService.GetOrCreate(ctx, uid, repoFullName)
	if err != nil {
		return 0, err
	}
	if repo.UID != uid {
		// 全名已被他人占用
		return 0, code.ErrorRepoNotFound
	}
	return repo.ID, nil
}

// readScope 只读解析范围，不注册仓库
func (s *envService) readScope(ctx context.Context, uid int64, repoFullName string) (int64, error) {
	if repoFullName == "" {
		return domain.GlobalRepoID, nil
	}
	return s.repoService.MustGetOwnedID(ctx, uid, repoFullName)
}

func (s *envService) toDTO(e *domain.Env, repoFullName string) *dto.EnvDTO {
	return &dto.EnvDTO{
		ID:           e.ID,
		Key:          e.Key,
		Value:        e.Value,
		Link:         e.Link,
		RepoID:       e.RepoID,
		RepoFullName: repoFullName,
		CreatedAt:    timex.Time(e.CreatedAt),
		UpdatedAt:    timex.Time(e.UpdatedAt),
	}
}

// Set 写入单个变量
func (s *envService) Set(ctx context.Context, uid int64, params *dto.EnvSetRequest) (*dto.EnvDTO, error) {
	repoID, err := s.resolveScope(ctx, uid, params.RepoFullName)
	if err != nil {
		return nil, err
	}

	saved, err := s.repo.Upsert(ctx, &domain.Env{
		UID:    uid,
		RepoID: repoID,
		Key:    params.Key,
		Value:  params.Value,
		Link:   params.Link,
	})
	if err != nil {
		return nil, code.ErrorEnvSave.WithDetails(err.Error())
	}
	return s.toDTO(saved, params.RepoFullName), nil
}

// Import 批量导入 dotenv 文本
// 逐行解析，无效行跳过，没有任何有效条目时报错
func (s *envService) Import(ctx context.Context, uid int64, params *dto.EnvImportRequest) (*dto.EnvImportResultDTO, error) {
	pairs := dotenv.Parse(params.Content)
	if len(pairs) == 0 {
		return nil, code.ErrorEnvText
	}

	repoID, err := s.resolveScope(ctx, uid, params.RepoFullName)
	if err != nil {
		return nil, err
	}

	result := &dto.EnvImportResultDTO{
		Skipped: candidateLines(params.Content) - len(pairs),
		Keys:    make([]string, 0, len(pairs)),
	}
	for _, p := range pairs {
		_, err := s.repo.Upsert(ctx, &domain.Env{
			UID:    uid,
			RepoID: repoID,
			Key:    p.Key,
			Value:  p.Value,
		})
		if err != nil {
			return nil, code.ErrorEnvSave.WithDetails(err.Error())
		}
		result.Imported++
		result.Keys = append(result.Keys, p.Key)
	}

	s.logger.Info("env vars imported",
		zap.Int64("uid", uid),
		zap.Int64("repo_id", repoID),
		zap.Int("count", result.Imported))
	return result, nil
}

// candidateLines 统计既非空行也非注释的行数
func candidateLines(content string) int {
	n := 0
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		n++
	}
	return n
}

// List 列出单一范围内的变量
func (s *envService) List(ctx context.Context, uid int64, repoFullName string) ([]*dto.EnvDTO, error) {
	repoID, err := s.readScope(ctx, uid, repoFullName)
	if err != nil {
		return nil, err
	}

	envs, err := s.repo.ListByScope(ctx, uid, repoID)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	out := make([]*dto.EnvDTO, 0, len(envs))
	for _, e := range envs {
		out = append(out, s.toDTO(e, repoFullName))
	}
	return out, nil
}

// Search 匹配键名或仓库全名
func (s *envService) Search(ctx context.Context, uid int64, query string) ([]*dto.EnvDTO, error) {
	envs, err := s.repo.Search(ctx, uid, query)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	out := make([]*dto.EnvDTO, 0, len(envs))
	for _, e := range envs {
		out = append(out, s.toDTO(e, ""))
	}
	return out, nil
}

// Download 将单一范围渲染为 dotenv 文本
func (s *envService) Download(ctx context.Context, uid int64, repoFullName string) (string, error) {
	repoID, err := s.readScope(ctx, uid, repoFullName)
	if err != nil {
		return "", err
	}

	envs, err := s.repo.ListByScope(ctx, uid, repoID)
	if err != nil {
		return "", code.ErrorDBQuery.WithDetails(err.Error())
	}

	pairs := make([]dotenv.Pair, 0, len(envs))
	for _, e := range envs {
		pairs = append(pairs, dotenv.Pair{Key: e.Key, Value: e.Value})
	}
	return dotenv.Render(pairs), nil
}

// Delete 删除变量
func (s *envService) Delete(ctx context.Context, uid int64, id int64) error {
	_, err := s.repo.GetByID(ctx, id, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code.ErrorEnvNotFound
		}
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	if err := s.repo.Delete(ctx, id, uid); err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	return nil
}

// 确保 envService 实现了 EnvService 接口
var _ EnvService = (*envService)(nil)
