package service

import (
	"context"
	"errors"
	"time"

	"github.com/haierkeys/env-share-service/internal/domain"
	"github.com/haierkeys/env-share-service/internal/dto"
	"github.com/haierkeys/env-share-service/pkg/code"
	"github.com/haierkeys/env-share-service/pkg/dotenv"
	"github.com/haierkeys/env-share-service/pkg/timex"
	"github.com/haierkeys/env-share-service/pkg/util"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ShareService defines the share-link lifecycle and scoped resolution engine
// ShareService 定义分享链接生命周期与范围解析引擎
type ShareService interface {
	// Issue creates a share link bound to one scope, returns token and expiry only
	// Issue 创建绑定单一范围的分享链接，仅返回 Token 与过期时间
	Issue(ctx context.Context, uid int64, params *dto.ShareCreateRequest) (*dto.ShareCreateResponse, error)

	// Resolve exchanges a token for the scoped variable view, side-effect free
	// Resolve 用 Token 换取范围内变量视图，无副作用
	Resolve(ctx context.Context, token string) (*dto.ShareResolvedDTO, error)

	// ResolveRaw renders the resolved scope as dotenv text
	// ResolveRaw 将解析结果渲染为 dotenv 文本
	ResolveRaw(ctx context.Context, token string) (string, error)

	// List lists the owner's share links, newest first
	// List 列出所有者的分享链接，按创建时间倒序
	List(ctx context.Context, uid int64) ([]*dto.ShareDTO, error)

	// Revoke marks a link revoked, resolution afterwards returns gone
	// Revoke 撤销链接，之后解析返回失效
	Revoke(ctx context.Context, uid int64, id int64) error

	// Sweep removes revoked and long-expired links
	// Sweep 清理已撤销和过期已久的链接
	Sweep(ctx context.Context, retention time.Duration) (int64, error)
}

// shareService implementation of ShareService interface
// shareService 实现 ShareService 接口
type shareService struct {
	repo     domain.ShareLinkRepository
	envRepo  domain.EnvRepository
	repoRepo domain.RepoRepository
	clock    timex.Clock
	logger   *zap.Logger
	config   *ServiceConfig
}

// NewShareService creates ShareService instance
// NewShareService 创建 ShareService 实例
func NewShareService(repo domain.ShareLinkRepository, envRepo domain.EnvRepository, repoRepo domain.RepoRepository, clock timex.Clock, logger *zap.Logger, config *ServiceConfig) ShareService {
	return &shareService{
		repo:     repo,
		envRepo:  envRepo,
		repoRepo: repoRepo,
		clock:    clock,
		logger:   logger,
		config:   config,
	}
}

// ttl bounds, config overridable
const (
	defaultTTLMinutes = 10
	defaultMaxTTL     = 60
	defaultTokenRetry = 3
)

func (s *shareService) ttlBounds() (def int64, max int64) {
	def, max = defaultTTLMinutes, defaultMaxTTL
	if s.config != nil && s.config.Share.DefaultTTLMinutes > 0 {
		def = s.config.Share.DefaultTTLMinutes
	}
	if s.config != nil && s.config.Share.MaxTTLMinutes > 0 {
		max = s.config.Share.MaxTTLMinutes
	}
	return def, max
}

func (s *shareService) tokenRetry() int {
	if s.config != nil && s.config.Share.TokenRetry > 0 {
		return s.config.Share.TokenRetry
	}
	return defaultTokenRetry
}

// Issue creates a share link bound to one scope
// ttl 校验先于任何写入，范围仓库必须属于签发者
func (s *shareService) Issue(ctx context.Context, uid int64, params *dto.ShareCreateRequest) (*dto.ShareCreateResponse, error) {
	def, max := s.ttlBounds()

	// 缺省才取默认值，显式的 0 或负数一律拒绝
	ttl := def
	if params.TTLMinutes != nil {
		ttl = *params.TTLMinutes
	}
	if ttl < 1 || ttl > max {
		return nil, code.ErrorShareTTLNotValid
	}

	// 范围绑定：全名必须解析到签发者自己的仓库，绝不静默回退到全局
	repoID := domain.GlobalRepoID
	if params.RepoFullName != "" {
		repo, err := s.repoRepo.GetByFullName(ctx, params.RepoFullName)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, code.ErrorShareScopeNotFound
			}
			return nil, code.ErrorDBQuery.WithDetails(err.Error())
		}
		if repo.UID != uid {
			return nil, code.ErrorShareScopeNotFound
		}
		repoID = repo.ID
	}

	now := s.clock.Now()
	expiresAt := now.Add(time.Duration(ttl) * time.Minute)

	// 唯一索引兜底碰撞，重试有上限
	for attempt := 0; attempt < s.tokenRetry(); attempt++ {
		token, err := util.GenerateShareToken()
		if err != nil {
			return nil, code.ErrorTokenGenerate.WithDetails(err.Error())
		}

		link := &domain.ShareLink{
			Token:     token,
			UID:       uid,
			RepoID:    repoID,
			Name:      params.Name,
			Status:    domain.ShareStatusActive,
			ExpiresAt: expiresAt,
		}
		err = s.repo.Create(ctx, link)
		if err == nil {
			shareIssuedTotal.Inc()
			s.logger.Info("share link issued",
				zap.Int64("uid", uid),
				zap.Int64("repo_id", repoID),
				zap.Int64("ttl_minutes", ttl))
			return &dto.ShareCreateResponse{
				Token:     token,
				ExpiresAt: timex.Time(expiresAt),
			}, nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			shareTokenCollisionTotal.Inc()
			s.logger.Warn("share token collision, regenerating",
				zap.Int64("uid", uid), zap.Int("attempt", attempt+1))
			continue
		}
		return nil, code.ErrorShareCreate.WithDetails(err.Error())
	}
	return nil, code.ErrorShareCreate
}

// resolveLink fetches the link and applies the deny order:
// unknown, then revoked, then expired
// resolveLink 获取链接并按未知、已撤销、已过期的顺序拒绝
func (s *shareService) resolveLink(ctx context.Context, token string) (*domain.ShareLink, error) {
	link, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			shareDeniedTotal.WithLabelValues("not_found").Inc()
			return nil, code.ErrorShareNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	if link.Status == domain.ShareStatusRevoked {
		shareDeniedTotal.WithLabelValues("revoked").Inc()
		return nil, code.ErrorShareRevoked
	}
	// 过期边界：now == expiresAt 即失效
	if !s.clock.Now().Before(link.ExpiresAt) {
		shareDeniedTotal.WithLabelValues("expired").Inc()
		return nil, code.ErrorShareExpired
	}
	return link, nil
}

// scopeEnvs loads the variables of exactly the link's scope, key ascending
// scopeEnvs 仅加载链接绑定范围内的变量，按键名升序
func (s *shareService) scopeEnvs(ctx context.Context, link *domain.ShareLink) ([]*domain.Env, error) {
	envs, err := s.envRepo.ListByScope(ctx, link.UID, link.RepoID)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return envs, nil
}

// Resolve exchanges a token for the scoped variable view
func (s *shareService) Resolve(ctx context.Context, token string) (*dto.ShareResolvedDTO, error) {
	link, err := s.resolveLink(ctx, token)
	if err != nil {
		return nil, err
	}

	envs, err := s.scopeEnvs(ctx, link)
	if err != nil {
		return nil, err
	}

	header := dto.ShareResolvedHeaderDTO{
		ID:        link.ID,
		Token:     link.Token,
		Name:      link.Name,
		ExpiresAt: timex.Time(link.ExpiresAt),
		CreatedAt: timex.Time(link.CreatedAt),
	}
	if !link.IsGlobal() {
		repo, err := s.repoRepo.GetByID(ctx, link.RepoID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorDBQuery.WithDetails(err.Error())
		}
		if repo != nil {
			header.RepoFullName = repo.FullName
		}
	}

	out := &dto.ShareResolvedDTO{
		Share: header,
		Envs:  make([]dto.ShareEnvDTO, 0, len(envs)),
	}
	for _, e := range envs {
		out.Envs = append(out.Envs, dto.ShareEnvDTO{
			ID:    e.ID,
			Key:   e.Key,
			Value: e.Value,
			Link:  e.Link,
		})
	}

	shareResolvedTotal.Inc()
	return out, nil
}

// ResolveRaw renders the resolved scope as dotenv text
func (s *shareService) ResolveRaw(ctx context.Context, token string) (string, error) {
	link, err := s.resolveLink(ctx, token)
	if err != nil {
		return "", err
	}

	envs, err := s.scopeEnvs(ctx, link)
	if err != nil {
		return "", err
	}

	pairs := make([]dotenv.Pair, 0, len(envs))
	for _, e := range envs {
		pairs = append(pairs, dotenv.Pair{Key: e.Key, Value: e.Value})
	}

	shareResolvedTotal.Inc()
	return dotenv.Render(pairs), nil
}

// List lists the owner's share links, newest first
func (s *shareService) List(ctx context.Context, uid int64) ([]*dto.ShareDTO, error) {
	links, err := s.repo.ListByUID(ctx, uid)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	// 仓库全名按需补齐，同一仓库只查一次
	fullNames := make(map[int64]string)
	out := make([]*dto.ShareDTO, 0, len(links))
	for _, link := range links {
		d := &dto.ShareDTO{
			ID:        link.ID,
			Token:     link.Token,
			RepoID:    link.RepoID,
			Name:      link.Name,
			Status:    link.Status,
			ExpiresAt: timex.Time(link.ExpiresAt),
			CreatedAt: timex.Time(link.CreatedAt),
		}
		if !link.IsGlobal() {
			if name, ok := fullNames[link.RepoID]; ok {
				d.RepoFullName = name
			} else if repo, err := s.repoRepo.GetByID(ctx, link.RepoID); err == nil {
				fullNames[link.RepoID] = repo.FullName
				d.RepoFullName = repo.FullName
			}
		}
		out = append(out, d)
	}
	return out, nil
}

// Revoke marks a link revoked, owner only
func (s *shareService) Revoke(ctx context.Context, uid int64, id int64) error {
	err := s.repo.UpdateStatus(ctx, uid, id, domain.ShareStatusRevoked)
	if err != nil {
		if errors.Is(err, domain.ErrShareNotOwned) {
			return code.ErrorShareNotFound
		}
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	s.logger.Info("share link revoked", zap.Int64("uid", uid), zap.Int64("id", id))
	return nil
}

// Sweep removes revoked and long-expired links
func (s *shareService) Sweep(ctx context.Context, retention time.Duration) (int64, error) {
	before := s.clock.Now().Add(-retention)
	deleted, err := s.repo.DeleteInert(ctx, before)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		s.logger.Info("share links swept", zap.Int64("deleted", deleted))
	}
	return deleted, nil
}

// 确保 shareService 实现了 ShareService 接口
var _ ShareService = (*shareService)(nil)
