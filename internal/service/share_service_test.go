package service

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/haierkeys/env-share-service/internal/domain"
	"github.com/haierkeys/env-share-service/internal/dto"
	"github.com/haierkeys/env-share-service/pkg/code"
	"github.com/haierkeys/env-share-service/pkg/timex"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ---------------- 内存 mock ----------------

type memShareLinkRepo struct {
	nextID int64
	links  []*domain.ShareLink
	// 强制 Create 前 N 次返回重复键错误
	collideTimes int
}

func (m *memShareLinkRepo) Create(_ context.Context, link *domain.ShareLink) error {
	if m.collideTimes > 0 {
		m.collideTimes--
		return gorm.ErrDuplicatedKey
	}
	for _, l := range m.links {
		if l.Token == link.Token {
			return gorm.ErrDuplicatedKey
		}
	}
	m.nextID++
	link.ID = m.nextID
	link.CreatedAt = time.Now()
	cp := *link
	m.links = append(m.links, &cp)
	return nil
}

func (m *memShareLinkRepo) GetByToken(_ context.Context, token string) (*domain.ShareLink, error) {
	for _, l := range m.links {
		if l.Token == token {
			cp := *l
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memShareLinkRepo) ListByUID(_ context.Context, uid int64) ([]*domain.ShareLink, error) {
	var out []*domain.ShareLink
	for i := len(m.links) - 1; i >= 0; i-- {
		if m.links[i].UID == uid {
			cp := *m.links[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memShareLinkRepo) UpdateStatus(_ context.Context, uid int64, id int64, status int64) error {
	for _, l := range m.links {
		if l.ID == id && l.UID == uid {
			l.Status = status
			return nil
		}
	}
	return domain.ErrShareNotOwned
}

func (m *memShareLinkRepo) DeleteInert(_ context.Context, before time.Time) (int64, error) {
	var kept []*domain.ShareLink
	var deleted int64
	for _, l := range m.links {
		if l.Status == domain.ShareStatusRevoked || l.ExpiresAt.Before(before) {
			deleted++
			continue
		}
		kept = append(kept, l)
	}
	m.links = kept
	return deleted, nil
}

type memEnvRepo struct {
	nextID int64
	envs   []*domain.Env
}

func (m *memEnvRepo) Upsert(_ context.Context, env *domain.Env) (*domain.Env, error) {
	for _, e := range m.envs {
		if e.UID == env.UID && e.RepoID == env.RepoID && e.Key == env.Key {
			e.Value = env.Value
			e.Link = env.Link
			cp := *e
			return &cp, nil
		}
	}
	m.nextID++
	env.ID = m.nextID
	cp := *env
	m.envs = append(m.envs, &cp)
	return env, nil
}

func (m *memEnvRepo) GetByID(_ context.Context, id int64, uid int64) (*domain.Env, error) {
	for _, e := range m.envs {
		if e.ID == id && e.UID == uid {
			cp := *e
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memEnvRepo) ListByScope(_ context.Context, uid int64, repoID int64) ([]*domain.Env, error) {
	var out []*domain.Env
	for _, e := range m.envs {
		if e.UID == uid && e.RepoID == repoID {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (m *memEnvRepo) Search(_ context.Context, uid int64, query string) ([]*domain.Env, error) {
	var out []*domain.Env
	for _, e := range m.envs {
		if e.UID == uid && strings.Contains(e.Key, query) {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memEnvRepo) Delete(_ context.Context, id int64, uid int64) error {
	for i, e := range m.envs {
		if e.ID == id && e.UID == uid {
			m.envs = append(m.envs[:i], m.envs[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type memRepoRepo struct {
	nextID int64
	repos  []*domain.Repo
}

func (m *memRepoRepo) Create(_ context.Context, repo *domain.Repo) (*domain.Repo, error) {
	for _, r := range m.repos {
		if r.FullName == repo.FullName {
			return nil, gorm.ErrDuplicatedKey
		}
	}
	m.nextID++
	repo.ID = m.nextID
	cp := *repo
	m.repos = append(m.repos, &cp)
	return repo, nil
}

func (m *memRepoRepo) GetByID(_ context.Context, id int64) (*domain.Repo, error) {
	for _, r := range m.repos {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memRepoRepo) GetByFullName(_ context.Context, fullName string) (*domain.Repo, error) {
	for _, r := range m.repos {
		if r.FullName == fullName {
			cp := *r
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memRepoRepo) ListByUID(_ context.Context, uid int64, _ string) ([]*domain.Repo, error) {
	var out []*domain.Repo
	for _, r := range m.repos {
		if r.UID == uid {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memRepoRepo) Touch(_ context.Context, _ int64) error { return nil }

var (
	_ domain.ShareLinkRepository = (*memShareLinkRepo)(nil)
	_ domain.EnvRepository       = (*memEnvRepo)(nil)
	_ domain.RepoRepository      = (*memRepoRepo)(nil)
)

// ---------------- 测试夹具 ----------------

type shareFixture struct {
	svc      ShareService
	links    *memShareLinkRepo
	envs     *memEnvRepo
	repos    *memRepoRepo
	now      time.Time
	setClock func(time.Time)
}

func newShareFixture(t *testing.T) *shareFixture {
	t.Helper()

	f := &shareFixture{
		links: &memShareLinkRepo{},
		envs:  &memEnvRepo{},
		repos: &memRepoRepo{},
		now:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	f.setClock = func(tm time.Time) { f.now = tm }

	clock := timex.ClockFunc(func() time.Time { return f.now })
	f.svc = NewShareService(f.links, f.envs, f.repos, clock, zap.NewNop(), &ServiceConfig{})
	return f
}

func ttlOf(v int64) *int64 { return &v }

func assertCode(t *testing.T, want *code.Code, err error) {
	t.Helper()
	require.Error(t, err)
	c, ok := err.(*code.Code)
	require.True(t, ok, "error is not a code: %v", err)
	assert.Equal(t, want.Code(), c.Code())
}

// ---------------- Issue ----------------

func TestIssueDefaultTTL(t *testing.T) {
	f := newShareFixture(t)

	resp, err := f.svc.Issue(context.Background(), 1, &dto.ShareCreateRequest{})
	require.NoError(t, err)

	// 省略 ttl 取默认 10 分钟
	assert.Equal(t, f.now.Add(10*time.Minute), time.Time(resp.ExpiresAt))
	assert.Len(t, resp.Token, 32)
}

func TestIssueTTLBounds(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()

	_, err := f.svc.Issue(ctx, 1, &dto.ShareCreateRequest{TTLMinutes: ttlOf(-1)})
	assertCode(t, code.ErrorShareTTLNotValid, err)

	_, err = f.svc.Issue(ctx, 1, &dto.ShareCreateRequest{TTLMinutes: ttlOf(61)})
	assertCode(t, code.ErrorShareTTLNotValid, err)

	// 显式的 0 不等于缺省，按零生命周期请求拒绝
	_, err = f.svc.Issue(ctx, 1, &dto.ShareCreateRequest{TTLMinutes: ttlOf(0)})
	assertCode(t, code.ErrorShareTTLNotValid, err)

	// 校验失败不落任何行
	assert.Empty(t, f.links.links)

	resp, err := f.svc.Issue(ctx, 1, &dto.ShareCreateRequest{TTLMinutes: ttlOf(60)})
	require.NoError(t, err)
	assert.Equal(t, f.now.Add(60*time.Minute), time.Time(resp.ExpiresAt))

	resp, err = f.svc.Issue(ctx, 1, &dto.ShareCreateRequest{TTLMinutes: ttlOf(1)})
	require.NoError(t, err)
	assert.Equal(t, f.now.Add(time.Minute), time.Time(resp.ExpiresAt))
}

func TestIssueScopeNotFound(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()

	// 未注册的全名不会静默回退到全局范围
	_, err := f.svc.Issue(ctx, 1, &dto.ShareCreateRequest{RepoFullName: "acme/ghost"})
	assertCode(t, code.ErrorShareScopeNotFound, err)
	assert.Empty(t, f.links.links)

	// 他人的仓库同样拒绝
	_, err = f.repos.Create(ctx, &domain.Repo{UID: 2, FullName: "acme/theirs", Name: "theirs"})
	require.NoError(t, err)
	_, err = f.svc.Issue(ctx, 1, &dto.ShareCreateRequest{RepoFullName: "acme/theirs"})
	assertCode(t, code.ErrorShareScopeNotFound, err)
}

func TestIssueTokenCollisionRetries(t *testing.T) {
	f := newShareFixture(t)
	f.links.collideTimes = 2

	resp, err := f.svc.Issue(context.Background(), 1, &dto.ShareCreateRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Len(t, f.links.links, 1)
}

func TestIssueTokenCollisionExhausted(t *testing.T) {
	f := newShareFixture(t)
	f.links.collideTimes = 99

	_, err := f.svc.Issue(context.Background(), 1, &dto.ShareCreateRequest{})
	assertCode(t, code.ErrorShareCreate, err)
}

// ---------------- Resolve ----------------

func TestResolveUnknownToken(t *testing.T) {
	f := newShareFixture(t)

	_, err := f.svc.Resolve(context.Background(), "deadbeefdeadbeefdeadbeefdeadbeef")
	assertCode(t, code.ErrorShareNotFound, err)
}

func TestResolveExpiryBoundary(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()

	resp, err := f.svc.Issue(ctx, 1, &dto.ShareCreateRequest{TTLMinutes: ttlOf(5)})
	require.NoError(t, err)

	// 过期前一秒可解析
	f.setClock(f.now.Add(5*time.Minute - time.Second))
	_, err = f.svc.Resolve(ctx, resp.Token)
	require.NoError(t, err)

	// now == expiresAt 即失效
	f.setClock(f.now.Add(time.Second))
	_, err = f.svc.Resolve(ctx, resp.Token)
	assertCode(t, code.ErrorShareExpired, err)
}

func TestResolveScopeContainment(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()

	repo, err := f.repos.Create(ctx, &domain.Repo{UID: 1, FullName: "acme/api", Name: "api"})
	require.NoError(t, err)

	// 范围内、全局、他人和别的仓库的变量混在一起
	for _, e := range []*domain.Env{
		{UID: 1, RepoID: repo.ID, Key: "B_KEY", Value: "b"},
		{UID: 1, RepoID: repo.ID, Key: "A_KEY", Value: "a"},
		{UID: 1, RepoID: domain.GlobalRepoID, Key: "GLOBAL", Value: "g"},
		{UID: 1, RepoID: repo.ID + 100, Key: "OTHER_REPO", Value: "x"},
		{UID: 2, RepoID: repo.ID, Key: "OTHER_USER", Value: "y"},
	} {
		_, err := f.envs.Upsert(ctx, e)
		require.NoError(t, err)
	}

	resp, err := f.svc.Issue(ctx, 1, &dto.ShareCreateRequest{RepoFullName: "acme/api"})
	require.NoError(t, err)

	view, err := f.svc.Resolve(ctx, resp.Token)
	require.NoError(t, err)

	// 仅含绑定范围，按键名升序
	require.Len(t, view.Envs, 2)
	assert.Equal(t, "A_KEY", view.Envs[0].Key)
	assert.Equal(t, "B_KEY", view.Envs[1].Key)
	assert.Equal(t, "acme/api", view.Share.RepoFullName)
}

func TestResolveGlobalScope(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()

	_, err := f.envs.Upsert(ctx, &domain.Env{UID: 1, RepoID: domain.GlobalRepoID, Key: "TOKEN", Value: "t"})
	require.NoError(t, err)
	_, err = f.envs.Upsert(ctx, &domain.Env{UID: 1, RepoID: 42, Key: "SCOPED", Value: "s"})
	require.NoError(t, err)

	resp, err := f.svc.Issue(ctx, 1, &dto.ShareCreateRequest{})
	require.NoError(t, err)

	view, err := f.svc.Resolve(ctx, resp.Token)
	require.NoError(t, err)

	// 全局链接只暴露未挂接仓库的变量
	require.Len(t, view.Envs, 1)
	assert.Equal(t, "TOKEN", view.Envs[0].Key)
	assert.Empty(t, view.Share.RepoFullName)
}

func TestResolveEmptyScope(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()

	resp, err := f.svc.Issue(ctx, 1, &dto.ShareCreateRequest{})
	require.NoError(t, err)

	// 空范围是合法的，返回空列表而非错误
	view, err := f.svc.Resolve(ctx, resp.Token)
	require.NoError(t, err)
	assert.Empty(t, view.Envs)
}

func TestResolveRawRendering(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()

	_, err := f.envs.Upsert(ctx, &domain.Env{UID: 1, RepoID: domain.GlobalRepoID, Key: "B", Value: "2"})
	require.NoError(t, err)
	_, err = f.envs.Upsert(ctx, &domain.Env{UID: 1, RepoID: domain.GlobalRepoID, Key: "A", Value: "1"})
	require.NoError(t, err)

	resp, err := f.svc.Issue(ctx, 1, &dto.ShareCreateRequest{})
	require.NoError(t, err)

	raw, err := f.svc.ResolveRaw(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "A=1\nB=2\n", raw)
}

// ---------------- Revoke / List / Sweep ----------------

func TestRevokeThenResolve(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()

	resp, err := f.svc.Issue(ctx, 1, &dto.ShareCreateRequest{})
	require.NoError(t, err)

	list, err := f.svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, f.svc.Revoke(ctx, 1, list[0].ID))

	_, err = f.svc.Resolve(ctx, resp.Token)
	assertCode(t, code.ErrorShareRevoked, err)

	_, err = f.svc.ResolveRaw(ctx, resp.Token)
	assertCode(t, code.ErrorShareRevoked, err)
}

func TestRevokeOwnerOnly(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()

	_, err := f.svc.Issue(ctx, 1, &dto.ShareCreateRequest{})
	require.NoError(t, err)
	list, err := f.svc.List(ctx, 1)
	require.NoError(t, err)

	err = f.svc.Revoke(ctx, 2, list[0].ID)
	assertCode(t, code.ErrorShareNotFound, err)
}

func TestListNewestFirstAndOwnerScoped(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()

	first, err := f.svc.Issue(ctx, 1, &dto.ShareCreateRequest{Name: "first"})
	require.NoError(t, err)
	second, err := f.svc.Issue(ctx, 1, &dto.ShareCreateRequest{Name: "second"})
	require.NoError(t, err)
	_, err = f.svc.Issue(ctx, 2, &dto.ShareCreateRequest{})
	require.NoError(t, err)

	list, err := f.svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.Token, list[0].Token)
	assert.Equal(t, first.Token, list[1].Token)
}

func TestSweepKeepsLiveLinks(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()

	expired, err := f.svc.Issue(ctx, 1, &dto.ShareCreateRequest{TTLMinutes: ttlOf(1)})
	require.NoError(t, err)
	live, err := f.svc.Issue(ctx, 1, &dto.ShareCreateRequest{TTLMinutes: ttlOf(60)})
	require.NoError(t, err)

	// 45 分钟后，过期链接超出保留期，长效链接仍然有效
	f.setClock(f.now.Add(45 * time.Minute))
	deleted, err := f.svc.Sweep(ctx, 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = f.svc.Resolve(ctx, expired.Token)
	assertCode(t, code.ErrorShareNotFound, err)

	// 未过期链接不受清理影响
	_, err = f.svc.Resolve(ctx, live.Token)
	require.NoError(t, err)
}
