package dao

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/haierkeys/env-share-service/internal/domain"

	"github.com/gookit/goutil/dump"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDao 基于内存 sqlite 构建测试用 Dao
func newTestDao(t *testing.T) *Dao {
	t.Helper()

	c := &DatabaseConfig{
		Type:            "sqlite",
		Path:            ":memory:",
		AutoMigrate:     true,
		MaxIdleConns:    1,
		MaxOpenConns:    1,
		ConnMaxLifetime: "10m",
		ConnMaxIdleTime: "10m",
	}
	db, err := NewDBEngine(c)
	require.NoError(t, err)

	return New(db, context.Background(), WithConfig(c))
}

func TestEnvUpsertOverwrites(t *testing.T) {
	d := newTestDao(t)
	repo := NewEnvRepository(d)
	ctx := context.Background()

	first, err := repo.Upsert(ctx, &domain.Env{
		UID: 1, RepoID: domain.GlobalRepoID, Key: "API_KEY", Value: "v1",
	})
	require.NoError(t, err)
	dump.P(first)

	second, err := repo.Upsert(ctx, &domain.Env{
		UID: 1, RepoID: domain.GlobalRepoID, Key: "API_KEY", Value: "v2",
	})
	require.NoError(t, err)

	// 同键覆盖值，保留原行
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "v2", second.Value)

	list, err := repo.ListByScope(ctx, 1, domain.GlobalRepoID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestEnvScopeIsolationAndOrder(t *testing.T) {
	d := newTestDao(t)
	repo := NewEnvRepository(d)
	ctx := context.Background()

	for _, e := range []*domain.Env{
		{UID: 1, RepoID: 7, Key: "ZETA", Value: "z"},
		{UID: 1, RepoID: 7, Key: "ALPHA", Value: "a"},
		{UID: 1, RepoID: domain.GlobalRepoID, Key: "GLOBAL_ONLY", Value: "g"},
		{UID: 2, RepoID: 7, Key: "OTHER_USER", Value: "o"},
	} {
		_, err := repo.Upsert(ctx, e)
		require.NoError(t, err)
	}

	list, err := repo.ListByScope(ctx, 1, 7)
	require.NoError(t, err)
	require.Len(t, list, 2)

	// 按键名升序，且不含全局变量和他人变量
	assert.Equal(t, "ALPHA", list[0].Key)
	assert.Equal(t, "ZETA", list[1].Key)

	global, err := repo.ListByScope(ctx, 1, domain.GlobalRepoID)
	require.NoError(t, err)
	require.Len(t, global, 1)
	assert.Equal(t, "GLOBAL_ONLY", global[0].Key)
}

func TestEnvSearchByKeyAndRepoFullName(t *testing.T) {
	d := newTestDao(t)
	envRepo := NewEnvRepository(d)
	repoRepo := NewRepoRepository(d)
	ctx := context.Background()

	created, err := repoRepo.Create(ctx, &domain.Repo{
		UID: 1, FullName: "acme/payment-service", Name: "payment-service",
	})
	require.NoError(t, err)

	_, err = envRepo.Upsert(ctx, &domain.Env{UID: 1, RepoID: created.ID, Key: "DB_URL", Value: "x"})
	require.NoError(t, err)
	_, err = envRepo.Upsert(ctx, &domain.Env{UID: 1, RepoID: domain.GlobalRepoID, Key: "PAYMENT_TOKEN", Value: "y"})
	require.NoError(t, err)

	// 键名命中
	byKey, err := envRepo.Search(ctx, 1, "DB_")
	require.NoError(t, err)
	require.Len(t, byKey, 1)
	assert.Equal(t, "DB_URL", byKey[0].Key)

	// 仓库全名命中 + 键名命中，合并返回
	byRepo, err := envRepo.Search(ctx, 1, "payment")
	require.NoError(t, err)
	assert.Len(t, byRepo, 2)
}

func TestRepoFullNameUnique(t *testing.T) {
	d := newTestDao(t)
	repo := NewRepoRepository(d)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.Repo{UID: 1, FullName: "acme/api", Name: "api"})
	require.NoError(t, err)

	// 另一个用户也不能抢占同一全名
	_, err = repo.Create(ctx, &domain.Repo{UID: 2, FullName: "acme/api", Name: "api"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestShareLinkTokenUnique(t *testing.T) {
	d := newTestDao(t)
	repo := NewShareLinkRepository(d)
	ctx := context.Background()

	link := &domain.ShareLink{
		Token:     "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		UID:       1,
		Status:    domain.ShareStatusActive,
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}
	require.NoError(t, repo.Create(ctx, link))
	assert.NotZero(t, link.ID)

	dup := &domain.ShareLink{
		Token:     link.Token,
		UID:       1,
		Status:    domain.ShareStatusActive,
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}
	err := repo.Create(ctx, dup)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestShareLinkListNewestFirst(t *testing.T) {
	d := newTestDao(t)
	repo := NewShareLinkRepository(d)
	ctx := context.Background()

	for _, token := range []string{
		"11111111111111111111111111111111",
		"22222222222222222222222222222222",
		"33333333333333333333333333333333",
	} {
		require.NoError(t, repo.Create(ctx, &domain.ShareLink{
			Token:     token,
			UID:       1,
			Status:    domain.ShareStatusActive,
			ExpiresAt: time.Now().Add(time.Minute),
		}))
	}

	list, err := repo.ListByUID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "33333333333333333333333333333333", list[0].Token)
	assert.Equal(t, "11111111111111111111111111111111", list[2].Token)
}

func TestShareLinkUpdateStatusChecksOwner(t *testing.T) {
	d := newTestDao(t)
	repo := NewShareLinkRepository(d)
	ctx := context.Background()

	link := &domain.ShareLink{
		Token:     "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
		UID:       1,
		Status:    domain.ShareStatusActive,
		ExpiresAt: time.Now().Add(time.Minute),
	}
	require.NoError(t, repo.Create(ctx, link))

	// 他人撤销无效
	err := repo.UpdateStatus(ctx, 2, link.ID, domain.ShareStatusRevoked)
	assert.True(t, errors.Is(err, domain.ErrShareNotOwned))

	require.NoError(t, repo.UpdateStatus(ctx, 1, link.ID, domain.ShareStatusRevoked))

	got, err := repo.GetByToken(ctx, link.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.ShareStatusRevoked, got.Status)
}

func TestShareLinkDeleteInert(t *testing.T) {
	d := newTestDao(t)
	repo := NewShareLinkRepository(d)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, repo.Create(ctx, &domain.ShareLink{
		Token: "cccccccccccccccccccccccccccccccc", UID: 1,
		Status: domain.ShareStatusActive, ExpiresAt: now.Add(-time.Hour),
	}))
	require.NoError(t, repo.Create(ctx, &domain.ShareLink{
		Token: "dddddddddddddddddddddddddddddddd", UID: 1,
		Status: domain.ShareStatusActive, ExpiresAt: now.Add(time.Hour),
	}))

	deleted, err := repo.DeleteInert(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	list, err := repo.ListByUID(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
