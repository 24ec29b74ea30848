package service

import (
	"context"
	"testing"

	"github.com/haierkeys/env-share-service/internal/domain"
	"github.com/haierkeys/env-share-service/internal/dto"
	"github.com/haierkeys/env-share-service/pkg/code"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envFixture struct {
	svc   EnvService
	envs  *memEnvRepo
	repos *memRepoRepo
}

func newEnvFixture(t *testing.T) *envFixture {
	t.Helper()

	f := &envFixture{
		envs:  &memEnvRepo{},
		repos: &memRepoRepo{},
	}
	repoSvc := NewRepoService(f.repos, nil, zap.NewNop())
	f.svc = NewEnvService(f.envs, repoSvc, zap.NewNop())
	return f
}

func TestEnvSetGlobalScope(t *testing.T) {
	f := newEnvFixture(t)

	d, err := f.svc.Set(context.Background(), 1, &dto.EnvSetRequest{Key: "API_KEY", Value: "secret"})
	require.NoError(t, err)
	assert.Equal(t, domain.GlobalRepoID, d.RepoID)
	assert.Empty(t, f.repos.repos)
}

func TestEnvSetRegistersRepoLazily(t *testing.T) {
	f := newEnvFixture(t)
	ctx := context.Background()

	d, err := f.svc.Set(ctx, 1, &dto.EnvSetRequest{
		Key: "DB_URL", Value: "postgres://", RepoFullName: "acme/api",
	})
	require.NoError(t, err)
	assert.NotEqual(t, domain.GlobalRepoID, d.RepoID)

	// 仓库惰性注册，展示名取最后一段
	repo, err := f.repos.GetByFullName(ctx, "acme/api")
	require.NoError(t, err)
	assert.Equal(t, "api", repo.Name)
	assert.Equal(t, int64(1), repo.UID)

	// 再次写入复用同一仓库
	d2, err := f.svc.Set(ctx, 1, &dto.EnvSetRequest{
		Key: "CACHE_URL", Value: "redis://", RepoFullName: "acme/api",
	})
	require.NoError(t, err)
	assert.Equal(t, d.RepoID, d2.RepoID)
	assert.Len(t, f.repos.repos, 1)
}

func TestEnvSetRejectsForeignRepo(t *testing.T) {
	f := newEnvFixture(t)
	ctx := context.Background()

	_, err := f.repos.Create(ctx, &domain.Repo{UID: 2, FullName: "acme/theirs", Name: "theirs"})
	require.NoError(t, err)

	_, err = f.svc.Set(ctx, 1, &dto.EnvSetRequest{
		Key: "X", Value: "y", RepoFullName: "acme/theirs",
	})
	assertCode(t, code.ErrorRepoNotFound, err)
}

func TestEnvSetOverwrites(t *testing.T) {
	f := newEnvFixture(t)
	ctx := context.Background()

	first, err := f.svc.Set(ctx, 1, &dto.EnvSetRequest{Key: "K", Value: "v1"})
	require.NoError(t, err)
	second, err := f.svc.Set(ctx, 1, &dto.EnvSetRequest{Key: "K", Value: "v2"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "v2", second.Value)
}

func TestEnvImport(t *testing.T) {
	f := newEnvFixture(t)

	content := "# comment\nAPI_KEY=abc\n\nDB_URL=\"postgres://x\"\nnot a pair\nEMPTY=\n"
	result, err := f.svc.Import(context.Background(), 1, &dto.EnvImportRequest{Content: content})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, []string{"API_KEY", "DB_URL", "EMPTY"}, result.Keys)

	// 引号剥掉一层
	list, err := f.svc.List(context.Background(), 1, "")
	require.NoError(t, err)
	for _, d := range list {
		if d.Key == "DB_URL" {
			assert.Equal(t, "postgres://x", d.Value)
		}
	}
}

func TestEnvImportNoEntries(t *testing.T) {
	f := newEnvFixture(t)

	_, err := f.svc.Import(context.Background(), 1, &dto.EnvImportRequest{Content: "# only comments\n\n"})
	assertCode(t, code.ErrorEnvText, err)
}

func TestEnvListScopeRequiresOwnership(t *testing.T) {
	f := newEnvFixture(t)
	ctx := context.Background()

	_, err := f.repos.Create(ctx, &domain.Repo{UID: 2, FullName: "acme/theirs", Name: "theirs"})
	require.NoError(t, err)

	_, err = f.svc.List(ctx, 1, "acme/theirs")
	assertCode(t, code.ErrorRepoNotFound, err)

	// 只读操作不注册仓库
	_, err = f.svc.List(ctx, 1, "acme/unknown")
	assertCode(t, code.ErrorRepoNotFound, err)
	assert.Len(t, f.repos.repos, 1)
}

func TestEnvDownloadRendersScope(t *testing.T) {
	f := newEnvFixture(t)
	ctx := context.Background()

	_, err := f.svc.Set(ctx, 1, &dto.EnvSetRequest{Key: "B", Value: "2"})
	require.NoError(t, err)
	_, err = f.svc.Set(ctx, 1, &dto.EnvSetRequest{Key: "A", Value: "1"})
	require.NoError(t, err)

	raw, err := f.svc.Download(ctx, 1, "")
	require.NoError(t, err)
	assert.Equal(t, "A=1\nB=2\n", raw)
}

func TestEnvDeleteOwnerOnly(t *testing.T) {
	f := newEnvFixture(t)
	ctx := context.Background()

	d, err := f.svc.Set(ctx, 1, &dto.EnvSetRequest{Key: "K", Value: "v"})
	require.NoError(t, err)

	err = f.svc.Delete(ctx, 2, d.ID)
	assertCode(t, code.ErrorEnvNotFound, err)

	require.NoError(t, f.svc.Delete(ctx, 1, d.ID))

	list, err := f.svc.List(ctx, 1, "")
	require.NoError(t, err)
	assert.Empty(t, list)
}
