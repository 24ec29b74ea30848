package api_router

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/haierkeys/env-share-service/internal/app"
	"github.com/haierkeys/env-share-service/internal/dto"
	pkgapp "github.com/haierkeys/env-share-service/pkg/app"
	"github.com/haierkeys/env-share-service/pkg/timex"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubShareService 只记录 Issue 入参并返回固定结果
type stubShareService struct {
	gotUID    int64
	gotParams *dto.ShareCreateRequest
	result    *dto.ShareCreateResponse
}

func (s *stubShareService) Issue(ctx context.Context, uid int64, params *dto.ShareCreateRequest) (*dto.ShareCreateResponse, error) {
	s.gotUID = uid
	s.gotParams = params
	return s.result, nil
}

func (s *stubShareService) Resolve(ctx context.Context, token string) (*dto.ShareResolvedDTO, error) {
	return nil, nil
}

func (s *stubShareService) ResolveRaw(ctx context.Context, token string) (string, error) {
	return "", nil
}

func (s *stubShareService) List(ctx context.Context, uid int64) ([]*dto.ShareDTO, error) {
	return nil, nil
}

func (s *stubShareService) Revoke(ctx context.Context, uid int64, id int64) error {
	return nil
}

func (s *stubShareService) Sweep(ctx context.Context, retention time.Duration) (int64, error) {
	return 0, nil
}

func newIssueEngine(stub *stubShareService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewShareHandler(&app.App{ShareService: stub})

	r := gin.New()
	r.POST("/api/share", func(c *gin.Context) {
		c.Set("user_token", &pkgapp.UserEntity{UID: 7})
		h.Issue(c)
	})
	return r
}

func TestIssueRespondsCreated(t *testing.T) {
	stub := &stubShareService{
		result: &dto.ShareCreateResponse{
			Token:     "deadbeefdeadbeefdeadbeefdeadbeef",
			ExpiresAt: timex.Time(time.Date(2026, 3, 1, 12, 10, 0, 0, time.UTC)),
		},
	}
	r := newIssueEngine(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/share", bytes.NewBufferString(`{"ttlMinutes": 5}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	// 签发成功返回 201 Created
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "deadbeefdeadbeefdeadbeefdeadbeef")
	assert.Equal(t, int64(7), stub.gotUID)
	require.NotNil(t, stub.gotParams.TTLMinutes)
	assert.Equal(t, int64(5), *stub.gotParams.TTLMinutes)
}

// 缺省与显式 0 在绑定层必须可区分
func TestIssueBindingKeepsOmittedTTLNil(t *testing.T) {
	stub := &stubShareService{result: &dto.ShareCreateResponse{Token: "t"}}
	r := newIssueEngine(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/share", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Nil(t, stub.gotParams.TTLMinutes)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/share", bytes.NewBufferString(`{"ttlMinutes": 0}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.NotNil(t, stub.gotParams.TTLMinutes)
	assert.Equal(t, int64(0), *stub.gotParams.TTLMinutes)
}
