// Package limiter provides path based token bucket rate limiting
// Package limiter 提供基于路径的令牌桶限流
package limiter

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juju/ratelimit"
)

// Face limiter interface consumed by the middleware
// Face 中间件消费的限流接口
type Face interface {
	Key(c *gin.Context) string
	GetBucket(key string) (*ratelimit.Bucket, bool)
	AddBuckets(rules ...BucketRule) Face
}

// BucketRule 令牌桶规则
type BucketRule struct {
	Key          string        // Path suffix matched against the request // 与请求匹配的路径后缀
	FillInterval time.Duration // 填充间隔
	Capacity     int64         // 桶容量
	Quantum      int64         // 每次填充数量
}

// MethodLimiter matches buckets by request path suffix
// MethodLimiter 按请求路径后缀匹配令牌桶
type MethodLimiter struct {
	limiterBuckets map[string]*ratelimit.Bucket
}

func NewMethodLimiter() Face {
	return &MethodLimiter{
		limiterBuckets: map[string]*ratelimit.Bucket{},
	}
}

func (l *MethodLimiter) Key(c *gin.Context) string {
	uri := c.Request.RequestURI
	index := strings.Index(uri, "?")
	if index == -1 {
		return uri
	}
	return uri[:index]
}

func (l *MethodLimiter) GetBucket(key string) (*ratelimit.Bucket, bool) {
	for suffix, bucket := range l.limiterBuckets {
		if strings.HasSuffix(key, suffix) {
			return bucket, true
		}
	}
	return nil, false
}

func (l *MethodLimiter) AddBuckets(rules ...BucketRule) Face {
	for _, rule := range rules {
		if _, ok := l.limiterBuckets[rule.Key]; !ok {
			l.limiterBuckets[rule.Key] = ratelimit.NewBucketWithQuantum(rule.FillInterval, rule.Capacity, rule.Quantum)
		}
	}
	return l
}
