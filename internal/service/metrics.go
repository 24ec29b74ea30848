package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 分享引擎指标
var (
	shareIssuedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "env_share",
		Subsystem: "share",
		Name:      "issued_total",
		Help:      "Number of share links issued.",
	})

	shareResolvedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "env_share",
		Subsystem: "share",
		Name:      "resolved_total",
		Help:      "Number of successful share resolutions.",
	})

	// outcome: not_found / revoked / expired
	shareDeniedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "env_share",
		Subsystem: "share",
		Name:      "denied_total",
		Help:      "Number of denied share resolutions by outcome.",
	}, []string{"outcome"})

	shareTokenCollisionTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "env_share",
		Subsystem: "share",
		Name:      "token_collision_total",
		Help:      "Number of token collisions hit on issue.",
	})
)
