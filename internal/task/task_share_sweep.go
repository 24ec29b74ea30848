package task

import (
	"context"

	"github.com/haierkeys/env-share-service/internal/app"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ShareSweepTask 分享链接清理任务
// 按配置的 cron 计划删除已撤销和过期超过保留时间的链接
type ShareSweepTask struct {
	app      *app.App
	schedule cron.Schedule
}

// Name 返回任务名称
func (t *ShareSweepTask) Name() string {
	return "ShareSweep"
}

// Schedule 返回执行计划
func (t *ShareSweepTask) Schedule() cron.Schedule {
	return t.schedule
}

// IsStartupRun 是否立即执行一次
func (t *ShareSweepTask) IsStartupRun() bool {
	return true
}

// Run 执行清理任务
func (t *ShareSweepTask) Run(ctx context.Context) error {
	retention := t.app.Config().GetSweepRetention()

	deleted, err := t.app.ShareService.Sweep(ctx, retention)
	if err != nil {
		t.app.Logger().Error("task log",
			zap.String("task", t.Name()),
			zap.String("msg", "failed"),
			zap.Error(err))
		return err
	}

	t.app.Logger().Info("task log",
		zap.String("task", t.Name()),
		zap.String("msg", "success"),
		zap.Int64("deleted", deleted))

	return nil
}

// NewShareSweepTask 创建分享链接清理任务
// 未启用清理时返回 nil
func NewShareSweepTask(appContainer *app.App) (Task, error) {
	cfg := appContainer.Config()
	if !cfg.Share.SweepIsEnable {
		return nil, nil
	}

	schedule, err := ParseSchedule(cfg.Share.SweepCron)
	if err != nil {
		return nil, err
	}

	return &ShareSweepTask{app: appContainer, schedule: schedule}, nil
}

// init 自动注册清理任务
func init() {
	RegisterWithApp(func(appContainer *app.App) (Task, error) {
		return NewShareSweepTask(appContainer)
	})
}
