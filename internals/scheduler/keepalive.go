// file: internals/scheduler/keepalive.go
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"careconnect_backend/internals/configs"
)

// KeepAlive pings the service's own public URL on a schedule so free-tier
// hosts do not put it to sleep. It shares nothing with the data layer.
type KeepAlive struct {
	cron   *cron.Cron
	client *resty.Client
	url    string
	log    *zap.Logger
}

func NewKeepAlive(cfg configs.KeepAliveConfig, log *zap.Logger) (*KeepAlive, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	k := &KeepAlive{
		cron:   cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
		client: resty.New().SetTimeout(timeout).SetHeader("User-Agent", "careconnect-keepalive"),
		url:    cfg.URL,
		log:    log.Named("keepalive"),
	}
	if _, err := k.cron.AddFunc(cfg.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		_ = k.PingOnce(ctx)
	}); err != nil {
		return nil, fmt.Errorf("keepalive schedule %q: %w", cfg.Schedule, err)
	}
	return k, nil
}

// PingOnce issues a single GET. Failures are logged and returned, never retried.
func (k *KeepAlive) PingOnce(ctx context.Context) error {
	resp, err := k.client.R().SetContext(ctx).Get(k.url)
	if err != nil {
		k.log.Warn("ping failed", zap.String("url", k.url), zap.Error(err))
		return err
	}
	if resp.IsError() {
		k.log.Warn("ping returned error status", zap.String("url", k.url), zap.Int("status", resp.StatusCode()))
		return fmt.Errorf("keepalive: %s returned %d", k.url, resp.StatusCode())
	}
	k.log.Debug("ping ok", zap.String("url", k.url), zap.Duration("latency", resp.Time()))
	return nil
}

func (k *KeepAlive) Start() {
	k.log.Info("keep-alive scheduler started", zap.String("url", k.url))
	k.cron.Start()
}

// Stop waits for a running ping to finish or ctx to expire.
func (k *KeepAlive) Stop(ctx context.Context) {
	done := k.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}
