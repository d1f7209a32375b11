package authorize

import (
	"context"
	"log/slog"
	"sync/atomic"

	psqlwatcher "github.com/IguteChung/casbin-psql-watcher"
	casbin "github.com/casbin/casbin/v2"
	entadapter "github.com/casbin/ent-adapter"
)

// policyLoadHealthy flips to false when a watcher-triggered policy reload
// fails, which fails the readiness probe until the next successful reload.
var policyLoadHealthy atomic.Bool

func init() {
	policyLoadHealthy.Store(true)
}

// IsPolicyHealthy reports whether the last casbin policy load succeeded.
func IsPolicyHealthy() bool {
	return policyLoadHealthy.Load()
}

// CleanupFunc releases enforcer resources on shutdown.
type CleanupFunc func(ctx context.Context)

// NewEnforcer builds a casbin DistributedEnforcer backed by Postgres. A
// LISTEN/NOTIFY watcher propagates role and policy changes to every replica
// without restarting them.
func NewEnforcer(modelPath string, dsn string) (*casbin.DistributedEnforcer, CleanupFunc, error) {
	a, err := entadapter.NewAdapter("postgres", dsn)
	if err != nil {
		return nil, nil, err
	}

	e, err := casbin.NewDistributedEnforcer(modelPath, a)
	if err != nil {
		return nil, nil, err
	}

	w, err := psqlwatcher.NewWatcherWithConnString(context.Background(), dsn, psqlwatcher.Option{
		Channel: "clinic_policy_update",
	})
	if err != nil {
		return nil, nil, err
	}

	err = w.SetUpdateCallback(func(msg string) {
		slog.Debug("casbin policy update received", "message", msg)
		if err := e.LoadPolicy(); err != nil {
			slog.Error("failed to reload policy after watcher notification", "error", err)
			policyLoadHealthy.Store(false)
		} else {
			policyLoadHealthy.Store(true)
		}
	})
	if err != nil {
		return nil, nil, err
	}

	if err := e.SetWatcher(w); err != nil {
		return nil, nil, err
	}

	e.EnableAutoSave(true)
	e.EnableEnforce(true)

	cleanup := func(ctx context.Context) {
		if w != nil {
			slog.Info("closing casbin policy watcher")
			w.Close()
		}
		if e != nil {
			slog.Info("stopping casbin auto policy loading")
			e.StopAutoLoadPolicy()
		}
		slog.Info("casbin enforcer cleanup completed")
	}

	return e, cleanup, nil
}
