package controllers

import (
	"net/http"

	"github.com/ayoubrebai/autoparts-backend/api/responses"
	"github.com/ayoubrebai/autoparts-backend/pkg/config"
	"github.com/ayoubrebai/autoparts-backend/pkg/db"
	pkgerrors "github.com/ayoubrebai/autoparts-backend/pkg/errors"
	"github.com/ayoubrebai/autoparts-backend/pkg/logger"
	"github.com/ayoubrebai/autoparts-backend/pkg/redis"
)

const envHeader = "X-Autoparts-Env"

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when the datastore and cache answer pings.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		ctx := r.Context()

		if dbP != nil {
			if err := dbP.Ping(ctx); err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unreachable"))
				return
			}
		}
		if redisP != nil {
			if err := redisP.Ping(ctx); err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unreachable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
