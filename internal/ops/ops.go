package ops

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// CheckTimeout — сколько ждём одну зависимость в /readyz.
const CheckTimeout = 2 * time.Second

// ReadyCheck — именованная проверка зависимости (БД, Redis, Kafka).
type ReadyCheck struct {
	Name  string
	Check func(context.Context) error
}

// NewRouter отдаёт служебный HTTP: /healthz (процесс жив) и /readyz (зависимости отвечают).
func NewRouter(log *zap.Logger, checks ...ReadyCheck) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/readyz", readyHandler(log, checks))

	return r
}

func readyHandler(log *zap.Logger, checks []ReadyCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var failures []string
		for _, check := range checks {
			if check.Check == nil {
				continue
			}
			ctx, cancel := context.WithTimeout(r.Context(), CheckTimeout)
			err := check.Check(ctx)
			cancel()
			if err != nil {
				name := check.Name
				if name == "" {
					name = "dependency"
				}
				failures = append(failures, name+": "+err.Error())
			}
		}

		if len(failures) > 0 {
			log.Warn("readiness check failed",
				zap.Strings("failures", failures),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(strings.Join(failures, "; ")))
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
