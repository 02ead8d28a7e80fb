package server

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/derynLeigh/dependabot-service/pkg/controller/scheduler"
	"github.com/derynLeigh/dependabot-service/pkg/domain/interfaces"
	"github.com/derynLeigh/dependabot-service/pkg/domain/model"
	"github.com/derynLeigh/dependabot-service/pkg/utils/errutil"
	"github.com/derynLeigh/dependabot-service/pkg/utils/logging"
	"github.com/go-chi/chi/v5"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func respondJSON(w http.ResponseWriter, code int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, data)
}

type config struct {
	schedulerStats func() scheduler.Stats
}

type Option func(*config)

// WithSchedulerStats exposes the refresh scheduler's execution
// bookkeeping at GET /api/scheduler.
func WithSchedulerStats(stats func() scheduler.Stats) Option {
	return func(cfg *config) {
		cfg.schedulerStats = stats
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{
			"status":  "UP",
			"service": "dependabot-pr-service",
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/prs", func(r chi.Router) {
			r.Get("/", func(w http.ResponseWriter, r *http.Request) {
				prs, err := uc.GetAllDependabotPRs(r.Context())
				if err != nil {
					errutil.HandleError(r.Context(), "fail to get all dependabot PRs", err)
					safeWrite(w, http.StatusInternalServerError, []byte(err.Error()))
					return
				}

				respondJSON(w, http.StatusOK, orEmpty(prs))
			})
			r.Get("/{repository}", func(w http.ResponseWriter, r *http.Request) {
				repo := chi.URLParam(r, "repository")

				prs, err := uc.GetDependabotPRs(r.Context(), repo)
				if err != nil {
					errutil.HandleError(r.Context(), "fail to get dependabot PRs", err)
					safeWrite(w, http.StatusInternalServerError, []byte(err.Error()))
					return
				}

				respondJSON(w, http.StatusOK, orEmpty(prs))
			})
		})

		if cfg.schedulerStats != nil {
			r.Get("/scheduler", func(w http.ResponseWriter, r *http.Request) {
				respondJSON(w, http.StatusOK, cfg.schedulerStats())
			})
		}
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}

// orEmpty keeps the JSON rendering of an empty result a list, never null.
func orEmpty(prs []*model.PullRequest) []*model.PullRequest {
	if prs == nil {
		return []*model.PullRequest{}
	}
	return prs
}
