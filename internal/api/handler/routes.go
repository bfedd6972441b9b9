package handler

import (
	"net/http"

	"github.com/vfg2006/budget-optimizer-api/internal/api/handler/router"
	"github.com/vfg2006/budget-optimizer-api/internal/usecases/auditing"
	"github.com/vfg2006/budget-optimizer-api/internal/usecases/authenticating"
	"github.com/vfg2006/budget-optimizer-api/internal/usecases/deciding"
	"github.com/vfg2006/budget-optimizer-api/internal/usecases/reconciling"
	"github.com/vfg2006/budget-optimizer-api/internal/usecases/ruling"
	"github.com/vfg2006/budget-optimizer-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Decisions(service deciding.Decider) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/decisions/evaluate",
			Method:      http.MethodPost,
			Handler:     EvaluateDecision(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Budgets(service ruling.Ruler) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/budgets/bulk-action",
			Method:      http.MethodPost,
			Handler:     ExecuteBulkAction(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Modifications(service auditing.Auditor) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/targets/:kind/:id/modifications",
			Method:      http.MethodGet,
			Handler:     ListModifications(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Performance(service reconciling.Reconciler) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/links/:id/performance",
			Method:      http.MethodGet,
			Handler:     ListPerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func SyncJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sync/:type/run",
			Method:      http.MethodPost,
			Handler:     RunSyncJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/sync/status",
			Method:      http.MethodGet,
			Handler:     GetSyncStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
