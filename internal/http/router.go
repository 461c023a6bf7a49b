package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"internmatch/internal/domain/user"
	"internmatch/internal/http/handlers"
	httpmw "internmatch/internal/http/middleware"
	"internmatch/internal/observability"
)

type RouterDependencies struct {
	AuthHandler       *handlers.AuthHandler
	JobHandler        *handlers.JobHandler
	AssignmentHandler *handlers.AssignmentHandler
	SessionMiddleware *httpmw.SessionMiddleware
	Logger            *logrus.Logger
	Metrics           *observability.Metrics
	RequestTimeout    time.Duration
}

type Router struct {
	deps RouterDependencies
}

const maxBodyBytes = 1 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	return &Router{deps: deps}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(),
		httpmw.RequestID,
		httpmw.Logging(r.deps.Logger),
		httpmw.BodyLimit(maxBodyBytes),
		httpmw.Recover(r.deps.Logger),
		httpmw.Metrics(r.deps.Metrics),
		httpmw.Timeout(r.deps.RequestTimeout),
	)
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/metrics":
			r.deps.Metrics.Handler().ServeHTTP(w, req)
			return
		case req.Method == http.MethodPost && path == "/auth/register":
			r.deps.AuthHandler.Register(w, req)
			return
		case req.Method == http.MethodPost && path == "/auth/login":
			r.deps.AuthHandler.Login(w, req)
			return
		}

		if strings.HasPrefix(path, "/users") || strings.HasPrefix(path, "/jobs") ||
			strings.HasPrefix(path, "/recruiters") || strings.HasPrefix(path, "/applications") ||
			strings.HasPrefix(path, "/assignments") {
			protected := r.deps.SessionMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				r.handleProtected(w, req)
			}))
			protected.ServeHTTP(w, req)
			return
		}

		http.NotFound(w, req)
	})
}

func (r *Router) handleProtected(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path

	switch {
	case req.Method == http.MethodGet && path == "/users/me":
		r.deps.AuthHandler.Me(w, req)
		return
	case req.Method == http.MethodPut && path == "/users/profile":
		r.deps.AuthHandler.UpdateProfile(w, req)
		return
	case req.Method == http.MethodGet && path == "/jobs/matches":
		httpmw.RequireRole(user.RoleStudent)(http.HandlerFunc(r.deps.JobHandler.Matches)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/jobs":
		httpmw.RequireRole(user.RoleRecruiter)(http.HandlerFunc(r.deps.JobHandler.Create)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/jobs/") && strings.HasSuffix(path, "/apply"):
		httpmw.RequireRole(user.RoleStudent)(http.HandlerFunc(r.deps.JobHandler.Apply)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/jobs/") && strings.HasSuffix(path, "/applied"):
		httpmw.RequireRole(user.RoleStudent)(http.HandlerFunc(r.deps.JobHandler.HasApplied)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/jobs/") && strings.HasSuffix(path, "/applications"):
		httpmw.RequireRole(user.RoleRecruiter)(http.HandlerFunc(r.deps.JobHandler.ListApplications)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/recruiters/jobs":
		httpmw.RequireRole(user.RoleRecruiter)(http.HandlerFunc(r.deps.JobHandler.ListByRecruiter)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/applications/"):
		httpmw.RequireRole(user.RoleRecruiter)(http.HandlerFunc(r.deps.JobHandler.UpdateApplication)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/assignments":
		httpmw.RequireRole(user.RoleStudent)(http.HandlerFunc(r.deps.AssignmentHandler.List)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/assignments/") && strings.HasSuffix(path, "/start"):
		httpmw.RequireRole(user.RoleStudent)(http.HandlerFunc(r.deps.AssignmentHandler.Start)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/assignments/") && strings.HasSuffix(path, "/submit"):
		httpmw.RequireRole(user.RoleStudent)(http.HandlerFunc(r.deps.AssignmentHandler.Submit)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/assignments/") && strings.HasSuffix(path, "/review"):
		httpmw.RequireRole(user.RoleRecruiter)(http.HandlerFunc(r.deps.AssignmentHandler.Review)).ServeHTTP(w, req)
		return
	}

	http.NotFound(w, req)
}
