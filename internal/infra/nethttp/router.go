// Package nethttp provides HTTP transport of the service.
package nethttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"github.com/swaggest/openapi-go/openapi3"
	"github.com/swaggest/rest"
	"github.com/swaggest/rest/nethttp"
	"github.com/swaggest/rest/web"
	swgui "github.com/swaggest/swgui/v4emb"
	"github.com/tasktrail/tasktrail/internal/infra/auth"
	"github.com/tasktrail/tasktrail/internal/infra/log"
	"github.com/tasktrail/tasktrail/internal/infra/schema"
	"github.com/tasktrail/tasktrail/internal/infra/service"
	"github.com/tasktrail/tasktrail/internal/usecase"
)

// NewRouter creates HTTP router.
func NewRouter(locator *service.Locator, cfg service.Config) http.Handler {
	s := web.NewService(openapi3.NewReflector())

	schema.SetupOpenAPICollector(s.OpenAPICollector)

	s.Wrap(
		cors.New(cors.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
		}).Handler,
		nethttp.UseCaseMiddlewares(log.UseCaseMiddleware()),
	)

	byID := func(h *nethttp.Handler) {
		h.ReqMapping = rest.RequestMapping{rest.ParamInPath: map[string]string{"ID": "id"}}
	}

	// Public routes.
	s.Post("/registration", usecase.Register(locator), nethttp.SuccessStatus(http.StatusCreated))
	s.Post("/login", usecase.Login(locator))

	// Task routes are scoped to the authenticated caller.
	s.Route("/tasks", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(
				auth.Middleware(locator.UserResolver()),
				nethttp.SecurityMiddleware(s.OpenAPICollector, "TokenAuth", tokenSecurityScheme()),
			)

			r.Method(http.MethodGet, "/", nethttp.NewHandler(usecase.ListTasks(locator)))
			r.Method(http.MethodPost, "/", nethttp.NewHandler(usecase.CreateTask(locator),
				nethttp.SuccessStatus(http.StatusCreated)))
			r.Method(http.MethodGet, "/{id}", nethttp.NewHandler(usecase.FindTask(locator), byID))
			r.Method(http.MethodDelete, "/{id}", nethttp.NewHandler(usecase.DeleteTask(locator), byID,
				nethttp.SuccessStatus(http.StatusNoContent)))
			r.Method(http.MethodPut, "/{id}/update", nethttp.NewHandler(usecase.UpdateTask(locator), byID))
			r.Method(http.MethodGet, "/{id}/history", nethttp.NewHandler(usecase.TaskHistory(locator), byID))
		})
	})

	// Swagger UI endpoint at /docs.
	s.Docs("/docs", swgui.New)

	return s
}

func tokenSecurityScheme() openapi3.SecurityScheme {
	aks := openapi3.APIKeySecurityScheme{}
	aks.
		WithName("Authorization").
		WithIn("header").
		WithDescription(`Token-based authentication, format: "Token <value>".`)

	return openapi3.SecurityScheme{APIKeySecurityScheme: &aks}
}
