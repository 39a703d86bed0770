package router

import (
	"folio/internal/handlers/article"
	"folio/internal/handlers/auth"
	"folio/internal/handlers/contact"
	"folio/internal/handlers/editor"
	"folio/internal/handlers/portfolio"
	"folio/internal/handlers/upload"
	"folio/internal/handlers/web"
	"folio/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

const (
	dashboardPath = "/admin/dashboard"
)

type DomainHandlers struct {
	Auth      auth.Handler
	Portfolio portfolio.Handler
	Article   article.Handler
	Upload    upload.Handler
	Editor    editor.Handler
	Contact   contact.Handler
	Web       web.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
}

// SetupRoutes mounts the public API, the admin API behind the session gate,
// and the app pages. Unmatched paths fall through to the app shell.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Portfolio.Router(routerGroup)
		r.DomainHandlers.Article.Router(routerGroup)
		r.DomainHandlers.Contact.Router(routerGroup)

		routerGroup.Route("/admin", func(adminGroup chi.Router) {
			adminGroup.Use(r.AuthRole.Auth, r.AuthRole.RBAC)

			r.DomainHandlers.Auth.AdminRouter(adminGroup)
			r.DomainHandlers.Portfolio.AdminRouter(adminGroup)
			r.DomainHandlers.Article.AdminRouter(adminGroup)
			r.DomainHandlers.Upload.AdminRouter(adminGroup)
			r.DomainHandlers.Editor.AdminRouter(adminGroup)
			r.DomainHandlers.Contact.AdminRouter(adminGroup)
		})
	})

	router.Group(func(pageGroup chi.Router) {
		pageGroup.Use(r.AuthRole.RequirePage, r.AuthRole.RBAC)

		pageGroup.Get(dashboardPath, r.DomainHandlers.Web.ServeApp)
		pageGroup.Get(dashboardPath+"/*", r.DomainHandlers.Web.ServeApp)
	})

	r.DomainHandlers.Web.Router(router)
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
	}
}
