package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"workshop-quotes/internal/domain/staff"
	"workshop-quotes/internal/handler/api"
	"workshop-quotes/internal/handler/middleware"
	"workshop-quotes/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, quoteHandler *api.QuoteHandler, publicHandler *api.PublicQuoteHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, quoteHandler, publicHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, quoteHandler *api.QuoteHandler, publicHandler *api.PublicQuoteHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	office := authMiddleware.RequireAnyRole(staff.RoleAdmin, staff.RoleManager, staff.RoleAttendant)
	mechanics := authMiddleware.RequireAnyRole(staff.RoleMechanic)
	diagnosers := authMiddleware.RequireAnyRole(staff.RoleMechanic, staff.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		quotes := apiGroup.Group("/quotes")
		quotes.Use(authMiddleware.RequireAuth())
		{
			addRoutes(quotes, []route{
				{Method: http.MethodPost, Path: "", Handler: quoteHandler.Create, Mw: []gin.HandlerFunc{office}},
				{Method: http.MethodGet, Path: "", Handler: quoteHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: quoteHandler.Get},
				{Method: http.MethodPut, Path: "/:id/items", Handler: quoteHandler.UpdateItems},
				{Method: http.MethodPost, Path: "/:id/send-for-diagnosis", Handler: quoteHandler.SendForDiagnosis, Mw: []gin.HandlerFunc{office}},
				{Method: http.MethodPut, Path: "/:id/assignee", Handler: quoteHandler.Assign, Mw: []gin.HandlerFunc{office}},
				{Method: http.MethodPost, Path: "/:id/claim", Handler: quoteHandler.Claim, Mw: []gin.HandlerFunc{mechanics}},
				{Method: http.MethodPost, Path: "/:id/diagnosis", Handler: quoteHandler.CompleteDiagnosis, Mw: []gin.HandlerFunc{diagnosers}},
				{Method: http.MethodPost, Path: "/:id/send", Handler: quoteHandler.SendToCustomer, Mw: []gin.HandlerFunc{office}},
				{Method: http.MethodPost, Path: "/:id/regenerate-token", Handler: quoteHandler.RegenerateToken, Mw: []gin.HandlerFunc{office}},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: quoteHandler.Approve, Mw: []gin.HandlerFunc{office}},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: quoteHandler.Reject, Mw: []gin.HandlerFunc{office}},
				{Method: http.MethodPost, Path: "/:id/convert", Handler: quoteHandler.Convert, Mw: []gin.HandlerFunc{office}},
				{Method: http.MethodPost, Path: "/:id/revisions", Handler: quoteHandler.CreateRevision, Mw: []gin.HandlerFunc{office}},
				{Method: http.MethodGet, Path: "/:id/pdf", Handler: quoteHandler.PDF},
			})
		}

		serviceOrders := apiGroup.Group("/service-orders")
		serviceOrders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(serviceOrders, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: quoteHandler.GetServiceOrder},
			})
		}

		public := apiGroup.Group("/public/:tenantId/quotes/:token")
		{
			addRoutes(public, []route{
				{Method: http.MethodGet, Path: "", Handler: publicHandler.View},
				{Method: http.MethodPost, Path: "/approve", Handler: publicHandler.Approve},
				{Method: http.MethodPost, Path: "/reject", Handler: publicHandler.Reject},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
