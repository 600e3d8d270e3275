package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	eventHTTP "event-calendar-webhook/internal/event/delivery/http"
	"event-calendar-webhook/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.middleware.RequestID())
	if srv.environment != string(model.EnvironmentProduction) {
		srv.gin.Use(gin.Logger())
	}

	srv.l.Infof(context.Background(), "HTTP middlewares registered for %s", srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.statusCheck(StatusHealthy))
	srv.gin.GET("/ready", srv.statusCheck(StatusReady))
	srv.gin.GET("/live", srv.statusCheck(StatusAlive))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase in cmd/api and pass it through Config
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(srv.gin, h, srv.middleware)
func (srv HTTPServer) registerDomainRoutes() error {
	h := eventHTTP.New(srv.l, srv.eventUC)
	eventHTTP.RegisterRoutes(srv.gin, h, srv.middleware)

	srv.l.Infof(context.Background(), "Event webhook registered at GET/POST /webhook")
	return nil
}
