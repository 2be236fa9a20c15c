package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	plannerHTTP "smart-travel-planner/internal/planner/delivery/http"
)

// setupPlannerDomain registers the planner routes. The use case is built by
// the caller so the CLI and the server share one wiring path.
func (srv HTTPServer) setupPlannerDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := plannerHTTP.New(srv.l, srv.plannerUC)
	plannerHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Planner domain registered")
	return nil
}
