package router

import (
	"socialelections/internal/handler"

	"github.com/gin-gonic/gin"
)

type TechnicalUnitRouter struct {
	technicalUnitHandler *handler.TechnicalUnitHandler
}

func NewTechnicalUnitRouter(technicalUnitHandler *handler.TechnicalUnitHandler) *TechnicalUnitRouter {
	return &TechnicalUnitRouter{technicalUnitHandler: technicalUnitHandler}
}

func (tr *TechnicalUnitRouter) RegisterRoutes(r *gin.RouterGroup) {
	g := r.Group("/technical-units")
	{
		g.GET("", tr.technicalUnitHandler.List)
		g.POST("", tr.technicalUnitHandler.Create)
		g.GET("/:id", tr.technicalUnitHandler.Get)
		g.PUT("/:id", tr.technicalUnitHandler.Update)
		g.DELETE("/:id", tr.technicalUnitHandler.Delete)

		// leadership
		g.PUT("/:id/manager", tr.technicalUnitHandler.SetManager)
		g.DELETE("/:id/manager", tr.technicalUnitHandler.ClearManager)
	}
}
