package router

import (
	"socialelections/internal/handler"

	"github.com/gin-gonic/gin"
)

type WorksCouncilRouter struct {
	worksCouncilHandler *handler.WorksCouncilHandler
}

func NewWorksCouncilRouter(worksCouncilHandler *handler.WorksCouncilHandler) *WorksCouncilRouter {
	return &WorksCouncilRouter{worksCouncilHandler: worksCouncilHandler}
}

func (wr *WorksCouncilRouter) RegisterRoutes(r *gin.RouterGroup) {
	g := r.Group("/works-council/:technicalUnitId")
	{
		g.GET("/members", wr.worksCouncilHandler.ListMembers)
		g.POST("/members", wr.worksCouncilHandler.AddMember)
		g.DELETE("/members", wr.worksCouncilHandler.RemoveMember)
		g.POST("/members/bulk-add", wr.worksCouncilHandler.BulkAdd)
		g.POST("/members/bulk-remove", wr.worksCouncilHandler.BulkRemove)
		g.POST("/reorder", wr.worksCouncilHandler.Reorder)

		// xlsx 名冊
		g.GET("/export", wr.worksCouncilHandler.Export)
		g.POST("/import", wr.worksCouncilHandler.Import)
	}
}
