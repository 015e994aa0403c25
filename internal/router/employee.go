package router

import (
	"socialelections/internal/handler"

	"github.com/gin-gonic/gin"
)

type EmployeeRouter struct {
	employeeHandler *handler.EmployeeHandler
}

func NewEmployeeRouter(employeeHandler *handler.EmployeeHandler) *EmployeeRouter {
	return &EmployeeRouter{employeeHandler: employeeHandler}
}

func (er *EmployeeRouter) RegisterRoutes(r *gin.RouterGroup) {
	g := r.Group("/employees")
	{
		g.GET("", er.employeeHandler.List)
		g.POST("", er.employeeHandler.Create)
		g.GET("/:id", er.employeeHandler.Get)
		g.PUT("/:id", er.employeeHandler.Update)
		g.DELETE("/:id", er.employeeHandler.Delete)
	}
}
