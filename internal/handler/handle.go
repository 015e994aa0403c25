package handler

import (
	"errors"

	cErr "socialelections/internal/pkg/error"
	"socialelections/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
)

// ProviderSet Provider对象集合
var ProviderSet = wire.NewSet(
	NewHealthHandler,
	NewEmployeeHandler,
	NewTechnicalUnitHandler,
	NewWorksCouncilHandler,
)

// abortWithServiceError 業務錯誤原樣回傳，其餘一律視為 DB 錯誤
func abortWithServiceError(c *gin.Context, end func(error), err error) {
	end(err)
	var appErr *cErr.Error
	if errors.As(err, &appErr) {
		response.AbortWithError(c, appErr)
		return
	}
	response.AbortWithError(c, cErr.DatabaseError(err.Error()))
}
