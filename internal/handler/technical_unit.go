package handler

import (
	"strings"

	"socialelections/internal/dto"
	cErr "socialelections/internal/pkg/error"
	"socialelections/internal/pkg/response"
	"socialelections/internal/service"
	"socialelections/internal/telemetry"
	"socialelections/utils/validate"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TechnicalUnitHandler struct {
	trace                *telemetry.Trace
	technicalUnitService *service.TechnicalUnitService
	leadershipService    *service.LeadershipService
}

func NewTechnicalUnitHandler(
	trace *telemetry.Trace,
	technicalUnitService *service.TechnicalUnitService,
	leadershipService *service.LeadershipService,
) *TechnicalUnitHandler {
	return &TechnicalUnitHandler{
		trace:                trace,
		technicalUnitService: technicalUnitService,
		leadershipService:    leadershipService,
	}
}

// List 列出 technical units，可用 companyId 與 q 過濾
// @Summary 取得 technical unit 列表
// @Tags TechnicalUnit
// @Produce json
// @Param companyId query string false "Company ID"
// @Param q query string false "比對 name、code、description、department、status、city、street"
// @Success 200 {array} dto.TechnicalUnitResponseDto
// @Failure 400 {object} response.Response
// @Router /api/technical-units [get]
func (h *TechnicalUnitHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var companyID *primitive.ObjectID
	if raw := strings.TrimSpace(c.Query("companyId")); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			end(err)
			response.AbortWithError(c, cErr.BadRequestParams("invalid companyId"))
			return
		}
		companyID = &id
	}

	units, err := h.technicalUnitService.ListTechnicalUnits(ctx, companyID, c.Query("q"))
	if err != nil {
		abortWithServiceError(c, end, err)
		return
	}
	response.Success(c, units)
}

// Create 新增 technical unit
// @Summary 新增 technical unit
// @Tags TechnicalUnit
// @Accept json
// @Produce json
// @Param body body dto.CreateTechnicalUnitDto true "Technical unit"
// @Success 201 {object} dto.TechnicalUnitResponseDto
// @Failure 400 {object} response.Response
// @Router /api/technical-units [post]
func (h *TechnicalUnitHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.CreateTechnicalUnitDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	created, err := h.technicalUnitService.CreateTechnicalUnit(ctx, &req)
	if err != nil {
		abortWithServiceError(c, end, err)
		return
	}
	response.Create(c, created)
}

// Get
// @Summary 取得 technical unit
// @Tags TechnicalUnit
// @Produce json
// @Param id path string true "Technical unit ID"
// @Success 200 {object} dto.TechnicalUnitResponseDto
// @Failure 404 {object} response.Response
// @Router /api/technical-units/{id} [get]
func (h *TechnicalUnitHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "id")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	unit, err := h.technicalUnitService.GetTechnicalUnit(ctx, id)
	if err != nil {
		abortWithServiceError(c, end, err)
		return
	}
	response.Success(c, unit)
}

// Update 部分更新 technical unit，manager 要走 /manager
// @Summary 更新 technical unit
// @Tags TechnicalUnit
// @Accept json
// @Produce json
// @Param id path string true "Technical unit ID"
// @Param body body dto.UpdateTechnicalUnitDto true "要更新的欄位"
// @Success 200 {object} dto.TechnicalUnitResponseDto
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/technical-units/{id} [put]
func (h *TechnicalUnitHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "id")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.UpdateTechnicalUnitDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	unit, err := h.technicalUnitService.UpdateTechnicalUnit(ctx, id, &req)
	if err != nil {
		abortWithServiceError(c, end, err)
		return
	}
	response.Success(c, unit)
}

// Delete 刪除 technical unit 及其 employees / memberships / council
// @Summary 刪除 technical unit
// @Tags TechnicalUnit
// @Produce json
// @Param id path string true "Technical unit ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/technical-units/{id} [delete]
func (h *TechnicalUnitHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "id")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.technicalUnitService.DeleteTechnicalUnit(ctx, id); err != nil {
		abortWithServiceError(c, end, err)
		return
	}
	response.Success(c, gin.H{"id": id.Hex()})
}

// SetManager 指派 unit manager
// @Summary 指派 technical unit manager
// @Tags Leadership
// @Accept json
// @Produce json
// @Param id path string true "Technical unit ID"
// @Param body body dto.SetManagerDto true "Manager"
// @Success 200 {object} dto.TechnicalUnitResponseDto
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/technical-units/{id}/manager [put]
func (h *TechnicalUnitHandler) SetManager(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "id")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.SetManagerDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	employeeID, err := primitive.ObjectIDFromHex(strings.TrimSpace(req.EmployeeID))
	if err != nil {
		end(err)
		response.AbortWithError(c, cErr.ValidateErr("invalid employeeId"))
		return
	}

	unit, err := h.leadershipService.SetManager(ctx, id, employeeID)
	if err != nil {
		abortWithServiceError(c, end, err)
		return
	}
	response.Success(c, unit)
}

// ClearManager 移除 unit manager；unit 不存在時不做任何事
// @Summary 移除 technical unit manager
// @Tags Leadership
// @Produce json
// @Param id path string true "Technical unit ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/technical-units/{id}/manager [delete]
func (h *TechnicalUnitHandler) ClearManager(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "id")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.leadershipService.ClearManager(ctx, id); err != nil {
		abortWithServiceError(c, end, err)
		return
	}
	response.Success(c, gin.H{"id": id.Hex()})
}
