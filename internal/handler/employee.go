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

type EmployeeHandler struct {
	trace           *telemetry.Trace
	employeeService *service.EmployeeService
}

func NewEmployeeHandler(trace *telemetry.Trace, employeeService *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{trace: trace, employeeService: employeeService}
}

// List 列出員工；technicalUnitId 與 q 都是選填
// @Summary 查詢員工
// @Tags Employee
// @Produce json
// @Param technicalUnitId query string false "Technical unit ID"
// @Param q query string false "比對姓名、email、role、電話 (不分大小寫)"
// @Success 200 {array} dto.EmployeeResponseDto
// @Failure 400 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /api/employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var unitID *primitive.ObjectID
	if raw := strings.TrimSpace(c.Query("technicalUnitId")); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			end(err)
			response.AbortWithError(c, cErr.BadRequestParams("invalid technicalUnitId"))
			return
		}
		unitID = &id
	}

	employees, err := h.employeeService.Search(ctx, unitID, c.Query("q"))
	if err != nil {
		abortWithServiceError(c, end, err)
		return
	}
	response.Success(c, employees)
}

// Create 新增員工
// @Summary 新增員工
// @Tags Employee
// @Accept json
// @Produce json
// @Param body body dto.CreateEmployeeDto true "員工資料"
// @Success 201 {object} dto.EmployeeResponseDto
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.CreateEmployeeDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	created, err := h.employeeService.CreateEmployee(ctx, &req)
	if err != nil {
		abortWithServiceError(c, end, err)
		return
	}
	response.Create(c, created)
}

// Get 取得單一員工 (含 orMembership 投影)
// @Summary 取得員工
// @Tags Employee
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponseDto
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/employees/{id} [get]
func (h *EmployeeHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "id")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	employee, err := h.employeeService.GetEmployee(ctx, id)
	if err != nil {
		abortWithServiceError(c, end, err)
		return
	}
	response.Success(c, employee)
}

// Update 部分更新員工；換 technical unit 時會先清掉舊 unit 的 membership 與 manager 指派
// @Summary 更新員工
// @Tags Employee
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param body body dto.UpdateEmployeeDto true "要更新的欄位"
// @Success 200 {object} dto.EmployeeResponseDto
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "id")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.UpdateEmployeeDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	updated, err := h.employeeService.UpdateEmployee(ctx, id, &req)
	if err != nil {
		abortWithServiceError(c, end, err)
		return
	}
	response.Success(c, updated)
}

// Delete 刪除員工，同時移除所有 membership 並清掉 manager 指派
// @Summary 刪除員工
// @Tags Employee
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "id")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.employeeService.DeleteEmployee(ctx, id); err != nil {
		abortWithServiceError(c, end, err)
		return
	}
	response.Success(c, gin.H{"id": id.Hex()})
}
