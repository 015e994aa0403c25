package handler

import (
	"fmt"
	"net/http"
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

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	maxImportBytes  = 10 << 20
)

type WorksCouncilHandler struct {
	trace         *telemetry.Trace
	ledger        *service.WorksCouncilService
	rosterService *service.RosterService
}

func NewWorksCouncilHandler(
	trace *telemetry.Trace,
	ledger *service.WorksCouncilService,
	rosterService *service.RosterService,
) *WorksCouncilHandler {
	return &WorksCouncilHandler{trace: trace, ledger: ledger, rosterService: rosterService}
}

// ListMembers 依 order 列出 OR 成員，不帶 category 時回傳所有類別
// @Summary 取得 OR 成員列表
// @Tags WorksCouncil
// @Produce json
// @Param technicalUnitId path string true "Technical unit ID"
// @Param category query string false "arbeiders | bedienden | kaderleden | jeugdige"
// @Success 200 {array} dto.EmployeeResponseDto
// @Failure 400 {object} response.Response
// @Router /api/works-council/{technicalUnitId}/members [get]
func (h *WorksCouncilHandler) ListMembers(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	unitID, cause, respErr := validate.ParseObjectID(c, "technicalUnitId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	category, err := validate.ParseCategoryQuery(c)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}

	members, err := h.ledger.ListMembers(ctx, unitID, category)
	if err != nil {
		abortWithServiceError(c, end, err)
		return
	}
	response.Success(c, members)
}

// AddMember 把員工加到類別的最後一位
// @Summary 新增 OR 成員
// @Tags WorksCouncil
// @Accept json
// @Produce json
// @Param technicalUnitId path string true "Technical unit ID"
// @Param body body dto.MemberDto true "Member"
// @Success 200 {object} dto.EmployeeResponseDto
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /api/works-council/{technicalUnitId}/members [post]
func (h *WorksCouncilHandler) AddMember(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	unitID, employeeID, req, ok := h.bindMember(c, end)
	if !ok {
		return
	}

	employee, err := h.ledger.AddMember(ctx, employeeID, req.Category, unitID)
	if err != nil {
		abortWithServiceError(c, end, err)
		return
	}
	response.Success(c, employee)
}

// RemoveMember 移除成員並重新壓縮 order
// @Summary 移除 OR 成員
// @Tags WorksCouncil
// @Accept json
// @Produce json
// @Param technicalUnitId path string true "Technical unit ID"
// @Param body body dto.MemberDto true "Member"
// @Success 200 {object} dto.EmployeeResponseDto
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/works-council/{technicalUnitId}/members [delete]
func (h *WorksCouncilHandler) RemoveMember(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	unitID, employeeID, req, ok := h.bindMember(c, end)
	if !ok {
		return
	}

	employee, err := h.ledger.RemoveMember(ctx, employeeID, req.Category, unitID)
	if err != nil {
		abortWithServiceError(c, end, err)
		return
	}
	response.Success(c, employee)
}

// BulkAdd
// @Summary 批次新增 OR 成員
// @Tags WorksCouncil
// @Accept json
// @Produce json
// @Param technicalUnitId path string true "Technical unit ID"
// @Param body body dto.BulkMembersDto true "Members"
// @Success 200 {array} dto.EmployeeResponseDto
// @Failure 400 {object} response.Response
// @Router /api/works-council/{technicalUnitId}/members/bulk-add [post]
func (h *WorksCouncilHandler) BulkAdd(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	unitID, ids, req, ok := h.bindBulk(c, end)
	if !ok {
		return
	}

	members, err := h.ledger.BulkAdd(ctx, ids, req.Category, unitID)
	if err != nil {
		abortWithServiceError(c, end, err)
		return
	}
	response.Success(c, members)
}

// BulkRemove
// @Summary 批次移除 OR 成員
// @Tags WorksCouncil
// @Accept json
// @Produce json
// @Param technicalUnitId path string true "Technical unit ID"
// @Param body body dto.BulkMembersDto true "Members"
// @Success 200 {array} dto.EmployeeResponseDto
// @Failure 400 {object} response.Response
// @Router /api/works-council/{technicalUnitId}/members/bulk-remove [post]
func (h *WorksCouncilHandler) BulkRemove(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	unitID, ids, req, ok := h.bindBulk(c, end)
	if !ok {
		return
	}

	members, err := h.ledger.BulkRemove(ctx, ids, req.Category, unitID)
	if err != nil {
		abortWithServiceError(c, end, err)
		return
	}
	response.Success(c, members)
}

// Reorder 依給定順序重新編號，未列出的成員接在後面
// @Summary 調整 OR 成員順序
// @Tags WorksCouncil
// @Accept json
// @Produce json
// @Param technicalUnitId path string true "Technical unit ID"
// @Param body body dto.ReorderDto true "Order"
// @Success 200 {array} dto.EmployeeResponseDto
// @Failure 400 {object} response.Response
// @Router /api/works-council/{technicalUnitId}/reorder [post]
func (h *WorksCouncilHandler) Reorder(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	unitID, cause, respErr := validate.ParseObjectID(c, "technicalUnitId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	var req dto.ReorderDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	ids, skipped := validate.ParseObjectIDs(req.OrderedIDs)
	if len(skipped) > 0 {
		err := cErr.ValidateErr("invalid orderedIds: " + strings.Join(skipped, ","))
		end(err)
		response.AbortWithError(c, err)
		return
	}

	members, err := h.ledger.Reorder(ctx, unitID, req.Category, ids)
	if err != nil {
		abortWithServiceError(c, end, err)
		return
	}
	response.Success(c, members)
}

// Export 下載 unit 的 OR 名冊 (每個類別一個工作表)
// @Summary 匯出 OR 名冊
// @Tags Roster
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param technicalUnitId path string true "Technical unit ID"
// @Success 200 {file} file
// @Failure 404 {object} response.Response
// @Router /api/works-council/{technicalUnitId}/export [get]
func (h *WorksCouncilHandler) Export(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	unitID, cause, respErr := validate.ParseObjectID(c, "technicalUnitId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	buf, filename, err := h.rosterService.Export(ctx, unitID)
	if err != nil {
		abortWithServiceError(c, end, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
	response.Passthrough(c)
}

// Import 上傳 xlsx，依 Email 欄對應員工並批次加入類別欄指定的類別
// @Summary 匯入 OR 名冊
// @Tags Roster
// @Accept multipart/form-data
// @Produce json
// @Param technicalUnitId path string true "Technical unit ID"
// @Param file formData file true "xlsx"
// @Success 200 {object} dto.ImportResultDto
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/works-council/{technicalUnitId}/import [post]
func (h *WorksCouncilHandler) Import(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	unitID, cause, respErr := validate.ParseObjectID(c, "technicalUnitId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		end(err)
		response.AbortWithError(c, cErr.InvalidImportFile("missing multipart field file"))
		return
	}
	if header.Size > maxImportBytes {
		err := cErr.InvalidImportFile(fmt.Sprintf("file larger than %d bytes", maxImportBytes))
		end(err)
		response.AbortWithError(c, err)
		return
	}
	file, err := header.Open()
	if err != nil {
		end(err)
		response.AbortWithError(c, cErr.InvalidImportFile(err.Error()))
		return
	}
	defer file.Close()

	result, err := h.rosterService.Import(ctx, unitID, file)
	if err != nil {
		abortWithServiceError(c, end, err)
		return
	}
	response.Success(c, result)
}

func (h *WorksCouncilHandler) bindMember(c *gin.Context, end func(error)) (unitID, employeeID primitive.ObjectID, req dto.MemberDto, ok bool) {
	unitID, cause, respErr := validate.ParseObjectID(c, "technicalUnitId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
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
	return unitID, employeeID, req, true
}

// bulk 的無效 id 直接略過，跟不屬於 unit 的 id 一樣處理
func (h *WorksCouncilHandler) bindBulk(c *gin.Context, end func(error)) (unitID primitive.ObjectID, ids []primitive.ObjectID, req dto.BulkMembersDto, ok bool) {
	unitID, cause, respErr := validate.ParseObjectID(c, "technicalUnitId")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}
	ids, _ = validate.ParseObjectIDs(req.EmployeeIDs)
	return unitID, ids, req, true
}
