package service

import (
	"context"
	"socialelections/internal/core"
	"socialelections/internal/database/mongodb/model"
	"socialelections/internal/database/store"
	"socialelections/internal/dto"
	"socialelections/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type membershipFlags map[core.ORCategory]dto.OrMembershipFlagDto

// ProjectionService 產生 employee + orMembership 的衍生視圖，永遠由 ledger 重新計算
type ProjectionService struct {
	trace *telemetry.Trace
	store store.Store
}

func NewProjectionService(trace *telemetry.Trace, store store.Store) *ProjectionService {
	return &ProjectionService{trace: trace, store: store}
}

// Project 以單一次 ListByUnit 讀取 unit 的所有 membership，確保同一份快照
func (s *ProjectionService) Project(ctx context.Context, technicalUnitID primitive.ObjectID, employees []*model.Employee) ([]*dto.EmployeeResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	rows, err := s.store.Memberships().ListByUnit(ctx, technicalUnitID, nil)
	if err != nil {
		return nil, err
	}
	return buildProjection(employees, rows), nil
}

// ProjectOne 給 directory 查單一 employee，用 employee 自己的 unit
func (s *ProjectionService) ProjectOne(ctx context.Context, employee *model.Employee) (*dto.EmployeeResponseDto, error) {
	out, err := s.Project(ctx, employee.TechnicalUnitID, []*model.Employee{employee})
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

// ProjectMany 給跨 unit 的搜尋結果用，每個 unit 讀一次 membership
func (s *ProjectionService) ProjectMany(ctx context.Context, employees []*model.Employee) ([]*dto.EmployeeResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	// key: technicalUnitId，只採用 employee 目前所在 unit 的 membership
	byUnit := make(map[primitive.ObjectID]map[primitive.ObjectID]membershipFlags)
	for _, employee := range employees {
		if _, ok := byUnit[employee.TechnicalUnitID]; ok {
			continue
		}
		rows, err := s.store.Memberships().ListByUnit(ctx, employee.TechnicalUnitID, nil)
		if err != nil {
			return nil, err
		}
		byUnit[employee.TechnicalUnitID] = indexFlags(rows)
	}
	out := make([]*dto.EmployeeResponseDto, 0, len(employees))
	for _, employee := range employees {
		out = append(out, employeeToDto(employee, byUnit[employee.TechnicalUnitID][employee.ID]))
	}
	return out, nil
}

func indexFlags(rows []*model.OrMembership) map[primitive.ObjectID]membershipFlags {
	flags := make(map[primitive.ObjectID]membershipFlags)
	for _, row := range rows {
		f, ok := flags[row.EmployeeID]
		if !ok {
			f = make(membershipFlags)
			flags[row.EmployeeID] = f
		}
		f[row.Category] = dto.OrMembershipFlagDto{Member: true, Order: row.Order}
	}
	return flags
}

// buildProjection 依 employees 的順序輸出；沒有 membership 的 employee orMembership 為空
func buildProjection(employees []*model.Employee, rows []*model.OrMembership) []*dto.EmployeeResponseDto {
	flags := indexFlags(rows)
	out := make([]*dto.EmployeeResponseDto, 0, len(employees))
	for _, employee := range employees {
		out = append(out, employeeToDto(employee, flags[employee.ID]))
	}
	return out
}

func employeeToDto(employee *model.Employee, flags membershipFlags) *dto.EmployeeResponseDto {
	resp := &dto.EmployeeResponseDto{
		ID:              employee.ID.Hex(),
		TechnicalUnitID: employee.TechnicalUnitID.Hex(),
		FirstName:       employee.FirstName,
		LastName:        employee.LastName,
		Email:           employee.Email,
		Phone:           employee.Phone,
		Role:            employee.Role,
		StartDate:       employee.StartDate,
		Status:          employee.Status,
		CreatedAt:       employee.CreatedAt,
		UpdatedAt:       employee.UpdatedAt,
	}
	if len(flags) > 0 {
		resp.OrMembership = make(map[core.ORCategory]dto.OrMembershipFlagDto, len(flags))
		for category, flag := range flags {
			resp.OrMembership[category] = flag
		}
	}
	return resp
}
