package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"socialelections/internal/core"
	"socialelections/internal/database/mongodb/model"
	"socialelections/internal/database/store"
	"socialelections/internal/dto"
	cErr "socialelections/internal/pkg/error"
	"socialelections/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// EmployeeService 是 employee directory；回傳的 employee 一律帶 ledger 投影出的 orMembership
type EmployeeService struct {
	trace      *telemetry.Trace
	logger     *zap.Logger
	store      store.Store
	ledger     *WorksCouncilService
	projection *ProjectionService
}

func NewEmployeeService(trace *telemetry.Trace, logger *zap.Logger, store store.Store, ledger *WorksCouncilService, projection *ProjectionService) *EmployeeService {
	return &EmployeeService{trace: trace, logger: logger, store: store, ledger: ledger, projection: projection}
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, req *dto.CreateEmployeeDto) (_ *dto.EmployeeResponseDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	technicalUnitID, err := primitive.ObjectIDFromHex(req.TechnicalUnitID)
	if err != nil {
		return nil, cErr.ValidateErr("invalid technicalUnitId")
	}
	if _, err := s.store.TechnicalUnits().FindByID(ctx, technicalUnitID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, cErr.TechnicalUnitNotFound(fmt.Sprintf("technical unit %s not found", req.TechnicalUnitID))
		}
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = string(core.EmployeeStatusActive)
	}

	created, err := s.store.Employees().Create(ctx, &model.Employee{
		TechnicalUnitID: technicalUnitID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Role:            req.Role,
		StartDate:       req.StartDate,
		Status:          status,
	})
	if err != nil {
		return nil, err
	}
	s.trace.ApplyTraceAttributes(span, core.TraceDirectoryMeta{
		Op:              "create_employee",
		EmployeeID:      created.ID.Hex(),
		TechnicalUnitID: req.TechnicalUnitID,
		ResultCount:     1,
	})
	return employeeToDto(created, nil), nil
}

func (s *EmployeeService) GetEmployee(ctx context.Context, id primitive.ObjectID) (_ *dto.EmployeeResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	employee, err := s.findEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.projection.ProjectOne(ctx, employee)
}

func (s *EmployeeService) ListByUnit(ctx context.Context, technicalUnitID primitive.ObjectID) (_ []*dto.EmployeeResponseDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	employees, err := s.store.Employees().ListByUnit(ctx, technicalUnitID)
	if err != nil {
		return nil, err
	}
	s.trace.ApplyTraceAttributes(span, core.TraceDirectoryMeta{
		Op:              "list_employees",
		TechnicalUnitID: technicalUnitID.Hex(),
		ResultCount:     len(employees),
	})
	return s.projection.Project(ctx, technicalUnitID, employees)
}

// Search 不分大小寫比對姓名、email、role、phone；technicalUnitID 為 nil 時跨 unit 搜尋
func (s *EmployeeService) Search(ctx context.Context, technicalUnitID *primitive.ObjectID, query string) (_ []*dto.EmployeeResponseDto, returnedError error) {
	query = strings.TrimSpace(query)
	if query == "" && technicalUnitID != nil {
		return s.ListByUnit(ctx, *technicalUnitID)
	}

	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	employees, err := s.store.Employees().Search(ctx, store.EmployeeFilter{TechnicalUnitID: technicalUnitID, Query: query})
	if err != nil {
		return nil, err
	}
	meta := core.TraceDirectoryMeta{Op: "search_employees", Query: query, ResultCount: len(employees)}
	if technicalUnitID != nil {
		meta.TechnicalUnitID = technicalUnitID.Hex()
	}
	s.trace.ApplyTraceAttributes(span, meta)
	if technicalUnitID != nil {
		return s.projection.Project(ctx, *technicalUnitID, employees)
	}
	return s.projection.ProjectMany(ctx, employees)
}

// UpdateEmployee 改 technicalUnitId 時，舊 unit 的 membership 會在 scope lock 內移除並壓實，
// 舊 unit 的 manager 若是這個 employee 也一併清掉，最後才寫入新的 unit
func (s *EmployeeService) UpdateEmployee(ctx context.Context, id primitive.ObjectID, req *dto.UpdateEmployeeDto) (_ *dto.EmployeeResponseDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	employee, err := s.findEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	next := *employee
	applyEmployeeUpdate(&next, req)
	if req.TechnicalUnitID != nil {
		technicalUnitID, err := primitive.ObjectIDFromHex(strings.TrimSpace(*req.TechnicalUnitID))
		if err != nil {
			return nil, cErr.ValidateErr("invalid technicalUnitId")
		}
		if _, err := s.store.TechnicalUnits().FindByID(ctx, technicalUnitID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, cErr.TechnicalUnitNotFound(fmt.Sprintf("technical unit %s not found", technicalUnitID.Hex()))
			}
			return nil, err
		}
		next.TechnicalUnitID = technicalUnitID
	}

	var updated *model.Employee
	update := func(ctx context.Context) error {
		var err error
		updated, err = s.store.Employees().Update(ctx, &next)
		if errors.Is(err, store.ErrNotFound) {
			return cErr.EmployeeNotFound(fmt.Sprintf("employee %s not found", id.Hex()))
		}
		return err
	}

	moved := next.TechnicalUnitID != employee.TechnicalUnitID
	if moved {
		err = s.ledger.DetachEmployee(ctx, employee, func(ctx context.Context) error {
			if err := s.clearManagerSlot(ctx, employee.TechnicalUnitID, id); err != nil {
				return err
			}
			return update(ctx)
		})
	} else {
		err = update(ctx)
	}
	if err != nil {
		return nil, err
	}

	s.trace.ApplyTraceAttributes(span, core.TraceDirectoryMeta{
		Op:              "update_employee",
		EmployeeID:      id.Hex(),
		TechnicalUnitID: updated.TechnicalUnitID.Hex(),
		ResultCount:     1,
	})
	if moved {
		s.logger.Info("employee moved to another technical unit",
			zap.String("employeeId", id.Hex()),
			zap.String("from", employee.TechnicalUnitID.Hex()),
			zap.String("to", updated.TechnicalUnitID.Hex()),
		)
	}
	return s.projection.ProjectOne(ctx, updated)
}

// DeleteEmployee 在 scope lock 內移除 membership 並壓實、清掉它佔用的 manager 欄位，最後刪除 employee
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id primitive.ObjectID) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	employee, err := s.findEmployee(ctx, id)
	if err != nil {
		return err
	}
	var cleared int64
	err = s.ledger.DetachEmployee(ctx, employee, func(ctx context.Context) error {
		var err error
		if cleared, err = s.store.TechnicalUnits().ClearManagerIf(ctx, id); err != nil {
			return err
		}
		return s.store.Employees().DeleteByID(ctx, id)
	})
	if err != nil {
		return err
	}
	s.logger.Info("employee deleted",
		zap.String("employeeId", id.Hex()),
		zap.String("technicalUnitId", employee.TechnicalUnitID.Hex()),
		zap.Int64("managerSlotsCleared", cleared),
	)
	return nil
}

// clearManagerSlot 只清指定 unit 的 manager，unit 不存在或 manager 是別人時不動
func (s *EmployeeService) clearManagerSlot(ctx context.Context, technicalUnitID, employeeID primitive.ObjectID) error {
	unit, err := s.store.TechnicalUnits().FindByID(ctx, technicalUnitID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	if unit.ManagerEmployeeID == nil || *unit.ManagerEmployeeID != employeeID {
		return nil
	}
	return s.store.TechnicalUnits().SetManager(ctx, technicalUnitID, nil)
}

func (s *EmployeeService) findEmployee(ctx context.Context, id primitive.ObjectID) (*model.Employee, error) {
	employee, err := s.store.Employees().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, cErr.EmployeeNotFound(fmt.Sprintf("employee %s not found", id.Hex()))
		}
		return nil, err
	}
	return employee, nil
}

func applyEmployeeUpdate(employee *model.Employee, req *dto.UpdateEmployeeDto) {
	if req.FirstName != nil {
		employee.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		employee.LastName = *req.LastName
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if req.Role != nil {
		employee.Role = *req.Role
	}
	if req.StartDate != nil {
		startDate := *req.StartDate
		employee.StartDate = &startDate
	}
	if req.Status != nil {
		employee.Status = *req.Status
	}
}
