package service

import (
	"context"
	"errors"
	"fmt"

	"socialelections/config"
	"socialelections/internal/database/store"
	"socialelections/internal/dto"
	cErr "socialelections/internal/pkg/error"
	"socialelections/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// LeadershipService 維護 technical unit 唯一的 manager 欄位，與 OR 類別無關
type LeadershipService struct {
	trace              *telemetry.Trace
	logger             *zap.Logger
	store              store.Store
	enforceManagerUnit bool
}

func NewLeadershipService(conf *config.Configuration, trace *telemetry.Trace, logger *zap.Logger, store store.Store) *LeadershipService {
	return &LeadershipService{
		trace:              trace,
		logger:             logger,
		store:              store,
		enforceManagerUnit: conf.WorksCouncil.EnforceManagerUnit,
	}
}

// SetManager 需要 unit 存在；預設不檢查 employee 是否屬於該 unit（WORKS_COUNCIL__ENFORCE_MANAGER_UNIT 開啟才檢查）
func (s *LeadershipService) SetManager(ctx context.Context, technicalUnitID, employeeID primitive.ObjectID) (_ *dto.TechnicalUnitResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	unit, err := s.store.TechnicalUnits().FindByID(ctx, technicalUnitID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, cErr.TechnicalUnitNotFound(fmt.Sprintf("technical unit %s not found", technicalUnitID.Hex()))
		}
		return nil, err
	}

	if s.enforceManagerUnit {
		employee, err := s.store.Employees().FindByID(ctx, employeeID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, cErr.EmployeeNotFound(fmt.Sprintf("employee %s not found", employeeID.Hex()))
			}
			return nil, err
		}
		if employee.TechnicalUnitID != technicalUnitID {
			return nil, cErr.CrossUnitMismatch(fmt.Sprintf("employee %s does not belong to technical unit %s", employeeID.Hex(), technicalUnitID.Hex()))
		}
	}

	if unit.ManagerEmployeeID != nil && *unit.ManagerEmployeeID == employeeID {
		return technicalUnitToDto(unit), nil
	}
	if err := s.store.TechnicalUnits().SetManager(ctx, technicalUnitID, &employeeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, cErr.TechnicalUnitNotFound(fmt.Sprintf("technical unit %s not found", technicalUnitID.Hex()))
		}
		return nil, err
	}
	s.logger.Info("technical unit manager set",
		zap.String("technicalUnitId", technicalUnitID.Hex()),
		zap.String("employeeId", employeeID.Hex()),
	)

	managerID := employeeID
	unit.ManagerEmployeeID = &managerID
	return technicalUnitToDto(unit), nil
}

// ClearManager 對不存在的 unit 或空的 manager 都是 no-op
func (s *LeadershipService) ClearManager(ctx context.Context, technicalUnitID primitive.ObjectID) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	unit, err := s.store.TechnicalUnits().FindByID(ctx, technicalUnitID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	if unit.ManagerEmployeeID == nil {
		return nil
	}
	if err := s.store.TechnicalUnits().SetManager(ctx, technicalUnitID, nil); err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	s.logger.Info("technical unit manager cleared", zap.String("technicalUnitId", technicalUnitID.Hex()))
	return nil
}
