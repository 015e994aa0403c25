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

// TechnicalUnitService 是 technical unit registry
type TechnicalUnitService struct {
	trace  *telemetry.Trace
	logger *zap.Logger
	store  store.Store
	ledger *WorksCouncilService
}

func NewTechnicalUnitService(trace *telemetry.Trace, logger *zap.Logger, store store.Store, ledger *WorksCouncilService) *TechnicalUnitService {
	return &TechnicalUnitService{trace: trace, logger: logger, store: store, ledger: ledger}
}

func (s *TechnicalUnitService) CreateTechnicalUnit(ctx context.Context, req *dto.CreateTechnicalUnitDto) (_ *dto.TechnicalUnitResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	companyID, err := primitive.ObjectIDFromHex(req.CompanyID)
	if err != nil {
		return nil, cErr.ValidateErr("invalid companyId")
	}
	status := req.Status
	if status == "" {
		status = string(core.UnitStatusActive)
	}
	created, err := s.store.TechnicalUnits().Create(ctx, &model.TechnicalUnit{
		CompanyID:         companyID,
		Name:              req.Name,
		Code:              req.Code,
		Description:       req.Description,
		NumberOfEmployees: req.NumberOfEmployees,
		Department:        req.Department,
		Location: model.Address{
			Street:     req.Location.Street,
			Number:     req.Location.Number,
			PostalCode: req.Location.PostalCode,
			City:       req.Location.City,
			Country:    req.Location.Country,
		},
		Status:           status,
		Language:         req.Language,
		PCWorkers:        req.PCWorkers,
		PCClerks:         req.PCClerks,
		FodDossierBase:   req.FodDossierBase,
		FodDossierSuffix: req.FodDossierSuffix,
		ElectionBodies: model.ElectionBodies{
			CPBW:      req.ElectionBodies.CPBW,
			OR:        req.ElectionBodies.OR,
			SDWorkers: req.ElectionBodies.SDWorkers,
			SDClerks:  req.ElectionBodies.SDClerks,
		},
	})
	if err != nil {
		return nil, err
	}
	return technicalUnitToDto(created), nil
}

func (s *TechnicalUnitService) GetTechnicalUnit(ctx context.Context, id primitive.ObjectID) (_ *dto.TechnicalUnitResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	unit, err := s.findUnit(ctx, id)
	if err != nil {
		return nil, err
	}
	return technicalUnitToDto(unit), nil
}

// ListTechnicalUnits 的 query 為空時等同 List
func (s *TechnicalUnitService) ListTechnicalUnits(ctx context.Context, companyID *primitive.ObjectID, query string) (_ []*dto.TechnicalUnitResponseDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	query = strings.TrimSpace(query)
	units, err := s.store.TechnicalUnits().Search(ctx, store.TechnicalUnitFilter{CompanyID: companyID, Query: query})
	if err != nil {
		return nil, err
	}
	if query != "" {
		s.trace.ApplyTraceAttributes(span, core.TraceDirectoryMeta{Op: "search_technical_units", Query: query})
	}
	resp := make([]*dto.TechnicalUnitResponseDto, 0, len(units))
	for _, unit := range units {
		resp = append(resp, technicalUnitToDto(unit))
	}
	return resp, nil
}

// UpdateTechnicalUnit 不會動 manager 與 council
func (s *TechnicalUnitService) UpdateTechnicalUnit(ctx context.Context, id primitive.ObjectID, req *dto.UpdateTechnicalUnitDto) (_ *dto.TechnicalUnitResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	unit, err := s.findUnit(ctx, id)
	if err != nil {
		return nil, err
	}
	applyTechnicalUnitUpdate(unit, req)

	updated, err := s.store.TechnicalUnits().Update(ctx, unit)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, cErr.TechnicalUnitNotFound(fmt.Sprintf("technical unit %s not found", id.Hex()))
		}
		return nil, err
	}
	return technicalUnitToDto(updated), nil
}

// DeleteTechnicalUnit 連同 council、membership 與該 unit 的 employee 一起刪除；整段都持有 unit 的 scope lock
func (s *TechnicalUnitService) DeleteTechnicalUnit(ctx context.Context, id primitive.ObjectID) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if _, err := s.findUnit(ctx, id); err != nil {
		return err
	}
	var employees int64
	memberships, err := s.ledger.PurgeUnit(ctx, id, func(ctx context.Context) error {
		n, err := s.store.Employees().DeleteByUnit(ctx, id)
		if err != nil {
			return err
		}
		employees = n
		return s.store.TechnicalUnits().DeleteByID(ctx, id)
	})
	if err != nil {
		return err
	}
	s.logger.Info("technical unit deleted",
		zap.String("technicalUnitId", id.Hex()),
		zap.Int64("memberships", memberships),
		zap.Int64("employees", employees),
	)
	return nil
}

func applyTechnicalUnitUpdate(unit *model.TechnicalUnit, req *dto.UpdateTechnicalUnitDto) {
	if req == nil {
		return
	}
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setString(&unit.Name, req.Name)
	setString(&unit.Code, req.Code)
	setString(&unit.Description, req.Description)
	setString(&unit.Department, req.Department)
	setString(&unit.Status, req.Status)
	setString(&unit.Language, req.Language)
	setString(&unit.PCWorkers, req.PCWorkers)
	setString(&unit.PCClerks, req.PCClerks)
	setString(&unit.FodDossierBase, req.FodDossierBase)
	setString(&unit.FodDossierSuffix, req.FodDossierSuffix)
	if req.NumberOfEmployees != nil {
		unit.NumberOfEmployees = *req.NumberOfEmployees
	}
	if req.Location != nil {
		unit.Location = model.Address{
			Street:     req.Location.Street,
			Number:     req.Location.Number,
			PostalCode: req.Location.PostalCode,
			City:       req.Location.City,
			Country:    req.Location.Country,
		}
	}
	if req.ElectionBodies != nil {
		unit.ElectionBodies = model.ElectionBodies{
			CPBW:      req.ElectionBodies.CPBW,
			OR:        req.ElectionBodies.OR,
			SDWorkers: req.ElectionBodies.SDWorkers,
			SDClerks:  req.ElectionBodies.SDClerks,
		}
	}
}

func (s *TechnicalUnitService) findUnit(ctx context.Context, id primitive.ObjectID) (*model.TechnicalUnit, error) {
	unit, err := s.store.TechnicalUnits().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, cErr.TechnicalUnitNotFound(fmt.Sprintf("technical unit %s not found", id.Hex()))
		}
		return nil, err
	}
	return unit, nil
}

func technicalUnitToDto(unit *model.TechnicalUnit) *dto.TechnicalUnitResponseDto {
	resp := &dto.TechnicalUnitResponseDto{
		ID:                unit.ID.Hex(),
		CompanyID:         unit.CompanyID.Hex(),
		Name:              unit.Name,
		Code:              unit.Code,
		Description:       unit.Description,
		NumberOfEmployees: unit.NumberOfEmployees,
		Department:        unit.Department,
		Location: dto.AddressDto{
			Street:     unit.Location.Street,
			Number:     unit.Location.Number,
			PostalCode: unit.Location.PostalCode,
			City:       unit.Location.City,
			Country:    unit.Location.Country,
		},
		Status:           unit.Status,
		Language:         unit.Language,
		PCWorkers:        unit.PCWorkers,
		PCClerks:         unit.PCClerks,
		FodDossierBase:   unit.FodDossierBase,
		FodDossierSuffix: unit.FodDossierSuffix,
		ElectionBodies: dto.ElectionBodiesDto{
			CPBW:      unit.ElectionBodies.CPBW,
			OR:        unit.ElectionBodies.OR,
			SDWorkers: unit.ElectionBodies.SDWorkers,
			SDClerks:  unit.ElectionBodies.SDClerks,
		},
		CreatedAt: unit.CreatedAt,
		UpdatedAt: unit.UpdatedAt,
	}
	if unit.ManagerEmployeeID != nil {
		resp.Manager = unit.ManagerEmployeeID.Hex()
	}
	return resp
}
