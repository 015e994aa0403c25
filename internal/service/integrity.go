package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"socialelections/internal/core"
	"socialelections/internal/database/mongodb/model"
	"socialelections/internal/database/store"
	"socialelections/internal/dto"
	"socialelections/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	violationDensity   = "density"
	violationDuplicate = "duplicate"
	violationOrphan    = "orphan"
)

const integrityParallelism = 4

// IntegrityService 掃描所有 (unit, category) scope，檢查 order 密度、唯一性與 employee 歸屬
type IntegrityService struct {
	trace  *telemetry.Trace
	metric *telemetry.Metric
	logger *zap.Logger
	store  store.Store
	ledger *WorksCouncilService
}

func NewIntegrityService(trace *telemetry.Trace, metric *telemetry.Metric, logger *zap.Logger, store store.Store, ledger *WorksCouncilService) *IntegrityService {
	return &IntegrityService{trace: trace, metric: metric, logger: logger, store: store, ledger: ledger}
}

// Check repair 為 true 時，有問題的 scope 會經由 ledger 在 scope lock 內修復
func (s *IntegrityService) Check(ctx context.Context, repair bool) (_ *dto.IntegrityReportDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx, string(core.SpanIntegritySweep))
	defer func() { end(returnedError) }()

	scopes, err := s.store.Memberships().ListScopes(ctx)
	if err != nil {
		return nil, err
	}

	var (
		mu         sync.Mutex
		violations = []dto.IntegrityViolationDto{}
		repaired   int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(integrityParallelism)
	for _, scope := range scopes {
		g.Go(func() error {
			found, orphans, err := s.inspectScope(gctx, scope)
			if err != nil {
				return fmt.Errorf("inspect %s: %w", scope.String(), err)
			}
			fixed := 0
			if repair && len(found) > 0 {
				if fixed, err = s.ledger.RepairScope(gctx, scope, orphans); err != nil {
					return fmt.Errorf("repair %s: %w", scope.String(), err)
				}
			}
			mu.Lock()
			violations = append(violations, found...)
			if fixed > 0 {
				repaired++
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(violations, func(i, j int) bool {
		a, b := violations[i], violations[j]
		if a.TechnicalUnitID != b.TechnicalUnitID {
			return a.TechnicalUnitID < b.TechnicalUnitID
		}
		if a.Category != b.Category {
			return a.Category.Rank() < b.Category.Rank()
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.Detail < b.Detail
	})
	for _, v := range violations {
		s.metric.AddIntegrityViolations(v.Kind, 1)
	}

	s.trace.ApplyTraceAttributes(span, core.TraceIntegrityMeta{
		Scopes:     len(scopes),
		Violations: len(violations),
		Repaired:   repaired,
		Repair:     repair,
	})
	logFields := []zap.Field{
		zap.Int("scopes", len(scopes)),
		zap.Int("violations", len(violations)),
		zap.Int("repaired", repaired),
		zap.Bool("repair", repair),
	}
	if len(violations) > 0 {
		s.logger.Warn("or integrity sweep found violations", logFields...)
	} else {
		s.logger.Info("or integrity sweep clean", logFields...)
	}
	return &dto.IntegrityReportDto{Scopes: len(scopes), Violations: violations, Repaired: repaired}, nil
}

func (s *IntegrityService) inspectScope(ctx context.Context, scope store.Scope) ([]dto.IntegrityViolationDto, map[primitive.ObjectID]struct{}, error) {
	rows, err := s.store.Memberships().ListByUnit(ctx, scope.TechnicalUnitID, &scope.Category)
	if err != nil {
		return nil, nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.EmployeeID)
	}
	employees, err := s.store.Employees().FindByIDs(ctx, dedupeIDs(ids))
	if err != nil {
		return nil, nil, err
	}
	violations, orphans := inspectRows(scope, rows, employees)
	return violations, orphans, nil
}

// inspectRows 是純檢查：orphan 指 employee 不存在或屬於其他 unit
func inspectRows(scope store.Scope, rows []*model.OrMembership, employees []*model.Employee) ([]dto.IntegrityViolationDto, map[primitive.ObjectID]struct{}) {
	violation := func(kind, detail string) dto.IntegrityViolationDto {
		return dto.IntegrityViolationDto{
			TechnicalUnitID: scope.TechnicalUnitID.Hex(),
			Category:        scope.Category,
			Kind:            kind,
			Detail:          detail,
		}
	}

	known := make(map[primitive.ObjectID]*model.Employee, len(employees))
	for _, employee := range employees {
		known[employee.ID] = employee
	}

	var violations []dto.IntegrityViolationDto
	orphans := make(map[primitive.ObjectID]struct{})
	seen := make(map[primitive.ObjectID]struct{}, len(rows))
	for _, row := range rows {
		if _, dup := seen[row.EmployeeID]; dup {
			violations = append(violations, violation(violationDuplicate, "employee "+row.EmployeeID.Hex()+" listed twice"))
			continue
		}
		seen[row.EmployeeID] = struct{}{}
		employee, ok := known[row.EmployeeID]
		if !ok || employee.TechnicalUnitID != scope.TechnicalUnitID {
			orphans[row.EmployeeID] = struct{}{}
			violations = append(violations, violation(violationOrphan, "employee "+row.EmployeeID.Hex()+" is not in this unit"))
		}
	}

	ordered := sequence(rows)
	for i, row := range ordered {
		if row.Order != i+1 {
			violations = append(violations, violation(violationDensity, fmt.Sprintf("orders are not 1..%d", len(ordered))))
			break
		}
	}
	return violations, orphans
}
