package service

import (
	"context"
	"sync"
	"testing"

	"socialelections/config"
	"socialelections/internal/core"
	fluentdRepo "socialelections/internal/database/fluentd/repository"
	"socialelections/internal/database/memory"
	"socialelections/internal/database/mongodb/model"
	"socialelections/internal/dto"
	"socialelections/internal/telemetry"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type auditRecorder struct {
	mu   sync.Mutex
	tags []string
}

func (r *auditRecorder) Post(ctx context.Context, tag string, message any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tags = append(r.tags, tag)
	return nil
}

func (r *auditRecorder) Close() error { return nil }

func (r *auditRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tags)
}

type testEnv struct {
	store      *memory.Store
	audit      *auditRecorder
	ledger     *WorksCouncilService
	leadership *LeadershipService
	employees  *EmployeeService
	units      *TechnicalUnitService
	integrity  *IntegrityService
	roster     *RosterService
}

func newTestEnv(t *testing.T, configure ...func(conf *config.Configuration)) *testEnv {
	t.Helper()

	conf := &config.Configuration{}
	conf.App.Name = "socialelections"
	conf.WorksCouncil.Storage = config.StorageMemory
	conf.WorksCouncil.Locker = config.LockerMemory
	conf.WorksCouncil.LockWait = 2000
	for _, fn := range configure {
		fn(conf)
	}

	trace := &telemetry.Trace{}
	metric := &telemetry.Metric{}
	logger := zap.NewNop()
	memStore := memory.NewStore()
	audit := &auditRecorder{}
	logRepo := fluentdRepo.NewLogRepository(conf, audit)

	projection := NewProjectionService(trace, memStore)
	ledger := NewWorksCouncilService(conf, trace, metric, logger, memStore, memory.NewLocker(), logRepo, projection)
	return &testEnv{
		store:      memStore,
		audit:      audit,
		ledger:     ledger,
		leadership: NewLeadershipService(conf, trace, logger, memStore),
		employees:  NewEmployeeService(trace, logger, memStore, ledger, projection),
		units:      NewTechnicalUnitService(trace, logger, memStore, ledger),
		integrity:  NewIntegrityService(trace, metric, logger, memStore, ledger),
		roster:     NewRosterService(trace, logger, memStore, ledger),
	}
}

func (e *testEnv) unit(t *testing.T, code string) primitive.ObjectID {
	t.Helper()
	unit, err := e.store.TechnicalUnits().Create(context.Background(), &model.TechnicalUnit{
		CompanyID: primitive.NewObjectID(),
		Name:      "Unit " + code,
		Code:      code,
		Status:    string(core.UnitStatusActive),
		Language:  string(core.UnitLanguageDutch),
	})
	require.NoError(t, err)
	return unit.ID
}

func (e *testEnv) employee(t *testing.T, unitID primitive.ObjectID, firstName string) primitive.ObjectID {
	t.Helper()
	employee, err := e.store.Employees().Create(context.Background(), &model.Employee{
		TechnicalUnitID: unitID,
		FirstName:       firstName,
		LastName:        "Peeters",
		Email:           firstName + "@example.be",
		Status:          string(core.EmployeeStatusActive),
	})
	require.NoError(t, err)
	return employee.ID
}

// orders 回傳 scope 內 employee → order
func (e *testEnv) orders(t *testing.T, unitID primitive.ObjectID, category core.ORCategory) map[primitive.ObjectID]int {
	t.Helper()
	rows, err := e.store.Memberships().ListByUnit(context.Background(), unitID, &category)
	require.NoError(t, err)
	out := make(map[primitive.ObjectID]int, len(rows))
	for _, row := range rows {
		out[row.EmployeeID] = row.Order
	}
	return out
}

func requireDense(t *testing.T, orders map[primitive.ObjectID]int) {
	t.Helper()
	seen := make(map[int]bool, len(orders))
	for _, order := range orders {
		require.GreaterOrEqual(t, order, 1)
		require.LessOrEqual(t, order, len(orders))
		require.False(t, seen[order], "order %d assigned twice", order)
		seen[order] = true
	}
}

func idsOfDtos(t *testing.T, list []*dto.EmployeeResponseDto) []primitive.ObjectID {
	t.Helper()
	out := make([]primitive.ObjectID, 0, len(list))
	for _, item := range list {
		id, err := primitive.ObjectIDFromHex(item.ID)
		require.NoError(t, err)
		out = append(out, id)
	}
	return out
}
