package service

import (
	"context"
	"testing"

	"socialelections/internal/core"
	"socialelections/internal/database/mongodb/model"
	"socialelections/internal/database/store"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (e *testEnv) rawInsert(t *testing.T, unitID, employeeID primitive.ObjectID, category core.ORCategory, order int) {
	t.Helper()
	err := e.store.Memberships().ApplyChange(context.Background(), store.ScopeChange{
		Scope: store.Scope{TechnicalUnitID: unitID, Category: category},
		Inserts: []*model.OrMembership{{
			ID:              primitive.NewObjectID(),
			TechnicalUnitID: unitID,
			EmployeeID:      employeeID,
			Category:        category,
			Order:           order,
		}},
	})
	require.NoError(t, err)
}

func TestIntegrityCheckCleanLedger(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)
	unitID := env.unit(t, "TU-50")
	a := env.employee(t, unitID, "an")
	b := env.employee(t, unitID, "bart")
	_, err := env.ledger.BulkAdd(ctx, []primitive.ObjectID{a, b}, core.ORCategoryArbeiders, unitID)
	require.NoError(t, err)
	_, err = env.ledger.AddMember(ctx, b, core.ORCategoryJeugdige, unitID)
	require.NoError(t, err)

	report, err := env.integrity.Check(ctx, false)
	require.NoError(t, err)
	require.Equal(t, 2, report.Scopes)
	require.Empty(t, report.Violations)
	require.Zero(t, report.Repaired)
}

func TestIntegrityCheckFindsAndRepairs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)
	unitID := env.unit(t, "TU-51")
	otherUnitID := env.unit(t, "TU-52")
	a := env.employee(t, unitID, "an")
	b := env.employee(t, unitID, "bart")
	foreign := env.employee(t, otherUnitID, "chris")
	cat := core.ORCategoryBedienden

	env.rawInsert(t, unitID, a, cat, 2)
	env.rawInsert(t, unitID, b, cat, 7)
	env.rawInsert(t, unitID, foreign, cat, 3)
	env.rawInsert(t, unitID, primitive.NewObjectID(), core.ORCategoryKaderleden, 1)

	report, err := env.integrity.Check(ctx, false)
	require.NoError(t, err)
	require.Equal(t, 2, report.Scopes)
	kinds := map[string]int{}
	for _, v := range report.Violations {
		require.Equal(t, unitID.Hex(), v.TechnicalUnitID)
		kinds[v.Kind]++
	}
	require.Equal(t, map[string]int{violationDensity: 1, violationOrphan: 2}, kinds)
	require.Len(t, env.orders(t, unitID, cat), 3)

	report, err = env.integrity.Check(ctx, true)
	require.NoError(t, err)
	require.Equal(t, 2, report.Repaired)
	require.Equal(t, map[primitive.ObjectID]int{a: 1, b: 2}, env.orders(t, unitID, cat))
	require.Empty(t, env.orders(t, unitID, core.ORCategoryKaderleden))

	report, err = env.integrity.Check(ctx, false)
	require.NoError(t, err)
	require.Empty(t, report.Violations)
	require.Equal(t, 1, report.Scopes)
}

func TestInspectRowsDuplicate(t *testing.T) {
	t.Parallel()
	scope := store.Scope{TechnicalUnitID: primitive.NewObjectID(), Category: core.ORCategoryArbeiders}
	employee := &model.Employee{ID: primitive.NewObjectID(), TechnicalUnitID: scope.TechnicalUnitID}
	rows := []*model.OrMembership{
		{ID: primitive.NewObjectID(), EmployeeID: employee.ID, Category: scope.Category, Order: 1},
		{ID: primitive.NewObjectID(), EmployeeID: employee.ID, Category: scope.Category, Order: 2},
	}

	violations, orphans := inspectRows(scope, rows, []*model.Employee{employee})
	require.Empty(t, orphans)
	require.Len(t, violations, 1)
	require.Equal(t, violationDuplicate, violations[0].Kind)

	change := planRepair(scope, rows, orphans, rows[0].CreatedAt)
	require.Equal(t, []primitive.ObjectID{rows[1].ID}, change.Deletes)
	require.Empty(t, change.Orders)
}
