package service

import (
	"context"
	"testing"

	"socialelections/config"
	cErr "socialelections/internal/pkg/error"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSetManager(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)
	unitID := env.unit(t, "TU-30")
	a := env.employee(t, unitID, "an")

	resp, err := env.leadership.SetManager(ctx, unitID, a)
	require.NoError(t, err)
	require.Equal(t, a.Hex(), resp.Manager)

	again, err := env.leadership.SetManager(ctx, unitID, a)
	require.NoError(t, err)
	require.Equal(t, resp.Manager, again.Manager)

	unit, err := env.store.TechnicalUnits().FindByID(ctx, unitID)
	require.NoError(t, err)
	require.NotNil(t, unit.ManagerEmployeeID)
	require.Equal(t, a, *unit.ManagerEmployeeID)
}

func TestSetManagerUnknownUnit(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	_, err := env.leadership.SetManager(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
	require.True(t, cErr.HasCode(err, cErr.TECHNICAL_UNIT_NOT_FOUND))
}

func TestSetManagerUnitCheckIsOptional(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	lenient := newTestEnv(t)
	unitID := lenient.unit(t, "TU-31")
	foreign := lenient.employee(t, lenient.unit(t, "TU-32"), "bart")
	_, err := lenient.leadership.SetManager(ctx, unitID, foreign)
	require.NoError(t, err)

	strict := newTestEnv(t, func(conf *config.Configuration) { conf.WorksCouncil.EnforceManagerUnit = true })
	unitID = strict.unit(t, "TU-31")
	foreign = strict.employee(t, strict.unit(t, "TU-32"), "bart")
	_, err = strict.leadership.SetManager(ctx, unitID, foreign)
	require.True(t, cErr.HasCode(err, cErr.CROSS_UNIT_MISMATCH))
	_, err = strict.leadership.SetManager(ctx, unitID, primitive.NewObjectID())
	require.True(t, cErr.HasCode(err, cErr.EMPLOYEE_NOT_FOUND))
}

func TestClearManager(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)
	unitID := env.unit(t, "TU-33")
	a := env.employee(t, unitID, "an")

	_, err := env.leadership.SetManager(ctx, unitID, a)
	require.NoError(t, err)
	require.NoError(t, env.leadership.ClearManager(ctx, unitID))
	require.NoError(t, env.leadership.ClearManager(ctx, unitID))

	unit, err := env.store.TechnicalUnits().FindByID(ctx, unitID)
	require.NoError(t, err)
	require.Nil(t, unit.ManagerEmployeeID)

	require.NoError(t, env.leadership.ClearManager(ctx, primitive.NewObjectID()))
}
