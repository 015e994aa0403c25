package service

import (
	"context"
	"testing"

	"socialelections/internal/core"
	"socialelections/internal/database/store"
	"socialelections/internal/dto"
	cErr "socialelections/internal/pkg/error"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateEmployeeRequiresUnit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.employees.CreateEmployee(ctx, &dto.CreateEmployeeDto{
		TechnicalUnitID: primitive.NewObjectID().Hex(),
		FirstName:       "An",
		LastName:        "Peeters",
		Email:           "an@example.be",
	})
	require.True(t, cErr.HasCode(err, cErr.TECHNICAL_UNIT_NOT_FOUND))

	_, err = env.employees.CreateEmployee(ctx, &dto.CreateEmployeeDto{TechnicalUnitID: "nope"})
	require.True(t, cErr.HasCode(err, cErr.BAD_REQUEST_BODY))

	unitID := env.unit(t, "TU-40")
	created, err := env.employees.CreateEmployee(ctx, &dto.CreateEmployeeDto{
		TechnicalUnitID: unitID.Hex(),
		FirstName:       "An",
		LastName:        "Peeters",
		Email:           "an@example.be",
	})
	require.NoError(t, err)
	require.Equal(t, string(core.EmployeeStatusActive), created.Status)
	require.Empty(t, created.OrMembership)
}

func TestGetEmployeeCarriesProjection(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)
	unitID := env.unit(t, "TU-41")
	a := env.employee(t, unitID, "an")
	b := env.employee(t, unitID, "bart")

	_, err := env.ledger.BulkAdd(ctx, []primitive.ObjectID{b, a}, core.ORCategoryBedienden, unitID)
	require.NoError(t, err)

	resp, err := env.employees.GetEmployee(ctx, a)
	require.NoError(t, err)
	require.Equal(t, 2, resp.OrMembership[core.ORCategoryBedienden].Order)

	list, err := env.employees.ListByUnit(ctx, unitID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	_, err = env.employees.GetEmployee(ctx, primitive.NewObjectID())
	require.True(t, cErr.HasCode(err, cErr.EMPLOYEE_NOT_FOUND))
}

func TestDeleteEmployeeCascades(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)
	unitID := env.unit(t, "TU-42")
	a := env.employee(t, unitID, "an")
	b := env.employee(t, unitID, "bart")
	c := env.employee(t, unitID, "chris")

	_, err := env.ledger.BulkAdd(ctx, []primitive.ObjectID{a, b, c}, core.ORCategoryArbeiders, unitID)
	require.NoError(t, err)
	_, err = env.leadership.SetManager(ctx, unitID, a)
	require.NoError(t, err)

	require.NoError(t, env.employees.DeleteEmployee(ctx, a))

	require.Equal(t, map[primitive.ObjectID]int{b: 1, c: 2}, env.orders(t, unitID, core.ORCategoryArbeiders))
	unit, err := env.store.TechnicalUnits().FindByID(ctx, unitID)
	require.NoError(t, err)
	require.Nil(t, unit.ManagerEmployeeID)
	_, err = env.store.Employees().FindByID(ctx, a)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteTechnicalUnitCascades(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)
	unitID := env.unit(t, "TU-43")
	keepID := env.unit(t, "TU-44")
	a := env.employee(t, unitID, "an")
	k := env.employee(t, keepID, "kris")

	_, err := env.ledger.AddMember(ctx, a, core.ORCategoryArbeiders, unitID)
	require.NoError(t, err)
	_, err = env.ledger.AddMember(ctx, k, core.ORCategoryArbeiders, keepID)
	require.NoError(t, err)

	require.NoError(t, env.units.DeleteTechnicalUnit(ctx, unitID))

	_, err = env.units.GetTechnicalUnit(ctx, unitID)
	require.True(t, cErr.HasCode(err, cErr.TECHNICAL_UNIT_NOT_FOUND))
	_, err = env.store.Employees().FindByID(ctx, a)
	require.ErrorIs(t, err, store.ErrNotFound)
	members, err := env.ledger.ListMembers(ctx, unitID, nil)
	require.NoError(t, err)
	require.Empty(t, members)

	kept, err := env.ledger.ListMembers(ctx, keepID, nil)
	require.NoError(t, err)
	require.Len(t, kept, 1)

	err = env.units.DeleteTechnicalUnit(ctx, unitID)
	require.True(t, cErr.HasCode(err, cErr.TECHNICAL_UNIT_NOT_FOUND))
}

func TestListTechnicalUnitsByCompany(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)
	companyID := primitive.NewObjectID()

	for _, code := range []string{"B", "A"} {
		_, err := env.units.CreateTechnicalUnit(ctx, &dto.CreateTechnicalUnitDto{
			CompanyID: companyID.Hex(),
			Name:      "Unit " + code,
			Code:      code,
			Language:  string(core.UnitLanguageBilingual),
		})
		require.NoError(t, err)
	}
	env.unit(t, "C")

	units, err := env.units.ListTechnicalUnits(ctx, &companyID, "")
	require.NoError(t, err)
	require.Len(t, units, 2)
	require.Equal(t, "A", units[0].Code)
	require.Equal(t, string(core.UnitStatusActive), units[0].Status)
	require.Empty(t, units[0].Manager)

	all, err := env.units.ListTechnicalUnits(ctx, nil, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestUpdateEmployeeMoveCascades(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)
	oldUnit := env.unit(t, "TU-45")
	newUnit := env.unit(t, "TU-46")
	a := env.employee(t, oldUnit, "an")
	b := env.employee(t, oldUnit, "bart")
	c := env.employee(t, oldUnit, "chris")
	n := env.employee(t, newUnit, "nele")

	_, err := env.ledger.BulkAdd(ctx, []primitive.ObjectID{a, b, c}, core.ORCategoryArbeiders, oldUnit)
	require.NoError(t, err)
	_, err = env.ledger.AddMember(ctx, a, core.ORCategoryKaderleden, oldUnit)
	require.NoError(t, err)
	_, err = env.ledger.AddMember(ctx, n, core.ORCategoryArbeiders, newUnit)
	require.NoError(t, err)
	_, err = env.leadership.SetManager(ctx, oldUnit, a)
	require.NoError(t, err)

	target := newUnit.Hex()
	role := "Ploegbaas"
	resp, err := env.employees.UpdateEmployee(ctx, a, &dto.UpdateEmployeeDto{TechnicalUnitID: &target, Role: &role})
	require.NoError(t, err)
	require.Equal(t, target, resp.TechnicalUnitID)
	require.Equal(t, role, resp.Role)
	require.Empty(t, resp.OrMembership)

	require.Equal(t, map[primitive.ObjectID]int{b: 1, c: 2}, env.orders(t, oldUnit, core.ORCategoryArbeiders))
	require.Empty(t, env.orders(t, oldUnit, core.ORCategoryKaderleden))
	unit, err := env.store.TechnicalUnits().FindByID(ctx, oldUnit)
	require.NoError(t, err)
	require.Nil(t, unit.ManagerEmployeeID)

	_, err = env.ledger.AddMember(ctx, a, core.ORCategoryArbeiders, newUnit)
	require.NoError(t, err)
	require.Equal(t, map[primitive.ObjectID]int{n: 1, a: 2}, env.orders(t, newUnit, core.ORCategoryArbeiders))

	_, err = env.ledger.AddMember(ctx, a, core.ORCategoryArbeiders, oldUnit)
	require.True(t, cErr.HasCode(err, cErr.CROSS_UNIT_MISMATCH))
}

func TestUpdateEmployeeSameUnitKeepsMemberships(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)
	unitID := env.unit(t, "TU-47")
	a := env.employee(t, unitID, "an")

	_, err := env.ledger.AddMember(ctx, a, core.ORCategoryBedienden, unitID)
	require.NoError(t, err)

	same := unitID.Hex()
	email := "an.peeters@example.be"
	resp, err := env.employees.UpdateEmployee(ctx, a, &dto.UpdateEmployeeDto{TechnicalUnitID: &same, Email: &email})
	require.NoError(t, err)
	require.Equal(t, email, resp.Email)
	require.Equal(t, 1, resp.OrMembership[core.ORCategoryBedienden].Order)

	missing := primitive.NewObjectID().Hex()
	_, err = env.employees.UpdateEmployee(ctx, a, &dto.UpdateEmployeeDto{TechnicalUnitID: &missing})
	require.True(t, cErr.HasCode(err, cErr.TECHNICAL_UNIT_NOT_FOUND))

	_, err = env.employees.UpdateEmployee(ctx, primitive.NewObjectID(), &dto.UpdateEmployeeDto{Email: &email})
	require.True(t, cErr.HasCode(err, cErr.EMPLOYEE_NOT_FOUND))
	require.Equal(t, map[primitive.ObjectID]int{a: 1}, env.orders(t, unitID, core.ORCategoryBedienden))
}

func TestSearchEmployees(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)
	unitA := env.unit(t, "TU-48")
	unitB := env.unit(t, "TU-49")
	a := env.employee(t, unitA, "annelies")
	env.employee(t, unitA, "bart")
	x := env.employee(t, unitB, "anke")

	_, err := env.ledger.AddMember(ctx, a, core.ORCategoryBedienden, unitA)
	require.NoError(t, err)
	_, err = env.ledger.AddMember(ctx, x, core.ORCategoryArbeiders, unitB)
	require.NoError(t, err)

	all, err := env.employees.Search(ctx, nil, "AN")
	require.NoError(t, err)
	require.Len(t, all, 2)
	byID := map[string]int{}
	for _, e := range all {
		for _, flag := range e.OrMembership {
			byID[e.ID] = flag.Order
		}
	}
	require.Equal(t, map[string]int{a.Hex(): 1, x.Hex(): 1}, byID)

	scoped, err := env.employees.Search(ctx, &unitA, "peeters")
	require.NoError(t, err)
	require.Len(t, scoped, 2)

	listed, err := env.employees.Search(ctx, &unitB, "  ")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, x.Hex(), listed[0].ID)

	none, err := env.employees.Search(ctx, nil, "zzz")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestUpdateTechnicalUnitKeepsManager(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)
	unitID := env.unit(t, "TU-50")
	a := env.employee(t, unitID, "an")
	_, err := env.leadership.SetManager(ctx, unitID, a)
	require.NoError(t, err)

	name := "Brugge"
	headcount := 42
	resp, err := env.units.UpdateTechnicalUnit(ctx, unitID, &dto.UpdateTechnicalUnitDto{
		Name:              &name,
		NumberOfEmployees: &headcount,
		Location:          &dto.AddressDto{City: "Brugge", Country: "BE"},
	})
	require.NoError(t, err)
	require.Equal(t, name, resp.Name)
	require.Equal(t, headcount, resp.NumberOfEmployees)
	require.Equal(t, "TU-50", resp.Code)
	require.Equal(t, a.Hex(), resp.Manager)

	found, err := env.units.ListTechnicalUnits(ctx, nil, "brug")
	require.NoError(t, err)
	require.Len(t, found, 1)

	_, err = env.units.UpdateTechnicalUnit(ctx, primitive.NewObjectID(), &dto.UpdateTechnicalUnitDto{Name: &name})
	require.True(t, cErr.HasCode(err, cErr.TECHNICAL_UNIT_NOT_FOUND))
}
