package memory

import (
	"context"
	"socialelections/internal/core"
	"socialelections/internal/database/mongodb/model"
	"socialelections/internal/database/store"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newMembership(unitID, employeeID primitive.ObjectID, category core.ORCategory, order int) *model.OrMembership {
	return &model.OrMembership{
		ID:              primitive.NewObjectID(),
		TechnicalUnitID: unitID,
		EmployeeID:      employeeID,
		Category:        category,
		Order:           order,
	}
}

func TestApplyChangeRejectsDuplicateWithoutPartialWrite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()
	unitID := primitive.NewObjectID()
	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	scope := store.Scope{TechnicalUnitID: unitID, Category: core.ORCategoryArbeiders}

	require.NoError(t, s.Memberships().ApplyChange(ctx, store.ScopeChange{
		Scope:   scope,
		Inserts: []*model.OrMembership{newMembership(unitID, a, core.ORCategoryArbeiders, 1)},
	}))

	err := s.Memberships().ApplyChange(ctx, store.ScopeChange{
		Scope: scope,
		Inserts: []*model.OrMembership{
			newMembership(unitID, b, core.ORCategoryArbeiders, 2),
			newMembership(unitID, a, core.ORCategoryArbeiders, 3),
		},
	})
	require.ErrorIs(t, err, store.ErrDuplicateMembership)

	rows, err := s.Memberships().ListByUnit(ctx, unitID, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, a, rows[0].EmployeeID)
}

func TestApplyChangeDeleteThenReinsertSameKey(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()
	unitID := primitive.NewObjectID()
	a := primitive.NewObjectID()
	first := newMembership(unitID, a, core.ORCategoryBedienden, 1)
	scope := store.Scope{TechnicalUnitID: unitID, Category: core.ORCategoryBedienden}

	require.NoError(t, s.Memberships().ApplyChange(ctx, store.ScopeChange{Scope: scope, Inserts: []*model.OrMembership{first}}))
	require.NoError(t, s.Memberships().ApplyChange(ctx, store.ScopeChange{
		Scope:   scope,
		Deletes: []primitive.ObjectID{first.ID},
		Inserts: []*model.OrMembership{newMembership(unitID, a, core.ORCategoryBedienden, 1)},
	}))

	rows, err := s.Memberships().ListByEmployee(ctx, a)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotEqual(t, first.ID, rows[0].ID)
}

func TestApplyChangeUnknownOrderTarget(t *testing.T) {
	t.Parallel()
	s := NewStore()
	err := s.Memberships().ApplyChange(context.Background(), store.ScopeChange{
		Orders: []store.OrderUpdate{{MembershipID: primitive.NewObjectID(), Order: 1}},
	})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestListByUnitSortsByCategoryThenOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()
	unitID := primitive.NewObjectID()
	a, b := primitive.NewObjectID(), primitive.NewObjectID()

	require.NoError(t, s.Memberships().ApplyChange(ctx, store.ScopeChange{Inserts: []*model.OrMembership{
		newMembership(unitID, a, core.ORCategoryJeugdige, 1),
		newMembership(unitID, b, core.ORCategoryArbeiders, 2),
		newMembership(unitID, a, core.ORCategoryArbeiders, 1),
		newMembership(primitive.NewObjectID(), b, core.ORCategoryBedienden, 1),
	}}))

	rows, err := s.Memberships().ListByUnit(ctx, unitID, nil)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, core.ORCategoryArbeiders, rows[0].Category)
	require.Equal(t, 1, rows[0].Order)
	require.Equal(t, 2, rows[1].Order)
	require.Equal(t, core.ORCategoryJeugdige, rows[2].Category)

	category := core.ORCategoryJeugdige
	rows, err = s.Memberships().ListByUnit(ctx, unitID, &category)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	scopes, err := s.Memberships().ListScopes(ctx)
	require.NoError(t, err)
	require.Len(t, scopes, 3)
}

func TestReadsReturnCopies(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()

	created, err := s.Employees().Create(ctx, &model.Employee{FirstName: "An", TechnicalUnitID: primitive.NewObjectID()})
	require.NoError(t, err)
	created.FirstName = "mutated"

	found, err := s.Employees().FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "An", found.FirstName)

	_, err = s.Employees().FindByID(ctx, primitive.NewObjectID())
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWorksCouncilFindOrCreateIsUnique(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()
	unitID := primitive.NewObjectID()

	var wg sync.WaitGroup
	ids := make([]primitive.ObjectID, 16)
	errs := make([]error, len(ids))
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			council, err := s.WorksCouncils().FindOrCreate(ctx, unitID)
			errs[i] = err
			if err == nil {
				ids[i] = council.ID
			}
		}(i)
	}
	wg.Wait()
	for i, id := range ids {
		require.NoError(t, errs[i])
		require.Equal(t, ids[0], id)
	}
}

func TestManagerSlot(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()
	unit, err := s.TechnicalUnits().Create(ctx, &model.TechnicalUnit{Name: "Gent"})
	require.NoError(t, err)
	managerID := primitive.NewObjectID()

	require.NoError(t, s.TechnicalUnits().SetManager(ctx, unit.ID, &managerID))
	cleared, err := s.TechnicalUnits().ClearManagerIf(ctx, managerID)
	require.NoError(t, err)
	require.EqualValues(t, 1, cleared)

	found, err := s.TechnicalUnits().FindByID(ctx, unit.ID)
	require.NoError(t, err)
	require.Nil(t, found.ManagerEmployeeID)

	require.ErrorIs(t, s.TechnicalUnits().SetManager(ctx, primitive.NewObjectID(), nil), store.ErrNotFound)
}

func TestLockerSerializesSameScope(t *testing.T) {
	t.Parallel()
	locker := NewLocker()
	scope := store.Scope{TechnicalUnitID: primitive.NewObjectID(), Category: core.ORCategoryKaderleden}

	unlock, err := locker.Lock(context.Background(), scope)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(ctx, scope)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	other := store.Scope{TechnicalUnitID: scope.TechnicalUnitID, Category: core.ORCategoryJeugdige}
	unlockOther, err := locker.Lock(context.Background(), other)
	require.NoError(t, err)
	unlockOther()

	unlock()
	unlock()
	unlockAgain, err := locker.Lock(context.Background(), scope)
	require.NoError(t, err)
	unlockAgain()
}

func TestEmployeeSearchMatchesNameEmailRolePhone(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()
	unitID, otherID := primitive.NewObjectID(), primitive.NewObjectID()

	an, err := s.Employees().Create(ctx, &model.Employee{TechnicalUnitID: unitID, FirstName: "An", LastName: "Peeters", Email: "an@example.be", Role: "Operator"})
	require.NoError(t, err)
	_, err = s.Employees().Create(ctx, &model.Employee{TechnicalUnitID: unitID, FirstName: "Bart", LastName: "Claes", Email: "bart@example.be", Phone: "+32 470 11 22 33"})
	require.NoError(t, err)
	_, err = s.Employees().Create(ctx, &model.Employee{TechnicalUnitID: otherID, FirstName: "Anke", LastName: "Wouters", Email: "anke@example.be"})
	require.NoError(t, err)

	found, err := s.Employees().Search(ctx, store.EmployeeFilter{Query: "an p"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, an.ID, found[0].ID)

	found, err = s.Employees().Search(ctx, store.EmployeeFilter{Query: "OPERATOR"})
	require.NoError(t, err)
	require.Len(t, found, 1)

	found, err = s.Employees().Search(ctx, store.EmployeeFilter{Query: "470"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, "Bart", found[0].FirstName)

	found, err = s.Employees().Search(ctx, store.EmployeeFilter{TechnicalUnitID: &unitID, Query: "an"})
	require.NoError(t, err)
	require.Len(t, found, 1)

	found, err = s.Employees().Search(ctx, store.EmployeeFilter{Query: "  "})
	require.NoError(t, err)
	require.Len(t, found, 3)
}

func TestEmployeeUpdateKeepsCreatedAt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()

	created, err := s.Employees().Create(ctx, &model.Employee{TechnicalUnitID: primitive.NewObjectID(), FirstName: "An", LastName: "Peeters"})
	require.NoError(t, err)

	changed := *created
	changed.LastName = "Janssens"
	changed.CreatedAt = time.Time{}
	updated, err := s.Employees().Update(ctx, &changed)
	require.NoError(t, err)
	require.Equal(t, "Janssens", updated.LastName)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)

	missing := changed
	missing.ID = primitive.NewObjectID()
	_, err = s.Employees().Update(ctx, &missing)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestTechnicalUnitUpdateLeavesManagerAlone(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewStore()
	companyID := primitive.NewObjectID()

	unit, err := s.TechnicalUnits().Create(ctx, &model.TechnicalUnit{CompanyID: companyID, Name: "Gent", Code: "TU-GENT", Location: model.Address{City: "Gent"}})
	require.NoError(t, err)
	managerID := primitive.NewObjectID()
	require.NoError(t, s.TechnicalUnits().SetManager(ctx, unit.ID, &managerID))

	changed := *unit
	changed.Name = "Gent Noord"
	changed.ManagerEmployeeID = nil
	updated, err := s.TechnicalUnits().Update(ctx, &changed)
	require.NoError(t, err)
	require.Equal(t, "Gent Noord", updated.Name)
	require.NotNil(t, updated.ManagerEmployeeID)
	require.Equal(t, managerID, *updated.ManagerEmployeeID)

	found, err := s.TechnicalUnits().Search(ctx, store.TechnicalUnitFilter{CompanyID: &companyID, Query: "noord"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	found, err = s.TechnicalUnits().Search(ctx, store.TechnicalUnitFilter{Query: "gent"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	found, err = s.TechnicalUnits().Search(ctx, store.TechnicalUnitFilter{Query: "brugge"})
	require.NoError(t, err)
	require.Empty(t, found)
}
