// Package memory 是 store.Store 的單機實作，適合本地開發與測試。
// 所有讀取都在同一把 RWMutex 下複製資料，寫入 ScopeChange 時持有寫鎖，
// 因此讀取方只會看到變更前或變更後的狀態。
package memory

import (
	"context"
	"socialelections/internal/core"
	"socialelections/internal/database/mongodb/model"
	"socialelections/internal/database/store"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type employeeCategory struct {
	employeeID primitive.ObjectID
	category   core.ORCategory
}

type Store struct {
	mu sync.RWMutex

	employees   map[primitive.ObjectID]model.Employee
	units       map[primitive.ObjectID]model.TechnicalUnit
	councils    map[primitive.ObjectID]model.WorksCouncil // key: technicalUnitId
	memberships map[primitive.ObjectID]model.OrMembership
	byEmpCat    map[employeeCategory]primitive.ObjectID
}

func NewStore() *Store {
	return &Store{
		employees:   make(map[primitive.ObjectID]model.Employee),
		units:       make(map[primitive.ObjectID]model.TechnicalUnit),
		councils:    make(map[primitive.ObjectID]model.WorksCouncil),
		memberships: make(map[primitive.ObjectID]model.OrMembership),
		byEmpCat:    make(map[employeeCategory]primitive.ObjectID),
	}
}

func (s *Store) Employees() store.EmployeeStore           { return employeeStore{s} }
func (s *Store) TechnicalUnits() store.TechnicalUnitStore { return technicalUnitStore{s} }
func (s *Store) WorksCouncils() store.WorksCouncilStore   { return worksCouncilStore{s} }
func (s *Store) Memberships() store.MembershipStore       { return membershipStore{s} }

func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

func now() time.Time {
	return time.Now().UTC()
}

// containsAny 的 q 必須已經轉成小寫
func containsAny(q string, fields ...string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// ─── employees ────────────────────────────────────────────────────────────────

type employeeStore struct{ s *Store }

func (e employeeStore) Create(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	record := *employee
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	record.CreatedAt = now()
	record.UpdatedAt = record.CreatedAt
	e.s.employees[record.ID] = record
	out := record
	return &out, nil
}

func (e employeeStore) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Employee, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	e.s.mu.RLock()
	defer e.s.mu.RUnlock()

	record, ok := e.s.employees[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &record, nil
}

func (e employeeStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Employee, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	e.s.mu.RLock()
	defer e.s.mu.RUnlock()

	results := make([]*model.Employee, 0, len(ids))
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if record, ok := e.s.employees[id]; ok {
			results = append(results, &record)
		}
	}
	return results, nil
}

func (e employeeStore) ListByUnit(ctx context.Context, technicalUnitID primitive.ObjectID) ([]*model.Employee, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	e.s.mu.RLock()
	defer e.s.mu.RUnlock()

	var results []*model.Employee
	for _, record := range e.s.employees {
		if record.TechnicalUnitID == technicalUnitID {
			r := record
			results = append(results, &r)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		if !results[i].CreatedAt.Equal(results[j].CreatedAt) {
			return results[i].CreatedAt.Before(results[j].CreatedAt)
		}
		return results[i].ID.Hex() < results[j].ID.Hex()
	})
	return results, nil
}

func (e employeeStore) Search(ctx context.Context, filter store.EmployeeFilter) ([]*model.Employee, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	e.s.mu.RLock()
	defer e.s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(filter.Query))
	results := []*model.Employee{}
	for _, record := range e.s.employees {
		if filter.TechnicalUnitID != nil && record.TechnicalUnitID != *filter.TechnicalUnitID {
			continue
		}
		if q != "" && !containsAny(q, record.FirstName+" "+record.LastName, record.Email, record.Role, record.Phone) {
			continue
		}
		r := record
		results = append(results, &r)
	}
	sort.Slice(results, func(i, j int) bool {
		if !results[i].CreatedAt.Equal(results[j].CreatedAt) {
			return results[i].CreatedAt.Before(results[j].CreatedAt)
		}
		return results[i].ID.Hex() < results[j].ID.Hex()
	})
	return results, nil
}

func (e employeeStore) Update(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	current, ok := e.s.employees[employee.ID]
	if !ok {
		return nil, store.ErrNotFound
	}
	record := *employee
	record.CreatedAt = current.CreatedAt
	record.UpdatedAt = now()
	e.s.employees[record.ID] = record
	out := record
	return &out, nil
}

func (e employeeStore) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	e.s.mu.Lock()
	defer e.s.mu.Unlock()
	delete(e.s.employees, id)
	return nil
}

func (e employeeStore) DeleteByUnit(ctx context.Context, technicalUnitID primitive.ObjectID) (int64, error) {
	if err := checkContext(ctx); err != nil {
		return 0, err
	}
	e.s.mu.Lock()
	defer e.s.mu.Unlock()

	var count int64
	for id, record := range e.s.employees {
		if record.TechnicalUnitID == technicalUnitID {
			delete(e.s.employees, id)
			count++
		}
	}
	return count, nil
}

// ─── technical units ──────────────────────────────────────────────────────────

type technicalUnitStore struct{ s *Store }

func (u technicalUnitStore) Create(ctx context.Context, unit *model.TechnicalUnit) (*model.TechnicalUnit, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	record := *unit
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	record.CreatedAt = now()
	record.UpdatedAt = record.CreatedAt
	u.s.units[record.ID] = record
	out := record
	return &out, nil
}

func (u technicalUnitStore) FindByID(ctx context.Context, id primitive.ObjectID) (*model.TechnicalUnit, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	record, ok := u.s.units[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &record, nil
}

func (u technicalUnitStore) List(ctx context.Context, companyID *primitive.ObjectID) ([]*model.TechnicalUnit, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	var results []*model.TechnicalUnit
	for _, record := range u.s.units {
		if companyID != nil && record.CompanyID != *companyID {
			continue
		}
		r := record
		results = append(results, &r)
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Code != results[j].Code {
			return results[i].Code < results[j].Code
		}
		return results[i].ID.Hex() < results[j].ID.Hex()
	})
	return results, nil
}

func (u technicalUnitStore) Search(ctx context.Context, filter store.TechnicalUnitFilter) ([]*model.TechnicalUnit, error) {
	units, err := u.List(ctx, filter.CompanyID)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(filter.Query))
	if q == "" {
		return units, nil
	}
	results := []*model.TechnicalUnit{}
	for _, unit := range units {
		if containsAny(q, unit.Name, unit.Code, unit.Description, unit.Department, unit.Status, unit.Location.City, unit.Location.Street) {
			results = append(results, unit)
		}
	}
	return results, nil
}

func (u technicalUnitStore) Update(ctx context.Context, unit *model.TechnicalUnit) (*model.TechnicalUnit, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	current, ok := u.s.units[unit.ID]
	if !ok {
		return nil, store.ErrNotFound
	}
	record := *unit
	record.ManagerEmployeeID = current.ManagerEmployeeID
	record.CreatedAt = current.CreatedAt
	record.UpdatedAt = now()
	u.s.units[record.ID] = record
	out := record
	return &out, nil
}

func (u technicalUnitStore) SetManager(ctx context.Context, id primitive.ObjectID, employeeID *primitive.ObjectID) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	record, ok := u.s.units[id]
	if !ok {
		return store.ErrNotFound
	}
	if employeeID == nil {
		record.ManagerEmployeeID = nil
	} else {
		managerID := *employeeID
		record.ManagerEmployeeID = &managerID
	}
	record.UpdatedAt = now()
	u.s.units[id] = record
	return nil
}

func (u technicalUnitStore) ClearManagerIf(ctx context.Context, employeeID primitive.ObjectID) (int64, error) {
	if err := checkContext(ctx); err != nil {
		return 0, err
	}
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	var count int64
	for id, record := range u.s.units {
		if record.ManagerEmployeeID != nil && *record.ManagerEmployeeID == employeeID {
			record.ManagerEmployeeID = nil
			record.UpdatedAt = now()
			u.s.units[id] = record
			count++
		}
	}
	return count, nil
}

func (u technicalUnitStore) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	delete(u.s.units, id)
	return nil
}

// ─── works councils ───────────────────────────────────────────────────────────

type worksCouncilStore struct{ s *Store }

func (w worksCouncilStore) FindOrCreate(ctx context.Context, technicalUnitID primitive.ObjectID) (*model.WorksCouncil, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	w.s.mu.Lock()
	defer w.s.mu.Unlock()

	record, ok := w.s.councils[technicalUnitID]
	if !ok {
		record = model.WorksCouncil{
			ID:              primitive.NewObjectID(),
			TechnicalUnitID: technicalUnitID,
			CreatedAt:       now(),
		}
	}
	record.UpdatedAt = now()
	w.s.councils[technicalUnitID] = record
	return &record, nil
}

func (w worksCouncilStore) FindByUnit(ctx context.Context, technicalUnitID primitive.ObjectID) (*model.WorksCouncil, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	w.s.mu.RLock()
	defer w.s.mu.RUnlock()

	record, ok := w.s.councils[technicalUnitID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &record, nil
}

func (w worksCouncilStore) DeleteByUnit(ctx context.Context, technicalUnitID primitive.ObjectID) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	delete(w.s.councils, technicalUnitID)
	return nil
}

// ─── memberships ──────────────────────────────────────────────────────────────

type membershipStore struct{ s *Store }

func (m membershipStore) ListByUnit(ctx context.Context, technicalUnitID primitive.ObjectID, category *core.ORCategory) ([]*model.OrMembership, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	var results []*model.OrMembership
	for _, record := range m.s.memberships {
		if record.TechnicalUnitID != technicalUnitID {
			continue
		}
		if category != nil && record.Category != *category {
			continue
		}
		r := record
		results = append(results, &r)
	}
	store.SortMemberships(results)
	return results, nil
}

func (m membershipStore) ListByEmployee(ctx context.Context, employeeID primitive.ObjectID) ([]*model.OrMembership, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	var results []*model.OrMembership
	for _, category := range core.ORCategories {
		if id, ok := m.s.byEmpCat[employeeCategory{employeeID, category}]; ok {
			r := m.s.memberships[id]
			results = append(results, &r)
		}
	}
	return results, nil
}

func (m membershipStore) ListScopes(ctx context.Context) ([]store.Scope, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	seen := make(map[store.Scope]struct{})
	var scopes []store.Scope
	for _, record := range m.s.memberships {
		scope := store.Scope{TechnicalUnitID: record.TechnicalUnitID, Category: record.Category}
		if _, ok := seen[scope]; ok {
			continue
		}
		seen[scope] = struct{}{}
		scopes = append(scopes, scope)
	}
	store.SortScopes(scopes)
	return scopes, nil
}

// ApplyChange 先完整驗證再寫入，驗證失敗時不會留下部分狀態
func (m membershipStore) ApplyChange(ctx context.Context, change store.ScopeChange) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	if change.Empty() {
		return nil
	}
	at := change.At
	if at.IsZero() {
		at = now()
	}

	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	deleting := make(map[primitive.ObjectID]struct{}, len(change.Deletes))
	for _, id := range change.Deletes {
		deleting[id] = struct{}{}
	}
	pending := make(map[employeeCategory]struct{}, len(change.Inserts))
	for _, row := range change.Inserts {
		key := employeeCategory{row.EmployeeID, row.Category}
		if _, dup := pending[key]; dup {
			return store.ErrDuplicateMembership
		}
		if existingID, ok := m.s.byEmpCat[key]; ok {
			if _, freed := deleting[existingID]; !freed {
				return store.ErrDuplicateMembership
			}
		}
		pending[key] = struct{}{}
	}
	for _, update := range change.Orders {
		if _, ok := m.s.memberships[update.MembershipID]; !ok {
			return store.ErrNotFound
		}
		if _, gone := deleting[update.MembershipID]; gone {
			return store.ErrNotFound
		}
	}

	for id := range deleting {
		record, ok := m.s.memberships[id]
		if !ok {
			continue
		}
		delete(m.s.byEmpCat, employeeCategory{record.EmployeeID, record.Category})
		delete(m.s.memberships, id)
	}
	for _, row := range change.Inserts {
		record := *row
		if record.ID.IsZero() {
			record.ID = primitive.NewObjectID()
		}
		record.CreatedAt = at
		record.UpdatedAt = at
		m.s.memberships[record.ID] = record
		m.s.byEmpCat[employeeCategory{record.EmployeeID, record.Category}] = record.ID
	}
	for _, update := range change.Orders {
		record := m.s.memberships[update.MembershipID]
		record.Order = update.Order
		record.UpdatedAt = at
		m.s.memberships[update.MembershipID] = record
	}
	return nil
}

func (m membershipStore) DeleteByUnit(ctx context.Context, technicalUnitID primitive.ObjectID) (int64, error) {
	if err := checkContext(ctx); err != nil {
		return 0, err
	}
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	var count int64
	for id, record := range m.s.memberships {
		if record.TechnicalUnitID == technicalUnitID {
			delete(m.s.byEmpCat, employeeCategory{record.EmployeeID, record.Category})
			delete(m.s.memberships, id)
			count++
		}
	}
	return count, nil
}
