// Package store 定義 ledger 與 directory 需要的持久層介面。
// memory 與 mongodb 兩個實作必須有相同語意。
package store

import (
	"context"
	"errors"
	"fmt"
	"socialelections/internal/core"
	"socialelections/internal/database/mongodb/model"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound            = errors.New("store: record not found")
	ErrDuplicateMembership = errors.New("store: membership already exists for employee and category")
	// ErrScopeLockTimeout 代表等不到 scope lock，跟 transport 錯誤要分開處理
	ErrScopeLockTimeout = errors.New("store: scope lock wait exceeded")
)

// Scope 是 ledger 的串行化單位
type Scope struct {
	TechnicalUnitID primitive.ObjectID
	Category        core.ORCategory
}

func (s Scope) String() string {
	return fmt.Sprintf("%s:%s", s.TechnicalUnitID.Hex(), s.Category)
}

type OrderUpdate struct {
	MembershipID primitive.ObjectID
	Order        int
}

// ScopeChange 是一次 mutation 對單一 scope 的完整差異，必須整批套用
type ScopeChange struct {
	Scope   Scope
	Inserts []*model.OrMembership
	Deletes []primitive.ObjectID
	Orders  []OrderUpdate
	At      time.Time
}

func (c ScopeChange) Empty() bool {
	return len(c.Inserts) == 0 && len(c.Deletes) == 0 && len(c.Orders) == 0
}

// SortMemberships 依 (類別順序, order, id) 排序，所有實作的 ListByUnit 都用它
func SortMemberships(rows []*model.OrMembership) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Category != rows[j].Category {
			return rows[i].Category.Rank() < rows[j].Category.Rank()
		}
		if rows[i].Order != rows[j].Order {
			return rows[i].Order < rows[j].Order
		}
		return rows[i].ID.Hex() < rows[j].ID.Hex()
	})
}

// SortScopes 讓 ListScopes 的輸出穩定
func SortScopes(scopes []Scope) {
	sort.Slice(scopes, func(i, j int) bool { return scopes[i].String() < scopes[j].String() })
}

// EmployeeFilter 的 Query 不分大小寫比對 "firstName lastName"、email、role、phone
type EmployeeFilter struct {
	TechnicalUnitID *primitive.ObjectID
	Query           string
}

// TechnicalUnitFilter 的 Query 不分大小寫比對 name、code、description、department、status、city、street
type TechnicalUnitFilter struct {
	CompanyID *primitive.ObjectID
	Query     string
}

type EmployeeStore interface {
	Create(ctx context.Context, employee *model.Employee) (*model.Employee, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Employee, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Employee, error)
	ListByUnit(ctx context.Context, technicalUnitID primitive.ObjectID) ([]*model.Employee, error)
	Search(ctx context.Context, filter EmployeeFilter) ([]*model.Employee, error)
	// Update 覆寫可編輯欄位，保留 createdAt；不存在時回傳 ErrNotFound
	Update(ctx context.Context, employee *model.Employee) (*model.Employee, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	DeleteByUnit(ctx context.Context, technicalUnitID primitive.ObjectID) (int64, error)
}

type TechnicalUnitStore interface {
	Create(ctx context.Context, unit *model.TechnicalUnit) (*model.TechnicalUnit, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.TechnicalUnit, error)
	List(ctx context.Context, companyID *primitive.ObjectID) ([]*model.TechnicalUnit, error)
	Search(ctx context.Context, filter TechnicalUnitFilter) ([]*model.TechnicalUnit, error)
	// Update 不會動到 managerEmployeeId，manager 只能透過 SetManager 改
	Update(ctx context.Context, unit *model.TechnicalUnit) (*model.TechnicalUnit, error)
	SetManager(ctx context.Context, id primitive.ObjectID, employeeID *primitive.ObjectID) error
	ClearManagerIf(ctx context.Context, employeeID primitive.ObjectID) (int64, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

type WorksCouncilStore interface {
	// FindOrCreate 必須是以 technicalUnitId 為 key 的 atomic upsert
	FindOrCreate(ctx context.Context, technicalUnitID primitive.ObjectID) (*model.WorksCouncil, error)
	FindByUnit(ctx context.Context, technicalUnitID primitive.ObjectID) (*model.WorksCouncil, error)
	DeleteByUnit(ctx context.Context, technicalUnitID primitive.ObjectID) error
}

type MembershipStore interface {
	// ListByUnit 回傳單一時間點的快照；category 為 nil 代表全部類別
	ListByUnit(ctx context.Context, technicalUnitID primitive.ObjectID, category *core.ORCategory) ([]*model.OrMembership, error)
	ListByEmployee(ctx context.Context, employeeID primitive.ObjectID) ([]*model.OrMembership, error)
	ListScopes(ctx context.Context) ([]Scope, error)
	ApplyChange(ctx context.Context, change ScopeChange) error
	DeleteByUnit(ctx context.Context, technicalUnitID primitive.ObjectID) (int64, error)
}

type Store interface {
	Employees() EmployeeStore
	TechnicalUnits() TechnicalUnitStore
	WorksCouncils() WorksCouncilStore
	Memberships() MembershipStore
}

// ScopeLocker 讓同一個 (unit, category) 的 mutation 互斥，不同 scope 可並行
type ScopeLocker interface {
	Lock(ctx context.Context, scope Scope) (unlock func(), err error)
}
