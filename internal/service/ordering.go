package service

import (
	"sort"
	"socialelections/internal/database/mongodb/model"
	"socialelections/internal/database/store"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 以下 plan* 都是純函式：輸入同一個 scope 的快照，輸出要整批套用的 ScopeChange。
// rows 必須全部屬於 change.Scope。

// sequence 是 compaction 與 reorder 共用的穩定排序：order 無效（<=0）的排最後
func sequence(rows []*model.OrMembership) []*model.OrMembership {
	out := make([]*model.OrMembership, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if (a.Order > 0) != (b.Order > 0) {
			return a.Order > 0
		}
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID.Hex() < b.ID.Hex()
	})
	return out
}

func maxOrder(rows []*model.OrMembership) int {
	max := 0
	for _, row := range rows {
		if row.Order > max {
			max = row.Order
		}
	}
	return max
}

// renumber 依序指定 1..N，只對 order 有變動的列產生 OrderUpdate
func renumber(ordered []*model.OrMembership) []store.OrderUpdate {
	var updates []store.OrderUpdate
	for i, row := range ordered {
		if row.Order != i+1 {
			updates = append(updates, store.OrderUpdate{MembershipID: row.ID, Order: i + 1})
		}
	}
	return updates
}

// planAdd 以單一 orderBase（目前最大 order）依輸入順序接續編號；
// 已經是成員的 employee 不動。單筆 add 遇到無效 order 時會移到 scope 最後
func planAdd(scope store.Scope, council *model.WorksCouncil, rows []*model.OrMembership, employeeIDs []primitive.ObjectID, at time.Time) store.ScopeChange {
	change := store.ScopeChange{Scope: scope, At: at}

	existing := make(map[primitive.ObjectID]*model.OrMembership, len(rows))
	for _, row := range rows {
		existing[row.EmployeeID] = row
	}

	orderBase := maxOrder(rows)
	next := orderBase
	seen := make(map[primitive.ObjectID]struct{}, len(employeeIDs))
	for _, employeeID := range employeeIDs {
		if _, dup := seen[employeeID]; dup {
			continue
		}
		seen[employeeID] = struct{}{}

		if row, ok := existing[employeeID]; ok {
			if row.Order <= 0 && len(employeeIDs) == 1 {
				change.Orders = renumber(sequence(rows))
			}
			continue
		}
		next++
		change.Inserts = append(change.Inserts, &model.OrMembership{
			ID:              primitive.NewObjectID(),
			WorksCouncilID:  council.ID,
			TechnicalUnitID: scope.TechnicalUnitID,
			EmployeeID:      employeeID,
			Category:        scope.Category,
			Order:           next,
		})
	}
	return change
}

// planRemove 刪除指定 employee 的 membership，剩下的做一次穩定 compaction
func planRemove(scope store.Scope, rows []*model.OrMembership, employeeIDs []primitive.ObjectID, at time.Time) store.ScopeChange {
	change := store.ScopeChange{Scope: scope, At: at}

	targets := make(map[primitive.ObjectID]struct{}, len(employeeIDs))
	for _, id := range employeeIDs {
		targets[id] = struct{}{}
	}
	survivors := make([]*model.OrMembership, 0, len(rows))
	for _, row := range rows {
		if _, ok := targets[row.EmployeeID]; ok {
			change.Deletes = append(change.Deletes, row.ID)
			continue
		}
		survivors = append(survivors, row)
	}
	if len(change.Deletes) == 0 {
		return change
	}
	change.Orders = renumber(sequence(survivors))
	return change
}

// planReorder 依 orderedIDs 給 1..k；不在 scope 的 id 忽略，重複的 id 只取第一次。
// 沒列到的成員保持原本相對順序接在後面。listed 回傳實際被排序的 employee
func planReorder(scope store.Scope, rows []*model.OrMembership, orderedIDs []primitive.ObjectID, at time.Time) (change store.ScopeChange, listed []primitive.ObjectID) {
	change = store.ScopeChange{Scope: scope, At: at}

	byEmployee := make(map[primitive.ObjectID]*model.OrMembership, len(rows))
	for _, row := range rows {
		byEmployee[row.EmployeeID] = row
	}

	ordered := make([]*model.OrMembership, 0, len(rows))
	placed := make(map[primitive.ObjectID]struct{}, len(rows))
	for _, employeeID := range orderedIDs {
		row, ok := byEmployee[employeeID]
		if !ok {
			continue
		}
		if _, dup := placed[employeeID]; dup {
			continue
		}
		placed[employeeID] = struct{}{}
		ordered = append(ordered, row)
		listed = append(listed, employeeID)
	}
	for _, row := range sequence(rows) {
		if _, ok := placed[row.EmployeeID]; !ok {
			ordered = append(ordered, row)
		}
	}
	change.Orders = renumber(ordered)
	return change, listed
}

// planRepair 給 integrity sweep 用：同一 employee 重複只留第一筆，
// orphans（employee 不存在或不屬於該 unit）刪除，其餘重新編號
func planRepair(scope store.Scope, rows []*model.OrMembership, orphans map[primitive.ObjectID]struct{}, at time.Time) store.ScopeChange {
	change := store.ScopeChange{Scope: scope, At: at}

	kept := make([]*model.OrMembership, 0, len(rows))
	seen := make(map[primitive.ObjectID]struct{}, len(rows))
	for _, row := range sequence(rows) {
		if _, orphan := orphans[row.EmployeeID]; orphan {
			change.Deletes = append(change.Deletes, row.ID)
			continue
		}
		if _, dup := seen[row.EmployeeID]; dup {
			change.Deletes = append(change.Deletes, row.ID)
			continue
		}
		seen[row.EmployeeID] = struct{}{}
		kept = append(kept, row)
	}
	change.Orders = renumber(kept)
	return change
}
