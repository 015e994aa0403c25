package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"socialelections/config"
	"socialelections/internal/core"
	fluentdModel "socialelections/internal/database/fluentd/model"
	fluentdRepo "socialelections/internal/database/fluentd/repository"
	"socialelections/internal/database/mongodb/model"
	"socialelections/internal/database/store"
	"socialelections/internal/dto"
	cErr "socialelections/internal/pkg/error"
	"socialelections/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	resultOK    = "ok"
	resultError = "error"
)

// WorksCouncilService 是 OR membership 的唯一寫入者。
// 每個 mutation 都在 (unit, category) scope lock 內，從一份快照規劃出一個 ScopeChange 再一次套用
type WorksCouncilService struct {
	trace      *telemetry.Trace
	metric     *telemetry.Metric
	logger     *zap.Logger
	store      store.Store
	locker     store.ScopeLocker
	logRepo    *fluentdRepo.LogRepository
	projection *ProjectionService
	lockWait   time.Duration
	lockDriver string
	now        func() time.Time
}

func NewWorksCouncilService(
	conf *config.Configuration,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	logger *zap.Logger,
	store store.Store,
	locker store.ScopeLocker,
	logRepo *fluentdRepo.LogRepository,
	projection *ProjectionService,
) *WorksCouncilService {
	lockDriver := string(conf.WorksCouncil.Locker)
	if lockDriver == "" {
		lockDriver = string(config.LockerMemory)
	}
	return &WorksCouncilService{
		trace:      trace,
		metric:     metric,
		logger:     logger,
		store:      store,
		locker:     locker,
		logRepo:    logRepo,
		projection: projection,
		lockWait:   conf.WorksCouncil.LockWaitDuration(),
		lockDriver: lockDriver,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func validateCategory(category core.ORCategory) error {
	if !category.Valid() {
		return cErr.InvalidCategory(fmt.Sprintf("unknown category %q", category))
	}
	return nil
}

// ListMembers 無 category 時依 (第一個持有的類別, 該類別 order) 排序；未知 unit 回傳空陣列
func (s *WorksCouncilService) ListMembers(ctx context.Context, technicalUnitID primitive.ObjectID, category *core.ORCategory) ([]*dto.EmployeeResponseDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	meta := core.TraceLedgerMeta{Op: "list_members", TechnicalUnitID: technicalUnitID.Hex()}
	if category != nil {
		if err := validateCategory(*category); err != nil {
			return nil, err
		}
		meta.Category = string(*category)
	}
	s.trace.ApplyTraceAttributes(span, meta)

	rows, err := s.store.Memberships().ListByUnit(ctx, technicalUnitID, nil)
	if err != nil {
		return nil, err
	}

	type sortKey struct {
		rank  int
		order int
	}
	keys := make(map[primitive.ObjectID]sortKey)
	var memberIDs []primitive.ObjectID
	for _, row := range rows {
		if category != nil && row.Category != *category {
			continue
		}
		// rows 已依類別順序排好，第一次遇到的就是第一個持有的類別
		if _, ok := keys[row.EmployeeID]; ok {
			continue
		}
		keys[row.EmployeeID] = sortKey{rank: row.Category.Rank(), order: row.Order}
		memberIDs = append(memberIDs, row.EmployeeID)
	}
	if len(memberIDs) == 0 {
		return []*dto.EmployeeResponseDto{}, nil
	}

	employees, err := s.store.Employees().FindByIDs(ctx, memberIDs)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(employees, func(i, j int) bool {
		a, b := keys[employees[i].ID], keys[employees[j].ID]
		if a.rank != b.rank {
			return a.rank < b.rank
		}
		if a.order != b.order {
			return a.order < b.order
		}
		return employees[i].ID.Hex() < employees[j].ID.Hex()
	})
	return buildProjection(employees, rows), nil
}

// AddMember 已是成員時不變動（冪等），否則以 max+1 接在最後
func (s *WorksCouncilService) AddMember(ctx context.Context, employeeID primitive.ObjectID, category core.ORCategory, technicalUnitID primitive.ObjectID) (_ *dto.EmployeeResponseDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	scope := store.Scope{TechnicalUnitID: technicalUnitID, Category: category}
	var change store.ScopeChange
	defer func() {
		s.record(ctx, span, core.LedgerOpAdd, scope, []primitive.ObjectID{employeeID}, change, 0, returnedError)
	}()

	if err := validateCategory(category); err != nil {
		return nil, err
	}

	unlock, err := s.lockScope(ctx, scope)
	if err != nil {
		return nil, err
	}
	defer unlock()

	// 拿到鎖之後才讀 employee，刪除或搬移 unit 會在同一把鎖內完成
	employee, err := s.resolveEmployee(ctx, employeeID, technicalUnitID)
	if err != nil {
		return nil, err
	}
	council, err := s.findOrCreateCouncil(ctx, technicalUnitID)
	if err != nil {
		return nil, err
	}
	rows, err := s.store.Memberships().ListByUnit(ctx, technicalUnitID, &category)
	if err != nil {
		return nil, err
	}
	change = planAdd(scope, council, rows, []primitive.ObjectID{employeeID}, s.now())
	if err := s.store.Memberships().ApplyChange(ctx, change); err != nil {
		return nil, err
	}
	return s.projection.ProjectOne(ctx, employee)
}

// RemoveMember 不存在時為 no-op，刪除後整個 scope 重新壓實為 1..N
func (s *WorksCouncilService) RemoveMember(ctx context.Context, employeeID primitive.ObjectID, category core.ORCategory, technicalUnitID primitive.ObjectID) (_ *dto.EmployeeResponseDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	scope := store.Scope{TechnicalUnitID: technicalUnitID, Category: category}
	var change store.ScopeChange
	defer func() {
		s.record(ctx, span, core.LedgerOpRemove, scope, []primitive.ObjectID{employeeID}, change, 0, returnedError)
	}()

	if err := validateCategory(category); err != nil {
		return nil, err
	}

	unlock, err := s.lockScope(ctx, scope)
	if err != nil {
		return nil, err
	}
	defer unlock()

	employee, err := s.resolveEmployee(ctx, employeeID, technicalUnitID)
	if err != nil {
		return nil, err
	}
	rows, err := s.store.Memberships().ListByUnit(ctx, technicalUnitID, &category)
	if err != nil {
		return nil, err
	}
	change = planRemove(scope, rows, []primitive.ObjectID{employeeID}, s.now())
	if err := s.store.Memberships().ApplyChange(ctx, change); err != nil {
		return nil, err
	}
	return s.projection.ProjectOne(ctx, employee)
}

// BulkAdd 無法解析或不屬於該 unit 的 id 會略過；一個都沒有時直接回傳空結果，不建立 council
func (s *WorksCouncilService) BulkAdd(ctx context.Context, employeeIDs []primitive.ObjectID, category core.ORCategory, technicalUnitID primitive.ObjectID) (_ []*dto.EmployeeResponseDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	scope := store.Scope{TechnicalUnitID: technicalUnitID, Category: category}
	var change store.ScopeChange
	skipped := 0
	defer func() {
		s.record(ctx, span, core.LedgerOpBulkAdd, scope, employeeIDs, change, skipped, returnedError)
	}()

	if err := validateCategory(category); err != nil {
		return nil, err
	}

	unlock, err := s.lockScope(ctx, scope)
	if err != nil {
		return nil, err
	}
	defer unlock()

	employees, err := s.resolveUnitEmployees(ctx, employeeIDs, technicalUnitID)
	if err != nil {
		return nil, err
	}
	skipped = len(dedupeIDs(employeeIDs)) - len(employees)
	if len(employees) == 0 {
		return []*dto.EmployeeResponseDto{}, nil
	}

	council, err := s.findOrCreateCouncil(ctx, technicalUnitID)
	if err != nil {
		return nil, err
	}
	rows, err := s.store.Memberships().ListByUnit(ctx, technicalUnitID, &category)
	if err != nil {
		return nil, err
	}
	change = planAdd(scope, council, rows, idsOf(employees), s.now())
	if err := s.store.Memberships().ApplyChange(ctx, change); err != nil {
		return nil, err
	}
	return s.projection.Project(ctx, technicalUnitID, employees)
}

// BulkRemove 一次刪除全部符合的 membership，只壓實一次
func (s *WorksCouncilService) BulkRemove(ctx context.Context, employeeIDs []primitive.ObjectID, category core.ORCategory, technicalUnitID primitive.ObjectID) (_ []*dto.EmployeeResponseDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	scope := store.Scope{TechnicalUnitID: technicalUnitID, Category: category}
	var change store.ScopeChange
	skipped := 0
	defer func() {
		s.record(ctx, span, core.LedgerOpBulkRemove, scope, employeeIDs, change, skipped, returnedError)
	}()

	if err := validateCategory(category); err != nil {
		return nil, err
	}

	unlock, err := s.lockScope(ctx, scope)
	if err != nil {
		return nil, err
	}
	defer unlock()

	employees, err := s.resolveUnitEmployees(ctx, employeeIDs, technicalUnitID)
	if err != nil {
		return nil, err
	}
	skipped = len(dedupeIDs(employeeIDs)) - len(employees)
	if len(employees) == 0 {
		return []*dto.EmployeeResponseDto{}, nil
	}

	rows, err := s.store.Memberships().ListByUnit(ctx, technicalUnitID, &category)
	if err != nil {
		return nil, err
	}
	change = planRemove(scope, rows, idsOf(employees), s.now())
	if err := s.store.Memberships().ApplyChange(ctx, change); err != nil {
		return nil, err
	}
	return s.projection.Project(ctx, technicalUnitID, employees)
}

// Reorder 列出的成員依序得到 1..k，沒列出的保持相對順序接在後面
func (s *WorksCouncilService) Reorder(ctx context.Context, technicalUnitID primitive.ObjectID, category core.ORCategory, orderedIDs []primitive.ObjectID) (_ []*dto.EmployeeResponseDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	scope := store.Scope{TechnicalUnitID: technicalUnitID, Category: category}
	var change store.ScopeChange
	skipped := 0
	defer func() {
		s.record(ctx, span, core.LedgerOpReorder, scope, orderedIDs, change, skipped, returnedError)
	}()

	if err := validateCategory(category); err != nil {
		return nil, err
	}

	unlock, err := s.lockScope(ctx, scope)
	if err != nil {
		return nil, err
	}
	defer unlock()

	rows, err := s.store.Memberships().ListByUnit(ctx, technicalUnitID, &category)
	if err != nil {
		return nil, err
	}
	var listed []primitive.ObjectID
	change, listed = planReorder(scope, rows, orderedIDs, s.now())
	skipped = len(dedupeIDs(orderedIDs)) - len(listed)
	if err := s.store.Memberships().ApplyChange(ctx, change); err != nil {
		return nil, err
	}
	if len(listed) == 0 {
		return []*dto.EmployeeResponseDto{}, nil
	}
	employees, err := s.store.Employees().FindByIDs(ctx, listed)
	if err != nil {
		return nil, err
	}
	return s.projection.Project(ctx, technicalUnitID, employees)
}

// DetachEmployee 鎖住 employee 所在 unit 的四個 scope 以及它還有 membership 的 scope，
// 移除 membership 並各自壓實，然後在鎖釋放前執行 commit（刪除 employee 或改 technicalUnitId）。
// 等在這些 scope 上的 add 拿到鎖時會重新讀 employee，因此不會寫入指向已刪除或已搬走 employee 的 membership
func (s *WorksCouncilService) DetachEmployee(ctx context.Context, employee *model.Employee, commit func(ctx context.Context) error) (returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	memberships, err := s.store.Memberships().ListByEmployee(ctx, employee.ID)
	if err != nil {
		return err
	}
	scopes := unitScopes(employee.TechnicalUnitID)
	for _, membership := range memberships {
		scopes = append(scopes, store.Scope{TechnicalUnitID: membership.TechnicalUnitID, Category: membership.Category})
	}
	unlock, locked, err := s.lockScopes(ctx, scopes)
	if err != nil {
		return err
	}
	defer unlock()

	// 等鎖期間可能有新的 membership，鎖住之後再讀一次
	memberships, err = s.store.Memberships().ListByEmployee(ctx, employee.ID)
	if err != nil {
		return err
	}
	purged := make(map[store.Scope]struct{}, len(memberships))
	for _, membership := range memberships {
		scope := store.Scope{TechnicalUnitID: membership.TechnicalUnitID, Category: membership.Category}
		if _, done := purged[scope]; done {
			continue
		}
		purged[scope] = struct{}{}
		if _, ok := locked[scope]; !ok {
			s.logger.Warn("membership outside locked scopes, left for integrity sweep",
				zap.String("employeeId", employee.ID.Hex()),
				zap.String("scope", scope.String()),
			)
			continue
		}
		change, err := s.purgeLockedScope(ctx, scope, employee.ID)
		s.record(ctx, span, core.LedgerOpPurge, scope, []primitive.ObjectID{employee.ID}, change, 0, err)
		if err != nil {
			return err
		}
	}
	if commit == nil {
		return nil
	}
	return commit(ctx)
}

// purgeLockedScope 呼叫端必須已持有 scope lock
func (s *WorksCouncilService) purgeLockedScope(ctx context.Context, scope store.Scope, employeeID primitive.ObjectID) (store.ScopeChange, error) {
	rows, err := s.store.Memberships().ListByUnit(ctx, scope.TechnicalUnitID, &scope.Category)
	if err != nil {
		return store.ScopeChange{}, err
	}
	change := planRemove(scope, rows, []primitive.ObjectID{employeeID}, s.now())
	return change, s.store.Memberships().ApplyChange(ctx, change)
}

// PurgeUnit 鎖住 unit 的四個 scope，刪除 membership 與 council，並在鎖內執行 commit（刪除 employee 與 unit）
func (s *WorksCouncilService) PurgeUnit(ctx context.Context, technicalUnitID primitive.ObjectID, commit func(ctx context.Context) error) (_ int64, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	unlock, _, err := s.lockScopes(ctx, unitScopes(technicalUnitID))
	if err != nil {
		return 0, err
	}
	defer unlock()

	deleted, err := s.store.Memberships().DeleteByUnit(ctx, technicalUnitID)
	if err != nil {
		return 0, err
	}
	if err := s.store.WorksCouncils().DeleteByUnit(ctx, technicalUnitID); err != nil {
		return deleted, err
	}
	if commit != nil {
		if err := commit(ctx); err != nil {
			return deleted, err
		}
	}
	s.trace.RecordLedgerMutation(span, core.TraceLedgerMeta{
		Op:              string(core.LedgerOpPurge),
		TechnicalUnitID: technicalUnitID.Hex(),
		Deleted:         int(deleted),
	}, nil)
	s.logger.Info("works council purged",
		zap.String("technicalUnitId", technicalUnitID.Hex()),
		zap.Int64("deleted", deleted),
	)
	return deleted, nil
}

// RepairScope 刪除重複與 orphan membership 後重新編號，回傳變動的列數
func (s *WorksCouncilService) RepairScope(ctx context.Context, scope store.Scope, orphans map[primitive.ObjectID]struct{}) (_ int, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	unlock, err := s.lockScope(ctx, scope)
	if err != nil {
		return 0, err
	}
	defer unlock()

	rows, err := s.store.Memberships().ListByUnit(ctx, scope.TechnicalUnitID, &scope.Category)
	if err != nil {
		return 0, err
	}
	change := planRepair(scope, rows, orphans, s.now())
	err = s.store.Memberships().ApplyChange(ctx, change)
	s.record(ctx, span, core.LedgerOpRepair, scope, nil, change, 0, err)
	if err != nil {
		return 0, err
	}
	return len(change.Deletes) + len(change.Orders), nil
}

// ─── helpers ──────────────────────────────────────────────────────────────────

func (s *WorksCouncilService) resolveEmployee(ctx context.Context, employeeID, technicalUnitID primitive.ObjectID) (*model.Employee, error) {
	employee, err := s.store.Employees().FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, cErr.EmployeeNotFound(fmt.Sprintf("employee %s not found", employeeID.Hex()))
		}
		return nil, err
	}
	if employee.TechnicalUnitID != technicalUnitID {
		return nil, cErr.CrossUnitMismatch(fmt.Sprintf("employee %s belongs to technical unit %s, not %s",
			employeeID.Hex(), employee.TechnicalUnitID.Hex(), technicalUnitID.Hex()))
	}
	return employee, nil
}

// resolveUnitEmployees 依輸入順序回傳屬於該 unit 的 employee，其餘記 warn 後略過
func (s *WorksCouncilService) resolveUnitEmployees(ctx context.Context, employeeIDs []primitive.ObjectID, technicalUnitID primitive.ObjectID) ([]*model.Employee, error) {
	ids := dedupeIDs(employeeIDs)
	if len(ids) == 0 {
		return nil, nil
	}
	found, err := s.store.Employees().FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	resolved := make([]*model.Employee, 0, len(found))
	foundIDs := make(map[primitive.ObjectID]struct{}, len(found))
	for _, employee := range found {
		foundIDs[employee.ID] = struct{}{}
		if employee.TechnicalUnitID != technicalUnitID {
			s.logger.Warn("bulk id belongs to another technical unit, skipped",
				zap.String("employeeId", employee.ID.Hex()),
				zap.String("technicalUnitId", technicalUnitID.Hex()),
			)
			continue
		}
		resolved = append(resolved, employee)
	}
	for _, id := range ids {
		if _, ok := foundIDs[id]; !ok {
			s.logger.Warn("bulk id not found, skipped", zap.String("employeeId", id.Hex()))
		}
	}
	return resolved, nil
}

func (s *WorksCouncilService) findOrCreateCouncil(ctx context.Context, technicalUnitID primitive.ObjectID) (*model.WorksCouncil, error) {
	council, err := s.store.WorksCouncils().FindOrCreate(ctx, technicalUnitID)
	if err != nil {
		return nil, cErr.CouncilCreationFailure(fmt.Sprintf("works council for %s: %v", technicalUnitID.Hex(), err))
	}
	return council, nil
}

// lockScope 等待上限為 WORKS_COUNCIL__LOCK_WAIT；呼叫端取消時回傳 ctx 的錯誤
func (s *WorksCouncilService) lockScope(ctx context.Context, scope store.Scope) (func(), error) {
	lockCtx, cancel := context.WithTimeout(ctx, s.lockWait)
	defer cancel()

	startAt := time.Now()
	unlock, err := s.locker.Lock(lockCtx, scope)
	waited := time.Since(startAt).Seconds()
	switch {
	case err == nil:
		s.metric.ObserveScopeLockWait(s.lockDriver, "acquired", waited)
		return unlock, nil
	case ctx.Err() != nil:
		s.metric.ObserveScopeLockWait(s.lockDriver, "timeout", waited)
		return nil, ctx.Err()
	case errors.Is(err, store.ErrScopeLockTimeout), errors.Is(err, context.DeadlineExceeded):
		s.metric.ObserveScopeLockWait(s.lockDriver, "timeout", waited)
		s.logger.Warn("scope lock unavailable", zap.String("scope", scope.String()), zap.Error(err))
		return nil, cErr.ScopeLockUnavailable(fmt.Sprintf("scope %s is busy", scope.String()))
	default:
		// redis transport 之類的錯誤原樣往上丟
		s.metric.ObserveScopeLockWait(s.lockDriver, "error", waited)
		s.logger.Warn("scope lock failed", zap.String("scope", scope.String()), zap.Error(err))
		return nil, err
	}
}

// lockScopes 去重後依 store.SortScopes 的順序上鎖，所有多 scope 的呼叫端都走這裡以免互相死鎖
func (s *WorksCouncilService) lockScopes(ctx context.Context, scopes []store.Scope) (func(), map[store.Scope]struct{}, error) {
	locked := make(map[store.Scope]struct{}, len(scopes))
	ordered := make([]store.Scope, 0, len(scopes))
	for _, scope := range scopes {
		if _, dup := locked[scope]; dup {
			continue
		}
		locked[scope] = struct{}{}
		ordered = append(ordered, scope)
	}
	store.SortScopes(ordered)

	unlocks := make([]func(), 0, len(ordered))
	release := func() {
		for i := len(unlocks) - 1; i >= 0; i-- {
			unlocks[i]()
		}
	}
	for _, scope := range ordered {
		unlock, err := s.lockScope(ctx, scope)
		if err != nil {
			release()
			return nil, nil, err
		}
		unlocks = append(unlocks, unlock)
	}
	return release, locked, nil
}

func unitScopes(technicalUnitID primitive.ObjectID) []store.Scope {
	scopes := make([]store.Scope, 0, len(core.ORCategories))
	for _, category := range core.ORCategories {
		scopes = append(scopes, store.Scope{TechnicalUnitID: technicalUnitID, Category: category})
	}
	return scopes
}

// record 統一寫 trace attribute、metric、log 與 fluentd audit event
func (s *WorksCouncilService) record(ctx context.Context, span trace.Span, op core.LedgerOp, scope store.Scope, employeeIDs []primitive.ObjectID, change store.ScopeChange, skipped int, err error) {
	hexIDs := make([]string, 0, len(employeeIDs))
	for _, id := range employeeIDs {
		hexIDs = append(hexIDs, id.Hex())
	}
	meta := core.TraceLedgerMeta{
		Op:              string(op),
		TechnicalUnitID: scope.TechnicalUnitID.Hex(),
		Category:        string(scope.Category),
		EmployeeIDs:     hexIDs,
		Inserted:        len(change.Inserts),
		Deleted:         len(change.Deletes),
		Reordered:       len(change.Orders),
		Skipped:         skipped,
	}
	s.trace.RecordLedgerMutation(span, meta, err)

	result := resultOK
	if err != nil {
		result = resultError
	}
	s.metric.ObserveLedgerMutation(op, scope.Category, result)

	fields := []zap.Field{
		zap.String("op", meta.Op),
		zap.String("technicalUnitId", meta.TechnicalUnitID),
		zap.String("category", meta.Category),
		zap.Int("inserted", meta.Inserted),
		zap.Int("deleted", meta.Deleted),
		zap.Int("reordered", meta.Reordered),
	}
	if skipped > 0 {
		fields = append(fields, zap.Int("skipped", skipped))
	}
	event := fluentdModel.LedgerEvent{
		Op:              meta.Op,
		TechnicalUnitID: meta.TechnicalUnitID,
		Category:        meta.Category,
		EmployeeIDs:     hexIDs,
		Inserted:        meta.Inserted,
		Deleted:         meta.Deleted,
		Reordered:       meta.Reordered,
		Skipped:         skipped,
		Result:          result,
	}
	if sc := span.SpanContext(); sc.HasTraceID() {
		event.RequestID = sc.TraceID().String()
	}
	if err != nil {
		event.Error = err.Error()
		s.logger.Warn("or ledger mutation failed", append(fields, zap.Error(err))...)
	} else {
		s.logger.Info("or ledger mutation", fields...)
	}
	if s.logRepo != nil {
		if postErr := s.logRepo.LogLedgerEvent(ctx, event); postErr != nil {
			s.logger.Warn("failed to post ledger event", zap.Error(postErr))
		}
	}
}

func dedupeIDs(ids []primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func idsOf(employees []*model.Employee) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(employees))
	for _, employee := range employees {
		ids = append(ids, employee.ID)
	}
	return ids
}
