package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"socialelections/internal/core"
	"socialelections/internal/database/mongodb/model"
	"socialelections/internal/database/store"
	"socialelections/internal/dto"
	cErr "socialelections/internal/pkg/error"
	"socialelections/internal/telemetry"

	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var rosterHeader = []interface{}{"Order", "First name", "Last name", "Email"}

// RosterService 只做 xlsx 與 ledger 之間的格式轉換，所有寫入都走 WorksCouncilService
type RosterService struct {
	trace  *telemetry.Trace
	logger *zap.Logger
	store  store.Store
	ledger *WorksCouncilService
}

func NewRosterService(trace *telemetry.Trace, logger *zap.Logger, store store.Store, ledger *WorksCouncilService) *RosterService {
	return &RosterService{trace: trace, logger: logger, store: store, ledger: ledger}
}

// Export 每個類別一個工作表，依 order 排序
func (s *RosterService) Export(ctx context.Context, technicalUnitID primitive.ObjectID) (_ *bytes.Buffer, _ string, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	unit, err := s.findUnit(ctx, technicalUnitID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, "", err
	}

	total := 0
	for i, category := range core.ORCategories {
		sheet := string(category)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return nil, "", err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, "", err
		}
		if err := f.SetSheetRow(sheet, "A1", &rosterHeader); err != nil {
			return nil, "", err
		}
		if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
			return nil, "", err
		}
		if err := f.SetColWidth(sheet, "B", "D", 24); err != nil {
			return nil, "", err
		}

		cat := category
		members, err := s.ledger.ListMembers(ctx, technicalUnitID, &cat)
		if err != nil {
			return nil, "", err
		}
		for row, member := range members {
			cell, err := excelize.CoordinatesToCellName(1, row+2)
			if err != nil {
				return nil, "", err
			}
			values := []interface{}{member.OrMembership[category].Order, member.FirstName, member.LastName, member.Email}
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				return nil, "", err
			}
		}
		total += len(members)
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	s.trace.ApplyTraceAttributes(span, core.TraceDirectoryMeta{
		Op:              "roster_export",
		TechnicalUnitID: technicalUnitID.Hex(),
		ResultCount:     total,
	})
	return buf, rosterFilename(unit, time.Now().UTC()), nil
}

// Import 讀第一個工作表的 Email 與 Categorie 欄位，每個類別呼叫一次 BulkAdd。
// 找不到的 email 與無法辨識的類別都列在 Unmatched
func (s *RosterService) Import(ctx context.Context, technicalUnitID primitive.ObjectID, r io.Reader) (_ *dto.ImportResultDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if _, err := s.findUnit(ctx, technicalUnitID); err != nil {
		return nil, err
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, cErr.InvalidImportFile(fmt.Sprintf("cannot open workbook: %v", err))
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, cErr.InvalidImportFile("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, cErr.InvalidImportFile(fmt.Sprintf("cannot read sheet %q: %v", sheets[0], err))
	}
	if len(rows) == 0 {
		return nil, cErr.InvalidImportFile("sheet is empty")
	}
	emailCol, categoryCol := findImportColumns(rows[0])
	if emailCol < 0 || categoryCol < 0 {
		return nil, cErr.InvalidImportFile("header must contain Email and Categorie columns")
	}

	employees, err := s.store.Employees().ListByUnit(ctx, technicalUnitID)
	if err != nil {
		return nil, err
	}
	byEmail := indexByEmail(employees)

	result := &dto.ImportResultDto{Categories: make(map[core.ORCategory]int)}
	grouped := make(map[core.ORCategory][]primitive.ObjectID)
	for _, row := range rows[1:] {
		email := strings.ToLower(strings.TrimSpace(cellAt(row, emailCol)))
		if email == "" {
			continue
		}
		result.Rows++

		employee, ok := byEmail[email]
		if !ok {
			result.Unmatched = append(result.Unmatched, email)
			continue
		}
		categories := parseImportCategories(cellAt(row, categoryCol))
		if len(categories) == 0 {
			result.Unmatched = append(result.Unmatched, email)
			continue
		}
		result.Matched++
		for _, category := range categories {
			grouped[category] = append(grouped[category], employee.ID)
		}
	}

	for _, category := range core.ORCategories {
		ids := grouped[category]
		if len(ids) == 0 {
			continue
		}
		added, err := s.ledger.BulkAdd(ctx, ids, category, technicalUnitID)
		if err != nil {
			return nil, err
		}
		result.Categories[category] = len(added)
	}

	s.trace.ApplyTraceAttributes(span, core.TraceDirectoryMeta{
		Op:              "roster_import",
		TechnicalUnitID: technicalUnitID.Hex(),
		ResultCount:     result.Matched,
	})
	if len(result.Unmatched) > 0 {
		s.logger.Warn("roster import rows unmatched",
			zap.String("technicalUnitId", technicalUnitID.Hex()),
			zap.Strings("emails", result.Unmatched),
		)
	}
	s.logger.Info("roster imported",
		zap.String("technicalUnitId", technicalUnitID.Hex()),
		zap.Int("rows", result.Rows),
		zap.Int("matched", result.Matched),
	)
	return result, nil
}

func (s *RosterService) findUnit(ctx context.Context, id primitive.ObjectID) (*model.TechnicalUnit, error) {
	unit, err := s.store.TechnicalUnits().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, cErr.TechnicalUnitNotFound(fmt.Sprintf("technical unit %s not found", id.Hex()))
		}
		return nil, err
	}
	return unit, nil
}

func rosterFilename(unit *model.TechnicalUnit, at time.Time) string {
	name := unit.Code
	if name == "" {
		name = unit.ID.Hex()
	}
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ' ', ':', '"':
			return '_'
		}
		return r
	}, name)
	return fmt.Sprintf("or-%s-%s.xlsx", name, at.Format("20060102"))
}

// findImportColumns 不分大小寫比對標題，找不到回傳 -1
func findImportColumns(header []string) (emailCol, categoryCol int) {
	emailCol, categoryCol = -1, -1
	for i, raw := range header {
		title := strings.ToLower(strings.TrimSpace(raw))
		switch {
		case emailCol < 0 && (title == "email" || title == "e-mail" || title == "e-mailadres" || title == "emailadres"):
			emailCol = i
		case categoryCol < 0 && (strings.HasPrefix(title, "categorie") || strings.HasPrefix(title, "category")):
			categoryCol = i
		}
	}
	return emailCol, categoryCol
}

// parseImportCategories 同一格可用 , ; / 分隔多個類別
func parseImportCategories(raw string) []core.ORCategory {
	parts := strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ';' || r == '/' })
	seen := make(map[core.ORCategory]struct{}, len(parts))
	var out []core.ORCategory
	for _, part := range parts {
		category, ok := core.ParseORCategoryLoose(part)
		if !ok {
			continue
		}
		if _, dup := seen[category]; dup {
			continue
		}
		seen[category] = struct{}{}
		out = append(out, category)
	}
	return out
}

func indexByEmail(employees []*model.Employee) map[string]*model.Employee {
	out := make(map[string]*model.Employee, len(employees))
	for _, employee := range employees {
		key := strings.ToLower(strings.TrimSpace(employee.Email))
		if key == "" {
			continue
		}
		if _, ok := out[key]; !ok {
			out[key] = employee
		}
	}
	return out
}

func cellAt(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}
