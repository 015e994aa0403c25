package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"socialelections/internal/core"
	cErr "socialelections/internal/pkg/error"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func workbook(t *testing.T, rows ...[]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		values := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &values))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestRosterExport(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)
	unitID := env.unit(t, "TU/60")
	a := env.employee(t, unitID, "an")
	b := env.employee(t, unitID, "bart")
	_, err := env.ledger.BulkAdd(ctx, []primitive.ObjectID{b, a}, core.ORCategoryBedienden, unitID)
	require.NoError(t, err)

	buf, filename, err := env.roster.Export(ctx, unitID)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(filename, "or-TU_60-"))
	require.True(t, strings.HasSuffix(filename, ".xlsx"))

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Equal(t, []string{"arbeiders", "bedienden", "kaderleden", "jeugdige"}, sheets)

	rows, err := f.GetRows("bedienden")
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"Order", "First name", "Last name", "Email"},
		{"1", "bart", "Peeters", "bart@example.be"},
		{"2", "an", "Peeters", "an@example.be"},
	}, rows)

	rows, err = f.GetRows("arbeiders")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestRosterExportUnknownUnit(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	_, _, err := env.roster.Export(context.Background(), primitive.NewObjectID())
	require.True(t, cErr.HasCode(err, cErr.TECHNICAL_UNIT_NOT_FOUND))
}

func TestRosterImport(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)
	unitID := env.unit(t, "TU-61")
	a := env.employee(t, unitID, "an")
	b := env.employee(t, unitID, "bart")
	c := env.employee(t, unitID, "chris")

	buf := workbook(t,
		[]interface{}{"Naam", "E-mail", "Categorie"},
		[]interface{}{"Bart", "BART@example.be", "Bedienden"},
		[]interface{}{"An", " an@example.be ", "arbeider; jeugdige"},
		[]interface{}{"Chris", "chris@example.be", "Kader"},
		[]interface{}{"Onbekend", "nobody@example.be", "Arbeiders"},
		[]interface{}{"Chris", "chris@example.be", "werknemer"},
		[]interface{}{"", "", ""},
	)

	result, err := env.roster.Import(ctx, unitID, buf)
	require.NoError(t, err)
	require.Equal(t, 5, result.Rows)
	require.Equal(t, 3, result.Matched)
	require.Equal(t, []string{"nobody@example.be", "chris@example.be"}, result.Unmatched)
	require.Equal(t, map[core.ORCategory]int{
		core.ORCategoryArbeiders:  1,
		core.ORCategoryBedienden:  1,
		core.ORCategoryKaderleden: 1,
		core.ORCategoryJeugdige:   1,
	}, result.Categories)

	require.Equal(t, map[primitive.ObjectID]int{a: 1}, env.orders(t, unitID, core.ORCategoryArbeiders))
	require.Equal(t, map[primitive.ObjectID]int{b: 1}, env.orders(t, unitID, core.ORCategoryBedienden))
	require.Equal(t, map[primitive.ObjectID]int{c: 1}, env.orders(t, unitID, core.ORCategoryKaderleden))
	require.Equal(t, map[primitive.ObjectID]int{a: 1}, env.orders(t, unitID, core.ORCategoryJeugdige))

	// 重複匯入不會改變既有 membership
	again, err := env.roster.Import(ctx, unitID, workbook(t,
		[]interface{}{"Email", "Category"},
		[]interface{}{"an@example.be", "Arbeiders"},
	))
	require.NoError(t, err)
	require.Equal(t, 1, again.Matched)
	require.Equal(t, map[primitive.ObjectID]int{a: 1}, env.orders(t, unitID, core.ORCategoryArbeiders))
}

func TestRosterExportImportRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	source := newTestEnv(t)
	target := newTestEnv(t)
	sourceUnit := source.unit(t, "TU-62")
	targetUnit := target.unit(t, "TU-62")
	for _, name := range []string{"an", "bart", "chris"} {
		source.employee(t, sourceUnit, name)
		target.employee(t, targetUnit, name)
	}
	employees, err := source.store.Employees().ListByUnit(ctx, sourceUnit)
	require.NoError(t, err)
	_, err = source.ledger.BulkAdd(ctx, idsOf(employees), core.ORCategoryArbeiders, sourceUnit)
	require.NoError(t, err)

	buf, _, err := source.roster.Export(ctx, sourceUnit)
	require.NoError(t, err)
	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()
	exported, err := f.GetRows("arbeiders")
	require.NoError(t, err)

	// 匯出的 Email 欄加上類別欄即可重新匯入，順序保持一致
	rows := [][]interface{}{{"Email", "Categorie"}}
	for _, row := range exported[1:] {
		rows = append(rows, []interface{}{row[3], "arbeiders"})
	}
	result, err := target.roster.Import(ctx, targetUnit, workbook(t, rows...))
	require.NoError(t, err)
	require.Equal(t, 3, result.Categories[core.ORCategoryArbeiders])

	cat := core.ORCategoryArbeiders
	sourceMembers, err := source.ledger.ListMembers(ctx, sourceUnit, &cat)
	require.NoError(t, err)
	targetMembers, err := target.ledger.ListMembers(ctx, targetUnit, &cat)
	require.NoError(t, err)
	require.Len(t, targetMembers, len(sourceMembers))
	for i := range sourceMembers {
		require.Equal(t, sourceMembers[i].Email, targetMembers[i].Email)
	}
}

func TestRosterImportRejectsBadFiles(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)
	unitID := env.unit(t, "TU-63")

	_, err := env.roster.Import(ctx, unitID, strings.NewReader("not a workbook"))
	require.True(t, cErr.HasCode(err, cErr.INVALID_IMPORT_FILE))

	_, err = env.roster.Import(ctx, unitID, workbook(t, []interface{}{"Name", "Email"}))
	require.True(t, cErr.HasCode(err, cErr.INVALID_IMPORT_FILE))

	_, err = env.roster.Import(ctx, primitive.NewObjectID(), workbook(t, []interface{}{"Email", "Categorie"}))
	require.True(t, cErr.HasCode(err, cErr.TECHNICAL_UNIT_NOT_FOUND))
}

func TestParseImportCategories(t *testing.T) {
	t.Parallel()
	require.Equal(t, []core.ORCategory{core.ORCategoryArbeiders, core.ORCategoryJeugdige},
		parseImportCategories("Arbeiders / jeugdige werknemers, arbeider"))
	require.Empty(t, parseImportCategories("directie"))
	require.Empty(t, parseImportCategories(""))
}
