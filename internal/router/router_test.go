package router

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"socialelections/config"
	"socialelections/internal/core"
	"socialelections/internal/database/client"
	fluentdRepo "socialelections/internal/database/fluentd/repository"
	"socialelections/internal/database/memory"
	"socialelections/internal/handler"
	"socialelections/internal/middleware"
	cErr "socialelections/internal/pkg/error"
	"socialelections/internal/service"
	"socialelections/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type envelope struct {
	RequestID   string          `json:"requestID"`
	Code        int             `json:"code"`
	Data        json.RawMessage `json:"data"`
	Message     string          `json:"message"`
	Description string          `json:"description"`
}

type apiMember struct {
	ID           string `json:"id"`
	OrMembership map[core.ORCategory]struct {
		Member bool `json:"member"`
		Order  int  `json:"order"`
	} `json:"orMembership"`
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()

	conf := &config.Configuration{}
	conf.App.Env = "test"
	conf.App.Name = "socialelections"
	conf.App.Version = "test"
	conf.WorksCouncil.LockWait = 2000

	trace := &telemetry.Trace{}
	metric := &telemetry.Metric{}
	logger := zap.NewNop()
	logRepo := fluentdRepo.NewLogRepository(conf, &client.NoopClient{})
	memStore := memory.NewStore()

	projection := service.NewProjectionService(trace, memStore)
	ledger := service.NewWorksCouncilService(conf, trace, metric, logger, memStore, memory.NewLocker(), logRepo, projection)
	health := service.NewHealthService()
	health.SetReady(true)

	return NewRouter(
		conf,
		middleware.NewTraceEntry(trace, metric, conf),
		middleware.NewRecovery(logger, trace, metric, conf, logRepo),
		middleware.NewCors(trace),
		middleware.NewLogger(logger, trace, conf, logRepo),
		middleware.NewResponse(logger, trace, metric, conf, logRepo),
		middleware.NewDecompress(),
		NewHealthRouter(handler.NewHealthHandler(conf, health)),
		NewEmployeeRouter(handler.NewEmployeeHandler(trace, service.NewEmployeeService(trace, logger, memStore, ledger, projection))),
		NewTechnicalUnitRouter(handler.NewTechnicalUnitHandler(
			trace,
			service.NewTechnicalUnitService(trace, logger, memStore, ledger),
			service.NewLeadershipService(conf, trace, logger, memStore),
		)),
		NewWorksCouncilRouter(handler.NewWorksCouncilHandler(
			trace,
			ledger,
			service.NewRosterService(trace, logger, memStore, ledger),
		)),
	)
}

func do(t *testing.T, engine *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func createID(t *testing.T, engine *gin.Engine, path string, body any) string {
	t.Helper()
	w, env := do(t, engine, http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotEmpty(t, created.ID)
	return created.ID
}

func seedUnit(t *testing.T, engine *gin.Engine, emails ...string) (string, []string) {
	t.Helper()
	unitID := createID(t, engine, "/api/technical-units", gin.H{
		"companyId": "64b7f0c2a1b2c3d4e5f60718",
		"name":      "Antwerpen",
		"code":      "TU-01",
		"language":  "N",
	})
	ids := make([]string, 0, len(emails))
	for _, email := range emails {
		ids = append(ids, createID(t, engine, "/api/employees", gin.H{
			"technicalUnitId": unitID,
			"firstName":       strings.Split(email, "@")[0],
			"lastName":        "Peeters",
			"email":           email,
		}))
	}
	return unitID, ids
}

func TestHealthEndpoints(t *testing.T) {
	engine := newTestEngine(t)

	w, _ := do(t, engine, http.MethodGet, "/health-check", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, engine, http.MethodGet, "/health/readiness", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "test", w.Header().Get("X-App-Version"))

	w, _ = do(t, engine, http.MethodGet, "/version", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"version":"test"`)
}

func TestMembershipFlowOverHTTP(t *testing.T) {
	engine := newTestEngine(t)
	unitID, ids := seedUnit(t, engine, "an@example.be", "bart@example.be", "chris@example.be")
	base := "/api/works-council/" + unitID

	w, env := do(t, engine, http.MethodPost, base+"/members/bulk-add", gin.H{
		"employeeIds": []string{ids[2], "not-an-id", ids[0]},
		"category":    core.ORCategoryArbeiders,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, cErr.SUCCESS, env.Code)

	w, _ = do(t, engine, http.MethodPost, base+"/members", gin.H{
		"employeeId": ids[1],
		"category":   core.ORCategoryArbeiders,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, env = do(t, engine, http.MethodGet, base+"/members?category=arbeiders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var members []apiMember
	require.NoError(t, json.Unmarshal(env.Data, &members))
	require.Len(t, members, 3)
	require.Equal(t, []string{ids[2], ids[0], ids[1]}, []string{members[0].ID, members[1].ID, members[2].ID})
	for i, m := range members {
		require.Equal(t, i+1, m.OrMembership[core.ORCategoryArbeiders].Order)
	}

	w, _ = do(t, engine, http.MethodPost, base+"/reorder", gin.H{
		"category":   core.ORCategoryArbeiders,
		"orderedIds": []string{ids[0], ids[1], ids[2]},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, _ = do(t, engine, http.MethodDelete, base+"/members", gin.H{
		"employeeId": ids[0],
		"category":   core.ORCategoryArbeiders,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	_, env = do(t, engine, http.MethodGet, base+"/members", nil)
	members = nil
	require.NoError(t, json.Unmarshal(env.Data, &members))
	require.Len(t, members, 2)
	require.Equal(t, ids[1], members[0].ID)
	require.Equal(t, 1, members[0].OrMembership[core.ORCategoryArbeiders].Order)
	require.Equal(t, 2, members[1].OrMembership[core.ORCategoryArbeiders].Order)
}

func TestErrorEnvelopes(t *testing.T) {
	engine := newTestEngine(t)
	unitID, ids := seedUnit(t, engine, "an@example.be")
	base := "/api/works-council/" + unitID

	w, env := do(t, engine, http.MethodPost, base+"/members", gin.H{
		"employeeId": ids[0],
		"category":   "directie",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, cErr.INVALID_CATEGORY, env.Code)

	w, env = do(t, engine, http.MethodGet, base+"/members?category=directie", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, cErr.INVALID_CATEGORY, env.Code)

	w, env = do(t, engine, http.MethodPost, base+"/members", gin.H{
		"employeeId": "64b7f0c2a1b2c3d4e5f60799",
		"category":   core.ORCategoryBedienden,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, cErr.EMPLOYEE_NOT_FOUND, env.Code)
	require.NotEmpty(t, env.RequestID)

	w, env = do(t, engine, http.MethodGet, "/api/works-council/nope/members", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, cErr.BAD_REQUEST_PARAMS, env.Code)

	w, env = do(t, engine, http.MethodPut, "/api/technical-units/64b7f0c2a1b2c3d4e5f60799/manager", gin.H{
		"employeeId": ids[0],
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, cErr.TECHNICAL_UNIT_NOT_FOUND, env.Code)
}

func TestManagerEndpoints(t *testing.T) {
	engine := newTestEngine(t)
	unitID, ids := seedUnit(t, engine, "an@example.be")

	w, env := do(t, engine, http.MethodPut, "/api/technical-units/"+unitID+"/manager", gin.H{"employeeId": ids[0]})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var unit struct {
		Manager string `json:"manager"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &unit))
	require.Equal(t, ids[0], unit.Manager)

	w, _ = do(t, engine, http.MethodDelete, "/api/technical-units/"+unitID+"/manager", nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, env = do(t, engine, http.MethodGet, "/api/technical-units/"+unitID, nil)
	require.NoError(t, json.Unmarshal(env.Data, &unit))
	require.Empty(t, unit.Manager)
}

func TestRosterExportAndImportOverHTTP(t *testing.T) {
	engine := newTestEngine(t)
	unitID, ids := seedUnit(t, engine, "an@example.be", "bart@example.be")
	base := "/api/works-council/" + unitID

	// import
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Email", "Categorie"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"bart@example.be", "Bedienden"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"an@example.be", "Bedienden"}))
	xlsx, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("file", "roster.xlsx")
	require.NoError(t, err)
	_, err = part.Write(xlsx.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, base+"/import", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var result struct {
		Matched int `json:"matched"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	require.Equal(t, 2, result.Matched)

	// export
	req = httptest.NewRequest(http.MethodGet, base+"/export", nil)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	require.Contains(t, w.Header().Get("Content-Disposition"), "or-TU-01-")

	exported, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer exported.Close()
	rows, err := exported.GetRows(string(core.ORCategoryBedienden))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "bart@example.be", rows[1][3])
	require.Equal(t, "an@example.be", rows[2][3])
	require.NotEmpty(t, ids)

	// 缺少 file 欄位
	w, env = do(t, engine, http.MethodPost, base+"/import", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, cErr.INVALID_IMPORT_FILE, env.Code)
}

func TestEmployeeUpdateAndSearchOverHTTP(t *testing.T) {
	engine := newTestEngine(t)
	oldUnit, ids := seedUnit(t, engine, "an@example.be", "bart@example.be")
	newUnit := createID(t, engine, "/api/technical-units", gin.H{
		"companyId": "64b7f0c2a1b2c3d4e5f60718",
		"name":      "Gent",
		"code":      "TU-02",
		"language":  "N",
	})

	w, _ := do(t, engine, http.MethodPost, "/api/works-council/"+oldUnit+"/members/bulk-add", gin.H{
		"employeeIds": ids,
		"category":    core.ORCategoryBedienden,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, env := do(t, engine, http.MethodPut, "/api/employees/"+ids[0], gin.H{
		"technicalUnitId": newUnit,
		"role":            "Teamlead",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var moved struct {
		TechnicalUnitID string `json:"technicalUnitId"`
		Role            string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &moved))
	require.Equal(t, newUnit, moved.TechnicalUnitID)
	require.Equal(t, "Teamlead", moved.Role)

	_, env = do(t, engine, http.MethodGet, "/api/works-council/"+oldUnit+"/members", nil)
	var members []apiMember
	require.NoError(t, json.Unmarshal(env.Data, &members))
	require.Len(t, members, 1)
	require.Equal(t, ids[1], members[0].ID)
	require.Equal(t, 1, members[0].OrMembership[core.ORCategoryBedienden].Order)

	w, env = do(t, engine, http.MethodGet, "/api/employees?q=TEAMLEAD", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var found []apiMember
	require.NoError(t, json.Unmarshal(env.Data, &found))
	require.Len(t, found, 1)
	require.Equal(t, ids[0], found[0].ID)

	w, env = do(t, engine, http.MethodGet, "/api/employees?technicalUnitId=nope", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, cErr.BAD_REQUEST_PARAMS, env.Code)

	w, env = do(t, engine, http.MethodPut, "/api/employees/"+ids[1], gin.H{"email": "not-an-email"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w, env = do(t, engine, http.MethodPut, "/api/technical-units/"+oldUnit, gin.H{"name": "Antwerpen Noord"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w, env = do(t, engine, http.MethodGet, "/api/technical-units?q=noord", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var units []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &units))
	require.Len(t, units, 1)
	require.Equal(t, oldUnit, units[0].ID)
}
