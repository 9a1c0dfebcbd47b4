package leads

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Parmjot23/mortgageHelper/models"
	"github.com/Parmjot23/mortgageHelper/testutil"
	"github.com/Parmjot23/mortgageHelper/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter() *gin.Engine {
	router := gin.New()
	RegisterLeadsRoutes(router.Group("/"))
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createLead(t *testing.T, db *gorm.DB, lead *models.Lead) {
	t.Helper()
	require.NoError(t, db.Create(lead).Error)
}

func TestCreateLeadDefaults(t *testing.T) {
	testutil.SetupDB(t)
	router := setupRouter()

	w := doRequest(router, "POST", "/leads", `{"firstName":"Jane","lastName":"Doe","leadType":"PURCHASE"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var lead models.Lead
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lead))
	assert.Equal(t, "Jane", lead.FirstName)
	assert.Equal(t, models.StageNew, lead.Stage)
	assert.Equal(t, models.AppStatusNotStarted, lead.ApplicationStatus)
	assert.Equal(t, models.LeadTypePurchase, lead.LeadType)
	assert.Equal(t, models.SourceTypeOther, lead.SourceType)
	assert.Nil(t, lead.Email)
}

func TestCreateLeadValidation(t *testing.T) {
	testutil.SetupDB(t)
	router := setupRouter()

	cases := []struct {
		name string
		body string
	}{
		{"missing first name", `{"lastName":"Doe"}`},
		{"missing last name", `{"firstName":"Jane"}`},
		{"bad email", `{"firstName":"Jane","lastName":"Doe","email":"not-an-email"}`},
		{"bad lead type", `{"firstName":"Jane","lastName":"Doe","leadType":"CONDO"}`},
		{"bad source type", `{"firstName":"Jane","lastName":"Doe","sourceType":"CARRIER_PIGEON"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(router, "POST", "/leads", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	var count int64
	utils.DB.Model(&models.Lead{}).Count(&count)
	assert.Equal(t, int64(0), count, "validation failures must not write")
}

func TestCreateLeadUnknownReferrer(t *testing.T) {
	testutil.SetupDB(t)
	router := setupRouter()

	w := doRequest(router, "POST", "/leads", `{"firstName":"Jane","lastName":"Doe","sourceType":"BANK","referrerId":42}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateLeadPartial(t *testing.T) {
	db := testutil.SetupDB(t)
	router := setupRouter()

	lead := models.Lead{FirstName: "Jane", LastName: "Doe", SourceType: models.SourceTypeOther,
		LeadType: models.LeadTypePurchase, Stage: models.StageNew, ApplicationStatus: models.AppStatusNotStarted}
	createLead(t, db, &lead)

	w := doRequest(router, "PATCH", fmt.Sprintf("/leads/%d", lead.ID),
		`{"applicationStatus":"IN_PROGRESS","loanAmount":450000,"creditScore":712}`)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Lead
	require.NoError(t, db.First(&updated, lead.ID).Error)
	assert.Equal(t, models.AppStatusInProgress, updated.ApplicationStatus)
	require.NotNil(t, updated.LoanAmount)
	assert.Equal(t, 450000.0, *updated.LoanAmount)
	require.NotNil(t, updated.CreditScore)
	assert.Equal(t, 712, *updated.CreditScore)
	assert.Equal(t, "Jane", updated.FirstName, "untouched fields survive a partial update")
	assert.Equal(t, models.StageNew, updated.Stage)
}

func TestUpdateLeadStage(t *testing.T) {
	db := testutil.SetupDB(t)
	router := setupRouter()

	lead := models.Lead{FirstName: "Jane", LastName: "Doe", SourceType: models.SourceTypeOther,
		LeadType: models.LeadTypePurchase, Stage: models.StageNew, ApplicationStatus: models.AppStatusNotStarted}
	createLead(t, db, &lead)

	w := doRequest(router, "PATCH", fmt.Sprintf("/leads/%d", lead.ID), `{"stage":"DOCS_REQUESTED"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Lead
	require.NoError(t, db.First(&updated, lead.ID).Error)
	assert.Equal(t, models.StageDocsRequested, updated.Stage)

	w = doRequest(router, "PATCH", fmt.Sprintf("/leads/%d", lead.ID), `{"stage":"SIDEWAYS"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateLeadNotFound(t *testing.T) {
	testutil.SetupDB(t)
	router := setupRouter()

	w := doRequest(router, "PATCH", "/leads/999", `{"firstName":"Jane"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteLeadCascades(t *testing.T) {
	db := testutil.SetupDB(t)
	router := setupRouter()

	lead := models.Lead{FirstName: "Jane", LastName: "Doe", SourceType: models.SourceTypeOther,
		LeadType: models.LeadTypePurchase, Stage: models.StageNew, ApplicationStatus: models.AppStatusNotStarted}
	createLead(t, db, &lead)

	require.NoError(t, db.Create(&models.Note{LeadID: lead.ID, Body: "called twice"}).Error)
	require.NoError(t, db.Create(&models.Task{LeadID: lead.ID, Title: "Chase NOA", Type: models.TaskTypeDocsChase, Status: models.TaskStatusOpen}).Error)
	require.NoError(t, db.Create(&models.EmailMessage{LeadID: lead.ID, To: "jane@example.com", Subject: "Docs", Body: "Please send", Status: models.EmailStatusSent}).Error)
	checklist := models.Checklist{LeadID: lead.ID, Title: "Purchase Docs", Status: models.ChecklistStatusOpen,
		Items: []models.ChecklistItem{
			{Label: "Pay stubs", Required: true, SortOrder: 1, Status: models.ChecklistItemPending},
			{Label: "Bank statements", Required: true, SortOrder: 2, Status: models.ChecklistItemReceived},
		}}
	require.NoError(t, db.Create(&checklist).Error)

	w := doRequest(router, "DELETE", fmt.Sprintf("/leads/%d", lead.ID), "")
	require.Equal(t, http.StatusOK, w.Code)

	for _, model := range []interface{}{
		&models.Lead{}, &models.Note{}, &models.Task{}, &models.EmailMessage{},
		&models.Checklist{}, &models.ChecklistItem{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Equal(t, int64(0), count, "expected no %T rows after cascade", model)
	}
}

func TestDeleteLeadNotFound(t *testing.T) {
	testutil.SetupDB(t)
	router := setupRouter()

	w := doRequest(router, "DELETE", "/leads/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetLeadsOrderingAndFilter(t *testing.T) {
	db := testutil.SetupDB(t)
	router := setupRouter()

	base := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	specs := []struct {
		first  string
		status string
		offset time.Duration
	}{
		{"Old", models.AppStatusNotStarted, 0},
		{"Mid", models.AppStatusInProgress, time.Hour},
		{"New", models.AppStatusInProgress, 2 * time.Hour},
	}
	for _, s := range specs {
		lead := models.Lead{FirstName: s.first, LastName: "Lead", SourceType: models.SourceTypeOther,
			LeadType: models.LeadTypePurchase, Stage: models.StageNew, ApplicationStatus: s.status,
			CreatedAt: base.Add(s.offset), UpdatedAt: base.Add(s.offset)}
		createLead(t, db, &lead)
	}

	w := doRequest(router, "GET", "/leads", "")
	require.Equal(t, http.StatusOK, w.Code)
	var listed []models.Lead
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 3)
	assert.Equal(t, "New", listed[0].FirstName, "most recently updated first")
	assert.Equal(t, "Old", listed[2].FirstName)

	w = doRequest(router, "GET", "/leads?applicationStatus=IN_PROGRESS", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Len(t, listed, 2)
}

func TestGetLeadsIncludeSummaries(t *testing.T) {
	db := testutil.SetupDB(t)
	router := setupRouter()

	lead := models.Lead{FirstName: "Jane", LastName: "Doe", SourceType: models.SourceTypeOther,
		LeadType: models.LeadTypePurchase, Stage: models.StageNew, ApplicationStatus: models.AppStatusNotStarted}
	createLead(t, db, &lead)

	base := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		due := base.Add(time.Duration(i) * 24 * time.Hour)
		require.NoError(t, db.Create(&models.Task{LeadID: lead.ID, Title: fmt.Sprintf("Task %d", i),
			Type: models.TaskTypeCall, Status: models.TaskStatusOpen, DueAt: &due}).Error)
	}
	require.NoError(t, db.Create(&models.Task{LeadID: lead.ID, Title: "Done already",
		Type: models.TaskTypeCall, Status: models.TaskStatusDone}).Error)
	for i := 0; i < 4; i++ {
		require.NoError(t, db.Create(&models.Note{LeadID: lead.ID, Body: fmt.Sprintf("Note %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Hour)}).Error)
	}

	w := doRequest(router, "GET", "/leads?include=tasks,notes", "")
	require.Equal(t, http.StatusOK, w.Code)
	var listed []models.Lead
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)

	require.Len(t, listed[0].Tasks, 3, "list view carries only the 3 nearest open tasks")
	assert.Equal(t, "Task 0", listed[0].Tasks[0].Title)
	for _, task := range listed[0].Tasks {
		assert.Equal(t, models.TaskStatusOpen, task.Status)
	}

	require.Len(t, listed[0].Notes, 2, "list view carries only the 2 newest notes")
	assert.Equal(t, "Note 3", listed[0].Notes[0].Body)
}

func TestGetLeadDetail(t *testing.T) {
	db := testutil.SetupDB(t)
	router := setupRouter()

	lead := models.Lead{FirstName: "Jane", LastName: "Doe", SourceType: models.SourceTypeOther,
		LeadType: models.LeadTypePurchase, Stage: models.StageNew, ApplicationStatus: models.AppStatusNotStarted}
	createLead(t, db, &lead)

	base := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.Note{LeadID: lead.ID, Body: "ordinary", CreatedAt: base.Add(time.Hour)}).Error)
	require.NoError(t, db.Create(&models.Note{LeadID: lead.ID, Body: "pinned", Pinned: true, CreatedAt: base}).Error)
	checklist := models.Checklist{LeadID: lead.ID, Title: "Docs", Status: models.ChecklistStatusOpen,
		Items: []models.ChecklistItem{
			{Label: "Second", Required: true, SortOrder: 2, Status: models.ChecklistItemPending},
			{Label: "First", Required: true, SortOrder: 1, Status: models.ChecklistItemPending},
		}}
	require.NoError(t, db.Create(&checklist).Error)

	w := doRequest(router, "GET", fmt.Sprintf("/leads/%d", lead.ID), "")
	require.Equal(t, http.StatusOK, w.Code)

	var detail models.Lead
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	require.Len(t, detail.Notes, 2)
	assert.Equal(t, "pinned", detail.Notes[0].Body, "pinned notes first")
	require.Len(t, detail.Checklists, 1)
	require.Len(t, detail.Checklists[0].Items, 2)
	assert.Equal(t, "First", detail.Checklists[0].Items[0].Label, "items in sort order")
}

func TestGetLeadNotFound(t *testing.T) {
	testutil.SetupDB(t)
	router := setupRouter()

	w := doRequest(router, "GET", "/leads/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
