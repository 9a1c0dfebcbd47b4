package referrers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Parmjot23/mortgageHelper/models"
	"github.com/Parmjot23/mortgageHelper/testutil"
	"github.com/Parmjot23/mortgageHelper/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter() *gin.Engine {
	router := gin.New()
	RegisterReferrersRoutes(router.Group("/"))
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

func TestCreateReferrer(t *testing.T) {
	testutil.SetupDB(t)
	router := setupRouter()

	w := doRequest(router, "POST", "/referrers", `{"name":"ABC Bank"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Referrer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "ABC Bank", created.Name)
	assert.True(t, created.IsActive)
}

func TestCreateReferrerValidation(t *testing.T) {
	testutil.SetupDB(t)
	router := setupRouter()

	w := doRequest(router, "POST", "/referrers", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	long := strings.Repeat("x", 101)
	w = doRequest(router, "POST", "/referrers", `{"name":"`+long+`"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateReferrerDuplicateActive(t *testing.T) {
	testutil.SetupDB(t)
	router := setupRouter()

	w := doRequest(router, "POST", "/referrers", `{"name":"ABC Bank"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, "POST", "/referrers", `{"name":"ABC Bank"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateReferrerReactivatesInactive(t *testing.T) {
	testutil.SetupDB(t)
	router := setupRouter()

	w := doRequest(router, "POST", "/referrers", `{"name":"ABC Bank"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var original models.Referrer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &original))

	w = doRequest(router, "DELETE", "/referrers/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Referrer
	require.NoError(t, utils.DB.First(&stored, original.ID).Error)
	assert.False(t, stored.IsActive, "delete should deactivate, not remove")

	// Registering the same name again must revive the existing row.
	w = doRequest(router, "POST", "/referrers", `{"name":"ABC Bank"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var revived models.Referrer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &revived))
	assert.Equal(t, original.ID, revived.ID)
	assert.True(t, revived.IsActive)

	var count int64
	utils.DB.Model(&models.Referrer{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGetReferrersActiveOnlyAndOrdering(t *testing.T) {
	db := testutil.SetupDB(t)
	router := setupRouter()

	require.NoError(t, db.Create(&models.Referrer{Name: "Zed Bank", IsActive: true}).Error)
	require.NoError(t, db.Create(&models.Referrer{Name: "Acme Credit", IsActive: true}).Error)
	require.NoError(t, db.Create(&models.Referrer{Name: "Gone Bank", IsActive: false}).Error)

	w := doRequest(router, "GET", "/referrers", "")
	require.Equal(t, http.StatusOK, w.Code)

	var listed []models.Referrer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, "Acme Credit", listed[0].Name)
	assert.Equal(t, "Zed Bank", listed[1].Name)

	w = doRequest(router, "GET", "/referrers?all=true", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Len(t, listed, 3)
}

func TestUpdateReferrerDuplicateName(t *testing.T) {
	db := testutil.SetupDB(t)
	router := setupRouter()

	require.NoError(t, db.Create(&models.Referrer{Name: "ABC Bank", IsActive: true}).Error)
	target := models.Referrer{Name: "Acme Credit", IsActive: true}
	require.NoError(t, db.Create(&target).Error)

	// Renaming onto another referrer's name is a conflict, not a 500.
	w := doRequest(router, "PATCH", "/referrers/2", `{"name":"ABC Bank"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	var stored models.Referrer
	require.NoError(t, db.First(&stored, target.ID).Error)
	assert.Equal(t, "Acme Credit", stored.Name)

	// Re-submitting its own name is fine.
	w = doRequest(router, "PATCH", "/referrers/2", `{"name":"Acme Credit"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateReferrerNotFound(t *testing.T) {
	testutil.SetupDB(t)
	router := setupRouter()

	w := doRequest(router, "PATCH", "/referrers/999", `{"name":"New Name"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetReferrerLeadsFilters(t *testing.T) {
	db := testutil.SetupDB(t)
	router := setupRouter()

	referrer := models.Referrer{Name: "ABC Bank", IsActive: true}
	require.NoError(t, db.Create(&referrer).Error)

	jan := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	jun := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	email := "jane@example.com"
	phone := "416-555-0101"

	leads := []models.Lead{
		{FirstName: "Jane", LastName: "Doe", Email: &email, Phone: &phone, SourceType: models.SourceTypeBank,
			ReferrerID: &referrer.ID, LeadType: models.LeadTypePurchase, Stage: models.StageNew,
			ApplicationStatus: models.AppStatusInProgress, CreatedAt: jan},
		{FirstName: "Bob", LastName: "Smith", SourceType: models.SourceTypeBank,
			ReferrerID: &referrer.ID, LeadType: models.LeadTypeRefinance, Stage: models.StageNew,
			ApplicationStatus: models.AppStatusNotStarted, CreatedAt: jun},
	}
	for i := range leads {
		require.NoError(t, db.Create(&leads[i]).Error)
	}

	// No filters returns both plus metadata.
	w := doRequest(router, "GET", "/referrers/1/leads", "")
	require.Equal(t, http.StatusOK, w.Code)
	var out struct {
		Referrer   models.Referrer `json:"referrer"`
		Leads      []models.Lead   `json:"leads"`
		TotalCount int             `json:"totalCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "ABC Bank", out.Referrer.Name)
	assert.Equal(t, 2, out.TotalCount)

	// Status filter.
	w = doRequest(router, "GET", "/referrers/1/leads?status=IN_PROGRESS", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Equal(t, 1, out.TotalCount)
	assert.Equal(t, "Jane", out.Leads[0].FirstName)

	// Date range excludes the January lead.
	w = doRequest(router, "GET", "/referrers/1/leads?startDate=2025-03-01T00:00:00Z", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Equal(t, 1, out.TotalCount)
	assert.Equal(t, "Bob", out.Leads[0].FirstName)

	// Case-insensitive name search.
	w = doRequest(router, "GET", "/referrers/1/leads?search=JANE", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Equal(t, 1, out.TotalCount)
	assert.Equal(t, "Jane", out.Leads[0].FirstName)

	// Phone substring search.
	w = doRequest(router, "GET", "/referrers/1/leads?search=555-0101", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, 1, out.TotalCount)

	// Unknown referrer.
	w = doRequest(router, "GET", "/referrers/999/leads", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
