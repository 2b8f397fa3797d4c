package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfoliobook/internal/db/models/postgres/public/model"
	"portfoliobook/internal/repository"
	mock_repository "portfoliobook/internal/repository/mocks"
	"portfoliobook/internal/service"
	mock_service "portfoliobook/internal/service/mocks"
	"portfoliobook/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testJwtSecret = "test-admin-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type testApi struct {
	handler      ApiHandler
	router       *gin.Engine
	intake       *mock_service.MockIntakeService
	mail         *mock_service.MockMailService
	consultation *mock_repository.MockConsultationRepository
}

func newTestApi(t *testing.T) testApi {
	t.Helper()
	ctrl := gomock.NewController(t)

	intake := mock_service.NewMockIntakeService(ctrl)
	mail := mock_service.NewMockMailService(ctrl)
	consultation := mock_repository.NewMockConsultationRepository(ctrl)

	handler := ApiHandler{
		IntakeService:          intake,
		MailService:            mail,
		ConsultationRepository: consultation,
		JwtDecodeToken:         testJwtSecret,
	}

	return testApi{
		handler:      handler,
		router:       handler.InitializeRouterEngine(),
		intake:       intake,
		mail:         mail,
		consultation: consultation,
	}
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testJwtSecret))
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
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
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func sampleConsultation() model.Consultation {
	return model.Consultation{
		ID:                7,
		Name:              "Ada Lovelace",
		Email:             "ada@example.com",
		Phone:             "+15550100",
		Company:           "Analytical Engines",
		Role:              "CTO",
		About:             "Building a compute platform",
		Goals:             "Scale strategy",
		PreferredDateTime: "2026-09-15T14:00",
		Status:            "new",
		Subscribed:        true,
		CreatedAt:         time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC),
	}
}

func TestScheduleConsultation(t *testing.T) {
	t.Run("returns submission summary on success", func(t *testing.T) {
		app := newTestApi(t)

		createdAt := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
		app.intake.EXPECT().
			Submit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, req service.SubmitConsultationRequest) (*service.SubmitConsultationResponse, error) {
				require.Equal(t, "Ada Lovelace", req.Name)
				require.Equal(t, "Ada@Example.com", req.Email)
				require.Equal(t, "call-15", req.BookingType)
				return &service.SubmitConsultationResponse{
					ID:                7,
					Email:             "ada@example.com",
					Status:            "new",
					PreferredDateTime: "2026-09-15T14:00",
					CreatedAt:         createdAt,
				}, nil
			})

		w := doRequest(t, app.router, http.MethodPost, "/consult", gin.H{
			"name":              "Ada Lovelace",
			"email":             "Ada@Example.com",
			"phone":             "+15550100",
			"company":           "Analytical Engines",
			"role":              "CTO",
			"about":             "Building a compute platform",
			"goals":             "Scale strategy",
			"preferredDateTime": "2026-09-15T14:00",
			"bookingType":       "call-15",
		}, "")

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		require.Equal(t, true, body["success"])
		require.Equal(t, "Consultation request submitted successfully", body["message"])

		data := body["data"].(map[string]interface{})
		require.Equal(t, float64(7), data["id"])
		require.Equal(t, "ada@example.com", data["email"])
		require.Equal(t, "new", data["status"])
		require.Equal(t, "2026-09-15T14:00", data["preferredDateTime"])
		require.Equal(t, "2026-09-01T10:30:00.000Z", data["createdAt"])
	})

	t.Run("maps validation errors to 400", func(t *testing.T) {
		app := newTestApi(t)
		app.intake.EXPECT().
			Submit(gomock.Any(), gomock.Any()).
			Return(nil, apperr.New(apperr.CodeValidation, "Missing required fields"))

		w := doRequest(t, app.router, http.MethodPost, "/consult", gin.H{"email": "ada@example.com"}, "")

		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		require.Equal(t, false, body["success"])
		require.Equal(t, "Missing required fields", body["message"])
	})

	t.Run("maps duplicate email to 409", func(t *testing.T) {
		app := newTestApi(t)
		app.intake.EXPECT().
			Submit(gomock.Any(), gomock.Any()).
			Return(nil, apperr.New(apperr.CodeConflict, "A consultation request already exists for this email. We'll reach out shortly."))

		w := doRequest(t, app.router, http.MethodPost, "/consult", gin.H{"email": "ada@example.com"}, "")

		require.Equal(t, http.StatusConflict, w.Code)
		require.Equal(t, "A consultation request already exists for this email. We'll reach out shortly.", decodeBody(t, w)["message"])
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		app := newTestApi(t)

		req := httptest.NewRequest(http.MethodPost, "/consult", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		app.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, "Invalid request body", decodeBody(t, w)["message"])
	})

	t.Run("hides uncoded errors behind a generic 500", func(t *testing.T) {
		app := newTestApi(t)
		app.intake.EXPECT().
			Submit(gomock.Any(), gomock.Any()).
			Return(nil, apperr.New(apperr.CodeInternal, "Failed to submit consultation request. Please try again later."))

		w := doRequest(t, app.router, http.MethodPost, "/consult", gin.H{"email": "ada@example.com"}, "")

		require.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGetAllConsultations(t *testing.T) {
	t.Run("requires a bearer token", func(t *testing.T) {
		app := newTestApi(t)

		w := doRequest(t, app.router, http.MethodGet, "/consult", nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		w = doRequest(t, app.router, http.MethodGet, "/consult", nil, "not-a-jwt")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects tokens signed with the wrong secret", func(t *testing.T) {
		app := newTestApi(t)

		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		}).SignedString([]byte("other-secret"))
		require.NoError(t, err)

		w := doRequest(t, app.router, http.MethodGet, "/consult", nil, forged)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("passes filters through and reports pagination", func(t *testing.T) {
		app := newTestApi(t)

		records := []model.Consultation{sampleConsultation(), sampleConsultation()}
		app.consultation.EXPECT().
			List(repository.ConsultationListFilter{
				Status:    "new",
				Search:    "ada",
				Limit:     2,
				Offset:    0,
				SortBy:    "email",
				SortOrder: "asc",
			}).
			Return(records, int64(5), nil)

		w := doRequest(t, app.router, http.MethodGet,
			"/consult?status=new&search=ada&limit=2&offset=0&sortBy=email&sortOrder=asc", nil, adminToken(t))

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		require.Equal(t, true, body["success"])
		require.Len(t, body["data"], 2)

		pagination := body["pagination"].(map[string]interface{})
		require.Equal(t, float64(5), pagination["total"])
		require.Equal(t, float64(2), pagination["limit"])
		require.Equal(t, float64(0), pagination["offset"])
		require.Equal(t, true, pagination["hasMore"])
	})

	t.Run("defaults limit, offset and sort", func(t *testing.T) {
		app := newTestApi(t)

		app.consultation.EXPECT().
			List(repository.ConsultationListFilter{
				Limit:     repository.DefaultListLimit,
				Offset:    0,
				SortBy:    "createdAt",
				SortOrder: "desc",
			}).
			Return([]model.Consultation{}, int64(0), nil)

		w := doRequest(t, app.router, http.MethodGet, "/consult", nil, adminToken(t))
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("hasMore is false on the final page", func(t *testing.T) {
		app := newTestApi(t)

		app.consultation.EXPECT().
			List(gomock.Any()).
			Return([]model.Consultation{sampleConsultation(), sampleConsultation()}, int64(5), nil)

		w := doRequest(t, app.router, http.MethodGet, "/consult?limit=2&offset=3", nil, adminToken(t))
		require.Equal(t, http.StatusOK, w.Code)

		pagination := decodeBody(t, w)["pagination"].(map[string]interface{})
		require.Equal(t, false, pagination["hasMore"])
	})

	t.Run("hasMore is false when offset passes the total", func(t *testing.T) {
		app := newTestApi(t)

		app.consultation.EXPECT().
			List(gomock.Any()).
			Return([]model.Consultation{}, int64(5), nil)

		w := doRequest(t, app.router, http.MethodGet, "/consult?limit=50&offset=50", nil, adminToken(t))
		require.Equal(t, http.StatusOK, w.Code)

		pagination := decodeBody(t, w)["pagination"].(map[string]interface{})
		require.Equal(t, false, pagination["hasMore"])
	})

	t.Run("echoes the clamped limit and offset it queried with", func(t *testing.T) {
		app := newTestApi(t)

		app.consultation.EXPECT().
			List(repository.ConsultationListFilter{
				Limit:     repository.DefaultListLimit,
				Offset:    0,
				SortBy:    "createdAt",
				SortOrder: "desc",
			}).
			Return([]model.Consultation{sampleConsultation()}, int64(1), nil)

		w := doRequest(t, app.router, http.MethodGet, "/consult?limit=0&offset=-3", nil, adminToken(t))
		require.Equal(t, http.StatusOK, w.Code)

		pagination := decodeBody(t, w)["pagination"].(map[string]interface{})
		require.Equal(t, float64(repository.DefaultListLimit), pagination["limit"])
		require.Equal(t, float64(0), pagination["offset"])
		require.Equal(t, false, pagination["hasMore"])
	})

	t.Run("rejects a non-numeric limit", func(t *testing.T) {
		app := newTestApi(t)

		w := doRequest(t, app.router, http.MethodGet, "/consult?limit=lots", nil, adminToken(t))
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("maps a rejected sort field to 400", func(t *testing.T) {
		app := newTestApi(t)

		app.consultation.EXPECT().
			List(gomock.Any()).
			Return(nil, int64(0), apperr.New(apperr.CodeValidation, "Invalid sort field"))

		w := doRequest(t, app.router, http.MethodGet, "/consult?sortBy=phone", nil, adminToken(t))
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetConsultationByID(t *testing.T) {
	t.Run("returns the record", func(t *testing.T) {
		app := newTestApi(t)

		record := sampleConsultation()
		app.consultation.EXPECT().FindByID(int32(7)).Return(&record, nil)

		w := doRequest(t, app.router, http.MethodGet, "/consult/7", nil, adminToken(t))
		require.Equal(t, http.StatusOK, w.Code)

		data := decodeBody(t, w)["data"].(map[string]interface{})
		require.Equal(t, float64(7), data["id"])
		require.Equal(t, "ada@example.com", data["email"])
		require.Equal(t, "2026-09-01T10:30:00.000Z", data["createdAt"])
		require.Nil(t, data["updatedAt"])
	})

	t.Run("rejects a non-numeric id", func(t *testing.T) {
		app := newTestApi(t)

		w := doRequest(t, app.router, http.MethodGet, "/consult/abc", nil, adminToken(t))
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, "Consultation ID is required", decodeBody(t, w)["message"])
	})

	t.Run("maps missing records to 404", func(t *testing.T) {
		app := newTestApi(t)

		app.consultation.EXPECT().
			FindByID(int32(99)).
			Return(nil, apperr.New(apperr.CodeNotFound, "Consultation not found"))

		w := doRequest(t, app.router, http.MethodGet, "/consult/99", nil, adminToken(t))
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, "Consultation not found", decodeBody(t, w)["message"])
	})

	t.Run("requires a bearer token", func(t *testing.T) {
		app := newTestApi(t)

		w := doRequest(t, app.router, http.MethodGet, "/consult/7", nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestUpdateConsultationStatus(t *testing.T) {
	t.Run("updates and returns the record", func(t *testing.T) {
		app := newTestApi(t)

		record := sampleConsultation()
		record.Status = "contacted"
		updatedAt := time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)
		record.UpdatedAt = &updatedAt

		app.consultation.EXPECT().
			UpdateStatus(int32(7), "contacted").
			Return(&record, nil)

		w := doRequest(t, app.router, http.MethodPatch, "/consult/7/status", gin.H{"status": "contacted"}, adminToken(t))
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		require.Equal(t, "Status updated successfully", body["message"])

		data := body["data"].(map[string]interface{})
		require.Equal(t, "contacted", data["status"])
		require.Equal(t, "2026-09-02T09:00:00.000Z", data["updatedAt"])
	})

	t.Run("requires a status in the body", func(t *testing.T) {
		app := newTestApi(t)

		w := doRequest(t, app.router, http.MethodPatch, "/consult/7/status", gin.H{}, adminToken(t))
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, "ID and status are required", decodeBody(t, w)["message"])
	})

	t.Run("maps an unknown status to 400", func(t *testing.T) {
		app := newTestApi(t)

		app.consultation.EXPECT().
			UpdateStatus(int32(7), "archived").
			Return(nil, apperr.New(apperr.CodeValidation, "Invalid status. Must be one of: new, contacted, scheduled, completed, cancelled"))

		w := doRequest(t, app.router, http.MethodPatch, "/consult/7/status", gin.H{"status": "archived"}, adminToken(t))
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
