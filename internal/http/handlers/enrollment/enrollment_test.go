package enrollment

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/helpdesk-api/internal/service"
	"github.com/aanand-mishra/helpdesk-api/internal/store"
	"github.com/aanand-mishra/helpdesk-api/internal/utils/response"
)

func newTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()

	svc := service.NewEnrollment(store.New(store.Seed()), nil)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/enrollments", Enroll(svc))
	mux.HandleFunc("GET /api/enrollments/{courseCode}", Status(svc))
	mux.HandleFunc("DELETE /api/enrollments", Drop(svc))
	return mux
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var envelope response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return envelope
}

func TestEnrollHandlerSuccess(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/enrollments",
		strings.NewReader(`{"student_id": "s001", "course_code": "CSE101"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, response.StatusOK, envelope.Status)
	assert.Empty(t, envelope.Error)
}

func TestEnrollHandlerValidation(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/enrollments",
		strings.NewReader(`{"student_id": "s001"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, response.StatusError, envelope.Status)
	assert.Contains(t, envelope.Error, "CourseCode")
}

func TestEnrollHandlerEmptyBody(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/enrollments", strings.NewReader(""))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "request body is empty", envelope.Error)
}

func TestEnrollHandlerDuplicateConflict(t *testing.T) {
	router := newTestRouter(t)
	body := `{"student_id": "s001", "course_code": "CSE101"}`

	req := httptest.NewRequest(http.MethodPost, "/api/enrollments", strings.NewReader(body))
	router.ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodPost, "/api/enrollments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, response.StatusError, decodeEnvelope(t, rec).Status)
}

func TestStatusHandlerUnknownCourse(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/enrollments/NOPE999", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDropHandler(t *testing.T) {
	router := newTestRouter(t)
	body := `{"student_id": "s001", "course_code": "CSE101"}`

	req := httptest.NewRequest(http.MethodPost, "/api/enrollments", strings.NewReader(body))
	router.ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodDelete, "/api/enrollments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, response.StatusOK, decodeEnvelope(t, rec).Status)
}
