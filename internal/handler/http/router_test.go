package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/hrms-labs/hrms-backend-go/internal/config"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/dashboard"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/employee_dashboard"
	"github.com/hrms-labs/hrms-backend-go/internal/fixtures"
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/jwt"
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/session"
	"github.com/hrms-labs/hrms-backend-go/internal/repository/memory"
	authService "github.com/hrms-labs/hrms-backend-go/internal/service/auth"
	dashboardService "github.com/hrms-labs/hrms-backend-go/internal/service/dashboard"
	departmentService "github.com/hrms-labs/hrms-backend-go/internal/service/department"
	employeeService "github.com/hrms-labs/hrms-backend-go/internal/service/employee"
	employeeDashboardService "github.com/hrms-labs/hrms-backend-go/internal/service/employee_dashboard"
	leaveService "github.com/hrms-labs/hrms-backend-go/internal/service/leave"
	payrollService "github.com/hrms-labs/hrms-backend-go/internal/service/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	handlerTestSecret     = "test-secret-key-for-jwt"
	handlerTestAccessExp  = "1h"
	handlerTestRefreshExp = "24h"
)

// newTestRouter builds the full API over seeded in-memory stores.
func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	ctx := context.Background()

	userRepo := memory.NewUserStore()
	employeeRepo := memory.NewEmployeeStore()
	departmentRepo := memory.NewDepartmentStore(employeeRepo)
	leaveRepo := memory.NewLeaveRequestStore()
	payrollRepo := memory.NewPayrollStore()

	require.NoError(t, fixtures.Seed(ctx, userRepo, departmentRepo, employeeRepo, leaveRepo, payrollRepo))

	sessions, err := session.NewFileStorage(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)

	jwtService := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp, handlerTestRefreshExp)
	authSvc := authService.NewAuthService(userRepo, jwtService, sessions, 0)
	entitlements := config.LeaveConfig{VacationDays: 15, SickDays: 10, PersonalDays: 5}

	return NewRouter(
		jwtService,
		employeeRepo,
		NewAuthHandler(authSvc, jwtService),
		NewEmployeeHandler(employeeService.NewEmployeeService(employeeRepo, departmentRepo)),
		NewDepartmentHandler(departmentService.NewDepartmentService(departmentRepo, employeeRepo)),
		NewLeaveHandler(leaveService.NewLeaveService(leaveRepo, employeeRepo, userRepo)),
		NewPayrollHandler(payrollService.NewPayrollService(payrollRepo, employeeRepo, userRepo)),
		NewDashboardHandler(
			dashboardService.NewDashboardService(employeeRepo, departmentRepo, leaveRepo, payrollRepo, dashboard.StaticRatingProvider{Rating: 4.2}),
			employeeDashboardService.NewEmployeeDashboardService(employeeRepo, leaveRepo, payrollRepo, employee_dashboard.StaticAttendanceProvider{Present: 20, Absent: 2, Late: 1}, entitlements),
		),
	)
}

func doJSON(t *testing.T, router *chi.Mux, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var envelope struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success, "expected success envelope, got: %s", rec.Body.String())
	return envelope.Data
}

func loginToken(t *testing.T, router *chi.Mux, email, password string) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	data := decodeData(t, rec)
	token, _ := data["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestLoginEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    fixtures.AdminEmail,
		"password": fixtures.AdminPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeData(t, rec)
	assert.NotEmpty(t, data["access_token"])
	assert.NotEmpty(t, data["refresh_token"])

	user, ok := data["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "admin", user["role"])
}

func TestLoginEndpoint_BadCredentials(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    fixtures.AdminEmail,
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectedEndpoint_NoToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/employees/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminEndpoint_EmployeeForbidden(t *testing.T) {
	router := newTestRouter(t)
	token := loginToken(t, router, fixtures.JaneEmail, fixtures.JanePassword)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/dashboard/admin", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/departments/", token, map[string]string{
		"name": "Shadow IT",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestListEmployeesEndpoint(t *testing.T) {
	router := newTestRouter(t)
	token := loginToken(t, router, fixtures.JaneEmail, fixtures.JanePassword)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/employees/", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data, 3)
}

func TestAdminDashboardEndpoint(t *testing.T) {
	router := newTestRouter(t)
	token := loginToken(t, router, fixtures.AdminEmail, fixtures.AdminPassword)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/dashboard/admin", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeData(t, rec)
	assert.Equal(t, float64(3), data["total_employees"])
	assert.Equal(t, float64(3), data["active_employees"])
	assert.Equal(t, float64(1), data["pending_leave_requests"])
	assert.Equal(t, float64(0), data["pending_payroll"])
	assert.Equal(t, float64(4), data["department_count"])
	assert.Equal(t, 4.2, data["average_rating"])
}

func TestLeaveApprovalFlow(t *testing.T) {
	router := newTestRouter(t)
	adminToken := loginToken(t, router, fixtures.AdminEmail, fixtures.AdminPassword)
	employeeToken := loginToken(t, router, fixtures.JaneEmail, fixtures.JanePassword)

	// Find Jane's employee id via her employee code.
	rec := doJSON(t, router, http.MethodGet, "/api/v1/employees/", employeeToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listEnvelope struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listEnvelope))
	var janeID string
	for _, emp := range listEnvelope.Data {
		if emp["employee_code"] == fixtures.JaneEmployeeCode {
			janeID, _ = emp["id"].(string)
		}
	}
	require.NotEmpty(t, janeID)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/leave-requests/", employeeToken, map[string]interface{}{
		"employee_id": janeID,
		"type":        "personal",
		"start_date":  "2024-09-02",
		"end_date":    "2024-09-03",
		"days":        2,
		"reason":      "Moving apartments",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeData(t, rec)
	requestID, _ := created["id"].(string)
	require.NotEmpty(t, requestID)
	assert.Equal(t, "pending", created["status"])

	// An employee cannot approve.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/leave-requests/"+requestID+"/approve", employeeToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// The admin can.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/leave-requests/"+requestID+"/approve", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	approved := decodeData(t, rec)
	assert.Equal(t, "approved", approved["status"])

	// A second approval is refused.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/leave-requests/"+requestID+"/approve", adminToken, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestEmployeeDashboardEndpoint(t *testing.T) {
	router := newTestRouter(t)
	token := loginToken(t, router, fixtures.JaneEmail, fixtures.JanePassword)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/employees/", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listEnvelope struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listEnvelope))
	var janeID string
	for _, emp := range listEnvelope.Data {
		if emp["employee_code"] == fixtures.JaneEmployeeCode {
			janeID, _ = emp["id"].(string)
		}
	}
	require.NotEmpty(t, janeID)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/dashboard/employee/"+janeID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)

	balance, ok := data["leave_balance"].(map[string]interface{})
	require.True(t, ok)
	// Jane's only seeded request is still pending, so nothing is consumed.
	assert.Equal(t, float64(15), balance["vacation"])
	assert.Equal(t, float64(10), balance["sick"])
	assert.Equal(t, float64(5), balance["personal"])

	assert.Equal(t, float64(1), data["pending_requests"])

	payslip, ok := data["last_payslip"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(5), payslip["month"])
	assert.Equal(t, "paid", payslip["status"])
}

func findEmployeeID(t *testing.T, router *chi.Mux, token, employeeCode string) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodGet, "/api/v1/employees/", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	for _, emp := range envelope.Data {
		if emp["employee_code"] == employeeCode {
			id, _ := emp["id"].(string)
			require.NotEmpty(t, id)
			return id
		}
	}
	t.Fatalf("employee %s not found", employeeCode)
	return ""
}

func TestPerEmployeeRoutes_SelfOrAdminOnly(t *testing.T) {
	router := newTestRouter(t)
	adminToken := loginToken(t, router, fixtures.AdminEmail, fixtures.AdminPassword)
	janeToken := loginToken(t, router, fixtures.JaneEmail, fixtures.JanePassword)
	mikeToken := loginToken(t, router, fixtures.MikeEmail, fixtures.MikePassword)

	janeID := findEmployeeID(t, router, janeToken, fixtures.JaneEmployeeCode)

	// Another employee cannot read Jane's dashboard, payroll or leave history.
	for _, path := range []string{
		"/api/v1/dashboard/employee/" + janeID,
		"/api/v1/payroll/employee/" + janeID,
		"/api/v1/leave-requests/employee/" + janeID,
	} {
		rec := doJSON(t, router, http.MethodGet, path, mikeToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code, path)

		rec = doJSON(t, router, http.MethodGet, path, janeToken, nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)

		rec = doJSON(t, router, http.MethodGet, path, adminToken, nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestDeleteDepartmentInUseEndpoint(t *testing.T) {
	router := newTestRouter(t)
	token := loginToken(t, router, fixtures.AdminEmail, fixtures.AdminPassword)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/departments/", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listEnvelope struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listEnvelope))

	var engineeringID, financeID string
	for _, dept := range listEnvelope.Data {
		switch dept["name"] {
		case "Engineering":
			engineeringID, _ = dept["id"].(string)
		case "Finance":
			financeID, _ = dept["id"].(string)
		}
	}
	require.NotEmpty(t, engineeringID)
	require.NotEmpty(t, financeID)

	// Engineering has seeded employees, Finance has none.
	rec = doJSON(t, router, http.MethodDelete, "/api/v1/departments/"+engineeringID, token, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/departments/"+financeID, token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRefreshAndLogoutEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    fixtures.AdminEmail,
		"password": fixtures.AdminPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	refreshToken, _ := data["refresh_token"].(string)
	require.NotEmpty(t, refreshToken)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/refresh", "", map[string]string{
		"refresh_token": refreshToken,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	refreshed := decodeData(t, rec)
	assert.NotEmpty(t, refreshed["access_token"])

	// Logout with the cookie revokes the refresh token.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: refreshToken})
	logoutRec := httptest.NewRecorder()
	router.ServeHTTP(logoutRec, req)
	require.Equal(t, http.StatusOK, logoutRec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/refresh", "", map[string]string{
		"refresh_token": refreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPayrollValidationEndpoint(t *testing.T) {
	router := newTestRouter(t)
	token := loginToken(t, router, fixtures.AdminEmail, fixtures.AdminPassword)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/employees/", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listEnvelope struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listEnvelope))
	employeeID, _ := listEnvelope.Data[0]["id"].(string)
	require.NotEmpty(t, employeeID)

	// gross != base + allowances + overtime + bonus
	rec = doJSON(t, router, http.MethodPost, "/api/v1/payroll/", token, map[string]interface{}{
		"employee_id":    employeeID,
		"month":          6,
		"year":           2024,
		"base_salary":    "7000",
		"allowances":     "500",
		"deductions":     "200",
		"overtime":       "0",
		"bonus":          "0",
		"gross_pay":      "9999",
		"net_pay":        "9799",
		"tax_deductions": "0",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
}
