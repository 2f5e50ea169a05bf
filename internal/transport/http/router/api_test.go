package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"legal-case-api/internal/domain"
	"legal-case-api/pkg/utils"
)

func setupEngine(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Client{}, &domain.Case{}, &domain.Document{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewAPIEngine(zap.NewNop(), db), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r, _ := setupEngine(t)
	w := doJSON(t, r, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestClientCaseEndToEnd(t *testing.T) {
	r, _ := setupEngine(t)

	// Create client
	w := doJSON(t, r, http.MethodPost, "/api/clients",
		`{"name":"Acme","contact_person":"Jo","phone":"555","email":"a@b.c"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("client create: expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	var client struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &client); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if client.ID == 0 {
		t.Fatal("expected integer id")
	}

	// Create case without status: the boundary default applies
	w = doJSON(t, r, http.MethodPost, "/api/cases",
		`{"client_id":`+strconv.Itoa(int(client.ID))+`,"case_name":"Doe v. Roe"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("case create: expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	var cs struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
		Client struct {
			Name string `json:"name"`
		} `json:"client"`
		Documents []json.RawMessage `json:"documents"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &cs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cs.Status != "open" {
		t.Fatalf("expected default status open, got %q", cs.Status)
	}
	if cs.Client.Name != "Acme" {
		t.Fatalf("expected embedded client Acme, got %q", cs.Client.Name)
	}
	if cs.Documents == nil {
		t.Fatalf("documents must serialize as [], body=%s", w.Body.String())
	}

	// Attach a document, then re-fetch the case
	w = doJSON(t, r, http.MethodPost, "/api/documents",
		`{"case_id":`+strconv.Itoa(int(cs.ID))+`,"file_path":"/files/brief.pdf","description":"opening brief"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("document create: expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodGet, "/api/cases/"+strconv.Itoa(int(cs.ID)), "")
	if w.Code != http.StatusOK {
		t.Fatalf("case get: expected 200 got %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &cs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(cs.Documents) != 1 {
		t.Fatalf("expected 1 embedded document, got %d", len(cs.Documents))
	}

	// Update
	w = doJSON(t, r, http.MethodPut, "/api/cases/"+strconv.Itoa(int(cs.ID)),
		`{"client_id":`+strconv.Itoa(int(client.ID))+`,"case_name":"Doe v. Roe","status":"closed"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("case update: expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"status":"closed"`) {
		t.Fatalf("status not updated: %s", w.Body.String())
	}

	// Deleting an id that never existed is still 204
	w = doJSON(t, r, http.MethodDelete, "/api/cases/987654", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", w.Code)
	}

	// Real delete, then 404
	w = doJSON(t, r, http.MethodDelete, "/api/cases/"+strconv.Itoa(int(cs.ID)), "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/api/cases/"+strconv.Itoa(int(cs.ID)), "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"detail":"Case not found"`) {
		t.Fatalf("unexpected 404 body: %s", w.Body.String())
	}
}

func TestUserEndpointsNeverExposePassword(t *testing.T) {
	r, db := setupEngine(t)

	w := doJSON(t, r, http.MethodPost, "/api/users",
		`{"username":"jdoe","password":"hunter2","role":"attorney"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "password") || strings.Contains(w.Body.String(), "hunter2") {
		t.Fatalf("credential leaked: %s", w.Body.String())
	}
	var u struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &u); err != nil {
		t.Fatalf("decode: %v", err)
	}

	// 存库的是 bcrypt 哈希，不是明文
	var stored domain.User
	if err := db.First(&stored, "id = ?", u.ID).Error; err != nil {
		t.Fatalf("load stored user: %v", err)
	}
	if stored.Password == "hunter2" || !utils.CheckPassword("hunter2", stored.Password) {
		t.Fatalf("password not hashed at the boundary: %q", stored.Password)
	}

	w = doJSON(t, r, http.MethodGet, "/api/users/"+strconv.Itoa(int(u.ID)), "")
	if w.Code != http.StatusOK || strings.Contains(w.Body.String(), "password") {
		t.Fatalf("get leaked credential: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/users/9999", "")
	if w.Code != http.StatusNotFound || !strings.Contains(w.Body.String(), "User not found") {
		t.Fatalf("expected 404 User not found, got %d %s", w.Code, w.Body.String())
	}
}

func TestValidationStaysAtTheBoundary(t *testing.T) {
	r, db := setupEngine(t)

	// Malformed payload → 400, the service layer is never reached
	w := doJSON(t, r, http.MethodPost, "/api/cases", `{"case_name":"no client"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d body=%s", w.Code, w.Body.String())
	}
	var count int64
	db.Model(&domain.Case{}).Count(&count)
	if count != 0 {
		t.Fatalf("invalid payload reached the store: %d rows", count)
	}

	// Non-integer id → 400
	w = doJSON(t, r, http.MethodGet, "/api/clients/abc", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}

	// Duplicate username: no pre-check, store error surfaces as 500
	w = doJSON(t, r, http.MethodPost, "/api/users", `{"username":"dup","password":"x","role":"admin"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("first user: expected 201 got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, "/api/users", `{"username":"dup","password":"y","role":"admin"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("duplicate username: expected 500 got %d body=%s", w.Code, w.Body.String())
	}
}
