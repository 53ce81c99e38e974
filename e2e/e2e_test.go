//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"gym-membership-go/internal/client"
	"gym-membership-go/internal/config"
	"gym-membership-go/internal/db"
	memberdomain "gym-membership-go/internal/domain/member"
	memberrepo "gym-membership-go/internal/repository/member"
	"gym-membership-go/internal/transport/httpserver"
	"gym-membership-go/internal/transport/httpserver/handler"
	"gym-membership-go/internal/ui"
	"gym-membership-go/pkg/logger"
)

type testEnv struct {
	server *httptest.Server
	db     *gorm.DB
}

func setupE2E(t *testing.T) *testEnv {
	t.Helper()

	dsn := os.Getenv("E2E_DB_DSN")
	if dsn == "" {
		t.Skip("E2E_DB_DSN not set; skipping e2e tests")
	}

	cfg := config.Config{
		AllowedOrigins: []string{"*"},
		DB:             config.DBConfig{Driver: config.DriverPostgres, DSN: dsn},
	}
	log := logger.Discard()

	dbConn, err := db.Open(cfg.DB, log)
	if err != nil {
		t.Fatalf("db connect: %v", err)
	}

	if err := db.Migrate(dbConn); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if err := cleanDB(dbConn); err != nil {
		t.Fatalf("clean db: %v", err)
	}

	memberService := memberdomain.NewService(memberrepo.NewStore(dbConn))
	handlers := handler.New(memberService, log)

	router := httpserver.NewRouter(cfg, handlers, nil)
	server := httptest.NewServer(router)

	return &testEnv{server: server, db: dbConn}
}

func (e *testEnv) Close() {
	e.server.Close()
	_ = db.Close(e.db)
}

func cleanDB(dbConn *gorm.DB) error {
	return dbConn.WithContext(context.Background()).Exec(
		"TRUNCATE TABLE members RESTART IDENTITY",
	).Error
}

func requestJSON(t *testing.T, client *http.Client, method, url string, payload interface{}) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}

	return resp, respBody
}

type createResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

type changesResponse struct {
	Success bool  `json:"success"`
	Changes int64 `json:"changes"`
}

type memberResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Age            string    `json:"age"`
	MembershipType string    `json:"membership_type"`
	CreatedAt      time.Time `json:"created_at"`
}

func TestE2EHealth(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	httpClient := &http.Client{Timeout: 5 * time.Second}

	resp, body := requestJSON(t, httpClient, http.MethodGet, env.server.URL+"/", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	if strings.TrimSpace(string(body)) != "Gym membership API is running" {
		t.Fatalf("unexpected body %q", string(body))
	}
}

func TestE2EMemberCRUD(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	httpClient := &http.Client{Timeout: 5 * time.Second}
	base := env.server.URL + "/api/members"

	resp, body := requestJSON(t, httpClient, http.MethodPost, base, map[string]interface{}{
		"name":            "Ana",
		"age":             31,
		"membership_type": "Monthly",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	var created createResponse
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("decode create: %v", err)
	}
	if !created.Success || created.ID != 1 {
		t.Fatalf("unexpected create response %+v", created)
	}

	resp, body = requestJSON(t, httpClient, http.MethodPost, base, map[string]string{"name": "Ben"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, httpClient, http.MethodGet, base, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	var members []memberResponse
	if err := json.Unmarshal(body, &members); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(members) != 2 || members[0].Name != "Ben" || members[1].Name != "Ana" {
		t.Fatalf("expected newest first, got %+v", members)
	}
	if members[1].Age != "31" {
		t.Fatalf("expected age stored as text, got %q", members[1].Age)
	}
	createdAt := members[1].CreatedAt

	resp, body = requestJSON(t, httpClient, http.MethodPut, base+"/1", map[string]string{
		"name":            "Ana",
		"membership_type": "Annual",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	var changes changesResponse
	if err := json.Unmarshal(body, &changes); err != nil {
		t.Fatalf("decode update: %v", err)
	}
	if changes.Changes != 1 {
		t.Fatalf("expected 1 change, got %d", changes.Changes)
	}

	_, body = requestJSON(t, httpClient, http.MethodGet, base, nil)
	members = nil
	if err := json.Unmarshal(body, &members); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if members[1].MembershipType != "Annual" || members[1].Age != "" {
		t.Fatalf("expected full replacement, got %+v", members[1])
	}
	if !members[1].CreatedAt.Equal(createdAt) {
		t.Fatalf("created_at changed on update")
	}

	resp, body = requestJSON(t, httpClient, http.MethodPut, base+"/999", map[string]string{"name": "x"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	changes = changesResponse{}
	_ = json.Unmarshal(body, &changes)
	if changes.Changes != 0 {
		t.Fatalf("expected 0 changes for missing id, got %d", changes.Changes)
	}

	resp, body = requestJSON(t, httpClient, http.MethodDelete, base+"/1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	changes = changesResponse{}
	_ = json.Unmarshal(body, &changes)
	if changes.Changes != 1 {
		t.Fatalf("expected 1 change, got %d", changes.Changes)
	}

	resp, body = requestJSON(t, httpClient, http.MethodDelete, base+"/1", nil)
	changes = changesResponse{}
	_ = json.Unmarshal(body, &changes)
	if resp.StatusCode != http.StatusOK || changes.Changes != 0 {
		t.Fatalf("expected idempotent delete, got %d: %s", resp.StatusCode, string(body))
	}
}

func TestE2EConsoleControllerFlow(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	ctx := context.Background()
	ctrl := ui.NewController(client.New(env.server.URL+"/api"), func(string) bool { return true }, logger.Discard())

	ctrl.SetView(ctx, ui.ViewForm)
	for field, value := range map[string]string{
		"name":            "Kai",
		"email":           "kai@example.com",
		"membership_type": "Monthly",
		"country":         "NZ",
	} {
		if err := ctrl.SetField(field, value); err != nil {
			t.Fatalf("set %s: %v", field, err)
		}
	}
	if err := ctrl.SaveMember(ctx); err != nil {
		t.Fatalf("save: %v", err)
	}
	for _, name := range []string{"Lee", "Mo"} {
		ctrl.ResetForm()
		_ = ctrl.SetField("name", name)
		_ = ctrl.SetField("email", strings.ToLower(name)+"@example.com")
		_ = ctrl.SetField("membership_type", "Annual")
		_ = ctrl.SetField("country", "NZ")
		if err := ctrl.SaveMember(ctx); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
	}

	state := ctrl.State()
	if state.View != ui.ViewList || len(state.Members) != 3 {
		t.Fatalf("expected list of 3, got view %s with %d", state.View, len(state.Members))
	}

	ctrl.ToggleSelectAll()
	ctrl.ToggleSelection(state.Members[0].ID)
	if err := ctrl.DeleteSelected(ctx); err != nil {
		t.Fatalf("delete selected: %v", err)
	}

	state = ctrl.State()
	if state.Message != "Selected members deleted." {
		t.Fatalf("unexpected message %q", state.Message)
	}
	if len(state.Members) != 1 || state.Members[0].Name != "Mo" {
		t.Fatalf("expected only Mo left, got %+v", state.Members)
	}
}
