package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pawpal/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	handler, _ := router.NewRouter(router.Options{})
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_DailyPlan(t *testing.T) {
	ts := newTestServer(t)

	// 1) Owner con 60 minutos diarios
	ownerID := createOwner(t, ts.URL, map[string]any{
		"name":              "Sarah",
		"available_minutes": 60,
	})

	// 2) Mascota del owner
	petID := createPet(t, ts.URL, ownerID, map[string]any{
		"name":    "Max",
		"species": "dog",
		"age":     3,
	})

	// 3) Tareas: dos requeridas (30 min) y dos opcionales que compiten por
	// los 30 restantes
	createTask(t, ts.URL, ownerID, map[string]any{
		"pet_id": petID, "name": "Feed", "category": "feeding",
		"duration_minutes": 10, "priority": 5, "required": true,
	})
	createTask(t, ts.URL, ownerID, map[string]any{
		"pet_id": petID, "name": "Walk", "category": "exercise",
		"duration_minutes": 20, "priority": 4, "required": true,
	})
	createTask(t, ts.URL, ownerID, map[string]any{
		"pet_id": petID, "name": "Play", "category": "play",
		"duration_minutes": 15, "priority": 3,
	})
	createTask(t, ts.URL, ownerID, map[string]any{
		"pet_id": petID, "name": "Groom", "category": "hygiene",
		"duration_minutes": 30, "priority": 5,
	})

	// 4) Generar plan
	st, body := doReq(t, ts.URL, "POST", "/owners/"+ownerID+"/plan", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 generate plan, got %d body=%s", st, string(body))
	}

	var plan struct {
		Scheduled []struct {
			Name string `json:"name"`
		} `json:"scheduled"`
		SkippedOptional []struct {
			Task struct {
				Name string `json:"name"`
			} `json:"task"`
			Reason string `json:"reason"`
		} `json:"skipped_optional"`
		TotalMinutesUsed int `json:"total_minutes_used"`
	}
	if err := json.Unmarshal(body, &plan); err != nil {
		t.Fatalf("unmarshal plan: %v body=%s", err, string(body))
	}

	want := []string{"Feed", "Walk", "Groom"}
	if len(plan.Scheduled) != len(want) {
		t.Fatalf("scheduled = %+v, want %v", plan.Scheduled, want)
	}
	for i, name := range want {
		if plan.Scheduled[i].Name != name {
			t.Fatalf("scheduled[%d] = %q, want %q", i, plan.Scheduled[i].Name, name)
		}
	}
	if plan.TotalMinutesUsed != 60 {
		t.Fatalf("total = %d, want 60", plan.TotalMinutesUsed)
	}
	if len(plan.SkippedOptional) != 1 ||
		plan.SkippedOptional[0].Task.Name != "Play" ||
		plan.SkippedOptional[0].Reason != "insufficient_time" {
		t.Fatalf("skipped = %+v, want Play/insufficient_time", plan.SkippedOptional)
	}
}

func TestHTTP_Plan_InfeasibleRequiredLoad(t *testing.T) {
	ts := newTestServer(t)

	ownerID := createOwner(t, ts.URL, map[string]any{
		"name":              "Sam",
		"available_minutes": 60,
	})
	createTask(t, ts.URL, ownerID, map[string]any{
		"name": "Long walk", "duration_minutes": 40, "priority": 5, "required": true,
	})
	createTask(t, ts.URL, ownerID, map[string]any{
		"name": "Vet visit", "duration_minutes": 30, "priority": 4, "required": true,
	})

	st, body := doReq(t, ts.URL, "POST", "/owners/"+ownerID+"/plan", nil)
	if st != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", st, string(body))
	}

	var resp struct {
		Error            string `json:"error"`
		Required         []any  `json:"required"`
		RequiredMinutes  int    `json:"required_minutes"`
		AvailableMinutes int    `json:"available_minutes"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal: %v body=%s", err, string(body))
	}
	if resp.Error != "infeasible_required_load" {
		t.Fatalf("error = %q", resp.Error)
	}
	// Toda la carga requerida de una vez, no de a una tarea
	if len(resp.Required) != 2 || resp.RequiredMinutes != 70 || resp.AvailableMinutes != 60 {
		t.Fatalf("required=%d minutes=%d available=%d body=%s",
			len(resp.Required), resp.RequiredMinutes, resp.AvailableMinutes, string(body))
	}
}

func TestHTTP_DeleteRequiredTaskRecoversInfeasiblePlan(t *testing.T) {
	ts := newTestServer(t)

	ownerID := createOwner(t, ts.URL, map[string]any{
		"name":              "Sam",
		"available_minutes": 60,
	})
	createTask(t, ts.URL, ownerID, map[string]any{
		"name": "Long walk", "duration_minutes": 40, "priority": 5, "required": true,
	})
	vetID := createTask(t, ts.URL, ownerID, map[string]any{
		"name": "Vet visit", "duration_minutes": 30, "priority": 4, "required": true,
	})

	if st, body := doReq(t, ts.URL, "POST", "/owners/"+ownerID+"/plan", nil); st != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 before removal, got %d body=%s", st, string(body))
	}

	// Quitar una requerida deja la carga dentro del presupuesto
	if st, body := doReq(t, ts.URL, "DELETE", "/tasks/"+vetID, nil); st != http.StatusNoContent {
		t.Fatalf("expected 204 delete task, got %d body=%s", st, string(body))
	}
	if st, _ := doReq(t, ts.URL, "DELETE", "/tasks/"+vetID, nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 deleting twice, got %d", st)
	}

	st, body := doReq(t, ts.URL, "POST", "/owners/"+ownerID+"/plan", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 plan after removal, got %d body=%s", st, string(body))
	}
	var plan struct {
		Scheduled []struct {
			Name string `json:"name"`
		} `json:"scheduled"`
	}
	if err := json.Unmarshal(body, &plan); err != nil {
		t.Fatalf("unmarshal plan: %v body=%s", err, string(body))
	}
	if len(plan.Scheduled) != 1 || plan.Scheduled[0].Name != "Long walk" {
		t.Fatalf("scheduled = %+v, want only Long walk", plan.Scheduled)
	}
}

func TestHTTP_DeletePetRemovesItsTasksFromPlan(t *testing.T) {
	ts := newTestServer(t)

	ownerID := createOwner(t, ts.URL, map[string]any{
		"name":              "Sam",
		"available_minutes": 60,
	})
	maxID := createPet(t, ts.URL, ownerID, map[string]any{
		"name": "Max", "species": "dog",
	})
	lunaID := createPet(t, ts.URL, ownerID, map[string]any{
		"name": "Luna", "species": "cat",
	})
	createTask(t, ts.URL, ownerID, map[string]any{
		"pet_id": maxID, "name": "Walk Max", "category": "exercise",
		"duration_minutes": 20, "priority": 4, "required": true,
	})
	createTask(t, ts.URL, ownerID, map[string]any{
		"pet_id": lunaID, "name": "Feed Luna", "category": "feeding",
		"duration_minutes": 10, "priority": 5, "required": true,
	})

	if st, body := doReq(t, ts.URL, "DELETE", "/pets/"+maxID, nil); st != http.StatusNoContent {
		t.Fatalf("expected 204 delete pet, got %d body=%s", st, string(body))
	}
	if st, _ := doReq(t, ts.URL, "DELETE", "/pets/"+maxID, nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 deleting twice, got %d", st)
	}

	// Las tareas de la mascota dada de baja no entran al plan
	st, body := doReq(t, ts.URL, "POST", "/owners/"+ownerID+"/plan", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 plan, got %d body=%s", st, string(body))
	}
	var plan struct {
		Scheduled []struct {
			Name string `json:"name"`
		} `json:"scheduled"`
	}
	if err := json.Unmarshal(body, &plan); err != nil {
		t.Fatalf("unmarshal plan: %v body=%s", err, string(body))
	}
	if len(plan.Scheduled) != 1 || plan.Scheduled[0].Name != "Feed Luna" {
		t.Fatalf("scheduled = %+v, want only Feed Luna", plan.Scheduled)
	}
}

func TestHTTP_DuplicatePetRejectedAtRegistration(t *testing.T) {
	ts := newTestServer(t)

	ownerID := createOwner(t, ts.URL, map[string]any{
		"name":              "Sam",
		"available_minutes": 30,
	})

	payload := map[string]any{"id": "pet-1", "name": "Max", "species": "dog"}
	if st, body := doReq(t, ts.URL, "POST", "/owners/"+ownerID+"/pets", payload); st != http.StatusCreated {
		t.Fatalf("expected 201 first register, got %d body=%s", st, string(body))
	}
	if st, _ := doReq(t, ts.URL, "POST", "/owners/"+ownerID+"/pets", payload); st != http.StatusConflict {
		t.Fatalf("expected 409 duplicate register, got %d", st)
	}
}

func TestHTTP_TaskValidationStatuses(t *testing.T) {
	ts := newTestServer(t)

	ownerID := createOwner(t, ts.URL, map[string]any{
		"name":              "Sam",
		"available_minutes": 30,
	})
	otherOwner := createOwner(t, ts.URL, map[string]any{
		"name":              "Alex",
		"available_minutes": 30,
	})
	petID := createPet(t, ts.URL, otherOwner, map[string]any{
		"name": "Luna", "species": "cat",
	})

	// Mascota desconocida => 404
	if st, _ := doReq(t, ts.URL, "POST", "/owners/"+ownerID+"/tasks", map[string]any{
		"pet_id": "ghost", "name": "Feed", "duration_minutes": 10, "priority": 3,
	}); st != http.StatusNotFound {
		t.Fatalf("expected 404 unknown pet, got %d", st)
	}

	// Mascota de otro owner => 409
	if st, _ := doReq(t, ts.URL, "POST", "/owners/"+ownerID+"/tasks", map[string]any{
		"pet_id": petID, "name": "Feed", "duration_minutes": 10, "priority": 3,
	}); st != http.StatusConflict {
		t.Fatalf("expected 409 foreign pet, got %d", st)
	}

	// Prioridad fuera de rango => 400
	if st, _ := doReq(t, ts.URL, "POST", "/owners/"+ownerID+"/tasks", map[string]any{
		"name": "Feed", "duration_minutes": 10, "priority": 9,
	}); st != http.StatusBadRequest {
		t.Fatalf("expected 400 invalid priority, got %d", st)
	}
}

func TestHTTP_CompleteTaskLeavesCareLogEntry(t *testing.T) {
	ts := newTestServer(t)

	ownerID := createOwner(t, ts.URL, map[string]any{
		"name":              "Sam",
		"available_minutes": 30,
	})
	petID := createPet(t, ts.URL, ownerID, map[string]any{
		"name": "Max", "species": "dog",
	})
	taskID := createTask(t, ts.URL, ownerID, map[string]any{
		"pet_id": petID, "name": "Give medication", "category": "health",
		"duration_minutes": 5, "priority": 5, "required": true,
	})

	if st, body := doReq(t, ts.URL, "POST", "/tasks/"+taskID+"/complete", nil); st != http.StatusOK {
		t.Fatalf("expected 200 complete, got %d body=%s", st, string(body))
	}

	st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/care-log?type=health", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 care log, got %d body=%s", st, string(body))
	}

	var entries []struct {
		TaskID string `json:"task_id"`
		Title  string `json:"title"`
		Type   string `json:"type"`
	}
	if err := json.Unmarshal(body, &entries); err != nil {
		t.Fatalf("unmarshal: %v body=%s", err, string(body))
	}
	if len(entries) != 1 || entries[0].TaskID != taskID || entries[0].Type != "health" {
		t.Fatalf("entries = %+v", entries)
	}

	// La tarea completada ya no entra al plan del día
	st, body = doReq(t, ts.URL, "POST", "/owners/"+ownerID+"/plan", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 plan, got %d body=%s", st, string(body))
	}
	var plan struct {
		Scheduled []any `json:"scheduled"`
	}
	if err := json.Unmarshal(body, &plan); err != nil {
		t.Fatalf("unmarshal plan: %v", err)
	}
	if len(plan.Scheduled) != 0 {
		t.Fatalf("expected empty plan after completion, body=%s", string(body))
	}
}

func TestHTTP_PatchOwnerBudgetAndPreferences(t *testing.T) {
	ts := newTestServer(t)

	ownerID := createOwner(t, ts.URL, map[string]any{
		"name":              "Sam",
		"available_minutes": 30,
		"preferences":       map[string]string{"focus_health": "true"},
	})

	st, body := doReq(t, ts.URL, "PATCH", "/owners/"+ownerID, map[string]any{
		"available_minutes": 90,
		"preferences":       map[string]string{"preferred_time_of_day": "morning", "focus_health": ""},
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 patch, got %d body=%s", st, string(body))
	}

	var resp struct {
		AvailableMinutes int               `json:"available_minutes"`
		Preferences      map[string]string `json:"preferences"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal: %v body=%s", err, string(body))
	}
	if resp.AvailableMinutes != 90 {
		t.Fatalf("budget = %d, want 90", resp.AvailableMinutes)
	}
	if _, ok := resp.Preferences["focus_health"]; ok {
		t.Fatalf("empty value must delete the key, got %v", resp.Preferences)
	}
	if resp.Preferences["preferred_time_of_day"] != "morning" {
		t.Fatalf("preferences = %v", resp.Preferences)
	}
}

func createOwner(t *testing.T, baseURL string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/owners", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create owner, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create owner: missing id body=%s", string(body))
	}
	return resp.ID
}

func createPet(t *testing.T, baseURL, ownerID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/owners/"+ownerID+"/pets", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create pet: missing id body=%s", string(body))
	}
	return resp.ID
}

func createTask(t *testing.T, baseURL, ownerID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/owners/"+ownerID+"/tasks", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create task, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create task: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
