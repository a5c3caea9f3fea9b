package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"kampus_backend/internal/model"
	"kampus_backend/internal/util"
	"kampus_backend/pkg/docstore"

	"github.com/gin-gonic/gin"
)

// 路由层集成测试：真实的 controller/service/repository 链路跑在内存存储上，
// 只有 health 因依赖 *gorm.DB 不在这里覆盖。
func newTestRouter(t *testing.T) (*gin.Engine, *docstore.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := docstore.NewMemoryStore()
	a := &App{Store: store}
	repos := a.initRepositories(store)
	services := a.initServices(repos)
	controllers := a.initControllers(services, nil)

	router := gin.New()
	a.registerRoutes(router, controllers)
	return router, store
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, util.Response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp util.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return w, resp
}

func TestProgressRoutes(t *testing.T) {
	router, store := newTestRouter(t)

	for i := 1; i <= 2; i++ {
		store.Create(model.CollectionCourseModules, docstore.Document{"course_id": "c1", "title": "m", "order": i})
	}

	w, _ := doJSON(t, router, http.MethodPost, "/api/progress/complete", gin.H{
		"user_id": "u1", "course_id": "c1", "module_id": "m1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("complete status = %d: %s", w.Code, w.Body.String())
	}

	w, resp := doJSON(t, router, http.MethodGet, "/api/progress/course/u1/c1/summary", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("summary status = %d", w.Code)
	}
	summary := resp.Data.(map[string]any)
	if summary["total_modules"].(float64) != 2 || summary["completed_modules"].(float64) != 1 || summary["progress_percentage"].(float64) != 50 {
		t.Fatalf("summary = %v", summary)
	}

	w, resp = doJSON(t, router, http.MethodGet, "/api/progress/module/u1/c1/m1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("module progress status = %d", w.Code)
	}
	record := resp.Data.(map[string]any)
	if record["completed"] != true {
		t.Fatalf("record = %v", record)
	}

	w, _ = doJSON(t, router, http.MethodGet, "/api/progress/module/u1/c1/unseen", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("absent module progress status = %d, want 404", w.Code)
	}
}

func TestProgressSummaryDefaultRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	// 从未触达的 (user, course) 返回全零对象而不是404
	w, resp := doJSON(t, router, http.MethodGet, "/api/progress/course/u9/c9/summary", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	summary := resp.Data.(map[string]any)
	if summary["user_id"] != "u9" || summary["course_id"] != "c9" {
		t.Fatalf("summary = %v", summary)
	}
	if summary["progress_percentage"].(float64) != 0 {
		t.Fatalf("summary = %v", summary)
	}
}

func TestProgressAccessValidationRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	w, _ := doJSON(t, router, http.MethodPost, "/api/progress/access", gin.H{
		"user_id": "u1", "course_id": "c1",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	w, _ = doJSON(t, router, http.MethodPost, "/api/progress/access", gin.H{
		"user_id": "u1", "course_id": "c1", "module_id": "m1", "progress_percentage": 130,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("out-of-range percentage status = %d, want 400", w.Code)
	}
}

func TestEnrollmentRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	w, resp := doJSON(t, router, http.MethodPost, "/api/enrollments", gin.H{
		"student_id": "s1", "course_id": "c1",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
	}
	created := resp.Data.(map[string]any)
	if created["id"] == "" {
		t.Fatal("no id in create response")
	}

	w, _ = doJSON(t, router, http.MethodPost, "/api/enrollments", gin.H{
		"student_id": "s1", "course_id": "c1",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate status = %d, want 409", w.Code)
	}

	w, _ = doJSON(t, router, http.MethodPost, "/api/enrollments", gin.H{"student_id": "s1"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing course status = %d, want 400", w.Code)
	}

	w, resp = doJSON(t, router, http.MethodGet, "/api/enrollments?student_id=s1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	if len(resp.Data.([]any)) != 1 {
		t.Fatalf("list = %v", resp.Data)
	}

	// 不带过滤条件返回空数组
	w, resp = doJSON(t, router, http.MethodGet, "/api/enrollments", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("unfiltered status = %d", w.Code)
	}
	if items, ok := resp.Data.([]any); !ok || len(items) != 0 {
		t.Fatalf("unfiltered list = %v", resp.Data)
	}
}

func TestUserRoutes(t *testing.T) {
	router, store := newTestRouter(t)

	id, _ := store.Create(model.CollectionUsers, docstore.Document{"name": "Ana", "role": "student"})
	store.Create(model.CollectionUsers, docstore.Document{"name": "Luis", "role": "teacher"})

	w, resp := doJSON(t, router, http.MethodGet, "/api/users/stats", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stats status = %d", w.Code)
	}
	stats := resp.Data.(map[string]any)
	if stats["total"].(float64) != 2 || stats["students"].(float64) != 1 || stats["teachers"].(float64) != 1 {
		t.Fatalf("stats = %v", stats)
	}

	w, resp = doJSON(t, router, http.MethodGet, "/api/users/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get user status = %d", w.Code)
	}
	if resp.Data.(map[string]any)["name"] != "Ana" {
		t.Fatalf("user = %v", resp.Data)
	}

	w, _ = doJSON(t, router, http.MethodGet, "/api/users/missing", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing user status = %d, want 404", w.Code)
	}
}
