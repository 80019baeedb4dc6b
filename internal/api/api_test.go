package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/beatystore/admin-gateway/internal/cache"
	"github.com/beatystore/admin-gateway/internal/models"
	"github.com/beatystore/admin-gateway/internal/session"
	"github.com/beatystore/admin-gateway/internal/upstream"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeUpstream is a stand-in for the store API: reference lists held in
// memory, mutations applied to them, every request recorded.
type fakeUpstream struct {
	mu       sync.Mutex
	calls    []string
	brands   []models.Brand
	colors   []models.Color
	variants []models.Variant
}

func (f *fakeUpstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.calls = append(f.calls, r.Method+" "+r.URL.RequestURI())
	f.mu.Unlock()

	switch r.URL.Path {
	case "/api/User/GetUserInfo":
		writeEnvelope(w, models.Profile{UserID: 1, UserName: "root", Role: models.RoleAdmin})
	case "/api/Brand/GetAllBrandAdmin":
		f.mu.Lock()
		defer f.mu.Unlock()
		writeEnvelope(w, f.brands)
	case "/api/Brand/CreateNewBrand":
		_ = r.ParseMultipartForm(1 << 20)
		f.mu.Lock()
		defer f.mu.Unlock()
		f.brands = append(f.brands, models.Brand{
			ID:   len(f.brands) + 1,
			Name: r.FormValue("name"),
		})
		writeEnvelope(w, nil)
	case "/api/Brand/DeleteBrand":
		id, _ := strconv.Atoi(r.URL.Query().Get("id"))
		f.mu.Lock()
		defer f.mu.Unlock()
		kept := f.brands[:0]
		for _, b := range f.brands {
			if b.ID != id {
				kept = append(kept, b)
			}
		}
		f.brands = kept
		writeEnvelope(w, nil)
	case "/api/Color/Get-all-color-admin":
		f.mu.Lock()
		defer f.mu.Unlock()
		writeEnvelope(w, f.colors)
	case "/api/Color/AddNewColor":
		var req struct {
			Name string `json:"colorName"`
			Hex  string `json:"colorHexaValue"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		defer f.mu.Unlock()
		f.colors = append(f.colors, models.Color{ID: len(f.colors) + 1, Name: req.Name, HexValue: req.Hex})
		writeEnvelope(w, nil)
	case "/api/Color/DeleteColor":
		id, _ := strconv.Atoi(r.URL.Query().Get("ColorId"))
		f.mu.Lock()
		defer f.mu.Unlock()
		kept := f.colors[:0]
		for _, col := range f.colors {
			if col.ID != id {
				kept = append(kept, col)
			}
		}
		f.colors = kept
		writeEnvelope(w, nil)
	case "/api/VariantType/Get-all-variantype-admin":
		f.mu.Lock()
		defer f.mu.Unlock()
		writeEnvelope(w, f.variants)
	case "/api/VariantType/AddNewVariant":
		f.mu.Lock()
		defer f.mu.Unlock()
		f.variants = append(f.variants, models.Variant{
			ID:   len(f.variants) + 1,
			Name: r.URL.Query().Get("variant"),
		})
		writeEnvelope(w, nil)
	case "/api/Order/Update-order-status-admin":
		writeEnvelope(w, nil)
	case "/api/Order/Get-Order-history":
		writeEnvelope(w, models.OrderDetail{ID: 7, Status: "Delivered", StatusCode: models.OrderStatusDelivered})
	default:
		http.NotFound(w, r)
	}
}

func writeEnvelope(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"status": 1, "data": data})
}

func (f *fakeUpstream) callCount(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, call := range f.calls {
		_, rest, _ := strings.Cut(call, " ")
		if u, err := url.Parse(rest); err == nil && u.Path == path {
			n++
		}
	}
	return n
}

func (f *fakeUpstream) lastQuery(t *testing.T, path string) url.Values {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.calls) - 1; i >= 0; i-- {
		_, rest, _ := strings.Cut(f.calls[i], " ")
		if u, err := url.Parse(rest); err == nil && u.Path == path {
			return u.Query()
		}
	}
	t.Fatalf("no recorded call to %s", path)
	return nil
}

type testEnv struct {
	upstream *fakeUpstream
	session  *session.Manager
	caches   *cache.Registry
	router   *gin.Engine
}

// newTestEnv builds the full handler wiring against the fake upstream, with
// a persisted session for the given role already hydrated. An empty role
// leaves the gateway logged out.
func newTestEnv(t *testing.T, fu *fakeUpstream, role models.Role) *testEnv {
	t.Helper()

	srv := httptest.NewServer(fu)
	t.Cleanup(srv.Close)

	store, err := session.OpenStore(filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if role != "" {
		rec := session.Record{
			Token:   "test-token",
			User:    models.Profile{UserID: 1, UserName: "root", Role: role},
			SavedAt: time.Now(),
		}
		if err := store.Save(rec); err != nil {
			t.Fatalf("seed session: %v", err)
		}
	}

	client := upstream.New(srv.URL, 5*time.Second)
	sess := session.NewManager(store, client)
	if err := sess.Hydrate(); err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	caches := cache.NewRegistry(sess, client)
	handler := NewHandler(client, sess, caches)

	router := gin.New()
	sessionGroup := router.Group("/api/session")
	sessionGroup.POST("", handler.CreateSession)
	sessionGroup.GET("", handler.GetSession)
	sessionGroup.DELETE("", handler.DeleteSession)

	admin := router.Group("/api/admin")
	admin.Use(RequireSession(sess))
	admin.GET("/brands", handler.ListBrands)
	admin.POST("/brands", handler.CreateBrand)
	admin.DELETE("/brands/:id", handler.DeleteBrand)
	admin.POST("/brands/refresh", handler.RefreshBrands)
	admin.GET("/colors", handler.ListColors)
	admin.POST("/colors", handler.AddColor)
	admin.DELETE("/colors/:id", handler.DeleteColor)
	admin.GET("/variants", handler.ListVariants)
	admin.POST("/variants", handler.AddVariant)
	admin.PUT("/orders/:id/status", handler.UpdateOrderStatus)
	users := admin.Group("/users")
	users.Use(RequireAdmin(sess))
	users.GET("", handler.ListUsers)

	return &testEnv{upstream: fu, session: sess, caches: caches, router: router}
}

func (env *testEnv) do(t *testing.T, method, target, contentType string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

type listResponse struct {
	Status int               `json:"status"`
	Data   []json.RawMessage `json:"data"`
	Des    string            `json:"des"`
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) listResponse {
	t.Helper()
	var resp listResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return resp
}

func TestRequireSession_RejectsWithoutSession(t *testing.T) {
	env := newTestEnv(t, &fakeUpstream{}, "")

	w := env.do(t, http.MethodGet, "/api/admin/brands", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Redirect string `json:"redirect"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Redirect != "/admin/login" {
		t.Errorf("expected login redirect hint, got %q", resp.Redirect)
	}
	if len(env.upstream.calls) != 0 {
		t.Errorf("unauthenticated request must not reach the upstream: %v", env.upstream.calls)
	}
}

func TestRequireAdmin_BlocksStaff(t *testing.T) {
	env := newTestEnv(t, &fakeUpstream{}, models.RoleStaff)

	w := env.do(t, http.MethodGet, "/api/admin/users", "", nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for staff on user management, got %d", w.Code)
	}
}

func TestListBrands_ServedFromCache(t *testing.T) {
	fu := &fakeUpstream{brands: []models.Brand{
		{ID: 1, Name: "Lumea"},
		{ID: 2, Name: "Velvette"},
	}}
	env := newTestEnv(t, fu, models.RoleAdmin)
	if err := env.caches.Brands.Refresh(context.Background()); err != nil {
		t.Fatalf("warm brands: %v", err)
	}

	for i := 0; i < 3; i++ {
		w := env.do(t, http.MethodGet, "/api/admin/brands", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := len(decodeList(t, w).Data); got != 2 {
			t.Fatalf("expected 2 brands, got %d", got)
		}
	}
	if n := fu.callCount("/api/Brand/GetAllBrandAdmin"); n != 1 {
		t.Errorf("repeated list reads must hit the cache, upstream saw %d fetches", n)
	}
}

func TestListBrands_SearchFiltersInMemory(t *testing.T) {
	fu := &fakeUpstream{brands: []models.Brand{
		{ID: 1, Name: "Lumea"},
		{ID: 2, Name: "Velvette"},
		{ID: 3, Name: "Luxe Lab"},
	}}
	env := newTestEnv(t, fu, models.RoleAdmin)
	if err := env.caches.Brands.Refresh(context.Background()); err != nil {
		t.Fatalf("warm brands: %v", err)
	}

	w := env.do(t, http.MethodGet, "/api/admin/brands?search=lu", "", nil)
	if got := len(decodeList(t, w).Data); got != 2 {
		t.Fatalf("expected 2 matches for %q, got %d", "lu", got)
	}
	if n := fu.callCount("/api/Brand/GetAllBrandAdmin"); n != 1 {
		t.Errorf("search must filter the cached list, upstream saw %d fetches", n)
	}
}

func brandFormBody(t *testing.T, name string) (string, []byte) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("name", name); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := mw.WriteField("description", "test description"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close form: %v", err)
	}
	return mw.FormDataContentType(), buf.Bytes()
}

func TestCreateBrand_EmptyNameRejectedLocally(t *testing.T) {
	fu := &fakeUpstream{}
	env := newTestEnv(t, fu, models.RoleAdmin)

	contentType, body := brandFormBody(t, "   ")
	w := env.do(t, http.MethodPost, "/api/admin/brands", contentType, body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank name, got %d", w.Code)
	}
	if n := fu.callCount("/api/Brand/CreateNewBrand"); n != 0 {
		t.Errorf("invalid form must be rejected before any upstream call, saw %d", n)
	}
}

func TestCreateBrand_RefreshesCacheForAllReaders(t *testing.T) {
	fu := &fakeUpstream{brands: []models.Brand{{ID: 1, Name: "Lumea"}}}
	env := newTestEnv(t, fu, models.RoleAdmin)
	if err := env.caches.Brands.Refresh(context.Background()); err != nil {
		t.Fatalf("warm brands: %v", err)
	}

	contentType, body := brandFormBody(t, "Velvette")
	w := env.do(t, http.MethodPost, "/api/admin/brands", contentType, body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = env.do(t, http.MethodGet, "/api/admin/brands", "", nil)
	if got := len(decodeList(t, w).Data); got != 2 {
		t.Fatalf("list after create must show the refetched list, got %d brands", got)
	}
}

func TestDeleteBrand_GoneFromCacheAfterward(t *testing.T) {
	fu := &fakeUpstream{brands: []models.Brand{
		{ID: 1, Name: "Lumea"},
		{ID: 2, Name: "Velvette"},
	}}
	env := newTestEnv(t, fu, models.RoleAdmin)
	if err := env.caches.Brands.Refresh(context.Background()); err != nil {
		t.Fatalf("warm brands: %v", err)
	}

	w := env.do(t, http.MethodDelete, "/api/admin/brands/1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	for _, b := range env.caches.Brands.Items() {
		if b.ID == 1 {
			t.Fatal("deleted brand still present in the cache")
		}
	}
}

func TestAddColor_ReturnsRefetchedList(t *testing.T) {
	fu := &fakeUpstream{colors: []models.Color{{ID: 1, Name: "Rose", HexValue: "#ffc0cb"}}}
	env := newTestEnv(t, fu, models.RoleAdmin)
	if err := env.caches.Colors.Refresh(context.Background()); err != nil {
		t.Fatalf("warm colors: %v", err)
	}

	body, _ := json.Marshal(map[string]string{"name": "Onyx", "hexValue": "#000000"})
	w := env.do(t, http.MethodPost, "/api/admin/colors", "application/json", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := len(decodeList(t, w).Data); got != 2 {
		t.Fatalf("add response must carry the refetched list, got %d colors", got)
	}

	// The id came from the upstream's list, never guessed locally.
	items := env.caches.Colors.Items()
	if len(items) != 2 || items[1].Name != "Onyx" || items[1].ID != 2 {
		t.Fatalf("unexpected cache contents: %+v", items)
	}
}

func TestListVariants_SearchMatchesSizes(t *testing.T) {
	fu := &fakeUpstream{variants: []models.Variant{
		{ID: 1, Name: "30ml"},
		{ID: 2, Name: "50ml"},
		{ID: 3, Name: "30g"},
	}}
	env := newTestEnv(t, fu, models.RoleAdmin)
	if err := env.caches.Variants.Refresh(context.Background()); err != nil {
		t.Fatalf("warm variants: %v", err)
	}

	w := env.do(t, http.MethodGet, "/api/admin/variants?search=30", "", nil)
	if got := len(decodeList(t, w).Data); got != 2 {
		t.Fatalf("expected 2 matches for %q, got %d", "30", got)
	}
}

func TestAddVariant_SendsNameAsQueryParam(t *testing.T) {
	fu := &fakeUpstream{}
	env := newTestEnv(t, fu, models.RoleAdmin)

	body, _ := json.Marshal(map[string]string{"name": "100ml"})
	w := env.do(t, http.MethodPost, "/api/admin/variants", "application/json", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	q := fu.lastQuery(t, "/api/VariantType/AddNewVariant")
	if q.Get("variant") != "100ml" {
		t.Errorf("expected variant query param, got %v", q)
	}
}

func TestUpdateOrderStatus_ForwardsAndReturnsDetail(t *testing.T) {
	fu := &fakeUpstream{}
	env := newTestEnv(t, fu, models.RoleAdmin)

	body, _ := json.Marshal(map[string]int{"status": 4})
	w := env.do(t, http.MethodPut, "/api/admin/orders/7/status", "application/json", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	q := fu.lastQuery(t, "/api/Order/Update-order-status-admin")
	if q.Get("orderId") != "7" || q.Get("status") != "4" {
		t.Errorf("unexpected upstream query: %v", q)
	}

	var resp struct {
		Data models.OrderDetail `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.StatusCode != models.OrderStatusDelivered {
		t.Errorf("expected refreshed detail in the response, got %+v", resp.Data)
	}
}

func TestUpdateOrderStatus_UnknownCodeRejected(t *testing.T) {
	fu := &fakeUpstream{}
	env := newTestEnv(t, fu, models.RoleAdmin)

	body, _ := json.Marshal(map[string]int{"status": 9})
	w := env.do(t, http.MethodPut, "/api/admin/orders/7/status", "application/json", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", w.Code)
	}
	if n := fu.callCount("/api/Order/Update-order-status-admin"); n != 0 {
		t.Errorf("invalid status must not reach the upstream, saw %d calls", n)
	}
}

func TestCreateSession_InstallsSessionAndUnlocksAdmin(t *testing.T) {
	fu := &fakeUpstream{brands: []models.Brand{{ID: 1, Name: "Lumea"}}}
	env := newTestEnv(t, fu, "")

	w := env.do(t, http.MethodGet, "/api/admin/brands", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 before login, got %d", w.Code)
	}

	body, _ := json.Marshal(map[string]string{"token": "fresh-token"})
	w = env.do(t, http.MethodPost, "/api/session", "application/json", body)
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}
	if err := env.caches.Brands.Refresh(context.Background()); err != nil {
		t.Fatalf("warm brands: %v", err)
	}

	w = env.do(t, http.MethodGet, "/api/admin/brands", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 after login, got %d", w.Code)
	}
}

func TestDeleteSession_LogsOut(t *testing.T) {
	env := newTestEnv(t, &fakeUpstream{}, models.RoleAdmin)

	w := env.do(t, http.MethodDelete, "/api/session", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("logout failed: %d %s", w.Code, w.Body.String())
	}
	w = env.do(t, http.MethodGet, "/api/admin/brands", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", w.Code)
	}
}
