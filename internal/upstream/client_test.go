package upstream

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/beatystore/admin-gateway/internal/models"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second), srv
}

func TestBrands_DecodesEnvelopeData(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/Brand/GetAllBrandAdmin" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("expected bearer header, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":1,"data":[{"id":1,"name":"Lumi"},{"id":2,"name":"Derma"}]}`))
	}))

	brands, err := client.Brands(context.Background(), "tok-123")
	if err != nil {
		t.Fatalf("Brands returned error: %v", err)
	}
	if len(brands) != 2 || brands[0].Name != "Lumi" || brands[1].ID != 2 {
		t.Fatalf("unexpected brands: %+v", brands)
	}
}

func TestCall_EnvelopeFailureCarriesDes(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":0,"des":"brand name already exists"}`))
	}))

	err := client.DeleteBrand(context.Background(), "tok", 7)
	if err == nil {
		t.Fatal("expected error for status 0 envelope")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if apiErr.Des != "brand name already exists" {
		t.Errorf("expected des message, got %q", apiErr.Des)
	}
	if Description(err) != "brand name already exists" {
		t.Errorf("Description should surface des verbatim, got %q", Description(err))
	}
}

func TestCall_NonSuccessHTTPStatus(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.Colors(context.Background(), "tok")
	if err == nil {
		t.Fatal("expected error for HTTP 500")
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %T: %v", err, err)
	}
	if statusErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", statusErr.StatusCode)
	}
	if Description(err) != "request failed" {
		t.Errorf("transport-level failures get the generic message, got %q", Description(err))
	}
}

func TestCall_MalformedEnvelope(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))

	_, err := client.Variants(context.Background(), "tok")
	if err == nil {
		t.Fatal("expected decode error for malformed payload")
	}
}

func TestCreateBrand_MultipartFields(t *testing.T) {
	var gotName, gotDesc, gotFile string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("expected multipart body: %v", err)
		}
		gotName = r.FormValue("name")
		gotDesc = r.FormValue("description")
		if fh, ok := r.MultipartForm.File["thumbNail"]; ok && len(fh) > 0 {
			gotFile = fh[0].Filename
		}
		w.Write([]byte(`{"status":1}`))
	}))

	form := BrandForm{
		Name:        "Lumi",
		Description: "skincare",
		Thumbnail:   &Upload{Filename: "logo.png", Content: bytes.NewReader([]byte("imagedata"))},
	}
	if err := client.CreateBrand(context.Background(), "tok", form); err != nil {
		t.Fatalf("CreateBrand returned error: %v", err)
	}
	if gotName != "Lumi" || gotDesc != "skincare" || gotFile != "logo.png" {
		t.Errorf("multipart fields not forwarded: name=%q desc=%q file=%q", gotName, gotDesc, gotFile)
	}
}

func TestAddVariant_NameTravelsAsQueryParam(t *testing.T) {
	var gotVariant string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotVariant = r.URL.Query().Get("variant")
		w.Write([]byte(`{"status":1}`))
	}))

	if err := client.AddVariant(context.Background(), "tok", "30"); err != nil {
		t.Fatalf("AddVariant returned error: %v", err)
	}
	if gotVariant != "30" {
		t.Errorf("expected variant query param 30, got %q", gotVariant)
	}
}

func TestUpdateOrderStatus_QueryParams(t *testing.T) {
	var gotOrder, gotStatus string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		gotOrder = r.URL.Query().Get("orderId")
		gotStatus = r.URL.Query().Get("status")
		w.Write([]byte(`{"status":1}`))
	}))

	err := client.UpdateOrderStatus(context.Background(), "tok", 42, models.OrderStatusShipping)
	if err != nil {
		t.Fatalf("UpdateOrderStatus returned error: %v", err)
	}
	if gotOrder != "42" || gotStatus != "3" {
		t.Errorf("expected orderId=42 status=3, got orderId=%s status=%s", gotOrder, gotStatus)
	}
}

func TestSetRole_PicksEndpointPerRole(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"status":1}`))
	}))

	cases := []struct {
		role models.Role
		path string
	}{
		{models.RoleAdmin, "/api/User/SetAdminRole"},
		{models.RoleStaff, "/api/User/SetStaffRole"},
		{models.RoleCustomer, "/api/User/SetCustomerRole"},
	}
	for _, tc := range cases {
		if err := client.SetRole(context.Background(), "tok", 5, tc.role); err != nil {
			t.Fatalf("SetRole(%s) returned error: %v", tc.role, err)
		}
		if gotPath != tc.path {
			t.Errorf("SetRole(%s) hit %s, want %s", tc.role, gotPath, tc.path)
		}
	}

	if err := client.SetRole(context.Background(), "tok", 5, models.Role("Owner")); err == nil {
		t.Error("expected error for unknown role")
	}
}
