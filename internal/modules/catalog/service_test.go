package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flipkartmini.com/app/internal/api"
)

func newBackend(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewService(api.New(srv.URL, 5*time.Second))
}

func TestListOmitsAbsentFilters(t *testing.T) {
	var gotQuery string
	svc := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := svc.List(context.Background(), "", "")
	require.NoError(t, err)
	assert.Empty(t, gotQuery)

	_, err = svc.List(context.Background(), "", CategoryAll)
	require.NoError(t, err)
	assert.Empty(t, gotQuery, `"All" counts as no category filter`)
}

func TestListForwardsFilters(t *testing.T) {
	var got *http.Request
	svc := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		_, _ = w.Write([]byte(`[{"id":"p1","name":"Phone","price":999}]`))
	})

	prods, err := svc.List(context.Background(), "phone", "Mobiles")
	require.NoError(t, err)

	assert.Equal(t, "/products", got.URL.Path)
	assert.Equal(t, "phone", got.URL.Query().Get("q"))
	assert.Equal(t, "Mobiles", got.URL.Query().Get("category"))

	require.Len(t, prods, 1)
	assert.Equal(t, "p1", prods[0].ID)
	assert.Equal(t, 999.0, prods[0].Price)
}

func TestGetFetchesByID(t *testing.T) {
	svc := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/p42", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"p42","name":"Laptop","specs":{"ram":"16GB"},"stock":3}`))
	})

	p, err := svc.Get(context.Background(), "p42")
	require.NoError(t, err)
	assert.Equal(t, "Laptop", p.Name)
	assert.Equal(t, "16GB", p.Specs["ram"])
	assert.Equal(t, 3, p.Stock)
}

func TestCreateAndDeleteForwardToken(t *testing.T) {
	var auths []string
	svc := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		auths = append(auths, r.Header.Get("Authorization"))
		switch r.Method {
		case http.MethodPost:
			_, _ = w.Write([]byte(`{"id":"new1"}`))
		case http.MethodDelete:
			assert.Equal(t, "/products/new1", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}
	})

	p, err := svc.Create(context.Background(), CreateInput{Name: "Thing", Price: 10}, "admintok")
	require.NoError(t, err)
	assert.Equal(t, "new1", p.ID)

	require.NoError(t, svc.Delete(context.Background(), "new1", "admintok"))

	require.Len(t, auths, 2)
	for _, a := range auths {
		assert.Equal(t, "Bearer admintok", a)
	}
}

func TestFirstImage(t *testing.T) {
	assert.Empty(t, Product{}.FirstImage())
	assert.Equal(t, "u1", Product{Images: []string{"u1", "u2"}}.FirstImage())
}
