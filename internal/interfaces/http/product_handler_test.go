package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sathyaAB/DairyX/internal/application/usecase"
	"github.com/sathyaAB/DairyX/internal/domain/entity"
	"github.com/sathyaAB/DairyX/internal/domain/repository"
	apphttp "github.com/sathyaAB/DairyX/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del handler de productos contra un repositorio en memoria.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = *p
	return nil
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func buildProductApp() *fiber.App {
	repo := &fakeProductRepo{products: make(map[string]entity.Product)}
	handler := apphttp.NewProductHandler(usecase.NewProductUseCase(repo))

	app := fiber.New()
	products := app.Group("/api/products")
	products.Post("/", handler.Create)
	products.Get("/", handler.List)
	products.Get("/:id", handler.GetByID)
	products.Put("/:id", handler.Update)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestProductHandler_CreateYConsultar(t *testing.T) {
	app := buildProductApp()

	resp := postJSON(t, app, "/api/products", `{"name":"Leche entera","price":"10.0","unit_type":"litro","commission":"0.5"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	id, ok := created["id"].(string)
	require.True(t, ok, "la respuesta debe incluir el id generado")
	assert.Equal(t, "Leche entera", created["name"])

	getResp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/products/"+id, nil), -1)
	require.NoError(t, err)
	defer getResp.Body.Close()
	assert.Equal(t, http.StatusOK, getResp.StatusCode)
}

func TestProductHandler_CreateInvalido(t *testing.T) {
	app := buildProductApp()

	// Sin nombre ni precio positivo: 400.
	resp := postJSON(t, app, "/api/products", `{"name":"","price":"0","unit_type":"litro"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Body que no parsea: 400.
	resp2 := postJSON(t, app, "/api/products", `{no es json}`)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp2.StatusCode)
}

func TestProductHandler_GetInexistente(t *testing.T) {
	app := buildProductApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/products/no-existe", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
