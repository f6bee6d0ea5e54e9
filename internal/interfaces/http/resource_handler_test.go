package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/domain"
	apphttp "github.com/tu-usuario/almacen-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de caso de uso CRUD sobre un catálogo mínimo
// ──────────────────────────────────────────────────────────────────────────────

type catalogCreate struct {
	Name string `json:"name"`
}

type catalogUpdate struct {
	Name *string `json:"name"`
}

type catalogResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type fakeCatalogUC struct {
	items map[string]*catalogResponse
	seq   int
}

func newFakeCatalogUC() *fakeCatalogUC {
	return &fakeCatalogUC{items: make(map[string]*catalogResponse)}
}

func (uc *fakeCatalogUC) List(_ context.Context) ([]*catalogResponse, error) {
	out := make([]*catalogResponse, 0, len(uc.items))
	for _, it := range uc.items {
		out = append(out, it)
	}
	return out, nil
}

func (uc *fakeCatalogUC) Get(_ context.Context, id string) (*catalogResponse, error) {
	return uc.items[id], nil
}

func (uc *fakeCatalogUC) Create(_ context.Context, in catalogCreate) (*catalogResponse, error) {
	if in.Name == "" {
		return nil, domain.NewValidationError("name", "es requerido")
	}
	for _, it := range uc.items {
		if it.Name == in.Name {
			return nil, domain.ErrCodeAlreadyExists
		}
	}
	uc.seq++
	it := &catalogResponse{ID: string(rune('a' + uc.seq - 1)), Name: in.Name}
	uc.items[it.ID] = it
	return it, nil
}

func (uc *fakeCatalogUC) Update(_ context.Context, id string, in catalogUpdate) (*catalogResponse, error) {
	it, ok := uc.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.NewValidationError("name", "no puede quedar vacío")
		}
		it.Name = *in.Name
	}
	return it, nil
}

func (uc *fakeCatalogUC) Delete(_ context.Context, id string) error {
	if _, ok := uc.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(uc.items, id)
	return nil
}

func buildCatalogApp(uc *fakeCatalogUC) *fiber.App {
	app := fiber.New()
	h := apphttp.NewResourceHandler[catalogCreate, catalogUpdate, catalogResponse](uc)
	apphttp.MountCrud(app.Group("/api/catalog"), h, nil, nil)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida CRUD
// ──────────────────────────────────────────────────────────────────────────────

func TestResourceHandler_CicloCompleto(t *testing.T) {
	uc := newFakeCatalogUC()
	app := buildCatalogApp(uc)

	// Create → 201 con el registro
	resp := doJSON(t, app, http.MethodPost, "/api/catalog", catalogCreate{Name: "Recepción"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created catalogResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	assert.Equal(t, "Recepción", created.Name)
	require.NotEmpty(t, created.ID)

	// Show → 200
	resp = doJSON(t, app, http.MethodGet, "/api/catalog/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Update → 200 con el merge aplicado
	nuevo := "Despacho"
	resp = doJSON(t, app, http.MethodPut, "/api/catalog/"+created.ID, catalogUpdate{Name: &nuevo})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated catalogResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	resp.Body.Close()
	assert.Equal(t, "Despacho", updated.Name)

	// Index → 200 con un elemento
	resp = doJSON(t, app, http.MethodGet, "/api/catalog", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []catalogResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	resp.Body.Close()
	assert.Len(t, list, 1)

	// Destroy → 204 sin cuerpo
	resp = doJSON(t, app, http.MethodDelete, "/api/catalog/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Empty(t, body, "el 204 no lleva cuerpo")

	// Show tras el borrado → 404
	resp = doJSON(t, app, http.MethodGet, "/api/catalog/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestResourceHandler_ShowInexistente_404ConCuerpoVacio(t *testing.T) {
	app := buildCatalogApp(newFakeCatalogUC())

	resp := doJSON(t, app, http.MethodGet, "/api/catalog/no-existe", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Empty(t, body, "el 404 de lectura lleva cuerpo vacío")
}

func TestResourceHandler_CreateInvalido_422ConCampo(t *testing.T) {
	app := buildCatalogApp(newFakeCatalogUC())

	resp := doJSON(t, app, http.MethodPost, "/api/catalog", catalogCreate{})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "name", body["field"], "la respuesta 422 identifica el campo")
}

func TestResourceHandler_CreateDuplicado_422(t *testing.T) {
	uc := newFakeCatalogUC()
	app := buildCatalogApp(uc)

	resp := doJSON(t, app, http.MethodPost, "/api/catalog", catalogCreate{Name: "Recepción"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/catalog", catalogCreate{Name: "Recepción"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestResourceHandler_UpdateInexistente_404(t *testing.T) {
	app := buildCatalogApp(newFakeCatalogUC())

	nuevo := "X"
	resp := doJSON(t, app, http.MethodPut, "/api/catalog/no-existe", catalogUpdate{Name: &nuevo})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestResourceHandler_DestroyInexistente_404(t *testing.T) {
	app := buildCatalogApp(newFakeCatalogUC())

	resp := doJSON(t, app, http.MethodDelete, "/api/catalog/no-existe", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestResourceHandler_CuerpoMalformado_400(t *testing.T) {
	app := buildCatalogApp(newFakeCatalogUC())

	req := httptest.NewRequest(http.MethodPost, "/api/catalog", bytes.NewReader([]byte("{no es json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestResourceHandler_PatchEquivaleAPut(t *testing.T) {
	uc := newFakeCatalogUC()
	app := buildCatalogApp(uc)

	resp := doJSON(t, app, http.MethodPost, "/api/catalog", catalogCreate{Name: "Recepción"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created catalogResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	nuevo := "Despacho"
	resp = doJSON(t, app, http.MethodPatch, "/api/catalog/"+created.ID, catalogUpdate{Name: &nuevo})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
