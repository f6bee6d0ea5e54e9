package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	apphttp "github.com/tu-usuario/almacen-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de repositorio de historial que captura la paginación recibida
// ──────────────────────────────────────────────────────────────────────────────

type pagingHistoryRepo struct {
	gotLimit  int
	gotOffset int
}

func (r *pagingHistoryRepo) Create(ctx context.Context, h *entity.InventoryHistory) error {
	return nil
}

func (r *pagingHistoryRepo) List(ctx context.Context, limit, offset int) ([]*entity.InventoryHistory, error) {
	r.gotLimit = limit
	r.gotOffset = offset
	return nil, nil
}

func (r *pagingHistoryRepo) ListByInventory(ctx context.Context, inventoryID string) ([]*entity.InventoryHistory, error) {
	return nil, nil
}

func buildHistoryApp(repo *pagingHistoryRepo) *fiber.App {
	uc := inventory.NewUseCase(nil, nil, repo, nil, nil, nil)
	h := apphttp.NewInventoryHandler(uc)
	app := fiber.New()
	app.Get("/api/inventory-history", h.History)
	return app
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Los query params de paginación se normalizan antes de llegar al repositorio:
// valores ausentes, cero, negativos o no numéricos usan los defaults, y el
// límite se acota a 100.
func TestHistory_PaginacionNormalizada(t *testing.T) {
	cases := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"sin parámetros", "", 50, 0},
		{"limit cero usa el default", "?limit=0", 50, 0},
		{"limit negativo usa el default", "?limit=-3", 50, 0},
		{"limit no numérico usa el default", "?limit=muchos", 50, 0},
		{"valores explícitos se respetan", "?limit=10&offset=5", 10, 5},
		{"limit excesivo se acota", "?limit=500", 100, 0},
		{"offset negativo usa el default", "?limit=10&offset=-2", 10, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &pagingHistoryRepo{}
			app := buildHistoryApp(repo)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/inventory-history"+tc.query, nil))
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, tc.wantLimit, repo.gotLimit)
			assert.Equal(t, tc.wantOffset, repo.gotOffset)
		})
	}
}
