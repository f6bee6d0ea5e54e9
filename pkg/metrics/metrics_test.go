package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/pkg/metrics"
)

func TestMiddleware_RegistraContadorYDuracion(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry("almacen-api", reg)

	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/items/:id", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"id": c.Params("id")})
	})

	for _, id := range []string{"a", "b", "c"} {
		req := httptest.NewRequest(http.MethodGet, "/items/"+id, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		resp.Body.Close()
	}

	families, err := reg.Gather()
	require.NoError(t, err)

	byName := make(map[string]bool, len(families))
	for _, f := range families {
		byName[f.GetName()] = true
	}
	// El namespace con guion se sanea a guion bajo.
	assert.True(t, byName["almacen_api_http_requests_total"])
	assert.True(t, byName["almacen_api_http_request_duration_seconds"])

	// La etiqueta path usa la ruta registrada, no la URL con el id: tres
	// peticiones distintas caen en la misma serie.
	for _, f := range families {
		if f.GetName() != "almacen_api_http_requests_total" {
			continue
		}
		require.Len(t, f.GetMetric(), 1)
		assert.Equal(t, float64(3), f.GetMetric()[0].GetCounter().GetValue())
		for _, label := range f.GetMetric()[0].GetLabel() {
			if label.GetName() == "path" {
				assert.Equal(t, "/items/:id", label.GetValue())
			}
		}
	}
}
