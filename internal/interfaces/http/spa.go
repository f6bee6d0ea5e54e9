package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// reservedPrefixes rutas que nunca caen al index del SPA: si no matchearon
// antes es porque no existen, y deben responder 404 en lugar de HTML.
var reservedPrefixes = []string{"/api", "/auth", "/assets", "/components", "/app"}

// SPAFallback registra el fallback del cliente: los estáticos se sirven desde
// clientDir y cualquier ruta no reservada devuelve index.html, de modo que el
// router del navegador resuelva la vista.
func SPAFallback(app *fiber.App, clientDir, indexPath string) {
	app.Static("/", clientDir)
	app.Use(func(c *fiber.Ctx) error {
		path := c.Path()
		for _, prefix := range reservedPrefixes {
			if strings.HasPrefix(path, prefix) {
				return respondNotFound(c)
			}
		}
		return c.SendFile(indexPath)
	})
}
