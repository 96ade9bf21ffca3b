package http

import (
	"github.com/gofiber/fiber/v2"
)

// FileLocator resuelve el nombre almacenado de un adjunto a su ruta en disco.
type FileLocator interface {
	Open(name string) (string, error)
}

// serveFile GET /api/archivos/:nombre
func serveFile(files FileLocator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path, err := files.Open(c.Params("nombre"))
		if err != nil {
			return respondError(c, err)
		}
		return c.SendFile(path)
	}
}
