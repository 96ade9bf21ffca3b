package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// Resource agrupa los handlers CRUD de una entidad a partir de las funciones de su caso de uso.
// C y U son las entradas de creación y actualización; R la salida.
type Resource[C, U, R any] struct {
	List   func(ctx context.Context) ([]*R, error)
	Get    func(ctx context.Context, id int64) (*R, error)
	Create func(ctx context.Context, in C) (*R, error)
	Update func(ctx context.Context, id int64, in U) (*R, error)
	Delete func(ctx context.Context, id int64) error
}

// Mount registra GET /, GET /:id, POST /, PUT /:id y DELETE /:id.
// Si list es nil se usa r.List.
func (r Resource[C, U, R]) Mount(g fiber.Router, list fiber.Handler) {
	if list == nil {
		list = r.list
	}
	g.Get("/", list)
	g.Get("/:id", r.getByID)
	g.Post("/", r.create)
	g.Put("/:id", r.update)
	g.Delete("/:id", r.delete)
}

func (r Resource[C, U, R]) list(c *fiber.Ctx) error {
	out, err := r.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (r Resource[C, U, R]) getByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := r.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (r Resource[C, U, R]) create(c *fiber.Ctx) error {
	var in C
	if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := r.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (r Resource[C, U, R]) update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in U
	if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := r.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (r Resource[C, U, R]) delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := r.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "registro eliminado"})
}
