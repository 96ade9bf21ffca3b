package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/usecase"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// ProjectHandler listados filtrados de proyectos y fases.
type ProjectHandler struct {
	uc *usecase.ProjectUseCase
}

func NewProjectHandler(uc *usecase.ProjectUseCase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

// List godoc
// @Summary      Listar proyectos
// @Tags         proyectos
// @Produce      json
// @Param        estado      query  string  false  "planeacion | en_curso | terminado | cancelado"
// @Param        cliente_id  query  int     false  "Filtrar por cliente"
// @Success      200  {array}   dto.ProjectResponse
// @Router       /api/proyectos [get]
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	clientID, err := optionalInt64Query(c, "cliente_id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), repository.ProjectFilter{Status: c.Query("estado"), ClientID: clientID})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListPhases godoc
// @Summary      Listar fases
// @Tags         fases
// @Produce      json
// @Param        proyecto_id  query  int  false  "Filtrar por proyecto"
// @Success      200  {array}   dto.PhaseResponse
// @Router       /api/fases [get]
func (h *ProjectHandler) ListPhases(c *fiber.Ctx) error {
	projectID, err := optionalInt64Query(c, "proyecto_id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListPhases(c.UserContext(), projectID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListPermissions godoc
// @Summary      Listar permisos
// @Tags         permisos
// @Produce      json
// @Param        rol_id  query  int  false  "Filtrar por rol"
// @Success      200  {array}   dto.PermissionResponse
// @Router       /api/permisos [get]
func listPermissions(uc *usecase.RoleUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleID, err := optionalInt64Query(c, "rol_id")
		if err != nil {
			return respondError(c, err)
		}
		out, err := uc.ListPermissions(c.UserContext(), roleID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
}

// toggleRecovered PUT /api/recuperaciones/:id/toggle
func toggleRecovered(uc *usecase.RecoveryUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return respondError(c, err)
		}
		out, err := uc.ToggleRecovered(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
}
