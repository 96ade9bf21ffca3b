package usecase

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/internal/domain/text"
)

// ProjectUseCase casos de uso CRUD para proyectos y sus fases.
type ProjectUseCase struct {
	projects repository.ProjectRepository
	phases   repository.PhaseRepository
}

// NewProjectUseCase construye el caso de uso.
func NewProjectUseCase(projects repository.ProjectRepository, phases repository.PhaseRepository) *ProjectUseCase {
	return &ProjectUseCase{projects: projects, phases: phases}
}

// List lista proyectos; status vacío no filtra.
func (uc *ProjectUseCase) List(ctx context.Context, f repository.ProjectFilter) ([]*dto.ProjectResponse, error) {
	if f.Status != "" && !entity.ValidProjectStatus(f.Status) {
		return nil, domain.NewValidationError("estado", "estado de proyecto desconocido")
	}
	list, err := uc.projects.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return mapAll(list, toProjectResponse), nil
}

func (uc *ProjectUseCase) GetByID(ctx context.Context, id int64) (*dto.ProjectResponse, error) {
	p, err := found(uc.projects.GetByID(ctx, id))
	if err != nil {
		return nil, err
	}
	return toProjectResponse(p), nil
}

func (uc *ProjectUseCase) Create(ctx context.Context, in dto.ProjectRequest) (*dto.ProjectResponse, error) {
	p, err := projectFromRequest(in)
	if err != nil {
		return nil, err
	}
	if err := uc.projects.Create(ctx, p); err != nil {
		return nil, err
	}
	// Se relee para devolver el nombre del cliente.
	return uc.GetByID(ctx, p.ID)
}

func (uc *ProjectUseCase) Update(ctx context.Context, id int64, in dto.ProjectRequest) (*dto.ProjectResponse, error) {
	p, err := projectFromRequest(in)
	if err != nil {
		return nil, err
	}
	p.ID = id
	if err := uc.projects.Update(ctx, p); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Delete elimina un proyecto; sus fases se eliminan en cascada.
func (uc *ProjectUseCase) Delete(ctx context.Context, id int64) error {
	return uc.projects.Delete(ctx, id)
}

// ListPhases lista fases, opcionalmente de un solo proyecto.
func (uc *ProjectUseCase) ListPhases(ctx context.Context, projectID *int64) ([]*dto.PhaseResponse, error) {
	list, err := uc.phases.List(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return mapAll(list, toPhaseResponse), nil
}

func (uc *ProjectUseCase) GetPhase(ctx context.Context, id int64) (*dto.PhaseResponse, error) {
	p, err := found(uc.phases.GetByID(ctx, id))
	if err != nil {
		return nil, err
	}
	return toPhaseResponse(p), nil
}

func (uc *ProjectUseCase) CreatePhase(ctx context.Context, in dto.PhaseRequest) (*dto.PhaseResponse, error) {
	p, err := phaseFromRequest(in)
	if err != nil {
		return nil, err
	}
	if err := uc.phases.Create(ctx, p); err != nil {
		return nil, err
	}
	return uc.GetPhase(ctx, p.ID)
}

func (uc *ProjectUseCase) UpdatePhase(ctx context.Context, id int64, in dto.PhaseRequest) (*dto.PhaseResponse, error) {
	p, err := phaseFromRequest(in)
	if err != nil {
		return nil, err
	}
	p.ID = id
	if err := uc.phases.Update(ctx, p); err != nil {
		return nil, err
	}
	return uc.GetPhase(ctx, id)
}

func (uc *ProjectUseCase) DeletePhase(ctx context.Context, id int64) error {
	return uc.phases.Delete(ctx, id)
}

func projectFromRequest(in dto.ProjectRequest) (*entity.Project, error) {
	status := in.Status
	if status == "" {
		status = entity.ProjectStatusPlanning
	}
	if !entity.ValidProjectStatus(status) {
		return nil, domain.NewValidationError("status", "estado de proyecto desconocido")
	}
	if in.Budget.IsNegative() {
		return nil, domain.NewValidationError("budget", "no puede ser negativo")
	}
	start, end, err := dateSpan(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	return &entity.Project{
		ClientID:    in.ClientID,
		Name:        text.Sanitize(in.Name),
		Description: text.Sanitize(in.Description),
		Status:      status,
		StartDate:   start,
		EndDate:     end,
		Budget:      in.Budget.Round(2),
	}, nil
}

func phaseFromRequest(in dto.PhaseRequest) (*entity.Phase, error) {
	if in.Progress < 0 || in.Progress > 100 {
		return nil, domain.NewValidationError("progress", "debe estar entre 0 y 100")
	}
	start, end, err := dateSpan(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	return &entity.Phase{
		ProjectID:   in.ProjectID,
		Name:        text.Sanitize(in.Name),
		Description: text.Sanitize(in.Description),
		StartDate:   start,
		EndDate:     end,
		Progress:    in.Progress,
	}, nil
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		ID:          p.ID,
		ClientID:    p.ClientID,
		ClientName:  p.ClientName,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		StartDate:   dto.FormatOptionalDate(p.StartDate),
		EndDate:     dto.FormatOptionalDate(p.EndDate),
		Budget:      p.Budget,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toPhaseResponse(p *entity.Phase) *dto.PhaseResponse {
	return &dto.PhaseResponse{
		ID:          p.ID,
		ProjectID:   p.ProjectID,
		ProjectName: p.ProjectName,
		Name:        p.Name,
		Description: p.Description,
		StartDate:   dto.FormatOptionalDate(p.StartDate),
		EndDate:     dto.FormatOptionalDate(p.EndDate),
		Progress:    p.Progress,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
