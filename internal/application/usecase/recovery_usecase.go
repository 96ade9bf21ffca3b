package usecase

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/internal/domain/text"
)

// RecoveryUseCase casos de uso para recuperaciones (montos por cobrar a terceros).
type RecoveryUseCase struct {
	repo repository.RecoveryRepository
}

func NewRecoveryUseCase(repo repository.RecoveryRepository) *RecoveryUseCase {
	return &RecoveryUseCase{repo: repo}
}

func (uc *RecoveryUseCase) List(ctx context.Context) ([]*dto.RecoveryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(list, toRecoveryResponse), nil
}

func (uc *RecoveryUseCase) GetByID(ctx context.Context, id int64) (*dto.RecoveryResponse, error) {
	r, err := found(uc.repo.GetByID(ctx, id))
	if err != nil {
		return nil, err
	}
	return toRecoveryResponse(r), nil
}

func (uc *RecoveryUseCase) Create(ctx context.Context, in dto.RecoveryRequest) (*dto.RecoveryResponse, error) {
	r, err := recoveryFromRequest(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, r.ID)
}

func (uc *RecoveryUseCase) Update(ctx context.Context, id int64, in dto.RecoveryRequest) (*dto.RecoveryResponse, error) {
	r, err := recoveryFromRequest(in)
	if err != nil {
		return nil, err
	}
	r.ID = id
	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

func (uc *RecoveryUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// ToggleRecovered invierte el indicador de recuperado de forma atómica.
func (uc *RecoveryUseCase) ToggleRecovered(ctx context.Context, id int64) (*dto.RecoveryResponse, error) {
	r, err := found(uc.repo.ToggleRecovered(ctx, id))
	if err != nil {
		return nil, err
	}
	return toRecoveryResponse(r), nil
}

func recoveryFromRequest(in dto.RecoveryRequest) (*entity.Recovery, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.NewValidationError("amount", "debe ser mayor que cero")
	}
	concept := text.Sanitize(in.Concept)
	if concept == "" {
		return nil, domain.NewValidationError("concept", "es requerido")
	}
	date, err := dto.ParseDate("date", in.Date)
	if err != nil {
		return nil, err
	}
	return &entity.Recovery{
		ProjectID:  in.ProjectID,
		Concept:    concept,
		ThirdParty: text.Sanitize(in.ThirdParty),
		Amount:     in.Amount.Round(2),
		Date:       date,
		Recovered:  in.Recovered,
		Notes:      text.Sanitize(in.Notes),
	}, nil
}

func toRecoveryResponse(r *entity.Recovery) *dto.RecoveryResponse {
	return &dto.RecoveryResponse{
		ID:          r.ID,
		ProjectID:   r.ProjectID,
		ProjectName: r.ProjectName,
		Concept:     r.Concept,
		ThirdParty:  r.ThirdParty,
		Amount:      r.Amount,
		Date:        dto.FormatDate(r.Date),
		Recovered:   r.Recovered,
		Notes:       r.Notes,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
