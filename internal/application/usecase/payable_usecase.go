package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/internal/domain/tax"
	"github.com/jhoicas/Gestion-api/internal/domain/text"
)

// PayableUseCase casos de uso para cuentas por pagar.
// El IVA y el total con IVA se derivan en el servidor con la tasa configurada.
type PayableUseCase struct {
	repo    repository.PayableRepository
	taxRate decimal.Decimal
}

// NewPayableUseCase construye el caso de uso.
func NewPayableUseCase(repo repository.PayableRepository, taxRate decimal.Decimal) *PayableUseCase {
	return &PayableUseCase{repo: repo, taxRate: taxRate}
}

// List lista cuentas por pagar por fecha de emisión, con filtro opcional de mes o rango.
func (uc *PayableUseCase) List(ctx context.Context, q dto.DateRangeQuery) ([]*dto.PayableResponse, error) {
	r, err := q.Range()
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx, r)
	if err != nil {
		return nil, err
	}
	return mapAll(list, toPayableResponse), nil
}

func (uc *PayableUseCase) GetByID(ctx context.Context, id int64) (*dto.PayableResponse, error) {
	p, err := found(uc.repo.GetByID(ctx, id))
	if err != nil {
		return nil, err
	}
	return toPayableResponse(p), nil
}

func (uc *PayableUseCase) Create(ctx context.Context, in dto.PayableRequest) (*dto.PayableResponse, error) {
	p, err := uc.fromRequest(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, p.ID)
}

func (uc *PayableUseCase) Update(ctx context.Context, id int64, in dto.PayableRequest) (*dto.PayableResponse, error) {
	p, err := uc.fromRequest(in)
	if err != nil {
		return nil, err
	}
	p.ID = id
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

func (uc *PayableUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// TogglePaid invierte el indicador de pagado de forma atómica.
func (uc *PayableUseCase) TogglePaid(ctx context.Context, id int64) (*dto.PayableResponse, error) {
	p, err := found(uc.repo.TogglePaid(ctx, id))
	if err != nil {
		return nil, err
	}
	return toPayableResponse(p), nil
}

func (uc *PayableUseCase) fromRequest(in dto.PayableRequest) (*entity.Payable, error) {
	if !in.NetAmount.IsPositive() {
		return nil, domain.NewValidationError("net_amount", "debe ser mayor que cero")
	}
	concept := text.Sanitize(in.Concept)
	if concept == "" {
		return nil, domain.NewValidationError("concept", "es requerido")
	}
	issued, err := dto.ParseDate("issue_date", in.IssueDate)
	if err != nil {
		return nil, err
	}
	due, err := dto.ParseOptionalDate("due_date", in.DueDate)
	if err != nil {
		return nil, err
	}
	iva, total := tax.Apply(in.NetAmount, in.WithTax, uc.taxRate)
	return &entity.Payable{
		ProviderID:    in.ProviderID,
		ProjectID:     in.ProjectID,
		Concept:       concept,
		InvoiceNumber: text.Sanitize(in.InvoiceNumber),
		NetAmount:     in.NetAmount.Round(2),
		WithTax:       in.WithTax,
		Tax:           iva,
		AmountWithTax: total,
		IssueDate:     issued,
		DueDate:       due,
		Paid:          in.Paid,
		Notes:         text.Sanitize(in.Notes),
	}, nil
}

func toPayableResponse(p *entity.Payable) *dto.PayableResponse {
	return &dto.PayableResponse{
		ID:            p.ID,
		ProviderID:    p.ProviderID,
		ProviderName:  p.ProviderName,
		ProjectID:     p.ProjectID,
		Concept:       p.Concept,
		InvoiceNumber: p.InvoiceNumber,
		NetAmount:     p.NetAmount,
		WithTax:       p.WithTax,
		Tax:           p.Tax,
		AmountWithTax: p.AmountWithTax,
		IssueDate:     dto.FormatDate(p.IssueDate),
		DueDate:       dto.FormatOptionalDate(p.DueDate),
		Paid:          p.Paid,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
