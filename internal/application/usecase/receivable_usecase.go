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

// ReceivableUseCase casos de uso para cuentas por cobrar.
// El IVA y el total con IVA se derivan en el servidor con la tasa configurada.
type ReceivableUseCase struct {
	repo    repository.ReceivableRepository
	taxRate decimal.Decimal
}

// NewReceivableUseCase construye el caso de uso.
func NewReceivableUseCase(repo repository.ReceivableRepository, taxRate decimal.Decimal) *ReceivableUseCase {
	return &ReceivableUseCase{repo: repo, taxRate: taxRate}
}

// List lista cuentas por cobrar por fecha de emisión, con filtro opcional de mes o rango.
func (uc *ReceivableUseCase) List(ctx context.Context, q dto.DateRangeQuery) ([]*dto.ReceivableResponse, error) {
	r, err := q.Range()
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx, r)
	if err != nil {
		return nil, err
	}
	return mapAll(list, toReceivableResponse), nil
}

func (uc *ReceivableUseCase) GetByID(ctx context.Context, id int64) (*dto.ReceivableResponse, error) {
	p, err := found(uc.repo.GetByID(ctx, id))
	if err != nil {
		return nil, err
	}
	return toReceivableResponse(p), nil
}

func (uc *ReceivableUseCase) Create(ctx context.Context, in dto.ReceivableRequest) (*dto.ReceivableResponse, error) {
	p, err := uc.fromRequest(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, p.ID)
}

func (uc *ReceivableUseCase) Update(ctx context.Context, id int64, in dto.ReceivableRequest) (*dto.ReceivableResponse, error) {
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

func (uc *ReceivableUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *ReceivableUseCase) fromRequest(in dto.ReceivableRequest) (*entity.Receivable, error) {
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
	return &entity.Receivable{
		ClientID:      in.ClientID,
		ProjectID:     in.ProjectID,
		Concept:       concept,
		InvoiceNumber: text.Sanitize(in.InvoiceNumber),
		NetAmount:     in.NetAmount.Round(2),
		WithTax:       in.WithTax,
		Tax:           iva,
		AmountWithTax: total,
		IssueDate:     issued,
		DueDate:       due,
		Collected:     in.Collected,
		Notes:         text.Sanitize(in.Notes),
	}, nil
}

func toReceivableResponse(p *entity.Receivable) *dto.ReceivableResponse {
	return &dto.ReceivableResponse{
		ID:            p.ID,
		ClientID:      p.ClientID,
		ClientName:    p.ClientName,
		ProjectID:     p.ProjectID,
		Concept:       p.Concept,
		InvoiceNumber: p.InvoiceNumber,
		NetAmount:     p.NetAmount,
		WithTax:       p.WithTax,
		Tax:           p.Tax,
		AmountWithTax: p.AmountWithTax,
		IssueDate:     dto.FormatDate(p.IssueDate),
		DueDate:       dto.FormatOptionalDate(p.DueDate),
		Collected:     p.Collected,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
