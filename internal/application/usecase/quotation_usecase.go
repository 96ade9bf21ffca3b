package usecase

import (
	"context"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/files"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
	"github.com/jhoicas/Gestion-api/internal/domain/text"
)

// QuotationUseCase casos de uso para cotizaciones con archivos adjuntos (PDF, XLSX o CSV).
type QuotationUseCase struct {
	repo  repository.QuotationRepository
	files files.Store
}

// NewQuotationUseCase construye el caso de uso.
func NewQuotationUseCase(repo repository.QuotationRepository, store files.Store) *QuotationUseCase {
	return &QuotationUseCase{repo: repo, files: store}
}

func (uc *QuotationUseCase) List(ctx context.Context) ([]*dto.QuotationResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(list, toQuotationResponse), nil
}

func (uc *QuotationUseCase) GetByID(ctx context.Context, id int64) (*dto.QuotationResponse, error) {
	q, err := found(uc.repo.GetByID(ctx, id))
	if err != nil {
		return nil, err
	}
	return toQuotationResponse(q), nil
}

// Create valida la cotización, guarda los archivos y registra la fila.
// Si la inserción falla, los archivos recién guardados se eliminan.
func (uc *QuotationUseCase) Create(ctx context.Context, in dto.QuotationRequest, uploads []dto.FileUpload) (*dto.QuotationResponse, error) {
	q, err := quotationFromRequest(in)
	if err != nil {
		return nil, err
	}
	saved, err := uc.saveAll(ctx, uploads)
	if err != nil {
		return nil, err
	}
	q.Files = saved
	if err := uc.repo.Create(ctx, q); err != nil {
		files.Cleanup(ctx, uc.files, saved...)
		return nil, err
	}
	return uc.GetByID(ctx, q.ID)
}

// Update reemplaza los datos de la cotización. Si llegan archivos, sustituyen a los
// anteriores, que se eliminan después de actualizar la fila.
func (uc *QuotationUseCase) Update(ctx context.Context, id int64, in dto.QuotationRequest, uploads []dto.FileUpload) (*dto.QuotationResponse, error) {
	q, err := quotationFromRequest(in)
	if err != nil {
		return nil, err
	}
	current, err := found(uc.repo.GetByID(ctx, id))
	if err != nil {
		return nil, err
	}
	q.ID = id
	q.Files = current.Files

	saved, err := uc.saveAll(ctx, uploads)
	if err != nil {
		return nil, err
	}
	if len(saved) > 0 {
		q.Files = saved
	}
	if err := uc.repo.Update(ctx, q); err != nil {
		files.Cleanup(ctx, uc.files, saved...)
		return nil, err
	}
	if len(saved) > 0 {
		files.Cleanup(ctx, uc.files, current.Files...)
	}
	return uc.GetByID(ctx, id)
}

// Delete elimina la cotización y después sus archivos; un archivo que no se pueda
// borrar se registra en el log pero no hace fallar la operación.
func (uc *QuotationUseCase) Delete(ctx context.Context, id int64) error {
	q, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if q == nil {
		return domain.ErrNotFound
	}
	files.Cleanup(ctx, uc.files, q.Files...)
	return nil
}

func (uc *QuotationUseCase) saveAll(ctx context.Context, uploads []dto.FileUpload) ([]string, error) {
	saved := make([]string, 0, len(uploads))
	for _, up := range uploads {
		name, err := uc.files.Save(ctx, files.KindQuotation, up)
		if err != nil {
			files.Cleanup(ctx, uc.files, saved...)
			return nil, err
		}
		saved = append(saved, name)
	}
	return saved, nil
}

func quotationFromRequest(in dto.QuotationRequest) (*entity.Quotation, error) {
	status := in.Status
	if status == "" {
		status = entity.QuotationStatusPending
	}
	if !entity.ValidQuotationStatus(status) {
		return nil, domain.NewValidationError("status", "estado de cotización desconocido")
	}
	if in.Amount.IsNegative() {
		return nil, domain.NewValidationError("amount", "no puede ser negativo")
	}
	description := text.Sanitize(in.Description)
	if description == "" {
		return nil, domain.NewValidationError("description", "es requerida")
	}
	date, err := dto.ParseDate("date", in.Date)
	if err != nil {
		return nil, err
	}
	return &entity.Quotation{
		ClientID:    in.ClientID,
		ProjectID:   in.ProjectID,
		Folio:       text.Sanitize(in.Folio),
		Description: description,
		Amount:      in.Amount.Round(2),
		Status:      status,
		Date:        date,
		Files:       []string{},
	}, nil
}

func toQuotationResponse(q *entity.Quotation) *dto.QuotationResponse {
	fileNames := q.Files
	if fileNames == nil {
		fileNames = []string{}
	}
	return &dto.QuotationResponse{
		ID:          q.ID,
		ClientID:    q.ClientID,
		ClientName:  q.ClientName,
		ProjectID:   q.ProjectID,
		Folio:       q.Folio,
		Description: q.Description,
		Amount:      q.Amount,
		Status:      q.Status,
		Date:        dto.FormatDate(q.Date),
		Files:       fileNames,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}
