package dte

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/facturacion-sv/internal/application/dto"
	"github.com/jhoicas/facturacion-sv/internal/domain"
	domaindte "github.com/jhoicas/facturacion-sv/internal/domain/dte"
	"github.com/jhoicas/facturacion-sv/internal/domain/entity"
	"github.com/jhoicas/facturacion-sv/internal/domain/repository"
	"github.com/jhoicas/facturacion-sv/pkg/logger"
)

// QueryUseCase consultas de documentos emitidos y registro del resultado de transmisión.
// Todas las operaciones se acotan a la empresa del token.
type QueryUseCase struct {
	repo repository.DTERepository
	log  *logger.Logger
	now  func() time.Time
}

// NewQueryUseCase construye el caso de uso. log puede ser nil.
func NewQueryUseCase(repo repository.DTERepository, log *logger.Logger) *QueryUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &QueryUseCase{repo: repo, log: log, now: time.Now}
}

// Get devuelve el documento con su JSON armado.
func (uc *QueryUseCase) Get(ctx context.Context, companyID, id string) (*dto.DTEResponse, error) {
	d, err := uc.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toDTEResponse(d, true), nil
}

// JSON devuelve el documento armado tal como se transmitiría.
func (uc *QueryUseCase) JSON(ctx context.Context, companyID, id string) (json.RawMessage, error) {
	d, err := uc.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if len(d.Documento) == 0 {
		return nil, fmt.Errorf("%w: el documento está en estado %s y aún no tiene JSON", domain.ErrConflict, d.Status)
	}
	return d.Documento, nil
}

// List lista documentos con filtros y total para paginación.
func (uc *QueryUseCase) List(ctx context.Context, companyID string, in dto.DTEListRequest) (*dto.DTEListResponse, error) {
	in.PageRequest = in.PageRequest.Normalize()
	f, err := ParseFilter(in)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx, companyID, f, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(ctx, companyID, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DTEResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDTEResponse(d, false))
	}
	return &dto.DTEListResponse{
		Items: items,
		Page:  in.Response(total),
	}, nil
}

// Status vista ligera para polling.
func (uc *QueryUseCase) Status(ctx context.Context, companyID, id string) (*dto.DTEStatusDTO, error) {
	d, err := uc.repo.GetStatus(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	return toStatusDTO(d), nil
}

// RecordTransmission registra el resultado de la transmisión a Hacienda.
// Solo se aceptan PENDING → SENT (con sello de recepción) y PENDING → REJECTED (con observaciones);
// cualquier otra transición devuelve domain.ErrConflict.
func (uc *QueryUseCase) RecordTransmission(ctx context.Context, companyID, id string, in dto.TransmissionRequest) (*dto.DTEStatusDTO, error) {
	to := domaindte.Status(strings.ToUpper(strings.TrimSpace(in.Status)))
	switch to {
	case domaindte.StatusSent:
		if strings.TrimSpace(in.SelloRecibido) == "" {
			return nil, &domaindte.ValidationError{Field: "sello_recibido", Message: "obligatorio cuando el documento fue aceptado"}
		}
	case domaindte.StatusRejected:
		if strings.TrimSpace(in.Observaciones) == "" {
			return nil, &domaindte.ValidationError{Field: "observaciones", Message: "indique el motivo del rechazo"}
		}
	default:
		return nil, &domaindte.ValidationError{Field: "status", Message: "debe ser SENT o REJECTED"}
	}

	current, err := uc.repo.GetStatus(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	from := domaindte.Status(current.Status)
	if !from.CanTransition(to) {
		return nil, fmt.Errorf("%w: transición %s → %s no permitida", domain.ErrConflict, from, to)
	}

	current.Status = string(to)
	current.SelloRecibido = strings.TrimSpace(in.SelloRecibido)
	current.Observaciones = strings.TrimSpace(in.Observaciones)
	current.UpdatedAt = uc.now()
	if err := uc.repo.UpdateStatus(ctx, current, string(from)); err != nil {
		return nil, err
	}
	uc.log.ForCompany(companyID).Info().
		Str("numero_control", current.NumeroControl).
		Str("status", current.Status).
		Msg("resultado de transmisión registrado")
	return toStatusDTO(current), nil
}

func (uc *QueryUseCase) load(ctx context.Context, companyID, id string) (*entity.DTE, error) {
	d, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	return d, nil
}

// ParseFilter convierte los filtros de query string. Las fechas son días completos
// (hasta es inclusiva); tipo acepta código o sigla.
func ParseFilter(in dto.DTEListRequest) (entity.DTEFilter, error) {
	var f entity.DTEFilter
	if in.TipoDTE != "" {
		t, ok := domaindte.ParseDocumentType(in.TipoDTE)
		if !ok {
			return f, &domaindte.ValidationError{Field: "tipo", Message: "tipo de documento no soportado: " + in.TipoDTE}
		}
		f.TipoDTE = t.Code()
	}
	if in.Status != "" {
		s := strings.ToUpper(in.Status)
		switch domaindte.Status(s) {
		case domaindte.StatusDraft, domaindte.StatusPending, domaindte.StatusSent, domaindte.StatusRejected:
			f.Status = s
		default:
			return f, &domaindte.ValidationError{Field: "status", Message: "estado desconocido: " + in.Status}
		}
	}
	if in.From != "" {
		from, err := time.Parse("2006-01-02", in.From)
		if err != nil {
			return f, &domaindte.ValidationError{Field: "desde", Message: "use el formato AAAA-MM-DD"}
		}
		f.From = &from
	}
	if in.To != "" {
		to, err := time.Parse("2006-01-02", in.To)
		if err != nil {
			return f, &domaindte.ValidationError{Field: "hasta", Message: "use el formato AAAA-MM-DD"}
		}
		to = to.AddDate(0, 0, 1)
		f.To = &to
	}
	if f.From != nil && f.To != nil && !f.From.Before(*f.To) {
		return f, &domaindte.ValidationError{Field: "desde", Message: "debe ser anterior o igual a hasta"}
	}
	return f, nil
}
