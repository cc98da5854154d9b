package dte

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/facturacion-sv/internal/application/dto"
	"github.com/jhoicas/facturacion-sv/internal/domain"
	domaindte "github.com/jhoicas/facturacion-sv/internal/domain/dte"
	"github.com/jhoicas/facturacion-sv/internal/domain/entity"
	"github.com/jhoicas/facturacion-sv/internal/domain/repository"
	"github.com/jhoicas/facturacion-sv/pkg/logger"
)

// maxIssueAttempts intentos ante colisión de número de control o código de generación.
const maxIssueAttempts = 3

// IssueUseCase emite un DTE: perfil → cálculo → correlativo → armado → persistencia (PENDING).
type IssueUseCase struct {
	txRunner          IssueTxRunner
	companyRepo       repository.CompanyRepository
	customerRepo      repository.CustomerRepository
	establishmentRepo repository.EstablishmentRepository
	cfg               domaindte.Config
	metrics           Metrics
	log               *logger.Logger
	now               func() time.Time
}

// NewIssueUseCase construye el caso de uso. metrics y log pueden ser nil.
func NewIssueUseCase(
	txRunner IssueTxRunner,
	companyRepo repository.CompanyRepository,
	customerRepo repository.CustomerRepository,
	establishmentRepo repository.EstablishmentRepository,
	cfg domaindte.Config,
	metrics Metrics,
	log *logger.Logger,
) *IssueUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &IssueUseCase{
		txRunner:          txRunner,
		companyRepo:       companyRepo,
		customerRepo:      customerRepo,
		establishmentRepo: establishmentRepo,
		cfg:               cfg,
		metrics:           metrics,
		log:               log,
		now:               time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *IssueUseCase) WithClock(now func() time.Time) *IssueUseCase {
	uc.now = now
	return uc
}

// Issue emite un documento del tipo indicado (código "01" o sigla "FE").
//
// Retorna:
//   - domain.ErrIncompleteProfile  si la empresa no tiene NIT y NRC.
//   - *dte.ValidationError         si ítems, contraparte o documentos relacionados son inválidos.
//   - domain.ErrNotFound           si la empresa o el cliente no existen.
//   - domain.ErrForbidden          si el cliente pertenece a otra empresa.
//   - domain.ErrConflict           si tras los reintentos el correlativo sigue en colisión.
func (uc *IssueUseCase) Issue(ctx context.Context, companyID, userID, tipo string, in dto.IssueDTERequest) (*dto.DTEResponse, error) {
	t, ok := domaindte.ParseDocumentType(tipo)
	if !ok {
		return nil, &domaindte.ValidationError{Field: "tipoDte", Message: "tipo de documento no soportado: " + tipo}
	}

	// ── 1. Perfil fiscal ─────────────────────────────────────────────────────
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, fmt.Errorf("emitir: obtener empresa: %w", err)
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	profile := company.FiscalProfile()
	if err := domaindte.CheckProfile(profile); err != nil {
		return nil, err
	}

	// ── 2. Ítems, totales y documentos relacionados ─────────────────────────
	input, err := requestInput(t, in)
	if err != nil {
		return nil, err
	}

	// ── 3. Contraparte y establecimiento ─────────────────────────────────────
	counterparty, customerID, err := uc.counterparty(companyID, in)
	if err != nil {
		return nil, err
	}
	est, err := uc.establishment(ctx, companyID)
	if err != nil {
		return nil, err
	}
	input.Profile = profile
	input.Counterparty = counterparty
	input.Establishment = est
	input.IssuedAt = uc.now()
	totals := input.Totals

	// ── 4. Correlativo + armado + persistencia (con reintento) ───────────────
	var record *entity.DTE
	for attempt := 1; ; attempt++ {
		record, err = uc.issueOnce(ctx, companyID, userID, customerID, input)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
		uc.metrics.SequenceConflict()
		uc.log.ForCompany(companyID).Warn().Err(err).
			Str("tipo_dte", t.Code()).
			Int("attempt", attempt).
			Msg("colisión al reservar correlativo")
		if attempt == maxIssueAttempts {
			return nil, err
		}
	}

	uc.metrics.Issued(t.Code())
	uc.log.ForCompany(companyID).Info().
		Str("tipo_dte", t.Code()).
		Str("numero_control", record.NumeroControl).
		Str("codigo_generacion", record.CodigoGeneracion).
		Str("total", totals.Total.StringFixed(2)).
		Msg("dte emitido")
	return toDTEResponse(record, true), nil
}

// issueOnce reserva el correlativo y persiste el documento en una sola transacción.
func (uc *IssueUseCase) issueOnce(ctx context.Context, companyID, userID, customerID string, in domaindte.AssembleInput) (*entity.DTE, error) {
	var record *entity.DTE
	err := uc.txRunner.RunIssue(ctx, func(seqRepo repository.SequenceRepository, dteRepo repository.DTERepository) error {
		prior, err := seqRepo.Next(ctx, companyID, in.Type.Code())
		if err != nil {
			return err
		}
		in.Sequence = domaindte.NewSequenceIdentifier(in.Type, in.Establishment.CodEstable, in.Establishment.CodPuntoVenta, prior)

		doc, err := domaindte.Assemble(uc.cfg, in)
		if err != nil {
			return err
		}
		raw, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("serializar dte: %w", err)
		}

		now := uc.now()
		record = &entity.DTE{
			ID:                uuid.New().String(),
			CompanyID:         companyID,
			CustomerID:        customerID,
			TipoDTE:           in.Type.Code(),
			NumeroControl:     in.Sequence.NumeroControl,
			CodigoGeneracion:  in.Sequence.CodigoGeneracion,
			Status:            string(domaindte.StatusPending),
			ReceptorNombre:    strings.TrimSpace(in.Counterparty.Name),
			ReceptorDocumento: receptorDocumento(in.Counterparty),
			TotalGravada:      in.Totals.Taxable,
			TotalIVA:          in.Totals.Tax,
			TotalRetenido:     in.Totals.Withheld,
			TotalPagar:        in.Totals.Total,
			Documento:         raw,
			FecEmi:            in.IssuedAt,
			CreatedBy:         userID,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		return dteRepo.Create(ctx, record)
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// counterparty resuelve la contraparte: cliente registrado, datos en línea o ninguna.
func (uc *IssueUseCase) counterparty(companyID string, in dto.IssueDTERequest) (domaindte.Counterparty, string, error) {
	if in.CustomerID != "" {
		customer, err := uc.customerRepo.GetByID(in.CustomerID)
		if err != nil {
			return domaindte.Counterparty{}, "", fmt.Errorf("emitir: obtener cliente: %w", err)
		}
		if customer == nil {
			return domaindte.Counterparty{}, "", domain.ErrNotFound
		}
		if customer.CompanyID != companyID {
			return domaindte.Counterparty{}, "", domain.ErrForbidden
		}
		return customer.Counterparty(), customer.ID, nil
	}
	if in.Receptor != nil {
		return counterpartyFromRequest(*in.Receptor), "", nil
	}
	return domaindte.Counterparty{}, "", nil
}

// establishment usa el establecimiento activo o, si no hay, los códigos de configuración.
func (uc *IssueUseCase) establishment(ctx context.Context, companyID string) (domaindte.Establishment, error) {
	est, err := uc.establishmentRepo.GetActive(ctx, companyID)
	if err != nil {
		return domaindte.Establishment{}, fmt.Errorf("emitir: obtener establecimiento: %w", err)
	}
	if est == nil {
		return domaindte.Establishment{
			CodEstable:    uc.cfg.CodEstable,
			CodPuntoVenta: uc.cfg.CodPuntoVenta,
		}, nil
	}
	return domaindte.Establishment{
		CodEstable:      est.CodEstable,
		CodPuntoVenta:   est.CodPuntoVenta,
		CodEstableMH:    est.CodEstableMH,
		CodPuntoVentaMH: est.CodPuntoVentaMH,
	}, nil
}

// requestInput valida ítems y calcula totales; deja sin llenar perfil, contraparte,
// establecimiento y fecha.
func requestInput(t domaindte.DocumentType, in dto.IssueDTERequest) (domaindte.AssembleInput, error) {
	items, err := domaindte.ParseItems(in.Items)
	if err != nil {
		return domaindte.AssembleInput{}, err
	}
	totals, err := domaindte.Calculate(t, items, domaindte.CalcOptions{
		Deductions: in.Deductions,
		Commission: in.Commission,
	})
	if err != nil {
		return domaindte.AssembleInput{}, err
	}
	related, err := relatedDocuments(in.Related)
	if err != nil {
		return domaindte.AssembleInput{}, err
	}
	return domaindte.AssembleInput{
		Type:         t,
		Totals:       totals,
		Payment:      payment(in.Payment),
		Related:      related,
		Extension:    extension(in.Extension),
		Appendix:     appendix(in.Appendix),
		Observations: in.Observations,
		BienTitulo:   in.BienTitulo,
	}, nil
}

func relatedDocuments(in []dto.RelatedDocumentRequest) ([]domaindte.RelatedDocument, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]domaindte.RelatedDocument, 0, len(in))
	for _, r := range in {
		t, ok := domaindte.ParseDocumentType(r.TipoDTE)
		if !ok {
			return nil, &domaindte.ValidationError{Field: "documentoRelacionado", Message: "tipo de documento no soportado: " + r.TipoDTE}
		}
		if strings.TrimSpace(r.Number) == "" {
			return nil, &domaindte.ValidationError{Field: "documentoRelacionado", Message: "número de documento obligatorio"}
		}
		issued, err := time.Parse("2006-01-02", r.IssuedAt)
		if err != nil {
			return nil, &domaindte.ValidationError{Field: "documentoRelacionado", Message: "fecha de emisión inválida, use AAAA-MM-DD"}
		}
		out = append(out, domaindte.RelatedDocument{
			Type:           t,
			GenerationType: r.GenerationType,
			Number:         strings.TrimSpace(r.Number),
			IssuedAt:       issued,
		})
	}
	return out, nil
}

func receptorDocumento(c domaindte.Counterparty) string {
	if c.NIT != "" {
		return c.NIT
	}
	return c.DocumentNumber
}
