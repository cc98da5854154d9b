package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/facturacion-sv/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo contador de correlativos en dte_sequences.
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el contador. Debe recibir la tx que persiste el DTE.
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next incrementa el contador de (empresa, tipo) y devuelve la cantidad previa.
// La primera vez siembra el contador con los documentos ya emitidos, de modo que
// una base con historial continúa la numeración. El upsert toma un bloqueo de fila:
// dos emisiones concurrentes del mismo tipo se serializan hasta el commit.
func (r *SequenceRepo) Next(ctx context.Context, companyID, tipoDTE string) (int64, error) {
	const query = `
		INSERT INTO dte_sequences (company_id, tipo_dte, last_number)
		VALUES ($1, $2, (SELECT COUNT(*) FROM dtes WHERE company_id = $1 AND tipo_dte = $2) + 1)
		ON CONFLICT (company_id, tipo_dte)
		DO UPDATE SET last_number = dte_sequences.last_number + 1
		RETURNING last_number`
	var last int64
	if err := r.q.QueryRow(ctx, query, companyID, tipoDTE).Scan(&last); err != nil {
		return 0, fmt.Errorf("next dte sequence: %w", err)
	}
	return last - 1, nil
}
