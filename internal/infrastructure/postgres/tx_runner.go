package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/facturacion-sv/internal/application/dte"
	"github.com/jhoicas/facturacion-sv/internal/application/usecase"
	"github.com/jhoicas/facturacion-sv/internal/domain/repository"
)

var (
	_ dte.IssueTxRunner             = (*TxRunner)(nil)
	_ usecase.EstablishmentTxRunner = (*TxRunner)(nil)
)

// TxRunner entrega a los casos de uso repositorios atados a una misma transacción.
type TxRunner struct {
	pool *pgxpool.Pool
}

func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunIssue reserva el correlativo y persiste el DTE en una sola transacción.
// Si fn falla, el contador vuelve a su valor anterior.
func (r *TxRunner) RunIssue(ctx context.Context, fn func(
	seqRepo repository.SequenceRepository,
	dteRepo repository.DTERepository,
) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewSequenceRepository(tx), NewDTERepository(tx))
	})
}

// RunEstablishment desactivar el establecimiento anterior e insertar el nuevo es atómico.
func (r *TxRunner) RunEstablishment(ctx context.Context, fn func(repo repository.EstablishmentRepository) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewEstablishmentRepository(tx))
	})
}

// inTx confirma solo si fn no devuelve error; el rollback diferido es no-op tras el commit.
func (r *TxRunner) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
