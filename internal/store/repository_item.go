// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

type localItemRepository struct {
	*DB
}

func NewLocalItemRepository(db *DB) LocalItemRepository {
	return &localItemRepository{DB: db}
}

func (r *localItemRepository) Add(ctx context.Context, item models.Item) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertItemQuery(item)
	if err != nil {
		log.Err(err).Str("func", "localItemRepository.Add").Msg("failed to build insert query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localItemRepository.Add").Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localItemRepository.Add").
			Str("numero_patrimonio", item.NumeroPatrimonio).
			Msg("failed to insert item")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil || affected == 0 {
		log.Error().Err(err).Str("func", "localItemRepository.Add").Msg("insert affected no rows")
		return 0, ErrItemNotSaved
	}

	id, err := res.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "localItemRepository.Add").Msg("failed to read inserted id")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "localItemRepository.Add").Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().Str("func", "localItemRepository.Add").Int64("id", id).Msg("item saved locally")
	return id, nil
}

func (r *localItemRepository) GetAll(ctx context.Context) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItemsQuery()
	if err != nil {
		log.Err(err).Str("func", "localItemRepository.GetAll").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localItemRepository.GetAll").Msg("failed to begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "localItemRepository.GetAll").Msg("failed to query items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(
			&item.ID,
			&item.NumeroPatrimonio,
			&item.NomeObjeto,
			&item.LocalizacaoTexto,
			&item.FotoObjeto,
			&item.FotoLocalizacao,
			&item.CriadoEm,
		); err != nil {
			log.Err(err).Str("func", "localItemRepository.GetAll").Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "localItemRepository.GetAll").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "localItemRepository.GetAll").Msg("failed to commit transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return items, nil
}

func (r *localItemRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItemQuery(id)
	if err != nil {
		log.Err(err).Str("func", "localItemRepository.Delete").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, "localItemRepository.Delete", query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		log.Warn().Str("func", "localItemRepository.Delete").Int64("id", id).Msg("item not found")
		return fmt.Errorf("%w: id %d", ErrItemNotFound, id)
	}

	return nil
}

func (r *localItemRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildClearItemsQuery()
	if err != nil {
		log.Err(err).Str("func", "localItemRepository.Clear").Msg("failed to build clear query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, "localItemRepository.Clear", query, args)
	if err != nil {
		return err
	}

	log.Debug().Str("func", "localItemRepository.Clear").Int64("deleted", affected).Msg("local items cleared")
	return nil
}

// exec runs a single statement in its own transaction and returns the
// number of affected rows.
func (r *localItemRepository) exec(ctx context.Context, fn, query string, args []any) (int64, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to read affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", fn).Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return affected, nil
}
