package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const coefFatorAgua = "fator_agua_por_m2"

// GetFatorAgua lê o coeficiente de litros de água por m². Devolve 0
// quando ainda não foi configurado; o serviço de cálculo cai no padrão
// da config.
func (s *Storage) GetFatorAgua(ctx context.Context) (float64, error) {
	const op = "storage.mysql.GetFatorAgua"

	var valor float64
	err := s.db.QueryRowContext(ctx,
		"SELECT valor FROM coeficientes WHERE nome = ?", coefFatorAgua).Scan(&valor)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return valor, nil
}

func (s *Storage) UpdateFatorAgua(ctx context.Context, valor float64) error {
	const op = "storage.mysql.UpdateFatorAgua"

	stmt := `
		INSERT INTO coeficientes (nome, valor)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE valor = VALUES(valor)
	`

	_, err := s.db.ExecContext(ctx, stmt, coefFatorAgua, valor)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
