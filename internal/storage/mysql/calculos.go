package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"react-golang/internal/storage"
)

func (s *Storage) SaveResultado(ctx context.Context, resultado *storage.ResultadoCalculo) error {
	const op = "storage.mysql.SaveResultado"

	inputJSON, err := json.Marshal(resultado.Input)
	if err != nil {
		return fmt.Errorf("%s: serializando input: %w", op, err)
	}

	resultadosJSON, err := json.Marshal(resultado.ResultadosProdutos)
	if err != nil {
		return fmt.Errorf("%s: serializando resultados: %w", op, err)
	}

	stmt := `
		INSERT INTO calculos (id, input, area_total, quantidade_solucao,
			resultados_produtos, tempo_estimado, cliente_nome, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, stmt,
		resultado.ID,
		string(inputJSON),
		resultado.AreaTotal,
		resultado.QuantidadeSolucao,
		string(resultadosJSON),
		resultado.TempoEstimado,
		resultado.ClienteNome,
		resultado.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// GetResultado devolve (nil, nil) quando o cálculo não existe mais:
// referência velha de serviço contribui custo zero, não erro.
func (s *Storage) GetResultado(ctx context.Context, id string) (*storage.ResultadoCalculo, error) {
	const op = "storage.mysql.GetResultado"

	stmt := `
		SELECT id, input, area_total, quantidade_solucao, resultados_produtos,
		       tempo_estimado, cliente_nome, created_at
		FROM calculos
		WHERE id = ?
	`

	resultado, err := scanResultado(s.db.QueryRowContext(ctx, stmt, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return resultado, nil
}

// GetAllResultados lista o histórico, mais recente primeiro.
func (s *Storage) GetAllResultados(ctx context.Context) ([]*storage.ResultadoCalculo, error) {
	const op = "storage.mysql.GetAllResultados"

	stmt := `
		SELECT id, input, area_total, quantidade_solucao, resultados_produtos,
		       tempo_estimado, cliente_nome, created_at
		FROM calculos
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var resultados []*storage.ResultadoCalculo
	for rows.Next() {
		resultado, err := scanResultado(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		resultados = append(resultados, resultado)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: erro iterando histórico: %w", op, err)
	}

	return resultados, nil
}

func (s *Storage) DeleteResultado(ctx context.Context, id string) error {
	const op = "storage.mysql.DeleteResultado"

	_, err := s.db.ExecContext(ctx, "DELETE FROM calculos WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func scanResultado(row rowScanner) (*storage.ResultadoCalculo, error) {
	resultado := &storage.ResultadoCalculo{}

	var (
		inputJSON      string
		resultadosJSON string
		tempoEstimado  sql.NullInt64
		clienteNome    sql.NullString
	)

	err := row.Scan(
		&resultado.ID,
		&inputJSON,
		&resultado.AreaTotal,
		&resultado.QuantidadeSolucao,
		&resultadosJSON,
		&tempoEstimado,
		&clienteNome,
		&resultado.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if tempoEstimado.Valid {
		tempo := int(tempoEstimado.Int64)
		resultado.TempoEstimado = &tempo
	}
	if clienteNome.Valid {
		resultado.ClienteNome = &clienteNome.String
	}

	if err := json.Unmarshal([]byte(inputJSON), &resultado.Input); err != nil {
		return nil, fmt.Errorf("parsing JSON do input: %w", err)
	}

	resultado.ResultadosProdutos = []storage.ResultadoProduto{}
	if err := json.Unmarshal([]byte(resultadosJSON), &resultado.ResultadosProdutos); err != nil {
		return nil, fmt.Errorf("parsing JSON dos resultados: %w", err)
	}

	return resultado, nil
}
