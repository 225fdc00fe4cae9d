package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"react-golang/internal/storage"
)

func (s *Storage) SaveServico(ctx context.Context, servico *storage.Servico) error {
	const op = "storage.mysql.SaveServico"

	stmt := `
		INSERT INTO servicos (id, cliente_id, tipo, descricao, observacoes,
			custo_produtos, custo_mao_de_obra, preco_venda, lucro,
			calculo_id, data_servico, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, stmt,
		servico.ID,
		servico.ClienteID,
		servico.Tipo,
		servico.Descricao,
		servico.Observacoes,
		servico.CustoProdutos,
		servico.CustoMaoDeObra,
		servico.PrecoVenda,
		servico.Lucro,
		servico.CalculoID,
		servico.DataServico,
		servico.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) UpdateServico(ctx context.Context, servico *storage.Servico) error {
	const op = "storage.mysql.UpdateServico"

	stmt := `
		UPDATE servicos
		SET tipo = ?, descricao = ?, observacoes = ?, custo_produtos = ?,
		    custo_mao_de_obra = ?, preco_venda = ?, lucro = ?, calculo_id = ?,
		    data_servico = ?
		WHERE id = ? AND cliente_id = ?
	`

	res, err := s.db.ExecContext(ctx, stmt,
		servico.Tipo,
		servico.Descricao,
		servico.Observacoes,
		servico.CustoProdutos,
		servico.CustoMaoDeObra,
		servico.PrecoVenda,
		servico.Lucro,
		servico.CalculoID,
		servico.DataServico,
		servico.ID,
		servico.ClienteID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: serviço '%s' não encontrado", op, servico.ID)
	}

	return nil
}

func (s *Storage) DeleteServico(ctx context.Context, clienteID, servicoID string) error {
	const op = "storage.mysql.DeleteServico"

	_, err := s.db.ExecContext(ctx,
		"DELETE FROM servicos WHERE id = ? AND cliente_id = ?", servicoID, clienteID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// getServicos lista os serviços de um cliente, ou de todos quando
// clienteID é vazio.
func (s *Storage) getServicos(ctx context.Context, clienteID string) ([]*storage.Servico, error) {
	const op = "storage.mysql.getServicos"

	stmt := `
		SELECT id, cliente_id, tipo, descricao, observacoes, custo_produtos,
		       custo_mao_de_obra, preco_venda, lucro, calculo_id, data_servico, created_at
		FROM servicos
	`

	var args []interface{}
	if clienteID != "" {
		stmt += " WHERE cliente_id = ?"
		args = append(args, clienteID)
	}
	stmt += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var servicos []*storage.Servico
	for rows.Next() {
		servico := &storage.Servico{}

		var (
			observacoes    sql.NullString
			custoMaoDeObra sql.NullFloat64
			precoVenda     sql.NullFloat64
			lucro          sql.NullFloat64
			calculoID      sql.NullString
			dataServico    sql.NullString
		)

		err := rows.Scan(
			&servico.ID,
			&servico.ClienteID,
			&servico.Tipo,
			&servico.Descricao,
			&observacoes,
			&servico.CustoProdutos,
			&custoMaoDeObra,
			&precoVenda,
			&lucro,
			&calculoID,
			&dataServico,
			&servico.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if observacoes.Valid {
			servico.Observacoes = &observacoes.String
		}
		if custoMaoDeObra.Valid {
			servico.CustoMaoDeObra = &custoMaoDeObra.Float64
		}
		if precoVenda.Valid {
			servico.PrecoVenda = &precoVenda.Float64
		}
		if lucro.Valid {
			servico.Lucro = &lucro.Float64
		}
		if calculoID.Valid {
			servico.CalculoID = &calculoID.String
		}
		if dataServico.Valid {
			servico.DataServico = &dataServico.String
		}

		servicos = append(servicos, servico)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: erro iterando serviços: %w", op, err)
	}

	return servicos, nil
}
