package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"react-golang/internal/storage"
)

const produtoColunas = `
	id, nome, fabricante, diluicoes, tipos_estofado_compativel,
	unidade_medida, valor_pago, quantidade_embalagem, custo_por_unidade,
	rendimento_por_m2, observacoes, created_at, updated_at
`

func (s *Storage) GetAllProdutos(ctx context.Context) ([]*storage.Produto, error) {
	const op = "storage.mysql.GetAllProdutos"

	stmt := "SELECT " + produtoColunas + " FROM produtos ORDER BY nome"

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var produtos []*storage.Produto
	for rows.Next() {
		produto, err := scanProduto(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		produtos = append(produtos, produto)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: erro iterando produtos: %w", op, err)
	}

	return produtos, nil
}

// GetProdutosByIDs devolve só os produtos que existem; id inexistente
// simplesmente não volta (o orquestrador tolera seleção velha).
func (s *Storage) GetProdutosByIDs(ctx context.Context, ids []string) ([]*storage.Produto, error) {
	const op = "storage.mysql.GetProdutosByIDs"

	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]

	stmt := "SELECT " + produtoColunas + " FROM produtos WHERE id IN (" + placeholders + ")"

	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var produtos []*storage.Produto
	for rows.Next() {
		produto, err := scanProduto(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		produtos = append(produtos, produto)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: erro iterando produtos: %w", op, err)
	}

	return produtos, nil
}

func (s *Storage) GetProduto(ctx context.Context, id string) (*storage.Produto, error) {
	const op = "storage.mysql.GetProduto"

	stmt := "SELECT " + produtoColunas + " FROM produtos WHERE id = ?"

	row := s.db.QueryRowContext(ctx, stmt, id)
	produto, err := scanProduto(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: produto '%s' não encontrado: %w", op, id, err)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return produto, nil
}

func (s *Storage) SaveProduto(ctx context.Context, produto *storage.Produto) error {
	const op = "storage.mysql.SaveProduto"

	diluicoesJSON, err := json.Marshal(produto.Diluicoes)
	if err != nil {
		return fmt.Errorf("%s: serializando diluições: %w", op, err)
	}

	tiposJSON, err := json.Marshal(produto.TiposEstofadoCompativel)
	if err != nil {
		return fmt.Errorf("%s: serializando tipos compatíveis: %w", op, err)
	}

	stmt := `
		INSERT INTO produtos (` + produtoColunas + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, stmt,
		produto.ID,
		produto.Nome,
		produto.Fabricante,
		string(diluicoesJSON),
		string(tiposJSON),
		produto.UnidadeMedida,
		produto.ValorPago,
		produto.QuantidadeEmbalagem,
		produto.CustoPorUnidade,
		produto.RendimentoPorM2,
		produto.Observacoes,
		produto.CreatedAt,
		produto.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) UpdateProduto(ctx context.Context, produto *storage.Produto) error {
	const op = "storage.mysql.UpdateProduto"

	diluicoesJSON, err := json.Marshal(produto.Diluicoes)
	if err != nil {
		return fmt.Errorf("%s: serializando diluições: %w", op, err)
	}

	tiposJSON, err := json.Marshal(produto.TiposEstofadoCompativel)
	if err != nil {
		return fmt.Errorf("%s: serializando tipos compatíveis: %w", op, err)
	}

	stmt := `
		UPDATE produtos
		SET nome = ?, fabricante = ?, diluicoes = ?, tipos_estofado_compativel = ?,
		    unidade_medida = ?, valor_pago = ?, quantidade_embalagem = ?,
		    custo_por_unidade = ?, rendimento_por_m2 = ?, observacoes = ?, updated_at = ?
		WHERE id = ?
	`

	res, err := s.db.ExecContext(ctx, stmt,
		produto.Nome,
		produto.Fabricante,
		string(diluicoesJSON),
		string(tiposJSON),
		produto.UnidadeMedida,
		produto.ValorPago,
		produto.QuantidadeEmbalagem,
		produto.CustoPorUnidade,
		produto.RendimentoPorM2,
		produto.Observacoes,
		produto.UpdatedAt,
		produto.ID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: produto '%s' não encontrado", op, produto.ID)
	}

	return nil
}

func (s *Storage) DeleteProduto(ctx context.Context, id string) error {
	const op = "storage.mysql.DeleteProduto"

	_, err := s.db.ExecContext(ctx, "DELETE FROM produtos WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduto(row rowScanner) (*storage.Produto, error) {
	produto := &storage.Produto{}

	var (
		fabricante    sql.NullString
		diluicoesJSON string
		tiposJSON     string
		observacoes   sql.NullString
	)

	err := row.Scan(
		&produto.ID,
		&produto.Nome,
		&fabricante,
		&diluicoesJSON,
		&tiposJSON,
		&produto.UnidadeMedida,
		&produto.ValorPago,
		&produto.QuantidadeEmbalagem,
		&produto.CustoPorUnidade,
		&produto.RendimentoPorM2,
		&observacoes,
		&produto.CreatedAt,
		&produto.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if fabricante.Valid {
		produto.Fabricante = &fabricante.String
	}
	if observacoes.Valid {
		produto.Observacoes = &observacoes.String
	}

	if err := json.Unmarshal([]byte(diluicoesJSON), &produto.Diluicoes); err != nil {
		return nil, fmt.Errorf("parsing JSON de diluições: %w", err)
	}
	if err := json.Unmarshal([]byte(tiposJSON), &produto.TiposEstofadoCompativel); err != nil {
		return nil, fmt.Errorf("parsing JSON de tipos compatíveis: %w", err)
	}

	return produto, nil
}
