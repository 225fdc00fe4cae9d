package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"react-golang/internal/storage"
)

func (s *Storage) GetAllClientes(ctx context.Context) ([]*storage.Cliente, error) {
	const op = "storage.mysql.GetAllClientes"

	stmt := `
		SELECT id, nome, telefone, endereco, email, observacoes, created_at, updated_at
		FROM clientes
		ORDER BY nome
	`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var clientes []*storage.Cliente
	for rows.Next() {
		cliente, err := scanCliente(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		clientes = append(clientes, cliente)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: erro iterando clientes: %w", op, err)
	}

	// Carrega os serviços de todos os clientes numa consulta só.
	servicos, err := s.getServicos(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	porCliente := make(map[string][]storage.Servico)
	for _, servico := range servicos {
		porCliente[servico.ClienteID] = append(porCliente[servico.ClienteID], *servico)
	}

	for _, cliente := range clientes {
		cliente.Servicos = porCliente[cliente.ID]
		if cliente.Servicos == nil {
			cliente.Servicos = []storage.Servico{}
		}
	}

	return clientes, nil
}

func (s *Storage) GetCliente(ctx context.Context, id string) (*storage.Cliente, error) {
	const op = "storage.mysql.GetCliente"

	stmt := `
		SELECT id, nome, telefone, endereco, email, observacoes, created_at, updated_at
		FROM clientes
		WHERE id = ?
	`

	cliente, err := scanCliente(s.db.QueryRowContext(ctx, stmt, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: cliente '%s' não encontrado: %w", op, id, err)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	servicos, err := s.getServicos(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cliente.Servicos = make([]storage.Servico, 0, len(servicos))
	for _, servico := range servicos {
		cliente.Servicos = append(cliente.Servicos, *servico)
	}

	return cliente, nil
}

func (s *Storage) SaveCliente(ctx context.Context, cliente *storage.Cliente) error {
	const op = "storage.mysql.SaveCliente"

	stmt := `
		INSERT INTO clientes (id, nome, telefone, endereco, email, observacoes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, stmt,
		cliente.ID,
		cliente.Nome,
		cliente.Telefone,
		cliente.Endereco,
		cliente.Email,
		cliente.Observacoes,
		cliente.CreatedAt,
		cliente.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) UpdateCliente(ctx context.Context, cliente *storage.Cliente) error {
	const op = "storage.mysql.UpdateCliente"

	stmt := `
		UPDATE clientes
		SET nome = ?, telefone = ?, endereco = ?, email = ?, observacoes = ?, updated_at = ?
		WHERE id = ?
	`

	res, err := s.db.ExecContext(ctx, stmt,
		cliente.Nome,
		cliente.Telefone,
		cliente.Endereco,
		cliente.Email,
		cliente.Observacoes,
		cliente.UpdatedAt,
		cliente.ID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: cliente '%s' não encontrado", op, cliente.ID)
	}

	return nil
}

// DeleteCliente apaga o cliente e os serviços dele junto.
func (s *Storage) DeleteCliente(ctx context.Context, id string) error {
	const op = "storage.mysql.DeleteCliente"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM servicos WHERE cliente_id = ?", id); err != nil {
		return fmt.Errorf("%s: apagando serviços: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM clientes WHERE id = ?", id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func scanCliente(row rowScanner) (*storage.Cliente, error) {
	cliente := &storage.Cliente{}

	var telefone, endereco, email, observacoes sql.NullString

	err := row.Scan(
		&cliente.ID,
		&cliente.Nome,
		&telefone,
		&endereco,
		&email,
		&observacoes,
		&cliente.CreatedAt,
		&cliente.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if telefone.Valid {
		cliente.Telefone = &telefone.String
	}
	if endereco.Valid {
		cliente.Endereco = &endereco.String
	}
	if email.Valid {
		cliente.Email = &email.String
	}
	if observacoes.Valid {
		cliente.Observacoes = &observacoes.String
	}

	return cliente, nil
}
