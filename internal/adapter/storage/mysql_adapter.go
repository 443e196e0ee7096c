package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/controlhs/datacore/internal/core/domain"
)

type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

func (m *MySQLAdapter) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, name, balance, created_at, updated_at
		FROM products ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Balance, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return products, nil
}

func (m *MySQLAdapter) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	err := m.db.QueryRowContext(ctx, `
		SELECT id, name, balance, created_at, updated_at
		FROM products WHERE id = ?`, id,
	).Scan(&p.ID, &p.Name, &p.Balance, &p.CreatedAt, &p.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query product: %w", err)
	}

	return &p, nil
}

func (m *MySQLAdapter) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := m.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, role, created_at, updated_at
		FROM users WHERE username = ?`, username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}

	return &u, nil
}

func (m *MySQLAdapter) CreateUser(ctx context.Context, user domain.User) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO users (id, username, password_hash, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		user.ID, user.Username, user.PasswordHash, user.Role,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (m *MySQLAdapter) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	result, err := m.db.ExecContext(ctx, `
		UPDATE users SET password_hash = ?, updated_at = NOW()
		WHERE id = ?`,
		passwordHash, userID,
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}
