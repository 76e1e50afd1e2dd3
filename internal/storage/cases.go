// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dsadigitalplatform/admin-service/internal/types"
)

// Tenant isolation note: every query in this file must carry a tenant_id
// filter. There is no enforcement below the application layer.

const (
	customerColumns = "id, tenant_id, full_name, email, phone, created_at, updated_at"
	loanCaseColumns = "id, tenant_id, customer_id, lender, product, amount, stage, notes, created_by, created_at, updated_at"
)

func (s *Storage) CreateCustomer(ctx context.Context, c *types.Customer) (*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCustomer")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate customer ID: %w", err)
	}

	var created types.Customer
	err = s.db.Statement(ctx).
		Insert("customers").
		Columns("id", "tenant_id", "full_name", "email", "phone").
		Values(id.String(), c.TenantID, c.FullName, c.Email, c.Phone).
		Suffix("RETURNING "+customerColumns).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.TenantID, &created.FullName, &created.Email,
			&created.Phone, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert customer: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetCustomer(ctx context.Context, tenantID, id string) (*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCustomer")
	defer span.End()

	var c types.Customer
	err := s.db.Statement(ctx).
		Select(customerColumns).
		From("customers").
		Where(sq.Eq{"id": id, "tenant_id": tenantID}).
		QueryRowContext(ctx).
		Scan(&c.ID, &c.TenantID, &c.FullName, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return &c, nil
}

func (s *Storage) ListCustomers(ctx context.Context, tenantID string) ([]*types.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCustomers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(customerColumns).
		From("customers").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []*types.Customer
	for rows.Next() {
		var c types.Customer
		if err := rows.Scan(&c.ID, &c.TenantID, &c.FullName, &c.Email, &c.Phone,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return customers, nil
}

func (s *Storage) UpdateCustomer(ctx context.Context, c *types.Customer) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateCustomer")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("customers").
		Set("full_name", c.FullName).
		Set("email", c.Email).
		Set("phone", c.Phone).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": c.ID, "tenant_id": c.TenantID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) CreateLoanCase(ctx context.Context, lc *types.LoanCase) (*types.LoanCase, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateLoanCase")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate loan case ID: %w", err)
	}

	var created types.LoanCase
	err = s.db.Statement(ctx).
		Insert("loan_cases").
		Columns("id", "tenant_id", "customer_id", "lender", "product", "amount", "stage", "notes", "created_by").
		Values(id.String(), lc.TenantID, lc.CustomerID, lc.Lender, lc.Product, lc.Amount, lc.Stage, lc.Notes, lc.CreatedBy).
		Suffix("RETURNING "+loanCaseColumns).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.TenantID, &created.CustomerID, &created.Lender,
			&created.Product, &created.Amount, &created.Stage, &created.Notes,
			&created.CreatedBy, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert loan case: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetLoanCase(ctx context.Context, tenantID, id string) (*types.LoanCase, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetLoanCase")
	defer span.End()

	var lc types.LoanCase
	err := s.db.Statement(ctx).
		Select(loanCaseColumns).
		From("loan_cases").
		Where(sq.Eq{"id": id, "tenant_id": tenantID}).
		QueryRowContext(ctx).
		Scan(&lc.ID, &lc.TenantID, &lc.CustomerID, &lc.Lender, &lc.Product, &lc.Amount,
			&lc.Stage, &lc.Notes, &lc.CreatedBy, &lc.CreatedAt, &lc.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get loan case: %w", err)
	}

	return &lc, nil
}

func (s *Storage) ListLoanCases(ctx context.Context, tenantID string) ([]*types.LoanCase, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListLoanCases")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(loanCaseColumns).
		From("loan_cases").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list loan cases: %w", err)
	}
	defer rows.Close()

	var cases []*types.LoanCase
	for rows.Next() {
		var lc types.LoanCase
		if err := rows.Scan(&lc.ID, &lc.TenantID, &lc.CustomerID, &lc.Lender, &lc.Product,
			&lc.Amount, &lc.Stage, &lc.Notes, &lc.CreatedBy, &lc.CreatedAt, &lc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan loan case: %w", err)
		}
		cases = append(cases, &lc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return cases, nil
}

func (s *Storage) UpdateLoanCaseStage(ctx context.Context, tenantID, id string, stage types.CaseStage) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateLoanCaseStage")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("loan_cases").
		Set("stage", stage).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "tenant_id": tenantID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update loan case stage: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
