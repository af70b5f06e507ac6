package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/domain"
	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/domain/entity"
	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/domain/repository"
)

var _ repository.DiscountRepository = (*DiscountRepo)(nil)

// DiscountRepo implementación del puerto DiscountRepository sobre PostgreSQL
// (usable con pool o tx).
type DiscountRepo struct {
	q Querier
}

// NewDiscountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDiscountRepository(q Querier) *DiscountRepo {
	return &DiscountRepo{q: q}
}

const discountColumns = `id, name, description, percentage, start_date, end_date, is_active,
		company_id, product_id, variant_id, deleted_at, created_at, updated_at`

// FindCandidates devuelve los descuentos habilitados, no retirados y vigentes
// en now cuyo alcance coincide con algún predicado de la query. El OR se
// compone desde el value object DiscountQuery; el resolver nunca arma
// fragmentos de SQL.
func (r *DiscountRepo) FindCandidates(ctx context.Context, q repository.DiscountQuery, now time.Time) ([]*entity.Discount, error) {
	if q.IsEmpty() {
		return nil, nil
	}

	args := []any{now}
	var scopes []string
	if q.VariantID != "" {
		args = append(args, q.VariantID)
		scopes = append(scopes, fmt.Sprintf("variant_id = $%d", len(args)))
	}
	if q.ProductID != "" {
		args = append(args, q.ProductID)
		scopes = append(scopes, fmt.Sprintf("(product_id = $%d AND company_id IS NULL AND variant_id IS NULL)", len(args)))
	}
	if q.CompanyID != "" {
		args = append(args, q.CompanyID)
		scopes = append(scopes, fmt.Sprintf("(company_id = $%d AND product_id IS NULL AND variant_id IS NULL)", len(args)))
	}

	query := `
		SELECT ` + discountColumns + `
		FROM discounts
		WHERE is_active = TRUE
		  AND deleted_at IS NULL
		  AND start_date <= $1 AND end_date >= $1
		  AND (` + strings.Join(scopes, " OR ") + `)`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find discount candidates: %w", err)
	}
	defer rows.Close()
	return scanDiscounts(rows)
}

// Create persiste un nuevo descuento.
func (r *DiscountRepo) Create(ctx context.Context, d *entity.Discount) error {
	query := `
		INSERT INTO discounts (id, name, description, percentage, start_date, end_date, is_active, company_id, product_id, variant_id, deleted_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.Name, d.Description, d.Percentage, d.StartDate, d.EndDate, d.IsActive,
		d.CompanyID, d.ProductID, d.VariantID, d.DeletedAt, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert discount: %w", err)
	}
	return nil
}

// GetByID obtiene un descuento por ID (incluye retirados, para auditoría).
func (r *DiscountRepo) GetByID(ctx context.Context, id string) (*entity.Discount, error) {
	query := `SELECT ` + discountColumns + ` FROM discounts WHERE id = $1`
	var d entity.Discount
	err := r.q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Name, &d.Description, &d.Percentage, &d.StartDate, &d.EndDate, &d.IsActive,
		&d.CompanyID, &d.ProductID, &d.VariantID, &d.DeletedAt, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get discount: %w", err)
	}
	return &d, nil
}

// Update actualiza metadatos, porcentaje, ventana y kill-switch. El alcance no
// se toca: no es editable.
func (r *DiscountRepo) Update(ctx context.Context, d *entity.Discount) error {
	query := `
		UPDATE discounts
		SET name = $2, description = $3, percentage = $4, start_date = $5, end_date = $6, is_active = $7, updated_at = $8
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.Name, d.Description, d.Percentage, d.StartDate, d.EndDate, d.IsActive, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update discount: %w", err)
	}
	return nil
}

// ListByCompany lista los descuentos de una empresa en todos sus alcances:
// los de empresa, los de sus productos y los de variantes de sus productos.
// Incluye retirados para que el back-office pueda auditarlos.
func (r *DiscountRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Discount, error) {
	query := `
		SELECT ` + discountColumns + `
		FROM discounts d
		WHERE d.company_id = $1
		   OR d.product_id IN (SELECT id FROM products WHERE company_id = $1)
		   OR d.variant_id IN (
				SELECT v.id FROM product_variants v
				JOIN products p ON p.id = v.product_id
				WHERE p.company_id = $1)
		ORDER BY d.created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list discounts: %w", err)
	}
	defer rows.Close()
	return scanDiscounts(rows)
}

// SoftDelete retira un descuento: apaga el kill-switch y marca deleted_at.
// No existe borrado físico en este adaptador.
func (r *DiscountRepo) SoftDelete(ctx context.Context, id string, at time.Time) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE discounts SET is_active = FALSE, deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`,
		id, at,
	)
	if err != nil {
		return fmt.Errorf("soft delete discount: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanDiscounts(rows pgx.Rows) ([]*entity.Discount, error) {
	var list []*entity.Discount
	for rows.Next() {
		var d entity.Discount
		if err := rows.Scan(
			&d.ID, &d.Name, &d.Description, &d.Percentage, &d.StartDate, &d.EndDate, &d.IsActive,
			&d.CompanyID, &d.ProductID, &d.VariantID, &d.DeletedAt, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan discount: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
