package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

var (
	_ repository.CategoryRepository           = (*CategoryRepo)(nil)
	_ repository.SubCategoryRepository        = (*SubCategoryRepo)(nil)
	_ repository.CategoryCreditCardRepository = (*CategoryCreditCardRepo)(nil)
)

// CategoryRepo categorías sobre PostgreSQL. Único por (organization_id, name).
type CategoryRepo struct {
	db Querier
}

func NewCategoryRepository(db Querier) *CategoryRepo {
	return &CategoryRepo{db: db}
}

const categoryColumns = `id, organization_id, name, type, color, icon, created_at, updated_at`

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	if err := row.Scan(&c.ID, &c.OrganizationID, &c.Name, &c.Type, &c.Color, &c.Icon, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) (*entity.Category, error) {
	query := `
		INSERT INTO categories (organization_id, name, type, color, icon)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + categoryColumns
	out, err := scanCategory(r.db.QueryRow(ctx, query, c.OrganizationID, c.Name, c.Type, c.Color, c.Icon))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert category: %w", err)
	}
	return out, nil
}

// CreateMany inserta en un solo batch omitiendo duplicados.
func (r *CategoryRepo) CreateMany(ctx context.Context, items []*entity.Category) (repository.BatchResult, error) {
	b := &pgx.Batch{}
	for _, c := range items {
		b.Queue(`
			INSERT INTO categories (organization_id, name, type, color, icon)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (organization_id, name) DO NOTHING`,
			c.OrganizationID, c.Name, c.Type, c.Color, c.Icon)
	}
	n, err := execBatch(ctx, r.db, b, "categories")
	return repository.BatchResult{Count: n}, err
}

func (r *CategoryRepo) FindByID(ctx context.Context, organizationID, id string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE organization_id = $1 AND id = $2`
	out, err := scanCategory(r.db.QueryRow(ctx, query, organizationID, id))
	if err != nil {
		if isAbsent(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return out, nil
}

func (r *CategoryRepo) FindByOrganizationID(ctx context.Context, organizationID string) ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE organization_id = $1 ORDER BY name`
	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// SubCategoryRepo subcategorías; único por (category_id, name).
type SubCategoryRepo struct {
	db Querier
}

func NewSubCategoryRepository(db Querier) *SubCategoryRepo {
	return &SubCategoryRepo{db: db}
}

const subCategoryColumns = `id, organization_id, category_id, name, created_at, updated_at`

func scanSubCategory(row pgx.Row) (*entity.SubCategory, error) {
	var s entity.SubCategory
	if err := row.Scan(&s.ID, &s.OrganizationID, &s.CategoryID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SubCategoryRepo) Create(ctx context.Context, s *entity.SubCategory) (*entity.SubCategory, error) {
	query := `
		INSERT INTO sub_categories (organization_id, category_id, name)
		VALUES ($1, $2, $3)
		RETURNING ` + subCategoryColumns
	out, err := scanSubCategory(r.db.QueryRow(ctx, query, s.OrganizationID, s.CategoryID, s.Name))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert sub category: %w", err)
	}
	return out, nil
}

func (r *SubCategoryRepo) CreateMany(ctx context.Context, items []*entity.SubCategory) (repository.BatchResult, error) {
	b := &pgx.Batch{}
	for _, s := range items {
		b.Queue(`
			INSERT INTO sub_categories (organization_id, category_id, name)
			VALUES ($1, $2, $3)
			ON CONFLICT (category_id, name) DO NOTHING`,
			s.OrganizationID, s.CategoryID, s.Name)
	}
	n, err := execBatch(ctx, r.db, b, "sub_categories")
	return repository.BatchResult{Count: n}, err
}

func (r *SubCategoryRepo) FindByCategoryID(ctx context.Context, organizationID, categoryID string) ([]*entity.SubCategory, error) {
	query := `SELECT ` + subCategoryColumns + `
		FROM sub_categories WHERE organization_id = $1 AND category_id = $2 ORDER BY name`
	rows, err := r.db.Query(ctx, query, organizationID, categoryID)
	if isMalformedID(err) {
		return []*entity.SubCategory{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list sub categories: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.SubCategory, 0)
	for rows.Next() {
		s, err := scanSubCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sub category: %w", err)
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		if isMalformedID(err) {
			return []*entity.SubCategory{}, nil
		}
		return nil, fmt.Errorf("list sub categories: %w", err)
	}
	return list, nil
}

// CategoryCreditCardRepo catálogo global de tarjetas (sin organization_id).
type CategoryCreditCardRepo struct {
	db Querier
}

func NewCategoryCreditCardRepository(db Querier) *CategoryCreditCardRepo {
	return &CategoryCreditCardRepo{db: db}
}

func (r *CategoryCreditCardRepo) CreateMany(ctx context.Context, items []*entity.CategoryCreditCard) (repository.BatchResult, error) {
	b := &pgx.Batch{}
	for _, c := range items {
		b.Queue(`
			INSERT INTO category_credit_cards (name, code)
			VALUES ($1, $2)
			ON CONFLICT (name) DO NOTHING`,
			c.Name, c.Code)
	}
	n, err := execBatch(ctx, r.db, b, "category_credit_cards")
	return repository.BatchResult{Count: n}, err
}

func (r *CategoryCreditCardRepo) SearchMany(ctx context.Context) ([]*entity.CategoryCreditCard, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, code, created_at FROM category_credit_cards ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list category credit cards: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.CategoryCreditCard, 0)
	for rows.Next() {
		var c entity.CategoryCreditCard
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category credit card: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
