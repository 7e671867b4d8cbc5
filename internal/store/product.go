package store

import (
	"fmt"

	"github.com/google/uuid"

	"dentrack/internal/model"
)

// ReplaceProducts 카탈로그 전체를 새 목록으로 바꾼다
// 재고 내보내기 파일은 항상 전체 스냅샷이므로 덮어쓰기가 맞다
func (s *Store) ReplaceProducts(products []*model.Product) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM products"); err != nil {
		return fmt.Errorf("failed to clear products: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO products (id, supplier, name, code, unit_price, stock_qty, source_file)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, p := range products {
		id := p.ID
		if id == "" {
			id = uuid.New().String()
		}
		_, err := stmt.Exec(id, p.Supplier, p.Name, p.Code, p.UnitPrice, p.StockQty, p.SourceFile)
		if err != nil {
			return fmt.Errorf("failed to insert product: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// QueryProducts 카탈로그 조회
func (s *Store) QueryProducts(opts model.ProductQueryOptions) ([]*model.Product, error) {
	query := `
		SELECT id, supplier, name, code, unit_price, stock_qty, source_file, created_at
		FROM products WHERE 1=1`
	args := []interface{}{}

	if opts.Supplier != nil {
		query += " AND supplier = ?"
		args = append(args, *opts.Supplier)
	}
	if opts.Keyword != nil {
		query += " AND (name LIKE ? OR code LIKE ?)"
		kw := "%" + *opts.Keyword + "%"
		args = append(args, kw, kw)
	}
	query += " ORDER BY supplier, name"
	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", opts.Limit, opts.Offset)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []*model.Product
	for rows.Next() {
		p := &model.Product{}
		err := rows.Scan(&p.ID, &p.Supplier, &p.Name, &p.Code, &p.UnitPrice, &p.StockQty, &p.SourceFile, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
