package store

import (
	"fmt"

	"github.com/google/uuid"

	"dentrack/internal/model"
)

// BatchInsertTreatments 치아 단위 레코드 일괄 삽입
// 한 업로드 분량을 하나의 트랜잭션으로 넣는다
func (s *Store) BatchInsertTreatments(records []*model.TreatmentRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO treatment_records (
			id, branch, treat_date, patient_name, chart_no, tooth,
			category, supplier, product_name, quantity, is_insurance, source_file
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		id := r.ID
		if id == "" {
			id = uuid.New().String()
		}
		_, err := stmt.Exec(
			id, r.Branch, r.TreatDate, r.PatientName, r.ChartNo, r.Tooth,
			string(r.Category), r.Supplier, r.ProductName, r.Quantity,
			boolToInt(r.IsInsurance), r.SourceFile,
		)
		if err != nil {
			return fmt.Errorf("failed to insert record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteTreatmentsByBranch 지점의 기존 레코드를 비운다 (재업로드용)
func (s *Store) DeleteTreatmentsByBranch(branch string) error {
	if _, err := s.db.Exec("DELETE FROM treatment_records WHERE branch = ?", branch); err != nil {
		return fmt.Errorf("failed to delete records: %w", err)
	}
	return nil
}

// buildTreatmentFilter 조회 조건으로 WHERE 절과 인자를 만든다
func buildTreatmentFilter(opts model.TreatmentQueryOptions) (string, []interface{}) {
	query := " WHERE 1=1"
	args := []interface{}{}

	if opts.Branch != nil {
		query += " AND branch = ?"
		args = append(args, *opts.Branch)
	}
	if opts.Category != nil {
		query += " AND category = ?"
		args = append(args, string(*opts.Category))
	}
	if opts.Supplier != nil {
		query += " AND supplier = ?"
		args = append(args, *opts.Supplier)
	}
	if opts.ChartNo != nil {
		query += " AND chart_no = ?"
		args = append(args, *opts.ChartNo)
	}
	if opts.PatientName != nil {
		query += " AND patient_name LIKE ?"
		args = append(args, "%"+*opts.PatientName+"%")
	}
	if opts.DateFrom != nil {
		query += " AND treat_date >= ?"
		args = append(args, *opts.DateFrom)
	}
	if opts.DateTo != nil {
		query += " AND treat_date <= ?"
		args = append(args, *opts.DateTo)
	}
	if opts.IsInsurance != nil {
		query += " AND is_insurance = ?"
		args = append(args, boolToInt(*opts.IsInsurance))
	}

	return query, args
}

// QueryTreatments 조건에 맞는 시술 레코드 조회
func (s *Store) QueryTreatments(opts model.TreatmentQueryOptions) ([]*model.TreatmentRecord, error) {
	where, args := buildTreatmentFilter(opts)
	query := `
		SELECT id, branch, treat_date, patient_name, chart_no, tooth,
		       category, supplier, product_name, quantity, is_insurance,
		       source_file, created_at
		FROM treatment_records` + where + " ORDER BY treat_date DESC, chart_no, tooth"

	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", opts.Limit, opts.Offset)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []*model.TreatmentRecord
	for rows.Next() {
		r := &model.TreatmentRecord{}
		var category string
		var isInsurance int
		err := rows.Scan(
			&r.ID, &r.Branch, &r.TreatDate, &r.PatientName, &r.ChartNo, &r.Tooth,
			&category, &r.Supplier, &r.ProductName, &r.Quantity, &isInsurance,
			&r.SourceFile, &r.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		r.Category = model.TreatmentCategory(category)
		r.IsInsurance = isInsurance != 0
		records = append(records, r)
	}
	return records, rows.Err()
}

// CountTreatments 조건에 맞는 레코드 수
func (s *Store) CountTreatments(opts model.TreatmentQueryOptions) (int, error) {
	where, args := buildTreatmentFilter(opts)
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM treatment_records"+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

// ListSuppliers 저장된 레코드의 공급업체 목록 (중복 제거)
func (s *Store) ListSuppliers() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT supplier FROM treatment_records WHERE supplier != '' ORDER BY supplier")
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []string
	for rows.Next() {
		var supplier string
		if err := rows.Scan(&supplier); err != nil {
			return nil, fmt.Errorf("failed to scan supplier: %w", err)
		}
		suppliers = append(suppliers, supplier)
	}
	return suppliers, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
