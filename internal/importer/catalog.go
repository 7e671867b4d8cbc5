package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"dentrack/internal/model"
)

// 재고 내보내기 파일 컬럼 위치 (첫 행은 헤더)
const (
	colCatSupplier = 0 // 공급업체
	colCatName     = 1 // 제품명
	colCatCode     = 2 // 제품코드
	colCatPrice    = 3 // 단가
	colCatStock    = 4 // 재고수량
)

// CatalogReport 카탈로그 가져오기 결과
type CatalogReport struct {
	Filename     string        `json:"filename"`
	ImportedRows int           `json:"importedRows"`
	SkippedRows  int           `json:"skippedRows"`
	Duration     time.Duration `json:"duration"`
}

// ImportCatalog 재고 내보내기 파일에서 제품 카탈로그를 가져온다
// 첫 번째 시트의 고정 컬럼을 그대로 읽는 단순 매핑이며, 제품명이 없는
// 행은 건너뛴다. 기존 카탈로그는 통째로 교체된다.
func (c *Coordinator) ImportCatalog(filePath, sourceFile string) (*CatalogReport, error) {
	startTime := time.Now()

	file, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("catalog workbook has no sheets")
	}
	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog sheet: %w", err)
	}

	report := &CatalogReport{Filename: sourceFile}
	var products []*model.Product

	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		name := strings.TrimSpace(catalogCell(row, colCatName))
		if name == "" {
			report.SkippedRows++
			continue
		}
		products = append(products, &model.Product{
			Supplier:   strings.TrimSpace(catalogCell(row, colCatSupplier)),
			Name:       name,
			Code:       strings.TrimSpace(catalogCell(row, colCatCode)),
			UnitPrice:  parseFloatLenient(catalogCell(row, colCatPrice)),
			StockQty:   parseIntLenient(catalogCell(row, colCatStock)),
			SourceFile: sourceFile,
		})
	}

	if err := c.store.ReplaceProducts(products); err != nil {
		return nil, err
	}
	report.ImportedRows = len(products)
	report.Duration = time.Since(startTime)

	if err := c.store.InsertImportLog(&model.ImportLog{
		Filename:     sourceFile,
		Kind:         "catalog",
		ImportedRows: report.ImportedRows,
		SkippedRows:  report.SkippedRows,
		DurationMs:   report.Duration.Milliseconds(),
	}); err != nil {
		return nil, err
	}

	return report, nil
}

func catalogCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// parseFloatLenient 천 단위 콤마가 섞인 숫자 텍스트를 관대하게 해석한다
func parseFloatLenient(text string) float64 {
	s := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseIntLenient(text string) int {
	return int(parseFloatLenient(text))
}
