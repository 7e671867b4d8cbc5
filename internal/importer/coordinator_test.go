package importer

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"dentrack/internal/model"
	"dentrack/internal/store"
)

const (
	testPrimarySheet   = "수술기록"
	testInsuranceSheet = "보험임플란트"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// writeWorkbook 시트명 → 행 묶음으로 테스트용 xlsx 파일을 만든다
func writeWorkbook(t *testing.T, sheetNames []string, sheets map[string][][]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, name := range sheetNames {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				t.Fatalf("new sheet: %v", err)
			}
		}
		for rowIdx, row := range sheets[name] {
			cellRef, err := excelize.CoordinatesToCellName(1, rowIdx+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			r := row
			if err := f.SetSheetRow(name, cellRef, &r); err != nil {
				t.Fatalf("set row: %v", err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "upload.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func drain(t *testing.T, ch <-chan ProgressEvent) (events []ProgressEvent, report *ImportReport) {
	t.Helper()
	for ev := range ch {
		events = append(events, ev)
		if ev.Type == "done" {
			r, ok := ev.Data.(*ImportReport)
			if !ok {
				t.Fatalf("done event data: %T", ev.Data)
			}
			report = r
		}
	}
	return events, report
}

func TestImport_FullFlow(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t,
		[]string{testPrimarySheet, testInsuranceSheet},
		map[string][][]string{
			testPrimarySheet: {
				{"수술일", "환자명", "치식", "수술기록"},
				{"2024-02-10", "홍길동(12345)", "46,47", "IZEN - IZENOSS Φ5.0×10 / (동) BoneX, (동) BoneX,"},
				{"2024-02-11", "김철수(777)", "36", "[GBR] ridge augmentation"},
				{"2024-02-12", "", "", ""},
			},
			testInsuranceSheet: {
				{"환자명", "치식", "1단계", "2단계", "3단계"},
				{"홍길동(12345)", "#46", "2024-01-05", "2024-02-10", ""},
			},
		})

	s := newTestStore(t)
	c := NewCoordinator(s, nil)
	_, report := drain(t, c.Import(ImportOptions{
		FilePath:       path,
		SourceFile:     "upload.xlsx",
		Branch:         "강남점",
		PrimarySheet:   testPrimarySheet,
		InsuranceSheet: testInsuranceSheet,
	}))

	if report == nil {
		t.Fatalf("expected done report")
	}
	if report.ImplantRecords != 1 || report.BoneGraftRecords != 1 {
		t.Fatalf("report: %+v", report)
	}
	// 임플란트 치아 2개 → 2행, 골이식재 치아 2개 × 제품 1종 → 2행
	if report.InsertedRows != 4 {
		t.Fatalf("inserted rows: %d", report.InsertedRows)
	}

	// 46번 치아가 보험 매칭 → 행 전체가 보험 처리
	ins := true
	insured, err := s.QueryTreatments(model.TreatmentQueryOptions{IsInsurance: &ins})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(insured) != 2 {
		t.Fatalf("both implant teeth inherit insurance: %+v", insured)
	}
	for _, r := range insured {
		if r.Supplier != "보험" || r.Quantity != 1 {
			t.Fatalf("insured row: %+v", r)
		}
	}

	cat := model.CategoryBoneGraft
	bones, err := s.QueryTreatments(model.TreatmentQueryOptions{Category: &cat})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(bones) != 2 {
		t.Fatalf("bone rows: %+v", bones)
	}
	for _, r := range bones {
		// 수량은 행 내 표기 횟수이며 치아 수로 나누지 않는다
		if r.ProductName != "BoneX" || r.Quantity != 2 {
			t.Fatalf("bone row: %+v", r)
		}
	}

	logs, err := s.ListImportLogs(5)
	if err != nil || len(logs) != 1 {
		t.Fatalf("import log: %v %+v", err, logs)
	}
}

func TestImport_TeethByProductsExplosion(t *testing.T) {
	t.Parallel()

	// 치아 3개 × 제품 2종 → 6행
	path := writeWorkbook(t,
		[]string{testPrimarySheet, testInsuranceSheet},
		map[string][][]string{
			testPrimarySheet: {
				{"수술일", "환자명", "치식", "수술기록"},
				{"2024-02-10", "홍길동(12345)", "44~46", "(동) BoneX, (동) OssMix / 봉합"},
			},
			testInsuranceSheet: {
				{"환자명", "치식", "1단계", "2단계", "3단계"},
			},
		})

	s := newTestStore(t)
	c := NewCoordinator(s, nil)
	_, report := drain(t, c.Import(ImportOptions{
		FilePath:       path,
		Branch:         "강남점",
		PrimarySheet:   testPrimarySheet,
		InsuranceSheet: testInsuranceSheet,
	}))

	if report == nil {
		t.Fatalf("expected done report")
	}
	cat := model.CategoryBoneGraft
	bones, err := s.QueryTreatments(model.TreatmentQueryOptions{Category: &cat})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(bones) != 6 {
		t.Fatalf("expected 3 teeth x 2 products = 6 rows, got %d", len(bones))
	}
}

func TestImport_MissingPrimarySheetFatal(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t,
		[]string{"엉뚱한시트"},
		map[string][][]string{"엉뚱한시트": {{"a"}}})

	s := newTestStore(t)
	c := NewCoordinator(s, nil)
	events, report := drain(t, c.Import(ImportOptions{
		FilePath:       path,
		Branch:         "강남점",
		PrimarySheet:   testPrimarySheet,
		InsuranceSheet: testInsuranceSheet,
	}))

	if report != nil {
		t.Fatalf("missing primary sheet must abort the upload")
	}
	foundErr := false
	for _, ev := range events {
		if ev.Type == "error" {
			foundErr = true
			if !strings.Contains(ev.Message, testPrimarySheet) {
				t.Fatalf("error must name the expected sheet: %q", ev.Message)
			}
		}
	}
	if !foundErr {
		t.Fatalf("expected error event")
	}
}

func TestImport_MissingInsuranceSheetBoneHalfStillRuns(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t,
		[]string{testPrimarySheet},
		map[string][][]string{
			testPrimarySheet: {
				{"수술일", "환자명", "치식", "수술기록"},
				{"2024-02-10", "홍길동(12345)", "46", "오스템 TS3 / (동) BoneX,"},
			},
		})

	s := newTestStore(t)
	c := NewCoordinator(s, nil)
	_, report := drain(t, c.Import(ImportOptions{
		FilePath:       path,
		Branch:         "강남점",
		PrimarySheet:   testPrimarySheet,
		InsuranceSheet: testInsuranceSheet,
	}))

	if report == nil {
		t.Fatalf("bone half must still complete")
	}
	if !strings.Contains(report.ImplantHalfError, testInsuranceSheet) {
		t.Fatalf("implant half error must name the sheet: %+v", report)
	}
	if report.ImplantRecords != 0 || report.BoneGraftRecords != 1 {
		t.Fatalf("report: %+v", report)
	}
}

func TestImport_ClearExisting(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	old := []*model.TreatmentRecord{{
		Branch: "강남점", ChartNo: "1", Tooth: "16",
		Category: model.CategoryImplant, Quantity: 1,
	}}
	if err := s.BatchInsertTreatments(old); err != nil {
		t.Fatalf("seed: %v", err)
	}

	path := writeWorkbook(t,
		[]string{testPrimarySheet, testInsuranceSheet},
		map[string][][]string{
			testPrimarySheet: {
				{"수술일", "환자명", "치식", "수술기록"},
				{"2024-02-10", "홍길동(12345)", "46", "오스템 TS3"},
			},
			testInsuranceSheet: {
				{"환자명", "치식", "1단계", "2단계", "3단계"},
			},
		})

	c := NewCoordinator(s, nil)
	_, report := drain(t, c.Import(ImportOptions{
		FilePath:       path,
		Branch:         "강남점",
		PrimarySheet:   testPrimarySheet,
		InsuranceSheet: testInsuranceSheet,
		ClearExisting:  true,
	}))
	if report == nil {
		t.Fatalf("expected done report")
	}

	all, err := s.QueryTreatments(model.TreatmentQueryOptions{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 1 || all[0].Tooth != "46" {
		t.Fatalf("old rows must be gone: %+v", all)
	}
}

func TestImportCatalog(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t,
		[]string{"재고"},
		map[string][][]string{
			"재고": {
				{"공급업체", "제품명", "제품코드", "단가", "재고수량"},
				{"오스템", "TS3", "TS3-4010", "90,000", "12"},
				{"", "", "", "", ""}, // 제품명 없음 → 건너뜀
				{"이젠", "IZENOSS", "IZ-5010", "45000", "3"},
			},
		})

	s := newTestStore(t)
	c := NewCoordinator(s, nil)
	report, err := c.ImportCatalog(path, "inventory.xlsx")
	if err != nil {
		t.Fatalf("catalog import: %v", err)
	}
	if report.ImportedRows != 2 || report.SkippedRows != 1 {
		t.Fatalf("report: %+v", report)
	}

	products, err := s.QueryProducts(model.ProductQueryOptions{})
	if err != nil {
		t.Fatalf("query products: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("products: %+v", products)
	}
	if products[0].UnitPrice != 90000 || products[0].StockQty != 12 {
		t.Fatalf("lenient number parsing: %+v", products[0])
	}
}
