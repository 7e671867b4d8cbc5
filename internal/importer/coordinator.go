package importer

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"dentrack/internal/model"
	"dentrack/internal/parser"
	"dentrack/internal/store"
)

// Coordinator 수술기록 업로드 처리 조율자
// 워크북 열기 → 시트 확인 → 보험 색인 → 파싱 → 치아 단위 분해 → 저장
type Coordinator struct {
	store      *store.Store
	classifier *parser.SupplierClassifier
}

// NewCoordinator 조율자를 만든다
func NewCoordinator(store *store.Store, classifier *parser.SupplierClassifier) *Coordinator {
	if classifier == nil {
		classifier = parser.NewSupplierClassifier(nil)
	}
	return &Coordinator{
		store:      store,
		classifier: classifier,
	}
}

// ImportOptions 업로드 처리 옵션
type ImportOptions struct {
	FilePath       string // 임시 저장된 업로드 파일 경로
	SourceFile     string // 원본 파일명 (이력용)
	Branch         string // 지점명
	PrimarySheet   string // 수술기록 시트 이름
	InsuranceSheet string // 보험 임플란트 시트 이름
	ClearExisting  bool   // 지점 기존 데이터 삭제 후 적재
}

// ProgressEvent 진행 이벤트
type ProgressEvent struct {
	Type      string      `json:"type"` // start/info/sheet_start/sheet_done/error/done
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// ImportReport 업로드 결과 요약
type ImportReport struct {
	Filename         string         `json:"filename"`
	Branch           string         `json:"branch"`
	ImplantRecords   int            `json:"implantRecords"`   // 행 단위
	BoneGraftRecords int            `json:"boneGraftRecords"` // 행 단위
	InsertedRows     int            `json:"insertedRows"`     // 치아 단위 저장 행
	SkippedRows      int            `json:"skippedRows"`
	SkipReasons      map[string]int `json:"skipReasons,omitempty"`
	ImplantHalfError string         `json:"implantHalfError,omitempty"` // 보험 시트 누락 등
	Duration         time.Duration  `json:"duration"`
}

// Import 업로드 처리를 시작하고 진행 이벤트 채널을 돌려준다
func (c *Coordinator) Import(opts ImportOptions) <-chan ProgressEvent {
	progressChan := make(chan ProgressEvent, 100)

	go func() {
		defer close(progressChan)
		c.doImport(opts, progressChan)
	}()

	return progressChan
}

func (c *Coordinator) send(ch chan ProgressEvent, eventType, message string, data interface{}) {
	ch <- ProgressEvent{
		Type:      eventType,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// doImport 업로드 처리 본체
func (c *Coordinator) doImport(opts ImportOptions, ch chan ProgressEvent) {
	startTime := time.Now()
	filename := opts.SourceFile
	if filename == "" {
		filename = filepath.Base(opts.FilePath)
	}

	c.send(ch, "start", "수술기록 업로드 처리 시작", map[string]string{
		"filename": filename,
		"branch":   opts.Branch,
	})

	file, err := excelize.OpenFile(opts.FilePath)
	if err != nil {
		c.send(ch, "error", fmt.Sprintf("파일을 열 수 없습니다: %v", err), nil)
		return
	}
	defer file.Close()

	// 수술기록 시트가 없으면 업로드 전체가 실패한다
	c.send(ch, "sheet_start", fmt.Sprintf("시트 읽는 중: %s", opts.PrimarySheet), nil)
	primaryRows, err := file.GetRows(opts.PrimarySheet)
	if err != nil {
		c.send(ch, "error", fmt.Sprintf("수술기록 시트를 찾을 수 없습니다: %s", opts.PrimarySheet), nil)
		return
	}

	report := &ImportReport{
		Filename:    filename,
		Branch:      opts.Branch,
		SkipReasons: make(map[string]int),
	}

	// 보험 시트가 없으면 임플란트 쪽만 건너뛰고 골이식재는 계속 처리한다
	var insuranceIdx parser.InsuranceIndex
	implantHalf := true
	insRows, err := file.GetRows(opts.InsuranceSheet)
	if err != nil {
		implantHalf = false
		report.ImplantHalfError = fmt.Sprintf("보험 임플란트 시트를 찾을 수 없습니다: %s", opts.InsuranceSheet)
		c.send(ch, "error", report.ImplantHalfError, nil)
	} else {
		insuranceIdx = parser.BuildInsuranceIndex(insRows)
		c.send(ch, "info", fmt.Sprintf("보험 색인 구성 완료 (%d건)", len(insuranceIdx)), nil)
	}

	if opts.ClearExisting {
		if err := c.store.DeleteTreatmentsByBranch(opts.Branch); err != nil {
			c.send(ch, "error", fmt.Sprintf("기존 데이터 삭제 실패: %v", err), nil)
			return
		}
	}

	p := parser.NewSurgeryParser(c.classifier, insuranceIdx)
	var persisted []*model.TreatmentRecord

	if implantHalf {
		implants, outcomes := p.ParseImplants(primaryRows)
		report.ImplantRecords = len(implants)
		countOutcomes(report, outcomes)
		for _, rec := range implants {
			persisted = append(persisted, explodeImplant(rec, opts)...)
		}
		c.send(ch, "sheet_done", fmt.Sprintf("임플란트 %d행 해석", len(implants)), nil)
	}

	bones, outcomes := p.ParseBoneGrafts(primaryRows)
	report.BoneGraftRecords = len(bones)
	countOutcomes(report, outcomes)
	for _, rec := range bones {
		persisted = append(persisted, explodeBoneGraft(rec, opts)...)
	}
	c.send(ch, "sheet_done", fmt.Sprintf("골이식재 %d행 해석", len(bones)), nil)

	if err := c.store.BatchInsertTreatments(persisted); err != nil {
		c.send(ch, "error", fmt.Sprintf("저장 실패: %v", err), nil)
		return
	}
	report.InsertedRows = len(persisted)
	report.Duration = time.Since(startTime)

	if err := c.store.InsertImportLog(&model.ImportLog{
		Filename:     filename,
		Kind:         "surgery",
		ImportedRows: report.InsertedRows,
		SkippedRows:  report.SkippedRows,
		DurationMs:   report.Duration.Milliseconds(),
	}); err != nil {
		c.send(ch, "error", fmt.Sprintf("이력 기록 실패: %v", err), nil)
	}

	c.send(ch, "done", "업로드 처리 완료", report)
}

// countOutcomes 행 단위 결과를 보고서에 집계한다
func countOutcomes(report *ImportReport, outcomes []parser.RowOutcome) {
	for _, o := range outcomes {
		if o.Status == parser.RowSkipped {
			report.SkippedRows++
			report.SkipReasons[string(o.Reason)]++
		}
	}
}

// explodeImplant 임플란트 레코드를 치아 단위 저장 행으로 분해한다
// 치아 N개 → N행, 수량은 각각 1
func explodeImplant(rec *model.ImplantRecord, opts ImportOptions) []*model.TreatmentRecord {
	rows := make([]*model.TreatmentRecord, 0, len(rec.Teeth))
	for _, tooth := range rec.Teeth {
		rows = append(rows, &model.TreatmentRecord{
			Branch:      opts.Branch,
			TreatDate:   rec.Date,
			PatientName: rec.PatientName,
			ChartNo:     rec.ChartNo,
			Tooth:       tooth,
			Category:    model.CategoryImplant,
			Supplier:    rec.Supplier,
			ProductName: rec.ProductName,
			Quantity:    1,
			IsInsurance: rec.IsInsurance,
			SourceFile:  opts.SourceFile,
		})
	}
	return rows
}

// explodeBoneGraft 골이식재 레코드를 치아 단위 저장 행으로 분해한다
// 치아 N개 × 제품 M종 → N×M행, 수량은 제품별 표기 횟수 그대로
// (치아 수로 나누지 않는다)
func explodeBoneGraft(rec *model.BoneGraftRecord, opts ImportOptions) []*model.TreatmentRecord {
	names := make([]string, 0, len(rec.Products))
	for name := range rec.Products {
		names = append(names, name)
	}
	sort.Strings(names)

	var rows []*model.TreatmentRecord
	for _, tooth := range rec.Teeth {
		for _, name := range names {
			rows = append(rows, &model.TreatmentRecord{
				Branch:      opts.Branch,
				TreatDate:   rec.Date,
				PatientName: rec.PatientName,
				ChartNo:     rec.ChartNo,
				Tooth:       tooth,
				Category:    model.CategoryBoneGraft,
				Supplier:    "",
				ProductName: name,
				Quantity:    rec.Products[name],
				IsInsurance: false,
				SourceFile:  opts.SourceFile,
			})
		}
	}
	return rows
}
