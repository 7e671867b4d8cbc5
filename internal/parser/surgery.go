package parser

import (
	"strings"

	"dentrack/internal/model"
)

// SurgeryParser 수술기록 시트 행들을 레코드로 조립하는 파서
// 보험 색인은 만들어진 뒤 읽기 전용이며 행 사이에 다른 상태는 없으므로
// 같은 입력에 대해 몇 번을 호출해도 같은 결과가 나온다
type SurgeryParser struct {
	classifier *SupplierClassifier
	insurance  InsuranceIndex
}

// NewSurgeryParser 파서를 만든다. insurance 는 nil 이어도 된다 (보험 매칭 없음)
func NewSurgeryParser(classifier *SupplierClassifier, insurance InsuranceIndex) *SurgeryParser {
	if classifier == nil {
		classifier = NewSupplierClassifier(nil)
	}
	return &SurgeryParser{
		classifier: classifier,
		insurance:  insurance,
	}
}

// ParseImplants 행들을 임플란트 레코드로 바꾼다
// 행 처리 순서: 환자 식별 → 치식 전개 → 기록 정규화 → 보험 판정 →
// GBR 단독 판정 → 공급업체/제품명 → 방출. 어떤 행에서도 오류를 내지
// 않으며, 버려지는 행은 RowOutcome 으로만 남는다. 첫 행은 헤더로 건너뛴다.
func (p *SurgeryParser) ParseImplants(rows [][]string) ([]*model.ImplantRecord, []RowOutcome) {
	var records []*model.ImplantRecord
	var outcomes []RowOutcome

	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		rowNo := rowIdx + 1

		info := strings.TrimSpace(cell(row, ColPatientInfo))
		if info == "" {
			outcomes = append(outcomes, RowOutcome{RowNo: rowNo, Status: RowSkipped, Reason: SkipBlankPatient})
			continue
		}

		name, chartNo := SplitPatientInfo(info)
		teeth := ExpandTeeth(cell(row, ColToothRange))
		note := Normalize(cell(row, ColSurgeryNote))
		date := ParseDateCell(cell(row, ColSurgeryDate))

		isInsurance := p.insurance.Covers(date, chartNo, teeth)
		supplier, gbrOnly := p.classifier.Classify(note, isInsurance)
		if gbrOnly {
			outcomes = append(outcomes, RowOutcome{RowNo: rowNo, Status: RowSkipped, Reason: SkipGBROnly})
			continue
		}

		records = append(records, &model.ImplantRecord{
			Date:        date,
			PatientName: name,
			ChartNo:     chartNo,
			Teeth:       teeth,
			Quantity:    len(teeth),
			Supplier:    supplier,
			ProductName: ExtractProductName(note),
			IsInsurance: isInsurance,
		})
		outcomes = append(outcomes, RowOutcome{RowNo: rowNo, Status: RowEmitted})
	}
	return records, outcomes
}

// ParseBoneGrafts 행들을 골이식재 레코드로 바꾼다
// 골이식재 추출은 정규화 전 원문 기록에서 하며, "(동)" 표기가 하나도
// 없는 행은 레코드를 만들지 않는다. 첫 행은 헤더로 건너뛴다.
func (p *SurgeryParser) ParseBoneGrafts(rows [][]string) ([]*model.BoneGraftRecord, []RowOutcome) {
	var records []*model.BoneGraftRecord
	var outcomes []RowOutcome

	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		rowNo := rowIdx + 1

		info := strings.TrimSpace(cell(row, ColPatientInfo))
		if info == "" {
			outcomes = append(outcomes, RowOutcome{RowNo: rowNo, Status: RowSkipped, Reason: SkipBlankPatient})
			continue
		}

		products := ExtractBoneProducts(cell(row, ColSurgeryNote))
		if len(products) == 0 {
			outcomes = append(outcomes, RowOutcome{RowNo: rowNo, Status: RowSkipped, Reason: SkipNoBoneProducts})
			continue
		}

		name, chartNo := SplitPatientInfo(info)
		records = append(records, &model.BoneGraftRecord{
			Date:        ParseDateCell(cell(row, ColSurgeryDate)),
			PatientName: name,
			ChartNo:     chartNo,
			Teeth:       ExpandTeeth(cell(row, ColToothRange)),
			Products:    products,
		})
		outcomes = append(outcomes, RowOutcome{RowNo: rowNo, Status: RowEmitted})
	}
	return records, outcomes
}
