package parser

// 수술기록 시트 컬럼 위치
// 서식이 바뀌면 여기만 수정한다
const (
	ColSurgeryDate = 0 // 수술일
	ColPatientInfo = 1 // 환자명(차트번호)
	ColToothRange  = 2 // 치식
	ColSurgeryNote = 3 // 수술 기록 (자유 서술)
)

// 보험 임플란트 시트 컬럼 위치
const (
	ColInsPatientInfo = 0 // 환자명+차트번호
	ColInsTooth       = 1 // 치식 (# 접두)
	ColInsStage1Date  = 2 // 1단계 일자 (미사용)
	ColInsStage2Date  = 3 // 2단계 일자 (매칭 기준)
	ColInsStage3Date  = 4 // 3단계 일자 (미사용)
)

// RowStatus 행 처리 결과 상태
type RowStatus string

const (
	RowEmitted RowStatus = "emitted"
	RowSkipped RowStatus = "skipped"
)

// SkipReason 행이 버려진 사유
type SkipReason string

const (
	SkipNone           SkipReason = ""
	SkipBlankPatient   SkipReason = "blank_patient"    // 환자 정보 없는 공백/구조 행
	SkipGBROnly        SkipReason = "gbr_only"         // GBR 단독 행은 저장하지 않음
	SkipNoBoneProducts SkipReason = "no_bone_products" // 골이식재 표기 없음
)

// RowOutcome 행 단위 처리 결과
// 조용히 버려지는 행도 집계할 수 있도록 파서가 행마다 결과를 남긴다
type RowOutcome struct {
	RowNo  int        `json:"rowNo"` // 시트 기준 행 번호 (1-base, 헤더 포함)
	Status RowStatus  `json:"status"`
	Reason SkipReason `json:"reason,omitempty"`
}

// cell 행에서 컬럼 값을 안전하게 꺼낸다
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
