package model

import "time"

// TreatmentCategory 시술 구분
type TreatmentCategory string

const (
	CategoryImplant   TreatmentCategory = "implant" // 임플란트 식립
	CategoryBoneGraft TreatmentCategory = "bone"    // 골이식재 사용
)

// ImplantRecord 수술기록 시트 한 행에서 만들어지는 임플란트 레코드
// Teeth 에 포함된 치아 수만큼 치아별 TreatmentRecord 로 분해되어 저장된다
type ImplantRecord struct {
	Date        string   `json:"date"`        // 수술일 (YYYY-MM-DD 또는 원문)
	PatientName string   `json:"patientName"` // 환자명
	ChartNo     string   `json:"chartNo"`     // 차트번호
	Teeth       []string `json:"teeth"`       // 치식 (FDI 2자리)
	Quantity    int      `json:"quantity"`    // 식립 개수 = len(Teeth)
	Supplier    string   `json:"supplier"`    // 공급업체 (보험인 경우 "보험")
	ProductName string   `json:"productName"` // 제품명 (규격 코드 치환 후)
	IsInsurance bool     `json:"isInsurance"` // 보험 임플란트 여부
}

// BoneGraftRecord 수술기록 시트 한 행에서 만들어지는 골이식재 레코드
// Products 는 제품명 → 해당 행 내 표기 횟수
type BoneGraftRecord struct {
	Date        string         `json:"date"`
	PatientName string         `json:"patientName"`
	ChartNo     string         `json:"chartNo"`
	Teeth       []string       `json:"teeth"`
	Products    map[string]int `json:"products"`
}

// TreatmentRecord 치아 단위로 저장되는 시술 레코드
// (지점, 차트번호, 치식) 으로 식별한다
type TreatmentRecord struct {
	ID          string            `json:"id"`
	Branch      string            `json:"branch"`      // 지점명
	TreatDate   string            `json:"treatDate"`   // 시술일
	PatientName string            `json:"patientName"` // 환자명
	ChartNo     string            `json:"chartNo"`     // 차트번호
	Tooth       string            `json:"tooth"`       // 치식 (한 개)
	Category    TreatmentCategory `json:"category"`    // implant / bone
	Supplier    string            `json:"supplier"`    // 공급업체
	ProductName string            `json:"productName"` // 제품명
	Quantity    int               `json:"quantity"`    // 수량
	IsInsurance bool              `json:"isInsurance"` // 보험 여부
	SourceFile  string            `json:"sourceFile"`  // 업로드 원본 파일명
	CreatedAt   time.Time         `json:"createdAt"`
}

// Product 재고 내보내기 파일에서 가져온 제품 카탈로그 항목
type Product struct {
	ID         string    `json:"id"`
	Supplier   string    `json:"supplier"`
	Name       string    `json:"name"`
	Code       string    `json:"code"`
	UnitPrice  float64   `json:"unitPrice"`
	StockQty   int       `json:"stockQty"`
	SourceFile string    `json:"sourceFile"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ImportLog 업로드/가져오기 이력
type ImportLog struct {
	ID           string    `json:"id"`
	Filename     string    `json:"filename"`
	Kind         string    `json:"kind"` // surgery / catalog
	ImportedRows int       `json:"importedRows"`
	SkippedRows  int       `json:"skippedRows"`
	DurationMs   int64     `json:"durationMs"`
	CreatedAt    time.Time `json:"createdAt"`
}
