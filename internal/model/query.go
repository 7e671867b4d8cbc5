package model

// TreatmentQueryOptions 시술 레코드 조회 조건
// nil 포인터 필드는 해당 조건을 적용하지 않는다
type TreatmentQueryOptions struct {
	Branch      *string
	Category    *TreatmentCategory
	Supplier    *string
	ChartNo     *string
	PatientName *string // 부분 일치
	DateFrom    *string // treat_date >= (YYYY-MM-DD)
	DateTo      *string // treat_date <=
	IsInsurance *bool
	Limit       int
	Offset      int
}

// ProductQueryOptions 제품 카탈로그 조회 조건
type ProductQueryOptions struct {
	Supplier *string
	Keyword  *string // 제품명/코드 부분 일치
	Limit    int
	Offset   int
}
