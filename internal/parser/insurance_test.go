package parser

import (
	"reflect"
	"testing"
)

func TestBuildInsuranceIndex(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"환자명", "치식", "1단계", "2단계", "3단계"},
		{"홍길동(12345)", "#46", "2024-01-05", "2024-02-10", ""},
		{"홍길동(12345)", "#47", "", "2024-02-10", ""},
		{"김철수(777)", "#16", "2024-01-02", "", "2024-04-01"}, // 2단계 없음 → 제외
		{"이영희(888)", "", "", "2024-02-10", ""},              // 치식 없음 → 제외
	}

	idx := BuildInsuranceIndex(rows)
	got := idx[insuranceKey("2024-02-10", "12345")]
	want := []string{"46", "47"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
	if len(idx) != 1 {
		t.Fatalf("unexpected keys: %v", idx)
	}
}

func TestBuildInsuranceIndex_DuplicatesKept(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"환자명", "치식", "1단계", "2단계", "3단계"},
		{"홍길동(12345)", "#46", "", "2024-02-10", ""},
		{"홍길동(12345)", "#46", "", "2024-02-10", ""},
	}
	idx := BuildInsuranceIndex(rows)
	if got := idx[insuranceKey("2024-02-10", "12345")]; len(got) != 2 {
		t.Fatalf("duplicates must append: %v", got)
	}
}

func TestBuildInsuranceIndex_DigitlessPatientKept(t *testing.T) {
	t.Parallel()

	// 차트번호가 안 적힌 환자도 치식/일자가 있으면 색인된다 (빈 차트번호 키)
	rows := [][]string{
		{"환자명", "치식", "1단계", "2단계", "3단계"},
		{"차트미기재", "#46", "", "2024-02-10", ""},
	}
	idx := BuildInsuranceIndex(rows)
	got := idx[insuranceKey("2024-02-10", "")]
	want := []string{"46"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestBuildInsuranceIndex_DateCanonicalized(t *testing.T) {
	t.Parallel()

	// excelize 가 날짜 셀을 "02-10-24" 로 돌려줘도 같은 키가 된다
	rows := [][]string{
		{"환자명", "치식", "1단계", "2단계", "3단계"},
		{"홍길동(12345)", "#46", "", "02-10-24", ""},
	}
	idx := BuildInsuranceIndex(rows)
	if got := idx[insuranceKey("2024-02-10", "12345")]; len(got) != 1 {
		t.Fatalf("date must canonicalize, index: %v", idx)
	}
}

func TestBuildInsuranceIndex_TextDateVerbatim(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"환자명", "치식", "1단계", "2단계", "3단계"},
		{"홍길동(12345)", "#46", "", "이월 열흘", ""},
	}
	idx := BuildInsuranceIndex(rows)
	if got := idx[insuranceKey("이월 열흘", "12345")]; len(got) != 1 {
		t.Fatalf("unparseable text date must be used verbatim, index: %v", idx)
	}
}

func TestInsuranceIndexCovers(t *testing.T) {
	t.Parallel()

	idx := InsuranceIndex{
		insuranceKey("2024-02-10", "12345"): {"46", "47"},
	}
	if !idx.Covers("2024-02-10", "12345", []string{"45", "46"}) {
		t.Fatalf("expected covered")
	}
	if idx.Covers("2024-02-10", "12345", []string{"16"}) {
		t.Fatalf("tooth not in list")
	}
	if idx.Covers("2024-02-11", "12345", []string{"46"}) {
		t.Fatalf("different date")
	}
	if idx.Covers("2024-02-10", "99999", []string{"46"}) {
		t.Fatalf("different chart number")
	}

	var nilIdx InsuranceIndex
	if nilIdx.Covers("2024-02-10", "12345", []string{"46"}) {
		t.Fatalf("nil index covers nothing")
	}
}

func TestParseDateCell(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"2024-02-10", "2024-02-10"},
		{"2024.02.10", "2024-02-10"},
		{"2024/02/10", "2024-02-10"},
		{"02-10-24", "2024-02-10"},
		{"2/10/24", "2024-02-10"},
		{"", ""},
		{"날짜아님", "날짜아님"}, // 해석 불가 텍스트는 원문 유지
	}
	for _, tc := range cases {
		if got := ParseDateCell(tc.in); got != tc.want {
			t.Fatalf("%q: got %q want %q", tc.in, got, tc.want)
		}
	}
}
