package parser

import "strings"

// InsuranceIndex (2단계 일자, 차트번호) → 보험 적용 치식 목록
// 같은 키의 행이 여러 개면 등장 순서대로 덧붙이며, 중복도 그대로 쌓는다
type InsuranceIndex map[string][]string

func insuranceKey(date, chartNo string) string {
	return date + "|" + chartNo
}

// BuildInsuranceIndex 보험 임플란트 시트 행들로 조회 표를 만든다
// 차트번호는 첫 숫자 구간 스캔으로, 치식은 # 을 뗀 값으로, 날짜는
// 2단계 일자 컬럼만 쓴다. 2단계 일자나 치식이 비어 있는 행은 건너뛰고,
// 차트번호가 비어 있어도 행 자체는 색인한다. 첫 행은 헤더로 건너뛴다.
func BuildInsuranceIndex(rows [][]string) InsuranceIndex {
	idx := make(InsuranceIndex)
	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		chartNo := ScanChartNo(cell(row, ColInsPatientInfo))
		tooth := strings.TrimPrefix(strings.TrimSpace(cell(row, ColInsTooth)), "#")
		date := ParseDateCell(cell(row, ColInsStage2Date))
		if tooth == "" || date == "" {
			continue
		}
		key := insuranceKey(date, chartNo)
		idx[key] = append(idx[key], tooth)
	}
	return idx
}

// Covers 해당 일자/차트번호의 보험 치식에 teeth 중 하나라도 들어 있는지
func (idx InsuranceIndex) Covers(date, chartNo string, teeth []string) bool {
	insured := idx[insuranceKey(date, chartNo)]
	if len(insured) == 0 {
		return false
	}
	for _, t := range teeth {
		for _, ins := range insured {
			if t == ins {
				return true
			}
		}
	}
	return false
}
