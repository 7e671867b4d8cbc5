package parser

import "strings"

// 차트번호는 관례상 이름 뒤 괄호 안에 적힌다: "홍길동(12345)"
var parenReplacer = strings.NewReplacer("(", "", ")", "", "（", "", "）", "")

// SplitPatientInfo "이름(차트번호)" 형태의 텍스트를 이름과 차트번호로 나눈다
// 첫 숫자 위치를 경계로 삼는 휴리스틱이라 이름에 숫자가 섞이면 잘못 나뉜다
// (원본 서식의 한계로 수용). 숫자가 없으면 전체가 이름이고 차트번호는 빈 값.
func SplitPatientInfo(text string) (name, chartNo string) {
	idx := strings.IndexFunc(text, func(r rune) bool {
		return r >= '0' && r <= '9'
	})
	if idx < 0 {
		return strings.TrimSpace(parenReplacer.Replace(text)), ""
	}
	name = strings.TrimSpace(parenReplacer.Replace(text[:idx]))
	chartNo = strings.TrimSpace(parenReplacer.Replace(text[idx:]))
	return name, chartNo
}

// ScanChartNo 텍스트에서 첫 번째 연속 숫자 구간을 차트번호로 뽑는다
// 보험 시트 쪽에서 쓰는 단순한 쪽 휴리스틱으로, 이름 분리는 하지 않는다
func ScanChartNo(text string) string {
	start := -1
	for i, r := range text {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return text[start:i]
		}
	}
	if start >= 0 {
		return text[start:]
	}
	return ""
}
