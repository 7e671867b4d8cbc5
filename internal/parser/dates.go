package parser

import (
	"strings"
	"time"
)

// 날짜 셀에서 시도해 볼 레이아웃들
// excelize 는 날짜 서식 셀을 "01-02-06"(m-d-y) 류의 표시 문자열로 돌려준다
var dateLayouts = []string{
	"2006-01-02",
	"2006.01.02",
	"2006. 1. 2.",
	"2006/01/02",
	"2006.1.2",
	"2006년 1월 2일",
	"01-02-06",
	"1-2-06",
	"01/02/06",
	"1/2/06",
	"01-02-2006",
	"1/2/2006",
}

// ParseDateCell 날짜 셀 텍스트를 YYYY-MM-DD 로 정규화한다
// 어느 레이아웃으로도 해석되지 않는 텍스트는 검증 없이 원문 그대로
// 돌려준다. 이 경우 보험 시트와의 키 매칭이 조용히 어긋날 수 있는데,
// 원본 시스템의 동작을 그대로 따른다.
func ParseDateCell(text string) string {
	s := strings.TrimSpace(text)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}
