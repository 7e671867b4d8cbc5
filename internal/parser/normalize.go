package parser

import "strings"

// Normalize 전각 문자를 반각으로 접는다
// 전각 ASCII 영역(U+FF01~U+FF5E)은 고정 오프셋으로, 전각 공백(U+3000)은
// 일반 공백으로 바꾼다. 수술 기록의 마커 매칭 전에 항상 먼저 적용한다.
// 입력이 무엇이든 실패하지 않으며, 두 번 적용해도 결과가 같다.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 0xFF01 && r <= 0xFF5E:
			r -= 0xFEE0
		case r == 0x3000:
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}
