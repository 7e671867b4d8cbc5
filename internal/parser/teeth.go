package parser

import (
	"strings"
	"unicode"
)

// FDI 표기 기준 상악/하악 16개 치식 순서
// 범위 전개는 이 두 배열 안에서만 이뤄지며 악궁을 넘는 범위는 무시된다
var (
	upperArch = []string{
		"18", "17", "16", "15", "14", "13", "12", "11",
		"21", "22", "23", "24", "25", "26", "27", "28",
	}
	lowerArch = []string{
		"48", "47", "46", "45", "44", "43", "42", "41",
		"31", "32", "33", "34", "35", "36", "37", "38",
	}
)

// archPosition 치식이 속한 악궁(0=상악 1=하악)과 위치를 찾는다
func archPosition(tooth string) (arch, pos int) {
	for i, t := range upperArch {
		if t == tooth {
			return 0, i
		}
	}
	for i, t := range lowerArch {
		if t == tooth {
			return 1, i
		}
	}
	return -1, -1
}

// ExpandTeeth 치식 텍스트를 개별 치식 목록으로 전개한다
// 입력은 콤마로 구분된 구간들이고, 각 구간은 단일 치식("#16")이거나
// 범위("16~26", "47-44")다. 범위의 양 끝이 같은 악궁에서 해석될 때만
// 두 위치 사이 전체(양 끝 포함)를 적힌 방향 그대로 추가한다. "24~14"
// 는 "14~24" 와 순서만 다른 같은 집합이다. 악궁이 다르거나 표에 없는
// 끝점이면 그 구간은 조용히 건너뛰고, 단일 치식은 표에 없어도 받아들인다.
// 결과는 첫 등장 순서를 유지하며 중복은 제거한다.
func ExpandTeeth(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
	if cleaned == "" {
		return nil
	}

	var teeth []string
	seen := make(map[string]bool)
	add := func(t string) {
		if t == "" || seen[t] {
			return
		}
		seen[t] = true
		teeth = append(teeth, t)
	}

	for _, seg := range strings.Split(cleaned, ",") {
		if seg == "" {
			continue
		}
		sep := strings.IndexAny(seg, "~-")
		if sep < 0 {
			add(strings.TrimPrefix(seg, "#"))
			continue
		}

		start := strings.TrimPrefix(seg[:sep], "#")
		end := strings.TrimPrefix(seg[sep+1:], "#")
		startArch, startPos := archPosition(start)
		endArch, endPos := archPosition(end)
		if startPos < 0 || endPos < 0 || startArch != endArch {
			continue // 악궁 불일치 또는 미등록 치식
		}
		ordering := upperArch
		if startArch == 1 {
			ordering = lowerArch
		}
		step := 1
		if startPos > endPos {
			step = -1
		}
		for i := startPos; ; i += step {
			add(ordering[i])
			if i == endPos {
				break
			}
		}
	}
	return teeth
}
