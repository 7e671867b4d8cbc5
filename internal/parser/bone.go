package parser

import (
	"regexp"
	"strings"
)

// 골이식재 표기: "(동)" 마커 뒤 제품명, 다음 콤마/슬래시 전까지
// 정규화 전 원문 텍스트에서 찾는다
var boneGraftRe = regexp.MustCompile(`\(동\)\s*([^,/]+)`)

// ExtractBoneProducts 기록 텍스트에서 골이식재 제품별 표기 횟수를 센다
// 같은 제품이 여러 번 적히면 횟수가 누적된다. 표기가 없으면 빈 맵.
func ExtractBoneProducts(note string) map[string]int {
	products := make(map[string]int)
	for _, m := range boneGraftRe.FindAllStringSubmatch(note, -1) {
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		products[name]++
	}
	return products
}
