package parser

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// 공급업체 분류의 특수 결과값
const (
	SupplierInsurance = "보험"  // 보험 임플란트
	SupplierGBROnly   = "GBR" // GBR 단독 행 (저장 대상 아님)
)

// GBR 단독 표기 마커 (반각 정규화 이후 텍스트에서 찾는다)
const gbrMarker = "[GBR]"

// SupplierAlias 수술 기록 문구 → 정식 공급업체명 매핑 항목
// 목록 순서가 곧 매칭 우선순위다 (먼저 걸리는 항목 승)
type SupplierAlias struct {
	Key  string `json:"key" toml:"key"`
	Name string `json:"name" toml:"name"`
}

// DefaultSupplierAliases 기본 공급업체 별칭 표
// 지점별 추가 항목은 설정으로 뒤에 덧붙인다
func DefaultSupplierAliases() []SupplierAlias {
	return []SupplierAlias{
		{"오스템", "오스템"},
		{"OSSTEM", "오스템"},
		{"덴티움", "덴티움"},
		{"DENTIUM", "덴티움"},
		{"임플란티움", "덴티움"},
		{"네오바이오텍", "네오바이오텍"},
		{"네오", "네오바이오텍"},
		{"NEOBIOTECH", "네오바이오텍"},
		{"메가젠", "메가젠"},
		{"MEGAGEN", "메가젠"},
		{"디오", "디오"},
		{"DIO", "디오"},
		{"스트라우만", "스트라우만"},
		{"STRAUMANN", "스트라우만"},
		{"이젠", "이젠"},
		{"IZEN", "이젠"},
	}
}

// SupplierClassifier 수술 기록 텍스트에서 공급업체를 분류한다
type SupplierClassifier struct {
	aliases []SupplierAlias
}

// NewSupplierClassifier 분류기를 만든다
// extra 는 기본 표 뒤에 덧붙는 지점별 추가 별칭
func NewSupplierClassifier(extra []SupplierAlias) *SupplierClassifier {
	aliases := DefaultSupplierAliases()
	aliases = append(aliases, extra...)
	return &SupplierClassifier{aliases: aliases}
}

// Classify 공급업체를 판별한다. note 는 반각 정규화된 기록 텍스트.
// 순서: 보험 → GBR 단독 → 별칭 부분일치 → " - " 앞 원문 키 정확일치
// → 원문 키 그대로 (미분류 업체 통과)
func (c *SupplierClassifier) Classify(note string, isInsurance bool) (supplier string, gbrOnly bool) {
	if isInsurance {
		return SupplierInsurance, false
	}
	if strings.Contains(note, gbrMarker) {
		return SupplierGBROnly, true
	}
	for _, a := range c.aliases {
		if strings.Contains(note, a.Key) {
			return a.Name, false
		}
	}
	raw := note
	if i := strings.Index(note, " - "); i >= 0 {
		raw = note[:i]
	}
	raw = strings.TrimSpace(raw)
	for _, a := range c.aliases {
		if raw == a.Key {
			return a.Name, false
		}
	}
	return raw, false
}

// 규격 표기: 직경 기호 + 직경 + 곱셈 구분자 + 길이 ("Ø 5.0 x 10", "Φ5.0×10")
var sizeNotationRe = regexp.MustCompile(`[ØøΦ∅]\s*([0-9]+(?:\.[0-9]+)?)\s*[x×X]\s*([0-9]+(?:\.[0-9]+)?)`)

// RewriteSizeNotation 규격 표기를 압축 코드로 바꾼다
// 직경은 소수 첫째 자리 반올림 후 10배("5.0"→"50"), 길이는 정수 절사 후
// 두 자리("10"→"10")로 만들어 붙인 코드를 제품명 뒤에 덧붙인다.
// 표기가 없으면 그대로 돌려준다.
func RewriteSizeNotation(name string) string {
	m := sizeNotationRe.FindStringSubmatchIndex(name)
	if m == nil {
		return name
	}
	diameter, err := strconv.ParseFloat(name[m[2]:m[3]], 64)
	if err != nil {
		return name
	}
	length, err := strconv.ParseFloat(name[m[4]:m[5]], 64)
	if err != nil {
		return name
	}
	code := fmt.Sprintf("%d%02d", int(math.Round(diameter*10)), int(length))
	rest := strings.TrimSpace(name[:m[0]] + name[m[1]:])
	if rest == "" {
		return code
	}
	return rest + " " + code
}

// ExtractProductName 기록 텍스트에서 제품명을 뽑는다
// 첫 "/" 앞까지를 취한 뒤 " - " 가 있으면 그 뒤를 제품명으로 보고,
// 마지막으로 규격 표기를 압축 코드로 치환한다.
func ExtractProductName(note string) string {
	name := note
	if i := strings.Index(name, "/"); i >= 0 {
		name = name[:i]
	}
	if i := strings.Index(name, " - "); i >= 0 {
		name = name[i+3:]
	}
	return RewriteSizeNotation(strings.TrimSpace(name))
}
