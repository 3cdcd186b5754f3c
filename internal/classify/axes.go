package classify

import (
	"github.com/shopspring/decimal"

	"github.com/lifehedge/lifehedge/internal/domain"
)

// Axis letters. Each of the four axes contributes one letter; the
// concatenation is the 16-way type code.
//
//	W/C  risk-awareness:       watchful (family history) / carefree
//	D/O  defense-action:       defender (contribution >= threshold) / open-handed
//	L/N  time-orientation:     long-term / now-focused
//	S/V  financial-preference: stability-seeking / venturesome
const (
	axisWatchful   = "W"
	axisCarefree   = "C"
	axisDefender   = "D"
	axisOpenHanded = "O"
	axisLongTerm   = "L"
	axisNowFocused = "N"
	axisStable     = "S"
	axisVenture    = "V"
)

// defenseActionThreshold is the monthly contribution (reference currency
// unit) at which the defense-action axis flips positive.
var defenseActionThreshold = decimal.NewFromInt(20)

// TypeProfile is the static display record of one 16-way code.
type TypeProfile struct {
	Label  string
	Tip    string
	Accent string
}

// typeTable must contain all 16 combinations; Classify fails closed in tests
// if any are missing.
var typeTable = map[string]TypeProfile{
	"WDLS": {Label: "철벽 설계사", Tip: "위험도 알고 방어도 탄탄! 지금 전략 그대로 유지하세요.", Accent: "#45b7d1"},
	"WDLV": {Label: "공격형 파수꾼", Tip: "방어는 탄탄한데 성향은 공격적. 변동성 큰 자산 비중만 점검해봐요.", Accent: "#6bcb77"},
	"WDNS": {Label: "단기 방어러", Tip: "지금의 방어력은 좋지만 긴 호흡의 계획도 세워보세요.", Accent: "#45b7d1"},
	"WDNV": {Label: "순간 승부사", Tip: "방어력은 있는데 단기 승부 성향. 보장 공백이 없는지 확인하세요.", Accent: "#f0ad4e"},
	"WOLS": {Label: "신중한 관찰자", Tip: "위험은 알지만 실행이 아직. 작은 금액부터 방어를 시작해봐요.", Accent: "#f0ad4e"},
	"WOLV": {Label: "낙관적 모험가", Tip: "가족력을 알면서도 공격 투자만? 최소한의 진단 보장을 챙기세요.", Accent: "#ff6b6b"},
	"WONS": {Label: "불안한 현실주의자", Tip: "위험을 알고 불안한데 준비는 제자리. 이번 달부터 시작해봐요.", Accent: "#ff6b6b"},
	"WONV": {Label: "아슬아슬 곡예사", Tip: "위험 인지와 준비의 간극이 큽니다. 방어막 하나는 필수예요.", Accent: "#ff6b6b"},
	"CDLS": {Label: "성실한 적립러", Tip: "꾸준한 적립이 강점! 가족력 외 위험도 한번 둘러보세요.", Accent: "#6bcb77"},
	"CDLV": {Label: "느긋한 투자자", Tip: "장기 투자 습관은 훌륭해요. 건강 리스크도 포트폴리오에 넣어봐요.", Accent: "#6bcb77"},
	"CDNS": {Label: "안전 제일주의", Tip: "안정 추구형 방어러. 인플레이션이 보장을 갉아먹지 않는지 보세요.", Accent: "#45b7d1"},
	"CDNV": {Label: "즉흥 방어러", Tip: "방어는 하는데 계획은 즉흥적. 목표 금액을 정해두면 좋아요.", Accent: "#f0ad4e"},
	"COLS": {Label: "조용한 낙관주의자", Tip: "괜찮겠지~ 하는 마음, 작은 준비 하나만 더해봐요.", Accent: "#f0ad4e"},
	"COLV": {Label: "자유로운 영혼", Tip: "멋있긴 한데, 작은 방어막 하나 정도는 어때요?", Accent: "#ff6b6b"},
	"CONS": {Label: "무탈 기원러", Tip: "아직 준비 전이네요. 월 만원대 방어부터 가볍게 시작!", Accent: "#ff6b6b"},
	"CONV": {Label: "오늘을 사는 자", Tip: "오늘이 제일 중요하지만, 내일의 나에게 선물 하나 남겨요.", Accent: "#ff6b6b"},
}

// AxisPolicy is the current-generation classification: four independent
// binary axes with fixed thresholds. The axes are independent, so there is
// no rule-precedence concern; the mapping table covers all 16 codes.
type AxisPolicy struct{}

func (AxisPolicy) Name() string { return domain.PolicyAxes }

// Classify evaluates the four axes directly from the input and looks up the
// display record for the concatenated code.
func (p AxisPolicy) Classify(in Input, assumptions domain.Assumptions) domain.ClassificationResult {
	code := axisLetter(in.FamilyHistory, axisWatchful, axisCarefree) +
		axisLetter(in.MonthlyContribution.GreaterThanOrEqual(defenseActionThreshold), axisDefender, axisOpenHanded) +
		axisLetter(in.LongTermPreference, axisLongTerm, axisNowFocused) +
		axisLetter(in.StablePreference, axisStable, axisVenture)

	profile := typeTable[code]
	return domain.ClassificationResult{
		Policy:         domain.PolicyAxes,
		Code:           code,
		Label:          profile.Label,
		Tip:            profile.Tip,
		AccentColor:    profile.Accent,
		DefensePercent: DefensePercent(in.MonthlyContribution, assumptions.DefenseScaleFactor),
	}
}

// AllCodes returns the 16 codes in table order (unordered map iteration; for
// deterministic listings callers should sort).
func AllCodes() []string {
	codes := make([]string, 0, len(typeTable))
	for code := range typeTable {
		codes = append(codes, code)
	}
	return codes
}

func axisLetter(positive bool, pos, neg string) string {
	if positive {
		return pos
	}
	return neg
}
