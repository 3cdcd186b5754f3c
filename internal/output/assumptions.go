package output

// ModelNotes lists key modeling assumptions rendered at the foot of the
// console simulation report.
var ModelNotes = []string{
	"치료비 상승률: 일시 비용 연 5%, 직접 치료비 연 3%",
	"가족력 가중치: 해당 질병 발병률 1.5배",
	"투자 평가: 월복리, 납입금은 성장 반영 후 가산",
	"소득 손실: 연령대 중위소득 기준, 치료 개월수 비례",
	"전망 상한: 85세",
}
