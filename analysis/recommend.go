package analysis

import (
	"fmt"
	"strings"
)

// CuratedWork is a hand-authored analysis for a specific well-known book.
type CuratedWork struct {
	Key             string
	Insights        []string
	Recommendations []Recommendation
}

// curatedWorks is matched in slice order; the first key contained in the title wins.
var curatedWorks = []CuratedWork{
	{
		Key: "어린 왕자",
		Insights: []string{
			"어린 왕자는 순수한 시선으로 어른들의 세계를 비판하며 본질의 중요성을 일깨웁니다.",
			"사막에서의 만남은 인생에서 진정한 관계의 의미를 되돌아보게 합니다.",
			"'가장 중요한 것은 눈에 보이지 않는다'는 메시지가 독자의 가치관을 재정립하게 합니다.",
		},
		Recommendations: []Recommendation{
			{Title: "모모", Author: "미하엘 엔데", Reason: "시간의 소중함과 삶의 본질을 다룬 현대 우화"},
			{Title: "갈매기의 꿈", Author: "리처드 바크", Reason: "자유와 꿈을 향한 비상을 그린 철학적 우화"},
			{Title: "연금술사", Author: "파울로 코엘료", Reason: "자아실현과 운명을 찾아가는 영혼의 여정"},
		},
	},
	{
		Key: "1984",
		Insights: []string{
			"오웰의 디스토피아는 권력과 감시 체제가 개인의 자유를 억압하는 메커니즘을 날카롭게 포착합니다.",
			"언어의 통제가 사고의 통제로 이어지는 과정을 통해 정보 조작의 위험성을 경고합니다.",
			"빅브라더의 존재는 현대 사회의 감시 자본주의와 놀라울 정도로 유사합니다.",
		},
		Recommendations: []Recommendation{
			{Title: "멋진 신세계", Author: "올더스 헉슬리", Reason: "쾌락으로 통제되는 또 다른 형태의 디스토피아"},
			{Title: "파렌하이트 451", Author: "레이 브래드버리", Reason: "책이 금지된 사회를 통한 지식 통제 비판"},
			{Title: "우리", Author: "예브게니 자먀틴", Reason: "1984의 원형이 된 최초의 디스토피아 소설"},
		},
	},
	{
		Key: "데미안",
		Insights: []string{
			"싱클레어의 성장 과정은 우리 모두가 겪는 자아 찾기의 여정을 상징적으로 보여줍니다.",
			"알과 새의 비유는 기존 가치관을 깨고 새로운 세계로 나아가는 용기의 중요성을 강조합니다.",
			"아브락사스의 개념은 선과 악을 초월한 전체성의 추구를 의미합니다.",
		},
		Recommendations: []Recommendation{
			{Title: "싯다르타", Author: "헤르만 헤세", Reason: "깨달음을 향한 영적 여정을 그린 또 다른 걸작"},
			{Title: "유리알 유희", Author: "헤르만 헤세", Reason: "지성과 예술의 조화를 탐구하는 철학적 소설"},
			{Title: "수레바퀴 아래서", Author: "헤르만 헤세", Reason: "교육 제도와 개인의 갈등을 다룬 성장소설"},
		},
	},
	{
		Key: "노르웨이의 숲",
		Insights: []string{
			"상실과 고독 속에서도 계속되는 삶의 아름다움과 쓸쓸함을 섬세하게 그려냅니다.",
			"청춘의 방황과 사랑의 불완전함이 만들어내는 성장의 아픔을 공감적으로 표현합니다.",
			"음악과 문학이 어우러진 감각적 서술이 독자를 1960년대 일본으로 이끕니다.",
		},
		Recommendations: []Recommendation{
			{Title: "상실의 시대", Author: "무라카미 하루키", Reason: "청춘과 상실을 다룬 또 다른 감성적 작품"},
			{Title: "해변의 카프카", Author: "무라카미 하루키", Reason: "현실과 환상이 교차하는 성장 서사"},
			{Title: "1Q84", Author: "무라카미 하루키", Reason: "평행우주와 운명적 사랑을 그린 대작"},
		},
	},
	{
		Key: "사피엔스",
		Insights: []string{
			"인지혁명, 농업혁명, 과학혁명을 통해 인류 문명의 거대한 흐름을 조망합니다.",
			"허구를 믿는 능력이 어떻게 대규모 협력을 가능하게 했는지 설득력 있게 설명합니다.",
			"기술 발전이 반드시 행복의 증진으로 이어지지 않는다는 통찰이 의미심장합니다.",
		},
		Recommendations: []Recommendation{
			{Title: "호모 데우스", Author: "유발 하라리", Reason: "인류의 미래를 예측하는 후속작"},
			{Title: "총, 균, 쇠", Author: "제레드 다이아몬드", Reason: "문명 발전의 지리적 요인 분석"},
			{Title: "문명의 충돌", Author: "새뮤얼 헌팅턴", Reason: "현대 문명의 갈등 구조 이해"},
		},
	},
}

var genreRecommendations = map[Genre][]Recommendation{
	GenreFiction: {
		{Title: "노르웨이의 숲", Author: "무라카미 하루키", Reason: "섬세한 감성과 인간관계에 대한 깊은 통찰"},
		{Title: "연금술사", Author: "파울로 코엘료", Reason: "삶의 의미와 꿈을 찾아가는 여정"},
		{Title: "데미안", Author: "헤르만 헤세", Reason: "자아 찾기와 성장에 대한 철학적 탐구"},
	},
	GenreNonFiction: {
		{Title: "사피엔스", Author: "유발 하라리", Reason: "인류 역사에 대한 거시적 통찰"},
		{Title: "생각에 관한 생각", Author: "대니얼 카너먼", Reason: "인간 사고의 메커니즘 이해"},
		{Title: "총, 균, 쇠", Author: "제레드 다이아몬드", Reason: "문명 발전의 근본 원인 탐구"},
	},
	GenreSelfHelp: {
		{Title: "미움받을 용기", Author: "기시미 이치로", Reason: "자유롭고 행복한 삶을 위한 철학"},
		{Title: "아주 작은 습관의 힘", Author: "제임스 클리어", Reason: "삶을 변화시키는 습관 설계"},
		{Title: "그릿", Author: "앤절라 더크워스", Reason: "성공을 위한 열정과 끈기의 중요성"},
	},
}

// LookupCuratedWork returns a copy of the first curated work whose key is a
// case-insensitive substring of title.
func LookupCuratedWork(title string) (CuratedWork, bool) {
	lower := strings.ToLower(title)
	for _, w := range curatedWorks {
		if strings.Contains(lower, strings.ToLower(w.Key)) {
			return CuratedWork{
				Key:             w.Key,
				Insights:        append([]string(nil), w.Insights...),
				Recommendations: append([]Recommendation(nil), w.Recommendations...),
			}, true
		}
	}
	return CuratedWork{}, false
}

// ResolveRecommendations returns three recommendations: the curated set when the title
// names a known work, otherwise the generic set for the genre (fiction when unknown).
func ResolveRecommendations(title, genre string) []Recommendation {
	if w, ok := LookupCuratedWork(title); ok {
		return w.Recommendations
	}
	key, _ := CanonicalGenre(genre)
	recs, ok := genreRecommendations[key]
	if !ok {
		recs = genreRecommendations[GenreFiction]
	}
	return append([]Recommendation(nil), recs...)
}

func curatedPersonalizedInsight(title string) string {
	return fmt.Sprintf("'%s'의 깊이 있는 메시지가 당신의 삶에 의미 있는 변화를 가져다주기를 바랍니다. 이 특별한 독서 경험이 앞으로의 책 선택에도 좋은 가이드가 되길 희망합니다.", title)
}
