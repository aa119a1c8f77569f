package analysis

import (
	"fmt"
	"strings"
)

const insightCount = 3

var genreInsightPools = map[Genre][]string{
	GenreFiction: {
		"작가의 서사 구조와 인물 묘사가 독자를 이야기 속으로 깊이 끌어들입니다.",
		"허구와 현실의 경계를 넘나들며 인간 본성에 대한 깊은 성찰을 제공합니다.",
		"등장인물들의 내면 갈등과 성장 과정이 우리 자신의 삶을 돌아보게 만듭니다.",
	},
	GenreEssay: {
		"저자의 개인적 경험과 통찰이 보편적 진리로 승화되는 과정이 인상적입니다.",
		"일상의 소소한 순간들을 특별하게 만드는 저자만의 시선이 돋보입니다.",
		"삶의 지혜와 철학이 담백하면서도 울림 있게 전달됩니다.",
	},
	GenreSelfHelp: {
		"실천 가능한 구체적인 방법론과 동기부여가 균형있게 제시됩니다.",
		"개인의 성장과 변화를 위한 실용적인 로드맵을 제공합니다.",
		"이론과 실제 사례의 조화로운 구성이 설득력을 높입니다.",
	},
	GenreBusiness: {
		"복잡한 경제 현상을 명쾌하게 풀어내는 저자의 통찰력이 돋보입니다.",
		"비즈니스 전략과 실행에 대한 실무적 관점이 유용합니다.",
		"시대의 변화를 읽고 미래를 예측하는 혜안을 제시합니다.",
	},
	GenreHumanities: {
		"인간과 사회에 대한 근본적인 질문을 던지며 사고의 깊이를 더합니다.",
		"고전의 지혜를 현대적으로 재해석하여 새로운 의미를 발견하게 합니다.",
		"학문적 엄밀성과 대중적 접근성의 균형이 잘 잡혀 있습니다.",
	},
	GenreScience: {
		"복잡한 과학 원리를 쉽고 흥미롭게 설명하는 저자의 능력이 탁월합니다.",
		"자연 현상 속에 숨겨진 경이로움과 아름다움을 발견하게 합니다.",
		"과학적 사고방식이 일상생활에 어떻게 적용될 수 있는지 보여줍니다.",
	},
	GenreHistory: {
		"과거의 사건들이 현재에 주는 교훈과 의미를 깊이 있게 탐구합니다.",
		"역사적 인물들의 선택과 그 결과가 시대를 어떻게 변화시켰는지 조명합니다.",
		"거시적 흐름과 미시적 디테일의 균형잡힌 서술이 인상적입니다.",
	},
	GenreArt: {
		"예술 작품 속에 담긴 시대정신과 작가의 철학을 섬세하게 풀어냅니다.",
		"미적 감수성과 비평적 시각을 동시에 길러주는 풍부한 내용입니다.",
		"창작 과정의 고뇌와 열정이 생생하게 전달됩니다.",
	},
	GenreFairyTale: {
		"어린이의 순수한 시선으로 세상의 진리를 발견하게 합니다.",
		"상상력과 현실의 조화로운 만남이 모든 연령대에 감동을 줍니다.",
		"단순한 이야기 속에 깊은 철학적 메시지가 담겨 있습니다.",
	},
}

// keywordRule emits insight when any keyword is contained in the scanned text.
type keywordRule struct {
	keywords []string
	insight  string
}

// Evaluated in order; the first matching rule wins.
var contentRules = []keywordRule{
	{
		keywords: []string{"감동", "눈물"},
		insight:  "독자의 감정선을 섬세하게 터치하며 깊은 울림을 전달하는 작품입니다.",
	},
	{
		keywords: []string{"재미", "흥미"},
		insight:  "페이지를 넘기는 손을 멈출 수 없게 만드는 흡입력 있는 전개가 매력적입니다.",
	},
	{
		keywords: []string{"생각", "고민"},
		insight:  "독서 후에도 오래도록 생각하게 만드는 여운과 질문을 남깁니다.",
	},
	{
		keywords: []string{"배움", "교훈"},
		insight:  "지식과 지혜를 동시에 전달하며 독자의 성장을 돕는 가치 있는 작품입니다.",
	},
}

var titleRules = []keywordRule{
	{
		keywords: []string{"사랑"},
		insight:  "사랑의 다양한 모습과 의미를 섬세하게 포착하여 독자의 공감을 이끌어냅니다.",
	},
	{
		keywords: []string{"여행", "길"},
		insight:  "물리적 여정과 내면의 여정이 교차하며 성장과 발견의 서사를 그려냅니다.",
	},
	{
		keywords: []string{"시간", "기억"},
		insight:  "시간의 흐름 속에서 변하는 것과 변하지 않는 것에 대한 성찰을 제공합니다.",
	},
}

const (
	genericContentInsight = "작품만의 독특한 매력과 메시지가 독자에게 새로운 시각을 제공합니다."
	genericClosingInsight = "독서를 통해 얻은 감동과 깨달음이 일상에 긍정적인 영향을 미치기를 바랍니다."
)

// ComposeInsights builds the three insights in fixed order: rating slot, content slot, title slot.
func ComposeInsights(genre, content string, rating float64, title string) []string {
	key, _ := CanonicalGenre(genre)
	pool, ok := genreInsightPools[key]
	if !ok {
		pool = genreInsightPools[GenreFiction]
	}

	out := make([]string, 0, insightCount)
	out = append(out, ratingInsight(genreLabel(genre), rating))

	if s, ok := firstMatch(contentRules, content); ok {
		out = append(out, s)
	} else {
		out = append(out, poolEntry(pool, 0, genericContentInsight))
	}

	if s, ok := firstMatch(titleRules, title); ok {
		out = append(out, s)
	} else {
		out = append(out, poolEntry(pool, 1, genericContentInsight))
	}

	return padInsights(out, pool)
}

func ratingInsight(genre string, rating float64) string {
	switch TierFor(rating) {
	case TierExcellence:
		return fmt.Sprintf("이 작품은 %s 장르의 정수를 보여주며, 독자에게 깊은 만족감을 선사합니다.", genre)
	case TierBalance:
		return fmt.Sprintf("%s 장르의 특성을 살리면서도 독자적인 개성이 느껴지는 작품입니다.", genre)
	default:
		return "기대와는 다른 면이 있었지만, 그 자체로 의미 있는 독서 경험을 제공합니다."
	}
}

func firstMatch(rules []keywordRule, text string) (string, bool) {
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				return r.insight, true
			}
		}
	}
	return "", false
}

func poolEntry(pool []string, i int, fallback string) string {
	if i < len(pool) && strings.TrimSpace(pool[i]) != "" {
		return pool[i]
	}
	return fallback
}

// padInsights trims or extends in to exactly insightCount entries.
// Filler comes from the back of the pool, then the generic closing line.
func padInsights(in []string, pool []string) []string {
	if len(in) >= insightCount {
		return in[:insightCount]
	}
	for i := len(in); i < insightCount; i++ {
		in = append(in, poolEntry(pool, i, genericClosingInsight))
	}
	return in
}
