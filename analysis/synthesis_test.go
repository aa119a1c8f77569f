package analysis

import (
	"strings"
	"testing"
)

func TestTierFor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		rating float64
		want   Tier
	}{
		{0, TierMismatch},
		{3.49, TierMismatch},
		{3.5, TierBalance},
		{4.49, TierBalance},
		{4.5, TierExcellence},
		{5, TierExcellence},
	}
	for _, tc := range cases {
		if got := TierFor(tc.rating); got != tc.want {
			t.Fatalf("TierFor(%v)=%s want %s", tc.rating, got, tc.want)
		}
	}
}

func TestFormatRating(t *testing.T) {
	t.Parallel()

	for in, want := range map[float64]string{5: "5.0", 0: "0.0", 4.5: "4.5", 3.25: "3.25"} {
		if got := formatRating(in); got != want {
			t.Fatalf("formatRating(%v)=%q want %q", in, got, want)
		}
	}
}

func TestPersonalizedInsightByTier(t *testing.T) {
	t.Parallel()

	if got := personalizedInsight(4.5, "데미안", "감동"); !strings.Contains(got, "감동의 순간") {
		t.Fatalf("excellence: %q", got)
	}
	if got := personalizedInsight(3.5, "데미안", "감동"); !strings.Contains(got, "나침반") {
		t.Fatalf("balance: %q", got)
	}
	got := personalizedInsight(1, "데미안", "감동")
	if !strings.Contains(got, "스펙트럼") || strings.Contains(got, "감동") {
		t.Fatalf("mismatch: %q", got)
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	warm := Classify("따뜻함")
	if warm.Primary != "따뜻함" || warm.Secondary != "포근함" || warm.Intensity != IntensityMedium {
		t.Fatalf("따뜻함: %+v", warm.Emotion)
	}
	if Classify("평온함").Intensity != IntensityLow || Classify("Happy").Intensity != IntensityHigh {
		t.Fatalf("intensity mapping broken")
	}

	unknown := Classify("bewildered")
	if unknown.Emotion != (Emotion{Primary: "사색", Secondary: "깨달음", Intensity: IntensityMedium}) {
		t.Fatalf("default: %+v", unknown.Emotion)
	}
	if Classify("bewildered") != unknown {
		t.Fatalf("classification not stable")
	}
	if Classify("happy") != unknown {
		t.Fatalf("lookup must be case-sensitive")
	}
	if n := len(emotionTable); n != 12 {
		t.Fatalf("emotion labels=%d", n)
	}
}

func TestParseIntensity(t *testing.T) {
	t.Parallel()

	cases := map[string]Intensity{
		"low": IntensityLow, "HIGH": IntensityHigh, " 높음 ": IntensityHigh,
		"낮음": IntensityLow, "medium": IntensityMedium, "extreme": IntensityMedium, "": IntensityMedium,
	}
	for in, want := range cases {
		if got := ParseIntensity(in); got != want {
			t.Fatalf("ParseIntensity(%q)=%s want %s", in, got, want)
		}
	}
}

func TestCanonicalGenre(t *testing.T) {
	t.Parallel()

	if g, ok := CanonicalGenre(" Essay "); !ok || g != GenreEssay {
		t.Fatalf("essay: %v %v", g, ok)
	}
	if g, ok := CanonicalGenre("poetry"); ok || g != GenreFiction {
		t.Fatalf("unknown: %v %v", g, ok)
	}
	if genreLabel("") != "소설" || genreLabel("시") != "시" {
		t.Fatalf("genreLabel")
	}
}

func TestComposeInsights(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name                  string
		genre, content, title string
		rating                float64
		want0, want1, want2   string
	}{
		{
			name:    "keywords hit",
			genre:   "에세이",
			content: "읽는 내내 눈물이 났고 재미도 있었다",
			title:   "사랑의 기술",
			rating:  4.8,
			want0:   "이 작품은 에세이 장르의 정수를 보여주며, 독자에게 깊은 만족감을 선사합니다.",
			want1:   contentRules[0].insight,
			want2:   titleRules[0].insight,
		},
		{
			name:    "pool fallback",
			genre:   "과학",
			content: "무난했다",
			title:   "코스모스",
			rating:  3.9,
			want0:   "과학 장르의 특성을 살리면서도 독자적인 개성이 느껴지는 작품입니다.",
			want1:   genreInsightPools[GenreScience][0],
			want2:   genreInsightPools[GenreScience][1],
		},
		{
			name:    "unknown genre low rating",
			genre:   "poetry",
			content: "한참을 고민하게 됐다",
			title:   "먼 길",
			rating:  2,
			want0:   "기대와는 다른 면이 있었지만, 그 자체로 의미 있는 독서 경험을 제공합니다.",
			want1:   contentRules[2].insight,
			want2:   titleRules[1].insight,
		},
		{
			name:    "english words are not keywords",
			genre:   "소설",
			content: "I asked for a refund, it was no fun to think about",
			title:   "Broad Sometimes Love",
			rating:  4,
			want0:   "소설 장르의 특성을 살리면서도 독자적인 개성이 느껴지는 작품입니다.",
			want1:   genreInsightPools[GenreFiction][0],
			want2:   genreInsightPools[GenreFiction][1],
		},
		{
			name:    "love rule wins over journey rule",
			genre:   "소설",
			content: "",
			title:   "여행과 사랑",
			rating:  4,
			want0:   "소설 장르의 특성을 살리면서도 독자적인 개성이 느껴지는 작품입니다.",
			want1:   genreInsightPools[GenreFiction][0],
			want2:   titleRules[0].insight,
		},
		{
			name:    "time rule",
			genre:   "에세이",
			content: "배움이 있었다",
			title:   "잃어버린 시간을 찾아서",
			rating:  4.5,
			want0:   "이 작품은 에세이 장르의 정수를 보여주며, 독자에게 깊은 만족감을 선사합니다.",
			want1:   contentRules[3].insight,
			want2:   titleRules[2].insight,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ComposeInsights(tc.genre, tc.content, tc.rating, tc.title)
			if len(got) != 3 {
				t.Fatalf("len=%d", len(got))
			}
			if got[0] != tc.want0 || got[1] != tc.want1 || got[2] != tc.want2 {
				t.Fatalf("got %q", got)
			}
		})
	}
}

func TestComposeInsightsEmptyGenreUsesFiction(t *testing.T) {
	t.Parallel()

	got := ComposeInsights("", "", 5, "")
	if !strings.Contains(got[0], "소설 장르") {
		t.Fatalf("rating slot: %q", got[0])
	}
	if got[1] != genreInsightPools[GenreFiction][0] || got[2] != genreInsightPools[GenreFiction][1] {
		t.Fatalf("got %q", got)
	}
}

func TestPadInsights(t *testing.T) {
	t.Parallel()

	if got := padInsights([]string{"a"}, nil); len(got) != 3 || got[2] != genericClosingInsight {
		t.Fatalf("empty pool: %q", got)
	}
	if got := padInsights([]string{"a", "b", "c", "d"}, nil); len(got) != 3 {
		t.Fatalf("trim: %q", got)
	}
}

func TestResolveRecommendations(t *testing.T) {
	t.Parallel()

	for _, genre := range []string{"소설", "자기계발", "", "unknown"} {
		recs := ResolveRecommendations("데미안 (개정판)", genre)
		if len(recs) != 3 || recs[0].Title != "싯다르타" || recs[2].Title != "수레바퀴 아래서" {
			t.Fatalf("genre %q: %+v", genre, recs)
		}
	}

	if recs := ResolveRecommendations("원씽", "자기계발"); recs[0].Title != "미움받을 용기" {
		t.Fatalf("self-help: %+v", recs)
	}
	if recs := ResolveRecommendations("코스모스", "과학"); recs[0].Title != "노르웨이의 숲" {
		t.Fatalf("fiction default: %+v", recs)
	}
	if recs := ResolveRecommendations("Nineteen 1984 Edition", ""); recs[0].Title != "멋진 신세계" {
		t.Fatalf("1984: %+v", recs)
	}
}

func TestResolveRecommendationsReturnsCopies(t *testing.T) {
	t.Parallel()

	recs := ResolveRecommendations("사피엔스", "")
	recs[0].Title = "mutated"
	if again := ResolveRecommendations("사피엔스", ""); again[0].Title != "호모 데우스" {
		t.Fatalf("curated data was mutated: %+v", again)
	}

	w, ok := LookupCuratedWork("어린 왕자")
	if !ok {
		t.Fatalf("expected curated hit")
	}
	w.Insights[0] = "mutated"
	w2, _ := LookupCuratedWork("어린 왕자")
	if w2.Insights[0] == "mutated" {
		t.Fatalf("curated insights were mutated")
	}
}
