package analysis

import "strings"

// Genre is a canonical genre key shared by the insight pools and the recommendation tables.
type Genre string

const (
	GenreFiction    Genre = "소설"
	GenreEssay      Genre = "에세이"
	GenreSelfHelp   Genre = "자기계발"
	GenreBusiness   Genre = "경제/경영"
	GenreHumanities Genre = "인문학"
	GenreScience    Genre = "과학"
	GenreHistory    Genre = "역사"
	GenreArt        Genre = "예술"
	GenreFairyTale  Genre = "동화"
	GenreNonFiction Genre = "논픽션"
)

// genreAliases keys are lower-cased; Korean labels are unaffected by that.
var genreAliases = map[string]Genre{
	"소설":          GenreFiction,
	"fiction":     GenreFiction,
	"novel":       GenreFiction,
	"에세이":         GenreEssay,
	"essay":       GenreEssay,
	"자기계발":        GenreSelfHelp,
	"self-help":   GenreSelfHelp,
	"self help":   GenreSelfHelp,
	"경제/경영":       GenreBusiness,
	"business":    GenreBusiness,
	"economics":   GenreBusiness,
	"인문학":         GenreHumanities,
	"humanities":  GenreHumanities,
	"과학":          GenreScience,
	"science":     GenreScience,
	"역사":          GenreHistory,
	"history":     GenreHistory,
	"예술":          GenreArt,
	"art":         GenreArt,
	"동화":          GenreFairyTale,
	"fairy tale":  GenreFairyTale,
	"children":    GenreFairyTale,
	"논픽션":         GenreNonFiction,
	"non-fiction": GenreNonFiction,
	"nonfiction":  GenreNonFiction,
}

// CanonicalGenre resolves a free-form genre label. The bool is false when the label
// is unknown, in which case fiction is returned.
func CanonicalGenre(label string) (Genre, bool) {
	g, ok := genreAliases[strings.ToLower(strings.TrimSpace(label))]
	if !ok {
		return GenreFiction, false
	}
	return g, true
}

// genreLabel is the text used when a phrase names the reader's genre.
func genreLabel(raw string) string {
	if s := strings.TrimSpace(raw); s != "" {
		return s
	}
	return string(GenreFiction)
}
