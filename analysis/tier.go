package analysis

import (
	"fmt"
	"math"
	"strconv"
)

// Tier is a rating band. Boundaries belong to the higher band.
type Tier int

const (
	TierMismatch   Tier = iota // rating < 3.5
	TierBalance                // 3.5 <= rating < 4.5
	TierExcellence             // rating >= 4.5
)

const (
	excellenceThreshold = 4.5
	balanceThreshold    = 3.5
)

func TierFor(rating float64) Tier {
	switch {
	case rating >= excellenceThreshold:
		return TierExcellence
	case rating >= balanceThreshold:
		return TierBalance
	default:
		return TierMismatch
	}
}

func (t Tier) String() string {
	switch t {
	case TierExcellence:
		return "excellence"
	case TierBalance:
		return "balance"
	default:
		return "mismatch"
	}
}

func personalizedInsight(rating float64, title, primaryEmotion string) string {
	switch TierFor(rating) {
	case TierExcellence:
		return fmt.Sprintf("'%s'과의 만남이 당신에게 %s의 순간을 선사했듯이, 앞으로의 독서 여정도 이런 특별한 경험들로 가득하기를 바랍니다.", title, primaryEmotion)
	case TierBalance:
		return fmt.Sprintf("'%s'을 통해 느낀 %s이 새로운 독서의 방향을 제시하는 나침반이 되기를 희망합니다.", title, primaryEmotion)
	default:
		return fmt.Sprintf("모든 책이 우리에게 완벽한 만족을 주지는 않지만, '%s'과의 만남도 당신의 독서 스펙트럼을 넓히는 의미 있는 경험이 되었을 것입니다.", title)
	}
}

// formatRating prints whole ratings with one decimal ("5.0") and the rest in shortest form ("4.25").
func formatRating(rating float64) string {
	if rating == math.Trunc(rating) {
		return strconv.FormatFloat(rating, 'f', 1, 64)
	}
	return strconv.FormatFloat(rating, 'f', -1, 64)
}
