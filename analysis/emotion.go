package analysis

// EmotionProfile is a classifier record: the emotion plus the empathy sentence used for it.
type EmotionProfile struct {
	Emotion
	Template string
}

const defaultEmotionLabel = "Thoughtful"

var emotionTable = map[string]EmotionProfile{
	"Happy": {
		Emotion:  Emotion{Primary: "기쁨", Secondary: "만족", Intensity: IntensityHigh},
		Template: "책을 통해 느끼신 행복과 기쁨이 전해져 옵니다. 좋은 책과의 만남은 정말 특별한 경험이죠.",
	},
	"Sad": {
		Emotion:  Emotion{Primary: "슬픔", Secondary: "아쉬움", Intensity: IntensityMedium},
		Template: "책이 전하는 감정에 깊이 공감하셨군요. 때로는 슬픔도 우리를 성장시키는 소중한 감정입니다.",
	},
	"Excited": {
		Emotion:  Emotion{Primary: "흥분", Secondary: "기대", Intensity: IntensityHigh},
		Template: "책에 대한 열정이 느껴집니다! 이런 설렘이 다음 독서로도 이어지기를 바랍니다.",
	},
	"Thoughtful": {
		Emotion:  Emotion{Primary: "사색", Secondary: "깨달음", Intensity: IntensityMedium},
		Template: "깊은 생각에 잠기게 하는 책이었군요. 이런 성찰의 시간이 정말 소중합니다.",
	},
	"감동적": {
		Emotion:  Emotion{Primary: "감동", Secondary: "여운", Intensity: IntensityHigh},
		Template: "마음 깊은 곳을 울리는 작품을 만나셨군요. 이런 감동은 오래도록 기억에 남을 것입니다.",
	},
	"즐거움": {
		Emotion:  Emotion{Primary: "즐거움", Secondary: "유쾌함", Intensity: IntensityHigh},
		Template: "독서의 즐거움을 만끽하셨네요! 책장을 넘기는 설렘이 전해집니다.",
	},
	"슬픔": {
		Emotion:  Emotion{Primary: "슬픔", Secondary: "먹먹함", Intensity: IntensityHigh},
		Template: "작품이 전하는 슬픔에 깊이 공감하셨군요. 이런 감정의 깊이가 우리를 더 성숙하게 만듭니다.",
	},
	"놀라움": {
		Emotion:  Emotion{Primary: "놀라움", Secondary: "충격", Intensity: IntensityHigh},
		Template: "예상치 못한 전개에 놀라셨군요! 이런 반전의 묘미가 독서의 큰 즐거움이죠.",
	},
	"평온함": {
		Emotion:  Emotion{Primary: "평온", Secondary: "안정", Intensity: IntensityLow},
		Template: "마음의 평화를 찾게 해주는 책이었나 봅니다. 이런 고요한 위로가 때로는 가장 큰 힘이 되죠.",
	},
	"흥미로움": {
		Emotion:  Emotion{Primary: "호기심", Secondary: "탐구심", Intensity: IntensityMedium},
		Template: "지적 호기심을 자극하는 흥미로운 독서였군요. 새로운 지식과 관점을 얻으셨기를 바랍니다.",
	},
	"아쉬움": {
		Emotion:  Emotion{Primary: "아쉬움", Secondary: "미련", Intensity: IntensityMedium},
		Template: "기대와는 다른 면이 있었나 보네요. 하지만 이런 경험도 독서 여정의 의미 있는 한 부분입니다.",
	},
	"따뜻함": {
		Emotion:  Emotion{Primary: "따뜻함", Secondary: "포근함", Intensity: IntensityMedium},
		Template: "마음이 따뜻해지는 이야기였군요. 이런 온기가 일상에도 스며들기를 바랍니다.",
	},
}

// Classify looks up the reader's reported emotion. The lookup is exact and case-sensitive;
// unknown labels get the Thoughtful profile.
func Classify(reported string) EmotionProfile {
	if p, ok := emotionTable[reported]; ok {
		return p
	}
	return emotionTable[defaultEmotionLabel]
}
