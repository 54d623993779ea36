package classify

import (
	"github.com/kozaktomas/beauty-advisor/internal/landmarks"
)

// Measurements are the pixel distances the classifiers work from.
type Measurements struct {
	JawWidth      int `json:"jaw_width"`
	ForeheadWidth int `json:"forehead_width"`
	FaceHeight    int `json:"face_height"`
	CheekWidth    int `json:"cheek_width"`
	NoseWidth     int `json:"nose_width"`
	NoseLength    int `json:"nose_length"`
	BridgeWidth   int `json:"bridge_width"`
	BrowGap       int `json:"brow_gap"`
	LipHeight     int `json:"lip_height"`
	LipWidth      int `json:"lip_width"`

	// Signed vertical positions of the inner lip landmarks.
	UpperLipY int `json:"upper_lip_y"`
	LowerLipY int `json:"lower_lip_y"`
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Measure computes all distances for a frame of the given size.
// Cheek width is measured between the same jaw landmarks as jaw width.
func Measure(set *landmarks.Set, width, height int) Measurements {
	px := func(i int) landmarks.PixelPoint { return set.Pixel(i, width, height) }

	jaw := abs(px(landmarks.JawLeft).X - px(landmarks.JawRight).X)
	upper := px(landmarks.UpperLipInner).Y
	lower := px(landmarks.LowerLipInner).Y

	return Measurements{
		JawWidth:      jaw,
		ForeheadWidth: abs(px(landmarks.ForeheadRight).X - px(landmarks.ForeheadLeft).X),
		FaceHeight:    abs(px(landmarks.ForeheadTop).Y - px(landmarks.ChinBottom).Y),
		CheekWidth:    jaw,
		NoseWidth:     abs(px(landmarks.NostrilRight).X - px(landmarks.NostrilLeft).X),
		NoseLength:    abs(px(landmarks.NoseTip).Y - px(landmarks.NoseBridgeTop).Y),
		BridgeWidth:   abs(px(landmarks.BridgeRight).X - px(landmarks.BridgeLeft).X),
		BrowGap:       abs(px(landmarks.BrowUpper).Y - px(landmarks.BrowLower).Y),
		LipHeight:     abs(upper - lower),
		LipWidth:      abs(px(landmarks.MouthRight).X - px(landmarks.MouthLeft).X),
		UpperLipY:     upper,
		LowerLipY:     lower,
	}
}

// ClassifyFaceShape classifies the face outline of a frame.
func ClassifyFaceShape(set *landmarks.Set, width, height int) FaceShape {
	return faceShapeOf(Measure(set, width, height))
}

func faceShapeOf(m Measurements) FaceShape {
	if m.ForeheadWidth == 0 || m.CheekWidth == 0 {
		return FaceOval
	}

	jawToForehead := float64(m.JawWidth) / float64(m.ForeheadWidth)
	heightToWidth := float64(m.FaceHeight) / float64(m.CheekWidth)

	if heightToWidth > 1.5 {
		switch {
		case jawToForehead < 0.85:
			return FaceHeart
		case jawToForehead <= 1.15:
			return FaceOval
		default:
			return FaceOblong
		}
	}

	cheek := float64(m.CheekWidth)
	switch {
	case jawToForehead > 1.1:
		return FaceSquare
	case float64(abs(m.CheekWidth-m.JawWidth)) < 0.1*cheek:
		return FaceRound
	default:
		return FaceDiamond
	}
}

// ClassifyNoseShape classifies nose proportions. The first matching rule wins.
func ClassifyNoseShape(set *landmarks.Set, width, height int) NoseShape {
	return noseShapeOf(Measure(set, width, height))
}

func noseShapeOf(m Measurements) NoseShape {
	if m.CheekWidth == 0 || m.FaceHeight == 0 || m.NoseWidth == 0 {
		return NoseBalanced
	}

	widthProp := float64(m.NoseWidth) / float64(m.CheekWidth)
	lengthProp := float64(m.NoseLength) / float64(m.FaceHeight)
	bridgeProp := float64(m.BridgeWidth) / float64(m.NoseWidth)

	switch {
	case widthProp > 0.25:
		if bridgeProp < 0.3 {
			return NoseWideNarrowBridge
		}
		return NoseWide
	case widthProp < 0.15:
		return NoseNarrow
	case lengthProp > 0.3:
		return NoseLong
	case bridgeProp < 0.25:
		return NoseThin
	case lengthProp < 0.2:
		return NoseShort
	default:
		return NoseBalanced
	}
}

// Pixel thresholds for brows and lips, calibrated on 640x480 frames.
const (
	archedBrowMaxGap  = 10
	roundLipMaxRatio  = 1.2
	fullLipMinHeight  = 16
	thinLipMaxHeight  = 8
	bunnyLipMinWidth  = 90
	heartLipMinGap    = 12
	heartLipMinWidth  = 95
	diamondLipMinWide = 120
	diamondLipMaxTall = 10
)

// ClassifyBrowAndLip classifies eyebrow and lip styles.
func ClassifyBrowAndLip(set *landmarks.Set, width, height int) (BrowStyle, LipStyle) {
	m := Measure(set, width, height)
	return browStyleOf(m), lipStyleOf(m)
}

func browStyleOf(m Measurements) BrowStyle {
	if m.BrowGap < archedBrowMaxGap {
		return BrowArched
	}
	return BrowStraight
}

func lipStyleOf(m Measurements) LipStyle {
	ratio := float64(m.LipWidth) / float64(max(m.LipHeight, 1))

	switch {
	case ratio < roundLipMaxRatio:
		return LipRound
	case m.LipHeight > fullLipMinHeight:
		return LipFull
	case m.LipHeight < thinLipMaxHeight:
		return LipThin
	case m.UpperLipY < m.LowerLipY && m.LipWidth > bunnyLipMinWidth:
		return LipBunny
	case m.LowerLipY-m.UpperLipY > heartLipMinGap && m.LipWidth > heartLipMinWidth:
		return LipHeart
	case m.LipWidth > diamondLipMinWide && m.LipHeight < diamondLipMaxTall:
		return LipDiamond
	default:
		return LipBalanced
	}
}
