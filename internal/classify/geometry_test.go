package classify

import (
	"maps"
	"testing"

	"github.com/kozaktomas/beauty-advisor/internal/landmarks"
)

func TestClassifyFaceShape(t *testing.T) {
	tests := []struct {
		name                      string
		jaw, forehead, faceHeight int
		want                      FaceShape
	}{
		{"round: equal widths, square proportions", 200, 200, 200, FaceRound},
		{"square: jaw wider than forehead", 240, 200, 240, FaceSquare},
		{"heart: long with narrow jaw", 200, 260, 400, FaceHeart},
		{"oval: long and balanced", 200, 200, 400, FaceOval},
		{"oval: lower ratio bound", 170, 200, 400, FaceOval},
		{"oval: upper ratio bound", 230, 200, 400, FaceOval},
		{"oblong: long with wide jaw", 240, 200, 400, FaceOblong},
		{"height ratio exactly 1.5 is not long", 200, 200, 300, FaceRound},
		{"degenerate forehead", 200, 0, 300, FaceOval},
		{"degenerate cheeks", 0, 200, 300, FaceOval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := buildFace(t, outline(tt.jaw, tt.forehead, tt.faceHeight))
			if got := ClassifyFaceShape(set, frameWidth, frameHeight); got != tt.want {
				m := Measure(set, frameWidth, frameHeight)
				t.Errorf("ClassifyFaceShape() = %s, want %s (measurements %+v)", got, tt.want, m)
			}
		})
	}
}

func TestFaceShapeOf_LabelSet(t *testing.T) {
	valid := map[FaceShape]bool{}
	for _, s := range FaceShapes {
		valid[s] = true
	}
	for jaw := 50; jaw <= 400; jaw += 25 {
		for forehead := 50; forehead <= 400; forehead += 25 {
			for height := 50; height <= 450; height += 50 {
				got := faceShapeOf(Measurements{JawWidth: jaw, CheekWidth: jaw, ForeheadWidth: forehead, FaceHeight: height})
				if !valid[got] {
					t.Fatalf("unexpected face shape %d", got)
				}
			}
		}
	}
}

func TestFaceShapeOf_Diamond(t *testing.T) {
	// Only reachable when cheek width differs from jaw width.
	got := faceShapeOf(Measurements{JawWidth: 160, CheekWidth: 220, ForeheadWidth: 200, FaceHeight: 250})
	if got != FaceDiamond {
		t.Errorf("faceShapeOf() = %s, want diamond", got)
	}
}

func nose(width, length, bridge int) map[int]px {
	at := outline(200, 200, 200)
	maps.Copy(at, map[int]px{
		landmarks.NostrilRight:  {300, 250},
		landmarks.NostrilLeft:   {300 + width, 250},
		landmarks.NoseBridgeTop: {320, 150},
		landmarks.NoseTip:       {320, 150 + length},
		landmarks.BridgeRight:   {310, 180},
		landmarks.BridgeLeft:    {310 + bridge, 180},
	})
	return at
}

func TestClassifyNoseShape(t *testing.T) {
	tests := []struct {
		name                  string
		width, length, bridge int
		want                  NoseShape
	}{
		{"wide with narrow bridge beats long", 60, 80, 10, NoseWideNarrowBridge},
		{"wide", 60, 50, 30, NoseWide},
		{"narrow beats long", 20, 80, 20, NoseNarrow},
		{"long beats thin", 40, 80, 5, NoseLong},
		{"thin beats short", 40, 30, 8, NoseThin},
		{"thin", 40, 50, 8, NoseThin},
		{"short", 40, 30, 20, NoseShort},
		{"balanced", 40, 50, 20, NoseBalanced},
		{"degenerate nose width", 0, 50, 20, NoseBalanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := buildFace(t, nose(tt.width, tt.length, tt.bridge))
			if got := ClassifyNoseShape(set, frameWidth, frameHeight); got != tt.want {
				t.Errorf("ClassifyNoseShape() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassifyNoseShape_DegenerateFace(t *testing.T) {
	set := buildFace(t, nil)
	if got := ClassifyNoseShape(set, frameWidth, frameHeight); got != NoseBalanced {
		t.Errorf("ClassifyNoseShape() = %s, want balanced", got)
	}
}

func mouth(upperY, lowerY, width int) map[int]px {
	return map[int]px{
		landmarks.BrowUpper:     {250, 100},
		landmarks.BrowLower:     {260, 120},
		landmarks.UpperLipInner: {320, upperY},
		landmarks.LowerLipInner: {320, lowerY},
		landmarks.MouthRight:    {270, 320},
		landmarks.MouthLeft:     {270 + width, 320},
	}
}

func TestClassifyBrowAndLip(t *testing.T) {
	tests := []struct {
		name         string
		upper, lower int
		width        int
		want         LipStyle
	}{
		{"round", 300, 310, 10, LipRound},
		{"full", 300, 320, 100, LipFull},
		{"thin", 300, 305, 100, LipThin},
		{"bunny", 300, 312, 100, LipBunny},
		{"diamond needs inverted inner lip", 309, 300, 130, LipDiamond},
		{"balanced inverted", 312, 300, 100, LipBalanced},
		{"balanced narrow", 300, 312, 80, LipBalanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := buildFace(t, mouth(tt.upper, tt.lower, tt.width))
			brow, lip := ClassifyBrowAndLip(set, frameWidth, frameHeight)
			if brow != BrowStraight {
				t.Errorf("brow = %s, want straight", brow)
			}
			if lip != tt.want {
				t.Errorf("lip = %s, want %s", lip, tt.want)
			}
		})
	}
}

func TestBrowStyle(t *testing.T) {
	at := mouth(300, 312, 100)
	at[landmarks.BrowLower] = px{260, 105}
	brow, _ := ClassifyBrowAndLip(buildFace(t, at), frameWidth, frameHeight)
	if brow != BrowArched {
		t.Errorf("brow = %s, want arched", brow)
	}
}

func TestLipStyleOf_Heart(t *testing.T) {
	// The bunny rule shadows heart whenever the upper lip sits above the lower.
	got := lipStyleOf(Measurements{LipHeight: 14, LipWidth: 100, UpperLipY: 300, LowerLipY: 314})
	if got != LipBunny {
		t.Errorf("lipStyleOf() = %s, want bunny", got)
	}
}
