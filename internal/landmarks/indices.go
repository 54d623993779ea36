package landmarks

// Face mesh indices used by the classifiers.
// See: https://github.com/google/mediapipe/blob/master/mediapipe/modules/face_geometry/data/canonical_face_model_uv_visualization.png
const (
	NoseTip        = 1
	NoseBottom     = 2
	NoseBridgeTop  = 4
	RightEyeOuter  = 33
	NoseBase       = 94
	ChinBottom     = 152
	LeftEyeOuter   = 263
	LeftBrowInner  = 296
	BetweenEyes    = 168
	NoseBridgeMid  = 197
	LeftNostrilOut = 326

	ForeheadTop   = 10
	JawRight      = 234
	JawLeft       = 454
	ForeheadRight = 21
	ForeheadLeft  = 251

	NostrilRight = 129
	NostrilLeft  = 358
	BridgeRight  = 44
	BridgeLeft   = 276

	BrowUpper = 70
	BrowLower = 105

	UpperLipInner = 13
	LowerLipInner = 14
	MouthRight    = 78
	MouthLeft     = 308
)

// SkinSamplePoints lie on bare skin (forehead, cheeks, chin, nose bridge).
var SkinSamplePoints = []int{
	NoseTip, NoseBridgeTop, RightEyeOuter, NoseBase, ChinBottom,
	LeftEyeOuter, LeftBrowInner, BetweenEyes, NoseBridgeMid, NoseBottom, LeftNostrilOut,
}

// FaceOval traces the outline of the face mesh, used for overlays.
var FaceOval = []int{
	10, 338, 297, 332, 284, 251, 389, 356, 454, 323, 361, 288,
	397, 365, 379, 378, 400, 377, 152, 148, 176, 149, 150, 136,
	172, 58, 132, 93, 234, 127, 162, 21, 54, 103, 67, 109,
}

// Lips traces the outer lip contour, used for overlays.
var Lips = []int{
	61, 146, 91, 181, 84, 17, 314, 405, 321, 375, 291,
	409, 270, 269, 267, 0, 37, 39, 40, 185,
}
