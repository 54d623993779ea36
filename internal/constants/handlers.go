package constants

// File upload constants
const (
	// MaxUploadSize is the maximum image upload size in bytes (20MB)
	MaxUploadSize = 20 << 20

	// MaxLandmarkFieldSize is the maximum size of an uploaded landmark JSON document
	MaxLandmarkFieldSize = 1 << 20
)
