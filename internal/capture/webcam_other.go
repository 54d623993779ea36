//go:build !linux

package capture

// Open is not available outside linux.
func Open(device string) (Camera, error) {
	return nil, ErrUnsupported
}
