//go:build js || plan9

package ttyio

// Open always fails on this platform.
func Open() (*Handle, error) {
	return nil, ErrUnsupportedPlatform
}
