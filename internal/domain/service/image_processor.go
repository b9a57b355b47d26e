package service

// ImageProcessor normalizes uploaded pictures.
type ImageProcessor interface {
	// Encode accepts PNG or JPEG bytes, shrinks the picture to fit the configured box
	// and returns it as a base64 encoded JPEG.
	Encode(data []byte) (string, error)
}
