package models

// Token is one OCR-recognized text string together with its position on the
// source image. The classifier only consumes the text; the box and
// confidence feed the annotation overlay.
type Token struct {
	Text       string
	Confidence float64
	Box        Box
}

// Box is an axis-aligned bounding box in image pixel coordinates.
type Box struct {
	X0 int
	Y0 int
	X1 int
	Y1 int
}
