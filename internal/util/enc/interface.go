package enc

type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string
	// Code represents the short (one-letter) code for the encoder
	Code() byte

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) []byte

	// Decode is the reverse process of encoding
	Decode([]byte) ([]byte, error)

	// Ratio returns the nominal number of encoded bytes per input byte
	Ratio() float64

	// TestPatterns returns a list of inputs exercising the whole alphabet of the encoding
	TestPatterns() [][]byte
}
