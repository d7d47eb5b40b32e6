package sortedlist

import "github.com/klauspost/compress/zstd"

var (
	encoder, _ = zstd.NewWriter(
		nil,
		zstd.WithEncoderLevel(zstd.SpeedFastest),
		zstd.WithEncoderCRC(true),
	)
	decoder, _ = zstd.NewReader(nil)
)

// compress with zstd algorithm.
func compress(src, dst []byte) []byte {
	return encoder.EncodeAll(src, dst)
}

// decompress with zstd algorithm.
func decompress(src, dst []byte) ([]byte, error) {
	return decoder.DecodeAll(src, dst)
}
