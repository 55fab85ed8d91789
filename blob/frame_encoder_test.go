package blob

import (
	"image"
	"testing"
	"time"

	"github.com/arloliu/rvl/errs"
	"github.com/arloliu/rvl/format"
	"github.com/arloliu/rvl/section"
	"github.com/stretchr/testify/require"
)

func TestNewFrameEncoder_Defaults(t *testing.T) {
	encoder, err := NewFrameEncoder(64, 48)
	require.NoError(t, err)
	defer encoder.Close()

	header := encoder.Header()
	require.Equal(t, 64, encoder.Width())
	require.Equal(t, 48, encoder.Height())
	require.Equal(t, format.TypeRVL, header.Flag.Encoding())
	require.Equal(t, format.CompressionNone, header.Flag.Compression())
	require.True(t, header.Flag.IsLittleEndian())
	require.True(t, header.Flag.HasChecksum())
}

func TestNewFrameEncoder_Options(t *testing.T) {
	encoder, err := NewFrameEncoder(8, 8,
		WithEncoding(format.TypeStreamVByte),
		WithCompression(format.CompressionS2),
		WithBigEndian(),
		WithChecksum(false),
	)
	require.NoError(t, err)
	defer encoder.Close()

	header := encoder.Header()
	require.Equal(t, format.TypeStreamVByte, header.Flag.Encoding())
	require.Equal(t, format.CompressionS2, header.Flag.Compression())
	require.True(t, header.Flag.IsBigEndian())
	require.False(t, header.Flag.HasChecksum())

	encoder2, err := NewFrameEncoder(8, 8, WithBigEndian(), WithLittleEndian())
	require.NoError(t, err)
	defer encoder2.Close()
	require.True(t, encoder2.Header().Flag.IsLittleEndian())
}

func TestNewFrameEncoder_Errors(t *testing.T) {
	_, err := NewFrameEncoder(0, 10)
	require.ErrorIs(t, err, errs.ErrInvalidDimensions)

	_, err = NewFrameEncoder(10, 10, WithEncoding(format.EncodingType(0x0E)))
	require.ErrorContains(t, err, "invalid pixel encoding")

	_, err = NewFrameEncoder(10, 10, WithCompression(format.CompressionType(0)))
	require.ErrorContains(t, err, "invalid pixel compression")
}

func TestFrameEncoder_Encode_Layout(t *testing.T) {
	encoder, err := NewFrameEncoder(13, 1)
	require.NoError(t, err)
	defer encoder.Close()

	data, err := encoder.Encode(baseCaptureTime, []uint16{0, 0, 1, 2, 0, 0, 3, 4, 5, 0, 0, 0, 6})
	require.NoError(t, err)

	require.Len(t, data, section.HeaderSize+6)
	require.Equal(t, []byte{0x22, 0x02, 0x22, 0x02, 0x02, 0x32}, data[section.HeaderSize:])

	header, err := section.ParseFrameHeader(data)
	require.NoError(t, err)
	require.Equal(t, uint32(6), header.PayloadSize)
	require.NotZero(t, header.Checksum)
	require.Equal(t, baseCaptureTime.UnixMicro(), header.CaptureTime)

	stats := encoder.LastStats()
	require.Equal(t, format.CompressionNone, stats.Algorithm)
	require.Equal(t, int64(6), stats.OriginalSize)
	require.Equal(t, int64(6), stats.CompressedSize)
}

func TestFrameEncoder_Encode_NoChecksum(t *testing.T) {
	encoder, err := NewFrameEncoder(2, 2, WithChecksum(false))
	require.NoError(t, err)
	defer encoder.Close()

	data, err := encoder.Encode(baseCaptureTime, []uint16{1, 2, 3, 4})
	require.NoError(t, err)

	header, err := section.ParseFrameHeader(data)
	require.NoError(t, err)
	require.Zero(t, header.Checksum)
}

func TestFrameEncoder_Encode_PixelCountMismatch(t *testing.T) {
	encoder, err := NewFrameEncoder(4, 4)
	require.NoError(t, err)
	defer encoder.Close()

	_, err = encoder.Encode(baseCaptureTime, make([]uint16, 15))
	require.ErrorIs(t, err, errs.ErrPixelCountMismatch)
}

func TestFrameEncoder_ReuseAcrossFrames(t *testing.T) {
	encoder, err := NewFrameEncoder(32, 24)
	require.NoError(t, err)
	defer encoder.Close()

	first := syntheticDepth(32, 24, 1)
	second := syntheticDepth(32, 24, 2)

	_, err = encoder.Encode(baseCaptureTime, first)
	require.NoError(t, err)
	data, err := encoder.Encode(baseCaptureTime.Add(33*time.Millisecond), second)
	require.NoError(t, err)

	// The second frame must not depend on the first.
	fresh, err := NewFrameEncoder(32, 24)
	require.NoError(t, err)
	defer fresh.Close()
	want, err := fresh.Encode(baseCaptureTime.Add(33*time.Millisecond), second)
	require.NoError(t, err)

	require.Equal(t, want, data)
}

func TestFrameEncoder_EncodeGray16(t *testing.T) {
	encoder, err := NewFrameEncoder(3, 2)
	require.NoError(t, err)
	defer encoder.Close()

	img := image.NewGray16(image.Rect(10, 10, 13, 12))
	img.SetGray16(10, 10, colorGray16(500))
	img.SetGray16(12, 11, colorGray16(65535))

	data, err := encoder.EncodeGray16(baseCaptureTime, img)
	require.NoError(t, err)

	frame, err := DecodeFrame(data)
	require.NoError(t, err)
	require.Equal(t, []uint16{500, 0, 0, 0, 0, 65535}, frame.Pixels)

	_, err = encoder.EncodeGray16(baseCaptureTime, image.NewGray16(image.Rect(0, 0, 2, 3)))
	require.ErrorIs(t, err, errs.ErrInvalidDimensions)
}

func TestFrameEncoder_CompressionStats(t *testing.T) {
	encoder, err := NewFrameEncoder(64, 48, WithEncoding(format.TypeRaw), WithCompression(format.CompressionZstd))
	require.NoError(t, err)
	defer encoder.Close()

	_, err = encoder.Encode(baseCaptureTime, syntheticDepth(64, 48, 3))
	require.NoError(t, err)

	stats := encoder.LastStats()
	require.Equal(t, format.CompressionZstd, stats.Algorithm)
	require.Equal(t, int64(64*48*2), stats.OriginalSize)
	require.Less(t, stats.CompressedSize, stats.OriginalSize)
	require.Greater(t, stats.SpaceSavings(), 0.0)
}

func BenchmarkFrameEncoder_Encode(b *testing.B) {
	pixels := syntheticDepth(640, 480, 1)

	for _, encType := range []format.EncodingType{format.TypeRVL, format.TypeStreamVByte, format.TypeRaw} {
		b.Run(encType.String(), func(b *testing.B) {
			encoder, err := NewFrameEncoder(640, 480, WithEncoding(encType))
			if err != nil {
				b.Fatal(err)
			}
			defer encoder.Close()

			b.ReportAllocs()
			b.SetBytes(int64(len(pixels) * 2))
			for b.Loop() {
				if _, err := encoder.Encode(baseCaptureTime, pixels); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
