package section

import (
	"testing"

	"github.com/arloliu/rvl/endian"
	"github.com/arloliu/rvl/format"
	"github.com/stretchr/testify/require"
)

func TestFrameFlag_Defaults(t *testing.T) {
	flag := NewFrameFlag()

	require.Equal(t, uint16(MagicFrameV1Opt), flag.GetMagicNumber())
	require.True(t, flag.HasChecksum())
	require.True(t, flag.IsLittleEndian())
	require.False(t, flag.IsBigEndian())
	require.Equal(t, format.TypeRVL, flag.Encoding())
	require.Equal(t, format.CompressionNone, flag.Compression())
	require.NoError(t, flag.Validate())
}

func TestFrameFlag_Toggles(t *testing.T) {
	flag := NewFrameFlag()

	flag.WithBigEndian()
	require.True(t, flag.IsBigEndian())
	require.Equal(t, endian.GetBigEndianEngine(), flag.GetEndianEngine())

	flag.WithLittleEndian()
	require.True(t, flag.IsLittleEndian())
	require.Equal(t, endian.GetLittleEndianEngine(), flag.GetEndianEngine())

	flag.SetHasChecksum(false)
	require.False(t, flag.HasChecksum())
	require.Equal(t, uint16(MagicFrameV1Opt), flag.GetMagicNumber(), "toggles must not touch the magic number")

	flag.SetEncoding(format.TypeRaw)
	flag.SetCompression(format.CompressionLZ4)
	require.Equal(t, format.TypeRaw, flag.Encoding())
	require.Equal(t, format.CompressionLZ4, flag.Compression())
	require.NoError(t, flag.Validate())
}
