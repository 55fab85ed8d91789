package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		sum  uint64
	}{
		{"empty payload", nil, 0xef46db3751d8e999},
		{"short payload", []byte("test"), 0x4fdcca5ddb678139},
		{"longer payload", []byte("this is a longer test string to hash"), 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sum, Checksum(tt.data))
			assert.True(t, Verify(tt.data, tt.sum))
		})
	}
}

func TestVerify_DetectsSingleBitFlip(t *testing.T) {
	payload := []byte{0x22, 0x02, 0x22, 0x02, 0x02, 0x32}
	sum := Checksum(payload)

	for i := range payload {
		corrupted := append([]byte(nil), payload...)
		corrupted[i] ^= 0x01
		require.False(t, Verify(corrupted, sum), "flip at byte %d not detected", i)
	}
}
