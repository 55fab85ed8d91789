package section

const (
	// Bit masks of FrameFlag.Options
	ChecksumMask     = 0x0001 // Mask for payload checksum bit (bit 0)
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000C // Mask for reserved bits (bits 2-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicFrameV1Opt is the version 1 magic number of the depth frame format.
	MagicFrameV1Opt = 0xD310
)

// offsets and sizes in the frame blob
const (
	HeaderSize = 32 // fixed header size in bytes

	optionsOffset     = 0
	encodingOffset    = 2
	compressionOffset = 3
	widthOffset       = 4
	heightOffset      = 8
	payloadSizeOffset = 12
	checksumOffset    = 16
	captureTimeOffset = 24

	// MaxFrameDimension is the largest width or height a frame may declare.
	MaxFrameDimension = 1 << 15
)
