// Package section defines the binary layout of an rvl depth frame blob.
//
// A frame blob is a fixed 32-byte header followed by one pixel payload:
//
//	┌──────────────────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                                 │
//	│  0-1   Options: checksum, endianness, magic 0xD310       │
//	│  2     Encoding (format.EncodingType)                    │
//	│  3     Compression (format.CompressionType)              │
//	│  4-7   Width                                             │
//	│  8-11  Height                                            │
//	│  12-15 PayloadSize                                       │
//	│  16-23 Checksum (xxHash64 of the stored payload)         │
//	│  24-31 CaptureTime (unix microseconds)                   │
//	├──────────────────────────────────────────────────────────┤
//	│ Payload (PayloadSize bytes)                              │
//	│  Encoded pixels, compressed when Compression != None     │
//	└──────────────────────────────────────────────────────────┘
//
// Options is always little-endian so a reader can find the endianness bit before
// decoding anything else. Every later multi-byte field follows that bit.
//
// The pixel count is not stored; it is Width * Height.
package section
