package compress

import (
	"testing"
)

var benchmarkFrames = []struct {
	name          string
	width, height int
}{
	{"qvga", 320, 240},
	{"vga", 640, 480},
	{"hd", 1280, 720},
}

func BenchmarkAllCodecs_Compress(b *testing.B) {
	for _, frame := range benchmarkFrames {
		data := depthPayload(frame.width, frame.height)
		for name, codec := range getAllCodecs() {
			b.Run(frame.name+"/"+name, func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(data)))
				for b.Loop() {
					if _, err := codec.Compress(data); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkAllCodecs_Decompress(b *testing.B) {
	for _, frame := range benchmarkFrames {
		data := depthPayload(frame.width, frame.height)
		for name, codec := range getAllCodecs() {
			compressed, err := codec.Compress(data)
			if err != nil {
				b.Fatal(err)
			}

			b.Run(frame.name+"/"+name, func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(data)))
				for b.Loop() {
					if _, err := codec.Decompress(compressed); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkAllCodecs_Parallel(b *testing.B) {
	data := depthPayload(640, 480)
	for name, codec := range getAllCodecs() {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					c, err := codec.Compress(data)
					if err != nil {
						b.Error(err)
						return
					}
					if _, err := codec.Decompress(c); err != nil {
						b.Error(err)
						return
					}
				}
			})
		})
	}
}
