package blob

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/arloliu/rvl/errs"
)

// FrameSet is an immutable collection of frames ordered by capture time.
//
// FrameSet is safe for concurrent reads. Frames sharing a capture time keep their
// input order.
type FrameSet struct {
	frames []Frame
}

// NewFrameSet creates a FrameSet from frames, sorted by capture time.
//
// The slice is copied; the pixel buffers are shared with the caller.
func NewFrameSet(frames []Frame) (FrameSet, error) {
	if len(frames) == 0 {
		return FrameSet{}, errs.ErrNoFrames
	}

	sorted := slices.Clone(frames)
	slices.SortStableFunc(sorted, func(a, b Frame) int {
		return a.CaptureTime.Compare(b.CaptureTime)
	})

	return FrameSet{frames: sorted}, nil
}

// DecodeFrameSet decodes every blob and returns them as a FrameSet.
//
// Example:
//
//	set, err := blob.DecodeFrameSet(blobs...)
//	if err != nil {
//		return err
//	}
//	for frame := range set.Between(start, end) {
//		process(frame)
//	}
func DecodeFrameSet(blobs ...[]byte) (FrameSet, error) {
	if len(blobs) == 0 {
		return FrameSet{}, errs.ErrNoFrames
	}

	frames := make([]Frame, 0, len(blobs))
	for i, data := range blobs {
		frame, err := DecodeFrame(data)
		if err != nil {
			return FrameSet{}, fmt.Errorf("failed to decode frame blob %d: %w", i, err)
		}
		frames = append(frames, frame)
	}

	return NewFrameSet(frames)
}

// Len returns the number of frames.
func (s FrameSet) Len() int {
	return len(s.frames)
}

// At returns the i-th frame in capture order.
func (s FrameSet) At(i int) (Frame, bool) {
	if i < 0 || i >= len(s.frames) {
		return Frame{}, false
	}

	return s.frames[i], true
}

// TimeRange returns the capture times of the first and last frame.
func (s FrameSet) TimeRange() (start, end time.Time) {
	if len(s.frames) == 0 {
		return time.Time{}, time.Time{}
	}

	return s.frames[0].CaptureTime, s.frames[len(s.frames)-1].CaptureTime
}

// All returns a sequence of (index, Frame) in capture order.
func (s FrameSet) All() iter.Seq2[int, Frame] {
	return func(yield func(int, Frame) bool) {
		for i, frame := range s.frames {
			if !yield(i, frame) {
				return
			}
		}
	}
}

// Between returns the frames captured in [start, end), in capture order.
func (s FrameSet) Between(start, end time.Time) iter.Seq[Frame] {
	return func(yield func(Frame) bool) {
		i, _ := slices.BinarySearchFunc(s.frames, start, func(f Frame, t time.Time) int {
			return f.CaptureTime.Compare(t)
		})

		for ; i < len(s.frames); i++ {
			if !s.frames[i].CaptureTime.Before(end) {
				return
			}
			if !yield(s.frames[i]) {
				return
			}
		}
	}
}
