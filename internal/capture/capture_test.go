package capture

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"testing"
	"time"
)

type fakeCamera struct {
	frames int
	err    error
}

func (f *fakeCamera) ReadFrame(ctx context.Context) (image.Image, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.frames++
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.SetGray(0, 0, color.Gray{Y: uint8(f.frames)})
	return img, nil
}

func (f *fakeCamera) Close() error { return nil }

func TestCountdown(t *testing.T) {
	cam := &fakeCamera{}
	var ticks []int

	frame, err := Countdown(context.Background(), cam, 2*time.Second, func(remaining int, _ image.Image) {
		ticks = append(ticks, remaining)
	})
	if err != nil {
		t.Fatalf("Countdown failed: %v", err)
	}
	if len(ticks) != 2 || ticks[0] != 2 || ticks[1] != 1 {
		t.Errorf("ticks = %v, want [2 1]", ticks)
	}
	if cam.frames != 3 {
		t.Errorf("frames read = %d, want 3", cam.frames)
	}
	if got := frame.(*image.Gray).GrayAt(0, 0).Y; got != 3 {
		t.Errorf("returned frame %d, want the final one (3)", got)
	}
}

func TestCountdown_Zero(t *testing.T) {
	cam := &fakeCamera{}
	if _, err := Countdown(context.Background(), cam, 0, nil); err != nil {
		t.Fatalf("Countdown failed: %v", err)
	}
	if cam.frames != 1 {
		t.Errorf("frames read = %d, want 1", cam.frames)
	}
}

func TestCountdown_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Countdown(ctx, &fakeCamera{}, 5*time.Second, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestCountdown_ReadError(t *testing.T) {
	boom := errors.New("device gone")
	_, err := Countdown(context.Background(), &fakeCamera{err: boom}, time.Second, nil)
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped %v", err, boom)
	}
}

func TestDecodeFrame_YUYV(t *testing.T) {
	// 2x1 frame: Y0=0 U=128 Y1=255 V=128
	img, err := DecodeFrame(FormatYUYV, []byte{0, 128, 255, 128}, 2, 1)
	if err != nil {
		t.Fatalf("DecodeFrame failed: %v", err)
	}
	r0, _, _, _ := img.At(0, 0).RGBA()
	r1, _, _, _ := img.At(1, 0).RGBA()
	if r0>>8 != 0 {
		t.Errorf("left pixel red = %d, want 0", r0>>8)
	}
	if r1>>8 != 255 {
		t.Errorf("right pixel red = %d, want 255", r1>>8)
	}
}

func TestDecodeFrame_Errors(t *testing.T) {
	tests := []struct {
		name   string
		format uint32
		data   []byte
		w, h   int
	}{
		{"short yuyv", FormatYUYV, []byte{1, 2}, 2, 1},
		{"odd width", FormatYUYV, make([]byte, 6), 3, 1},
		{"bad jpeg", FormatMJPEG, []byte("nope"), 2, 1},
		{"unknown format", 0x12345678, nil, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeFrame(tt.format, tt.data, tt.w, tt.h); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDecodeFrame_MJPEG(t *testing.T) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 6)), nil); err != nil {
		t.Fatalf("encoding jpeg: %v", err)
	}
	img, err := DecodeFrame(FormatMJPEG, buf.Bytes(), 8, 6)
	if err != nil {
		t.Fatalf("DecodeFrame failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("bounds = %v, want 8x6", b)
	}
}
