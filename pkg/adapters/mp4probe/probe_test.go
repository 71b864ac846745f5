package mp4probe

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Eyevinn/mp4ff/mp4"
)

func videoInit(t *testing.T, sampleType string, width, height uint16) *mp4.InitSegment {
	t.Helper()
	seg := mp4.CreateEmptyInit()
	seg.AddEmptyTrack(30000, "video", "und")
	trak := seg.Moov.Trak
	trak.Mdia.Minf.Stbl.Stsd.AddChild(mp4.CreateVisualSampleEntryBox(sampleType, width, height, nil))
	return seg
}

func TestDescribeMoov(t *testing.T) {
	tests := []struct {
		sampleType string
		wantCodec  string
	}{
		{"avc1", "h264"},
		{"avc3", "h264"},
		{"hvc1", "hevc"},
		{"av01", "av1"},
	}

	for _, tt := range tests {
		t.Run(tt.sampleType, func(t *testing.T) {
			seg := videoInit(t, tt.sampleType, 640, 360)
			info, ok := describeMoov(seg.Moov)
			if !ok {
				t.Fatal("expected a video track")
			}
			if info.Codec != tt.wantCodec {
				t.Errorf("expected codec %s, got %s", tt.wantCodec, info.Codec)
			}
			if info.Width != 640 || info.Height != 360 {
				t.Errorf("expected 640x360, got %dx%d", info.Width, info.Height)
			}
		})
	}
}

func TestDescribeMoov_AudioOnly(t *testing.T) {
	seg := mp4.CreateEmptyInit()
	seg.AddEmptyTrack(48000, "audio", "und")

	if _, ok := describeMoov(seg.Moov); ok {
		t.Error("expected no video track in an audio-only movie")
	}
}

func TestProbe_EncodedInit(t *testing.T) {
	seg := videoInit(t, "avc1", 100, 100)
	var buf bytes.Buffer
	if err := seg.Encode(&buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "seg.mp4")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	info, err := New().Probe(path)
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if info.Codec != "h264" || info.Width != 100 || info.Height != 100 {
		t.Errorf("unexpected info %+v", info)
	}
}

func TestProbe_Errors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.mp4")
	os.WriteFile(garbage, []byte("this is not an mp4 container"), 0644)

	if _, err := New().Probe(filepath.Join(dir, "missing.mp4")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := New().Probe(garbage); err == nil {
		t.Error("expected error for invalid data")
	}
}
