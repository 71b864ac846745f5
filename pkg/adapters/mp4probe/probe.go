// Package mp4probe reads the video track description out of MP4 files.
package mp4probe

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Eyevinn/mp4ff/mp4"

	"github.com/user/bouncer/pkg/ports"
)

// ErrNoVideoTrack is returned when the container has no usable video track.
var ErrNoVideoTrack = errors.New("mp4probe: no video track found")

// Prober implements ports.VideoProber.
type Prober struct{}

// New creates a Prober.
func New() *Prober {
	return &Prober{}
}

// Probe opens path and describes its first video track.
func (p *Prober) Probe(path string) (ports.VideoInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return ports.VideoInfo{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return ProbeReader(f)
}

// ProbeReader describes the first video track of the MP4 read from r.
func ProbeReader(r io.ReadSeeker) (ports.VideoInfo, error) {
	mp4File, err := mp4.DecodeFile(r)
	if err != nil {
		return ports.VideoInfo{}, fmt.Errorf("decode mp4: %w", err)
	}

	if mp4File.IsFragmented() && mp4File.Init != nil && mp4File.Init.Moov != nil {
		if info, ok := describeMoov(mp4File.Init.Moov); ok {
			return info, nil
		}
	}
	if mp4File.Moov != nil {
		if info, ok := describeMoov(mp4File.Moov); ok {
			return info, nil
		}
	}
	return ports.VideoInfo{}, ErrNoVideoTrack
}

func describeMoov(moov *mp4.MoovBox) (ports.VideoInfo, bool) {
	for _, trak := range moov.Traks {
		if info, ok := describeTrack(trak); ok {
			return info, true
		}
	}
	return ports.VideoInfo{}, false
}

func describeTrack(trak *mp4.TrakBox) (ports.VideoInfo, bool) {
	if trak.Mdia == nil || trak.Mdia.Hdlr == nil || trak.Mdia.Hdlr.HandlerType != "vide" {
		return ports.VideoInfo{}, false
	}
	if trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil || trak.Mdia.Minf.Stbl.Stsd == nil {
		return ports.VideoInfo{}, false
	}

	stbl := trak.Mdia.Minf.Stbl
	var info ports.VideoInfo
	for _, child := range stbl.Stsd.Children {
		vse, ok := child.(*mp4.VisualSampleEntryBox)
		if !ok {
			continue
		}
		info.Codec = codecName(child.Type())
		info.Width = int(vse.Width)
		info.Height = int(vse.Height)
		break
	}
	if info.Codec == "" {
		return ports.VideoInfo{}, false
	}

	if stbl.Stsz != nil {
		info.SampleCount = int(stbl.Stsz.SampleNumber)
	}
	if mdhd := trak.Mdia.Mdhd; mdhd != nil && mdhd.Timescale > 0 {
		info.DurationMs = int(mdhd.Duration * 1000 / uint64(mdhd.Timescale))
	}
	return info, true
}

func codecName(boxType string) string {
	switch boxType {
	case "avc1", "avc3":
		return "h264"
	case "hvc1", "hev1":
		return "hevc"
	case "av01":
		return "av1"
	default:
		return boxType
	}
}

// Ensure Prober implements ports.VideoProber
var _ ports.VideoProber = (*Prober)(nil)
