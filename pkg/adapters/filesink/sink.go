// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/bouncer/pkg/ports"
)

// Sink saves debug output under baseDir:
//
//	background.png
//	motion.json
//	frames/annotated/frame-0000.png ...
type Sink struct {
	baseDir   string
	fs        ports.FileSystem
	annotator ports.Annotator
}

// New creates a new file sink.
func New(baseDir string, fs ports.FileSystem, annotator ports.Annotator) *Sink {
	return &Sink{
		baseDir:   baseDir,
		fs:        fs,
		annotator: annotator,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveBackground saves the decoded background as PNG.
func (s *Sink) SaveBackground(img image.Image) error {
	data, err := s.annotator.EncodePNG(img)
	if err != nil {
		return fmt.Errorf("encode background: %w", err)
	}
	return s.fs.WriteFile(filepath.Join(s.baseDir, "background.png"), data)
}

// SaveMotionJSON saves the motion table and per-frame centers.
func (s *Sink) SaveMotionJSON(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "motion.json"), data)
}

// SaveAnnotatedFrame draws the overlay on a copy of img and saves it as PNG.
func (s *Sink) SaveAnnotatedFrame(index int, img image.Image, a ports.Annotation) error {
	dir := filepath.Join(s.baseDir, "frames", "annotated")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	data, err := s.annotator.EncodePNG(s.annotator.Annotate(img, a))
	if err != nil {
		return fmt.Errorf("encode annotated frame: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("frame-%04d.png", index))
	return s.fs.WriteFile(path, data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
