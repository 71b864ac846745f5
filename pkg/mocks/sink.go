package mocks

import (
	"image"
	"sync"

	"github.com/user/bouncer/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	Background      image.Image
	MotionJSON      []byte
	AnnotatedFrames map[int]ports.Annotation
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled:         enabled,
		AnnotatedFrames: make(map[int]ports.Annotation),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveBackground(img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Background = img
	return nil
}

func (m *DebugSink) SaveMotionJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MotionJSON = data
	return nil
}

func (m *DebugSink) SaveAnnotatedFrame(index int, img image.Image, a ports.Annotation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AnnotatedFrames[index] = a
	return nil
}

// AnnotatedCount returns the number of annotated frames saved.
func (m *DebugSink) AnnotatedCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.AnnotatedFrames)
}

var _ ports.DebugSink = (*DebugSink)(nil)
