package bouncer

import (
	"fmt"

	"github.com/user/bouncer/pkg/config"
	"github.com/user/bouncer/pkg/ports"
)

// QualityPreset represents an output quality preset name.
type QualityPreset string

const (
	QualityLow    QualityPreset = "low"
	QualityMedium QualityPreset = "medium"
	QualityHigh   QualityPreset = "high"
)

// QualitySettings contains quality parameters for frame and video encoding.
type QualitySettings struct {
	JPEGQuality int // JPEG frame quality (1-100)
	VideoCRF    int // preview video CRF (0-51, lower is better)
}

// GetQualitySettings returns quality settings for the given preset.
func GetQualitySettings(preset QualityPreset) QualitySettings {
	switch preset {
	case QualityLow:
		return QualitySettings{
			JPEGQuality: 70,
			VideoCRF:    32,
		}
	case QualityHigh:
		return QualitySettings{
			JPEGQuality: 98,
			VideoCRF:    16,
		}
	default: // medium
		return QualitySettings{
			JPEGQuality: 90,
			VideoCRF:    23,
		}
	}
}

// ApplyQuality overwrites the JPEG quality and CRF of cfg with the preset values.
func ApplyQuality(cfg *config.Config, preset string) error {
	switch QualityPreset(preset) {
	case QualityLow, QualityMedium, QualityHigh:
	default:
		return fmt.Errorf("%w: unknown quality preset %q", ports.ErrArgument, preset)
	}
	q := GetQualitySettings(QualityPreset(preset))
	cfg.JPEGQuality = q.JPEGQuality
	cfg.CRF = q.VideoCRF
	return nil
}
