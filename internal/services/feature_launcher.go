package services

import (
	"fmt"
	"slices"

	"logistik-dashboard/internal/domain"
)

// FeatureLauncher serves the static feature tiles of the landing page.
type FeatureLauncher struct {
	features []domain.Feature
}

func NewFeatureLauncher(features []domain.Feature) *FeatureLauncher {
	return &FeatureLauncher{features: slices.Clone(features)}
}

func (l *FeatureLauncher) Features() []domain.Feature {
	return slices.Clone(l.features)
}

// Activate announces that the feature is not available yet. It has no other effect.
func (l *FeatureLauncher) Activate(title string) Notice {
	for _, f := range l.features {
		if f.Title == title {
			return Notice{
				Kind:    NoticeInfo,
				Message: fmt.Sprintf("%s wird bald verfügbar sein.", f.Title),
			}
		}
	}

	return Notice{
		Kind:    NoticeError,
		Message: fmt.Sprintf("Unbekannter Bereich: %q", title),
	}
}
