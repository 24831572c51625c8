package store

import (
	"github.com/borgmon/focus-wave/pkg/gradient"
)

// GradientStore holds the gradient currently shown by the UI
type GradientStore struct {
	*Value[gradient.Colors]
}

// NewGradientStore creates a GradientStore seeded with the default gradient
func NewGradientStore() *GradientStore {
	return &GradientStore{Value: NewValue(gradient.DefaultColors())}
}
