package static

import (
	"context"
	"strings"

	"github.com/kylycht/converter/model"
	"github.com/kylycht/converter/storage"
)

// Static serves widget definitions taken from configuration
type Static struct {
	specs []model.WidgetSpec
}

func New(specs []model.WidgetSpec) storage.Storage {
	return &Static{specs: specs}
}

// Load implements storage.Storage.
func (s *Static) Load(ctx context.Context) ([]model.WidgetSpec, error) {
	specs := make([]model.WidgetSpec, 0, len(s.specs))

	for _, spec := range s.specs {
		codes := make([]string, 0, len(spec.Currencies))
		for _, code := range spec.Currencies {
			codes = append(codes, strings.ToUpper(strings.TrimSpace(code)))
		}

		spec.Currencies = codes
		specs = append(specs, spec)
	}

	return specs, nil
}
