package filterx

import (
	"github.com/mitchellh/mapstructure"
)

// Decode copies the current filters into out, a pointer to a struct whose
// fields carry `filter:"name"` tags. Values are converted weakly, so a
// query-parsed "7" fills an int field.
func (s *Service) Decode(out any) error {
	filters := s.Filters()

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "filter",
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeHookFunc("2006-01-02"),
		Result:           out,
	})
	if err != nil {
		return ErrRegistry.NewWithCause(CodeInvalidTarget, err)
	}
	if err := dec.Decode(map[string]any(filters)); err != nil {
		return ErrRegistry.NewWithCause(CodeInvalidTarget, err)
	}
	return nil
}
