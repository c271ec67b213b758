package validate

import (
	"fmt"
	"strconv"

	"github.com/Nudelsuppe42/bte-games-extractor/model"
)

// Bounds checks the submitted coordinate text against the channel's
// rectangle. Evaluated once per message; every plot expanded from one
// message shares the same pair.
func Bounds(b model.Bounds, latText, lngText string) *model.ReportError {
	lat, err := strconv.ParseFloat(latText, 64)
	if err != nil {
		return boundsError(b, fmt.Sprintf("latitude %q is not a number", latText))
	}
	lng, err := strconv.ParseFloat(lngText, 64)
	if err != nil {
		return boundsError(b, fmt.Sprintf("longitude %q is not a number", lngText))
	}
	if !b.Contains(lat, lng) {
		return boundsError(b, fmt.Sprintf("coordinates %s, %s outside channel bounds", latText, lngText))
	}
	return nil
}

func boundsError(b model.Bounds, detail string) *model.ReportError {
	return &model.ReportError{
		Code:   model.ErrBounds,
		Detail: detail,
		Guidance: fmt.Sprintf(
			"The coordinates are outside this channel's build area (latitude %g to %g, longitude %g to %g). Double-check the plot location.",
			b.LatMin, b.LatMax, b.LngMin, b.LngMax),
	}
}
