package model

// Bounds is the geographic rectangle a channel accepts submissions from.
// Intervals are closed on both ends.
type Bounds struct {
	LatMin float64 `mapstructure:"lat_min"`
	LatMax float64 `mapstructure:"lat_max"`
	LngMin float64 `mapstructure:"lng_min"`
	LngMax float64 `mapstructure:"lng_max"`
}

// Contains reports whether the point lies inside the rectangle.
func (b Bounds) Contains(lat, lng float64) bool {
	return lat >= b.LatMin && lat <= b.LatMax && lng >= b.LngMin && lng <= b.LngMax
}

// ChannelConfig describes one team submission channel. Loaded once at
// startup; only BaseID is ever rewritten (by the exporter, through
// config.Save).
type ChannelConfig struct {
	ChannelID string `mapstructure:"channel_id"`
	Team      string `mapstructure:"team"`
	Sheet     string `mapstructure:"sheet"`
	BaseID    int64  `mapstructure:"base_id"`
	Bounds    Bounds `mapstructure:"bounds"`
}
