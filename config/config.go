package config

import (
	"github.com/spf13/viper"

	"github.com/Nudelsuppe42/bte-games-extractor/model"
)

// Config mirrors config.yaml.
type Config struct {
	Token             string                `mapstructure:"TOKEN"`
	Round             int                   `mapstructure:"round"`
	ResubmitChannelID string                `mapstructure:"resubmit_channel_id"`
	LogChannelID      string                `mapstructure:"log_channel_id"`
	Export            Export                `mapstructure:"export"`
	Sheets            Sheets                `mapstructure:"sheets"`
	Channels          []model.ChannelConfig `mapstructure:"channels"`
}

// Export configures the flush schedule and snapshot location.
type Export struct {
	Cron string `mapstructure:"cron"`
	Dir  string `mapstructure:"dir"`
}

// Sheets configures the review spreadsheet sink.
type Sheets struct {
	SpreadsheetID   string `mapstructure:"spreadsheet_id"`
	CredentialsFile string `mapstructure:"credentials_file"`
}

var Cfg Config

func LoadConfig() (err error) {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	viper.SetDefault("export.cron", "0 * * * *")
	viper.SetDefault("export.dir", "./exports")

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&Cfg)
	return
}

// Save rewrites the whole config file. Called by the exporter after a flush
// so the new per-channel baselines survive a restart. Channels are written
// back as plain maps because viper serializes structs by field name, not by
// mapstructure tag.
func Save() error {
	channels := make([]map[string]interface{}, 0, len(Cfg.Channels))
	for _, ch := range Cfg.Channels {
		channels = append(channels, map[string]interface{}{
			"channel_id": ch.ChannelID,
			"team":       ch.Team,
			"sheet":      ch.Sheet,
			"base_id":    ch.BaseID,
			"bounds": map[string]interface{}{
				"lat_min": ch.Bounds.LatMin,
				"lat_max": ch.Bounds.LatMax,
				"lng_min": ch.Bounds.LngMin,
				"lng_max": ch.Bounds.LngMax,
			},
		})
	}
	viper.Set("channels", channels)
	return viper.WriteConfig()
}
