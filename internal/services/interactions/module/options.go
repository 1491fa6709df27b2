package module

import (
	"time"

	"chrozone/internal/platform/config"
	"chrozone/internal/platform/net/http/bind"
	"chrozone/internal/services/interactions/service"
)

// Settings control the webhook; read from CHROZONE_* values
type Settings struct {
	PubKey            string        `json:"pub_key" validate:"required,len=64,hexadecimal"`
	WebhookPath       string        `json:"webhook_path" validate:"required,startswith=/,endsnotwith=/"`
	Timeout           time.Duration `json:"timeout" validate:"gte=0"`
	AutocompleteLimit int           `json:"autocomplete_limit" validate:"min=1,max=25"`
}

// FromConfig reads CHROZONE_* values from process config/env
// AUTOCOMPLETE_LIMIT above the platform cap is lowered to it
func FromConfig(cfg config.Conf) Settings {
	cc := cfg.Prefix("CHROZONE_")
	return Settings{
		PubKey:            cc.MayString("PUB_KEY", ""),
		WebhookPath:       cc.MayString("WEBHOOK_PATH", "/discord"),
		Timeout:           cc.MayDuration("TIMEOUT", 3*time.Second),
		AutocompleteLimit: min(cc.MayInt("AUTOCOMPLETE_LIMIT", service.MaxChoices), service.MaxChoices),
	}
}

// Load reads and validates Settings
func Load(cfg config.Conf) (Settings, error) {
	s := FromConfig(cfg)
	if err := bind.Validate(s); err != nil {
		return Settings{}, err
	}
	return s, nil
}
