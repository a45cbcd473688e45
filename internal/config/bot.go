package config

import "errors"

type Bot struct {
	Enabled        bool    `env:"BOT_ENABLED" envDefault:"false"`
	Token          string  `env:"BOT_TOKEN" json:"-"`
	AllowedChatIDs []int64 `env:"BOT_ALLOWED_CHAT_IDS" envSeparator:","`

	// AlertChatID получает алерты о редких номерах; 0 отключает алерты.
	AlertChatID int64 `env:"BOT_ALERT_CHAT_ID" envDefault:"0"`
}

func (b Bot) Validate() error {
	if (b.Enabled || b.AlertChatID != 0) && b.Token == "" {
		return errors.New("BOT_TOKEN is required when the bot or alerts are enabled")
	}
	return nil
}

func (b Bot) AlertsEnabled() bool {
	return b.AlertChatID != 0
}
