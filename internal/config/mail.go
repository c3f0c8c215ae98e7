package config

import (
	"os"
	"sync"
)

type MailConfig struct {
	APIKey      string
	FromAddress string
	OperatorTo  string
}

var (
	mailConfig *MailConfig
	mailOnce   sync.Once
)

func LoadMailConfig() *MailConfig {
	mailOnce.Do(func() {
		mailConfig = &MailConfig{
			APIKey:      os.Getenv("MAIL_API_KEY"),
			FromAddress: os.Getenv("MAIL_FROM"),
			OperatorTo:  os.Getenv("MAIL_OPERATOR_TO"),
		}
	})
	return mailConfig
}
