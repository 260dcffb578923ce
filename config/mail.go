package config

import "os"

// MailConfig carries the SMTP settings for the contact form. Username
// doubles as the inbox the contact messages are delivered to.
type MailConfig struct {
	Server   string
	Port     string
	Username string
	Password string
	Sender   string
}

func LoadMailConfig() MailConfig {
	cfg := MailConfig{
		Server:   getEnv("MAIL_SERVER", "smtp.mail.ru"),
		Port:     getEnv("MAIL_PORT", "587"),
		Username: os.Getenv("MAIL_USERNAME"),
		Password: os.Getenv("MAIL_PASSWORD"),
		Sender:   os.Getenv("MAIL_DEFAULT_SENDER"),
	}
	if cfg.Sender == "" {
		cfg.Sender = cfg.Username
	}
	return cfg
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
