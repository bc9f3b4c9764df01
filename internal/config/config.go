package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Addr        string `mapstructure:"addr"`
	Mode        string `mapstructure:"mode"` // gin mode: debug, release, test
	LogLevel    string `mapstructure:"log_level"`
	ContentFile string `mapstructure:"content_file"`
	Watch       bool   `mapstructure:"watch"`
	StaticDir   string `mapstructure:"static_dir"`
	ImagesDir   string `mapstructure:"images_dir"`
	ResumeFile  string `mapstructure:"resume_file"`
	Background  bool   `mapstructure:"background"`

	Analytics AnalyticsConfig `mapstructure:"analytics"`
	Admin     AdminConfig     `mapstructure:"admin"`
	SMTP      SMTPConfig      `mapstructure:"smtp"`
}

type AnalyticsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	DSN     string `mapstructure:"dsn"`
	// RetentionDays bounds how long visits are kept; 0 keeps everything.
	RetentionDays int `mapstructure:"retention_days"`
}

type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	User string `mapstructure:"user"`
	Pass string `mapstructure:"pass"`
	To   string `mapstructure:"to"`
}

// Configured reports whether credentials for a relay are present.
func (c SMTPConfig) Configured() bool {
	return c.User != "" && c.Pass != "" && c.To != ""
}

const envPrefix = "PORTFOLIO"

// legacyEnv maps config keys to the plain environment names the site has
// always honoured.
var legacyEnv = map[string]string{
	"smtp.host":      "SMTP_HOST",
	"smtp.port":      "SMTP_PORT",
	"smtp.user":      "SMTP_USER",
	"smtp.pass":      "SMTP_PASS",
	"smtp.to":        "TO_EMAIL",
	"admin.username": "ADMIN_USERNAME",
	"admin.password": "ADMIN_PASSWORD",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("addr", "")
	v.SetDefault("mode", "release")
	v.SetDefault("log_level", "info")
	v.SetDefault("content_file", "")
	v.SetDefault("watch", false)
	v.SetDefault("static_dir", "./static")
	v.SetDefault("images_dir", "./images")
	v.SetDefault("resume_file", "./static/resume.pdf")
	v.SetDefault("background", true)
	v.SetDefault("analytics.enabled", true)
	v.SetDefault("analytics.dsn", "file:portfolio?mode=memory&cache=shared")
	v.SetDefault("analytics.retention_days", 365)
	v.SetDefault("admin.username", "")
	v.SetDefault("admin.password", "")
	v.SetDefault("smtp.host", "smtp.gmail.com")
	v.SetDefault("smtp.port", "587")
	v.SetDefault("smtp.user", "")
	v.SetDefault("smtp.pass", "")
	v.SetDefault("smtp.to", "")
}

// New returns a viper instance with defaults and environment bindings.
// Flags may be bound onto it before Load.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("port", "PORT")
	for key, env := range legacyEnv {
		_ = v.BindEnv(key, envPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env)
	}
	return v
}

// Load reads the optional config file and decodes everything into Config.
// With an empty file name ./config.yaml is used if present.
func Load(v *viper.Viper, file string) (Config, bool, error) {
	var cfg Config

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	found := true
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, false, fmt.Errorf("failed to read config file: %w", err)
		}
		found = false
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, found, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	switch cfg.Mode {
	case "debug", "release", "test":
	default:
		return cfg, found, fmt.Errorf("invalid mode %q: want debug, release or test", cfg.Mode)
	}

	// PORT is what hosting platforms set; an explicit addr wins.
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
		if port := v.GetString("port"); port != "" {
			cfg.Addr = ":" + port
		}
	}
	return cfg, found, nil
}
