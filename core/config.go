package core

import (
	"net/mail"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Database engines
const (
	EngineSQLite   = "sqlite"
	EnginePostgres = "postgres"
)

type Config struct {
	Env              string
	Debug            bool
	AppName          string
	Build            string
	RollbarToken     string
	SendgridAPIKey   string
	DefaultFromEmail mail.Address

	Database struct {
		Engine string
		Path   string // sqlite file
		URL    string // postgres DSN
	}

	Window struct {
		Width  float32
		Height float32
	}
}

// NewConfig reads the configuration from the environment, optionally seeded by `config/.env.<env>` found under dir.
func NewConfig(dir string) (*Config, error) {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Student Management System")
	v.SetDefault("build", "dev")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("sendgridApiKey", "")
	v.SetDefault("defaultFromEmail", "noreply@localhost")
	v.SetDefault("database.engine", EngineSQLite)
	v.SetDefault("database.path", "student_management.db")
	v.SetDefault("database.url", "")
	v.SetDefault("window.width", 1200)
	v.SetDefault("window.height", 800)

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	if env == "" {
		env = "DEV"
	}
	if env == "TEST" {
		v.SetDefault("database.path", filepath.Join(os.TempDir(), "student_management_test.db"))
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(dir, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "stat %s", dotEnvPath)
	}
	v.AutomaticEnv()

	from, err := mail.ParseAddress(v.GetString("defaultFromEmail"))
	if err != nil {
		return nil, errors.Wrap(err, "parsing defaultFromEmail")
	}

	conf := &Config{
		Env:              env,
		Debug:            v.GetBool("debug"),
		AppName:          v.GetString("appName"),
		Build:            v.GetString("build"),
		RollbarToken:     v.GetString("rollbarToken"),
		SendgridAPIKey:   v.GetString("sendgridApiKey"),
		DefaultFromEmail: *from,
	}
	conf.Database.Engine = strings.ToLower(v.GetString("database.engine"))
	conf.Database.Path = v.GetString("database.path")
	conf.Database.URL = v.GetString("database.url")
	conf.Window.Width = float32(v.GetFloat64("window.width"))
	conf.Window.Height = float32(v.GetFloat64("window.height"))

	switch conf.Database.Engine {
	case EngineSQLite, EnginePostgres:
	default:
		return nil, errors.Errorf("unsupported database engine %q", conf.Database.Engine)
	}
	return conf, nil
}
