package config

import (
	"encoding/json"

	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Database *dbConfig
	Service  *svcConfig
}

type dbConfig struct {
	Type     string `envconfig:"DB_TYPE" default:"pgsql"`
	Hostname string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"calculations"`
	User     string `envconfig:"DB_USER" default:"admin"`
	Password string `envconfig:"DB_PASS" default:"adminpass"`
}

type svcConfig struct {
	Address         string   `envconfig:"CALCULATION_API_ADDRESS" default:":8080"`
	MetricsAddress  string   `envconfig:"CALCULATION_API_METRICS_ADDRESS" default:":8081"`
	BaseUrl         string   `envconfig:"CALCULATION_API_BASE_URL" default:"http://localhost:8080"`
	LogLevel        string   `envconfig:"CALCULATION_API_LOG_LEVEL" default:"info"`
	CorsOrigins     []string `envconfig:"CALCULATION_API_CORS_ORIGINS" default:"*"`
	MigrationFolder string   `envconfig:"CALCULATION_API_MIGRATIONS_FOLDER" default:""`
}

func New() (*Config, error) {
	if singleConfig == nil {
		singleConfig = new(Config)
		if err := envconfig.Process("", singleConfig); err != nil {
			return nil, err
		}
	}
	return singleConfig, nil
}

func (c *Config) String() string {
	redacted := *c.Database
	redacted.Password = "******"
	val, _ := json.Marshal(struct {
		Database dbConfig
		Service  svcConfig
	}{Database: redacted, Service: *c.Service})
	return string(val)
}
