package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	PostgresAddress  string `yaml:"postgres_address"`
	PostgresPort     string `yaml:"postgres_port"`
	PostgresDB       string `yaml:"postgres_db"`
	PostgresUsername string `yaml:"postgres_username"`
	PostgresPassword string `yaml:"postgres_password"`

	Port        string   `yaml:"port"`
	NumWorkers  int      `yaml:"num_workers"`
	LogLevel    string   `yaml:"log_level"`
	CORSOrigins []string `yaml:"cors_origins"`
	AutoMigrate bool     `yaml:"auto_migrate"`

	CurrencySymbol string `yaml:"currency_symbol"`

	AMQPURL        string `yaml:"amqp_url"`
	AMQPExchange   string `yaml:"amqp_exchange"`
	AMQPRoutingKey string `yaml:"amqp_routing_key"`

	// envProblems holds environment values that could not be parsed.
	envProblems []string
}

// PostgresURL builds the lib/pq connection string.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}

func defaultConfig() Config {
	// In all cases the default behavior should be for the docker compose setup
	return Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",

		Port:        "9446",
		NumWorkers:  1,
		LogLevel:    "info",
		CORSOrigins: []string{"*"},

		CurrencySymbol: "R$",

		AMQPExchange:   "finance",
		AMQPRoutingKey: "alerts",
	}
}

// ProcessEnvironmentVariables builds the configuration from defaults, an
// optional .env file, an optional YAML file named by CONFIG_FILE and finally
// the process environment, each layer overriding the previous one.
func ProcessEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	env := defaultConfig()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, &env); err != nil {
			return nil, err
		}
	}

	applyEnvironment(&env)

	if err := env.Validate(); err != nil {
		return nil, err
	}
	return &env, nil
}

func loadFile(path string, env *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, env); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvironment(env *Config) {
	setString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	setString(&env.PostgresPort, "POSTGRES_PORT")
	setString(&env.PostgresDB, "POSTGRES_DB")
	setString(&env.PostgresUsername, "POSTGRES_USERNAME")
	setString(&env.PostgresPassword, "POSTGRES_PASSWORD")

	setString(&env.Port, "PORT")
	setString(&env.LogLevel, "LOG_LEVEL")
	setString(&env.CurrencySymbol, "CURRENCY_SYMBOL")
	setString(&env.AMQPURL, "AMQP_URL")
	setString(&env.AMQPExchange, "AMQP_EXCHANGE")
	setString(&env.AMQPRoutingKey, "AMQP_ROUTING_KEY")

	if v := os.Getenv("NUM_WORKERS"); len(v) != 0 {
		if n, err := strconv.Atoi(v); err == nil {
			env.NumWorkers = n
		} else {
			env.envProblems = append(env.envProblems, fmt.Sprintf("invalid NUM_WORKERS '%s': must be a number", v))
		}
	}

	if v := os.Getenv("AUTO_MIGRATE"); len(v) != 0 {
		if b, err := strconv.ParseBool(v); err == nil {
			env.AutoMigrate = b
		} else {
			env.envProblems = append(env.envProblems, fmt.Sprintf("invalid AUTO_MIGRATE '%s': must be a boolean", v))
		}
	}

	if v := os.Getenv("CORS_ORIGINS"); len(v) != 0 {
		var origins []string
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
		env.CORSOrigins = origins
	}
}

func setString(field *string, key string) {
	if v := os.Getenv(key); len(v) != 0 {
		*field = v
	}
}

// Validate returns every problem found in the configuration at once.
func (c *Config) Validate() error {
	problems := append([]string(nil), c.envProblems...)

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.NumWorkers < 1 {
		problems = append(problems, fmt.Sprintf("invalid worker count %d: must be at least 1", c.NumWorkers))
	}

	if len(c.CORSOrigins) == 0 {
		problems = append(problems, "at least one CORS origin is required")
	}

	if c.AMQPURL != "" {
		if !strings.HasPrefix(c.AMQPURL, "amqp://") && !strings.HasPrefix(c.AMQPURL, "amqps://") {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL '%s': scheme must be amqp or amqps", c.AMQPURL))
		}
		if c.AMQPExchange == "" {
			problems = append(problems, "AMQP exchange cannot be empty when AMQP URL is provided")
		}
		if c.AMQPRoutingKey == "" {
			problems = append(problems, "AMQP routing key cannot be empty when AMQP URL is provided")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}
