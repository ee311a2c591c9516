package envconfig

import (
	"strconv"
	"time"

	"mesa-pos/pkg/database"
)

// LoadDatabaseConfig loads database configuration from environment variables
func LoadDatabaseConfig() (database.Config, error) {
	config := database.DefaultConfig()

	driver, err := database.ParseDialect(GetEnv("DB_DRIVER", "mysql"))
	if err != nil {
		return config, err
	}
	config.Driver = driver

	if driver == database.Postgres {
		config.Port = 5432
		config.User = "postgres"
	}

	config.Host = GetEnv("DB_HOST", config.Host)

	if portStr := GetEnv("DB_PORT", ""); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			config.Port = port
		}
	}

	config.User = GetEnv("DB_USER", config.User)
	config.Password = GetEnv("DB_PASSWORD", config.Password)
	config.DBName = GetEnv("DB_NAME", config.DBName)
	config.SSLMode = GetEnv("DB_SSL_MODE", config.SSLMode)

	// Connection pool settings
	if maxOpenConnsStr := GetEnv("DB_MAX_OPEN_CONNS", ""); maxOpenConnsStr != "" {
		if maxOpenConns, err := strconv.Atoi(maxOpenConnsStr); err == nil && maxOpenConns > 0 {
			config.MaxOpenConns = maxOpenConns
		}
	}

	if maxIdleConnsStr := GetEnv("DB_MAX_IDLE_CONNS", ""); maxIdleConnsStr != "" {
		if maxIdleConns, err := strconv.Atoi(maxIdleConnsStr); err == nil && maxIdleConns > 0 {
			config.MaxIdleConns = maxIdleConns
		}
	}

	if connMaxLifetimeStr := GetEnv("DB_CONN_MAX_LIFETIME", ""); connMaxLifetimeStr != "" {
		if connMaxLifetime, err := time.ParseDuration(connMaxLifetimeStr); err == nil {
			config.ConnMaxLifetime = connMaxLifetime
		}
	}

	if connMaxIdleTimeStr := GetEnv("DB_CONN_MAX_IDLE_TIME", ""); connMaxIdleTimeStr != "" {
		if connMaxIdleTime, err := time.ParseDuration(connMaxIdleTimeStr); err == nil {
			config.ConnMaxIdleTime = connMaxIdleTime
		}
	}

	return config, nil
}
