package database

import (
	"fmt"
	"net/url"
)

type PostgresSettings struct {
	User       string `yaml:"user"`
	Password   string `yaml:"password"`
	Host       string `yaml:"host"`
	Port       string `yaml:"port"`
	DBName     string `yaml:"name"`
	SSlEnabled bool   `yaml:"ssl_enabled"`
}

func (s PostgresSettings) GetUrl() string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.User(s.User),
		Host:   fmt.Sprintf("%s:%s", s.Host, s.Port),
		Path:   s.DBName,
	}

	// an empty password is left to the server's auth method (trust, peer) or PGPASSFILE
	if s.Password != "" {
		dsn.User = url.UserPassword(s.User, s.Password)
	}

	if !s.SSlEnabled {
		dsn.RawQuery = "sslmode=disable"
	}

	return dsn.String()
}
