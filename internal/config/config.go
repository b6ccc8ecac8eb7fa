package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	Definition
	Property
	Output
	PostgreSQL
	HTTP
}

type App struct {
	DefinitionFile string
	PropertyFile   string
	SaveFile       string
	Sink           string
	LogLevel       string
	LogDir         string
}

// Definition describes the assignment dataset.
type Definition struct {
	Sheet   string
	DataRow int
	Columns string
	Nothing string
}

// Property describes the device property dataset.
type Property struct {
	Sheet   string
	DataRow int
	Columns string
}

// Output describes the layout of the result table.
type Output struct {
	HeaderRow     int
	SwitchColumns string
	PortColumns   string
	Font          string
	TimeZone      string
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32
}

type HTTP struct {
	Host            string
	Port            string
	IdleTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Load reads every value the command knows about; flags the command does not
// define come back as zero values.
func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			DefinitionFile: cmd.String("definition"),
			PropertyFile:   cmd.String("property"),
			SaveFile:       cmd.String("save"),
			Sink:           cmd.String("sink"),
			LogLevel:       cmd.String("log-level"),
			LogDir:         cmd.String("log-dir"),
		},
		Definition: Definition{
			Sheet:   cmd.String("definition-sheet"),
			DataRow: int(cmd.Int("definition-data-row")),
			Columns: cmd.String("definition-columns"),
			Nothing: cmd.String("definition-nothing"),
		},
		Property: Property{
			Sheet:   cmd.String("property-sheet"),
			DataRow: int(cmd.Int("property-data-row")),
			Columns: cmd.String("property-columns"),
		},
		Output: Output{
			HeaderRow:     int(cmd.Int("output-header-row")),
			SwitchColumns: cmd.String("output-switch-columns"),
			PortColumns:   cmd.String("output-port-columns"),
			Font:          cmd.String("output-font"),
			TimeZone:      cmd.String("output-time-zone"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
			SSLMode:  cmd.String("pg-sslmode"),
			MaxConns: int32(cmd.Int("pg-max-conns")),
		},
		HTTP: HTTP{
			Host:            cmd.String("http-host"),
			Port:            cmd.String("http-port"),
			IdleTimeout:     cmd.Duration("http-idle-timeout"),
			ReadTimeout:     cmd.Duration("http-read-timeout"),
			WriteTimeout:    cmd.Duration("http-write-timeout"),
			ShutdownTimeout: cmd.Duration("http-shutdown-timeout"),
		},
	}
}
