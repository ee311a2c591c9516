package flags

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Config holds all command-line configuration
type Config struct {
	Port    string
	Migrate bool
	Help    bool
}

// DefaultConfig returns default configuration values. An empty Port means
// the PORT environment variable decides.
func DefaultConfig() Config {
	return Config{}
}

// Parse parses os.Args, printing usage and exiting on --help or bad input.
func Parse() Config {
	config, err := ParseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return config
}

// ParseArgs parses args without touching the global flag set.
func ParseArgs(args []string, output io.Writer) (Config, error) {
	config := DefaultConfig()

	fs := flag.NewFlagSet("mesa-pos", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&config.Port, "port", config.Port, "Port number")
	fs.BoolVar(&config.Migrate, "migrate", config.Migrate, "Apply the database schema before serving")
	fs.BoolVar(&config.Help, "help", false, "Show this screen")

	fs.Usage = func() {
		fmt.Fprintf(output, "Mesa POS order service\n\n")
		fmt.Fprintf(output, "Usage:\n")
		fmt.Fprintf(output, "  mesa-pos [--port <N>] [--migrate]\n")
		fmt.Fprintf(output, "  mesa-pos --help\n\n")
		fmt.Fprintf(output, "Options:\n")
		fmt.Fprintf(output, "  --help       Show this screen.\n")
		fmt.Fprintf(output, "  --port N     Port number (1-65535). Defaults to $PORT, then 8080.\n")
		fmt.Fprintf(output, "  --migrate    Create missing tables and seed feature flags.\n")
	}

	if err := fs.Parse(args); err != nil {
		return config, err
	}

	if config.Help {
		fs.Usage()
		return config, flag.ErrHelp
	}

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// ValidatePort validates the port number
func ValidatePort(port string) error {
	if port == "" {
		return fmt.Errorf("port cannot be empty")
	}

	portNum, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("invalid port number '%s': must be a number", port)
	}

	if portNum < 1 || portNum > 65535 {
		return fmt.Errorf("port number %d is out of range: must be between 1 and 65535", portNum)
	}

	return nil
}

// Validate validates the parsed configuration
func (c Config) Validate() error {
	if c.Port == "" {
		return nil
	}
	return ValidatePort(c.Port)
}
