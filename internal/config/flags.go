package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-host server bind host
//	-p server port
//	-secret-token shared secret for the Authorization header
//	-f temp directory for filtered images
//	-request-timeout image acquisition timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var host string
	var port int
	var secretToken string
	var tempDir string
	var requestTimeout time.Duration
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&host, "host", "", "Server bind host")
	fs.IntVar(&port, "p", 0, "Server port")
	fs.StringVar(&secretToken, "secret-token", "", "Shared secret token")
	fs.StringVar(&tempDir, "f", "", "Temp directory for filtered images")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Image acquisition timeout (e.g., 30s, 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// explicit -host / -p win over the combined -a value
	if host == "" {
		host = serverAddress.Host
	}
	if port == 0 {
		port = serverAddress.Port
	}

	return &StructuredConfig{
		App: App{
			SecretToken: secretToken,
		},
		Storage: Storage{
			Files: Files{
				TempDir: tempDir,
			},
		},
		Server: Server{
			Host: host,
			Port: port,
		},
		Adapter: Adapter{
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
