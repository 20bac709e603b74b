// Package sysloghandler ties target resolution and message encoding into one
// handler: configure it once, then feed it log records for delivery.
package sysloghandler

import (
	"os"
	"path/filepath"

	"github.com/c2h5oh/datasize"
	"github.com/relex/syslog-client/base"
	"github.com/relex/syslog-client/defs"
	"github.com/relex/syslog-client/syslogprotocol"
	"golang.org/x/exp/slices"
)

// Config defines where and how log records are delivered
type Config struct {
	Address        string            `yaml:"address"`        // "local", a unix socket path, or host:port
	Network        string            `yaml:"network"`        // pin the transport: unixgram, unix, udp or tcp; empty selects automatically
	Format         string            `yaml:"format"`         // rfc3164, rfc5424, pri or user; empty picks the target's default
	Facility       string            `yaml:"facility"`       // default facility for records that carry none
	Hostname       string            `yaml:"hostname"`       // hostname field in encoded messages; empty uses the OS hostname
	Program        string            `yaml:"program"`        // program or tag field; empty uses the executable name
	AppendNul      *bool             `yaml:"appendNul"`      // terminate each frame with a NUL byte (default true)
	MaxMessageSize datasize.ByteSize `yaml:"maxMessageSize"` // cap on the message text before encoding
}

var validFormats = []string{"", "rfc3164", "rfc5424", "pri", "user"}

// NewConfig returns a Config with defaults matching plain local logging
func NewConfig() Config {
	return Config{
		Address:        "local",
		Facility:       "user",
		MaxMessageSize: datasize.ByteSize(defs.DefaultMaxMessageBytes),
	}
}

// VerifyConfig checks configuration before any socket is opened
func (cfg *Config) VerifyConfig() error {
	if len(cfg.Address) == 0 {
		return base.NewInvalidConfigurationError(".address is unspecified")
	}
	if _, err := base.ParseAddressSpec(cfg.Address, cfg.Network); err != nil {
		return err
	}
	if !slices.Contains(validFormats, cfg.Format) {
		return base.NewInvalidConfigurationError(".format must be one of rfc3164, rfc5424, pri or user, not '%s'", cfg.Format)
	}
	if _, err := syslogprotocol.FacilityCode(cfg.facility()); err != nil {
		return err
	}
	if cfg.MaxMessageSize.Bytes() == 0 {
		return base.NewInvalidConfigurationError(".maxMessageSize is unspecified")
	}
	return nil
}

func (cfg *Config) appendNul() bool {
	if cfg.AppendNul == nil {
		return true
	}
	return *cfg.AppendNul
}

func (cfg *Config) facility() string {
	if len(cfg.Facility) == 0 {
		return "user"
	}
	return cfg.Facility
}

func (cfg *Config) program() string {
	if len(cfg.Program) > 0 {
		return cfg.Program
	}
	return filepath.Base(os.Args[0])
}

func (cfg *Config) hostname() string {
	if len(cfg.Hostname) > 0 {
		return cfg.Hostname
	}
	name, err := os.Hostname()
	if err != nil {
		return "localhost"
	}
	return name
}
