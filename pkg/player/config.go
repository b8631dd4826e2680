package player

import (
	"flag"
	"io/ioutil"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/robotalks/mp3.go/pkg/l0/serial"
	env "github.com/robotalks/mp3.go/pkg/l1/env/controller"
)

// Config defines the configurations for the controller.
type Config struct {
	// Device is the serial device connected to the player.
	Device string
	// BaudRate is the serial link speed.
	BaudRate int
	// Volume is the initial volume level, -1 leaves the device as is.
	Volume int
	// Timeout overrides the response timeout.
	Timeout time.Duration
	// RefreshInterval is the pace of background status queries.
	RefreshInterval time.Duration
	// NoChecksum disables checksum generation and validation.
	NoChecksum bool
}

var defaultConfig = Config{
	Device:          "/dev/ttyS0",
	BaudRate:        9600,
	Volume:          -1,
	RefreshInterval: 2 * time.Second,
}

var configFile string

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Device, "device", defaultConfig.Device, "Serial device of the player.")
	flag.IntVar(&defaultConfig.BaudRate, "baud", defaultConfig.BaudRate, "Serial baud rate.")
	flag.IntVar(&defaultConfig.Volume, "volume", defaultConfig.Volume, "Initial volume level, -1 to keep.")
	flag.DurationVar(&defaultConfig.Timeout, "timeout", defaultConfig.Timeout, "Device response timeout.")
	flag.BoolVar(&defaultConfig.NoChecksum, "no-checksum", defaultConfig.NoChecksum, "Disable frame checksums.")
	flag.StringVar(&configFile, "config", configFile, "Configuration file.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults, merged with the
// configuration file when one is specified on the command line.
func NewConfig() (*Config, error) {
	conf := defaultConfig
	if configFile != "" {
		if err := conf.LoadFile(configFile); err != nil {
			return nil, err
		}
	}
	return &conf, nil
}

// configFile mirrors Config in YAML, durations are strings like
// "500ms". Pointers distinguish absent fields from zero values.
type configFileData struct {
	Device          string `yaml:"device"`
	BaudRate        int    `yaml:"baud_rate"`
	Volume          *int   `yaml:"volume"`
	Timeout         string `yaml:"timeout"`
	RefreshInterval string `yaml:"refresh_interval"`
	NoChecksum      *bool  `yaml:"no_checksum"`
}

// LoadFile merges configurations from a YAML file.
func (c *Config) LoadFile(fn string) error {
	data, err := ioutil.ReadFile(fn)
	if err != nil {
		return err
	}
	var fd configFileData
	if err = yaml.Unmarshal(data, &fd); err != nil {
		return err
	}
	if fd.Device != "" {
		c.Device = fd.Device
	}
	if fd.BaudRate != 0 {
		c.BaudRate = fd.BaudRate
	}
	if fd.Volume != nil {
		c.Volume = *fd.Volume
	}
	if fd.Timeout != "" {
		if c.Timeout, err = time.ParseDuration(fd.Timeout); err != nil {
			return err
		}
	}
	if fd.RefreshInterval != "" {
		if c.RefreshInterval, err = time.ParseDuration(fd.RefreshInterval); err != nil {
			return err
		}
	}
	if fd.NoChecksum != nil {
		c.NoChecksum = *fd.NoChecksum
	}
	return nil
}

// SerialConfig builds the configuration for the serial port.
func (c *Config) SerialConfig() serial.Config {
	return serial.Config{Device: c.Device, BaudRate: c.BaudRate}
}

// NewController creates a controller using the config.
func (c *Config) NewController(e *env.Env) (*Controller, error) {
	port, err := serial.Open(c.SerialConfig())
	if err != nil {
		return nil, err
	}
	ctl := NewController(e, port)
	c.apply(ctl)
	return ctl, nil
}

func (c *Config) apply(ctl *Controller) {
	ctl.InitialVolume = c.Volume
	if c.Timeout > 0 {
		ctl.engine.Timeout = c.Timeout
	}
	if c.RefreshInterval > 0 {
		ctl.RefreshInterval = c.RefreshInterval
	}
	ctl.engine.NoChecksum = c.NoChecksum
}
