package main

import (
	"flag"
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/smallyu/go-dlogproof/pkg/dlog"
)

// Config is the resolved CLI configuration. Values come from, in increasing
// precedence: defaults, the YAML config file, DLOGPROOF_* environment
// variables, explicit flags.
type Config struct {
	Curve       string
	Hash        string
	SessionID   string
	Participant int32
}

const envPrefix = "DLOGPROOF"

// registerCommon adds the flags shared by every subcommand and returns a
// pointer to the config file path.
func registerCommon(fs *flag.FlagSet) *string {
	configFile := fs.String("config", "", "path to a YAML config file")
	fs.String("curve", dlog.DefaultCurve, fmt.Sprintf("curve, one of %v", dlog.Curves()))
	fs.String("hash", dlog.DefaultHash, fmt.Sprintf("challenge hash, one of %v", dlog.Hashes()))
	fs.String("session", "", "session identifier bound into the proof")
	fs.Int("participant", 0, "participant identifier bound into the proof (int32)")
	return configFile
}

// readConfig resolves Config after fs has been parsed.
func readConfig(fs *flag.FlagSet, configFile string) (*Config, error) {
	v := viper.New()
	v.SetDefault("curve", dlog.DefaultCurve)
	v.SetDefault("hash", dlog.DefaultHash)
	v.SetDefault("session", "")
	v.SetDefault("participant", 0)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Only flags given on the command line override the other sources.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "curve", "hash", "session", "participant":
			v.Set(f.Name, f.Value.String())
		}
	})

	participant, err := cast.ToInt64E(v.Get("participant"))
	if err != nil {
		return nil, fmt.Errorf("%w: participant: %v", errUsage, err)
	}
	if participant < -1<<31 || participant > 1<<31-1 {
		return nil, fmt.Errorf("%w: participant %d does not fit in 32 bits", errUsage, participant)
	}

	return &Config{
		Curve:       v.GetString("curve"),
		Hash:        v.GetString("hash"),
		SessionID:   v.GetString("session"),
		Participant: int32(participant),
	}, nil
}

// Suite builds the proof suite selected by the config.
func (c *Config) Suite() (*dlog.Suite, error) {
	return dlog.NewSuite(c.Curve, c.Hash)
}
