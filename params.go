package main

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/dog-api-tests/dog-api-contract-tests/dogtests"
	"github.com/dog-api-tests/dog-api-contract-tests/framework"
	"github.com/dog-api-tests/dog-api-contract-tests/report"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	textLogFormat = "text"
	jsonLogFormat = "json"

	defaultConfigPath = "dogapi-contract-tests.yaml"
	envPrefix         = "DOGAPI"
)

// Filter patterns are regexes that may contain commas, so these flags are read from the flag
// set directly rather than through viper's string conversion. Viper still supplies them from
// the config file and environment.
var filterFlags = map[string]struct{}{"run": {}, "skip": {}}

// config is populated from the command line, the optional config file, and DOGAPI_*
// environment variables, in that order of precedence.
type config struct {
	URL              string        `mapstructure:"url"`
	RouteEchoBaseURL string        `mapstructure:"route-echo-base-url"`
	Timeout          time.Duration `mapstructure:"timeout"`
	Debug            bool          `mapstructure:"debug"`
	DebugAll         bool          `mapstructure:"debug-all"`
	LogLevel         string        `mapstructure:"log-level"`
	LogFormat        string        `mapstructure:"log-format"`
	Quiet            bool          `mapstructure:"quiet"`
	ReportPath       string        `mapstructure:"report-path"`
	ReportName       string        `mapstructure:"report-name"`
	ReportFormat     []string      `mapstructure:"report-format"`
	ImageBreeds      []string      `mapstructure:"image-breeds"`
	SelfTest         bool          `mapstructure:"self-test"`
	Run              []string      `mapstructure:"run"`
	Skip             []string      `mapstructure:"skip"`
}

type commandParams struct {
	config
	filters  framework.RegexFilters
	logLevel logrus.Level
}

func (c *commandParams) Read(args []string) error {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	configPath := fs.String("config", defaultConfigPath, "path to an optional YAML config file")
	fs.String("url", dogtests.DefaultBaseURL, "base URL of the dog API")
	fs.String("route-echo-base-url", dogtests.DefaultRouteEchoBaseURL,
		"base URL that the API reports in route-not-found messages")
	fs.Duration("timeout", 30*time.Second, "time limit for each request")
	fs.StringArray("run", nil, "regex pattern(s) to select tests to run")
	fs.StringArray("skip", nil, "regex pattern(s) to select tests not to run")
	fs.Bool("debug", false, "enable debug logging for failed tests")
	fs.Bool("debug-all", false, "enable debug logging for all tests")
	fs.String("log-level", "info", "logging level: panic, fatal, error, warn, info, debug, trace")
	fs.String("log-format", textLogFormat, "logging format: "+textLogFormat+", "+jsonLogFormat)
	fs.Bool("quiet", false, "disable harness logging (test results are still printed)")
	fs.String("report-path", "reports", "directory to write report files to")
	fs.String("report-name", "dog-api-contract-tests", "report file name, without extension")
	fs.StringSlice("report-format", nil, "report formats to write: "+strings.Join(report.Formats, ", "))
	fs.StringSlice("image-breeds", dogtests.DefaultParams().ImageBreeds, "breeds whose image lists are checked")
	fs.Bool("self-test", false, "run against a built-in fake of the API instead of --url")

	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	var bindErr error
	fs.VisitAll(func(f *flag.Flag) {
		if _, isFilter := filterFlags[f.Name]; isFilter || bindErr != nil {
			return
		}
		bindErr = v.BindPFlag(f.Name, f)
	})
	if bindErr != nil {
		return errors.Wrap(bindErr, "couldn't bind flags")
	}
	for name := range filterFlags {
		if err := v.BindEnv(name); err != nil {
			return errors.Wrapf(err, "couldn't bind %s", name)
		}
	}
	if *configPath != "" {
		if _, err := os.Stat(*configPath); err == nil {
			v.SetConfigFile(*configPath)
			if err := v.ReadInConfig(); err != nil {
				return errors.Wrapf(err, "couldn't read config file %s", *configPath)
			}
		} else if fs.Changed("config") {
			return errors.Errorf("config file %s not found", *configPath)
		}
	}
	if err := v.Unmarshal(&c.config); err != nil {
		return errors.Wrap(err, "couldn't parse configuration")
	}
	for name, target := range map[string]*[]string{"run": &c.Run, "skip": &c.Skip} {
		if fs.Changed(name) {
			values, err := fs.GetStringArray(name)
			if err != nil {
				return errors.Wrapf(err, "couldn't read --%s", name)
			}
			*target = values
		}
	}
	if err := c.buildFilters(); err != nil {
		return err
	}

	return c.validate()
}

func (c *commandParams) buildFilters() error {
	c.filters = framework.RegexFilters{}
	for _, pattern := range c.Run {
		if err := c.filters.MustMatch.Set(pattern); err != nil {
			return errors.Wrap(err, "--run")
		}
	}
	for _, pattern := range c.Skip {
		if err := c.filters.MustNotMatch.Set(pattern); err != nil {
			return errors.Wrap(err, "--skip")
		}
	}
	return nil
}

func (c *commandParams) validate() error {
	if c.URL == "" {
		return errors.New("--url must not be empty")
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	c.logLevel = level
	if c.LogFormat != textLogFormat && c.LogFormat != jsonLogFormat {
		return errors.Errorf("unknown log format %q", c.LogFormat)
	}
	for _, f := range c.ReportFormat {
		if !report.IsFormat(f) {
			return errors.Errorf("unknown report format %q", f)
		}
	}
	if c.Timeout <= 0 {
		return errors.New("--timeout must be positive")
	}
	return nil
}

func (c *commandParams) suiteParams() dogtests.Params {
	p := dogtests.DefaultParams()
	p.RouteEchoBaseURL = strings.TrimSuffix(c.RouteEchoBaseURL, "/")
	if len(c.ImageBreeds) != 0 {
		p.ImageBreeds = c.ImageBreeds
	}
	return p
}

func (c *commandParams) newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(c.logLevel)
	if c.LogFormat == jsonLogFormat {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	if c.Quiet {
		logger.SetOutput(io.Discard)
	}
	return logger
}
