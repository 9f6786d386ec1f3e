package main

import (
	"io/ioutil"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/codegangsta/cli"
	"github.com/kevin-cantwell/dotmatrix/v2"
	"github.com/pkg/errors"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"
)

// config is the raw, unvalidated set of options. It is filled from a YAML
// file first and command line flags second.
type config struct {
	Rule     string           `yaml:"rule"`
	Size     string           `yaml:"size"`
	Fit      string           `yaml:"fit"`
	Workers  int              `yaml:"workers"`
	Trailing bool             `yaml:"trailing"`
	Verbose  bool             `yaml:"verbose"`
	Adjust   dotmatrix.Adjust `yaml:"adjust"`
}

func defaultConfig() config {
	return config{
		Rule:    dotmatrix.DefaultRule.String(),
		Size:    "_",
		Workers: runtime.GOMAXPROCS(0),
		Adjust: dotmatrix.Adjust{
			Gamma:           1.0,
			SigmoidMidpoint: 0.5,
		},
	}
}

// loadConfig reads path over the defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// applyFlags overrides cfg with every flag given on the command line.
func (cfg *config) applyFlags(c *cli.Context) {
	if c.IsSet("rule") {
		cfg.Rule = c.String("rule")
	}
	if c.IsSet("size") {
		cfg.Size = c.String("size")
	}
	if c.IsSet("fit") {
		cfg.Fit = c.String("fit")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.Bool("trailing") {
		cfg.Trailing = true
	}
	if c.Bool("verbose") {
		cfg.Verbose = true
	}
	if c.IsSet("gamma") {
		cfg.Adjust.Gamma = c.Float64("gamma")
	}
	if c.IsSet("brightness") {
		cfg.Adjust.Brightness = c.Float64("brightness")
	}
	if c.IsSet("contrast") {
		cfg.Adjust.Contrast = c.Float64("contrast")
	}
	if c.IsSet("sharpen") {
		cfg.Adjust.Sharpen = c.Float64("sharpen")
	}
	if c.IsSet("sigmoid-midpoint") {
		cfg.Adjust.SigmoidMidpoint = c.Float64("sigmoid-midpoint")
	}
	if c.IsSet("sigmoid-factor") {
		cfg.Adjust.SigmoidFactor = c.Float64("sigmoid-factor")
	}
	if c.Bool("invert") {
		cfg.Adjust.Invert = true
	}
}

// fit is the terminal area an image is scaled down to. The zero fit leaves
// images alone.
type fit struct {
	cols, lines int
}

func (f fit) isZero() bool { return f.cols == 0 && f.lines == 0 }

// options are validated settings, ready to run.
type options struct {
	rule     dotmatrix.Rule
	size     dotmatrix.Size
	fit      fit
	workers  int
	trailing bool
	verbose  bool
	adjust   dotmatrix.Adjust
}

// resolve validates cfg. Every error it returns names the offending text.
func (cfg config) resolve() (options, error) {
	rule, err := dotmatrix.ParseRule(cfg.Rule)
	if err != nil {
		return options{}, err
	}
	size, err := dotmatrix.ParseSize(cfg.Size)
	if err != nil {
		return options{}, err
	}
	f, err := parseFit(cfg.Fit)
	if err != nil {
		return options{}, err
	}
	return options{
		rule:     rule,
		size:     size,
		fit:      f,
		workers:  cfg.Workers,
		trailing: cfg.Trailing,
		verbose:  cfg.Verbose,
		adjust:   cfg.Adjust,
	}, nil
}

// parseFit reads "", "auto" or COLS,LINES.
func parseFit(s string) (fit, error) {
	switch s {
	case "":
		return fit{}, nil
	case "auto":
		cols, lines, err := term.GetSize(int(os.Stderr.Fd()))
		if err != nil || cols <= 0 || lines <= 0 {
			// Small, but a pretty standard default
			return fit{cols: 80, lines: 25}, nil
		}
		return fit{cols: cols, lines: lines}, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return fit{}, errors.Errorf("fit option must be comma separated: %q", s)
	}
	cols, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return fit{}, errors.Wrapf(err, "fit %q", s)
	}
	lines, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return fit{}, errors.Wrapf(err, "fit %q", s)
	}
	return fit{cols: cols, lines: lines}, nil
}
