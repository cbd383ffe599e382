package benchsuite

import (
	"os"
	"time"

	"github.com/gobwas/glob"
	"github.com/juju/errors"
	"gopkg.in/yaml.v2"
)

// maxSampleSize is the largest sample; it's also the largest RocStr
// capacity the module offers.
const maxSampleSize = 4096

type Config struct {
	// Sizes are the sample sizes in bytes.
	Sizes []int `yaml:"sizes"`

	// Seed for the sample text.
	Seed int64 `yaml:"seed"`

	// BenchTime is the run time of every case, like go test -benchtime.
	BenchTime time.Duration `yaml:"benchtime"`

	// Groups to run; all of them if empty.
	Groups []string `yaml:"groups"`

	// Filters are glob patterns for the case names, like
	// "concat/rocstr*/**". If empty, every case runs; otherwise a case runs
	// if any of the patterns matches.
	Filters []string `yaml:"filters"`
}

func DefaultConfig() Config {
	return Config{
		Sizes:     []int{0, 2, 4, 8, 16, 32, 64, 128, 256},
		Seed:      1,
		BenchTime: time.Second,
	}
}

// LoadConfigFromFile reads the config from a YAML file. Fields missing from
// the file keep their default values.
func LoadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Annotatef(err, "reading config file %s", path)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Annotatef(err, "unmarshaling yaml from %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Annotatef(err, "validating %s", path)
	}

	return &cfg, nil
}

// Validate makes sure the config is not obviously invalid.
func (cfg *Config) Validate() error {
	if len(cfg.Sizes) == 0 {
		return errors.NotValidf("empty sizes")
	}

	for _, size := range cfg.Sizes {
		if size < 0 || size > maxSampleSize {
			return errors.NotValidf("size %d (must be from 0 to %d)", size, maxSampleSize)
		}
	}

	if cfg.BenchTime <= 0 {
		return errors.NotValidf("benchtime %s", cfg.BenchTime)
	}

	for _, group := range cfg.Groups {
		if _, ok := validGroups[Group(group)]; !ok {
			return errors.NotValidf("group %q; valid groups are: %s", group, groupNames())
		}
	}

	if _, err := compileFilters(cfg.Filters); err != nil {
		return errors.Trace(err)
	}

	return nil
}

func compileFilters(patterns []string) ([]glob.Glob, error) {
	ret := make([]glob.Glob, 0, len(patterns))

	for _, pattern := range patterns {
		matcher, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, errors.Annotatef(err, "parsing filter %q as a glob pattern", pattern)
		}

		ret = append(ret, matcher)
	}

	return ret, nil
}
