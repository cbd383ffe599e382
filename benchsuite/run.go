package benchsuite

import (
	"context"
	"flag"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dimonomid/rocstr/log"
	"github.com/gobwas/glob"
	"github.com/juju/errors"
)

// Case is a strategy applied to a sample.
type Case struct {
	Strategy Strategy
	Sample   Sample
}

// Name is like "concat/rocstr64/32": group, strategy, sample size.
func (c Case) Name() string {
	return fmt.Sprintf("%s/%s/%d", c.Strategy.Group, c.Strategy.Name, c.Sample.Size)
}

type Result struct {
	Name     string `yaml:"name"`
	Group    Group  `yaml:"group"`
	Strategy string `yaml:"strategy"`
	Size     int    `yaml:"size"`

	N           int     `yaml:"n"`
	NsPerOp     float64 `yaml:"ns_per_op"`
	BytesPerOp  int64   `yaml:"bytes_per_op"`
	AllocsPerOp int64   `yaml:"allocs_per_op"`
}

// Cases returns the cases to run for the config, in order: by group, then
// by strategy, then by size. Strategies which can't hold a sample are
// skipped for it.
func Cases(cfg Config) ([]Case, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Trace(err)
	}

	filters, err := compileFilters(cfg.Filters)
	if err != nil {
		return nil, errors.Trace(err)
	}

	groups := map[Group]bool{}
	for _, g := range cfg.Groups {
		groups[Group(g)] = true
	}

	samples := make([]Sample, 0, len(cfg.Sizes))
	for _, size := range cfg.Sizes {
		samples = append(samples, NewSample(cfg.Seed, size))
	}

	var ret []Case

	for _, st := range Strategies() {
		if len(groups) > 0 && !groups[st.Group] {
			continue
		}

		for _, sample := range samples {
			if !st.Fits(sample) {
				continue
			}

			c := Case{Strategy: st, Sample: sample}
			if !matchesAny(filters, c.Name()) {
				continue
			}

			ret = append(ret, c)
		}
	}

	return ret, nil
}

func matchesAny(filters []glob.Glob, name string) bool {
	if len(filters) == 0 {
		return true
	}

	for _, f := range filters {
		if f.Match(name) {
			return true
		}
	}

	return false
}

var testingInitOnce sync.Once

// setBenchTime sets the duration testing.Benchmark runs for. Outside of go
// test, the flag only exists after testing.Init.
func setBenchTime(d time.Duration) error {
	testingInitOnce.Do(func() {
		if flag.Lookup("test.benchtime") == nil {
			testing.Init()
		}
	})

	return errors.Trace(flag.Set("test.benchtime", d.String()))
}

// Run runs the cases of the config one by one, and returns the results.
// If ctx is done, it stops before the next case and returns the results so
// far along with the context error.
func Run(ctx context.Context, cfg Config, logger *log.Logger) ([]Result, error) {
	logger = logger.WithNamespaceAppended("bench")

	cases, err := Cases(cfg)
	if err != nil {
		return nil, errors.Trace(err)
	}

	if err := setBenchTime(cfg.BenchTime); err != nil {
		return nil, errors.Annotatef(err, "setting benchtime")
	}

	logger.Infof("Running %d cases, %s each", len(cases), cfg.BenchTime)

	ret := make([]Result, 0, len(cases))

	for i, c := range cases {
		if err := ctx.Err(); err != nil {
			logger.Warnf("Interrupted after %d cases", i)
			return ret, errors.Trace(err)
		}

		name := c.Name()
		logger.Verbose1f("Running %s (%d/%d)", name, i+1, len(cases))

		br := testing.Benchmark(c.Strategy.Bench(c.Sample))
		if br.N == 0 {
			return ret, errors.Errorf("benchmark %s failed", name)
		}

		r := Result{
			Name:     name,
			Group:    c.Strategy.Group,
			Strategy: c.Strategy.Name,
			Size:     c.Sample.Size,

			N:           br.N,
			NsPerOp:     float64(br.T.Nanoseconds()) / float64(br.N),
			BytesPerOp:  br.AllocedBytesPerOp(),
			AllocsPerOp: br.AllocsPerOp(),
		}

		logger.Verbose2f("%s: %d iterations, %.2f ns/op", name, r.N, r.NsPerOp)

		ret = append(ret, r)
	}

	return ret, nil
}
