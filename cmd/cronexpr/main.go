// cronexpr parses a five-field cron expression and prints the instants at
// which it fires next (or fired previously).
//
//	cronexpr [flags] <minute> <hour> <day-of-month> <month> <day-of-week>
//
// The expression may be passed as one quoted argument or as five separate
// arguments. Settings are read from an optional YAML file (--config or
// CRONEXPR_CONFIG) and CRONEXPR_* environment variables; flags win over both.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
	"k8s.io/utils/clock"

	"github.com/netresearch/go-cronexpr"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr, clock.RealClock{}); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// result is the document written by --output yaml.
type result struct {
	Expression string      `yaml:"expression"`
	Normalized string      `yaml:"normalized"`
	Values     [][]int     `yaml:"values,flow"`
	Direction  string      `yaml:"direction"`
	From       time.Time   `yaml:"from"`
	Times      []time.Time `yaml:"times"`
}

func run(args []string, stdout, stderr io.Writer, clk clock.PassiveClock) error {
	var (
		fromFlag   string
		prev       bool
		count      int
		maxYears   int
		output     string
		configPath string
		verbose    bool
	)

	flagSet := pflag.NewFlagSet("cronexpr", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&fromFlag, "from", "", "reference instant in RFC 3339 format (default: now)")
	flagSet.BoolVar(&prev, "prev", false, "list previous instead of next activations")
	flagSet.IntVarP(&count, "count", "n", 1, "number of activations to print")
	flagSet.IntVar(&maxYears, "max-years", cronexpr.DefaultMaxSearchYears, "search horizon in years")
	flagSet.StringVarP(&output, "output", "o", "text", "output format: text, yaml or array")
	flagSet.StringVar(&configPath, "config", os.Getenv("CRONEXPR_CONFIG"), "path to a YAML config file")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")
	flagSet.Usage = func() {
		fmt.Fprintln(stderr, "Usage: cronexpr [flags] <expression>")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return errors.New("missing cron expression")
	}
	if count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", count)
	}

	cfg, err := cronexpr.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if flagSet.Changed("max-years") {
		cfg.MaxSearchYears = maxYears
	}
	if flagSet.Changed("output") {
		cfg.Output = output
	}
	if flagSet.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	switch cfg.Output {
	case "text", "yaml", "array":
	default:
		return fmt.Errorf("unknown output format %q (want text, yaml or array)", cfg.Output)
	}

	logger := cronexpr.NewZapLogger(stderr, cfg.Verbose)
	opts := append(cfg.Options(), cronexpr.WithLogger(logger), cronexpr.WithClock(clk))

	expr := strings.Join(flagSet.Args(), " ")
	schedule, err := cronexpr.Parse(expr, opts...)
	if err != nil {
		return err
	}

	from := clk.Now()
	if fromFlag != "" {
		from, err = time.Parse(time.RFC3339, fromFlag)
		if err != nil {
			return fmt.Errorf("invalid --from: %w", err)
		}
	}

	var times []time.Time
	direction := "next"
	if prev {
		direction = "prev"
		times, err = cronexpr.PrevN(schedule, from, count)
	} else {
		times, err = cronexpr.NextN(schedule, from, count)
	}
	if err != nil {
		return err
	}
	logger.V(1).Info("Search finished", "direction", direction, "from", from, "found", len(times))

	switch cfg.Output {
	case "array":
		values, err := schedule.Array()
		if err != nil {
			return err
		}
		return encodeYAML(stdout, flowNode(values))
	case "yaml":
		values, err := schedule.Array()
		if err != nil {
			return err
		}
		return encodeYAML(stdout, result{
			Expression: expr,
			Normalized: schedule.String(),
			Values:     values,
			Direction:  direction,
			From:       from,
			Times:      times,
		})
	default:
		for _, t := range times {
			fmt.Fprintln(stdout, t.Format(time.RFC3339))
		}
		return nil
	}
}

// flowNode encodes values as a single-line YAML sequence.
func flowNode(values [][]int) *yaml.Node {
	var node yaml.Node
	// Encoding plain ints into a node cannot fail.
	_ = node.Encode(values)
	node.Style = yaml.FlowStyle
	return &node
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return enc.Close()
}
