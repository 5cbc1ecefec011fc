package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	argio "github.com/dzonerzy/go-miniarg/io"
	"github.com/dzonerzy/go-miniarg/miniarg"
)

const (
	envKeys     = "MINIARG_KEYS"
	envTrailing = "MINIARG_TRAILING"
)

// parserOptions are the matcher settings shared by parse and keys.
type parserOptions struct {
	keys     []string
	trailing string
	suggest  bool
	distance int
	verbose  bool
}

func (o *parserOptions) registerKeys(fs *pflag.FlagSet) {
	fs.StringSliceVarP(&o.keys, "keys", "k", nil, "accepted keys, in priority order (env "+envKeys+")")
}

func (o *parserOptions) register(fs *pflag.FlagSet) {
	o.registerKeys(fs)
	fs.StringVar(&o.trailing, "trailing", "drop", "what to do with a key that ends the line: drop or empty (env "+envTrailing+")")
	fs.BoolVar(&o.suggest, "suggest", false, "suggest the closest key for unknown keys")
	fs.IntVar(&o.distance, "max-distance", 2, "maximum edit distance for suggestions")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "log every recovered parse error")
}

// applyEnv fills options the user did not set on the command line.
func (o *parserOptions) applyEnv(fs *pflag.FlagSet) {
	if !fs.Changed("keys") {
		if v, ok := os.LookupEnv(envKeys); ok && v != "" {
			o.keys = strings.Split(v, ",")
		}
	}
	if fs.Lookup("trailing") != nil && !fs.Changed("trailing") {
		if v, ok := os.LookupEnv(envTrailing); ok && v != "" {
			o.trailing = v
		}
	}
}

func (o *parserOptions) policy() (miniarg.TrailingKeyPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(o.trailing)) {
	case "drop", "":
		return miniarg.TrailingKeyDrop, nil
	case "empty":
		return miniarg.TrailingKeyEmpty, nil
	default:
		return 0, fmt.Errorf("invalid trailing policy %q (want drop or empty)", o.trailing)
	}
}

func (o *parserOptions) keySet(docs map[string]string) *miniarg.KeySet[miniarg.StringKey] {
	defs := make([]miniarg.Def[miniarg.StringKey], 0, len(o.keys))
	for _, k := range o.keys {
		k = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(k), "-"))
		if k == "" {
			continue
		}
		defs = append(defs, miniarg.Def[miniarg.StringKey]{
			Key: miniarg.StringKey(k),
			Doc: docs[miniarg.NormalizeKey(k)],
		})
	}
	return miniarg.Define(defs...)
}

// parser builds the matcher. With --verbose the parser reports every recovered
// error to logger at debug level.
func (o *parserOptions) parser(ks *miniarg.KeySet[miniarg.StringKey], logger *argio.Logger) (*miniarg.Parser[miniarg.StringKey], error) {
	policy, err := o.policy()
	if err != nil {
		return nil, err
	}

	p := ks.Parser().
		TrailingKey(policy).
		SuggestKeys(o.suggest).
		MaxDistance(o.distance)

	if o.verbose {
		p.Logger(logger.WithLevel(argio.LevelDebug))
	}
	return p, nil
}

// logOptions configure the diagnostics logger and colour for every command.
type logOptions struct {
	format     string
	timestamps bool
	timeFormat string
	color      string
}

func (o *logOptions) register(fs *pflag.FlagSet) {
	fs.StringVar(&o.format, "log-format", "tagged", "diagnostics prefix: circles, symbols, tagged, plain, or a template using {{.Level}} {{.Prefix}} {{.Time}} {{.Message}}")
	fs.BoolVar(&o.timestamps, "timestamps", false, "timestamp diagnostics")
	fs.StringVar(&o.timeFormat, "time-format", "15:04:05", "Go time layout for --timestamps and {{.Time}}")
	fs.StringVar(&o.color, "color", "", "auto, always or never (default auto)")
}

// applyColor sets the colour mode on io. An empty mode keeps io as configured.
func (o *logOptions) applyColor(io *argio.IOManager) error {
	switch strings.ToLower(o.color) {
	case "":
	case "auto":
		io.ColorAuto()
	case "always":
		io.ForceColor()
	case "never":
		io.NoColor()
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", o.color)
	}
	return nil
}

// logger returns a logger writing to stderr only.
func (o *logOptions) logger(io *argio.IOManager) (*argio.Logger, error) {
	l := argio.NewLogger(io.Diagnostics()).
		WithTimestamp(o.timestamps).
		WithTimeFormat(o.timeFormat)

	if strings.Contains(o.format, "{{") {
		return l.WithTemplate(o.format), nil
	}
	format, ok := argio.ParseLogFormat(o.format)
	if !ok {
		return nil, fmt.Errorf("invalid log format %q", o.format)
	}
	return l.WithFormat(format), nil
}
