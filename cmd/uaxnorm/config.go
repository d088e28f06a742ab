package main

import (
	"fmt"

	"github.com/npillmayer/schuko/schukonf/viperadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration keys. Flags are bound to keys of the same name.
const (
	keyForm       = "form"
	keyStreamSafe = "stream-safe"
	keyCheck      = "check"
	keyCodepoints = "codepoints"
	keyTrace      = "trace"
)

// tracers lists the tracers uaxnorm configures with the level of --trace.
var tracers = []string{"uax15", "uax15.ucd", "uax15.cmd"}

func addFlags(fs *pflag.FlagSet) {
	fs.StringP(keyForm, "f", "NFC", "normalization form: NFC, NFD, NFKC or NFKD")
	fs.BoolP(keyStreamSafe, "s", false, "produce the stream-safe variant of the form")
	fs.BoolP(keyCheck, "c", false, "only check if input is normalized")
	fs.Bool(keyCodepoints, false, "read and write lines of hex code-points")
	fs.String(keyTrace, "Error", "trace level: Error, Info or Debug")
	fs.String("config", "", "configuration file")
}

// setupConfig initializes the application configuration from flags and an
// optional configuration file, then sets up tracing from it.
func setupConfig(fs *pflag.FlagSet) (*viperadapter.VConf, error) {
	viper.Reset()
	conf := viperadapter.New("uaxnorm")
	conf.InitDefaults()
	if err := viper.BindPFlags(fs); err != nil {
		return nil, err
	}
	if file, _ := fs.GetString("config"); file != "" {
		viper.SetConfigFile(file)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading configuration: %w", err)
		}
	}
	if err := setupTracing(conf); err != nil {
		return nil, err
	}
	return conf, nil
}

func setupTracing(conf *viperadapter.VConf) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	level := tracing.TraceLevelFromString(conf.GetString(keyTrace))
	for _, name := range tracers {
		tracing.Select(name).SetTraceLevel(level)
	}
	tracer().Debugf("tracing with level %s", level)
	return nil
}
