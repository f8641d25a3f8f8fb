package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/cobra"
)

// configure loads the configuration and sets up tracing. Tracing goes to the
// Go standard logger.
func (a *app) configure() error {
	a.conf = koanfadapter.New(nil, configTag, []string{".nt"})
	a.conf.InitDefaults()
	for key, value := range map[string]string{
		"bintree.order":      "prefix",
		"tracelevel.root":    "Error",
		"tracelevel.bintree": "Error",
	} {
		if !a.conf.IsSet(key) {
			a.conf.Set(key, value)
		}
	}
	if a.traceLevel != "" {
		switch strings.ToLower(a.traceLevel) {
		case "error", "info", "debug":
		default:
			return fmt.Errorf("unknown trace level %q", a.traceLevel)
		}
		a.conf.Set("tracelevel.root", a.traceLevel)
		a.conf.Set("tracelevel.bintree", a.traceLevel)
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(a.conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Infof("trace level set to %s", a.conf.GetString("tracelevel.bintree"))
	return nil
}

// setting returns the value of a string flag. If the flag has not been set
// on the command line, a value for key from the configuration takes
// precedence over the flag's default.
func (a *app) setting(cmd *cobra.Command, flag, key string) string {
	value, _ := cmd.Flags().GetString(flag)
	if cmd.Flags().Changed(flag) || a.conf == nil {
		return value
	}
	if a.conf.IsSet(key) {
		return a.conf.GetString(key)
	}
	return value
}
