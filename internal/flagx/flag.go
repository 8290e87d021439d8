// Package flagx pre-scans command-line arguments for a few flags before the
// real flag set is built, e.g. to load a config file whose values become the
// defaults of the other flags.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs returns the arguments in args that belong to one of
// allowedFlags, together with their values.
//
// Supported forms:
//
//	-c conf.json
//	-config=conf.json
//	--config=conf.json (matched as "-config" when only the single-dash name is allowed)
//
// A value that starts with "-" is treated as the next flag, not a value.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	isAllowed := func(name string) bool {
		if _, ok := allowed[name]; ok {
			return true
		}
		if strings.HasPrefix(name, "--") {
			_, ok := allowed[name[1:]]
			return ok
		}
		return false
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if isAllowed(name) {
				filtered = append(filtered, arg)
			}
			continue
		}

		if isAllowed(arg) {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// LeadingFlags returns the prefix of args that flag.Parse on fs would treat
// as flags: scanning stops at "--" or at the first positional argument. The
// value of a non-boolean flag given as a separate argument is skipped, not
// mistaken for a positional. Flags unknown to fs are taken to be boolean.
func LeadingFlags(args []string, fs *flag.FlagSet) []string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" || arg == "-" || !strings.HasPrefix(arg, "-") {
			return args[:i]
		}

		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		f := fs.Lookup(name)
		if f == nil || isBoolFlag(f) {
			continue
		}
		i++
	}
	return args
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// ConfigFileFlag returns the value of -c / -config among the leading flags of
// args as fs would parse them, or "" when neither is present. Anything after
// the first positional argument is ignored; when both flags appear the last
// one wins.
func ConfigFileFlag(args []string, fs *flag.FlagSet) string {
	var config string

	pre := flag.NewFlagSet("config", flag.ContinueOnError)
	pre.SetOutput(io.Discard)
	pre.StringVar(&config, "config", "", "Path to config file")
	pre.StringVar(&config, "c", "", "Path to config file (short)")
	_ = pre.Parse(FilterArgs(LeadingFlags(args, fs), []string{"-c", "-config"}))

	return config
}
