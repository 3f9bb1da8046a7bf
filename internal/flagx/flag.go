// Package flagx helps several packages share one command line: each picks
// out only the flags it owns and parses them with its own FlagSet.
package flagx

import (
	"flag"
	"io"
	"os"
	"strings"
)

// FilterArgs returns the arguments of args that belong to allowedFlags,
// together with their values.
//
// Supported forms:
//
//	-c conf.json
//	--config=conf.json
//
// A token right after an allowed flag is treated as its value unless it
// starts with "-". Boolean flags should therefore use the -flag=false form.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// StringFlag returns the value of the last occurrence of any of names in
// os.Args, or "" when none is present. Names are given without the dash.
func StringFlag(names ...string) string {
	var value string

	dashed := make([]string, len(names))
	for i, n := range names {
		dashed[i] = "-" + n
	}
	args := FilterArgs(os.Args[1:], dashed)

	fs := flag.NewFlagSet(names[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for _, n := range names {
		fs.StringVar(&value, n, "", "")
	}
	_ = fs.Parse(args)

	return value
}

// JsonConfigFlags returns the config file path given with -c or -config.
func JsonConfigFlags() string {
	return StringFlag("config", "c")
}

// EnvFileFlags returns the dotenv file path given with -e or -env.
func EnvFileFlags() string {
	return StringFlag("env", "e")
}
