// Package flagx contains small helpers for command-line flag handling.
package flagx

import "strings"

// FilterArgs returns only the allowed flags (and their values) from args.
//
// Two flag forms are recognized:
//  1. flag and value as separate arguments:  -a http://host
//  2. flag and value combined with '=':      --api=http://host
//
// Everything else, including positional arguments and unknown flags, is
// dropped. This lets several components parse os.Args with their own flag
// sets without tripping over each other's flags.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		// "--flag=value" form
		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := arg[:strings.Index(arg, "=")]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			continue
		}
		filtered = append(filtered, arg)

		// Take the next token as the value unless it looks like another flag.
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}
