// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import "strings"

// flags that consume the following argument as their value
var valueFlags = map[string]bool{
	"--config-file": true,
}

// normalizeArgs lets "-p N" and "--print N" carry a count. pflag only binds
// an optional value written as "--print=N", so a purely numeric argument
// right after the flag is folded into it. Any other following argument is
// left alone and becomes note text. A short-flag group ending in p, such as
// "-vp 5", is split into "-v --print=5".
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" || arg == "-" || !strings.HasPrefix(arg, "-") {
			return append(out, args[i:]...)
		}

		if valueFlags[arg] && i+1 < len(args) {
			out = append(out, arg, args[i+1])
			i++
			continue
		}

		if (arg == "-p" || arg == "--print") && i+1 < len(args) && isCount(args[i+1]) {
			out = append(out, "--print="+args[i+1])
			i++
			continue
		}

		if isPrintGroup(arg) && i+1 < len(args) && isCount(args[i+1]) {
			out = append(out, arg[:len(arg)-1], "--print="+args[i+1])
			i++
			continue
		}

		out = append(out, arg)
	}
	return out
}

// isPrintGroup matches grouped short flags whose last letter is p, e.g. "-ip".
func isPrintGroup(arg string) bool {
	if len(arg) < 3 || arg[0] != '-' || arg[1] == '-' || arg[len(arg)-1] != 'p' {
		return false
	}
	for _, r := range arg[1:] {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

func isCount(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
