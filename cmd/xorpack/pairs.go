package main

import (
	"fmt"
	"strings"
)

type pair struct {
	name  string
	value string
}

// parsePair splits a NAME=VALUE argument at the first "=". The value may
// itself contain "=", the name may not be empty.
func parsePair(arg string) (pair, error) {
	name, value, found := strings.Cut(arg, "=")
	if !found {
		return pair{}, fmt.Errorf("argument %q is not in NAME=VALUE form", arg)
	}
	if len(name) == 0 {
		return pair{}, fmt.Errorf("argument %q has an empty NAME", arg)
	}
	return pair{
		name:  name,
		value: value,
	}, nil
}

func parsePairs(args []string) ([]pair, error) {
	pairs := make([]pair, 0, len(args))
	for _, arg := range args {
		p, err := parsePair(arg)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}
