package main

import (
	"fmt"
	"os"

	"github.com/graph-guard/hashtab/pkg/cli"
	"github.com/phuslu/log"
)

func main() {
	w := os.Stdout
	ok := true
	switch c := cli.Parse(w, os.Args).(type) {
	case cli.CommandExec:
		ok = execute(w, os.Stdin, c)
	case cli.CommandFill:
		ok = fill(w, c)
	default:
		if c != nil {
			panic(fmt.Errorf("unexpected command: %#v", c))
		}
	}
	if !ok {
		os.Exit(1)
	}
}

// newLogger logs to stderr keeping stdout for results.
func newLogger(level log.Level) log.Logger {
	return log.Logger{
		Level:      level,
		TimeField:  "time",
		TimeFormat: "15:04:05",
		Writer:     &log.IOWriter{Writer: os.Stderr},
	}
}
