package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
)

const DefaultFillCount = 1000

// Command can be any of:
//
//	CommandExec
//	CommandFill
type Command any

// CommandExec runs an operation script against a table.
type CommandExec struct {
	// ConfigDirPath is empty when the defaults are used.
	ConfigDirPath string
	// ScriptPath is empty when the script is read from stdin.
	ScriptPath string
}

// CommandFill inserts N random keys into a table
// and prints its statistics.
type CommandFill struct {
	ConfigDirPath string
	N             int
}

func Parse(w io.Writer, args []string) (cmd Command) {
	fm := fmt.Sprintf

	executableName := "hashtab"
	if len(args) > 0 {
		executableName = filepath.Base(args[0])
	}

	flags := flag.NewFlagSet("hashtab", flag.ContinueOnError)
	flags.SetOutput(w)
	flags.Usage = func() {
		writeLines(w,
			fm("usage: %s <command> [flags]", executableName),
			"",
			"commands available:",
			" exec - runs an operation script against a table",
			" fill - fills a table with random keys and prints statistics",
			" help - prints help",
		)
	}

	parseFlags := func() (ok bool) {
		err := flags.Parse(args[2:])
		// flags will automatically call .Usage()
		return err == nil
	}

	if len(args) < 2 {
		flags.Usage()
		return nil
	}

	configFlagUsage := "-config <path>: defines the configuration " +
		"directory path (default: built-in defaults)"

	switch args[1] {
	case "exec":
		c := CommandExec{}
		flags.Usage = func() {
			writeLines(w,
				"",
				fm("usage: %s exec [-config <path>] [-script <path>]",
					executableName),
				"",
				"flags:",
				configFlagUsage,
				"-script <path>: defines the script file path "+
					"(default: stdin)",
			)
		}
		flags.StringVar(&c.ConfigDirPath, "config", "", "")
		flags.StringVar(&c.ScriptPath, "script", "", "")
		if !parseFlags() {
			return nil
		}
		cmd = c

	case "fill":
		c := CommandFill{}
		flags.Usage = func() {
			writeLines(w,
				"",
				fm("usage: %s fill [-config <path>] [-n <count>]",
					executableName),
				"",
				"flags:",
				configFlagUsage,
				fm("-n <count>: defines the number of keys to insert "+
					"(default: %d)", DefaultFillCount),
			)
		}
		flags.StringVar(&c.ConfigDirPath, "config", "", "")
		flags.IntVar(&c.N, "n", DefaultFillCount, "")
		if !parseFlags() {
			return nil
		}
		if c.N < 0 {
			writeLines(w, fm("-n must not be negative, got %d", c.N))
			flags.Usage()
			return nil
		}
		cmd = c

	case "help":
		PrintHelp(w)
		return nil

	default:
		flags.Usage()
		return nil
	}
	return cmd
}

func writeLines(w io.Writer, lines ...string) {
	for i := range lines {
		_, _ = w.Write([]byte(lines[i]))
		_, _ = w.Write([]byte("\n"))
	}
}

func PrintHelp(w io.Writer) {
	writeLines(w,
		"hashtab - chained hash table runner",
		"",
		"scripts are JSON lines, one operation per line:",
		` {"op":"insert","key":"x","value":1}`,
		` {"op":"get","key":"x"}`,
		` {"op":"delete","key":"x"}`,
		` {"op":"stats"}`,
		"",
		"a script may start with a YAML header overriding the config:",
		" ---",
		" capacity: 4",
		" kind: text",
		" ---",
	)
}
