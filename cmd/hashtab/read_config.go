package main

import (
	"fmt"
	"io"
	"os"

	"github.com/graph-guard/hashtab/pkg/config"
)

// ReadConfig returns the defaults when dirPath is empty.
func ReadConfig(w io.Writer, dirPath string) *config.Config {
	if dirPath == "" {
		return config.Default()
	}
	conf, err := config.ReadConfig(os.DirFS(dirPath), ".")
	if err != nil {
		fmt.Fprintf(w, "reading config: %s\n", err)
		return nil
	}
	return conf
}
