package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/hari-data/hari/internal/apperrors"
	"github.com/hari-data/hari/internal/logging"
)

func main() {
	// A missing .env is the common case.
	_ = godotenv.Load()

	fsys := newNativeFS()
	a := &app{
		fs:     fsys,
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
		now:    time.Now,
		logs:   logging.NewManager(fsys, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}),
	}

	if err := newRootCmd(a).Execute(); err != nil {
		if !errors.Is(err, apperrors.ErrNotAProject) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
