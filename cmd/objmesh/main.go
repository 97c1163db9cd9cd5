// Command objmesh is the CLI harness around the objmesh import/export
// pipeline. It is a thin collaborator: flag/config parsing, logging, and
// exit-code mapping live here so the core library stays free of I/O
// policy and logging concerns.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/calvinalkan/objmesh"
	"github.com/calvinalkan/objmesh/internal/config"
	"github.com/calvinalkan/objmesh/internal/logging"
)

var (
	flagIn  = flag.String("in", "", "Input OBJ file path")
	flagOut = flag.String("out", "", "Output OBJ file path")
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is factored out of main for testability; it returns a process exit
// code rather than calling os.Exit directly.
func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: objmesh <import|export> -in FILE [-out FILE] [-config FILE] [flags]")
		return 2
	}

	subcommand := args[0]
	if err := flag.CommandLine.Parse(args[1:]); err != nil {
		return 2
	}

	cfg, err := config.Load(config.ConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		return 2
	}

	runID := uuid.NewString()
	logger := logging.New(cfg.LogLevel, cfg.LogFile, runID)
	defer logger.Sync()

	if *flagIn == "" {
		logger.Error("missing required -in flag")
		return 2
	}

	opts := []objmesh.Option{
		objmesh.WithBatchSize(cfg.BatchSize),
		objmesh.WithNumConsumers(cfg.NumConsumers),
		objmesh.WithQueueCapacity(cfg.QueueCapacity),
	}

	switch subcommand {
	case "import":
		return runImport(logger, *flagIn, *flagOut, opts)
	case "export":
		return runExport(logger, *flagIn, *flagOut)
	default:
		logger.Error("unknown subcommand", zap.String("subcommand", subcommand))
		return 2
	}
}

func runImport(logger *zap.Logger, in, out string, opts []objmesh.Option) int {
	var mesh objmesh.Mesh
	start := time.Now()

	stats, err := objmesh.Import(in, &mesh, opts...)
	if err != nil {
		if out != "" {
			// Chained import+export: report both failures at once.
			err = multierr.Append(err, fmt.Errorf("export skipped: import failed"))
		}
		logger.Error("import failed", zap.String("path", in), zap.Error(err))
		return exitCodeFor(err)
	}

	logger.Info("import complete",
		zap.String("path", in),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int64("bytes_read", stats.BytesRead),
		zap.Int("batches", stats.Batches),
		zap.Int("consumers", stats.NumConsumers),
		zap.Int("positions", stats.Positions),
		zap.Int("texcoords", stats.TexCoords),
		zap.Int("normals", stats.Normals),
		zap.Int("faces", stats.Faces),
	)

	if out == "" {
		return 0
	}

	if err := objmesh.Export(out, &mesh); err != nil {
		logger.Error("export failed", zap.String("path", out), zap.Error(err))
		return exitCodeFor(err)
	}

	logger.Info("export complete", zap.String("path", out))
	return 0
}

func runExport(logger *zap.Logger, in, out string) int {
	if out == "" {
		logger.Error("export requires -out")
		return 2
	}

	var mesh objmesh.Mesh
	if _, err := objmesh.Import(in, &mesh); err != nil {
		logger.Error("import failed", zap.String("path", in), zap.Error(err))
		return exitCodeFor(err)
	}

	if err := objmesh.Export(out, &mesh); err != nil {
		logger.Error("export failed", zap.String("path", out), zap.Error(err))
		return exitCodeFor(err)
	}

	logger.Info("export complete", zap.String("path", out))
	return 0
}

// exitCodeFor maps a facade failure to a process exit code. Both
// AcquisitionFailed and EmptyInput map to 1; flag/config problems are
// caught earlier and return 2.
func exitCodeFor(err error) int {
	return 1
}
