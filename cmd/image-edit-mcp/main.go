package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ironsheep/image-edit-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const logLevelEnv = "IMAGE_EDIT_LOG_LEVEL"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	logLevel := os.Getenv(logLevelEnv)
	if logLevel == "" {
		logLevel = "info"
	}

	root := &cobra.Command{
		Use:   "image-edit-mcp",
		Short: "MCP server for editing a collection of named images",
		Long: `image-edit-mcp keeps named images in memory and edits them through
MCP tools: brighten, flip, greyscale, color matrices, filters, downsizing and
masked edits, with PPM, PNG, JPEG, GIF, BMP and TIFF file support.

It communicates via MCP protocol over stdin/stdout. Configure it in your MCP
client. Logs go to stderr.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(logLevel)
			if err != nil {
				return err
			}
			zap.ReplaceGlobals(l)
			defer l.Sync() //nolint:errcheck

			l.Debug("starting server",
				zap.String("version", Version),
				zap.String("buildTime", BuildTime),
				zap.String("commit", GitCommit))

			srv := server.New(server.WithLogger(l), server.WithVersion(Version))
			if err := srv.Run(); err != nil {
				l.Error("server error", zap.Error(err))
				return err
			}
			return nil
		},
	}
	root.Flags().StringVar(&logLevel, "log-level", logLevel,
		"log level: debug, info, warn or error (env "+logLevelEnv+")")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "image-edit-mcp %s\n", Version)
			fmt.Fprintf(out, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(out, "  Git commit: %s\n", GitCommit)
		},
	})
	return root
}

// newLogger builds a stderr logger; stdout carries the protocol.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	if lvl == zapcore.DebugLevel {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return l, nil
}
