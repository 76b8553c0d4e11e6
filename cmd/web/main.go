package main

import (
	"fmt"
	"net"
	"os"

	"github.com/de-tools/shift-report/pkg/render/pdf"
	"github.com/de-tools/shift-report/pkg/server"
	"github.com/de-tools/shift-report/pkg/services/config"
	"github.com/de-tools/shift-report/pkg/store/filestore"
	"github.com/de-tools/shift-report/pkg/store/memory"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the shift report web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to an optional config file (environment variables take precedence)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	var fileStore filestore.Store
	switch cfg.Storage {
	case "s3":
		fileStore, err = filestore.NewS3(ctx, cfg.S3Bucket, cfg.S3Region, cfg.AWSProfile)
		if err != nil {
			return fmt.Errorf("failed to set up s3 storage: %w", err)
		}
		logger.Info().Str("bucket", cfg.S3Bucket).Msg("using s3 file storage")
	default:
		fileStore, err = filestore.NewLocal(cfg.UploadDir)
		if err != nil {
			return fmt.Errorf("failed to set up local storage: %w", err)
		}
		logger.Info().Str("dir", cfg.UploadDir).Msg("using local file storage")
	}

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:           net.JoinHostPort(cfg.Host, cfg.Port),
		AllowedOrigins: cfg.AllowedOrigins,
		Version:        cfg.Version,
		Dependencies: server.Dependencies{
			Records:  memory.NewRecordStore(),
			Renderer: pdf.NewRenderer(),
			Files:    fileStore,
		},
	})

	return webAPI.Start()
}
