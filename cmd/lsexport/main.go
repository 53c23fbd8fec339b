// lsexport dumps the persisted registry collections to CSV or XLSX files
// without going through the server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"logisystem/internal/config"
	"logisystem/internal/export"
	"logisystem/internal/seed"
	"logisystem/internal/storage"
	"logisystem/internal/store"
)

var version = "dev"

var (
	flagBackend string
	flagDataDir string
	flagDBPath  string
	flagFormat  string
	flagOut     string
)

var rootCmd = &cobra.Command{
	Use:   "lsexport",
	Short: "Export LogiSystem collections to CSV or XLSX",
	Long: `lsexport reads the snapshot data written by the logisystem server and
renders one collection as a spreadsheet-friendly file.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lsexport version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "file", "data backend (file|sqlite)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "./data", "data directory for the file backend")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "./data/logisystem.db", "database path for the sqlite backend")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "csv", "output format (csv|xlsx)")
	rootCmd.PersistentFlags().StringVarP(&flagOut, "out", "o", "", "output file (default <collection>.<format>)")

	rootCmd.AddCommand(versionCmd)
	for _, collection := range []string{"transactions", "trucks", "accounts", "employees"} {
		rootCmd.AddCommand(exportCmd(collection))
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func exportCmd(collection string) *cobra.Command {
	return &cobra.Command{
		Use:   collection,
		Short: fmt.Sprintf("Export the %s collection", collection),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), collection)
		},
	}
}

func runExport(ctx context.Context, collection string) error {
	cfg := &config.Config{
		DataBackend:  flagBackend,
		DataDir:      flagDataDir,
		SQLiteDBPath: flagDBPath,
	}

	backend, err := storage.New(cfg, slog.Default())
	if err != nil {
		return fmt.Errorf("initialize backend: %w", err)
	}
	defer backend.Close()

	// Empty seed so exports never invent data for missing snapshots.
	st, err := store.Open(ctx, backend, seed.Data{}, slog.Default())
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	var records []export.Record
	switch collection {
	case "transactions":
		records = export.Transactions(st.Transactions())
	case "trucks":
		records = export.Trucks(st.Trucks())
	case "accounts":
		records = export.Accounts(st.Accounts())
	case "employees":
		records = export.Employees(st.Employees())
	default:
		return fmt.Errorf("unknown collection: %s", collection)
	}

	out := flagOut
	if out == "" {
		out = fmt.Sprintf("%s.%s", collection, flagFormat)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	switch flagFormat {
	case "csv":
		err = export.CSV(f, records)
	case "xlsx":
		err = export.XLSX(f, collection, records)
	default:
		return fmt.Errorf("unknown format: %s", flagFormat)
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", collection, err)
	}

	fmt.Printf("wrote %d records to %s\n", len(records), out)
	return nil
}
