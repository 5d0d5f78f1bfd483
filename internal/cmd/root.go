package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/willfong/rubank/internal/bank"
	"github.com/willfong/rubank/internal/config"
	"github.com/willfong/rubank/internal/data"
	"github.com/willfong/rubank/internal/ledger"
	"github.com/willfong/rubank/internal/ui"
	"github.com/willfong/rubank/internal/utils"
)

var (
	v   = config.NewViper()
	cfg = config.DefaultConfig()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rubank",
	Short: "RU Bank account ledger and transaction manager",
	Long: `An in-memory account ledger for RU Bank.

Accounts are loaded from a record file (or the built-in sample), then
managed through an interactive command shell: open and close accounts,
deposit, withdraw, replay ATM activity and print reports.

Settings come from flags, RUBANK_* environment variables, a .env file
and an optional rubank.yaml in the working directory or $HOME/.rubank.

Example usage:
  rubank run
  rubank run --accounts accounts.txt --activities activities.txt
  rubank load --accounts accounts.txt`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(); err != nil {
			return err
		}
		loaded, err := config.Load(v)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Int64("seed", config.DefaultSeed, "seed for generated account numbers (0 = random)")
	flags.String("accounts", "", "account records file (default: built-in sample)")
	flags.String("activities", "", "activity records file (default: built-in sample)")
	flags.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	flags.Bool("no-color", false, "disable colors")

	bindFlag("seed", "seed")
	bindFlag("accounts_file", "accounts")
	bindFlag("activities_file", "activities")
	bindFlag("log_level", "log-level")
	bindFlag("no_color", "no-color")

	// Silence usage on error - we'll print our own messages
	rootCmd.SilenceUsage = true

	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func bindFlag(key, flag string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

// newLogger builds a production logger on stderr. Debug switches to the
// console encoder.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.OutputPaths = []string{"stderr"}
	if lvl == zapcore.DebugLevel {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return zc.Build()
}

// newUI creates the terminal writer for out, honoring --no-color
func newUI(out io.Writer) *ui.UI {
	u := ui.New(out)
	if cfg.NoColor {
		u.SetNoColor(true)
	}
	return u
}

// newManager wires an empty ledger to a number generator seeded from the
// configuration. The seed actually used is logged so a run with seed 0 can
// be repeated.
func newManager(logger *zap.Logger) *bank.Manager {
	numbers := utils.NewRandom(cfg.Seed)
	logger.Info("account numbers seeded", zap.Uint64("seed", numbers.Seed()))
	return bank.NewManager(ledger.New(), numbers, bank.WithLogger(logger))
}

// recordFile is a record file read into memory
type recordFile struct {
	name string
	data []byte
}

// readRecords reads path, or the named sample file when path is empty
func readRecords(path, sampleName string, sample func(*data.Sample) io.Reader) (recordFile, error) {
	if path == "" {
		s, err := data.Load()
		if err != nil {
			return recordFile{}, err
		}
		b, err := io.ReadAll(sample(s))
		if err != nil {
			return recordFile{}, err
		}
		return recordFile{name: sampleName, data: b}, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return recordFile{}, fmt.Errorf("failed to read records: %w", err)
	}
	return recordFile{name: filepath.Base(path), data: b}, nil
}

func accountRecords() (recordFile, error) {
	return readRecords(cfg.AccountsFile, "accounts.txt", (*data.Sample).Accounts)
}

func activityRecords() (recordFile, error) {
	return readRecords(cfg.ActivitiesFile, "activities.txt", (*data.Sample).Activities)
}
