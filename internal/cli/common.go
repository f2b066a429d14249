package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gorm.io/gorm/logger"

	"github.com/mrlokans/readtracker/internal/config"
	"github.com/mrlokans/readtracker/internal/database"
	"github.com/mrlokans/readtracker/internal/tracker"
)

// Command is a CLI subcommand. ParseFlags must succeed before Run.
type Command interface {
	ParseFlags(args []string) error
	Run() error
}

// base carries what every tracker command shares: the database path and
// where output goes.
type base struct {
	DatabasePath string
	Out          io.Writer
}

func (b *base) register(fs *flag.FlagSet) {
	fs.StringVar(&b.DatabasePath, "db", config.DefaultDatabasePath, "Path to the tracker database file")
}

func (b *base) out() io.Writer {
	if b.Out == nil {
		return os.Stdout
	}
	return b.Out
}

// open returns a tracker over the command's database and a func closing it.
func (b *base) open() (*tracker.Service, func(), error) {
	dbPath, err := filepath.Abs(b.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get absolute path for database: %w", err)
	}

	db, err := database.NewDatabase(dbPath, database.WithLogLevel(logger.Silent))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	return tracker.NewService(db), func() { db.Close() }, nil
}

func newFlagSet(name, usage string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s %s [options]\n\n%s\n\nOptions:\n", os.Args[0], name, usage)
		fs.PrintDefaults()
	}
	return fs
}

// optionalInt maps an unset flag sentinel to nil.
func optionalInt(v, unset int) *int {
	if v == unset {
		return nil
	}
	return &v
}

func requireID(name string, id uint) error {
	if id == 0 {
		return fmt.Errorf("required flag -%s not provided", name)
	}
	return nil
}
