package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"fdbview/pkg/logging"
	"fdbview/pkg/session"
	"fdbview/pkg/source"
	"fdbview/pkg/source/memsource"
	"fdbview/pkg/types"
	"fdbview/pkg/ui"
)

type Configuration struct {
	FilePath   string
	ExportPath string
	DemoMode   bool
}

// sourceDecoder turns a mapped buffer into a database catalog. The binary
// layout belongs to the format library that supplies the decoder; nothing
// in this repository parses it.
var sourceDecoder source.Decoder

func main() {
	config := parseArguments()

	if err := initLogging(); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.Close()

	sess := session.New(sourceDecoder)
	defer sess.Close()

	if config.DemoMode {
		sess.Attach(demoDatabase(), nil, "demo.fdb")
	} else if config.FilePath != "" {
		if !session.ValidSourcePath(config.FilePath) {
			log.Fatalf("Unrecognized source file %q (want .fdb)", config.FilePath)
		}
		if err := sess.Open(config.FilePath); err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
	}

	if config.ExportPath != "" {
		runExport(sess, config.ExportPath)
		return
	}

	if err := startInteractiveMode(sess); err != nil {
		log.Fatalf("Failed to start UI: %v", err)
	}
}

// parseArguments processes command-line flags
func parseArguments() Configuration {
	var config Configuration

	flag.StringVar(&config.FilePath, "file", "", "Database file to open on startup")
	flag.StringVar(&config.ExportPath, "export", "", "Export the opened database to this SQLite file and exit")
	flag.BoolVar(&config.DemoMode, "demo", false, "Run with a built-in sample database")

	flag.Parse()

	return config
}

// initLogging loads .env (if present) and configures the global logger.
// Logs default to a file so they do not fight the terminal UI for stdout.
func initLogging() error {
	_ = godotenv.Load()

	path := os.Getenv("FDBVIEW_LOG_PATH")
	if path == "" {
		path = "fdbview.log"
	}

	return logging.Init(logging.Config{
		Level:      logging.LogLevel(os.Getenv("FDBVIEW_LOG_LEVEL")),
		OutputPath: path,
		Format:     os.Getenv("FDBVIEW_LOG_FORMAT"),
	})
}

func runExport(sess *session.Session, path string) {
	if !session.ValidExportPath(path) {
		log.Fatalf("Unrecognized export file %q (want .sqlite or .db)", path)
	}
	if !sess.HasDatabase() {
		log.Fatalf("Nothing to export: open a database with -file or -demo")
	}

	stats, err := sess.ExportTo(path)
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	fmt.Printf("Exported %d tables (%d rows) to %s in %v\n",
		stats.Tables, stats.Rows, path, stats.Elapsed)
}

// startInteractiveMode launches the Bubble Tea UI
func startInteractiveMode(sess *session.Session) error {
	model := ui.NewModel(sess)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %v", err)
	}

	return nil
}

// demoDatabase builds a small in-memory catalog so the viewer and the
// exporter can be tried without a source file or format library.
func demoDatabase() *memsource.Database {
	users := memsource.NewTable("Users",
		[]source.Column{
			{Name: "id", Kind: types.Int32Kind},
			{Name: "name", Kind: types.TextKind},
			{Name: "active", Kind: types.BoolKind},
		},
		[][]source.Field{
			{memsource.Int32(1), memsource.Text("Alice Johnson"), memsource.Bool(true)},
			{memsource.Int32(2), memsource.Text("Bob Smith"), memsource.Bool(false)},
			{memsource.Int32(3), memsource.Text("Charlie Brown"), memsource.Bool(true)},
		})

	products := memsource.NewTable("Products",
		[]source.Column{
			{Name: "sku", Kind: types.VarCharKind},
			{Name: "price", Kind: types.Float32Kind},
			{Name: "stock", Kind: types.Int64Kind},
			{Name: "notes", Kind: types.NothingKind},
		},
		[][]source.Field{
			{memsource.VarChar("LAPTOP-01"), memsource.Float32(1299.99), memsource.Int64(50), memsource.Nothing()},
			{memsource.VarChar("MOUSE-02"), memsource.Float32(29.99), memsource.Int64(200), memsource.Nothing()},
		})

	orders := memsource.NewTable("Orders",
		[]source.Column{{Name: "id", Kind: types.Int32Kind}}, nil)

	return memsource.New(users, products, orders)
}
