package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/datatug/buftug/pkg/buftug"
	"github.com/datatug/buftug/pkg/explorer"
	"github.com/datatug/buftug/pkg/explorer/fixture"
	"github.com/rivo/tview"
)

var (
	treeFile  = flag.String("tree", "", "load the folder tree from a YAML or JSON `file`")
	logFile   = flag.String("log", "", "append diagnostic log lines to `file`")
	printTree = flag.Bool("print-tree", false, "print the folder tree as YAML and exit")
	watchTree = flag.Bool("watch", false, "reload the -tree file when it changes")
)

var osExit = os.Exit
var stdout io.Writer = os.Stdout
var stderr io.Writer = os.Stderr

func main() {
	app, closeLog, err := newBufTugApp()
	if err != nil {
		closeLog()
		_, _ = fmt.Fprintf(stderr, "%v\n", err)
		osExit(1)
		return
	}
	if app != nil {
		run(app)
	}
	closeLog()
}

// newBufTugApp returns a nil app when there is nothing to run.
// closeLog releases the log file and stops the tree watcher.
func newBufTugApp() (app application, closeLog func(), err error) {
	flag.Parse()

	closeLog = func() {}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered from panic: %v", r)
			app = nil
		}
	}()

	if closeLog, err = setupLogging(*logFile); err != nil {
		closeLog = func() {}
		return nil, closeLog, err
	}

	root, err := loadTree(*treeFile)
	if err != nil {
		return nil, closeLog, err
	}

	if *printTree {
		return nil, closeLog, fixture.Encode(stdout, root)
	}

	log.Printf("starting with tree %q", root.Name())
	app, x := newApp(root)
	if *watchTree && *treeFile != "" {
		stopWatching, err := fixture.Watch(*treeFile, x.ReloadTree, fixture.OnWatchError(func(err error) {
			log.Printf("failed to reload tree: %v", err)
		}))
		if err != nil {
			return nil, closeLog, err
		}
		stopLog := closeLog
		closeLog = func() {
			stopWatching()
			stopLog()
		}
	}
	return app, closeLog, nil
}

// setupLogging routes the standard logger. The terminal belongs to the UI,
// so without a log file the output is discarded.
func setupLogging(filePath string) (closeLog func(), err error) {
	if filePath == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(file)
	return func() {
		log.SetOutput(io.Discard)
		_ = file.Close()
	}, nil
}

func loadTree(filePath string) (*explorer.Folder, error) {
	if filePath == "" {
		return explorer.DemoTree(), nil
	}
	return fixture.Load(filePath)
}

var setupApp = func(app buftug.App, root *explorer.Folder) *buftug.Explorer {
	return buftug.SetupApp(app, root)
}

var newApp = func(root *explorer.Folder) (application, *buftug.Explorer) {
	app := buftug.NewApp(tview.NewApplication())
	return app, setupApp(app, root)
}

type application interface{ Run() error }

var run = func(app application) {
	if err := app.Run(); err != nil {
		_, _ = fmt.Fprintf(stderr, "%v\n", err)
	}
}
