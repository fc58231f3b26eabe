package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/datatug/buftug/pkg/buftug"
	"github.com/datatug/buftug/pkg/explorer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeApp struct {
	err error
}

func (f fakeApp) Run() error {
	if f.err == nil {
		return nil
	}
	return fmt.Errorf("app failed: %w", f.err)
}

func withFlags(t *testing.T, tree, logPath string, print bool) {
	t.Helper()
	oldTree, oldLog, oldPrint, oldWatch := *treeFile, *logFile, *printTree, *watchTree
	*treeFile, *logFile, *printTree, *watchTree = tree, logPath, print, false
	t.Cleanup(func() {
		*treeFile, *logFile, *printTree, *watchTree = oldTree, oldLog, oldPrint, oldWatch
	})
}

func TestMainRoot(t *testing.T) {
	withFlags(t, "", "", false)
	runCalled := false

	oldRun, oldNewApp := run, newApp
	defer func() {
		run, newApp = oldRun, oldNewApp
	}()
	newApp = func(root *explorer.Folder) (application, *buftug.Explorer) {
		return fakeApp{}, nil
	}
	run = func(app application) {
		runCalled = true
	}

	main()

	if !runCalled {
		t.Fatal("expected main function to call run")
	}
}

func TestMainRoot_error(t *testing.T) {
	withFlags(t, filepath.Join(t.TempDir(), "missing.yaml"), "", false)

	var errOut bytes.Buffer
	oldStderr, oldExit := stderr, osExit
	defer func() {
		stderr, osExit = oldStderr, oldExit
	}()
	stderr = &errOut
	exitCode := -1
	osExit = func(code int) { exitCode = code }

	main()

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, errOut.String(), "missing.yaml")
}

func Test_newApp(t *testing.T) {
	oldSetupApp := setupApp
	defer func() {
		setupApp = oldSetupApp
	}()
	var setupRoot *explorer.Folder
	setupApp = func(app buftug.App, root *explorer.Folder) *buftug.Explorer {
		setupRoot = root
		return buftug.NewExplorer(app, root)
	}

	app, x := newApp(explorer.DemoTree())
	assert.NotNil(t, app)
	assert.NotNil(t, x)
	require.NotNil(t, setupRoot, "expected newApp to call setupApp")
	assert.Equal(t, "Root Folder", setupRoot.Name())
}

func Test_run(t *testing.T) {
	var errOut bytes.Buffer
	oldStderr := stderr
	defer func() {
		stderr = oldStderr
	}()
	stderr = &errOut

	var expectedErr = errors.New("test error")
	run(fakeApp{err: expectedErr})
	assert.Contains(t, errOut.String(), expectedErr.Error())

	errOut.Reset()
	run(fakeApp{})
	assert.Empty(t, errOut.String())
}

func Test_newBufTugApp(t *testing.T) {
	oldNewApp := newApp
	defer func() {
		newApp = oldNewApp
	}()
	var loaded *explorer.Folder
	newApp = func(root *explorer.Folder) (application, *buftug.Explorer) {
		loaded = root
		return fakeApp{}, buftug.NewExplorer(nil, root)
	}

	t.Run("default", func(t *testing.T) {
		withFlags(t, "", "", false)
		app, closeLog, err := newBufTugApp()
		defer closeLog()
		require.NoError(t, err)
		assert.NotNil(t, app)
		assert.Equal(t, "Root Folder", loaded.Name())
	})

	t.Run("with_tree", func(t *testing.T) {
		treePath := filepath.Join(t.TempDir(), "tree.yaml")
		require.NoError(t, os.WriteFile(treePath, []byte("name: Custom\nfiles:\n  - name: a.go\n    content: package a\n"), 0o600))
		withFlags(t, treePath, "", false)
		app, closeLog, err := newBufTugApp()
		defer closeLog()
		require.NoError(t, err)
		assert.NotNil(t, app)
		assert.Equal(t, "Custom", loaded.Name())
	})

	t.Run("with_watch", func(t *testing.T) {
		treePath := filepath.Join(t.TempDir(), "tree.yaml")
		require.NoError(t, os.WriteFile(treePath, []byte("name: Watched\n"), 0o600))
		withFlags(t, treePath, "", false)
		*watchTree = true
		app, closeLog, err := newBufTugApp()
		require.NoError(t, err)
		assert.NotNil(t, app)
		assert.Equal(t, "Watched", loaded.Name())
		closeLog()
		closeLog()
	})

	t.Run("with_log", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "buftug.log")
		withFlags(t, "", logPath, false)
		_, closeLog, err := newBufTugApp()
		require.NoError(t, err)
		closeLog()
		data, err := os.ReadFile(logPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), `starting with tree "Root Folder"`)
	})

	t.Run("with_bad_log_path", func(t *testing.T) {
		withFlags(t, "", filepath.Join(t.TempDir(), "no-such-dir", "buftug.log"), false)
		app, closeLog, err := newBufTugApp()
		closeLog()
		assert.Error(t, err)
		assert.Nil(t, app)
	})

	t.Run("print_tree", func(t *testing.T) {
		withFlags(t, "", "", true)
		var out bytes.Buffer
		oldStdout := stdout
		defer func() { stdout = oldStdout }()
		stdout = &out

		app, closeLog, err := newBufTugApp()
		defer closeLog()
		require.NoError(t, err)
		assert.Nil(t, app)
		assert.True(t, strings.HasPrefix(out.String(), "name: Root Folder"))
	})

	t.Run("panic", func(t *testing.T) {
		withFlags(t, "", "", false)
		newApp = func(root *explorer.Folder) (application, *buftug.Explorer) {
			panic("boom")
		}
		app, closeLog, err := newBufTugApp()
		defer closeLog()
		assert.Nil(t, app)
		assert.ErrorContains(t, err, "boom")
	})
}
