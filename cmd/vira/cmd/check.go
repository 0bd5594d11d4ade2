package cmd

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/xiam/vira"
	"github.com/xiam/vira/internal/project"
	"github.com/xiam/vira/internal/report"
	"github.com/xiam/vira/internal/watch"
)

var watchMode bool

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Check source files for lexical and syntax errors",
	Long: `Check parses the given files, or every .vira file of the current project
when no file is given, and prints the diagnostics found. The exit status is
1 if any file has errors.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := resolveSources(args)
		if err != nil {
			return err
		}

		c := newChecker(cmd.OutOrStdout())
		failed := c.run(src.files)

		if !watchMode {
			if failed {
				return errCheckFailed
			}
			return nil
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return c.watch(ctx, src)
	},
}

func init() {
	checkCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "check files again when they change")
	rootCmd.AddCommand(checkCmd)
}

// sources are the files to check, and where to look for changes
type sources struct {
	files []string
	dirs  []string
	match func(string) bool
}

// resolveSources uses the given files or the sources of the project around
// the working directory.
func resolveSources(args []string) (*sources, error) {
	if len(args) > 0 {
		files := make([]string, 0, len(args))
		dirs := map[string]bool{}
		for _, file := range args {
			file = filepath.Clean(file)
			files = append(files, file)
			dirs[filepath.Dir(file)] = true
		}
		return &sources{
			files: files,
			dirs:  sortedKeys(dirs),
			match: watch.Files(files...),
		}, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	path, err := project.FindManifest(wd)
	if err != nil {
		return nil, fmt.Errorf("no files given and %w in %s or its parents", err, wd)
	}

	m, err := project.Load(path)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}

	files, err := m.SourceFiles()
	if err != nil {
		return nil, err
	}

	logger.Debug("manifest found", "path", path, "name", m.Name, "version", m.Version, "source_dir", m.SourceDir, "files", len(files))
	if len(files) == 0 {
		logger.Warn("no source files found", "dir", m.SourceRoot())
	}

	dirs, err := subdirectories(m.SourceRoot())
	if err != nil {
		return nil, err
	}

	return &sources{
		files: files,
		dirs:  dirs,
		match: watch.Ext(project.SourceExt),
	}, nil
}

func subdirectories(root string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list directories in %s: %w", root, err)
	}
	return dirs, nil
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type checker struct {
	out     io.Writer
	printer *report.Printer

	// diagnostics per file of the last run
	results map[string]int
}

func newChecker(out io.Writer) *checker {
	return &checker{
		out:     out,
		printer: newPrinter(out),
		results: map[string]int{},
	}
}

// run checks files and prints a summary, it reports whether any file had
// errors.
func (c *checker) run(files []string) bool {
	for _, file := range files {
		c.checkFile(file)
	}
	return c.summary()
}

func (c *checker) checkFile(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		logger.Error("failed to read source", "path", path, "error", err)
		fmt.Fprintf(c.out, "%s: %v\n", path, err)
		c.results[path] = 1
		return
	}

	_, diags := vira.Parse(src)
	c.printer.Report(path, src, diags)
	c.results[path] = diags.Len()

	logger.Debug("file checked", "path", path, "bytes", len(src), "diagnostics", diags.Len())
}

func (c *checker) summary() bool {
	var total, files int
	for _, n := range c.results {
		if n > 0 {
			total += n
			files++
		}
	}

	if total == 0 {
		c.printer.Passed()
		return false
	}

	c.printer.Failed(total, files)
	return true
}

// watch checks a file again whenever it is written, until ctx is done.
func (c *checker) watch(ctx context.Context, src *sources) error {
	w, err := watch.New(src.dirs, src.match)
	if err != nil {
		return err
	}
	w.OnError = func(err error) {
		logger.Error("watcher error", "error", err)
	}

	logger.Info("watching for changes", "dirs", len(src.dirs))

	err = w.Run(ctx, func(path string) {
		path = filepath.Clean(path)
		logger.Debug("file changed", "path", path)
		c.checkFile(path)
		c.summary()
	})
	if err != nil {
		return err
	}

	for _, n := range c.results {
		if n > 0 {
			return errCheckFailed
		}
	}
	return nil
}
