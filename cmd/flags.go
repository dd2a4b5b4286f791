package cmd

import (
	"github.com/gnames/gnredlist/pkg/config"
	"github.com/spf13/cobra"
)

type funcFlag func(cmd *cobra.Command)

func addFlags(cmd *cobra.Command, flags ...funcFlag) {
	for _, f := range flags {
		f(cmd)
	}
}

func forceFlag(cmd *cobra.Command) {
	cmd.Flags().BoolP("force", "f", false,
		"download all species, ignoring saved rows")
}

func progressFlag(cmd *cobra.Command) {
	cmd.Flags().BoolP("progress", "p", false, "show progress bar")
}

func jobsFlag(cmd *cobra.Command) {
	cmd.Flags().IntP("jobs", "j", 0, "number of concurrent downloads")
}

func splitYearFlag(cmd *cobra.Command) {
	cmd.Flags().IntP("split-year", "y", 0,
		"year that separates pre and post summaries")
}

func noSQLiteFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("no-sqlite", false, "do not create SQLite table")
}

// pathFlags converts persistent flags that were set by user to options.
func pathFlags(cmd *cobra.Command) []config.Option {
	var res []config.Option
	if s, ok := changedString(cmd, "data-dir"); ok {
		res = append(res, config.OptDataDir(s))
	}
	if s, ok := changedString(cmd, "project"); ok {
		res = append(res, config.OptProject(s))
	}
	if s, ok := changedString(cmd, "release"); ok {
		res = append(res, config.OptVersion(s))
	}
	return res
}

// commandFlags converts command flags that were set by user to options.
// Flags the command does not have are ignored.
func commandFlags(cmd *cobra.Command) []config.Option {
	var res []config.Option
	fs := cmd.Flags()
	if fs.Changed("force") {
		b, _ := fs.GetBool("force")
		res = append(res, config.OptForce(b))
	}
	if fs.Changed("progress") {
		b, _ := fs.GetBool("progress")
		res = append(res, config.OptWithProgress(b))
	}
	if fs.Changed("jobs") {
		i, _ := fs.GetInt("jobs")
		res = append(res, config.OptJobsNumber(i))
	}
	if fs.Changed("split-year") {
		i, _ := fs.GetInt("split-year")
		res = append(res, config.OptSplitYear(i))
	}
	if fs.Changed("no-sqlite") {
		b, _ := fs.GetBool("no-sqlite")
		res = append(res, config.OptOutputSQLite(!b))
	}
	return res
}

func changedString(cmd *cobra.Command, name string) (string, bool) {
	f := cmd.Flags().Lookup(name)
	if f == nil || !f.Changed {
		return "", false
	}
	return f.Value.String(), true
}
