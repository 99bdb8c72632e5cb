package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	skillsInput string
	maxFileSize int64
	verbose     bool
	outPath     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ats",
		Short: "Score resumes against a skill list and compose resume/cover letter HTML",
	}

	scoreCmd := &cobra.Command{
		Use:   "score [files...]",
		Short: "Score local .txt, .pdf, .html or .docx resumes",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runScore,
	}
	scoreCmd.Flags().StringVarP(&skillsInput, "skills", "s", "Python, SQL, Machine Learning", "comma separated required skills")
	scoreCmd.Flags().Int64Var(&maxFileSize, "max-size", 10485760, "skip files larger than this many bytes")
	scoreCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show matched and missing skills")

	composeCmd := &cobra.Command{
		Use:   "compose",
		Short: "Write the combined resume and cover letter HTML",
		RunE:  runCompose,
	}
	composeCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default AI_Resume_Cover_Letter.html)")
	registerFieldFlags(composeCmd)

	rootCmd.AddCommand(scoreCmd, composeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
