package cli

import (
	"fmt"

	"atsgrader/internal/ats"
	"atsgrader/internal/common"
	"atsgrader/internal/resume"
	"atsgrader/internal/types"

	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match [resume-file] [job-description-file]",
	Short: "Match a resume against a job description",
	Long: `Match a structured resume document (JSON) against a job description.
Keywords are extracted from the job description, classified as skills,
experience, qualifications or soft skills, and checked against the resume
text. The output lists matched and missing keywords with placement
suggestions for the gaps.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if matchConfig.OutputFormat == "" {
			matchConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(matchConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runMatch,
}

var matchConfig common.CommandConfig

func init() {
	matchCmd.Flags().StringVarP(&matchConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	matchCmd.Flags().StringVar(&matchConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	registerFormatCompletion(matchCmd)
}

// matchInput carries the raw resume JSON and the job description text.
type matchInput struct {
	resumeJSON     string
	jobDescription string
}

func runMatch(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	createInput := func(contents []string) (matchInput, error) {
		if len(contents) != 2 {
			return matchInput{}, fmt.Errorf("expected 2 file paths, got %d", len(contents))
		}
		return matchInput{
			resumeJSON:     contents[0],
			jobDescription: contents[1],
		}, nil
	}

	logDetails := func(input matchInput, cfg common.CommandConfig) {
		logger.Info("Starting job description matching",
			"resume_chars", len(input.resumeJSON),
			"job_chars", len(input.jobDescription),
			"output_format", cfg.OutputFormat)
	}

	matchOperation := func(input matchInput) (types.JDAnalysis, error) {
		doc, err := resume.Parse([]byte(input.resumeJSON))
		if err != nil {
			return types.JDAnalysis{}, err
		}
		analysis, err := ats.MatchJobDescription(input.jobDescription, doc.FullText())
		if err != nil {
			return types.JDAnalysis{}, err
		}
		return *analysis, nil
	}

	err := common.RunEngineCommand(
		logger,
		matchConfig,
		args,
		createInput,
		matchOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to match job description: %w", err)
	}
	logger.Info("Job description matching completed successfully")
	return nil
}
