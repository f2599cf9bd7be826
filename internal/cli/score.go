package cli

import (
	"fmt"

	"atsgrader/internal/ats"
	"atsgrader/internal/common"
	"atsgrader/internal/resume"
	"atsgrader/internal/types"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score [resume-file] [job-description-file]",
	Short: "Score a resume against ATS criteria",
	Long: `Score a structured resume document (JSON) against ATS criteria.
The first argument is the path to the resume JSON file. An optional second
argument supplies a job description text file; with it the keywords
sub-score is computed from classified keyword matches, without it the
composite is reweighted over the remaining signals.

Use --previous-score to get delta feedback against an earlier pass of the
same document.`,
	Args: cobra.RangeArgs(1, 2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if scoreConfig.OutputFormat == "" {
			scoreConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(scoreConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runScore,
}

var (
	scoreConfig        common.CommandConfig
	scorePreviousScore int
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	scoreCmd.Flags().IntVar(&scorePreviousScore, "previous-score", -1, "Composite score of the previous pass, for delta feedback")

	registerFormatCompletion(scoreCmd)
}

// scoreInput carries the raw resume JSON and the optional job description text.
type scoreInput struct {
	resumeJSON     string
	jobDescription string
}

func runScore(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	createInput := func(contents []string) (scoreInput, error) {
		input := scoreInput{resumeJSON: contents[0]}
		if len(contents) > 1 {
			input.jobDescription = contents[1]
		}
		return input, nil
	}

	logDetails := func(input scoreInput, cfg common.CommandConfig) {
		logger.Info("Starting resume scoring",
			"resume_chars", len(input.resumeJSON),
			"job_chars", len(input.jobDescription),
			"output_format", cfg.OutputFormat)
	}

	scoreOperation := func(input scoreInput) (types.ScoreReport, error) {
		doc, err := resume.Parse([]byte(input.resumeJSON))
		if err != nil {
			return types.ScoreReport{}, err
		}

		var jd *types.JDAnalysis
		if input.jobDescription != "" {
			jd, err = ats.MatchJobDescription(input.jobDescription, doc.FullText())
			if err != nil {
				return types.ScoreReport{}, err
			}
		}

		report := ats.Evaluate(doc, jd)

		if scorePreviousScore >= 0 {
			var tracker ats.ScoreTracker
			tracker.Observe(scorePreviousScore)
			report.Feedback = tracker.Observe(report.Score)
		}

		return report, nil
	}

	err := common.RunEngineCommand(
		logger,
		scoreConfig,
		args,
		createInput,
		scoreOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to score resume: %w", err)
	}
	logger.Info("Resume scoring completed successfully")
	return nil
}
