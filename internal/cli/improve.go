package cli

import (
	"context"
	"fmt"

	"atsgrader/internal/ai"
	"atsgrader/internal/common"
	"atsgrader/internal/types"

	"github.com/spf13/cobra"
)

var improveCmd = &cobra.Command{
	Use:   "improve [text-file]",
	Short: "Improve a resume section with AI",
	Long: `Rewrite a resume bullet or summary using AI. The argument is the
path to a plain text file containing the text to improve. Use --section to
tell the model which resume section the text belongs to, and --instruction
for a free-form steering hint.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if improveConfig.OutputFormat == "" {
			improveConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(improveConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runImprove,
}

var (
	improveConfig      common.CommandConfig
	improveSection     string
	improveInstruction string
)

func init() {
	improveCmd.Flags().StringVarP(&improveConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	improveCmd.Flags().StringVar(&improveConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	improveCmd.Flags().StringVar(&improveSection, "section", "experience", "Resume section the text belongs to (summary, experience, skills, ...)")
	improveCmd.Flags().StringVar(&improveInstruction, "instruction", "", "Free-form instruction for the rewrite")

	registerFormatCompletion(improveCmd)
}

func runImprove(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	// Create AI service for the improve operation
	improveAIConfig := cfg.GetImproveConfig()
	aiService, err := ai.NewService(&improveAIConfig, "improve", logger)
	if err != nil {
		return fmt.Errorf("failed to create AI service: %w", err)
	}

	createInput := func(contents []string) (types.ImproveTextInput, error) {
		if len(contents) != 1 {
			return types.ImproveTextInput{}, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return types.ImproveTextInput{
			Text:        contents[0],
			Section:     improveSection,
			Instruction: improveInstruction,
		}, nil
	}

	logDetails := func(input types.ImproveTextInput, cfg common.CommandConfig) {
		logger.Info("Starting text improvement",
			"text_chars", len(input.Text),
			"section", input.Section,
			"output_format", cfg.OutputFormat)
	}

	improveOperation := func(ctx context.Context, input types.ImproveTextInput) (types.ImproveTextOutput, *ai.TokenUsage, error) {
		return aiService.Provider.ImproveText(ctx, input)
	}

	err = common.RunAICommand(
		cmd.Context(),
		logger,
		improveConfig,
		args,
		createInput,
		improveOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to improve text: %w", err)
	}
	logger.Info("Text improvement completed successfully")
	return nil
}
