package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/careeriq/internal/advisory"
	"github.com/jonathan/careeriq/internal/config"
	"github.com/jonathan/careeriq/internal/embedding"
	"github.com/jonathan/careeriq/internal/extraction"
	"github.com/jonathan/careeriq/internal/llm"
	"github.com/jonathan/careeriq/internal/matcher"
	"github.com/jonathan/careeriq/internal/observability"
	"github.com/jonathan/careeriq/internal/types"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a job description",
	Long: `Runs the full analysis pipeline: skill extraction -> similarity scoring -> gap analysis -> suggestions -> roadmaps, with optional AI enrichment when provider keys are configured.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath    string
	analyzeResume        string
	analyzeJob           string
	analyzeOutput        string
	analyzeGeminiKey     string
	analyzeHFKey         string
	analyzeEmbeddingDims int
	analyzeDefaultRole   string
	analyzeVerbose       bool
)

func init() {
	// Config file flag (processed first)
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCommand.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume text file")
	analyzeCommand.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description text file")
	analyzeCommand.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Path to write the JSON report (default stdout)")
	analyzeCommand.Flags().IntVar(&analyzeEmbeddingDims, "embedding-dims", 0, "Hashed embedder vector size")
	analyzeCommand.Flags().StringVar(&analyzeDefaultRole, "default-role", "", "Role assumed when the job description matches no known role")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print formatted analysis boxes in addition to the JSON report")

	// API keys can be passed as flags, or read from env vars
	analyzeCommand.Flags().StringVar(&analyzeGeminiKey, "gemini-api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	analyzeCommand.Flags().StringVar(&analyzeHFKey, "hf-api-key", "", "Hugging Face API key (optional, defaults to HF_API_KEY env var)")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if analyzeVerbose {
			fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", analyzeConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("resume") {
		cfg.Resume = analyzeResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = analyzeJob
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = analyzeOutput
	}
	if cmd.Flags().Changed("embedding-dims") {
		cfg.EmbeddingDims = analyzeEmbeddingDims
	}
	if cmd.Flags().Changed("default-role") {
		cfg.DefaultRole = analyzeDefaultRole
	}
	if cmd.Flags().Changed("gemini-api-key") {
		cfg.GeminiAPIKey = analyzeGeminiKey
	}
	if cmd.Flags().Changed("hf-api-key") {
		cfg.HuggingFaceAPIKey = analyzeHFKey
	}
	if analyzeVerbose {
		cfg.Verbose = true
	}

	// Step 3: Fill remaining gaps from env and defaults
	cfg = cfg.MergeWithDefaults(config.Config{
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		HuggingFaceAPIKey: os.Getenv("HF_API_KEY"),
	})

	if cfg.Resume == "" {
		return fmt.Errorf("resume file is required (--resume or config)")
	}
	if cfg.Job == "" {
		return fmt.Errorf("job description file is required (--job or config)")
	}

	resumeText, err := os.ReadFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	jobText, err := os.ReadFile(cfg.Job)
	if err != nil {
		return fmt.Errorf("failed to read job description file: %w", err)
	}

	request := types.MatchRequest{
		ResumeText:     string(resumeText),
		JobDescription: string(jobText),
	}
	if err := request.Validate(); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}

	// Step 4: Build the pipeline
	client, err := llm.NewClientFromKeys(ctx, cfg.HuggingFaceAPIKey, cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to initialize LLM providers: %w", err)
	}
	if client != nil {
		defer func() { _ = client.Close() }()
	}

	scorer, err := embedding.NewSimilarityScorer(embedding.NewHashedEmbedder(cfg.EmbeddingDims))
	if err != nil {
		return fmt.Errorf("failed to initialize scorer: %w", err)
	}

	extractor := extraction.NewExtractor(extraction.DelimiterSegmenter{})
	orchestrator, err := matcher.NewOrchestrator(extractor, scorer, advisory.NewService(client), cfg.DefaultRole)
	if err != nil {
		return fmt.Errorf("failed to initialize orchestrator: %w", err)
	}

	// Step 5: Run the analysis
	report, err := orchestrator.Match(ctx, request.ResumeText, request.JobDescription)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintMatchSummary(report)
		printer.PrintGapReport(report.AdvancedAnalysis)
		printer.PrintSuggestions(report.SmartSuggestions)
		printer.PrintRoadmap(report.LearningRoadmap)
		printer.PrintRoleAnalysis(report.RoleAnalysis)
	}

	// Step 6: Emit the JSON report
	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if cfg.Output != "" {
		if err := os.WriteFile(cfg.Output, payload, 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Report written to: %s\n", cfg.Output)
		return nil
	}

	fmt.Fprintln(os.Stdout, string(payload))
	return nil
}
