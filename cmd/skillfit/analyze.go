package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillfit/internal/config"
	"github.com/jonathan/skillfit/internal/extraction"
	"github.com/jonathan/skillfit/internal/llm"
	"github.com/jonathan/skillfit/internal/observability"
	"github.com/jonathan/skillfit/internal/report"
	"github.com/jonathan/skillfit/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the skill gap between a resume and a job description",
	Long: `Extract skills from a resume and a job description, match them against each
other across the skill taxonomy, and produce a fit score with recommendations.

Inputs are either raw text files (--resume/--job, requires a Gemini API key
for extraction) or pre-extracted skill JSON files (--resume-skills/--jd-skills).

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runAnalyze,
}

var (
	analyzeConfigPath   string
	analyzeResume       string
	analyzeJob          string
	analyzeResumeSkills string
	analyzeJDSkills     string
	analyzeOutput       string
	analyzeAPIKey       string
	analyzeTechWeight   float64
	analyzeSoftWeight   float64
	analyzeVerbose      bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume text file (mutually exclusive with --resume-skills)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description text file (mutually exclusive with --jd-skills)")
	analyzeCmd.Flags().StringVar(&analyzeResumeSkills, "resume-skills", "", "Path to pre-extracted resume skills JSON")
	analyzeCmd.Flags().StringVar(&analyzeJDSkills, "jd-skills", "", "Path to pre-extracted job description skills JSON")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Write the report JSON to this file instead of stdout")
	analyzeCmd.Flags().Float64Var(&analyzeTechWeight, "technical-weight", 0, "Weight for the technical sub-score (default 0.7)")
	analyzeCmd.Flags().Float64Var(&analyzeSoftWeight, "soft-skills-weight", 0, "Weight for the soft skills sub-score (default 0.3)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

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
	}

	if cmd.Flags().Changed("resume") {
		cfg.Resume = analyzeResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = analyzeJob
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("technical-weight") {
		cfg.TechnicalWeight = analyzeTechWeight
	}
	if cmd.Flags().Changed("soft-skills-weight") {
		cfg.SoftSkillsWeight = analyzeSoftWeight
	}
	if analyzeVerbose {
		cfg.Verbose = true
	}

	if cfg.Resume != "" && analyzeResumeSkills != "" {
		return fmt.Errorf("--resume and --resume-skills are mutually exclusive")
	}
	if cfg.Job != "" && analyzeJDSkills != "" {
		return fmt.Errorf("--job and --jd-skills are mutually exclusive")
	}
	if cfg.Resume == "" && analyzeResumeSkills == "" {
		return fmt.Errorf("one of --resume or --resume-skills is required")
	}
	if cfg.Job == "" && analyzeJDSkills == "" {
		return fmt.Errorf("one of --job or --jd-skills is required")
	}

	printer := observability.NewPrinter(os.Stderr)

	resumeSkills, jdSkills, err := loadSkillInputs(ctx, &cfg)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer.PrintExtraction("resume", resumeSkills)
		printer.PrintExtraction("job description", jdSkills)
	}

	weights := resolveWeights(cfg,
		cmd.Flags().Changed("technical-weight"),
		cmd.Flags().Changed("soft-skills-weight"))

	rpt := report.Build(resumeSkills, jdSkills, weights)

	if cfg.Verbose {
		printer.PrintReport(rpt)
	}

	data, err := json.MarshalIndent(rpt, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if analyzeOutput != "" {
		if err := os.WriteFile(analyzeOutput, append(data, '\n'), 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Printf("Report written to %s\n", analyzeOutput)
		return nil
	}

	fmt.Println(string(data))
	return nil
}

// resolveWeights builds the score weight overrides. A weight counts as set
// when its flag was passed explicitly, even as zero, or when the config file
// carries a positive value (zero in the file means unset).
func resolveWeights(cfg config.Config, techSet, softSet bool) map[string]float64 {
	weights := map[string]float64{}
	if techSet || cfg.TechnicalWeight > 0 {
		weights["technical"] = cfg.TechnicalWeight
	}
	if softSet || cfg.SoftSkillsWeight > 0 {
		weights["soft_skills"] = cfg.SoftSkillsWeight
	}
	return weights
}

// loadSkillInputs resolves both analysis sides, running extraction for raw
// text inputs and decoding pre-extracted JSON otherwise.
func loadSkillInputs(ctx context.Context, cfg *config.Config) (*types.SkillExtractionResult, *types.SkillExtractionResult, error) {
	// Pre-extracted only: no LLM client needed
	if cfg.Resume == "" && cfg.Job == "" {
		resumeSkills, err := readSkillsFile(analyzeResumeSkills)
		if err != nil {
			return nil, nil, err
		}
		jdSkills, err := readSkillsFile(analyzeJDSkills)
		if err != nil {
			return nil, nil, err
		}
		return resumeSkills, jdSkills, nil
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, nil, fmt.Errorf("an API key is required for text extraction: pass --api-key or set GEMINI_API_KEY")
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	extractor := extraction.NewExtractor(client)

	// Both sides raw text: extract concurrently
	if cfg.Resume != "" && cfg.Job != "" {
		resumeText, err := readTextFile(cfg.Resume)
		if err != nil {
			return nil, nil, err
		}
		jdText, err := readTextFile(cfg.Job)
		if err != nil {
			return nil, nil, err
		}
		return extractor.ExtractPair(ctx, resumeText, jdText)
	}

	// Mixed inputs
	var resumeSkills, jdSkills *types.SkillExtractionResult
	if cfg.Resume != "" {
		text, err := readTextFile(cfg.Resume)
		if err != nil {
			return nil, nil, err
		}
		resumeSkills, err = extractor.Extract(ctx, text, extraction.SourceResume)
		if err != nil {
			return nil, nil, err
		}
	} else {
		resumeSkills, err = readSkillsFile(analyzeResumeSkills)
		if err != nil {
			return nil, nil, err
		}
	}

	if cfg.Job != "" {
		text, err := readTextFile(cfg.Job)
		if err != nil {
			return nil, nil, err
		}
		jdSkills, err = extractor.Extract(ctx, text, extraction.SourceJobDescription)
		if err != nil {
			return nil, nil, err
		}
	} else {
		jdSkills, err = readSkillsFile(analyzeJDSkills)
		if err != nil {
			return nil, nil, err
		}
	}

	return resumeSkills, jdSkills, nil
}

func readTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

func readSkillsFile(path string) (*types.SkillExtractionResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var result types.SkillExtractionResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse skills JSON %s: %w", path, err)
	}
	return &result, nil
}
