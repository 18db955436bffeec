package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/achievement-blocks/internal/observability"
	"github.com/jonathan/achievement-blocks/internal/ranking"
	"github.com/jonathan/achievement-blocks/internal/types"
)

// rankedSchema validates ranking exports
const rankedSchema = "ranked_blocks.schema.json"

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank blocks against a job target",
	Long: "Scores every block against job requirements, required skills and a preferred role, then keeps the " +
		"best blocks for a CV. The target can be given with flags or as a JSON file; flags extend the file.",
	RunE: runRank,
}

var (
	rankTargetFile   string
	rankRequirements []string
	rankSkills       []string
	rankRole         string
	rankCategory     string
	rankStrength     string
	rankMaxBlocks    int
	rankMinScore     float64
	rankAll          bool
	rankJSON         bool
)

func init() {
	rankCmd.Flags().StringVar(&rankTargetFile, "target", "", "JSON file with job_requirements, required_skills, preferred_role")
	rankCmd.Flags().StringArrayVarP(&rankRequirements, "requirement", "r", nil, "Job requirement phrase (repeatable)")
	rankCmd.Flags().StringSliceVarP(&rankSkills, "skill", "s", nil, "Required skill; repeat or comma separate")
	rankCmd.Flags().StringVar(&rankRole, "role", "", "Preferred role type")
	rankCmd.Flags().StringVar(&rankCategory, "category", "", "Only rank blocks whose category contains this text")
	rankCmd.Flags().StringVar(&rankStrength, "strength", "", "Only rank blocks with at least this strength")
	rankCmd.Flags().IntVar(&rankMaxBlocks, "max-blocks", 0, "Blocks to keep (default from config)")
	rankCmd.Flags().Float64Var(&rankMinScore, "min-score", 0, "Drop blocks scoring below this")
	rankCmd.Flags().BoolVar(&rankAll, "all", false, "Return the full ranking instead of the selection")
	rankCmd.Flags().BoolVar(&rankJSON, "json", false, "Print JSON instead of a report")

	rootCmd.AddCommand(rankCmd)
}

// buildRankRequest combines the target file with the flags
func buildRankRequest() (types.RankRequest, error) {
	var req types.RankRequest
	if rankTargetFile != "" {
		data, err := os.ReadFile(rankTargetFile)
		if err != nil {
			return req, fmt.Errorf("failed to read target file: %w", err)
		}
		if err := json.Unmarshal(data, &req); err != nil {
			return req, fmt.Errorf("failed to parse target file: %w", err)
		}
	}

	req.Requirements = append(req.Requirements, rankRequirements...)
	req.RequiredSkills = append(req.RequiredSkills, rankSkills...)
	if rankRole != "" {
		req.PreferredRole = rankRole
	}
	if rankCategory != "" || rankStrength != "" {
		if req.Filters == nil {
			req.Filters = &types.SearchFilters{}
		}
		if rankCategory != "" {
			req.Filters.Category = rankCategory
		}
		if rankStrength != "" {
			req.Filters.StrengthLevel = rankStrength
		}
	}
	if rankMaxBlocks != 0 {
		req.MaxBlocks = rankMaxBlocks
	}
	if req.MaxBlocks == 0 {
		req.MaxBlocks = settings.MaxBlocks
	}
	if rankMinScore != 0 {
		req.MinScore = rankMinScore
	}

	if err := req.Validate(); err != nil {
		return req, fmt.Errorf("invalid rank request: %w", err)
	}
	if req.Filters != nil {
		if err := req.Filters.Validate(); err != nil {
			return req, fmt.Errorf("invalid filters: %w", err)
		}
	}
	return req, nil
}

func runRank(cmd *cobra.Command, _ []string) error {
	req, err := buildRankRequest()
	if err != nil {
		return err
	}
	if len(types.NonBlank(req.Requirements)) == 0 && len(types.NonBlank(req.RequiredSkills)) == 0 && strings.TrimSpace(req.PreferredRole) == "" {
		log.Warn("empty job target, blocks are ranked by strength only")
	}

	c, err := loadCatalog()
	if err != nil {
		return err
	}

	var ranked *types.RankedBlocks
	if rankAll {
		ranked, err = ranking.RankCatalog(c, req)
	} else {
		ranked, err = ranking.SelectFromCatalog(c, req)
	}
	if err != nil {
		return err
	}
	log.Debug("blocks ranked", zap.Int("ranked", len(ranked.Ranked)), zap.Int("catalog", c.Len()))

	out := cmd.OutOrStdout()
	if rankJSON {
		return writeJSON(out, rankedSchema, ranked)
	}

	observability.NewPrinter(out).PrintRankedBlocks(ranked, len(ranked.Ranked))
	if missing := ranking.Uncovered(ranking.CoverageMatrix(ranked.Ranked, req.JobTarget)); len(missing) > 0 {
		_, _ = fmt.Fprintf(out, "Uncovered requirements: %s\n", strings.Join(missing, "; "))
	}
	return nil
}
