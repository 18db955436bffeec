package ranking

import "github.com/jonathan/achievement-blocks/internal/types"

// DefaultMaxBlocks is the selection size used when the caller does not give one
const DefaultMaxBlocks = 10

// Select keeps the leading ranked blocks whose score reaches minScore, up to maxBlocks.
// A maxBlocks of zero or less selects DefaultMaxBlocks. Ranked order is preserved.
func Select(ranked *types.RankedBlocks, maxBlocks int, minScore float64) *types.RankedBlocks {
	if maxBlocks <= 0 {
		maxBlocks = DefaultMaxBlocks
	}
	selected := make([]types.RankedBlock, 0, maxBlocks)
	if ranked == nil {
		return &types.RankedBlocks{Ranked: selected}
	}
	for _, rb := range ranked.Ranked {
		if len(selected) == maxBlocks {
			break
		}
		if rb.Score < minScore {
			// ranked input is sorted, nothing after this can qualify
			break
		}
		selected = append(selected, rb)
	}
	return &types.RankedBlocks{Ranked: selected}
}
