package ranking

import (
	"github.com/jonathan/achievement-blocks/internal/catalog"
	"github.com/jonathan/achievement-blocks/internal/types"
)

// RankCatalog ranks the catalog blocks that pass the request's filters.
// Filter errors are returned as is, e.g. catalog.InvalidArgumentError.
func RankCatalog(c *catalog.Catalog, req types.RankRequest) (*types.RankedBlocks, error) {
	candidates := c.Blocks()
	if req.Filters != nil && !req.Filters.IsEmpty() {
		found, err := c.Search(*req.Filters)
		if err != nil {
			return nil, err
		}
		candidates = found
	}
	return Rank(candidates, req.JobTarget), nil
}

// SelectFromCatalog ranks the catalog and keeps the top blocks the request allows
func SelectFromCatalog(c *catalog.Catalog, req types.RankRequest) (*types.RankedBlocks, error) {
	ranked, err := RankCatalog(c, req)
	if err != nil {
		return nil, err
	}
	return Select(ranked, req.MaxBlocks, req.MinScore), nil
}
