package main

import "github.com/rxtech-lab/argo-indicators/internal/types"

// BarsLoadedMsg carries the enriched bars after a successful load.
type BarsLoadedMsg struct {
	Enriched []types.EnrichedBar
}

// LoadErrorMsg indicates an error while loading or enriching bars.
type LoadErrorMsg struct {
	Err error
}
