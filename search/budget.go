package search

import (
	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"
)

// bytesPerExpansion is a rough figure for what one expansion costs: the
// closed-set key, a parent map entry, and the few frontier entries it
// pushes.
const bytesPerExpansion = 512

// BudgetFromMemory returns an expansion cap that keeps the search within
// roughly fractionOfMemory of the machine's RAM. It returns 0 (no cap) if
// the fraction is not positive or the total memory is unknown.
func BudgetFromMemory(fractionOfMemory float64) int {
	if fractionOfMemory <= 0 {
		return 0
	}
	totalMem := memory.TotalMemory()
	if totalMem == 0 {
		return 0
	}
	budget := int(fractionOfMemory * float64(totalMem) / bytesPerExpansion)
	log.Debug().Uint64("total-mem", totalMem).Int("budget", budget).Msg("expansion-budget")
	return budget
}
