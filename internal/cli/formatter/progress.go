package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderCapacity renders how much of a limit is used, like [████░░░░] 7/20.
// The bar turns yellow past half and red once the limit is reached.
func RenderCapacity(used, limit, width int) string {
	if limit <= 0 {
		limit = 1
	}
	used = min(max(used, 0), limit)
	if width < 2 {
		width = 2
	}

	filled := used * width / limit
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case used >= limit:
		style = StyleRed
	case used*2 > limit:
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %d/%d", style.Render(bar), used, limit)
}
