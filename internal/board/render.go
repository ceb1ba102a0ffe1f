package board

import (
	"strings"

	"hanoi/internal/core"
)

const (
	RowPrefix  = "# "
	DiskFiller = 'o'
)

// FieldWidth is the width of one peg column for a given height
func FieldWidth(height int) int {
	return height + 2
}

// Render draws rows height..0 followed by the peg label footer.
// A field holds DiskFiller repeated disk times padded to FieldWidth, or only spaces.
func Render(pegs [core.PegCount][]int, height int) []string {
	width := FieldWidth(height)
	lines := make([]string, 0, height+2)

	for row := height; row >= 0; row-- {
		var sb strings.Builder
		sb.WriteString(RowPrefix)
		for _, peg := range pegs {
			sb.WriteString(field(peg, row, width))
		}
		lines = append(lines, sb.String())
	}

	return append(lines, Footer(height))
}

// Footer labels the pegs 1, 2 and 3 with height+1 spaces after each label
func Footer(height int) string {
	pad := strings.Repeat(" ", height+1)
	var sb strings.Builder
	sb.WriteString(RowPrefix)
	for i := 1; i <= core.PegCount; i++ {
		sb.WriteString(core.PegID(i).String())
		sb.WriteString(pad)
	}
	return sb.String()
}

// Join concatenates rendered lines into one block without a trailing newline
func Join(lines []string) string {
	return strings.Join(lines, "\n")
}

func field(peg []int, row, width int) string {
	if row >= len(peg) {
		return strings.Repeat(" ", width)
	}
	disk := peg[row]
	return strings.Repeat(string(DiskFiller), disk) + strings.Repeat(" ", width-disk)
}
