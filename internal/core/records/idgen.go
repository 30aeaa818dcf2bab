package records

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	employeeIDPrefix = "EMP-"
	// maxEmployeeSequence を超える連番はインポートされた外部 ID とみなし、採番の基準にしません。
	maxEmployeeSequence = 999_999_999
)

// nextEmployeeID は EMP- に 3 桁ゼロ埋めの連番を付けた ID を返します。
// 連番は既存 ID の最大値と件数の大きい方に続くため、インポート後も既存 ID と衝突しません。
func nextEmployeeID(c Collection) string {
	taken := make(map[string]struct{}, len(c))
	highest := len(c)
	for _, e := range c {
		taken[e.ID] = struct{}{}
		if n, ok := employeeSequence(e.ID); ok && n > highest {
			highest = n
		}
	}

	for n := highest + 1; ; n++ {
		id := fmt.Sprintf("%s%03d", employeeIDPrefix, n)
		if _, exists := taken[id]; !exists {
			return id
		}
	}
}

func employeeSequence(id string) (int, bool) {
	digits, ok := strings.CutPrefix(id, employeeIDPrefix)
	if !ok || digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 || n > maxEmployeeSequence {
		return 0, false
	}
	return n, true
}
