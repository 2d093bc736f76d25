package daycount

import (
	"fmt"
	"sort"
	"strings"
)

// UnknownConventionError reports a day-count name or value outside the
// supported set.
type UnknownConventionError struct {
	Name string
}

func (e *UnknownConventionError) Error() string {
	return fmt.Sprintf("unknown day count convention %q", e.Name)
}

// aliases maps upper-cased market names onto a Basis.
var aliases = map[string]Basis{
	"ACT_365":        Act365,
	"ACT/365":        Act365,
	"ACT/365F":       Act365,
	"ACT/365 FIXED":  Act365,
	"ACT_360":        Act360,
	"ACT/360":        Act360,
	"CONV_30_360":    Conv30360,
	"30/360":         Conv30360,
	"30/360 US":      Conv30360,
	"BOND":           Conv30360,
	"CONV_360E_ISDA": Conv360EISDA,
	"30E/360 ISDA":   Conv360EISDA,
	"CONV_360E_ISMA": Conv360EISMA,
	"30E/360":        Conv360EISMA,
	"30E/360 ISMA":   Conv360EISMA,
	"EUROBOND":       Conv360EISMA,
}

// Resolve maps a convention name to its Basis. Matching ignores case and
// surrounding spaces.
func Resolve(name string) (Basis, error) {
	if b, ok := aliases[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return b, nil
	}
	return 0, &UnknownConventionError{Name: name}
}

// Names lists the canonical convention names in sorted order.
func Names() []string {
	out := make([]string, 0, len(basisNames))
	for _, n := range basisNames {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
