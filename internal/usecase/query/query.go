package query

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/skyfare/internal/domain"
)

// Result is the outcome of one JSONPath expression.
type Result struct {
	Expr  string
	Value string
	OK    bool
	Error string
}

// Apply evaluates JSONPath expressions against a stored quote artifact.
// A document that is not JSON is an error; a failing expression is reported
// in its Result and the remaining expressions still run.
func Apply(doc []byte, exprs []string) ([]Result, error) {
	var v any
	if err := json.Unmarshal(doc, &v); err != nil {
		return nil, &domain.OpError{
			Op:   "query.parse",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	out := make([]Result, 0, len(exprs))
	for _, raw := range exprs {
		expr := strings.TrimSpace(raw)
		r := Result{Expr: expr}

		switch val, err := jsonpath.Get(expr, v); {
		case expr == "":
			r.Error = "empty jsonpath expression"
		case err != nil:
			r.Error = fmt.Sprintf("jsonpath error: %v", err)
		case isEmpty(val):
			r.Error = "no value found"
		default:
			s, convErr := toString(val)
			if convErr != nil {
				r.Error = convErr.Error()
				break
			}
			r.Value = s
			r.OK = true
		}

		out = append(out, r)
	}
	return out, nil
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func toString(v any) (string, error) {
	if arr, ok := v.([]any); ok && len(arr) == 1 {
		return toString(arr[0])
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case bool:
		return fmt.Sprint(t), nil
	case float64:
		return formatNumber(t), nil
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

// formatNumber prints integral JSON numbers without an exponent.
func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprint(f)
}
