package sdk

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-bexpr"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mitchellh/mapstructure"
)

// evaluatorCacheSize bounds the number of compiled filter expressions kept.
const evaluatorCacheSize = 64

var evaluatorCache, _ = lru.New[string, *bexpr.Evaluator](evaluatorCacheSize)

// conditionKeyRE matches the JSON field names of API records.
var conditionKeyRE = regexp.MustCompile(`^[a-z][a-z0-9_]{0,63}$`)

// Conditions maps record fields to the values they must equal.
type Conditions map[string]any

// Condition is a single field/value pair after sorting.
type Condition struct {
	Key   string
	Value any
}

// SortConditions returns conditions sorted lexicographically by key.
// Nil input results in an empty slice.
func SortConditions(conditions Conditions) []Condition {
	if len(conditions) == 0 {
		return []Condition{}
	}
	keys := make([]string, 0, len(conditions))
	for key := range conditions {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	sorted := make([]Condition, 0, len(keys))
	for _, key := range keys {
		sorted = append(sorted, Condition{Key: key, Value: conditions[key]})
	}
	return sorted
}

// BuildBexprFilter builds a bexpr AND filter from the provided conditions.
// Strings are quoted, booleans and numbers are emitted verbatim.
// When conditions is empty an empty string is returned.
func BuildBexprFilter(conditions Conditions) string {
	if len(conditions) == 0 {
		return ""
	}
	expressions := make([]string, 0, len(conditions))
	for _, cond := range SortConditions(conditions) {
		expressions = append(expressions, fmt.Sprintf("%s == %s", cond.Key, formatBexprValue(cond.Value)))
	}
	return strings.Join(expressions, " and ")
}

// CombineFilters joins non-empty expressions with "and".
func CombineFilters(exprs ...string) string {
	parts := make([]string, 0, len(exprs))
	for _, expr := range exprs {
		if expr = strings.TrimSpace(expr); expr != "" {
			parts = append(parts, expr)
		}
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	return "(" + strings.Join(parts, ") and (") + ")"
}

// ParseConditions parses key=value arguments. Values that look like booleans
// or numbers are typed accordingly. Repeated keys keep the last value and
// produce a warning.
func ParseConditions(args []string) (Conditions, []string, error) {
	conditions := Conditions{}
	warnings := []string{}

	for _, raw := range args {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		parts := strings.SplitN(raw, "=", 2)
		if len(parts) != 2 {
			return nil, nil, fmt.Errorf("invalid condition %q (expected key=value)", raw)
		}

		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		if key == "" {
			return nil, nil, fmt.Errorf("condition key cannot be empty (%q)", raw)
		}
		if !conditionKeyRE.MatchString(key) {
			return nil, nil, fmt.Errorf("condition key %q is not a field name", key)
		}

		if _, exists := conditions[key]; exists {
			warnings = append(warnings, fmt.Sprintf("duplicate condition %q detected, last value wins", key))
		}

		conditions[key] = inferValue(val)
	}

	return conditions, warnings, nil
}

// Filter returns the items matching expr. An empty expression matches all.
// Records are matched by their JSON field names. Items whose evaluation
// fails (for example a selector naming a missing field) do not match.
func Filter[T any](items []T, expr string) ([]T, error) {
	if strings.TrimSpace(expr) == "" {
		return items, nil
	}

	evaluator, err := compileFilter(expr)
	if err != nil {
		return nil, err
	}

	matched := make([]T, 0, len(items))
	for _, item := range items {
		fields, err := recordFields(item)
		if err != nil {
			return nil, err
		}
		ok, err := evaluator.Evaluate(fields)
		if err != nil || !ok {
			continue
		}
		matched = append(matched, item)
	}
	return matched, nil
}

func compileFilter(expr string) (*bexpr.Evaluator, error) {
	if cached, ok := evaluatorCache.Get(expr); ok {
		return cached, nil
	}
	evaluator, err := bexpr.CreateEvaluator(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", expr, err)
	}
	evaluatorCache.Add(expr, evaluator)
	return evaluator, nil
}

func recordFields(record any) (map[string]any, error) {
	fields := map[string]any{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &fields,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(record); err != nil {
		return nil, fmt.Errorf("failed to prepare %T for filtering: %w", record, err)
	}
	formatTimeFields(record, fields)
	return fields, nil
}

var timeType = reflect.TypeOf(time.Time{})

// formatTimeFields replaces time.Time fields, which mapstructure renders as
// empty maps, with RFC 3339 strings. A zero time becomes "".
func formatTimeFields(record any, fields map[string]any) {
	v := reflect.Indirect(reflect.ValueOf(record))
	if v.Kind() != reflect.Struct {
		return
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Type != timeType || !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		ts := v.Field(i).Interface().(time.Time)
		if ts.IsZero() {
			fields[name] = ""
			continue
		}
		fields[name] = ts.UTC().Format(time.RFC3339)
	}
}

func inferValue(raw string) any {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return float64(i)
	}

	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}

	switch strings.ToLower(raw) {
	case "true":
		return true
	case "false":
		return false
	}

	return raw
}

func formatBexprValue(value any) string {
	switch v := value.(type) {
	case string:
		return strconv.Quote(v)
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		if _, frac := math.Modf(v); frac == 0 {
			return strconv.FormatFloat(v, 'f', 0, 64)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return formatBexprValue(float64(v))
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", v)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v)
	default:
		return strconv.Quote(fmt.Sprintf("%v", value))
	}
}
