package nodes

import (
	"fmt"
	"strconv"
	"strings"
)

// The host sends node inputs as strings or JSON numbers. Empty values select
// the fallback.

func stringInput(inputs map[string]interface{}, name, fallback string) string {
	switch v := inputs[name].(type) {
	case string:
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	case fmt.Stringer:
		return v.String()
	}
	return fallback
}

func floatInput(inputs map[string]interface{}, name string) (*float64, error) {
	switch v := inputs[name].(type) {
	case nil:
		return nil, nil
	case float64:
		return &v, nil
	case float32:
		f := float64(v)
		return &f, nil
	case int:
		f := float64(v)
		return &f, nil
	case int64:
		f := float64(v)
		return &f, nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("input %s: %q is not a number", name, v)
		}
		return &f, nil
	default:
		return nil, fmt.Errorf("input %s: unsupported type %T", name, v)
	}
}

func intInput(inputs map[string]interface{}, name string) (*int, error) {
	f, err := floatInput(inputs, name)
	if err != nil || f == nil {
		return nil, err
	}
	i := int(*f)
	return &i, nil
}
