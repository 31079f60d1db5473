package lox

import "strconv"

// Runtime values are nil, bool, string and float64.

func stringify(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		// shortest representation, integral values carry no ".0"
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	}
	panic("Unreachable")
}

// isTruthy reports nil and false as falsy, everything else as truthy.
func isTruthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if v, ok := value.(bool); ok {
		return v
	}
	return true
}

// isEqual never fails. Values of different types are never equal.
func isEqual(lhs, rhs interface{}) bool {
	return lhs == rhs
}
