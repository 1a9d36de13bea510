package schema

import "strings"

// ContactFields are the fields the contact message policy reports on.
var ContactFields = []string{"name", "email", "phone"}

// Policy turns a validation failure into the message sent with the 400.
type Policy func(f *Failure) string

// Raw reports the failure's own message.
func Raw() Policy {
	return func(f *Failure) string {
		return f.Message
	}
}

// Fixed reports the same message for every failure.
func Fixed(message string) Policy {
	return func(*Failure) string {
		return message
	}
}

// EnumerateFields reports which of fields are missing or not strings in the
// submitted body, regardless of which rule actually failed.
func EnumerateFields(fields ...string) Policy {
	return func(f *Failure) string {
		return DescribeRequiredFields(f.Original, fields...)
	}
}

// DescribeRequiredFields lists the fields of body that are missing and those
// that are present but not strings. A falsy value (absent, null, "", false, 0)
// counts as missing.
//
// The output format is relied upon by clients, spacing included:
//
//	missing required fields - name, phone  /  non-string fields - email
//
// When nothing is missing or mistyped the result is
// "all required fields are filled". This still goes out as a 400 when another
// rule failed, e.g. a favorite that is not a boolean.
func DescribeRequiredFields(body map[string]any, fields ...string) string {
	var missing, nonString []string

	for _, name := range fields {
		v := body[name]
		switch {
		case isFalsy(v):
			missing = append(missing, name)
		default:
			if _, ok := v.(string); !ok {
				nonString = append(nonString, name)
			}
		}
	}

	if len(missing) == 0 && len(nonString) == 0 {
		return "all required fields are filled"
	}

	var b strings.Builder
	if len(missing) > 0 {
		b.WriteString("missing required fields - ")
		b.WriteString(strings.Join(missing, ", "))
		b.WriteString("  /")
	}
	if len(nonString) > 0 {
		b.WriteString("  non-string fields - ")
		b.WriteString(strings.Join(nonString, ", "))
	}
	return b.String()
}

func isFalsy(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case float64:
		return val == 0
	}
	return false
}
