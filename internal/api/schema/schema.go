package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Anastasia-front/contacts-api/internal/domain"
	"github.com/go-playground/validator/v10"
)

// ErrMalformedBody is returned for bodies that are not valid JSON.
var ErrMalformedBody = errors.New("invalid request body")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	if err := v.RegisterValidation("email_pattern", func(fl validator.FieldLevel) bool {
		return domain.EmailPattern.MatchString(fl.Field().String())
	}); err != nil {
		// ALLOW-PANIC
		panic(fmt.Sprintf("register email_pattern validation: %v", err))
	}
	return v
}

func jsonName(sf reflect.StructField) string {
	name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return sf.Name
	}
	return name
}

type field struct {
	name     string
	kind     reflect.Kind
	required bool
}

// Schema describes the accepted shape of one request body.
type Schema struct {
	name   string
	typ    reflect.Type
	fields []field
}

// Failure is the first rule a body broke.
type Failure struct {
	// Field is the offending key, empty when the body itself is rejected.
	Field string
	// Message is the rendered description of the failure.
	Message string
	// Original holds the body as decoded, or an empty map when the body is
	// not a JSON object.
	Original map[string]any
}

// For builds the Schema of request struct T. Only string and bool fields
// (or pointers to them) are supported.
func For[T any](name string) *Schema {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	s := &Schema{name: name, typ: typ}

	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		key := jsonName(sf)
		if key == "" || !sf.IsExported() {
			continue
		}

		ft := sf.Type
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if ft.Kind() != reflect.String && ft.Kind() != reflect.Bool {
			// ALLOW-PANIC
			panic(fmt.Sprintf("schema %s: unsupported field type %s for %q", name, sf.Type, key))
		}

		s.fields = append(s.fields, field{
			name:     key,
			kind:     ft.Kind(),
			required: hasRule(sf.Tag.Get("validate"), "required"),
		})
	}

	return s
}

func hasRule(tag, rule string) bool {
	for _, r := range strings.Split(tag, ",") {
		if r == rule {
			return true
		}
	}
	return false
}

// Name identifies the schema in logs.
func (s *Schema) Name() string {
	return s.name
}

// Validate checks body against the schema. It returns ErrMalformedBody for
// bodies that are not JSON, a Failure for the first broken rule, or (nil, nil)
// when the body is acceptable. An empty body is treated as {}.
func (s *Schema) Validate(body []byte) (*Failure, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}
	if !json.Valid(body) {
		return nil, ErrMalformedBody
	}

	keys, raw, ok := readObject(body)
	if !ok {
		return &Failure{Message: `"value" must be of type object`, Original: map[string]any{}}, nil
	}

	original := make(map[string]any, len(raw))
	for k, v := range raw {
		var decoded any
		_ = json.Unmarshal(v, &decoded)
		original[k] = decoded
	}

	fail := func(fieldName, msg string) *Failure {
		return &Failure{Field: fieldName, Message: msg, Original: original}
	}

	// Presence and type problems are found first; rule checks run on the
	// fields that survived them.
	shapeErrs := make(map[string]string)
	wellTyped := make(map[string]json.RawMessage)
	for _, f := range s.fields {
		v, present := raw[f.name]
		if !present {
			if f.required {
				shapeErrs[f.name] = fmt.Sprintf("%q is required", f.name)
			}
			continue
		}
		if msg := checkType(f, v); msg != "" {
			shapeErrs[f.name] = msg
			continue
		}
		wellTyped[f.name] = v
	}

	ruleErrs, err := s.checkRules(wellTyped)
	if err != nil {
		return nil, err
	}

	for _, f := range s.fields {
		if msg, ok := shapeErrs[f.name]; ok {
			return fail(f.name, msg), nil
		}
		if msg, ok := ruleErrs[f.name]; ok {
			return fail(f.name, msg), nil
		}
	}

	for _, k := range keys {
		if !s.has(k) {
			return fail(k, fmt.Sprintf("%q is not allowed", k)), nil
		}
	}

	return nil, nil
}

func (s *Schema) has(key string) bool {
	for _, f := range s.fields {
		if f.name == key {
			return true
		}
	}
	return false
}

func checkType(f field, v json.RawMessage) string {
	trimmed := bytes.TrimSpace(v)
	switch f.kind {
	case reflect.String:
		if len(trimmed) == 0 || trimmed[0] != '"' {
			return fmt.Sprintf("%q must be a string", f.name)
		}
		var str string
		if err := json.Unmarshal(trimmed, &str); err != nil {
			return fmt.Sprintf("%q must be a string", f.name)
		}
		if str == "" {
			return fmt.Sprintf("%q is not allowed to be empty", f.name)
		}
	case reflect.Bool:
		if string(trimmed) != "true" && string(trimmed) != "false" {
			return fmt.Sprintf("%q must be a boolean", f.name)
		}
	}
	return ""
}

// checkRules decodes the well-typed fields into the request struct and runs
// the validator tags. Presence is already handled, so "required" failures
// are ignored here.
func (s *Schema) checkRules(fields map[string]json.RawMessage) (map[string]string, error) {
	encoded, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("re-encode %s body: %w", s.name, err)
	}

	target := reflect.New(s.typ)
	if err := json.Unmarshal(encoded, target.Interface()); err != nil {
		return nil, fmt.Errorf("decode %s body: %w", s.name, err)
	}

	errs := make(map[string]string)
	err = validate.Struct(target.Interface())
	if err == nil {
		return errs, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, fmt.Errorf("validate %s body: %w", s.name, err)
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			continue
		}
		if _, seen := errs[fe.Field()]; !seen {
			errs[fe.Field()] = describe(fe)
		}
	}
	return errs, nil
}

func describe(fe validator.FieldError) string {
	name := fe.Field()
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%q length must be at least %s characters long", name, fe.Param())
	case "max":
		return fmt.Sprintf("%q length must be less than or equal to %s characters long", name, fe.Param())
	case "oneof":
		return fmt.Sprintf("%q must be one of [%s]", name, strings.Join(strings.Fields(fe.Param()), ", "))
	case "gte":
		return fmt.Sprintf("%q must be greater than or equal to %s", name, fe.Param())
	case "lte":
		return fmt.Sprintf("%q must be less than or equal to %s", name, fe.Param())
	case "email_pattern":
		return fmt.Sprintf("%q with value %q fails to match the required pattern: /%s/",
			name, fmt.Sprint(fe.Value()), domain.EmailPattern.String())
	default:
		return fmt.Sprintf("%q is invalid", name)
	}
}

// readObject returns the keys of a JSON object in body order along with their
// raw values. ok is false when body is not an object.
func readObject(body []byte) (keys []string, raw map[string]json.RawMessage, ok bool) {
	dec := json.NewDecoder(bytes.NewReader(body))
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, false
	}
	if d, isDelim := tok.(json.Delim); !isDelim || d != '{' {
		return nil, nil, false
	}

	raw = make(map[string]json.RawMessage)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, nil, false
		}
		key, _ := keyTok.(string)

		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return nil, nil, false
		}
		if _, dup := raw[key]; !dup {
			keys = append(keys, key)
		}
		raw[key] = v
	}
	return keys, raw, true
}
