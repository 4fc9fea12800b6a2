package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BindingFields extracts the JSON field names behind a request binding error
// so the response can name what was missing or mistyped. obj is the struct
// (or pointer to it) the payload was bound into.
func BindingFields(obj interface{}, err error) []string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		t := reflect.TypeOf(obj)
		if t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			name := fe.StructField()
			if f, ok := t.FieldByName(fe.StructField()); ok {
				tag := strings.Split(f.Tag.Get("json"), ",")[0]
				if tag != "" && tag != "-" {
					name = tag
				}
			}
			fields = append(fields, name)
		}
		return fields
	}

	var terr *json.UnmarshalTypeError
	if errors.As(err, &terr) && terr.Field != "" {
		return []string{terr.Field}
	}

	return nil
}

// ParsePageParam parses a pagination query parameter. An absent value yields
// def; values below min are rejected.
func ParsePageParam(raw string, def, min int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", raw)
	}
	if n < min {
		return 0, fmt.Errorf("must be at least %d, got %d", min, n)
	}
	return n, nil
}
