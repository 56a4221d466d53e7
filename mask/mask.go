// Package mask hides sensitive struct fields before a value is printed or logged.
//
// Fields are marked with the `mask:"true"` struct tag:
//
//	type Credentials struct {
//	    AccessKeyID     string `yaml:"access_key_id"`
//	    SecretAccessKey string `yaml:"secret_access_key" mask:"true"`
//	}
package mask

import (
	"reflect"
	"strings"
)

const tagName = "mask"

// Struct returns a copy of v in which every field tagged `mask:"true"` is masked.
// Masked strings keep their length, other masked kinds are zeroed.
// Nested structs and pointers to structs are traversed. Values that are not
// structs are returned unchanged.
func Struct[T any](v T) T {
	val := reflect.ValueOf(v)
	if !val.IsValid() {
		return v
	}

	masked, ok := maskValue(val).Interface().(T)
	if !ok {
		return v
	}
	return masked
}

// String replaces every byte of s with an asterisk.
func String(s string) string {
	return strings.Repeat("*", len(s))
}

func maskValue(val reflect.Value) reflect.Value {
	switch val.Kind() { //nolint:exhaustive // only kinds that can hold tagged fields are traversed
	case reflect.Pointer:
		if val.IsNil() {
			return val
		}
		ptr := reflect.New(val.Elem().Type())
		ptr.Elem().Set(maskValue(val.Elem()))
		return ptr

	case reflect.Struct:
		out := reflect.New(val.Type()).Elem()
		typ := val.Type()
		for i := range val.NumField() {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}

			if shouldMask(field) {
				out.Field(i).Set(maskField(val.Field(i)))
			} else {
				out.Field(i).Set(maskValue(val.Field(i)))
			}
		}
		return out

	default:
		return val
	}
}

func maskField(val reflect.Value) reflect.Value {
	if val.Kind() == reflect.String {
		return reflect.ValueOf(String(val.String())).Convert(val.Type())
	}
	return reflect.Zero(val.Type())
}

func shouldMask(field reflect.StructField) bool {
	return strings.EqualFold(field.Tag.Get(tagName), "true")
}
