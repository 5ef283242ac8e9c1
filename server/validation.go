// SPDX-License-Identifier: MIT

package server

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// graphNamePattern restricts stored graph names to URL- and file-safe tokens.
var graphNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// graphRef is the validated form of the {name} path parameter.
type graphRef struct {
	Name string `json:"name" validate:"required,max=128,graphname"`
}

// newValidator returns a validator that reports JSON field names and knows "graphname".
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("graphname", func(fl validator.FieldLevel) bool {
		return graphNamePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("server: register graphname: %v", err))
	}

	return v
}

// describe flattens validation errors into one message.
func describe(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: failed %s", fe.Field(), fe.Tag()))
	}

	return strings.Join(parts, "; ")
}
