package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	themeerrors "github.com/geramireze/dynamic-theme-component/pkg/errors"
)

// ValidateManifest performs schema and cross-field validation on a manifest.
func ValidateManifest(m *Manifest) error {
	if m == nil {
		return themeerrors.NewValidationError("manifest", "manifest is nil", nil)
	}

	if err := validatorInstance().Struct(m); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(m.Themes))
	for i, entry := range m.Themes {
		key := strings.ToUpper(strings.TrimSpace(entry.ID))
		if first, dup := seen[key]; dup {
			return themeerrors.NewValidationError(
				fieldForTheme(i, "id"),
				fmt.Sprintf("duplicate theme id %q (first declared at themes[%d])", entry.ID, first),
				nil,
			)
		}
		seen[key] = i
	}

	if _, ok := seen[strings.ToUpper(strings.TrimSpace(m.Default))]; !ok {
		return themeerrors.NewValidationError("default", fmt.Sprintf("default theme %q is not declared in themes", m.Default), nil)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := manifestFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return themeerrors.NewValidationError(field, msg, err)
	}

	return themeerrors.NewValidationError("manifest", err.Error(), err)
}

// manifestFieldName drops the root struct name from the namespace, leaving
// e.g. "themes[1].id".
func manifestFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldForTheme(index int, field string) string {
	return fmt.Sprintf("themes[%d].%s", index, field)
}
