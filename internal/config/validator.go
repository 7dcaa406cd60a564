package config

import (
	"fmt"
	"net/url"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

type customRule struct {
	tag     string
	fn      validator.Func
	message string
}

var customRules = []customRule{
	{tag: "seedsource", fn: isSeedSource, message: "{0} must be an http(s) URL or an existing and readable file"},
}

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	trans, _ := ut.New(enLocale, enLocale).GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("enTranslations.RegisterDefaultTranslations > %w", err)
	}

	// Field errors name the config key, e.g. server.port.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("mapstructure"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	for _, rule := range customRules {
		if err := registerRule(validate, trans, rule); err != nil {
			return nil, nil, err
		}
	}
	return validate, trans, nil
}

func registerRule(validate *validator.Validate, trans ut.Translator, rule customRule) error {
	if err := validate.RegisterValidation(rule.tag, rule.fn); err != nil {
		return fmt.Errorf("validate.RegisterValidation(%s) > %w", rule.tag, err)
	}
	register := func(t ut.Translator) error {
		return t.Add(rule.tag, rule.message, true)
	}
	translate := func(t ut.Translator, fe validator.FieldError) string {
		msg, _ := t.T(rule.tag, strings.TrimPrefix(fe.Namespace(), "Config."))
		return msg
	}
	if err := validate.RegisterTranslation(rule.tag, trans, register, translate); err != nil {
		return fmt.Errorf("validate.RegisterTranslation(%s) > %w", rule.tag, err)
	}
	return nil
}

func isSeedSource(fl validator.FieldLevel) bool {
	source := fl.Field().String()
	if source == "" {
		return false
	}
	if u, err := url.Parse(source); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return u.Host != ""
	}
	return isReadableFile(source)
}

func isReadableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	// owner read bit
	return info.Mode().Perm()&0o400 != 0
}
