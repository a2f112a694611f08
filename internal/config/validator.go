package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	validate.RegisterStructValidation(validateDatabaseConfig, DatabaseConfig{})
	if err := validate.RegisterTranslation("required_for_driver", trans, func(ut ut.Translator) error {
		return ut.Add("required_for_driver", "{0} is required for the configured database driver", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("required_for_driver", strings.TrimPrefix(fe.Namespace(), "Config."))
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register required_for_driver translation: %w", err)
	}

	return validate, trans, nil
}

// validateDatabaseConfig checks the fields each driver needs to build its DSN.
func validateDatabaseConfig(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(DatabaseConfig)
	switch cfg.Driver {
	case "sqlite":
		if cfg.Path == "" {
			sl.ReportError(cfg.Path, "path", "Path", "required_for_driver", "")
		}
	case "mysql", "postgres":
		if cfg.Host == "" {
			sl.ReportError(cfg.Host, "host", "Host", "required_for_driver", "")
		}
		if cfg.Database == "" {
			sl.ReportError(cfg.Database, "database", "Database", "required_for_driver", "")
		}
	}
}
