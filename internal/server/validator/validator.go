package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/nulzo/agent-models/pkg/models"
)

// AgentModelTag validates that a string is a member of the agent model set.
const AgentModelTag = "agent_model"

// Validator owns the English translator used to render binding errors.
type Validator struct {
	trans ut.Translator
}

// New configures gin's validator engine: json tag names in messages, English
// translations and the agent_model tag.
func New() (*Validator, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, errors.New("unexpected gin validator engine")
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	locale := en.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator("en")

	if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, fmt.Errorf("register translations: %w", err)
	}

	if err := v.RegisterValidation(AgentModelTag, func(fl validator.FieldLevel) bool {
		return models.IsValidAgentModel(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("register %s: %w", AgentModelTag, err)
	}

	err := v.RegisterTranslation(AgentModelTag, trans,
		func(ut ut.Translator) error {
			return ut.Add(AgentModelTag, "{0} is not a known agent model", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(AgentModelTag, fmt.Sprintf("%v", fe.Value()))
			return t
		},
	)
	if err != nil {
		return nil, fmt.Errorf("register %s translation: %w", AgentModelTag, err)
	}

	return &Validator{trans: trans}, nil
}

// ParseError converts raw technical errors into a clean map.
// Nested errors keep their hierarchical names, e.g. "models[1]".
func (v *Validator) ParseError(err error) map[string]string {
	errMap := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			ns := e.Namespace()

			if i := strings.Index(ns, "."); i != -1 {
				ns = ns[i+1:]
			}

			msg := e.Translate(v.trans)

			if e.Tag() == "oneof" {
				msg = fmt.Sprintf("must be one of [%s]", strings.ReplaceAll(e.Param(), " ", ", "))
			}

			errMap[ns] = msg
		}
		return errMap
	}

	errMap["body"] = "Invalid request body format. Please fix your payload."
	return errMap
}
