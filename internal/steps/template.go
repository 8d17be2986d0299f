package steps

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/shaiso/calcgraph/internal/engine"
)

// FuncTemplate — рендеринг Go template по входам узла.
const FuncTemplate = "template"

// Ошибки рендеринга шаблонов.
var (
	// ErrTemplateRender — ошибка рендеринга шаблона.
	ErrTemplateRender = errors.New("template render failed")

	// ErrTemplateParse — ошибка парсинга шаблона.
	ErrTemplateParse = errors.New("template parse failed")
)

// templateFuncs — дополнительные функции для шаблонов.
var templateFuncs = template.FuncMap{
	// json — сериализует значение в JSON строку
	"json": func(v any) string {
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("error: %v", err)
		}
		return string(b)
	},

	// default — возвращает значение по умолчанию, если первый аргумент пустой
	"default": func(def, val any) any {
		if val == nil {
			return def
		}
		if s, ok := val.(string); ok && s == "" {
			return def
		}
		return val
	},

	// join — объединяет слайс строк
	"join": func(sep string, items []string) string {
		return strings.Join(items, sep)
	},

	"lower": strings.ToLower,
	"upper": strings.ToUpper,
	"trim":  strings.TrimSpace,
}

// NewTemplate рендерит шаблон Params.text.
//
// Входы доступны в шаблоне по именам:
//
//	params:
//	  text: "{{ .first }} {{ .last | upper }}"
//
// Если Params.parse == true, результат разбирается как JSON значение
// (число, объект, массив, bool), иначе возвращается строка.
func NewTemplate(cfg Config) (engine.Func, error) {
	if err := cfg.requireOutputs(1); err != nil {
		return nil, err
	}

	text := GetParamString(cfg.Params, "text")
	if text == "" {
		return nil, fmt.Errorf("%w: template requires param text", ErrInvalidConfig)
	}

	t, err := template.New("").Funcs(templateFuncs).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}

	parse, _ := cfg.Params["parse"].(bool)
	inputs := append([]string(nil), cfg.Inputs...)

	return func(args ...any) (any, error) {
		data := make(map[string]any, len(inputs))
		for i, name := range inputs {
			data[name] = args[i]
		}

		var buf bytes.Buffer
		if err := t.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
		}

		if parse {
			return parseValue(buf.String()), nil
		}
		return buf.String(), nil
	}, nil
}

// parseValue пытается распарсить строку как JSON.
// Если не получается — возвращает строку как есть.
func parseValue(value string) any {
	// Пробуем как JSON object
	var obj map[string]any
	if err := json.Unmarshal([]byte(value), &obj); err == nil {
		return obj
	}

	// Пробуем как JSON array
	var arr []any
	if err := json.Unmarshal([]byte(value), &arr); err == nil {
		return arr
	}

	// Пробуем как JSON number
	var num json.Number
	if err := json.Unmarshal([]byte(value), &num); err == nil {
		if f, err := num.Float64(); err == nil {
			return f
		}
	}

	// Пробуем как JSON bool
	if value == "true" {
		return true
	}
	if value == "false" {
		return false
	}

	// Возвращаем как строку
	return value
}
