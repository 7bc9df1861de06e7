package provider

import (
	"testing"
)

func TestNewOpenAIInvoker(t *testing.T) {
	invoker := NewOpenAIInvoker("test-key", "")

	if invoker.model != DefaultOpenAIModel {
		t.Errorf("model = %q, want default %q", invoker.model, DefaultOpenAIModel)
	}
	if invoker.Name() != "openai" {
		t.Errorf("Name() = %q, want openai", invoker.Name())
	}

	custom := NewOpenAIInvoker("test-key", "gpt-4o")
	if custom.model != "gpt-4o" {
		t.Errorf("model = %q, want gpt-4o", custom.model)
	}
}

func TestOpenAIInvoker_IsAvailable(t *testing.T) {
	if err := NewOpenAIInvoker("test-key", "").IsAvailable(); err != nil {
		t.Errorf("IsAvailable() with key = %v, want nil", err)
	}
	if err := NewOpenAIInvoker("", "").IsAvailable(); err == nil {
		t.Error("IsAvailable() without key should fail")
	}
}

func TestJSONSchema(t *testing.T) {
	schema := &FunctionSchema{
		Name: "translate_text",
		Properties: map[string]Property{
			"translatedText": {Type: "string", Description: "The translation"},
			"confidence":     {Type: "number", Description: "Confidence score"},
		},
		Required: []string{"translatedText"},
	}

	rendered := jsonSchema(schema)

	if rendered["type"] != "object" {
		t.Errorf("type = %v, want object", rendered["type"])
	}

	props, ok := rendered["properties"].(map[string]any)
	if !ok {
		t.Fatal("properties is not a map")
	}
	translated, ok := props["translatedText"].(map[string]any)
	if !ok {
		t.Fatal("translatedText property missing")
	}
	if translated["type"] != "string" {
		t.Errorf("translatedText type = %v, want string", translated["type"])
	}
	conf, ok := props["confidence"].(map[string]any)
	if !ok {
		t.Fatal("confidence property missing")
	}
	if conf["type"] != "number" {
		t.Errorf("confidence type = %v, want number", conf["type"])
	}

	required, ok := rendered["required"].([]string)
	if !ok || len(required) != 1 || required[0] != "translatedText" {
		t.Errorf("required = %v, want [translatedText]", rendered["required"])
	}
}
