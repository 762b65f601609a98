package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitizePayloadMasksSensitiveKeys(t *testing.T) {
	payload := map[string]any{
		"name":  "Jane",
		"email": "jane@example.com",
		"nested": map[string]any{
			"owner_email": "jane@example.com",
			"API-Key":     "secret",
		},
		"list": []any{map[string]any{"password": "hunter2", "type": "checking"}},
	}

	got := SanitizePayload(payload).(map[string]any)

	assert.Equal(t, "Jane", got["name"])
	assert.Equal(t, "******", got["email"])
	nested := got["nested"].(map[string]any)
	assert.Equal(t, "******", nested["owner_email"])
	assert.Equal(t, "******", nested["API-Key"])
	item := got["list"].([]any)[0].(map[string]any)
	assert.Equal(t, "******", item["password"])
	assert.Equal(t, "checking", item["type"])
}

func TestSanitizePayloadUnmarshallable(t *testing.T) {
	assert.Equal(t, "<unavailable>", SanitizePayload(make(chan int)))
}

func TestFieldsAreMaskedAndErrorAttached(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	Set(zap.New(core))
	t.Cleanup(func() { Set(nil) })

	Info("account created", Fields{"accountId": "42", "email": "jane@example.com"})
	Error("remote call failed", assert.AnError, Fields{"operation": "create_account"})

	entries := logs.AllUntimed()
	assert.Len(t, entries, 2)

	first := entries[0].ContextMap()
	assert.Equal(t, "42", first["accountId"])
	assert.Equal(t, "******", first["email"])

	second := entries[1].ContextMap()
	assert.Equal(t, "create_account", second["operation"])
	assert.Equal(t, assert.AnError.Error(), second["error"])
}

func TestInitFallsBackToInfoLevel(t *testing.T) {
	t.Cleanup(func() { Set(nil) })

	assert.NoError(t, Init("nonsense", "test"))
	assert.True(t, L().Core().Enabled(zap.InfoLevel))
	assert.False(t, L().Core().Enabled(zap.DebugLevel))
}
