package logger

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"fbprobe/pkg/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.LoggingConfig
		wantErr bool
	}{
		{
			name: "valid config with info level",
			cfg: &config.LoggingConfig{
				Level: "info",
			},
			wantErr: false,
		},
		{
			name: "valid config with debug level",
			cfg: &config.LoggingConfig{
				Level: "debug",
			},
			wantErr: false,
		},
		{
			name: "invalid log level",
			cfg: &config.LoggingConfig{
				Level: "invalid",
			},
			wantErr: true,
		},
		{
			name: "config with file output",
			cfg: &config.LoggingConfig{
				Level: "info",
				File:  "/tmp/fbprobe-test.log",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && logger == nil {
				t.Error("New() returned nil logger")
			}

			// Clean up test files
			if tt.cfg.File != "" {
				os.Remove(tt.cfg.File)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected zerolog.Level
		wantErr  bool
	}{
		{"debug", zerolog.DebugLevel, false},
		{"DEBUG", zerolog.DebugLevel, false},
		{"info", zerolog.InfoLevel, false},
		{"INFO", zerolog.InfoLevel, false},
		{"warn", zerolog.WarnLevel, false},
		{"warning", zerolog.WarnLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"fatal", zerolog.FatalLevel, false},
		{"panic", zerolog.PanicLevel, false},
		{"disabled", zerolog.Disabled, false},
		{"invalid", zerolog.InfoLevel, true},
		{"", zerolog.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			level, err := parseLogLevel(tt.level)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseLogLevel() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if level != tt.expected {
				t.Errorf("parseLogLevel() = %v, want %v", level, tt.expected)
			}
		})
	}
}

func newBufferLogger(buf *bytes.Buffer) *zerologLogger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zlog := zerolog.New(buf).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	return &zerologLogger{
		logger: &zlog,
		fields: make(map[string]interface{}),
	}
}

func TestLoggerMethods(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	t.Run("Debug", func(t *testing.T) {
		buf.Reset()
		logger.Debug("debug message")
		if !strings.Contains(buf.String(), "debug message") {
			t.Error("Debug message not found in output")
		}
	})

	t.Run("Info", func(t *testing.T) {
		buf.Reset()
		logger.Info("info message")
		if !strings.Contains(buf.String(), "info message") {
			t.Error("Info message not found in output")
		}
	})

	t.Run("Warn", func(t *testing.T) {
		buf.Reset()
		logger.Warn("warn message")
		if !strings.Contains(buf.String(), "warn message") {
			t.Error("Warn message not found in output")
		}
	})

	t.Run("Error", func(t *testing.T) {
		buf.Reset()
		logger.Error("error message")
		if !strings.Contains(buf.String(), "error message") {
			t.Error("Error message not found in output")
		}
	})
}

func TestWithField(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	newLogger := logger.WithField("page", "PhuketTimeNews")
	newLogger.Info("probing page")

	output := buf.String()
	if !strings.Contains(output, "probing page") {
		t.Error("Message not found in output")
	}
	if !strings.Contains(output, `"page":"PhuketTimeNews"`) {
		t.Error("Field not found in output")
	}
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	fields := map[string]interface{}{
		"page":    "PhuketTimeNews",
		"posts":   5,
		"success": true,
	}

	newLogger := logger.WithFields(fields)
	newLogger.Info("probe finished")

	output := buf.String()
	if !strings.Contains(output, "probe finished") {
		t.Error("Message not found in output")
	}
	if !strings.Contains(output, `"page":"PhuketTimeNews"`) {
		t.Error("String field not found in output")
	}
	if !strings.Contains(output, `"posts":5`) {
		t.Error("Int field not found in output")
	}
	if !strings.Contains(output, `"success":true`) {
		t.Error("Bool field not found in output")
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	// Test with nil error
	logger1 := logger.WithError(nil)
	if logger1 != Logger(logger) {
		t.Error("WithError(nil) should return the same logger")
	}

	// Test with actual error
	testErr := &testError{msg: "connection refused"}
	logger2 := logger.WithError(testErr)
	logger2.Error("fetch failed")

	output := buf.String()
	if !strings.Contains(output, "fetch failed") {
		t.Error("Message not found in output")
	}
	if !strings.Contains(output, "connection refused") {
		t.Error("Error message not found in output")
	}
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	_ = logger.WithField("child", true)
	logger.Info("parent message")

	if strings.Contains(buf.String(), "child") {
		t.Error("child field leaked into parent logger")
	}
}

func TestStructuredLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	fields := map[string]interface{}{
		"page":   "PhuketTimeNews",
		"action": "classify",
		"count":  10,
	}

	logger.InfoWithFields("operation completed", fields)

	output := buf.String()
	if !strings.Contains(output, "operation completed") {
		t.Error("Message not found in output")
	}
	if !strings.Contains(output, `"page":"PhuketTimeNews"`) {
		t.Error("Page field not found in output")
	}
	if !strings.Contains(output, `"action":"classify"`) {
		t.Error("Action field not found in output")
	}
	if !strings.Contains(output, `"count":10`) {
		t.Error("Count field not found in output")
	}
}

func TestFieldTypes(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	// Test various field types
	fields := map[string]interface{}{
		"string":   "test",
		"int":      123,
		"int64":    int64(456),
		"float":    3.14,
		"bool":     true,
		"time":     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		"duration": time.Second * 5,
		"strings":  []string{"a.jpg", "b.jpg"},
		"ints":     []int{1, 2, 3},
		"custom":   struct{ Name string }{Name: "test"},
	}

	logger.WithFields(fields).Info("test all types")

	output := buf.String()
	if !strings.Contains(output, "test all types") {
		t.Error("Message not found in output")
	}
	if !strings.Contains(output, "a.jpg") {
		t.Error("String slice field not found in output")
	}
}

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	logger.WithContext(context.Background()).Info("ctx message")
	if !strings.Contains(buf.String(), "ctx message") {
		t.Error("Message not found after WithContext")
	}
}

func TestGlobalLogger(t *testing.T) {
	// Initialize global logger
	cfg := &config.LoggingConfig{
		Level: "debug",
	}

	err := Initialize(cfg)
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	// Test global logger functions
	logger := GetLogger()
	if logger == nil {
		t.Error("GetLogger() returned nil")
	}

	// Test convenience functions (just ensure they don't panic)
	Debug("debug message")
	Info("info message")
	Warn("warn message")
	Error("error message")

	WithField("key", "value").Info("with field")
	WithFields(map[string]interface{}{"k1": "v1", "k2": "v2"}).Info("with fields")
	WithError(&testError{msg: "test"}).Error("with error")
}

func TestFieldChaining(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	// Test field chaining
	logger.
		WithField("field1", "value1").
		WithField("field2", "value2").
		WithFields(map[string]interface{}{
			"field3": "value3",
			"field4": 4,
		}).
		Info("chained fields")

	output := buf.String()
	if !strings.Contains(output, "chained fields") {
		t.Error("Message not found in output")
	}
	if !strings.Contains(output, `"field1":"value1"`) {
		t.Error("Field1 not found in output")
	}
	if !strings.Contains(output, `"field2":"value2"`) {
		t.Error("Field2 not found in output")
	}
	if !strings.Contains(output, `"field3":"value3"`) {
		t.Error("Field3 not found in output")
	}
	if !strings.Contains(output, `"field4":4`) {
		t.Error("Field4 not found in output")
	}
}

func TestTestLogger(t *testing.T) {
	tl := NewTestLogger()

	tl.Info("plain message")
	tl.WithField("page", "x").Warn("field message")
	tl.WithError(&testError{msg: "boom"}).Error("error message")
	tl.WithFields(map[string]interface{}{"a": 1}).InfoWithFields("merged", map[string]interface{}{"b": 2})

	if got := len(tl.GetMessages()); got != 4 {
		t.Fatalf("GetMessages() length = %d, want 4", got)
	}

	if !tl.HasMessage("plain message") {
		t.Error("HasMessage(plain message) = false")
	}
	if tl.HasMessage("never logged") {
		t.Error("HasMessage(never logged) = true")
	}
	if !tl.HasError() {
		t.Error("HasError() = false after Error log")
	}

	warns := tl.GetMessagesByLevel("WARN")
	if len(warns) != 1 {
		t.Fatalf("GetMessagesByLevel(WARN) length = %d, want 1", len(warns))
	}
	if warns[0].Fields["page"] != "x" {
		t.Errorf("warn fields = %v, want page=x", warns[0].Fields)
	}

	infos := tl.GetMessagesByLevel("INFO")
	if len(infos) != 2 {
		t.Fatalf("GetMessagesByLevel(INFO) length = %d, want 2", len(infos))
	}
	merged := infos[1]
	if merged.Fields["a"] != 1 || merged.Fields["b"] != 2 {
		t.Errorf("merged fields = %v, want a=1 b=2", merged.Fields)
	}

	if out := tl.String(); !strings.Contains(out, "[ERROR] error message") {
		t.Errorf("String() = %q, missing error line", out)
	}

	tl.Clear()
	if len(tl.GetMessages()) != 0 {
		t.Error("Clear() did not empty the captured messages")
	}
}

func TestNopLogger(t *testing.T) {
	nop := NewNopLogger()

	// Must not panic and must keep returning a usable logger
	nop.Debug("ignored")
	nop.WithField("k", "v").WithError(&testError{msg: "x"}).WithContext(context.Background()).Info("ignored")
	nop.InfoWithFields("ignored", map[string]interface{}{"k": "v"})

	if nop.GetZerolog() != nil {
		t.Error("nop logger should not expose a zerolog instance")
	}
}

// Helper error type for testing
type testError struct {
	msg string
}

func (e *testError) Error() string {
	return e.msg
}
