package reminder

import (
	"context"
	"fmt"

	"voice-notes/pkg/llmprovider"
)

// fakeCompleter returns a canned answer and records the request.
type fakeCompleter struct {
	text  string
	err   error
	calls int
	req   *llmprovider.Request
}

func (f *fakeCompleter) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.calls++
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{
		Content:      llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{Text: f.text}}},
		ProviderName: "fake",
		Usage:        &llmprovider.Usage{},
	}, nil
}

// mockLogger keeps the key/value pairs of every Info and Warn call.
type mockLogger struct {
	infos []string
	warns []map[string]any
}

func kv(arg []any) map[string]any {
	out := map[string]any{}
	if len(arg) > 0 {
		out["msg"] = arg[0]
	}
	for i := 1; i+1 < len(arg); i += 2 {
		out[fmt.Sprint(arg[i])] = arg[i+1]
	}
	return out
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		m.infos = append(m.infos, fmt.Sprint(arg[0]))
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	m.warns = append(m.warns, kv(arg))
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
