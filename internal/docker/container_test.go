package docker

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeInspector struct {
	started time.Time
	err     error
	asked   string
}

func (f *fakeInspector) ContainerStartedAt(_ context.Context, id string) (time.Time, error) {
	f.asked = id
	return f.started, f.err
}

func (f *fakeInspector) Close() error { return nil }

func TestParseStartedAt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "engine timestamp",
			input: "2024-01-15T10:30:45.123456789Z",
			want:  time.Date(2024, 1, 15, 10, 30, 45, 123456789, time.UTC),
		},
		{name: "never started", input: "0001-01-01T00:00:00Z", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseStartedAt(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseStartedAt(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseStartedAt(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRuntime(t *testing.T) {
	id := "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
	started := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	insp := &fakeInspector{started: started}

	rt, err := Runtime(context.Background(), insp, id)
	if err != nil {
		t.Fatalf("Runtime() unexpected error: %v", err)
	}
	if insp.asked != id {
		t.Errorf("inspected %q, want full id %q", insp.asked, id)
	}
	if rt.ID != "0123456789ab" {
		t.Errorf("ID = %q, want short id", rt.ID)
	}
	if !rt.StartedAt.Equal(started) {
		t.Errorf("StartedAt = %v, want %v", rt.StartedAt, started)
	}
}

func TestRuntimeErrors(t *testing.T) {
	engineDown := errors.New("connection refused")

	if _, err := Runtime(context.Background(), &fakeInspector{err: engineDown}, "abc"); !errors.Is(err, engineDown) {
		t.Errorf("Runtime() error = %v, want it to wrap %v", err, engineDown)
	}

	if _, err := Runtime(context.Background(), &fakeInspector{}, ""); err == nil {
		t.Error("Runtime() with empty id should fail")
	}
}
