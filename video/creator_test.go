package video

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// fakeRunner records the invocation and returns canned results. When
// output is set it writes the bytes to the command's final argument.
type fakeRunner struct {
	stderr string
	err    error
	output []byte

	name string
	args []string
}

func (r *fakeRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	r.name = name
	r.args = args
	if r.err == nil && r.output != nil {
		if err := os.WriteFile(args[len(args)-1], r.output, 0o644); err != nil {
			return "", err
		}
	}
	return r.stderr, r.err
}

type blockingRunner struct{}

func (blockingRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func testInput() AssembleInput {
	return AssembleInput{
		Images:     [][]byte{[]byte("png-a"), []byte("png-b")},
		Audio:      []byte("mp3"),
		Transcript: "il était une fois une histoire sombre",
		Duration:   24,
		Resolution: Resolution{W: 1080, H: 1920},
		Captions:   DefaultCaptionOptions(),
		Plan:       DefaultPlanOptions(),
	}
}

func TestAssembleSuccess(t *testing.T) {
	runner := &fakeRunner{output: []byte("encoded-video")}
	a := NewAssembler("ffmpeg", time.Minute)
	a.SetRunner(runner)

	out, err := a.Assemble(context.Background(), testInput())
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if string(out) != "encoded-video" {
		t.Errorf("unexpected output bytes: %q", out)
	}
	if runner.name != "ffmpeg" {
		t.Errorf("ran %q, want ffmpeg", runner.name)
	}
	if runner.args[0] != "-y" {
		t.Errorf("first arg = %q, want -y", runner.args[0])
	}
}

func TestAssembleTranscodeFailureKeepsStderr(t *testing.T) {
	const stderr = "Stream map '0:a' matches no streams.\n" +
		"Invalid stream specifier: 0:a."
	runner := &fakeRunner{stderr: stderr, err: errors.New("exit status 1")}
	a := NewAssembler("ffmpeg", time.Minute)
	a.SetRunner(runner)

	_, err := a.Assemble(context.Background(), testInput())
	var tErr *TranscodeError
	if !errors.As(err, &tErr) {
		t.Fatalf("expected TranscodeError, got %v", err)
	}
	if tErr.Stderr != stderr {
		t.Errorf("stderr altered:\n%q\nwant:\n%q", tErr.Stderr, stderr)
	}
	if !strings.Contains(tErr.Error(), "Invalid stream specifier") {
		t.Errorf("error text lost stderr: %v", tErr)
	}
}

func TestAssembleTimeout(t *testing.T) {
	a := NewAssembler("ffmpeg", 20*time.Millisecond)
	a.SetRunner(blockingRunner{})

	_, err := a.Assemble(context.Background(), testInput())
	if !errors.Is(err, ErrTranscodeTimeout) {
		t.Fatalf("expected ErrTranscodeTimeout, got %v", err)
	}
}

func TestAssembleValidatesInput(t *testing.T) {
	a := NewAssembler("ffmpeg", time.Minute)
	a.SetRunner(&fakeRunner{})

	in := testInput()
	in.Images = nil
	if _, err := a.Assemble(context.Background(), in); !errors.Is(err, ErrNoImages) {
		t.Errorf("expected ErrNoImages, got %v", err)
	}

	in = testInput()
	in.Duration = 0
	if _, err := a.Assemble(context.Background(), in); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("expected ErrInvalidDuration, got %v", err)
	}
}

func TestAssembleCleansUpWorkspace(t *testing.T) {
	runner := &fakeRunner{output: []byte("encoded")}
	a := NewAssembler("ffmpeg", time.Minute)
	a.SetRunner(runner)

	if _, err := a.Assemble(context.Background(), testInput()); err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	// the staged scene image lived next to the output path
	jobDir := filepath.Dir(runner.args[len(runner.args)-1])
	if _, err := os.Stat(jobDir); !os.IsNotExist(err) {
		t.Errorf("job workspace %s not removed (err=%v)", jobDir, err)
	}
}
