package logger

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func captureStd(t *testing.T, fn func()) (string, string) {
	t.Helper()
	origOut, origErr := os.Stdout, os.Stderr
	outR, outW, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	errR, errW, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout, os.Stderr = outW, errW

	fn()

	outW.Close()
	errW.Close()
	os.Stdout, os.Stderr = origOut, origErr

	var outBuf, errBuf bytes.Buffer
	_, _ = io.Copy(&outBuf, outR)
	_, _ = io.Copy(&errBuf, errR)
	return outBuf.String(), errBuf.String()
}

func TestLoggerLevels(t *testing.T) {
	color.NoColor = true

	stdout, stderr := captureStd(t, func() {
		l := Logger{}
		l.Infof("info %d", 1)
		l.Debugf("debug %d", 2)
		l.Warnf("warn %d", 3)
		l.Errorf("error %d", 4)
		l.WarnfAlways("always %d", 5)
	})
	assert.Empty(t, stdout)
	assert.Equal(t, "[warn] always 5\n", stderr)

	stdout, stderr = captureStd(t, func() {
		l := Logger{Verbose: true}
		l.Infof("info %d", 1)
		l.Debugf("debug %d", 2)
		l.Warnf("warn %d", 3)
	})
	assert.Equal(t, "[info] info 1\n", stdout)
	assert.Equal(t, "[warn] warn 3\n", stderr)

	stdout, stderr = captureStd(t, func() {
		l := Logger{Debug: true}
		l.Debugf("debug %d", 2)
		l.Errorf("error %d", 4)
	})
	assert.Equal(t, "[debug] debug 2\n", stdout)
	assert.Equal(t, "[error] error 4\n", stderr)
}
