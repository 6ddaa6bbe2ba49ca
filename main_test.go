package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ardnew/curry/lang"
	"github.com/ardnew/curry/log"
)

func TestReport(t *testing.T) {
	_, parseErr := lang.ParseString(context.Background(), "val x = ;")
	if parseErr == nil {
		t.Fatal("expected parse error")
	}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"source error", parseErr, "error at line 1"},
		{"plain error", errors.New("no such command"), "no such command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			log.Config(log.WithOutput(&buf), log.WithPretty(false))
			defer log.Config(log.WithOutput(nil), log.WithPretty(true))

			report(context.Background(), &buf, tt.err)

			if n := strings.Count(buf.String(), tt.want); n != 1 {
				t.Errorf("reported %d times, want once:\n%s", n, buf.String())
			}
		})
	}
}
