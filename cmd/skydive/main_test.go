package main

import (
	"io"
	"strings"
	"testing"
)

func TestValidateFlagsFPS(t *testing.T) {
	defer func(fps int) { flagFPS = fps }(flagFPS)

	tests := []struct {
		fps     int
		wantErr bool
	}{
		{60, false},
		{1, false},
		{0, true},
		{-30, true},
	}

	for _, tc := range tests {
		flagFPS = tc.fps
		err := validateFlags(nil, nil)
		if (err != nil) != tc.wantErr {
			t.Errorf("fps %d: err = %v, wantErr %v", tc.fps, err, tc.wantErr)
		}
	}
}

func TestRootRejectsZeroFPS(t *testing.T) {
	defer func(fps int) { flagFPS = fps }(flagFPS)

	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"levels", "--fps", "0"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("levels --fps 0 should fail flag validation")
	}
}

func TestPlayUnknownLevelReturnsError(t *testing.T) {
	err := runPlay(nil, []string{"no-such-level"})
	if err == nil {
		t.Fatal("expected an error for an unknown level")
	}
	if want := `unknown level "no-such-level"`; !strings.Contains(err.Error(), want) {
		t.Errorf("err = %q, want it to contain %q", err, want)
	}
}
