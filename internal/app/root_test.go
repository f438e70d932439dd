package app

import (
	"testing"
)

func TestRootCommand(t *testing.T) {
	// Test that root command is properly configured
	if RootCmd.Use != "drillbur-setup" {
		t.Errorf("expected Use to be 'drillbur-setup', got '%s'", RootCmd.Use)
	}

	if RootCmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if RootCmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	// Test that subcommands are registered
	commands := RootCmd.Commands()

	expectedCommands := []string{"install", "verify", "icon", "bundle", "doctor", "history", "launch"}
	foundCommands := make(map[string]bool)

	for _, cmd := range commands {
		foundCommands[cmd.Use] = true
	}

	for _, expected := range expectedCommands {
		if !foundCommands[expected] {
			t.Errorf("expected command '%s' to be registered", expected)
		}
	}
}

func TestRootCommandHasPersistentFlags(t *testing.T) {
	flag := RootCmd.PersistentFlags().Lookup("install-dir")
	if flag == nil {
		t.Fatal("expected --install-dir flag to be registered")
	}
	if flag.Usage == "" {
		t.Error("expected --install-dir flag to have usage text")
	}
}

func TestInstallFlagDefaults(t *testing.T) {
	tests := []struct {
		flag string
		want string
	}{
		{"build-exe", "false"},
		{"create-shortcut", "true"},
		{"launch", "false"},
		{"onefile", "false"},
	}

	for _, tt := range tests {
		f := installCmd.Flags().Lookup(tt.flag)
		if f == nil {
			t.Errorf("install command missing --%s flag", tt.flag)
			continue
		}
		if f.DefValue != tt.want {
			t.Errorf("--%s default = %s, want %s", tt.flag, f.DefValue, tt.want)
		}
	}
}
