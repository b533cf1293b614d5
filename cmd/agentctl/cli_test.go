package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func TestMigrate(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "cli.db")
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("database:\n  path: "+dbPath+"\nlogger:\n  level: error\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfgFile = cfgPath
	t.Cleanup(func() { cfgFile = "" })

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"migrate"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}

func TestTemperatureOverride(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().Float64Var(&temperature, "temperature", 0, "")

	if got := temperatureOverride(cmd); got != nil {
		t.Fatalf("unset flag: got %v", *got)
	}
	if err := cmd.Flags().Parse([]string{"--temperature", "0.3"}); err != nil {
		t.Fatal(err)
	}
	got := temperatureOverride(cmd)
	if got == nil || *got != 0.3 {
		t.Errorf("got %v, want 0.3", got)
	}
}

func TestRun_RequiresFlags(t *testing.T) {
	rootCmd.SetArgs([]string{"run", "--thread", "t1"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	err := rootCmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "required flag") {
		t.Errorf("err = %v, want missing required flag", err)
	}
}
