package main

import (
	"strings"
	"testing"
)

func TestAddDescAliasSetsDescriptionFlag(t *testing.T) {
	t.Cleanup(func() {
		addDescription = ""
	})

	if err := addCmd.Flags().Set("desc", "the body"); err != nil {
		t.Fatalf("set desc alias: %v", err)
	}
	if addDescription != "the body" {
		t.Fatalf("expected description to be set via alias, got %q", addDescription)
	}
	if !addCmd.Flags().Changed("description") {
		t.Fatal("expected description flag to be marked as changed")
	}
}

func TestAddUsageHidesDescAlias(t *testing.T) {
	usage := addCmd.Flags().FlagUsages()
	if strings.Contains(usage, "--desc ") {
		t.Fatalf("did not expect alias to appear in usage, got %q", usage)
	}
	if !strings.Contains(usage, "-d, --description") {
		t.Fatalf("expected shorthand to appear inline, got %q", usage)
	}
	if !strings.Contains(usage, "-t, --tags") {
		t.Fatalf("expected tags shorthand to appear inline, got %q", usage)
	}
}
