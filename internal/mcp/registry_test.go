package mcp

import "testing"

func TestTools(t *testing.T) {
	tools := Tools()
	if len(tools) != 5 {
		t.Fatalf("Tools() returned %d descriptors, want 5", len(tools))
	}

	wantNames := []string{
		"genbank_to_fasta",
		"reverse_complement",
		"extract_subsequence",
		"seqkit_stats",
		"seqkit_command",
	}
	for i, want := range wantNames {
		if tools[i].Name != want {
			t.Errorf("Tools()[%d].Name = %q, want %q", i, tools[i].Name, want)
		}
	}

	for _, tool := range tools {
		if tool.Method != "POST" {
			t.Errorf("%s method = %q, want POST", tool.Name, tool.Method)
		}
		if tool.Path == "" {
			t.Errorf("%s has no path", tool.Name)
		}
		if tool.InputSchema["type"] != "object" || tool.OutputSchema["type"] != "object" {
			t.Errorf("%s schemas are not objects", tool.Name)
		}
		if len(tool.Tags) == 0 {
			t.Errorf("%s has no tags", tool.Name)
		}
	}
}

func TestToolByName(t *testing.T) {
	tool, err := ToolByName("extract_subsequence")
	if err != nil {
		t.Fatalf("ToolByName() error = %v", err)
	}
	if tool.Path != "/manipulate/extract-subsequence" {
		t.Errorf("ToolByName() path = %q", tool.Path)
	}

	if _, err := ToolByName("no_such_tool"); err == nil {
		t.Error("ToolByName(no_such_tool) = nil, want error")
	}
}

func TestBuildSummary(t *testing.T) {
	summary := BuildSummary()

	if summary.TotalTools != 5 {
		t.Errorf("BuildSummary() total = %d, want 5", summary.TotalTools)
	}
	if summary.ToolsByCategory["conversion"] != 1 {
		t.Errorf("conversion count = %d, want 1", summary.ToolsByCategory["conversion"])
	}
	if summary.ToolsByCategory["manipulation"] != 2 {
		t.Errorf("manipulation count = %d, want 2", summary.ToolsByCategory["manipulation"])
	}
	if summary.ToolsByCategory["seqkit"] != 2 {
		t.Errorf("seqkit count = %d, want 2", summary.ToolsByCategory["seqkit"])
	}
}
