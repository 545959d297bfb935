package cmd

import (
	"strings"
	"testing"
)

func TestMethodsCommandListsAll(t *testing.T) {
	out := executeCommand(t, "methods")

	for _, want := range []string{"Stroke Play", "Stableford", "Match Play", "Skins"} {
		if !strings.Contains(out, want) {
			t.Errorf("methods output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "lowest score wins") || !strings.Contains(out, "highest score wins") {
		t.Errorf("methods output missing directions:\n%s", out)
	}
}

func TestMethodsCommandSingleMethod(t *testing.T) {
	out := executeCommand(t, "methods", "skins")

	if !strings.Contains(out, "Skins") {
		t.Errorf("output missing Skins:\n%s", out)
	}
	if strings.Contains(out, "Stableford") {
		t.Errorf("single-method output lists other methods:\n%s", out)
	}
}

func TestMethodsCommandUnknownFallsBack(t *testing.T) {
	out := executeCommand(t, "methods", "best_ball")

	if !strings.Contains(out, "Stroke Play") {
		t.Errorf("unknown method should fall back to stroke play:\n%s", out)
	}
}
