package disc

import (
	"strings"
	"testing"
)

func TestValidateBank_BuiltInPasses(t *testing.T) {
	if err := ValidateBank(); err != nil {
		t.Fatalf("built-in bank validation failed: %v", err)
	}
}

func TestValidateBank_DetectsOutOfOrderIDs(t *testing.T) {
	qs := Questions()
	qs[0].ID, qs[1].ID = qs[1].ID, qs[0].ID
	err := validateBank(qs, Options())
	if err == nil {
		t.Fatal("expected error for out-of-order IDs, got nil")
	}
	if !strings.Contains(err.Error(), "position 0") {
		t.Errorf("error should mention the position, got: %v", err)
	}
}

func TestValidateBank_DetectsUnbalancedDimensions(t *testing.T) {
	qs := Questions()
	qs[0].Dimension = Influence
	err := validateBank(qs, Options())
	if err == nil {
		t.Fatal("expected error for unbalanced dimensions, got nil")
	}
	if !strings.Contains(err.Error(), "dimension D has 4") {
		t.Errorf("error should mention dimension D, got: %v", err)
	}
	if !strings.Contains(err.Error(), "dimension I has 6") {
		t.Errorf("error should mention dimension I, got: %v", err)
	}
}

func TestValidateBank_DetectsEmptyText(t *testing.T) {
	qs := Questions()
	qs[4].Text = "  "
	err := validateBank(qs, Options())
	if err == nil || !strings.Contains(err.Error(), "question 5 has empty text") {
		t.Errorf("expected empty text error, got: %v", err)
	}
}

func TestValidateBank_DetectsBadOptions(t *testing.T) {
	err := validateBank(Questions(), Options()[:3])
	if err == nil || !strings.Contains(err.Error(), "want 4 options") {
		t.Errorf("expected option count error, got: %v", err)
	}
}
