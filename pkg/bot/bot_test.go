package bot

import "testing"

// TestBot 测试 kilobot 的基本访问器
func TestBot(t *testing.T) {
	b := New(12, "alpha")

	if b.UID() != 12 {
		t.Errorf("Expected uid 12, got %d", b.UID())
	}
	if b.Name() != "alpha" {
		t.Errorf("Expected name alpha, got %q", b.Name())
	}
	if got := b.String(); got != "12 (alpha)" {
		t.Errorf("Unexpected string form: %q", got)
	}
}

// TestSetName 测试原地重命名
func TestSetName(t *testing.T) {
	b := New(1, "alpha")
	b.SetName("omega")

	if b.Name() != "omega" {
		t.Errorf("Expected name omega, got %q", b.Name())
	}
	// uid 是稳定标识，不随名称变化
	if b.UID() != 1 {
		t.Errorf("UID must stay stable, got %d", b.UID())
	}
}
