package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewManager(t *testing.T) {
	tmpDir := t.TempDir()

	manager, err := NewManager(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}
	defer manager.Close()

	if manager.db == nil {
		t.Error("Database connection is nil")
	}

	// Verify database file was created
	dbPath := filepath.Join(tmpDir, "fileporter.db")
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestNewManager_EmptyDir(t *testing.T) {
	_, err := NewManager("")
	if err == nil {
		t.Error("Expected error for empty directory, got nil")
	}
}

func TestSaveAndGetOperation(t *testing.T) {
	tmpDir := t.TempDir()
	manager, err := NewManager(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}
	defer manager.Close()

	record := OperationRecord{
		Op:          "upload",
		Source:      "/tmp/a.txt",
		Destination: "/tmp/dest",
		StartTime:   time.Now().Add(-time.Minute),
		EndTime:     time.Now(),
		Status:      "success",
	}

	if err := manager.SaveOperation(record); err != nil {
		t.Fatalf("Failed to save operation: %v", err)
	}

	history, err := manager.GetHistory("upload", 10)
	if err != nil {
		t.Fatalf("Failed to get history: %v", err)
	}

	if len(history) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(history))
	}

	retrieved := history[0]
	if retrieved.Op != record.Op {
		t.Errorf("Expected op %s, got %s", record.Op, retrieved.Op)
	}
	if retrieved.Source != record.Source {
		t.Errorf("Expected source %s, got %s", record.Source, retrieved.Source)
	}
	if retrieved.Destination != record.Destination {
		t.Errorf("Expected destination %s, got %s", record.Destination, retrieved.Destination)
	}
	if retrieved.Status != record.Status {
		t.Errorf("Expected status %s, got %s", record.Status, retrieved.Status)
	}
}

func TestSaveOperation_InvalidStatus(t *testing.T) {
	tmpDir := t.TempDir()
	manager, err := NewManager(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}
	defer manager.Close()

	record := OperationRecord{
		Op:        "upload",
		Source:    "/tmp/a.txt",
		StartTime: time.Now(),
		EndTime:   time.Now(),
		Status:    "partial",
	}

	if err := manager.SaveOperation(record); err == nil {
		t.Error("Expected error for invalid status, got nil")
	}
}

func TestGetLastSuccess(t *testing.T) {
	tmpDir := t.TempDir()
	manager, err := NewManager(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}
	defer manager.Close()

	records := []OperationRecord{
		{
			Op:        "backup",
			Source:    "/tmp/old.txt",
			StartTime: time.Now().Add(-30 * time.Minute),
			EndTime:   time.Now().Add(-29 * time.Minute),
			Status:    "success",
		},
		{
			Op:        "backup",
			Source:    "/tmp/broken.txt",
			StartTime: time.Now().Add(-20 * time.Minute),
			EndTime:   time.Now().Add(-19 * time.Minute),
			Status:    "failed",
			Error:     "source not valid",
		},
		{
			Op:        "backup",
			Source:    "/tmp/new.txt",
			StartTime: time.Now().Add(-10 * time.Minute),
			EndTime:   time.Now().Add(-9 * time.Minute),
			Status:    "success",
		},
	}

	for _, r := range records {
		if err := manager.SaveOperation(r); err != nil {
			t.Fatalf("Failed to save operation: %v", err)
		}
	}

	last, err := manager.GetLastSuccess("backup")
	if err != nil {
		t.Fatalf("Failed to get last success: %v", err)
	}
	if last == nil {
		t.Fatal("Expected a last success record, got nil")
	}
	if last.Source != "/tmp/new.txt" {
		t.Errorf("Expected most recent success, got source %s", last.Source)
	}
}

func TestGetLastSuccess_None(t *testing.T) {
	tmpDir := t.TempDir()
	manager, err := NewManager(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}
	defer manager.Close()

	last, err := manager.GetLastSuccess("upload")
	if err != nil {
		t.Fatalf("Failed to query last success: %v", err)
	}
	if last != nil {
		t.Errorf("Expected nil for no successful operations, got %+v", last)
	}
}

func TestGetAllHistory(t *testing.T) {
	tmpDir := t.TempDir()
	manager, err := NewManager(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}
	defer manager.Close()

	ops := []string{"upload", "download", "rmdir"}
	for i, op := range ops {
		record := OperationRecord{
			Op:        op,
			Source:    "/tmp/file.txt",
			StartTime: time.Now().Add(time.Duration(-i) * time.Minute),
			EndTime:   time.Now(),
			Status:    "success",
		}
		if err := manager.SaveOperation(record); err != nil {
			t.Fatalf("Failed to save operation: %v", err)
		}
	}

	history, err := manager.GetAllHistory(10)
	if err != nil {
		t.Fatalf("Failed to get all history: %v", err)
	}
	if len(history) != len(ops) {
		t.Errorf("Expected %d records, got %d", len(ops), len(history))
	}
}

func TestGetHistory_InvalidLimit(t *testing.T) {
	tmpDir := t.TempDir()
	manager, err := NewManager(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}
	defer manager.Close()

	if _, err := manager.GetHistory("upload", 0); err == nil {
		t.Error("Expected error for non-positive limit, got nil")
	}
	if _, err := manager.GetAllHistory(-1); err == nil {
		t.Error("Expected error for non-positive limit, got nil")
	}
}
