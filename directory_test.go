package vperm

import (
	"errors"
	"slices"
	"testing"

	"github.com/mwantia/vperm/data"
)

func newTestFile(t *testing.T, name string) *File {
	t.Helper()

	f, err := NewFile(name, 1, NewUser("alice", 1), NewGroup("staff", 1))
	if err != nil {
		t.Fatalf("NewFile(%s) failed: %v", name, err)
	}

	return f
}

func TestDirectory_NewAllowsEmpty(t *testing.T) {
	d, err := NewDirectory("docs", data.PermRead, NewUser("alice", 1))
	if err != nil {
		t.Fatalf("NewDirectory failed: %v", err)
	}

	if d.Len() != 0 || len(d.ListFiles()) != 0 {
		t.Errorf("expected empty directory, got %v", d.ListFiles())
	}
	if got, want := d.Describe(), "docs dr-- alice 0"; got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}
}

func TestDirectory_NewWithInitialFiles(t *testing.T) {
	d, err := NewDirectory("docs", data.PermAll, NewUser("alice", 1), newTestFile(t, "a"), newTestFile(t, "b"))
	if err != nil {
		t.Fatalf("NewDirectory failed: %v", err)
	}

	if want := []string{"a", "b"}; !slices.Equal(d.ListFiles(), want) {
		t.Errorf("ListFiles() = %v, want %v", d.ListFiles(), want)
	}

	if _, err := NewDirectory("docs", data.PermAll, NewUser("alice", 1), newTestFile(t, "a"), newTestFile(t, "a")); !errors.Is(err, data.ErrDuplicateFile) {
		t.Errorf("expected ErrDuplicateFile for duplicate initial files, got %v", err)
	}
}

func TestDirectory_NewRejectsMissingArguments(t *testing.T) {
	if _, err := NewDirectory("", data.PermAll, NewUser("alice", 1)); !errors.Is(err, data.ErrInvalidArgument) {
		t.Errorf("empty name: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := NewDirectory("docs", data.PermAll, nil); !errors.Is(err, data.ErrInvalidArgument) {
		t.Errorf("nil owner: expected ErrInvalidArgument, got %v", err)
	}
}

func TestDirectory_AddFileRejectsDuplicate(t *testing.T) {
	d, _ := NewDirectory("docs", data.PermAll, NewUser("alice", 1))

	if err := d.AddFile(newTestFile(t, "report.txt")); err != nil {
		t.Fatalf("AddFile failed: %v", err)
	}

	before := d.ListFiles()
	err := d.AddFile(newTestFile(t, "report.txt"))
	if !errors.Is(err, data.ErrDuplicateFile) {
		t.Fatalf("expected ErrDuplicateFile, got %v", err)
	}

	if got := d.ListFiles(); !slices.Equal(got, before) {
		t.Errorf("failed AddFile changed listing: %v", got)
	}

	if err := d.AddFile(nil); !errors.Is(err, data.ErrInvalidArgument) {
		t.Errorf("AddFile(nil) = %v, want ErrInvalidArgument", err)
	}
}

func TestDirectory_RemovePreservesOrder(t *testing.T) {
	d, _ := NewDirectory("docs", data.PermAll, NewUser("alice", 1))
	for _, name := range []string{"F1", "F2", "F3"} {
		if err := d.AddFile(newTestFile(t, name)); err != nil {
			t.Fatalf("AddFile(%s) failed: %v", name, err)
		}
	}

	d.RemoveFile("F2")

	if want := []string{"F1", "F3"}; !slices.Equal(d.ListFiles(), want) {
		t.Errorf("ListFiles() = %v, want %v", d.ListFiles(), want)
	}

	d.RemoveFile("F2")
	d.RemoveFile("missing")
	if want := []string{"F1", "F3"}; !slices.Equal(d.ListFiles(), want) {
		t.Errorf("idempotent removal changed listing: %v", d.ListFiles())
	}
}

func TestDirectory_FileLookup(t *testing.T) {
	d, _ := NewDirectory("docs", data.PermAll, NewUser("alice", 1), newTestFile(t, "a"))

	f, err := d.File("a")
	if err != nil {
		t.Fatalf("File(a) failed: %v", err)
	}
	if f.Name() != "a" {
		t.Errorf("unexpected file %q", f.Name())
	}

	if _, err := d.File("b"); !errors.Is(err, data.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDirectory_FilesReturnsCopy(t *testing.T) {
	d, _ := NewDirectory("docs", data.PermAll, NewUser("alice", 1), newTestFile(t, "a"))

	files := d.Files()
	files[0] = nil

	if _, err := d.File("a"); err != nil || d.Files()[0] == nil {
		t.Error("modifying Files() result changed the directory")
	}
}

func TestDirectory_OwnerIsSnapshot(t *testing.T) {
	alice := NewUser("alice", 1)
	d, _ := NewDirectory("docs", data.PermReadExecute, alice)

	alice.JoinGroup(NewGroup("staff", 1))
	if d.Owner().Name != "alice" || d.Owner().ID != 1 {
		t.Errorf("unexpected owner snapshot %+v", d.Owner())
	}

	if err := d.SetOwner(NewUser("bob", 2)); err != nil {
		t.Fatalf("SetOwner failed: %v", err)
	}
	d.SetPermissions(data.PermAll)

	if got, want := d.Describe(), "docs drwx bob 0"; got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}
}
