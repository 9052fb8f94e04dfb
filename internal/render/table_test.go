package render

import (
	"strings"
	"testing"
)

func TestArgsTable(t *testing.T) {
	t.Parallel()

	params := []Param{
		{Name: "a", Type: "int", Default: "1"},
		{Name: "b", Type: "string"},
	}
	doc := "Do a thing.\n\nArgs:\n    a: the first value\n    b: the second value"
	table := ArgsTable(params, ParseArgsSection(doc))

	lines := strings.Split(strings.TrimRight(table, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, separator and 2 data rows, got %d lines:\n%s", len(lines), table)
	}
	if lines[0] != "| Name | Type | Default | Description |" {
		t.Fatalf("unexpected header row %q", lines[0])
	}
	if lines[1] != "| --- | --- | --- | --- |" {
		t.Fatalf("unexpected separator row %q", lines[1])
	}
	if lines[2] != "| a | int | 1 | the first value |" {
		t.Fatalf("unexpected row for a: %q", lines[2])
	}
	if lines[3] != "| b | string | No default | the second value |" {
		t.Fatalf("unexpected row for b: %q", lines[3])
	}
}

func TestArgsTableSkipsKwargs(t *testing.T) {
	t.Parallel()

	positions := [][]Param{
		{{Name: "kwargs"}, {Name: "a", Type: "int"}},
		{{Name: "a", Type: "int"}, {Name: "kwargs"}},
	}
	for _, params := range positions {
		table := ArgsTable(params, nil)
		if strings.Contains(table, "kwargs") {
			t.Fatalf("kwargs row should be excluded:\n%s", table)
		}
		if !strings.Contains(table, "| a | int | No default |  |") {
			t.Fatalf("expected row for a:\n%s", table)
		}
	}
}

func TestArgsTableDefaults(t *testing.T) {
	t.Parallel()

	table := ArgsTable([]Param{{Name: "x"}}, nil)
	if !strings.Contains(table, "| x | Any | No default |  |") {
		t.Fatalf("expected Any/No default substitution:\n%s", table)
	}
}

func TestArgsTableEmpty(t *testing.T) {
	t.Parallel()

	table := ArgsTable(nil, nil)
	want := "| Name | Type | Default | Description |\n| --- | --- | --- | --- |\n"
	if table != want {
		t.Fatalf("expected header and separator only, got %q", table)
	}
}

func TestFuncDoc(t *testing.T) {
	t.Parallel()

	doc := "Greets.\n\nArgs:\n    name: who to greet"
	out := FuncDoc([]Param{{Name: "name", Type: "string"}}, doc)
	if !strings.Contains(out, "| name | string | No default | who to greet |") {
		t.Fatalf("expected described table row:\n%s", out)
	}
	if !strings.Contains(out, "Greets.") {
		t.Fatalf("expected doc prose below the table:\n%s", out)
	}
	if strings.Contains(out, "Args:") {
		t.Fatalf("Args section should be stripped from the prose:\n%s", out)
	}
}
