package database

import "testing"

func TestIsValidTable(t *testing.T) {
	for _, table := range GetSchemaTables() {
		if !isValidTable(table) {
			t.Errorf("schema table %q must be valid", table)
		}
	}

	invalid := []string{
		"",
		"Users",
		"users;drop table users",
		"unknown_table",
		"1users",
	}

	for _, table := range invalid {
		if isValidTable(table) {
			t.Errorf("table %q must be rejected", table)
		}
	}
}

func TestSchemaModelsMatchTables(t *testing.T) {
	if len(SchemaModels()) != len(GetSchemaTables()) {
		t.Fatal("every model needs a matching table entry")
	}
}
