package models

import (
	"reflect"
	"testing"
)

// Delete on these records must remove the row, not tombstone it: a
// soft-deleted provider would keep occupying its idx_user_cuit slot and the
// CUIT could never be registered again. A DeletedAt field would switch gorm
// back to soft-delete semantics.
func TestDeletableRecordsHaveNoSoftDeleteColumn(t *testing.T) {
	records := []interface{}{Client{}, Provider{}, Product{}}

	for _, r := range records {
		typ := reflect.TypeOf(r)
		if _, found := typ.FieldByName("DeletedAt"); found {
			t.Errorf("%s carries a DeletedAt field; deletes would only set a tombstone", typ.Name())
		}
	}
}
