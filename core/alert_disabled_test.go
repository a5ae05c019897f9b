//go:build noalerts

package core

import (
	"reflect"
	"testing"
)

func TestEntryShapeHasNoAlertMember(t *testing.T) {
	// With the alert subsystem compiled out, the entry shape holds only
	// the class and its transfer limit. This is a compile-time property;
	// the field count pins it down.
	typ := reflect.TypeOf(Entry{})
	if typ.NumField() != 2 {
		t.Errorf("Entry has %d fields, expected 2 (Class, MaxSize)", typ.NumField())
	}
	if _, ok := typ.FieldByName("Alert"); ok {
		t.Error("Entry carries an Alert member in a noalerts build")
	}
}

func TestRegistryAcceptsBareEntries(t *testing.T) {
	entries := []Entry{{Class: &fakeClass{}, MaxSize: 4}}
	if _, err := NewRegistry(entries); err != nil {
		t.Errorf("NewRegistry failed: %v", err)
	}
}
