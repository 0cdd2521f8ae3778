package memstore

import (
	"testing"

	"xdao.co/identicon/store"
	"xdao.co/identicon/store/storetest"
)

func TestMem_Conformance(t *testing.T) {
	storetest.RunConformance(t, func(t *testing.T) store.Store {
		t.Helper()
		return New()
	})
}

func TestMem_GetReturnsCopies(t *testing.T) {
	m := New()
	id, err := m.Put([]byte("avatar"))
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	got, err := m.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	got[0] = 'X'
	again, err := m.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(again) != "avatar" {
		t.Fatalf("stored bytes mutated through a returned slice")
	}
}
