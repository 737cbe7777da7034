package comb2

import "testing"

func TestKeyStoreWithAndLookup(t *testing.T) {
	kInt := NewKey[int]()
	kStr := NewKey[string]()

	ks := With(EmptyKeyStore, kInt, 42)
	ks = With(ks, kStr, "hello")

	if v, ok := Lookup(ks, kInt); !ok || v != 42 {
		t.Fatalf("Lookup(kInt) = %v, %v; want 42, true", v, ok)
	}
	if v, ok := Lookup(ks, kStr); !ok || v != "hello" {
		t.Fatalf("Lookup(kStr) = %v, %v; want hello, true", v, ok)
	}
}

func TestKeyStoreMissingKey(t *testing.T) {
	k := NewKey[int]()
	other := NewKey[int]()
	ks := With(EmptyKeyStore, k, 7)
	if _, ok := Lookup(ks, other); ok {
		t.Fatal("Lookup should not find a key that was never bound")
	}
}

func TestKeyStoreImmutable(t *testing.T) {
	k := NewKey[int]()
	base := EmptyKeyStore
	extended := With(base, k, 1)
	if _, ok := Lookup(base, k); ok {
		t.Fatal("With must not mutate its receiver")
	}
	if v, ok := Lookup(extended, k); !ok || v != 1 {
		t.Fatal("With must produce a store containing the new binding")
	}
}

func TestTwoFreshKeysOfSameTypeNeverCollide(t *testing.T) {
	a := NewKey[int]()
	b := NewKey[int]()
	ks := With(EmptyKeyStore, a, 1)
	if _, ok := Lookup(ks, b); ok {
		t.Fatal("two distinct Key[int] values must not alias")
	}
}
