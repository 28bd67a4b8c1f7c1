package storage

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func newRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	s, err := OpenRedis(mr.Addr())
	if err != nil {
		t.Fatalf("OpenRedis: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRedisStoreRoundTrip(t *testing.T) {
	s := newRedisStore(t)

	if _, ok, err := s.GetInt(KeyLevel); err != nil || ok {
		t.Fatalf("fresh store: ok=%v err=%v, want unset", ok, err)
	}

	if err := s.PutInt(KeyLevel, 3); err != nil {
		t.Fatalf("PutInt: %v", err)
	}
	v, ok, err := s.GetInt(KeyLevel)
	if err != nil || !ok || v != 3 {
		t.Errorf("GetInt = %d, %v, %v; want 3, true, nil", v, ok, err)
	}
}

func TestRedisStoreKeysNamespaced(t *testing.T) {
	mr := miniredis.RunT(t)
	s, err := OpenRedis(mr.Addr())
	if err != nil {
		t.Fatalf("OpenRedis: %v", err)
	}
	defer s.Close()

	if err := s.PutInt(KeyXP, 42); err != nil {
		t.Fatalf("PutInt: %v", err)
	}
	got, err := mr.Get("powertype:progress:xp")
	if err != nil || got != "42" {
		t.Errorf("raw key = %q, %v; want \"42\"", got, err)
	}
}

func TestRedisStoreUnreachable(t *testing.T) {
	if _, err := OpenRedis("127.0.0.1:1"); err == nil {
		t.Errorf("OpenRedis to closed port succeeded")
	}
}
