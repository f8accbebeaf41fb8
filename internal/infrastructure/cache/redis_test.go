package cache

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func TestOpenRedis_PingsOnOpen(t *testing.T) {
	mr := miniredis.RunT(t)

	r, err := OpenRedis(mr.Addr(), 0)
	if err != nil {
		t.Fatalf("OpenRedis error: %v", err)
	}
	defer r.Close()
}

func TestOpenRedis_FailsWhenUnreachable(t *testing.T) {
	if _, err := OpenRedis("127.0.0.1:1", 0); err == nil {
		t.Fatalf("expected connection error")
	}
}
