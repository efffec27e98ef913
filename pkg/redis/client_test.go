package redis

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
)

func TestInit_InvalidURL(t *testing.T) {
	err := Init("not-a-url", "")
	assert.Error(t, err)
}

func TestInit_ConnectsAndPings(t *testing.T) {
	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("skip: miniredis unavailable in this environment: %v", err)
	}
	defer srv.Close()

	err = Init("redis://"+srv.Addr(), "")
	assert.NoError(t, err)
	assert.NotNil(t, GetClient())

	SetClient(nil)
	assert.Nil(t, GetClient())
}
